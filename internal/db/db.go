package db

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func InitDB(dbFile string) {
	var err error
	DB, err = sql.Open("sqlite3", dbFile)
	if err != nil {
		log.Panicf("Ошибка открытия SQLite: %v", err)
	}
	// Настраиваем пул соединений (опционально)
	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)

	createTables()
}

func createTables() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 1) Таблица users — все, кто хоть раз запускал бота (для рассылок)
	_, err := DB.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS users (
            telegram_id INTEGER PRIMARY KEY,
            first_seen TEXT
        );
    `)
	if err != nil {
		log.Panicf("Ошибка создания таблицы users: %v", err)
	}

	// 2) Таблица admins
	_, err = DB.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS admins (
            telegram_id INTEGER PRIMARY KEY
        );
    `)
	if err != nil {
		log.Panicf("Ошибка создания таблицы admins: %v", err)
	}

	// 3) Таблица favorites — избранные группы/преподаватели пользователя
	_, err = DB.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS favorites (
            telegram_id INTEGER NOT NULL,
            kind TEXT NOT NULL,
            name TEXT NOT NULL,
            PRIMARY KEY (telegram_id, kind, name)
        );
    `)
	if err != nil {
		log.Panicf("Ошибка создания таблицы favorites: %v", err)
	}

	// 4) Таблица render_cache — готовые тексты расписаний
	_, err = DB.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS render_cache (
            kind TEXT NOT NULL,
            name TEXT NOT NULL,
            text TEXT NOT NULL,
            updated_at TEXT,
            PRIMARY KEY (kind, name)
        );
    `)
	if err != nil {
		log.Panicf("Ошибка создания таблицы render_cache: %v", err)
	}

	// 5) Таблица roster — списки групп и преподавателей с сайта
	_, err = DB.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS roster (
            kind TEXT NOT NULL,
            position INTEGER NOT NULL,
            name TEXT NOT NULL,
            file TEXT NOT NULL,
            PRIMARY KEY (kind, position)
        );
    `)
	if err != nil {
		log.Panicf("Ошибка создания таблицы roster: %v", err)
	}

	// 6) Таблица roster_meta — время последнего обновления списков
	_, err = DB.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS roster_meta (
            kind TEXT PRIMARY KEY,
            updated_at TEXT
        );
    `)
	if err != nil {
		log.Panicf("Ошибка создания таблицы roster_meta: %v", err)
	}
}
