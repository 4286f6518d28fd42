package handlers

import (
	"log"
	"time"

	"github.com/espadawo/College-Timetable-Bot/internal/db"
	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

// RecordUser запоминает пользователя для рассылок объявлений.
func RecordUser(chatID int64) {
	_, err := db.DB.Exec(`
		INSERT OR IGNORE INTO users (telegram_id, first_seen) VALUES (?, ?)
	`, chatID, time.Now().Format(time.RFC3339))
	if err != nil {
		log.Printf("Ошибка записи пользователя %d: %v", chatID, err)
	}
}

// AllUsers возвращает всех известных пользователей бота.
func AllUsers() ([]int64, error) {
	rows, err := db.DB.Query(`SELECT telegram_id FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, rows.Err()
}

// IsAdmin проверяет, является ли пользователь администратором.
func IsAdmin(chatID int64) bool {
	if chatID == mainAdminID {
		return true
	}
	var n int
	err := db.DB.QueryRow(`SELECT COUNT(*) FROM admins WHERE telegram_id = ?`, chatID).Scan(&n)
	if err != nil {
		log.Printf("Ошибка проверки администратора %d: %v", chatID, err)
		return false
	}
	return n > 0
}

// AddAdmin добавляет администратора.
func AddAdmin(chatID int64) error {
	_, err := db.DB.Exec(`INSERT OR IGNORE INTO admins (telegram_id) VALUES (?)`, chatID)
	return err
}

// AddFavorite добавляет группу или преподавателя в избранное пользователя.
func AddFavorite(chatID int64, kind models.ViewKind, name string) {
	_, err := db.DB.Exec(`
		INSERT OR IGNORE INTO favorites (telegram_id, kind, name) VALUES (?, ?, ?)
	`, chatID, string(kind), name)
	if err != nil {
		log.Printf("Ошибка добавления в избранное (%d, %s, %s): %v", chatID, kind, name, err)
	}
}

// RemoveFavorite убирает запись из избранного.
func RemoveFavorite(chatID int64, kind models.ViewKind, name string) {
	_, err := db.DB.Exec(`
		DELETE FROM favorites WHERE telegram_id = ? AND kind = ? AND name = ?
	`, chatID, string(kind), name)
	if err != nil {
		log.Printf("Ошибка удаления из избранного (%d, %s, %s): %v", chatID, kind, name, err)
	}
}

// IsFavorite сообщает, есть ли запись в избранном пользователя.
func IsFavorite(chatID int64, kind models.ViewKind, name string) bool {
	var n int
	err := db.DB.QueryRow(`
		SELECT COUNT(*) FROM favorites WHERE telegram_id = ? AND kind = ? AND name = ?
	`, chatID, string(kind), name).Scan(&n)
	if err != nil {
		log.Printf("Ошибка чтения избранного (%d, %s, %s): %v", chatID, kind, name, err)
		return false
	}
	return n > 0
}

// Favorites возвращает избранные имена пользователя по виду.
func Favorites(chatID int64, kind models.ViewKind) []string {
	rows, err := db.DB.Query(`
		SELECT name FROM favorites WHERE telegram_id = ? AND kind = ? ORDER BY name
	`, chatID, string(kind))
	if err != nil {
		log.Printf("Ошибка чтения избранного (%d, %s): %v", chatID, kind, err)
		return nil
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Printf("Ошибка чтения избранного (%d, %s): %v", chatID, kind, err)
			return nil
		}
		names = append(names, name)
	}
	return names
}
