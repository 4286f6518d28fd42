package cache

import (
	"log"
	"sync"
	"time"

	"github.com/espadawo/College-Timetable-Bot/internal/db"
	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

type rosterSnapshot struct {
	updatedAt string
	entries   []models.RosterEntry
}

// RosterCache — списки групп и преподавателей с отметкой времени обновления.
// Снимок заменяется только целиком: частичных обновлений не бывает.
// В памяти держится копия, чтобы не ходить в SQLite на каждое нажатие кнопки.
type RosterCache struct {
	mu        sync.RWMutex
	snapshots map[models.ViewKind]rosterSnapshot
	loaded    map[models.ViewKind]bool
}

func NewRosterCache() *RosterCache {
	return &RosterCache{
		snapshots: make(map[models.ViewKind]rosterSnapshot),
		loaded:    make(map[models.ViewKind]bool),
	}
}

// Get возвращает время последнего обновления и снимок списка.
// Пустой список означает, что снимка ещё нет и его нужно загрузить с сайта.
func (c *RosterCache) Get(kind models.ViewKind) (string, []models.RosterEntry) {
	c.mu.RLock()
	if c.loaded[kind] {
		snap := c.snapshots[kind]
		c.mu.RUnlock()
		return snap.updatedAt, snap.entries
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded[kind] {
		c.snapshots[kind] = loadRoster(kind)
		c.loaded[kind] = true
	}
	snap := c.snapshots[kind]
	return snap.updatedAt, snap.entries
}

// Replace целиком заменяет снимок списка и в памяти, и в SQLite.
func (c *RosterCache) Replace(kind models.ViewKind, entries []models.RosterEntry) {
	updatedAt := time.Now().Format("02.01.2006 15:04")

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[kind] = rosterSnapshot{updatedAt: updatedAt, entries: entries}
	c.loaded[kind] = true

	tx, err := db.DB.Begin()
	if err != nil {
		log.Printf("Ошибка сохранения списка %s: %v", kind, err)
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM roster WHERE kind = ?`, string(kind)); err != nil {
		log.Printf("Ошибка сохранения списка %s: %v", kind, err)
		return
	}
	for i, e := range entries {
		if _, err := tx.Exec(`
			INSERT INTO roster (kind, position, name, file) VALUES (?, ?, ?, ?)
		`, string(kind), i, e.Name, e.File); err != nil {
			log.Printf("Ошибка сохранения списка %s: %v", kind, err)
			return
		}
	}
	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO roster_meta (kind, updated_at) VALUES (?, ?)
	`, string(kind), updatedAt); err != nil {
		log.Printf("Ошибка сохранения списка %s: %v", kind, err)
		return
	}
	if err := tx.Commit(); err != nil {
		log.Printf("Ошибка сохранения списка %s: %v", kind, err)
	}
}

// loadRoster читает сохранённый снимок из SQLite при первом обращении.
func loadRoster(kind models.ViewKind) rosterSnapshot {
	var snap rosterSnapshot

	err := db.DB.QueryRow(`
		SELECT updated_at FROM roster_meta WHERE kind = ?
	`, string(kind)).Scan(&snap.updatedAt)
	if err != nil {
		return rosterSnapshot{}
	}

	rows, err := db.DB.Query(`
		SELECT name, file FROM roster WHERE kind = ? ORDER BY position
	`, string(kind))
	if err != nil {
		log.Printf("Ошибка чтения списка %s: %v", kind, err)
		return rosterSnapshot{}
	}
	defer rows.Close()

	for rows.Next() {
		var e models.RosterEntry
		if err := rows.Scan(&e.Name, &e.File); err != nil {
			log.Printf("Ошибка чтения списка %s: %v", kind, err)
			return rosterSnapshot{}
		}
		snap.entries = append(snap.entries, e)
	}
	if err := rows.Err(); err != nil {
		log.Printf("Ошибка чтения списка %s: %v", kind, err)
		return rosterSnapshot{}
	}
	return snap
}
