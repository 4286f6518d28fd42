// Package cache хранит готовые тексты расписаний и списки групп и
// преподавателей. Обе структуры переживают перезапуск бота: данные лежат
// в SQLite, а в памяти держится только копия списков.
package cache

import (
	"database/sql"
	"log"
	"time"

	"github.com/espadawo/College-Timetable-Bot/internal/db"
	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

// RenderCache — кэш готовых текстов расписаний по ключу (вид, имя).
// Записи живут до явного Invalidate: ни TTL, ни вытеснения нет.
type RenderCache struct{}

func NewRenderCache() *RenderCache {
	return &RenderCache{}
}

// Get возвращает сохранённый текст расписания. Второе значение — false,
// если записи нет.
func (c *RenderCache) Get(kind models.ViewKind, name string) (string, bool) {
	var text string
	err := db.DB.QueryRow(`
		SELECT text FROM render_cache WHERE kind = ? AND name = ?
	`, string(kind), name).Scan(&text)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		log.Printf("Ошибка чтения кэша расписаний (%s, %s): %v", kind, name, err)
		return "", false
	}
	return text, true
}

// Put сохраняет текст расписания, затирая прежнюю запись по тому же ключу.
func (c *RenderCache) Put(kind models.ViewKind, name, text string) {
	_, err := db.DB.Exec(`
		INSERT OR REPLACE INTO render_cache (kind, name, text, updated_at)
		VALUES (?, ?, ?, ?)
	`, string(kind), name, text, time.Now().Format("02.01.2006 15:04"))
	if err != nil {
		log.Printf("Ошибка записи кэша расписаний (%s, %s): %v", kind, name, err)
	}
}

// Invalidate удаляет запись; следующий Get по этому ключу будет промахом.
func (c *RenderCache) Invalidate(kind models.ViewKind, name string) {
	_, err := db.DB.Exec(`
		DELETE FROM render_cache WHERE kind = ? AND name = ?
	`, string(kind), name)
	if err != nil {
		log.Printf("Ошибка инвалидации кэша расписаний (%s, %s): %v", kind, name, err)
	}
}
