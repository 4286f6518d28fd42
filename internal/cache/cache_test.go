package cache

import (
	"path/filepath"
	"testing"

	"github.com/espadawo/College-Timetable-Bot/internal/db"
	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

func initTestDB(t *testing.T) {
	t.Helper()
	db.InitDB(filepath.Join(t.TempDir(), "test.db"))
}

func TestRenderCacheLifecycle(t *testing.T) {
	initTestDB(t)
	c := NewRenderCache()

	if _, ok := c.Get(models.ViewGroup, "АА-11"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Put(models.ViewGroup, "АА-11", "расписание")
	text, ok := c.Get(models.ViewGroup, "АА-11")
	if !ok || text != "расписание" {
		t.Fatalf("Get = (%q, %v), want stored text", text, ok)
	}

	// Ключи с разными видами не пересекаются.
	if _, ok := c.Get(models.ViewTeacher, "АА-11"); ok {
		t.Error("teacher key unexpectedly present")
	}

	c.Put(models.ViewGroup, "АА-11", "новое расписание")
	text, _ = c.Get(models.ViewGroup, "АА-11")
	if text != "новое расписание" {
		t.Errorf("Get after overwrite = %q", text)
	}

	c.Invalidate(models.ViewGroup, "АА-11")
	if _, ok := c.Get(models.ViewGroup, "АА-11"); ok {
		t.Error("expected miss after Invalidate")
	}
}

func TestRosterCacheReplaceAndGet(t *testing.T) {
	initTestDB(t)
	c := NewRosterCache()

	updatedAt, entries := c.Get(models.ViewGroup)
	if updatedAt != "" || len(entries) != 0 {
		t.Fatalf("expected empty roster, got (%q, %v)", updatedAt, entries)
	}

	first := []models.RosterEntry{
		{Name: "АА-11", File: "cg101.htm"},
		{Name: "АА-12", File: "cg102.htm"},
	}
	c.Replace(models.ViewGroup, first)

	updatedAt, entries = c.Get(models.ViewGroup)
	if updatedAt == "" {
		t.Error("updatedAt empty after Replace")
	}
	if len(entries) != 2 || entries[0].Name != "АА-11" || entries[1].File != "cg102.htm" {
		t.Errorf("entries = %v", entries)
	}

	// Замена всегда целиком, без слияния со старым снимком.
	c.Replace(models.ViewGroup, []models.RosterEntry{{Name: "ББ-21", File: "cg201.htm"}})
	_, entries = c.Get(models.ViewGroup)
	if len(entries) != 1 || entries[0].Name != "ББ-21" {
		t.Errorf("entries after second Replace = %v", entries)
	}
}

func TestRosterCacheSurvivesRestart(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "test.db")
	db.InitDB(dbFile)

	c := NewRosterCache()
	c.Replace(models.ViewTeacher, []models.RosterEntry{{Name: "Иванов И.И.", File: "cp1.htm"}})

	// Новый экземпляр читает снимок из SQLite.
	c2 := NewRosterCache()
	updatedAt, entries := c2.Get(models.ViewTeacher)
	if updatedAt == "" || len(entries) != 1 || entries[0].Name != "Иванов И.И." {
		t.Errorf("restarted cache = (%q, %v)", updatedAt, entries)
	}
}
