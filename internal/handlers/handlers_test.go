package handlers

import (
	"path/filepath"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/espadawo/College-Timetable-Bot/internal/db"
	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

func initTestDB(t *testing.T) {
	t.Helper()
	db.InitDB(filepath.Join(t.TempDir(), "test.db"))
}

func TestFavoritesLifecycle(t *testing.T) {
	initTestDB(t)
	const chatID = int64(100500)

	if IsFavorite(chatID, groupView, "АА-11") {
		t.Fatal("unexpected favorite on empty table")
	}

	AddFavorite(chatID, groupView, "АА-11")
	AddFavorite(chatID, groupView, "АА-11") // повторное добавление не дублирует
	AddFavorite(chatID, teacherView, "Иванов И.И.")

	if !IsFavorite(chatID, groupView, "АА-11") {
		t.Error("group favorite not stored")
	}
	if got := Favorites(chatID, groupView); len(got) != 1 || got[0] != "АА-11" {
		t.Errorf("Favorites(group) = %v", got)
	}
	if got := Favorites(chatID, teacherView); len(got) != 1 {
		t.Errorf("Favorites(teacher) = %v", got)
	}

	RemoveFavorite(chatID, groupView, "АА-11")
	if IsFavorite(chatID, groupView, "АА-11") {
		t.Error("favorite not removed")
	}
}

func TestAdminsAndUsers(t *testing.T) {
	initTestDB(t)
	mainAdminID = 1

	if !IsAdmin(1) {
		t.Error("main admin not recognized")
	}
	if IsAdmin(2) {
		t.Error("unexpected admin")
	}
	if err := AddAdmin(2); err != nil {
		t.Fatalf("AddAdmin: %v", err)
	}
	if !IsAdmin(2) {
		t.Error("added admin not recognized")
	}

	RecordUser(10)
	RecordUser(11)
	RecordUser(10) // повторный /start не дублирует запись
	users, err := AllUsers()
	if err != nil {
		t.Fatalf("AllUsers: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("AllUsers = %v, want 2 entries", users)
	}
}

func TestAnnouncementDraftFromMessage(t *testing.T) {
	// Фото приходит набором размеров, в черновик попадает последний (самый крупный).
	photoMsg := &tgbotapi.Message{
		Caption: "  Пары отменены  ",
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small"},
			{FileID: "big"},
		},
	}
	draft := announcementDraftFrom(photoMsg)
	if draft.PhotoID != "big" || draft.Text != "Пары отменены" {
		t.Errorf("draft = %+v", draft)
	}

	textMsg := &tgbotapi.Message{Text: " Просто текст "}
	draft = announcementDraftFrom(textMsg)
	if draft.PhotoID != "" || draft.Text != "Просто текст" {
		t.Errorf("draft = %+v", draft)
	}

	if got := announcementBody(draft); got != "📢 <b>ОБЪЯВЛЕНИЕ</b>\n\nПросто текст" {
		t.Errorf("body = %q", got)
	}
	if got := announcementBody(announcementDraft{PhotoID: "big"}); got != "📢 <b>ОБЪЯВЛЕНИЕ</b>" {
		t.Errorf("body without text = %q", got)
	}
}

func TestAnnouncementPreviewBookkeeping(t *testing.T) {
	initTestDB(t)
	mainAdminID = 1
	const adminChat = int64(1)

	// Пустой черновик сбрасывает диалог и ничего не сохраняет.
	userStates[adminChat] = StateWaitingForAnnouncement
	previewAnnouncement(adminChat, nil, announcementDraft{})
	if _, ok := userStates[adminChat]; ok {
		t.Error("state not cleared for empty draft")
	}
	if _, ok := pendingAnnouncements[adminChat]; ok {
		t.Error("empty draft stored")
	}

	// Не-администратор предпросмотр не получает.
	const strangerChat = int64(2)
	userStates[strangerChat] = StateWaitingForAnnouncement
	previewAnnouncement(strangerChat, nil, announcementDraft{Text: "текст"})
	if _, ok := pendingAnnouncements[strangerChat]; ok {
		t.Error("draft stored for non-admin")
	}
	if _, ok := userStates[strangerChat]; ok {
		t.Error("state not cleared for non-admin")
	}
}

func TestMatchesKeyboardLayout(t *testing.T) {
	entries := []models.RosterEntry{
		{Name: "АА-11"}, {Name: "АА-12"}, {Name: "АА-13"}, {Name: "АА-14"},
	}
	kb := matchesKeyboard(entries, groupView)

	// Четыре кнопки в три колонки: ряд из трёх, ряд из одной, ряд «В главное меню».
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("rows = %d, want 3", len(kb.InlineKeyboard))
	}
	if len(kb.InlineKeyboard[0]) != 3 || len(kb.InlineKeyboard[1]) != 1 {
		t.Errorf("row sizes = %d, %d", len(kb.InlineKeyboard[0]), len(kb.InlineKeyboard[1]))
	}
	if got := *kb.InlineKeyboard[0][0].CallbackData; got != "group:АА-11" {
		t.Errorf("callback = %q", got)
	}

	kb = matchesKeyboard(entries[:1], teacherView)
	if got := *kb.InlineKeyboard[0][0].CallbackData; got != "teacher:АА-11" {
		t.Errorf("teacher callback = %q", got)
	}
}
