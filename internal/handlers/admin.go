package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showAdminMenu открывает меню администратора по команде /admin.
// Не-администраторам меню не показывается.
func showAdminMenu(chatID int64, bot *tgbotapi.BotAPI) {
	if !IsAdmin(chatID) {
		send(bot, tgbotapi.NewMessage(chatID, "Команда не распознана. Используйте /start."))
		return
	}

	msg := tgbotapi.NewMessage(chatID, "🛠 <b>МЕНЮ АДМИНИСТРАТОРА</b>\n\nВыберите действие:")
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📢 Объявление", "admin_announce"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Добавить администратора", "admin_add"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 В главное меню", "back_to_main"),
		),
	)
	send(bot, msg)
}

// announcementDraft — объявление до подтверждения рассылки администратором.
type announcementDraft struct {
	Text    string
	PhotoID string
}

// announcementDraftFrom собирает черновик из сообщения администратора.
// Из фотографии берётся самый крупный из присланных размеров.
func announcementDraftFrom(message *tgbotapi.Message) announcementDraft {
	if len(message.Photo) > 0 {
		return announcementDraft{
			Text:    strings.TrimSpace(message.Caption),
			PhotoID: message.Photo[len(message.Photo)-1].FileID,
		}
	}
	return announcementDraft{Text: strings.TrimSpace(message.Text)}
}

func announcementBody(draft announcementDraft) string {
	if draft.Text == "" {
		return "📢 <b>ОБЪЯВЛЕНИЕ</b>"
	}
	return "📢 <b>ОБЪЯВЛЕНИЕ</b>\n\n" + draft.Text
}

// startAnnouncement предлагает администратору выбрать тип объявления.
func startAnnouncement(chatID int64, bot *tgbotapi.BotAPI) {
	if !IsAdmin(chatID) {
		return
	}
	msg := tgbotapi.NewMessage(chatID, "📢 <b>СОЗДАНИЕ ОБЪЯВЛЕНИЯ</b>\n\nВыберите тип объявления:")
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Текст", "announce_text"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🖼 Текст + фото", "announce_photo"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", "announce_cancel"),
		),
	)
	send(bot, msg)
}

func startTextAnnouncement(chatID int64, bot *tgbotapi.BotAPI) {
	if !IsAdmin(chatID) {
		return
	}
	userStates[chatID] = StateWaitingForAnnouncement
	send(bot, tgbotapi.NewMessage(chatID, "📝 Введите текст объявления:"))
}

func startPhotoAnnouncement(chatID int64, bot *tgbotapi.BotAPI) {
	if !IsAdmin(chatID) {
		return
	}
	userStates[chatID] = StateWaitingForAnnouncementPhoto
	send(bot, tgbotapi.NewMessage(chatID, "📝 Отправьте фото с подписью-текстом объявления (можно и просто текст):"))
}

// previewAnnouncement сохраняет черновик и показывает предпросмотр
// с кнопками подтверждения. Пустой черновик сбрасывает диалог.
func previewAnnouncement(chatID int64, bot *tgbotapi.BotAPI, draft announcementDraft) {
	if !IsAdmin(chatID) || (draft.Text == "" && draft.PhotoID == "") {
		delete(userStates, chatID)
		return
	}
	pendingAnnouncements[chatID] = draft
	userStates[chatID] = StateAnnouncementConfirm

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Отправить всем", "announce_send"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", "announce_cancel"),
		),
	)
	preview := fmt.Sprintf("📢 <b>Предпросмотр объявления:</b>\n\n%s\n\nОтправить всем пользователям?", draft.Text)
	if draft.PhotoID != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(draft.PhotoID))
		photo.Caption = preview
		photo.ParseMode = "HTML"
		photo.ReplyMarkup = keyboard
		send(bot, photo)
		return
	}
	msg := tgbotapi.NewMessage(chatID, preview)
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = keyboard
	send(bot, msg)
}

// sendAnnouncement рассылает подтверждённое объявление всем известным пользователям.
func sendAnnouncement(chatID int64, bot *tgbotapi.BotAPI) {
	draft, ok := pendingAnnouncements[chatID]
	delete(pendingAnnouncements, chatID)
	delete(userStates, chatID)
	if !ok || !IsAdmin(chatID) {
		return
	}

	users, err := AllUsers()
	if err != nil {
		log.Printf("Ошибка рассылки объявления: %v", err)
		send(bot, tgbotapi.NewMessage(chatID, "⚠️ Не удалось получить список пользователей."))
		return
	}

	body := announcementBody(draft)
	sent := 0
	for _, id := range users {
		var out tgbotapi.Chattable
		if draft.PhotoID != "" {
			photo := tgbotapi.NewPhoto(id, tgbotapi.FileID(draft.PhotoID))
			photo.Caption = body
			photo.ParseMode = "HTML"
			out = photo
		} else {
			msg := tgbotapi.NewMessage(id, body)
			msg.ParseMode = "HTML"
			out = msg
		}
		if _, err := bot.Send(out); err != nil {
			// Пользователь мог заблокировать бота, рассылку не останавливаем.
			log.Printf("Ошибка отправки объявления пользователю %d: %v", id, err)
			continue
		}
		sent++
	}
	send(bot, tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Объявление отправлено: %d из %d.", sent, len(users))))
}

func cancelAnnouncement(chatID int64, bot *tgbotapi.BotAPI) {
	delete(pendingAnnouncements, chatID)
	delete(userStates, chatID)
	send(bot, tgbotapi.NewMessage(chatID, "❌ Отправка объявления отменена"))
}

func startAddAdmin(chatID int64, bot *tgbotapi.BotAPI) {
	if !IsAdmin(chatID) {
		return
	}
	userStates[chatID] = StateWaitingForNewAdmin
	send(bot, tgbotapi.NewMessage(chatID, "➕ Введите Telegram ID нового администратора:"))
}

func processNewAdmin(chatID int64, bot *tgbotapi.BotAPI, text string) {
	delete(userStates, chatID)
	if !IsAdmin(chatID) {
		return
	}

	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		send(bot, tgbotapi.NewMessage(chatID, "❌ Неверный формат ID. Ожидается число."))
		return
	}
	if err := AddAdmin(id); err != nil {
		log.Printf("Ошибка добавления администратора %d: %v", id, err)
		send(bot, tgbotapi.NewMessage(chatID, "⚠️ Не удалось добавить администратора."))
		return
	}
	send(bot, tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Администратор %d добавлен.", id)))
}
