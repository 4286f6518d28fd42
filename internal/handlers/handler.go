package handlers

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ProcessMessage — основной обработчик входящих сообщений.
// Текст вне команд интерпретируется по текущему состоянию диалога.
func ProcessMessage(update *tgbotapi.Update, bot *tgbotapi.BotAPI) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			RecordUser(chatID)
			delete(userStates, chatID)
			sendWelcome(chatID, bot)
		case "admin":
			showAdminMenu(chatID, bot)
		default:
			send(bot, tgbotapi.NewMessage(chatID, "Команда не распознана. Используйте /start."))
		}
		return
	}

	switch userStates[chatID] {
	case StateWaitingForGroupQuery:
		processRosterQuery(chatID, bot, text, groupView)
	case StateWaitingForTeacherQuery:
		processRosterQuery(chatID, bot, text, teacherView)
	case StateWaitingForAnnouncement:
		previewAnnouncement(chatID, bot, announcementDraft{Text: text})
	case StateWaitingForAnnouncementPhoto:
		previewAnnouncement(chatID, bot, announcementDraftFrom(update.Message))
	case StateAnnouncementConfirm:
		send(bot, tgbotapi.NewMessage(chatID, "Используйте кнопки под предпросмотром объявления."))
	case StateWaitingForNewAdmin:
		processNewAdmin(chatID, bot, text)
	default:
		send(bot, tgbotapi.NewMessage(chatID, "Для начала используйте /start"))
	}
}

// ProcessCallback — основной обработчик callback-запросов главного меню и
// карточек расписаний.
func ProcessCallback(callback *tgbotapi.CallbackQuery, bot *tgbotapi.BotAPI) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	switch {
	case data == "back_to_main":
		delete(userStates, chatID)
		bot.Request(tgbotapi.NewCallback(callback.ID, "🏠 Главное меню"))
		editToMainMenu(chatID, callback.Message.MessageID, bot)

	case data == "groups":
		askRosterQuery(chatID, bot, groupView)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "teachers":
		askRosterQuery(chatID, bot, teacherView)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "refresh_groups":
		refreshRoster(chatID, bot, groupView)
		bot.Request(tgbotapi.NewCallback(callback.ID, "🔄 Список обновлён"))

	case data == "refresh_teachers":
		refreshRoster(chatID, bot, teacherView)
		bot.Request(tgbotapi.NewCallback(callback.ID, "🔄 Список обновлён"))

	case data == "bells":
		showBells(chatID, callback.Message.MessageID, bot)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "favorites_menu":
		showFavoritesMenu(chatID, callback.Message.MessageID, bot)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "favorite_groups":
		showFavorites(chatID, bot, groupView)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "favorite_teachers":
		showFavorites(chatID, bot, teacherView)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "help_info":
		showHelp(chatID, callback.Message.MessageID, bot)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "about_bot":
		showAbout(chatID, callback.Message.MessageID, bot)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case strings.HasPrefix(data, "group:"):
		showSchedule(chatID, bot, groupView, strings.TrimPrefix(data, "group:"), false)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case strings.HasPrefix(data, "teacher:"):
		showSchedule(chatID, bot, teacherView, strings.TrimPrefix(data, "teacher:"), false)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case strings.HasPrefix(data, "refresh_group:"):
		showSchedule(chatID, bot, groupView, strings.TrimPrefix(data, "refresh_group:"), true)
		bot.Request(tgbotapi.NewCallback(callback.ID, "🔄 Обновлено"))

	case strings.HasPrefix(data, "refresh_teacher:"):
		showSchedule(chatID, bot, teacherView, strings.TrimPrefix(data, "refresh_teacher:"), true)
		bot.Request(tgbotapi.NewCallback(callback.ID, "🔄 Обновлено"))

	case strings.HasPrefix(data, "add_favorite_group:"):
		AddFavorite(chatID, groupView, strings.TrimPrefix(data, "add_favorite_group:"))
		showSchedule(chatID, bot, groupView, strings.TrimPrefix(data, "add_favorite_group:"), false)
		bot.Request(tgbotapi.NewCallback(callback.ID, "⭐ Добавлено в избранное"))

	case strings.HasPrefix(data, "remove_favorite_group:"):
		RemoveFavorite(chatID, groupView, strings.TrimPrefix(data, "remove_favorite_group:"))
		showSchedule(chatID, bot, groupView, strings.TrimPrefix(data, "remove_favorite_group:"), false)
		bot.Request(tgbotapi.NewCallback(callback.ID, "Удалено из избранного"))

	case strings.HasPrefix(data, "add_favorite_teacher:"):
		AddFavorite(chatID, teacherView, strings.TrimPrefix(data, "add_favorite_teacher:"))
		showSchedule(chatID, bot, teacherView, strings.TrimPrefix(data, "add_favorite_teacher:"), false)
		bot.Request(tgbotapi.NewCallback(callback.ID, "⭐ Добавлено в избранное"))

	case strings.HasPrefix(data, "remove_favorite_teacher:"):
		RemoveFavorite(chatID, teacherView, strings.TrimPrefix(data, "remove_favorite_teacher:"))
		showSchedule(chatID, bot, teacherView, strings.TrimPrefix(data, "remove_favorite_teacher:"), false)
		bot.Request(tgbotapi.NewCallback(callback.ID, "Удалено из избранного"))

	case data == "admin_announce":
		startAnnouncement(chatID, bot)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "announce_text":
		startTextAnnouncement(chatID, bot)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "announce_photo":
		startPhotoAnnouncement(chatID, bot)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "announce_send":
		bot.Request(tgbotapi.NewCallback(callback.ID, "📤 Отправка объявления"))
		sendAnnouncement(chatID, bot)

	case data == "announce_cancel":
		cancelAnnouncement(chatID, bot)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "admin_add":
		startAddAdmin(chatID, bot)
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	case data == "noop":
		bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	default:
		bot.Request(tgbotapi.NewCallback(callback.ID, "Нечего выбирать в данный момент."))
	}
}

// send отправляет сообщение и пишет ошибку в лог, не прерывая обработку.
func send(bot *tgbotapi.BotAPI, msg tgbotapi.Chattable) {
	if _, err := bot.Send(msg); err != nil {
		log.Printf("Ошибка отправки сообщения: %v", err)
	}
}
