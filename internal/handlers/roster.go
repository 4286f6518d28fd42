package handlers

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

// maxMatches ограничивает клавиатуру результатов поиска: Telegram не даёт
// отправить больше сотни кнопок, да и выбирать из сотни неудобно.
const maxMatches = 30

func askRosterQuery(chatID int64, bot *tgbotapi.BotAPI, kind models.ViewKind) {
	updatedAt, entries, err := service.Roster(context.Background(), kind)
	if err != nil {
		sendRosterError(chatID, bot, kind)
		return
	}

	if updatedAt == "" {
		updatedAt = "только что"
	}
	var text string
	if kind == teacherView {
		userStates[chatID] = StateWaitingForTeacherQuery
		text = fmt.Sprintf("👨‍🏫 <b>ПОИСК ПРЕПОДАВАТЕЛЯ</b>\n\n"+
			"📊 Всего преподавателей: <b>%d</b>\n"+
			"🔄 Обновлено: <i>%s</i>\n\n"+
			"Введите фамилию (можно часть):", len(entries), updatedAt)
	} else {
		userStates[chatID] = StateWaitingForGroupQuery
		text = fmt.Sprintf("👥 <b>ПОИСК ГРУППЫ</b>\n\n"+
			"📊 Всего групп: <b>%d</b>\n"+
			"🔄 Обновлено: <i>%s</i>\n\n"+
			"Введите название группы (можно часть):", len(entries), updatedAt)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = rosterActionsKeyboard(kind)
	send(bot, msg)
}

// processRosterQuery ищет введённый текст в списке и предлагает совпадения
// кнопками. Состояние не сбрасывается: можно сразу ввести другой запрос.
func processRosterQuery(chatID int64, bot *tgbotapi.BotAPI, query string, kind models.ViewKind) {
	if query == "" {
		send(bot, tgbotapi.NewMessage(chatID, "Введите непустой запрос."))
		return
	}

	_, entries, err := service.Roster(context.Background(), kind)
	if err != nil {
		sendRosterError(chatID, bot, kind)
		return
	}

	var matches []models.RosterEntry
	needle := strings.ToLower(query)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			matches = append(matches, e)
			if len(matches) == maxMatches {
				break
			}
		}
	}

	if len(matches) == 0 {
		msg := tgbotapi.NewMessage(chatID, "🔍 Ничего не найдено. Попробуйте другой запрос.")
		msg.ReplyMarkup = rosterActionsKeyboard(kind)
		send(bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🔍 Найдено: <b>%d</b>. Выберите:", len(matches)))
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = matchesKeyboard(matches, kind)
	send(bot, msg)
}

func refreshRoster(chatID int64, bot *tgbotapi.BotAPI, kind models.ViewKind) {
	if err := service.RefreshRoster(context.Background(), kind); err != nil {
		sendRosterError(chatID, bot, kind)
		return
	}
	askRosterQuery(chatID, bot, kind)
}

// matchesKeyboard раскладывает совпадения кнопками в три колонки.
func matchesKeyboard(matches []models.RosterEntry, kind models.ViewKind) tgbotapi.InlineKeyboardMarkup {
	prefix := "group:"
	if kind == teacherView {
		prefix = "teacher:"
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, m := range matches {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(m.Name, prefix+m.Name))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🏠 В главное меню", "back_to_main"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func rosterActionsKeyboard(kind models.ViewKind) tgbotapi.InlineKeyboardMarkup {
	refresh := "refresh_groups"
	favorites := "favorite_groups"
	if kind == teacherView {
		refresh = "refresh_teachers"
		favorites = "favorite_teachers"
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Избранное", favorites),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Обновить список", refresh),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 В главное меню", "back_to_main"),
		),
	)
}

func sendRosterError(chatID int64, bot *tgbotapi.BotAPI, kind models.ViewKind) {
	text := "❌ <b>Не удалось загрузить список групп.</b>\nПопробуйте позже."
	if kind == teacherView {
		text = "❌ <b>Не удалось загрузить список преподавателей.</b>\nПопробуйте позже."
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = backToMainKeyboard()
	send(bot, msg)
}
