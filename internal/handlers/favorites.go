package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

func showFavoritesMenu(chatID int64, messageID int, bot *tgbotapi.BotAPI) {
	groups := Favorites(chatID, groupView)
	teachers := Favorites(chatID, teacherView)

	text := fmt.Sprintf("⭐ <b>ИЗБРАННОЕ</b>\n\n"+
		"📊 <b>Групп:</b> %d\n"+
		"👨‍🏫 <b>Преподавателей:</b> %d\n\n"+
		"Выберите раздел:", len(groups), len(teachers))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("⭐ Группы (%d)", len(groups)), "favorite_groups"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("⭐ Преподаватели (%d)", len(teachers)), "favorite_teachers"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 В главное меню", "back_to_main"),
		),
	)

	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = "HTML"
	edit.ReplyMarkup = &keyboard
	send(bot, edit)
}

// showFavorites показывает избранные группы или преподавателей кнопками.
func showFavorites(chatID int64, bot *tgbotapi.BotAPI, kind models.ViewKind) {
	names := Favorites(chatID, kind)

	if len(names) == 0 {
		var text string
		if kind == teacherView {
			text = "⭐ <b>ИЗБРАННЫЕ ПРЕПОДАВАТЕЛИ</b>\n\n" +
				"📭 У вас нет избранных преподавателей.\n\n" +
				"Чтобы добавить преподавателя в избранное, откройте его расписание " +
				"и нажмите кнопку «Добавить в избранное»."
		} else {
			text = "⭐ <b>ИЗБРАННЫЕ ГРУППЫ</b>\n\n" +
				"📭 У вас нет избранных групп.\n\n" +
				"Чтобы добавить группу в избранное, откройте её расписание " +
				"и нажмите кнопку «Добавить в избранное»."
		}
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = "HTML"
		msg.ReplyMarkup = backToMainKeyboard()
		send(bot, msg)
		return
	}

	header := "⭐ <b>ИЗБРАННЫЕ ГРУППЫ</b>"
	prefix := "group:"
	if kind == teacherView {
		header = "⭐ <b>ИЗБРАННЫЕ ПРЕПОДАВАТЕЛИ</b>"
		prefix = "teacher:"
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, n := range names {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ "+n, prefix+n),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🏠 В главное меню", "back_to_main"),
	))

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s\n\n📊 Всего: <b>%d</b>", header, len(names)))
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	send(bot, msg)
}
