package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/espadawo/College-Timetable-Bot/internal/bells"
)

func showBells(chatID int64, messageID int, bot *tgbotapi.BotAPI) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, bells.Timetable())
	edit.ParseMode = "HTML"
	markup := backToMainKeyboard()
	edit.ReplyMarkup = &markup
	send(bot, edit)
}
