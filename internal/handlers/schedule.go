package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/espadawo/College-Timetable-Bot/internal/models"
)

// showSchedule отправляет расписание группы или преподавателя.
// При refresh кэшированный текст сбрасывается и строится заново; ошибка
// конвейера превращается в короткое сообщение, частичное расписание не
// показывается никогда.
func showSchedule(chatID int64, bot *tgbotapi.BotAPI, kind models.ViewKind, name string, refresh bool) {
	ctx := context.Background()

	var (
		text string
		err  error
	)
	if refresh {
		text, err = service.Refresh(ctx, kind, name)
	} else {
		text, err = service.Text(ctx, kind, name)
	}
	if err != nil {
		msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("❌ <b>Ошибка:</b> %s\n\nПопробуйте позже.", err))
		msg.ParseMode = "HTML"
		msg.ReplyMarkup = backToMainKeyboard()
		send(bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = scheduleKeyboard(chatID, kind, name)
	send(bot, msg)
}

func scheduleKeyboard(chatID int64, kind models.ViewKind, name string) tgbotapi.InlineKeyboardMarkup {
	kindWord := "group"
	listButton := tgbotapi.NewInlineKeyboardButtonData("👥 К поиску групп", "groups")
	if kind == teacherView {
		kindWord = "teacher"
		listButton = tgbotapi.NewInlineKeyboardButtonData("👨‍🏫 К поиску преподавателей", "teachers")
	}

	favText := "☆ Добавить в избранное"
	favData := fmt.Sprintf("add_favorite_%s:%s", kindWord, name)
	if IsFavorite(chatID, kind, name) {
		favText = "⭐ Удалить из избранного"
		favData = fmt.Sprintf("remove_favorite_%s:%s", kindWord, name)
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(favText, favData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Обновить", fmt.Sprintf("refresh_%s:%s", kindWord, name)),
		),
		tgbotapi.NewInlineKeyboardRow(
			listButton,
			tgbotapi.NewInlineKeyboardButtonData("🏠 В главное", "back_to_main"),
		),
	)
}
