package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const welcomeText = "👋 <b>Добро пожаловать в бот расписания колледжа!</b>\n\n" +
	"Здесь вы можете посмотреть актуальное расписание занятий."

const helpText = "❓ <b>ПОМОЩЬ ПО БОТУ</b>\n\n" +
	"<b>Основные функции:</b>\n" +
	"• 👥 Группы — расписание учебной группы\n" +
	"• 👨‍🏫 Преподаватели — расписание преподавателя\n" +
	"• 🔔 Звонки — расписание звонков\n" +
	"• ⭐ Избранное — быстрый доступ к сохранённым расписаниям\n\n" +
	"Чтобы найти группу или преподавателя, выберите раздел и введите " +
	"название или фамилию (можно часть).\n\n" +
	"Кнопка «Обновить» на расписании перечитывает его с сайта."

const aboutText = "📱 <b>О БОТЕ</b>\n\n" +
	"Бот показывает расписание занятий колледжа с официального сайта.\n" +
	"Расписание кэшируется; кнопка «Обновить» загружает свежую версию."

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Группы", "groups"),
			tgbotapi.NewInlineKeyboardButtonData("👨‍🏫 Преподаватели", "teachers"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔔 Звонки", "bells"),
			tgbotapi.NewInlineKeyboardButtonData("⭐ Избранное", "favorites_menu"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ Помощь", "help_info"),
			tgbotapi.NewInlineKeyboardButtonData("📱 О боте", "about_bot"),
		),
	)
}

func backToMainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 В главное меню", "back_to_main"),
		),
	)
}

func sendWelcome(chatID int64, bot *tgbotapi.BotAPI) {
	msg := tgbotapi.NewMessage(chatID, welcomeText)
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = mainMenuKeyboard()
	send(bot, msg)
}

func editToMainMenu(chatID int64, messageID int, bot *tgbotapi.BotAPI) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, welcomeText)
	edit.ParseMode = "HTML"
	markup := mainMenuKeyboard()
	edit.ReplyMarkup = &markup
	send(bot, edit)
}

func showHelp(chatID int64, messageID int, bot *tgbotapi.BotAPI) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, helpText)
	edit.ParseMode = "HTML"
	markup := backToMainKeyboard()
	edit.ReplyMarkup = &markup
	send(bot, edit)
}

func showAbout(chatID int64, messageID int, bot *tgbotapi.BotAPI) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, aboutText)
	edit.ParseMode = "HTML"
	markup := backToMainKeyboard()
	edit.ReplyMarkup = &markup
	send(bot, edit)
}
