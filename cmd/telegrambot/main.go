package main

import (
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/espadawo/College-Timetable-Bot/internal/cache"
	"github.com/espadawo/College-Timetable-Bot/internal/db"
	"github.com/espadawo/College-Timetable-Bot/internal/fetch"
	"github.com/espadawo/College-Timetable-Bot/internal/handlers"
	"github.com/espadawo/College-Timetable-Bot/internal/schedule"
)

func main() {
	// Создаем экземпляр бота с использованием токена.
	bot, err := tgbotapi.NewBotAPI(os.Getenv("TELEGRAM_BOT_TOKEN"))
	if err != nil {
		log.Panic(err)
	}
	log.Printf("Authorized on account %s", bot.Self.UserName)

	dbFile := os.Getenv("BOT_DB_FILE")
	if dbFile == "" {
		dbFile = "bot.db"
	}
	db.InitDB(dbFile)

	baseURL := os.Getenv("SCHEDULE_BASE_URL")
	if baseURL == "" {
		log.Panic("Не задан SCHEDULE_BASE_URL")
	}

	adminID, _ := strconv.ParseInt(os.Getenv("ADMIN_ID"), 10, 64)

	service := schedule.NewService(
		fetch.NewClient(baseURL),
		cache.NewRenderCache(),
		cache.NewRosterCache(),
	)
	handlers.Init(service, adminID)

	// Настройка получения обновлений.
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	// Обработка обновлений: как текстовые сообщения, так и callback-запросы.
	for update := range updates {
		if update.CallbackQuery != nil {
			handlers.ProcessCallback(update.CallbackQuery, bot)
			continue
		}
		if update.Message != nil {
			handlers.ProcessMessage(&update, bot)
		}
	}
}
