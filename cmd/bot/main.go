// cmd/bot/main.go
package main

import (
	"log/slog"
	"os"

	"sampada/internal/bot"
	"sampada/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	if cfg.BotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("failed to start Telegram bot", "error", err)
		os.Exit(1)
	}
	slog.Info("bot started", "username", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.From == nil {
			continue
		}

		holder := bot.HolderFromNames(update.Message.From.FirstName, update.Message.From.LastName)
		slog.Info("📥 message received", "user_id", update.Message.From.ID, "text", update.Message.Text)

		msg := tgbotapi.NewMessage(update.Message.Chat.ID, bot.Reply(holder, update.Message.Text))
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := api.Send(msg); err != nil {
			slog.Error("failed to send reply", "error", err, "chat_id", update.Message.Chat.ID)
		}
	}
}
