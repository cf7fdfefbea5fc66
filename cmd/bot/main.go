// cmd/bot/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contaflow-bot/internal/assistant"
	"contaflow-bot/internal/config"
	"contaflow-bot/internal/storage/postgres"
	"contaflow-bot/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Long polling для локальной разработки: webhook снимается, апдейты идут через getUpdates.
func main() {
	cfg := config.MustLoad()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if cfg.BotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pgxpool.New(ctx, cfg.DBConn)
	if err != nil {
		slog.Error("Failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := postgres.NewStorage(db)
	completer := assistant.NewClient(cfg, &http.Client{Timeout: 60 * time.Second})
	dispatcher := telegram.NewDispatcher(store, assistant.New(store, completer))

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("Failed to init bot", "error", err)
		os.Exit(1)
	}
	// getUpdates не работает, пока установлен webhook
	if err := telegram.DeleteWebhook(bot); err != nil {
		slog.Error("Failed to remove webhook", "error", err)
		os.Exit(1)
	}

	slog.Info("Bot started", "username", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			slog.Info("Bot stopped")
			return
		case update := <-updates:
			if err := dispatcher.HandleUpdate(ctx, bot, update); err != nil {
				slog.Error("Update failed", "update_id", update.UpdateID, "error", err)
			}
		}
	}
}
