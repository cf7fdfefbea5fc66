// cmd/webhook/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"contaflow-bot/internal/config"
	"contaflow-bot/internal/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const usage = "usage: webhook set|info|delete"

func main() {
	cfg := config.MustLoad()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if cfg.BotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("Failed to init bot", "error", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "set":
		url := cfg.WebhookURL()
		if url == "" {
			slog.Error("PUBLIC_URL not set")
			os.Exit(1)
		}
		err = telegram.RegisterWebhook(context.Background(), bot, url, cfg.WebhookSecret, telegram.DefaultBackoff())
	case "info":
		var s string
		if s, err = telegram.DescribeWebhook(bot); err == nil {
			fmt.Println(s)
		}
	case "delete":
		if err = telegram.DeleteWebhook(bot); err == nil {
			fmt.Println("webhook deleted")
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		slog.Error("Webhook command failed", "cmd", os.Args[1], "error", err)
		os.Exit(1)
	}
}
