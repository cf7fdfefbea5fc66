// cmd/api/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"contaflow-bot/internal/assistant"
	"contaflow-bot/internal/auth"
	"contaflow-bot/internal/config"
	"contaflow-bot/internal/handler"
	"contaflow-bot/internal/middleware"
	"contaflow-bot/internal/storage/postgres"
	"contaflow-bot/internal/telegram"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.MustLoad()

	// Настройка логгера
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	pool, err := pgxpool.New(context.Background(), cfg.DBConn)
	if err != nil {
		slog.Error("Не удалось подключиться к БД", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := postgres.NewStorage(pool)
	tokenService := auth.NewTokenService(cfg)

	completer := assistant.NewClient(cfg, &http.Client{Timeout: 60 * time.Second})
	if !completer.Configured() {
		slog.Warn("OPENAI_API_KEY не задан, свободный чат отвечает заглушкой")
	}
	dispatcher := telegram.NewDispatcher(store, assistant.New(store, completer))

	// Gin
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), handler.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Telegram webhook
	if cfg.BotToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			slog.Error("Не удалось инициализировать Telegram бота", "error", err)
			os.Exit(1)
		}
		slog.Info("Telegram бот готов", "username", bot.Self.UserName)

		if url := cfg.WebhookURL(); url != "" {
			if err := telegram.RegisterWebhook(context.Background(), bot, url, cfg.WebhookSecret, telegram.DefaultBackoff()); err != nil {
				slog.Error("Не удалось установить webhook", "error", err)
				os.Exit(1)
			}
		} else {
			slog.Warn("PUBLIC_URL не задан, webhook не регистрируется")
		}

		router.POST("/telegram",
			middleware.RequireTelegramSecret(cfg.WebhookSecret),
			handler.NewTelegramHandler(dispatcher, bot).Webhook,
		)
	} else {
		slog.Warn("TELEGRAM_BOT_TOKEN не задан, /telegram отключён")
	}

	// API-эндпоинты
	links := handler.NewLinkHandler(store, cfg.LinkCodeTTL)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.POST("/telegram/link-code", links.CreateLinkCode)
		v1.GET("/telegram/status", links.Status)
		v1.DELETE("/telegram", links.Disconnect)
	}

	// Запуск сервера
	slog.Info("🚀 Сервер запущен", "port", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		slog.Error("Сервер завершил работу с ошибкой", "error", err)
		os.Exit(1)
	}
}
