// cmd/devtoken/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"contaflow-bot/internal/auth"
	"contaflow-bot/internal/config"

	"github.com/google/uuid"
)

// Выдаёт JWT для локальной проверки /api/v1/telegram/*; в проде токены выпускает веб-приложение.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: devtoken <user-uuid>")
		os.Exit(2)
	}
	userID := os.Args[1]
	if _, err := uuid.Parse(userID); err != nil {
		slog.Error("Invalid user id", "user_id", userID, "error", err)
		os.Exit(1)
	}

	token, err := auth.NewTokenService(config.MustLoad()).GenerateToken(userID)
	if err != nil {
		slog.Error("Token generation failed", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
