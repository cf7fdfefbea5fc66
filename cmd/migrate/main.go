// cmd/migrate/main.go
package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"contaflow-bot/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	cfg := config.MustLoad()
	command := flag.String("cmd", "up", "goose command: up, down, status")
	flag.Parse()

	db, err := sql.Open("pgx", cfg.DBConn)
	if err != nil {
		slog.Error("Не удалось открыть БД", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			slog.Error("Не удалось получить рабочую директорию", "error", err)
			os.Exit(1)
		}
		migrationsDir = filepath.Join(wd, "migrations")
	}

	if err := goose.SetDialect("postgres"); err != nil {
		slog.Error("Неизвестный диалект", "error", err)
		os.Exit(1)
	}

	slog.Info("Применяем миграции", "dir", migrationsDir, "cmd", *command)
	if err := goose.Run(*command, db, migrationsDir); err != nil {
		slog.Error("Миграции завершились с ошибкой", "error", err)
		os.Exit(1)
	}

	slog.Info("✅ Миграции применены")
}
