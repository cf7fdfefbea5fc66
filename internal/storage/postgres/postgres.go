// internal/storage/postgres/postgres.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"contaflow-bot/internal/domain"
	"contaflow-bot/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

var _ storage.Store = (*Storage)(nil)

// === ProfileStorage ===

func (s *Storage) FindProfileByChatID(ctx context.Context, chatID int64) (*domain.Profile, error) {
	var p domain.Profile
	err := s.db.QueryRow(ctx, `
		SELECT user_id::text, COALESCE(name, ''), telegram_chat_id
		FROM profiles
		WHERE telegram_chat_id = $1
	`, chatID).Scan(&p.UserID, &p.Name, &p.TelegramChatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find profile by chat: %w", err)
	}
	return &p, nil
}

func (s *Storage) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	var p domain.Profile
	err := s.db.QueryRow(ctx, `
		SELECT user_id::text, COALESCE(name, ''), telegram_chat_id
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.Name, &p.TelegramChatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

func (s *Storage) UnlinkTelegram(ctx context.Context, userID string) error {
	result, err := s.db.Exec(ctx, `
		UPDATE profiles SET telegram_chat_id = NULL WHERE user_id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("unlink telegram: %w", err)
	}
	if result.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// === LinkCodeStorage ===

func (s *Storage) ReplaceLinkCode(ctx context.Context, code domain.LinkCode) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM telegram_link_codes WHERE user_id = $1 AND used = false
	`, code.UserID)
	if err != nil {
		return fmt.Errorf("clear unused codes: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO telegram_link_codes (user_id, code, expires_at) VALUES ($1, $2, $3)
	`, code.UserID, code.Code, code.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert link code: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Storage) RedeemLinkCode(ctx context.Context, code string, chatID int64) (*domain.Profile, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// FOR UPDATE + повторная проверка used=false: из двух одновременных попыток выигрывает одна
	var userID string
	err = tx.QueryRow(ctx, `
		UPDATE telegram_link_codes SET used = true
		WHERE used = false AND id = (
			SELECT id FROM telegram_link_codes
			WHERE code = $1 AND used = false AND expires_at > now()
			ORDER BY created_at DESC
			LIMIT 1
			FOR UPDATE
		)
		RETURNING user_id::text
	`, code).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrLinkCodeInvalid
		}
		return nil, fmt.Errorf("redeem code: %w", err)
	}

	// один чат принадлежит не больше чем одному профилю
	_, err = tx.Exec(ctx, `
		UPDATE profiles SET telegram_chat_id = NULL
		WHERE telegram_chat_id = $1 AND user_id <> $2
	`, chatID, userID)
	if err != nil {
		return nil, fmt.Errorf("release chat from other profiles: %w", err)
	}

	var p domain.Profile
	err = tx.QueryRow(ctx, `
		UPDATE profiles SET telegram_chat_id = $1
		WHERE user_id = $2
		RETURNING user_id::text, COALESCE(name, ''), telegram_chat_id
	`, chatID, userID).Scan(&p.UserID, &p.Name, &p.TelegramChatID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile %s for link code: %w", userID, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("link profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	slog.Debug("Link code redeemed", "user_id", userID, "chat_id", chatID)
	return &p, nil
}

// === TransactionStorage ===

func (s *Storage) CreateTransaction(ctx context.Context, t domain.Transaction) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, `
		INSERT INTO transactions (user_id, amount, description, type, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, t.UserID, t.Amount, t.Description, t.Type, t.Date).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	return id, nil
}

// === BudgetStorage ===

func (s *Storage) GetLeisureBudget(ctx context.Context, userID string) (*domain.LeisureBudget, error) {
	var b domain.LeisureBudget
	err := s.db.QueryRow(ctx, `
		SELECT monthly_amount, COALESCE(spent_this_month, 0)
		FROM leisure_budget
		WHERE user_id = $1
	`, userID).Scan(&b.MonthlyAmount, &b.SpentThisMonth)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leisure budget: %w", err)
	}
	return &b, nil
}

func (s *Storage) AddLeisureSpent(ctx context.Context, userID string, amount decimal.Decimal) (*domain.LeisureBudget, error) {
	var b domain.LeisureBudget
	err := s.db.QueryRow(ctx, `
		UPDATE leisure_budget
		SET spent_this_month = COALESCE(spent_this_month, 0) + $2
		WHERE user_id = $1
		RETURNING monthly_amount, spent_this_month
	`, userID, amount).Scan(&b.MonthlyAmount, &b.SpentThisMonth)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("add leisure spent: %w", err)
	}
	return &b, nil
}

// === FinanceStorage ===

func (s *Storage) ListUnpaidDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	rows, err := s.db.Query(ctx, `
		SELECT name, remaining_amount, COALESCE(monthly_payment, 0)
		FROM debts
		WHERE user_id = $1 AND is_paid = false
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query debts: %w", err)
	}
	defer rows.Close()

	var debts []domain.Debt
	for rows.Next() {
		var d domain.Debt
		if err := rows.Scan(&d.Name, &d.RemainingAmount, &d.MonthlyPayment); err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

func (s *Storage) ListActiveGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	rows, err := s.db.Query(ctx, `
		SELECT name, target_amount, COALESCE(current_amount, 0)
		FROM goals
		WHERE user_id = $1 AND is_achieved = false
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		var g domain.Goal
		if err := rows.Scan(&g.Name, &g.TargetAmount, &g.CurrentAmount); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Storage) ListIncomeSources(ctx context.Context, userID string) ([]domain.IncomeSource, error) {
	rows, err := s.db.Query(ctx, `
		SELECT name, amount
		FROM income_sources
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query income sources: %w", err)
	}
	defer rows.Close()

	var incomes []domain.IncomeSource
	for rows.Next() {
		var i domain.IncomeSource
		if err := rows.Scan(&i.Name, &i.Amount); err != nil {
			return nil, fmt.Errorf("scan income source: %w", err)
		}
		incomes = append(incomes, i)
	}
	return incomes, rows.Err()
}
