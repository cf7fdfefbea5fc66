// internal/storage/storage.go
package storage

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks contaflow-bot/internal/storage Store

import (
	"context"
	"errors"

	"contaflow-bot/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrLinkCodeInvalid covers unknown, used and expired codes alike.
	ErrLinkCodeInvalid = errors.New("link code invalid or expired")
)

type ProfileStorage interface {
	// FindProfileByChatID returns nil, nil when the chat is not linked.
	FindProfileByChatID(ctx context.Context, chatID int64) (*domain.Profile, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UnlinkTelegram(ctx context.Context, userID string) error
}

type LinkCodeStorage interface {
	// ReplaceLinkCode deletes the user's unused codes and stores the new one.
	ReplaceLinkCode(ctx context.Context, code domain.LinkCode) error
	// RedeemLinkCode marks the code used and binds chatID to its owner in one step.
	RedeemLinkCode(ctx context.Context, code string, chatID int64) (*domain.Profile, error)
}

type TransactionStorage interface {
	CreateTransaction(ctx context.Context, tx domain.Transaction) (int64, error)
}

type BudgetStorage interface {
	GetLeisureBudget(ctx context.Context, userID string) (*domain.LeisureBudget, error)
	// AddLeisureSpent increments spent_this_month atomically; nil, nil when the user has no budget.
	AddLeisureSpent(ctx context.Context, userID string, amount decimal.Decimal) (*domain.LeisureBudget, error)
}

type FinanceStorage interface {
	ListUnpaidDebts(ctx context.Context, userID string) ([]domain.Debt, error)
	ListActiveGoals(ctx context.Context, userID string) ([]domain.Goal, error)
	ListIncomeSources(ctx context.Context, userID string) ([]domain.IncomeSource, error)
}

type Store interface {
	ProfileStorage
	LinkCodeStorage
	TransactionStorage
	BudgetStorage
	FinanceStorage
}
