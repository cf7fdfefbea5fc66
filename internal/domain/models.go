// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Profile: пользователь приложения и его привязка к Telegram
type Profile struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

// DisplayName возвращает имя или запасной вариант, если имя пустое.
func (p *Profile) DisplayName(fallback string) string {
	if p == nil || p.Name == "" {
		return fallback
	}
	return p.Name
}

type LinkCode struct {
	ID        int64     `json:"-"`
	UserID    string    `json:"-"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"-"`
}

type Transaction struct {
	ID          int64           `json:"id"`
	UserID      string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Date        time.Time       `json:"date"`
}

type LeisureBudget struct {
	MonthlyAmount  decimal.Decimal `json:"monthly_amount"`
	SpentThisMonth decimal.Decimal `json:"spent_this_month"`
}

// Remaining может быть отрицательным, перерасход не обрезается.
func (b LeisureBudget) Remaining() decimal.Decimal {
	return b.MonthlyAmount.Sub(b.SpentThisMonth)
}

type Goal struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

// Progress: процент выполнения (current/target*100); при нулевой цели 0.
func (g Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}

type Debt struct {
	Name            string          `json:"name"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
}

type IncomeSource struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}
