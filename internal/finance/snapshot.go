package finance

import (
	"context"
	"fmt"

	"contaflow-bot/internal/domain"
	"contaflow-bot/internal/storage"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Reader is the read side of the store the snapshot needs.
type Reader interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	GetLeisureBudget(ctx context.Context, userID string) (*domain.LeisureBudget, error)
	storage.FinanceStorage
}

// Snapshot is a user's financial state as of one set of reads.
type Snapshot struct {
	Profile *domain.Profile
	Debts   []domain.Debt
	Goals   []domain.Goal
	Leisure *domain.LeisureBudget
	Incomes []domain.IncomeSource
}

// LoadSnapshot issues the five reads concurrently. There is no cross-read consistency.
func LoadSnapshot(ctx context.Context, r Reader, userID string) (*Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := r.GetProfile(gctx, userID)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		snap.Profile = p
		return nil
	})
	g.Go(func() error {
		debts, err := r.ListUnpaidDebts(gctx, userID)
		if err != nil {
			return fmt.Errorf("debts: %w", err)
		}
		snap.Debts = debts
		return nil
	})
	g.Go(func() error {
		goals, err := r.ListActiveGoals(gctx, userID)
		if err != nil {
			return fmt.Errorf("goals: %w", err)
		}
		snap.Goals = goals
		return nil
	})
	g.Go(func() error {
		leisure, err := r.GetLeisureBudget(gctx, userID)
		if err != nil {
			return fmt.Errorf("leisure budget: %w", err)
		}
		snap.Leisure = leisure
		return nil
	})
	g.Go(func() error {
		incomes, err := r.ListIncomeSources(gctx, userID)
		if err != nil {
			return fmt.Errorf("income sources: %w", err)
		}
		snap.Incomes = incomes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return &snap, nil
}

func (s *Snapshot) TotalIncome() decimal.Decimal {
	total := decimal.Zero
	for _, i := range s.Incomes {
		total = total.Add(i.Amount)
	}
	return total
}

func (s *Snapshot) TotalDebt() decimal.Decimal {
	total := decimal.Zero
	for _, d := range s.Debts {
		total = total.Add(d.RemainingAmount)
	}
	return total
}

func (s *Snapshot) MonthlyDebtPayments() decimal.Decimal {
	total := decimal.Zero
	for _, d := range s.Debts {
		total = total.Add(d.MonthlyPayment)
	}
	return total
}

// LeisureRemaining is zero without a budget row and may be negative with one.
func (s *Snapshot) LeisureRemaining() decimal.Decimal {
	if s.Leisure == nil {
		return decimal.Zero
	}
	return s.Leisure.Remaining()
}
