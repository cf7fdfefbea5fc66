package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"contaflow-bot/internal/finance"
)

func (d *Dispatcher) balance(ctx context.Context, userID string) string {
	snap, err := finance.LoadSnapshot(ctx, d.store, userID)
	if err != nil {
		slog.Error("Ошибка загрузки баланса", "user_id", userID, "error", err)
		return msgLoadFailed
	}
	return fmt.Sprintf(msgBalance,
		finance.BRL(snap.TotalIncome()),
		finance.BRL(snap.TotalDebt()),
		finance.BRL(snap.MonthlyDebtPayments()),
		finance.BRL(snap.LeisureRemaining()),
	)
}

func (d *Dispatcher) goals(ctx context.Context, userID string) string {
	goals, err := d.store.ListActiveGoals(ctx, userID)
	if err != nil {
		slog.Error("Ошибка загрузки целей", "user_id", userID, "error", err)
		return msgLoadFailed
	}
	if len(goals) == 0 {
		return msgNoGoals
	}

	var b strings.Builder
	b.WriteString(msgGoalsHeader)
	for _, g := range goals {
		fmt.Fprintf(&b, msgGoalLine,
			escape(g.Name),
			finance.ProgressBar(g.Progress()),
			finance.Percent(g),
			finance.BRL(g.CurrentAmount),
			finance.BRL(g.TargetAmount),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}
