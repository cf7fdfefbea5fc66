package finance

import (
	"fmt"
	"strings"

	"contaflow-bot/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	barCells  = 10
	barFilled = "█"
	barEmpty  = "░"
)

// BRL renders an amount as "R$ 1234.50".
func BRL(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// Percent renders a goal's progress rounded to a whole number.
func Percent(g domain.Goal) string {
	return g.Progress().StringFixed(0) + "%"
}

// ProgressBar draws ten cells, one per full 10% of progress.
func ProgressBar(progress decimal.Decimal) string {
	filled := int(progress.Div(decimal.NewFromInt(10)).Floor().IntPart())
	filled = max(0, min(barCells, filled))
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, barCells-filled)
}

// Digest is the context block injected into the assistant prompt.
func (s *Snapshot) Digest() string {
	name := s.Profile.DisplayName("Não informado")

	debts := "Nenhuma"
	if len(s.Debts) > 0 {
		parts := make([]string, 0, len(s.Debts))
		for _, d := range s.Debts {
			parts = append(parts, fmt.Sprintf("%s (%s)", d.Name, BRL(d.RemainingAmount)))
		}
		debts = strings.Join(parts, ", ")
	}

	goals := "Nenhuma"
	if len(s.Goals) > 0 {
		parts := make([]string, 0, len(s.Goals))
		for _, g := range s.Goals {
			parts = append(parts, fmt.Sprintf("%s (%s)", g.Name, Percent(g)))
		}
		goals = strings.Join(parts, ", ")
	}

	lines := []string{
		"Nome: " + name,
		"Renda mensal: " + BRL(s.TotalIncome()),
		"Total de dívidas: " + BRL(s.TotalDebt()),
		"Dívidas ativas: " + debts,
		"Metas ativas: " + goals,
		"Lazer disponível: " + BRL(s.LeisureRemaining()),
	}
	return strings.Join(lines, "\n")
}
