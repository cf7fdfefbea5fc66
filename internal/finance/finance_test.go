package finance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"contaflow-bot/internal/domain"
	"contaflow-bot/internal/storage/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const userID = "5b0c6c1e-8d52-4d6b-9a3e-1f2f4a0b9c11"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProgressBar(t *testing.T) {
	cases := []struct {
		progress string
		want     string
	}{
		{"100", "██████████"},
		{"0", "░░░░░░░░░░"},
		{"55", "█████░░░░░"},
		{"9.99", "░░░░░░░░░░"},
		{"150", "██████████"},
		{"-20", "░░░░░░░░░░"},
	}
	for _, tc := range cases {
		if got := ProgressBar(dec(tc.progress)); got != tc.want {
			t.Fatalf("ProgressBar(%s): expected %s, got %s", tc.progress, tc.want, got)
		}
	}
}

func TestGoalProgressZeroTarget(t *testing.T) {
	g := domain.Goal{Name: "Viagem", TargetAmount: decimal.Zero, CurrentAmount: dec("50")}
	if got := Percent(g); got != "0%" {
		t.Fatalf("expected 0%%, got %s", got)
	}
}

func TestPercentRounds(t *testing.T) {
	g := domain.Goal{TargetAmount: dec("300"), CurrentAmount: dec("125")}
	if got := Percent(g); got != "42%" {
		t.Fatalf("expected 42%%, got %s", got)
	}
}

func TestBRL(t *testing.T) {
	if got := BRL(dec("354.5")); got != "R$ 354.50" {
		t.Fatalf("expected R$ 354.50, got %s", got)
	}
	if got := BRL(dec("-12")); got != "R$ -12.00" {
		t.Fatalf("expected R$ -12.00, got %s", got)
	}
}

func TestDigest(t *testing.T) {
	snap := &Snapshot{
		Profile: &domain.Profile{UserID: userID, Name: "Ana"},
		Debts: []domain.Debt{
			{Name: "Cartão", RemainingAmount: dec("1200"), MonthlyPayment: dec("200")},
			{Name: "Carro", RemainingAmount: dec("8000.5"), MonthlyPayment: dec("650")},
		},
		Goals:   []domain.Goal{{Name: "Reserva", TargetAmount: dec("1000"), CurrentAmount: dec("250")}},
		Leisure: &domain.LeisureBudget{MonthlyAmount: dec("500"), SpentThisMonth: dec("620")},
		Incomes: []domain.IncomeSource{{Name: "Salário", Amount: dec("4000")}, {Name: "Freela", Amount: dec("750.25")}},
	}

	want := strings.Join([]string{
		"Nome: Ana",
		"Renda mensal: R$ 4750.25",
		"Total de dívidas: R$ 9200.50",
		"Dívidas ativas: Cartão (R$ 1200.00), Carro (R$ 8000.50)",
		"Metas ativas: Reserva (25%)",
		"Lazer disponível: R$ -120.00",
	}, "\n")
	if got := snap.Digest(); got != want {
		t.Fatalf("unexpected digest:\n%s\nwant:\n%s", got, want)
	}
	if got := snap.MonthlyDebtPayments().StringFixed(2); got != "850.00" {
		t.Fatalf("expected 850.00 monthly payments, got %s", got)
	}
}

func TestDigestEmpty(t *testing.T) {
	snap := &Snapshot{}

	got := snap.Digest()
	for _, line := range []string{"Nome: Não informado", "Dívidas ativas: Nenhuma", "Metas ativas: Nenhuma", "Lazer disponível: R$ 0.00"} {
		if !strings.Contains(got, line) {
			t.Fatalf("digest %q missing %q", got, line)
		}
	}
}

func TestLoadSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)

	store.EXPECT().GetProfile(gomock.Any(), userID).Return(&domain.Profile{UserID: userID, Name: "Ana"}, nil)
	store.EXPECT().ListUnpaidDebts(gomock.Any(), userID).Return([]domain.Debt{{Name: "Cartão", RemainingAmount: dec("10")}}, nil)
	store.EXPECT().ListActiveGoals(gomock.Any(), userID).Return(nil, nil)
	store.EXPECT().GetLeisureBudget(gomock.Any(), userID).Return(nil, nil)
	store.EXPECT().ListIncomeSources(gomock.Any(), userID).Return([]domain.IncomeSource{{Amount: dec("100")}}, nil)

	snap, err := LoadSnapshot(context.Background(), store, userID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Profile.Name != "Ana" || len(snap.Debts) != 1 || !snap.TotalIncome().Equal(dec("100")) {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if !snap.LeisureRemaining().IsZero() {
		t.Fatalf("expected zero leisure without budget, got %s", snap.LeisureRemaining())
	}
}

func TestLoadSnapshotPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	boom := errors.New("boom")

	store.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, nil).AnyTimes()
	store.EXPECT().ListUnpaidDebts(gomock.Any(), userID).Return(nil, boom).AnyTimes()
	store.EXPECT().ListActiveGoals(gomock.Any(), userID).Return(nil, nil).AnyTimes()
	store.EXPECT().GetLeisureBudget(gomock.Any(), userID).Return(nil, nil).AnyTimes()
	store.EXPECT().ListIncomeSources(gomock.Any(), userID).Return(nil, nil).AnyTimes()

	if _, err := LoadSnapshot(context.Background(), store, userID); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
