package telegram

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractExpenseVerbRule(t *testing.T) {
	exp, matched, err := ExtractExpense("gastei 45,50 no mercado")
	if !matched || err != nil {
		t.Fatalf("expected match, got matched=%v err=%v", matched, err)
	}
	if exp.Rule != "verb" {
		t.Fatalf("expected verb rule, got %s", exp.Rule)
	}
	if exp.Amount.StringFixed(2) != "45.50" {
		t.Fatalf("expected 45.50, got %s", exp.Amount)
	}
	if exp.Description != "mercado" {
		t.Fatalf("expected mercado, got %q", exp.Description)
	}
}

func TestExtractExpenseVerbRuleWinsOverBare(t *testing.T) {
	// the bare rule alone would pick "30 de troco, ..."
	exp, matched, err := ExtractExpense("tinha 30 de troco, gastei 20 no bar")
	if !matched || err != nil {
		t.Fatalf("expected match, got matched=%v err=%v", matched, err)
	}
	if exp.Rule != "verb" || exp.Amount.StringFixed(2) != "20.00" || exp.Description != "bar" {
		t.Fatalf("expected verb rule 20.00/bar, got %+v", exp)
	}
}

func TestExtractExpenseBareRule(t *testing.T) {
	exp, matched, err := ExtractExpense("30 reais de uber")
	if !matched || err != nil {
		t.Fatalf("expected match, got matched=%v err=%v", matched, err)
	}
	if exp.Rule != "bare" || exp.Amount.StringFixed(2) != "30.00" || exp.Description != "uber" {
		t.Fatalf("unexpected extraction %+v", exp)
	}
}

func TestExtractExpenseVariants(t *testing.T) {
	cases := []struct {
		text   string
		amount string
		desc   string
	}{
		{"Paguei R$ 100 de luz", "100.00", "luz"},
		{"COMPREI 12.90 na padaria", "12.90", "padaria"},
		{"gastei 50 reais em presentes", "50.00", "presentes"},
		{"gastei 7 n lanche", "7.00", "lanche"},
		{"gastei 50\u00a0no mercado", "50.00", "mercado"},
		{"Paguei R$\u00a0100\u202fde luz", "100.00", "luz"},
		{"30\u00a0reais\u00a0de uber", "30.00", "uber"},
	}
	for _, tc := range cases {
		exp, matched, err := ExtractExpense(tc.text)
		if !matched || err != nil {
			t.Fatalf("%q: expected match, got matched=%v err=%v", tc.text, matched, err)
		}
		if exp.Amount.StringFixed(2) != tc.amount || exp.Description != tc.desc {
			t.Fatalf("%q: expected %s/%s, got %+v", tc.text, tc.amount, tc.desc, exp)
		}
	}
}

func TestExtractExpenseNoMatch(t *testing.T) {
	for _, text := range []string{"oi", "como estão minhas finanças?", "gastei muito ontem", "/ajuda"} {
		if _, matched, _ := ExtractExpense(text); matched {
			t.Fatalf("%q: expected no match", text)
		}
	}
}

func TestExtractExpenseAmountOutOfRange(t *testing.T) {
	for _, text := range []string{"gastei 0 no mercado", "gastei 0,00 no mercado", "gastei 1000001 no carro", "gastei 99999999999999999999 na casa"} {
		_, matched, err := ExtractExpense(text)
		if !matched || !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q: expected ErrInvalidAmount, got matched=%v err=%v", text, matched, err)
		}
	}
}

func TestExtractExpenseBoundaryAmounts(t *testing.T) {
	for _, text := range []string{"gastei 0,01 no chiclete", "gastei 1000000 na casa"} {
		if _, matched, err := ExtractExpense(text); !matched || err != nil {
			t.Fatalf("%q: expected valid expense, got matched=%v err=%v", text, matched, err)
		}
	}
}

func TestExtractExpenseEmptyDescription(t *testing.T) {
	_, matched, err := ExtractExpense(`gastei 10 no <>"'&`)
	if !matched || !errors.Is(err, ErrInvalidDescription) {
		t.Fatalf("expected ErrInvalidDescription, got matched=%v err=%v", matched, err)
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize(`<b>"bar" & 'grill'</b>`); got != "bbar  grill/b" {
		t.Fatalf("unexpected sanitize result %q", got)
	}

	long := strings.Repeat("ã", 250)
	if got := Sanitize(long); len([]rune(got)) != 200 {
		t.Fatalf("expected 200 runes, got %d", len([]rune(got)))
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"mercado",
		`<script>alert("x")</script>`,
		strings.Repeat("a&", 150),
		"padaria do zé",
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Fatalf("sanitize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("1234,56")
	if err != nil || got.StringFixed(2) != "1234.56" {
		t.Fatalf("expected 1234.56, got %s, %v", got, err)
	}
	if _, err := ParseAmount("abc"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
