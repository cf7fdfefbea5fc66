package telegram

import (
	"errors"
	"regexp"
	"strings"

	val "contaflow-bot/internal/validator"

	"github.com/shopspring/decimal"
)

const maxDescriptionLen = 200

var (
	ErrInvalidAmount      = errors.New("amount out of range")
	ErrInvalidDescription = errors.New("empty description")

	minAmount = decimal.RequireFromString("0.01")
	maxAmount = decimal.NewFromInt(1_000_000)
)

type expenseRule struct {
	name    string
	pattern *regexp.Regexp
}

// Порядок важен: правило с глаголом проверяется первым, первое совпадение выигрывает.
// Разделителем считается и любой \p{Zs}, в том числе U+00A0.
var expenseRules = []expenseRule{
	{
		name:    "verb",
		pattern: regexp.MustCompile(`(?i)(?:gastei|paguei|comprei)[\s\p{Zs}]+(?:R\$[\s\p{Zs}]*)?(\d+(?:[.,]\d{2})?)[\s\p{Zs}]+(?:reais?[\s\p{Zs}]+)?(?:no?|em|de|na?)[\s\p{Zs}]+(.+)`),
	},
	{
		name:    "bare",
		pattern: regexp.MustCompile(`(?i)(\d+(?:[.,]\d{2})?)[\s\p{Zs}]+(?:reais?[\s\p{Zs}]+)?(?:no?|em|de|na?)[\s\p{Zs}]+(.+)`),
	},
}

type Expense struct {
	Rule        string
	Amount      decimal.Decimal
	Description string
}

// ExtractExpense applies the rules in order. matched is false when no rule fits;
// when a rule fits but the values are unusable, err is ErrInvalidAmount or ErrInvalidDescription.
func ExtractExpense(text string) (exp Expense, matched bool, err error) {
	for _, rule := range expenseRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		exp.Rule = rule.name
		exp.Amount, err = ParseAmount(m[1])
		if err != nil {
			return exp, true, err
		}

		exp.Description = strings.TrimSpace(Sanitize(strings.TrimSpace(m[2])))
		if val.Validate.Var(exp.Description, "notblank") != nil {
			return exp, true, ErrInvalidDescription
		}
		return exp, true, nil
	}
	return Expense{}, false, nil
}

// ParseAmount accepts "45,50" or "45.50"; valid range is [0.01, 1 000 000].
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.LessThan(minAmount) || amount.GreaterThan(maxAmount) {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

var stripChars = strings.NewReplacer("<", "", ">", "", `"`, "", "'", "", "&", "")

// Sanitize truncates to 200 characters and strips < > " ' &. Applying it twice changes nothing.
func Sanitize(s string) string {
	if r := []rune(s); len(r) > maxDescriptionLen {
		s = string(r[:maxDescriptionLen])
	}
	return stripChars.Replace(s)
}
