package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"contaflow-bot/internal/domain"
	"contaflow-bot/internal/finance"
	"contaflow-bot/internal/storage"
	val "contaflow-bot/internal/validator"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	cmdStart  = "/start"
	cmdHelp   = "/ajuda"
	cmdLink   = "/vincular"
	cmdSaldo  = "/saldo"
	cmdGoals  = "/metas"
	minCodeLn = 6
)

// Assistant answers free text that is neither a command nor an expense.
type Assistant interface {
	Reply(ctx context.Context, userID, text string) string
}

// Dispatcher turns one inbound message into one reply. It keeps no state between calls.
type Dispatcher struct {
	store     storage.Store
	assistant Assistant
	now       func() time.Time
}

func NewDispatcher(store storage.Store, assistant Assistant) *Dispatcher {
	return &Dispatcher{store: store, assistant: assistant, now: time.Now}
}

// Handle returns the reply text. An error means something unexpected failed
// and no reply should be sent.
func (d *Dispatcher) Handle(ctx context.Context, chatID int64, text string) (string, error) {
	// /vincular разбирается до обращения к БД: профиль для него не нужен
	if code, ok := linkArgument(text); ok {
		return d.link(ctx, chatID, code), nil
	}

	profile, err := d.store.FindProfileByChatID(ctx, chatID)
	if err != nil {
		return "", fmt.Errorf("find profile for chat %d: %w", chatID, err)
	}

	switch {
	case text == cmdStart || text == cmdHelp:
		return welcome(profile), nil
	case profile == nil:
		return msgLinkFirst, nil
	case text == cmdSaldo:
		return d.balance(ctx, profile.UserID), nil
	case text == cmdGoals:
		return d.goals(ctx, profile.UserID), nil
	}

	if reply, ok := d.recordExpense(ctx, profile.UserID, text); ok {
		return reply, nil
	}
	return d.assistant.Reply(ctx, profile.UserID, text), nil
}

// HandleUpdate runs one Telegram update end to end and sends the reply.
func (d *Dispatcher) HandleUpdate(ctx context.Context, bot Sender, update tgbotapi.Update) error {
	chatID, text, ok := IncomingText(update)
	if !ok {
		return nil
	}
	slog.Info("📥 Получено сообщение", "chat_id", chatID)

	reply, err := d.Handle(ctx, chatID, text)
	if err != nil {
		return err
	}
	SendReply(bot, chatID, reply)
	return nil
}

func linkArgument(text string) (string, bool) {
	if text == cmdLink {
		return "", true
	}
	if rest, ok := strings.CutPrefix(text, cmdLink+" "); ok {
		return rest, true
	}
	return "", false
}

func welcome(profile *domain.Profile) string {
	if profile == nil {
		return msgWelcomeGuest
	}
	return fmt.Sprintf(msgWelcomeLinked, escape(profile.DisplayName("amigo")))
}

// link обменивает одноразовый код на привязку чата к профилю.
func (d *Dispatcher) link(ctx context.Context, chatID int64, arg string) string {
	code := strings.ToUpper(strings.TrimSpace(arg))
	if err := val.Validate.Var(code, fmt.Sprintf("required,min=%d", minCodeLn)); err != nil {
		return msgCodeMalformed
	}

	profile, err := d.store.RedeemLinkCode(ctx, code, chatID)
	switch {
	case errors.Is(err, storage.ErrLinkCodeInvalid):
		slog.Info("Link code rejected", "chat_id", chatID)
		return msgCodeRejected
	case err != nil:
		slog.Error("Ошибка привязки аккаунта", "chat_id", chatID, "error", err)
		return msgLinkFailed
	}

	slog.Info("✅ Telegram привязан", "user_id", profile.UserID, "chat_id", chatID)
	return fmt.Sprintf(msgLinked, escape(profile.DisplayName("amigo")))
}

func (d *Dispatcher) recordExpense(ctx context.Context, userID, text string) (string, bool) {
	exp, matched, err := ExtractExpense(text)
	switch {
	case !matched:
		return "", false
	case errors.Is(err, ErrInvalidAmount):
		return msgInvalidAmount, true
	case err != nil:
		return msgInvalidDescription, true
	}

	now := d.now()
	_, err = d.store.CreateTransaction(ctx, domain.Transaction{
		UserID:      userID,
		Amount:      exp.Amount,
		Description: exp.Description,
		Type:        domain.TransactionExpense,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	})
	if err != nil {
		slog.Error("Ошибка записи расхода", "user_id", userID, "error", err)
		return msgExpenseFailed, true
	}
	slog.Info("Expense recorded", "user_id", userID, "amount", exp.Amount.StringFixed(2), "rule", exp.Rule)

	// every expense counts against the leisure budget, whatever the category
	budget, err := d.store.AddLeisureSpent(ctx, userID, exp.Amount)
	if err != nil {
		slog.Error("Ошибка обновления бюджета на досуг", "user_id", userID, "error", err)
	}

	amount, desc := finance.BRL(exp.Amount), escape(exp.Description)
	if budget == nil {
		return fmt.Sprintf(msgExpenseSaved, amount, desc), true
	}
	return fmt.Sprintf(msgExpenseSavedBudget, amount, desc, finance.BRL(budget.Remaining())), true
}
