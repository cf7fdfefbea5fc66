package assistant

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"contaflow-bot/internal/finance"

	"github.com/google/uuid"
)

const (
	ReplyNotConfigured = "Tô sem acesso à IA agora 😕 (configuração faltando). Tenta de novo em instantes!"
	ReplyUnavailable   = "Desculpe, estou com dificuldades técnicas. Tente novamente em instantes! 🔧"
	ReplyEmpty         = "Desculpe, não consegui processar sua mensagem."
)

const telegramPrompt = `Você é o FIN, um assistente financeiro inteligente no Telegram.

## Sua Personalidade:
- Amigo sábio brasileiro que entende de finanças
- Fala de forma informal mas respeitosa
- Usa emojis com moderação (1-2 por mensagem)
- Empático e nunca julga

## Comandos Especiais:
Você pode detectar quando o usuário quer registrar uma despesa. Exemplos:
- "gastei 50 no mercado" → Registrar despesa de R$50 na categoria Mercado
- "paguei 100 de luz" → Registrar despesa de R$100 na categoria Contas

## Contexto Financeiro do Usuário:
{userContext}

## Formato:
- Respostas curtas (2-3 parágrafos máximo)
- Sempre termine com uma pergunta ou sugestão
- Lembre-se: você está no Telegram, seja direto!`

type Completer interface {
	Configured() bool
	Complete(ctx context.Context, system, user string) (string, error)
}

// Assistant answers free text with the user's financial digest as context.
type Assistant struct {
	reader    finance.Reader
	completer Completer
}

func New(reader finance.Reader, completer Completer) *Assistant {
	return &Assistant{reader: reader, completer: completer}
}

// SystemPrompt embeds the digest into the Telegram persona prompt.
func SystemPrompt(digest string) string {
	return strings.Replace(telegramPrompt, "{userContext}", digest, 1)
}

// Reply never fails: upstream problems turn into a fixed apology and are logged under an error id.
func (a *Assistant) Reply(ctx context.Context, userID, text string) string {
	if !a.completer.Configured() {
		slog.Error("Configuration error: completion API key not set")
		return ReplyNotConfigured
	}

	snap, err := finance.LoadSnapshot(ctx, a.reader, userID)
	if err != nil {
		a.logFailure("Failed to build financial context", userID, err)
		return ReplyUnavailable
	}

	answer, err := a.completer.Complete(ctx, SystemPrompt(snap.Digest()), text)
	switch {
	case errors.Is(err, ErrNotConfigured):
		slog.Error("Configuration error: completion API key not set")
		return ReplyNotConfigured
	case err != nil:
		a.logFailure("Completion request failed", userID, err)
		return ReplyUnavailable
	case answer == "":
		return ReplyEmpty
	}
	return answer
}

func (a *Assistant) logFailure(msg, userID string, err error) {
	attrs := []any{"error_id", uuid.NewString(), "user_id", userID, "error", err}
	slog.Error(msg, append(attrs, upstreamDetails(err)...)...)
}
