package telegram

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/encoding/charmap"
)

// Sender is the part of *tgbotapi.BotAPI used to answer.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// IncomingText extracts the chat id and trimmed text; ok is false for updates that carry no text.
func IncomingText(update tgbotapi.Update) (chatID int64, text string, ok bool) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return 0, "", false
	}
	text = strings.TrimSpace(fixEncoding(msg.Text))
	if text == "" {
		return 0, "", false
	}
	return msg.Chat.ID, text, true
}

// SendReply отправляет ответ в Markdown. Если Telegram не смог разобрать разметку,
// текст уходит ещё раз без ParseMode; прочие ошибки только логируются.
func SendReply(bot Sender, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := bot.Send(msg)
	if isEntityParseError(err) {
		slog.Warn("Markdown rejected, resending as plain text", "chat_id", chatID, "error", err)
		msg.ParseMode = ""
		_, err = bot.Send(msg)
	}
	if err != nil {
		slog.Error("Не удалось отправить сообщение", "chat_id", chatID, "error", err)
	}
}

func isEntityParseError(err error) bool {
	var apiErr *tgbotapi.Error
	return errors.As(err, &apiErr) &&
		apiErr.Code == http.StatusBadRequest &&
		strings.Contains(apiErr.Message, "can't parse entities")
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func fixEncoding(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	// Пробуем перекодировать из windows-1251
	decoder := charmap.Windows1251.NewDecoder()
	fixed, err := decoder.String(s)
	if err == nil && utf8.ValidString(fixed) {
		return fixed
	}

	return strings.ToValidUTF8(s, "")
}
