package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sethvargo/go-retry"
)

// WebhookAPI is the part of *tgbotapi.BotAPI that manages the webhook.
type WebhookAPI interface {
	MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error)
	GetWebhookInfo() (tgbotapi.WebhookInfo, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// DefaultBackoff: 1s, 2s, 4s, then give up.
func DefaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(3, retry.NewExponential(time.Second))
}

// RegisterWebhook points Telegram at url. Only message updates are requested.
// Rate limits and server errors are retried, other client errors are not.
func RegisterWebhook(ctx context.Context, api WebhookAPI, url, secret string, backoff retry.Backoff) error {
	params := tgbotapi.Params{"url": url}
	params.AddNonEmpty("secret_token", secret)
	if err := params.AddInterface("allowed_updates", []string{"message"}); err != nil {
		return fmt.Errorf("encode allowed_updates: %w", err)
	}

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		_, err := api.MakeRequest("setWebhook", params)
		if err == nil {
			return nil
		}
		var apiErr *tgbotapi.Error
		if errors.As(err, &apiErr) && apiErr.Code >= 400 && apiErr.Code < 500 && apiErr.Code != http.StatusTooManyRequests {
			return err
		}
		slog.Warn("setWebhook failed, retrying", "attempt", attempt, "error", err)
		return retry.RetryableError(err)
	})
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	slog.Info("✅ Webhook зарегистрирован", "url", url, "attempts", attempt)
	return nil
}

func DeleteWebhook(api WebhookAPI) error {
	if _, err := api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: false}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	return nil
}

// DescribeWebhook renders getWebhookInfo for operators.
func DescribeWebhook(api WebhookAPI) (string, error) {
	info, err := api.GetWebhookInfo()
	if err != nil {
		return "", fmt.Errorf("get webhook info: %w", err)
	}
	if !info.IsSet() {
		return "webhook: not set (long polling)", nil
	}
	s := fmt.Sprintf("webhook: %s\npending updates: %d", info.URL, info.PendingUpdateCount)
	if info.LastErrorDate != 0 {
		s += fmt.Sprintf("\nlast error: %s (%s)", info.LastErrorMessage, time.Unix(int64(info.LastErrorDate), 0).UTC().Format(time.RFC3339))
	}
	return s, nil
}
