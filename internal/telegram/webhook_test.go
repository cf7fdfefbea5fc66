package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sethvargo/go-retry"
)

type fakeWebhookAPI struct {
	errs     []error
	calls    int
	params   tgbotapi.Params
	info     tgbotapi.WebhookInfo
	requests []tgbotapi.Chattable
}

func (f *fakeWebhookAPI) MakeRequest(endpoint string, params tgbotapi.Params) (*tgbotapi.APIResponse, error) {
	f.calls++
	f.params = params
	if endpoint != "setWebhook" {
		return nil, errors.New("unexpected endpoint " + endpoint)
	}
	if f.calls <= len(f.errs) {
		return &tgbotapi.APIResponse{}, f.errs[f.calls-1]
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeWebhookAPI) GetWebhookInfo() (tgbotapi.WebhookInfo, error) {
	return f.info, nil
}

func (f *fakeWebhookAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func fastBackoff() retry.Backoff {
	return retry.WithMaxRetries(3, retry.NewConstant(time.Millisecond))
}

func TestRegisterWebhookParams(t *testing.T) {
	api := &fakeWebhookAPI{}

	err := RegisterWebhook(context.Background(), api, "https://fin.example.com/telegram", "s3cret", fastBackoff())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if api.params["url"] != "https://fin.example.com/telegram" || api.params["secret_token"] != "s3cret" {
		t.Fatalf("unexpected params %v", api.params)
	}
	if api.params["allowed_updates"] != `["message"]` {
		t.Fatalf("unexpected allowed_updates %q", api.params["allowed_updates"])
	}
}

func TestRegisterWebhookWithoutSecret(t *testing.T) {
	api := &fakeWebhookAPI{}

	if err := RegisterWebhook(context.Background(), api, "https://fin.example.com/telegram", "", fastBackoff()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := api.params["secret_token"]; ok {
		t.Fatalf("secret_token should be omitted, got %v", api.params)
	}
}

func TestRegisterWebhookRetriesTransientErrors(t *testing.T) {
	api := &fakeWebhookAPI{errs: []error{
		errors.New("connection reset"),
		&tgbotapi.Error{Code: 429, Message: "Too Many Requests: retry after 1"},
	}}

	if err := RegisterWebhook(context.Background(), api, "https://fin.example.com/telegram", "", fastBackoff()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if api.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", api.calls)
	}
}

func TestRegisterWebhookStopsOnClientError(t *testing.T) {
	api := &fakeWebhookAPI{errs: []error{&tgbotapi.Error{Code: 400, Message: "Bad Request: bad webhook: HTTPS url must be provided"}}}

	err := RegisterWebhook(context.Background(), api, "http://insecure", "", fastBackoff())
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != 400 {
		t.Fatalf("expected telegram 400 error, got %v", err)
	}
	if api.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", api.calls)
	}
}

func TestRegisterWebhookGivesUp(t *testing.T) {
	boom := errors.New("no route to host")
	api := &fakeWebhookAPI{errs: []error{boom, boom, boom, boom, boom}}

	err := RegisterWebhook(context.Background(), api, "https://fin.example.com/telegram", "", fastBackoff())
	if !errors.Is(err, boom) {
		t.Fatalf("expected last error, got %v", err)
	}
	if api.calls != 4 {
		t.Fatalf("expected 4 attempts, got %d", api.calls)
	}
}

func TestDescribeWebhook(t *testing.T) {
	api := &fakeWebhookAPI{}
	if s, _ := DescribeWebhook(api); !strings.Contains(s, "not set") {
		t.Fatalf("unexpected description %q", s)
	}

	api.info = tgbotapi.WebhookInfo{URL: "https://fin.example.com/telegram", PendingUpdateCount: 2, LastErrorDate: 1700000000, LastErrorMessage: "Connection timed out"}
	s, err := DescribeWebhook(api)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for _, want := range []string{"https://fin.example.com/telegram", "pending updates: 2", "Connection timed out", "2023-11-14T22:13:20Z"} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %q in %q", want, s)
		}
	}
}

func TestDeleteWebhook(t *testing.T) {
	api := &fakeWebhookAPI{}
	if err := DeleteWebhook(api); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := api.requests[0].(tgbotapi.DeleteWebhookConfig); !ok || len(api.requests) != 1 {
		t.Fatalf("expected one deleteWebhook request, got %v", api.requests)
	}
}
