// internal/handler/link.go
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"contaflow-bot/internal/auth"
	"contaflow-bot/internal/domain"
	"contaflow-bot/internal/middleware"
	"contaflow-bot/internal/storage"

	"github.com/gin-gonic/gin"
)

type LinkStorage interface {
	storage.LinkCodeStorage
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UnlinkTelegram(ctx context.Context, userID string) error
}

type LinkHandler struct {
	store LinkStorage
	ttl   time.Duration
	now   func() time.Time
}

func NewLinkHandler(store LinkStorage, ttl time.Duration) *LinkHandler {
	return &LinkHandler{store: store, ttl: ttl, now: time.Now}
}

type LinkCodeResponse struct {
	Code      string    `json:"code"`
	Command   string    `json:"command"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateLinkCode godoc
// @Summary Issue a one-time Telegram link code
// @Description Replaces any unused code of the user with a fresh one
// @Tags telegram
// @Produce json
// @Success 200 {object} LinkCodeResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/telegram/link-code [post]
func (h *LinkHandler) CreateLinkCode(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id missing"})
		return
	}

	code, err := auth.NewLinkCode(userID, h.now(), h.ttl)
	if err != nil {
		respondInternal(c, "Failed to generate link code", err)
		return
	}
	if err := h.store.ReplaceLinkCode(c.Request.Context(), code); err != nil {
		respondInternal(c, "Failed to save link code", err)
		return
	}

	slog.Info("Link code issued", "user_id", userID, "expires_at", code.ExpiresAt)
	c.JSON(http.StatusOK, LinkCodeResponse{
		Code:      code.Code,
		Command:   "/vincular " + code.Code,
		ExpiresAt: code.ExpiresAt,
	})
}

// Status godoc
// @Summary Telegram connection status
// @Tags telegram
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /api/v1/telegram/status [get]
func (h *LinkHandler) Status(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id missing"})
		return
	}

	profile, err := h.store.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, "GetProfile failed", err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"connected": profile.TelegramChatID != nil})
}

// Disconnect godoc
// @Summary Unlink Telegram from the account
// @Tags telegram
// @Produce json
// @Success 200 {object} map[string]string{"status":"ok"}
// @Failure 404 {object} map[string]string
// @Router /api/v1/telegram [delete]
func (h *LinkHandler) Disconnect(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_id missing"})
		return
	}

	err := h.store.UnlinkTelegram(c.Request.Context(), userID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	case err != nil:
		respondInternal(c, "UnlinkTelegram failed", err)
		return
	}

	slog.Info("Telegram отвязан", "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
