// internal/handler/telegram.go
package handler

import (
	"context"
	"net/http"

	"contaflow-bot/internal/telegram"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type UpdateDispatcher interface {
	HandleUpdate(ctx context.Context, bot telegram.Sender, update tgbotapi.Update) error
}

type TelegramHandler struct {
	dispatcher UpdateDispatcher
	bot        telegram.Sender
}

func NewTelegramHandler(dispatcher UpdateDispatcher, bot telegram.Sender) *TelegramHandler {
	return &TelegramHandler{dispatcher: dispatcher, bot: bot}
}

// Webhook godoc
// @Summary Telegram webhook
// @Description Receives one Telegram update and answers the chat
// @Tags telegram
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool{"ok":true}
// @Failure 500 {object} map[string]string
// @Router /telegram [post]
func (h *TelegramHandler) Webhook(c *gin.Context) {
	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		respondInternal(c, "Ошибка парсинга обновления", err)
		return
	}

	if err := h.dispatcher.HandleUpdate(c.Request.Context(), h.bot, update); err != nil {
		respondInternal(c, "Webhook update failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
