package telegram

import (
	"github.com/gin-gonic/gin"

	"telegram-info-bot/internal/responder"
	pkgLog "telegram-info-bot/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc responder.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
