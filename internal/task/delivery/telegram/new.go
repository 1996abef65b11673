package telegram

import (
	"github.com/gin-gonic/gin"

	"assistente-gestao/internal/middleware"
	"assistente-gestao/internal/task"
	pkgLog "assistente-gestao/pkg/log"
	pkgTelegram "assistente-gestao/pkg/telegram"
)

// Handler is the Telegram webhook delivery.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates the webhook handler. When secretToken is set, updates must carry
// it in the X-Telegram-Bot-Api-Secret-Token header. limiter throttles commands
// per chat and may be nil.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot, secretToken string, limiter *middleware.RateLimiter) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
		limiter:     limiter,
	}
}
