package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"assistente-gestao/internal/middleware"
	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
	pkgLog "assistente-gestao/pkg/log"
	pkgResponse "assistente-gestao/pkg/response"
	pkgTelegram "assistente-gestao/pkg/telegram"
)

const (
	msgWelcome = "👋 Bem-vindo ao Assistente de Gestão!\n\n" +
		"Envie comandos em português para gerir prazos de autos e contratos.\n" +
		"Use /help para ver exemplos e /sugestoes <texto> para obter modelos de comandos."
	msgHelpHeader        = "📖 Exemplos de comandos:"
	msgSuggestionsHeader = "💡 Sugestões:"
	msgNoWeeklyPending   = "Nenhuma tarefa pendente esta semana 🎉"
)

type handler struct {
	l           pkgLog.Logger
	uc          task.UseCase
	bot         *pkgTelegram.Bot
	secretToken string
	limiter     *middleware.RateLimiter
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so Telegram does not retry slow deliveries.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secretToken)) != 1 {
			h.l.Warnf(ctx, "telegram handler: invalid secret token from %s", c.ClientIP())
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	chatID := msg.Chat.ID

	// ---- Built-in commands ----
	name, arg := splitCommand(text)
	switch name {
	case "/start":
		return h.bot.SendMessage(ctx, chatID, msgWelcome)
	case "/help", "/ajuda":
		return h.bot.SendMessage(ctx, chatID, bulletList(msgHelpHeader, h.uc.Examples()))
	case "/sugestoes", "/sugestões":
		return h.bot.SendMessage(ctx, chatID, bulletList(msgSuggestionsHeader, h.uc.Suggestions(arg)))
	}

	if !h.limiter.Allow(strconv.FormatInt(chatID, 10)) {
		h.l.Warnf(ctx, "telegram handler: chat %d rate limited", chatID)
		return h.bot.SendMessage(ctx, chatID, msgRateLimited)
	}

	sc := model.Scope{
		UserID: fmt.Sprintf("telegram_%d", chatID),
		Source: model.SourceTelegram,
	}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}
	ctx = pkgLog.WithUserID(ctx, sc.UserID)

	out, err := h.uc.ExecuteCommand(ctx, sc, task.CommandInput{Text: text})
	if err != nil {
		h.l.Infof(ctx, "telegram handler: command failed: %v", err)
		return h.bot.SendMessage(ctx, chatID, errorMessage(err, out))
	}

	return h.bot.SendMessage(ctx, chatID, formatReply(out))
}

// splitCommand separates a leading "/command" (with an optional @botname) from its argument.
func splitCommand(text string) (string, string) {
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	name, arg, _ := strings.Cut(text, " ")
	name, _, _ = strings.Cut(name, "@")
	return strings.ToLower(name), strings.TrimSpace(arg)
}

func bulletList(header string, items []string) string {
	var b strings.Builder
	b.WriteString(header)
	for _, it := range items {
		b.WriteString("\n• ")
		b.WriteString(it)
	}
	return b.String()
}

// formatReply renders the feedback for an executed command.
func formatReply(out task.CommandOutput) string {
	var b strings.Builder
	b.WriteString(out.Message)

	if out.Task != nil {
		t := out.Task
		fmt.Fprintf(&b, "\n\n%s · %s · %s\n📅 %s", t.Type, t.Entity, t.Work, formatDate(t.DueDate))
		if t.ContractCode != "" && t.ContractCode != model.NotApplicable {
			fmt.Fprintf(&b, "\n📄 %s", t.ContractCode)
		}
	}
	if out.CalendarLink != "" {
		fmt.Fprintf(&b, "\n🗓 %s", out.CalendarLink)
	}

	if out.Task == nil && out.Tasks != nil {
		if len(out.Tasks) == 0 {
			b.WriteString("\n\n" + msgNoWeeklyPending)
		}
		for _, t := range out.Tasks {
			fmt.Fprintf(&b, "\n• %s · %s · %s (%s)", formatDate(t.DueDate), t.Type, t.Work, t.Entity)
		}
	}
	return b.String()
}

// formatDate renders YYYY-MM-DD as dd/mm/yyyy.
func formatDate(s string) string {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return s
	}
	return d.Format("02/01/2006")
}
