package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistente-gestao/internal/command"
	"assistente-gestao/internal/middleware"
	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
	pkgTelegram "assistente-gestao/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockTaskUseCase struct {
	task.UseCase // unused methods panic

	mu        sync.Mutex
	lastScope model.Scope
	lastText  string
	out       task.CommandOutput
	err       error
}

func (m *mockTaskUseCase) ExecuteCommand(ctx context.Context, sc model.Scope, input task.CommandInput) (task.CommandOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastScope = sc
	m.lastText = input.Text
	return m.out, m.err
}

func (m *mockTaskUseCase) Examples() []string {
	return []string{"Marcar VIC_0725 como concluído", "Mostrar pendentes para esta semana"}
}

func (m *mockTaskUseCase) Suggestions(partial string) []string {
	return []string{"sugestão para " + partial}
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type sentMessages struct {
	mu   sync.Mutex
	text []string
}

func (s *sentMessages) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.text...)
}

func newTestHandler(t *testing.T, uc task.UseCase, secret string, limiter *middleware.RateLimiter) (*handler, *sentMessages) {
	t.Helper()

	sent := &sentMessages{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var req pkgTelegram.SendMessageRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			sent.mu.Lock()
			sent.text = append(sent.text, req.Text)
			sent.mu.Unlock()
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(srv.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(srv.URL)

	return New(&mockLogger{}, uc, bot, secret, limiter).(*handler), sent
}

func message(text string) *pkgTelegram.Message {
	return &pkgTelegram.Message{
		MessageID: 1,
		From:      &pkgTelegram.User{ID: 42, Username: "gestor"},
		Chat:      &pkgTelegram.Chat{ID: 100, Type: "private"},
		Text:      text,
	}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestBuiltInCommands(t *testing.T) {
	ctx := context.Background()
	uc := &mockTaskUseCase{}
	h, sent := newTestHandler(t, uc, "", nil)

	require.NoError(t, h.processMessage(ctx, message("/start")))
	require.NoError(t, h.processMessage(ctx, message("/help@gestao_bot")))
	require.NoError(t, h.processMessage(ctx, message("/sugestoes marcar")))

	msgs := sent.all()
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs[0], "Bem-vindo")
	assert.Equal(t, "📖 Exemplos de comandos:\n• Marcar VIC_0725 como concluído\n• Mostrar pendentes para esta semana", msgs[1])
	assert.Equal(t, "💡 Sugestões:\n• sugestão para marcar", msgs[2])
	assert.Empty(t, uc.lastText)
}

func TestCommandFeedback(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		out  task.CommandOutput
		err  error
		want string
	}{
		{
			name: "auto created",
			out: task.CommandOutput{
				Message: task.MsgAutoCreated,
				Task: &model.Task{
					DueDate: "2025-03-11", Type: model.TaskTypeAuto,
					Entity: "Confrasilvas", Work: "Club House", ContractCode: "VIC_0725",
				},
				CalendarLink: "https://calendar.example/evt",
			},
			want: "✅ Auto criado com sucesso!\n\nAuto · Confrasilvas · Club House\n📅 11/03/2025\n📄 VIC_0725\n🗓 https://calendar.example/evt",
		},
		{
			name: "weekly pending",
			out: task.CommandOutput{
				Message: task.MsgWeeklyPending,
				Tasks: []model.Task{
					{DueDate: "2025-03-04", Type: model.TaskTypeAuto, Work: "Club House", Entity: "Confrasilvas"},
				},
			},
			want: "📋 Mostrando tarefas pendentes da semana\n• 04/03/2025 · Auto · Club House (Confrasilvas)",
		},
		{
			name: "weekly pending empty",
			out:  task.CommandOutput{Message: task.MsgWeeklyPending, Tasks: []model.Task{}},
			want: "📋 Mostrando tarefas pendentes da semana\n\nNenhuma tarefa pendente esta semana 🎉",
		},
		{
			name: "not recognized",
			err:  &task.RejectedError{Reason: command.ReasonNotRecognized},
			want: msgNotRecognized,
		},
		{
			name: "empty",
			err:  &task.RejectedError{Reason: command.ReasonEmpty},
			want: msgEmptyCommand,
		},
		{
			name: "extraction failed",
			err:  &task.RejectedError{Reason: command.ReasonExtractionPrefix + "missing contract code"},
			want: "❌ Erro ao processar comando: missing contract code",
		},
		{
			name: "not found",
			out:  task.CommandOutput{Message: task.MsgTaskNotFound},
			err:  task.ErrTaskNotFound,
			want: task.MsgTaskNotFound,
		},
		{
			name: "storage failure",
			err:  errors.New("disk full"),
			want: "❌ Erro ao executar comando: disk full",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockTaskUseCase{out: tt.out, err: tt.err}
			h, sent := newTestHandler(t, uc, "", nil)

			require.NoError(t, h.processMessage(ctx, message("Marcar VIC_0725 como concluído")))

			msgs := sent.all()
			require.Len(t, msgs, 1)
			assert.Equal(t, tt.want, msgs[0])
			assert.Equal(t, "telegram_42", uc.lastScope.UserID)
			assert.Equal(t, "gestor", uc.lastScope.Username)
			assert.Equal(t, model.SourceTelegram, uc.lastScope.Source)
		})
	}
}

func TestCommandRateLimitPerChat(t *testing.T) {
	ctx := context.Background()
	uc := &mockTaskUseCase{out: task.CommandOutput{Message: task.MsgTaskCompleted}}
	h, sent := newTestHandler(t, uc, "", middleware.NewRateLimiter(10))

	require.NoError(t, h.processMessage(ctx, message("Marcar A como concluído")))
	require.NoError(t, h.processMessage(ctx, message("Marcar B como concluído")))

	msgs := sent.all()
	require.Len(t, msgs, 2)
	assert.Equal(t, task.MsgTaskCompleted, msgs[0])
	assert.Equal(t, msgRateLimited, msgs[1])
	assert.Equal(t, "Marcar A como concluído", uc.lastText)
}

func TestHandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(h *handler, body string, secret string) *httptest.ResponseRecorder {
		engine := gin.New()
		engine.POST("/webhook/telegram", h.HandleWebhook)
		req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if secret != "" {
			req.Header.Set(pkgTelegram.SecretTokenHeader, secret)
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	t.Run("accepted and processed in background", func(t *testing.T) {
		uc := &mockTaskUseCase{out: task.CommandOutput{Message: task.MsgTaskCompleted}}
		h, sent := newTestHandler(t, uc, "s3cret", nil)

		body := `{"update_id":1,"message":{"message_id":1,"from":{"id":42},"chat":{"id":100,"type":"private"},"text":"Marcar VIC_0725 como concluído"}}`
		w := post(h, body, "s3cret")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "accepted")

		assert.Eventually(t, func() bool {
			return len(sent.all()) == 1
		}, 2*time.Second, 10*time.Millisecond)
		assert.Equal(t, task.MsgTaskCompleted, sent.all()[0])
	})

	t.Run("wrong secret", func(t *testing.T) {
		h, _ := newTestHandler(t, &mockTaskUseCase{}, "s3cret", nil)
		w := post(h, `{"update_id":1}`, "nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-message update ignored", func(t *testing.T) {
		h, _ := newTestHandler(t, &mockTaskUseCase{}, "", nil)
		w := post(h, `{"update_id":2}`, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ignored")
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newTestHandler(t, &mockTaskUseCase{}, "", nil)
		w := post(h, `{`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSplitCommand(t *testing.T) {
	name, arg := splitCommand("/Sugestoes@gestao_bot criar auto")
	assert.Equal(t, "/sugestoes", name)
	assert.Equal(t, "criar auto", arg)

	name, arg = splitCommand("Marcar X como concluído")
	assert.Empty(t, name)
	assert.Equal(t, "Marcar X como concluído", arg)
}
