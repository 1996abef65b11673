package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"assistente-gestao/internal/command"
	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
	"assistente-gestao/internal/task/repository/sqlite"
	"assistente-gestao/internal/task/usecase"
	"assistente-gestao/pkg/gcalendar"
	"assistente-gestao/pkg/metrics"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar recording every requested deadline
type mockCalendar struct {
	mu       sync.Mutex
	requests []gcalendar.DeadlineRequest
	err      error
}

func (m *mockCalendar) CreateDeadline(ctx context.Context, req gcalendar.DeadlineRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary, HtmlLink: "https://calendar.example/evt-1", Date: req.Date}, nil
}

// refNow is Monday 2025-03-10, 10:00 UTC.
var refNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

var testScope = model.Scope{UserID: "tester", Source: model.SourceCLI}

func newInterpreter() *command.Interpreter {
	return command.New(
		command.WithClock(func() time.Time { return refNow }),
		command.WithLocation(time.UTC),
	)
}

func newTestUseCase(t *testing.T, cal usecase.Calendar) task.UseCase {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "gestao.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = sqlite.Migrate(context.Background(), db)
	require.NoError(t, err)

	repo := sqlite.New(db, &mockLogger{})
	return usecase.New(&mockLogger{}, repo, newInterpreter(), cal, "primary", metrics.New())
}

func seed(t *testing.T, uc task.UseCase, input task.CreateInput) model.Task {
	t.Helper()
	out, err := uc.Create(context.Background(), testScope, input)
	require.NoError(t, err)
	return out.Task
}

func autoInput(due, work, entity, code string) task.CreateInput {
	return task.CreateInput{
		DueDate:      due,
		Type:         model.TaskTypeAuto,
		Work:         work,
		Entity:       entity,
		Company:      "VIC C",
		ContractCode: code,
		Description:  "Auto de medição para " + entity + " - " + work,
	}
}

var errCalendarDown = errors.New("calendar unavailable")
