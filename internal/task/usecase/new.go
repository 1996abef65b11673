package usecase

import (
	"context"

	"assistente-gestao/internal/command"
	"assistente-gestao/internal/task"
	"assistente-gestao/internal/task/repository"
	"assistente-gestao/pkg/gcalendar"
	pkgLog "assistente-gestao/pkg/log"
	"assistente-gestao/pkg/metrics"
)

// Calendar schedules all-day deadline events. *gcalendar.Client satisfies it.
type Calendar interface {
	CreateDeadline(ctx context.Context, req gcalendar.DeadlineRequest) (*gcalendar.Event, error)
}

var _ task.UseCase = (*implUseCase)(nil)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	interp     *command.Interpreter
	calendar   Calendar
	calendarID string
	metrics    *metrics.Metrics
}

// New creates a new task UseCase instance. calendar and m may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	interp *command.Interpreter,
	calendar Calendar,
	calendarID string,
	m *metrics.Metrics,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		interp:     interp,
		calendar:   calendar,
		calendarID: calendarID,
		metrics:    m,
	}
}
