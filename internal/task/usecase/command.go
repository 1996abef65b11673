package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"assistente-gestao/internal/command"
	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
	"assistente-gestao/internal/task/repository"
	"assistente-gestao/pkg/datemath"
	"assistente-gestao/pkg/gcalendar"
	"assistente-gestao/pkg/metrics"
	"assistente-gestao/pkg/textnorm"
)

// ExecuteCommand interprets a Portuguese command against today's date and
// applies the resulting action to the task store.
func (uc *implUseCase) ExecuteCommand(ctx context.Context, sc model.Scope, input task.CommandInput) (task.CommandOutput, error) {
	result := uc.interp.ParseAt(input.Text, uc.interp.Today())
	if !result.OK() {
		uc.metrics.ObserveCommand("", metrics.OutcomeRejected)
		uc.l.Infof(ctx, "ExecuteCommand: user=%s rejected %q: %s", sc.UserID, input.Text, result.Reason)
		return task.CommandOutput{}, &task.RejectedError{Reason: result.Reason}
	}

	action := *result.Action
	uc.l.Infof(ctx, "ExecuteCommand: user=%s source=%s kind=%s", sc.UserID, sc.Source, action.Kind)

	out, err := uc.dispatch(ctx, sc, action)
	kind := string(action.Kind)
	switch {
	case err == nil:
		uc.metrics.ObserveCommand(kind, metrics.OutcomeOK)
	case errors.Is(err, task.ErrTaskNotFound):
		uc.metrics.ObserveCommand(kind, metrics.OutcomeNotFound)
		return task.CommandOutput{Action: action, Message: task.MsgTaskNotFound}, err
	default:
		uc.metrics.ObserveCommand(kind, metrics.OutcomeError)
		return task.CommandOutput{Action: action, Message: fmt.Sprintf(task.MsgCommandFailedFmt, err)}, err
	}

	out.Action = action
	return out, nil
}

func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, action command.Action) (task.CommandOutput, error) {
	notes := fmt.Sprintf("Criado via comando: \"%s\"", action.OriginalText)

	switch p := action.Payload.(type) {
	case command.CreateAutoPayload:
		company := p.CrossCompanyAutoLabel
		if company == "" {
			company = model.NotApplicable
		}
		return uc.createFromCommand(ctx, sc, task.CreateInput{
			DueDate:      p.DueDate,
			Type:         p.RecordType,
			Work:         p.WorkCode,
			Entity:       p.Entity,
			Company:      company,
			ContractCode: p.ContractCode,
			Description:  p.Description,
			Notes:        notes,
		}, task.MsgAutoCreated)

	case command.CreateContractPayload:
		return uc.createFromCommand(ctx, sc, task.CreateInput{
			DueDate:      p.DueDate,
			Type:         p.RecordType,
			Work:         p.WorkCode,
			Entity:       p.Entity,
			Company:      p.CrossCompanyAutoLabel,
			ContractCode: p.ContractCode,
			Description:  p.Description,
			Notes:        notes,
		}, task.MsgContractCreated)

	case command.RescheduleTaskPayload:
		t, err := uc.findByFragment(ctx, p.ContractCode)
		if err != nil {
			return task.CommandOutput{}, err
		}
		if err := validateInput(task.UpdateInput{ID: t.ID, DueDate: p.NewDueDate}); err != nil {
			return task.CommandOutput{}, err
		}
		t.DueDate = p.NewDueDate
		updated, err := uc.save(ctx, t)
		if err != nil {
			return task.CommandOutput{}, err
		}
		return task.CommandOutput{Task: &updated, Message: task.MsgTaskRescheduled}, nil

	case command.MarkCompletedPayload:
		t, err := uc.findByFragment(ctx, p.ContractCode)
		if err != nil {
			return task.CommandOutput{}, err
		}
		t.Status = p.NewStatus
		updated, err := uc.save(ctx, t)
		if err != nil {
			return task.CommandOutput{}, err
		}
		return task.CommandOutput{Task: &updated, Message: task.MsgTaskCompleted}, nil

	case command.ShowWeeklyPendingPayload:
		tasks, err := uc.weeklyPending(ctx)
		if err != nil {
			return task.CommandOutput{}, err
		}
		return task.CommandOutput{Tasks: tasks, Message: task.MsgWeeklyPending}, nil

	default:
		return task.CommandOutput{}, fmt.Errorf("unsupported action %s", action.Kind)
	}
}

func (uc *implUseCase) createFromCommand(ctx context.Context, sc model.Scope, input task.CreateInput, msg string) (task.CommandOutput, error) {
	created, err := uc.Create(ctx, sc, input)
	if err != nil {
		return task.CommandOutput{}, err
	}

	out := task.CommandOutput{Task: &created.Task, Message: msg}
	if link := uc.scheduleDeadline(ctx, created.Task); link != "" {
		out.CalendarLink = link
	}
	return out, nil
}

// scheduleDeadline creates the calendar event for a task. Failures are logged
// and never fail the command.
func (uc *implUseCase) scheduleDeadline(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	ev, err := uc.calendar.CreateDeadline(ctx, gcalendar.DeadlineRequest{
		CalendarID:  uc.calendarID,
		Summary:     fmt.Sprintf("%s · %s · %s", t.Type, t.Entity, t.Work),
		Description: t.Description,
		Date:        t.DueDate,
	})
	if err != nil {
		uc.l.Warnf(ctx, "scheduleDeadline: task=%s calendar event not created: %v", t.ID, err)
		return ""
	}
	return ev.HtmlLink
}

// findByFragment returns the first task whose contract code, then work,
// contains fragment. Pending tasks win over completed ones.
func (uc *implUseCase) findByFragment(ctx context.Context, fragment string) (model.Task, error) {
	tasks, err := uc.listAll(ctx, repository.ListTasksOptions{})
	if err != nil {
		return model.Task{}, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return !tasks[i].IsCompleted() && tasks[j].IsCompleted()
	})

	for _, t := range tasks {
		if t.ContractCode == model.NotApplicable {
			continue
		}
		if textnorm.Contains(t.ContractCode, fragment) {
			return t, nil
		}
	}
	for _, t := range tasks {
		if textnorm.Contains(t.Work, fragment) {
			return t, nil
		}
	}
	return model.Task{}, task.ErrTaskNotFound
}

// weeklyPending lists pending tasks due up to the Sunday closing the current
// week, overdue ones included.
func (uc *implUseCase) weeklyPending(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.listAll(ctx, repository.ListTasksOptions{
		Status:    model.StatusPending,
		DueBefore: datemath.Format(endOfWeek(uc.interp.Today())),
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate < tasks[j].DueDate
	})
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// ParseCommand interprets text without touching storage.
func (uc *implUseCase) ParseCommand(ctx context.Context, text string) command.Result {
	result := uc.interp.ParseAt(text, uc.interp.Today())
	if !result.OK() {
		uc.l.Debugf(ctx, "ParseCommand: %q rejected: %s", text, result.Reason)
	}
	return result
}

// Examples lists sample commands in rule order.
func (uc *implUseCase) Examples() []string {
	return uc.interp.Examples()
}

// Suggestions returns sample commands related to a partial input.
func (uc *implUseCase) Suggestions(partial string) []string {
	return uc.interp.Suggestions(partial)
}
