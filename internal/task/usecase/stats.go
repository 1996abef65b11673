package usecase

import (
	"context"

	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
	"assistente-gestao/internal/task/repository"
)

// Stats counts tasks by derived status relative to today.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	tasks, err := uc.listAll(ctx, repository.ListTasksOptions{})
	if err != nil {
		return task.StatsOutput{}, err
	}

	today := uc.today()
	out := task.StatsOutput{Total: len(tasks)}
	for _, t := range tasks {
		switch {
		case t.IsCompleted():
			out.Completed++
		case t.IsOverdue(today):
			out.Overdue++
			out.Pending++
		default:
			out.Pending++
		}
	}

	uc.l.Debugf(ctx, "Stats: user=%s total=%d pending=%d overdue=%d", sc.UserID, out.Total, out.Pending, out.Overdue)
	return out, nil
}
