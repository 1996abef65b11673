package usecase

import (
	"context"
	"fmt"

	"assistente-gestao/internal/export"
	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
	"assistente-gestao/internal/task/repository"
)

// Export renders the filtered task collection in the requested format.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input task.ExportInput) (task.ExportOutput, error) {
	format, err := export.ParseFormat(input.Format)
	if err != nil {
		return task.ExportOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidExport, err)
	}
	filter, err := export.ParseFilter(input.Filter)
	if err != nil {
		return task.ExportOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidExport, err)
	}

	tasks, err := uc.listAll(ctx, repository.ListTasksOptions{})
	if err != nil {
		return task.ExportOutput{}, err
	}

	today := uc.today()
	tasks = export.Apply(filter, tasks, today)

	data, err := export.Render(format, tasks, export.Options{
		Filter:     filter,
		Today:      today,
		ExportedAt: uc.interp.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "Export: user=%s failed to render %s: %v", sc.UserID, format, err)
		return task.ExportOutput{}, fmt.Errorf("failed to render export: %w", err)
	}

	uc.l.Infof(ctx, "Export: user=%s format=%s filter=%s count=%d", sc.UserID, format, filter, len(tasks))
	return task.ExportOutput{
		Filename:    export.Filename(format, today),
		ContentType: format.ContentType(),
		Data:        data,
		Count:       len(tasks),
	}, nil
}
