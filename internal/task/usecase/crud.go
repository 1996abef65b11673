package usecase

import (
	"context"
	"fmt"

	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
	"assistente-gestao/internal/task/repository"
	"assistente-gestao/pkg/textnorm"
)

// Create validates the input, applies placeholder defaults and stores the task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if err := validateInput(input); err != nil {
		return task.CreateOutput{}, err
	}

	t := model.Task{
		DueDate:      input.DueDate,
		Type:         input.Type,
		Work:         input.Work,
		Entity:       input.Entity,
		Company:      input.Company,
		ContractCode: input.ContractCode,
		Description:  input.Description,
		Notes:        input.Notes,
		Status:       input.Status,
	}
	t.ApplyDefaults()

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		DueDate:      t.DueDate,
		Type:         t.Type,
		Work:         t.Work,
		Entity:       t.Entity,
		Company:      t.Company,
		ContractCode: t.ContractCode,
		Description:  t.Description,
		Notes:        t.Notes,
		Status:       t.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Create: user=%s failed to store task: %v", sc.UserID, err)
		return task.CreateOutput{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.metrics.ObserveTaskOperation("create")
	uc.l.Infof(ctx, "Create: user=%s source=%s task=%s due=%s", sc.UserID, sc.Source, created.ID, created.DueDate)
	return task.CreateOutput{Task: created}, nil
}

// List returns tasks matching the input filters. Entity, Work and Search are
// matched in memory since neither backend folds accents.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return task.ListOutput{}, fmt.Errorf("%w: unknown status %q", task.ErrInvalidPayload, input.Status)
	}
	if input.Type != "" && !input.Type.IsValid() {
		return task.ListOutput{}, fmt.Errorf("%w: unknown type %q", task.ErrInvalidPayload, input.Type)
	}

	opt := repository.ListTasksOptions{
		Status:  input.Status,
		Type:    input.Type,
		Company: input.Company,
	}

	textFilter := input.Entity != "" || input.Work != "" || input.Search != ""
	if !textFilter {
		opt.Limit = input.Limit
		opt.Offset = input.Offset
	}

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "List: user=%s failed to list tasks: %v", sc.UserID, err)
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	if textFilter {
		filtered := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if input.Entity != "" && !textnorm.Contains(t.Entity, input.Entity) {
				continue
			}
			if input.Work != "" && !textnorm.Contains(t.Work, input.Work) {
				continue
			}
			if !matchesSearch(t, input.Search) {
				continue
			}
			filtered = append(filtered, t)
		}
		total = len(filtered)
		tasks = paginate(filtered, input.Limit, input.Offset)
	}

	if tasks == nil {
		tasks = []model.Task{}
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Detail fetches one task by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update; empty input fields keep the stored value.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	if err := validateInput(input); err != nil {
		return task.UpdateOutput{}, err
	}

	existing, err := uc.getTask(ctx, input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	existing.DueDate = coalesce(input.DueDate, existing.DueDate)
	existing.Type = coalesce(input.Type, existing.Type)
	existing.Work = coalesce(input.Work, existing.Work)
	existing.Entity = coalesce(input.Entity, existing.Entity)
	existing.Company = coalesce(input.Company, existing.Company)
	existing.ContractCode = coalesce(input.ContractCode, existing.ContractCode)
	existing.Description = coalesce(input.Description, existing.Description)
	existing.Notes = coalesce(input.Notes, existing.Notes)
	existing.Status = coalesce(input.Status, existing.Status)

	updated, err := uc.save(ctx, existing)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	uc.l.Infof(ctx, "Update: user=%s task=%s", sc.UserID, updated.ID)
	return task.UpdateOutput{Task: updated}, nil
}

// Delete removes a task by ID.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getTask(ctx, id); err != nil {
		return err
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "Delete: user=%s failed to delete task %s: %v", sc.UserID, id, err)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	uc.metrics.ObserveTaskOperation("delete")
	uc.l.Infof(ctx, "Delete: user=%s task=%s", sc.UserID, id)
	return nil
}

func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	if id == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "getTask: failed to get task %s: %v", id, err)
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (uc *implUseCase) save(ctx context.Context, t model.Task) (model.Task, error) {
	updated, err := uc.repo.UpdateTask(ctx, updateOptionsFrom(t))
	if err != nil {
		uc.l.Errorf(ctx, "save: failed to update task %s: %v", t.ID, err)
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if updated.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}

	uc.metrics.ObserveTaskOperation("update")
	return updated, nil
}

// listAll pages through every task matching opt.
func (uc *implUseCase) listAll(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	opt.Limit = 0
	opt.Offset = 0
	tasks, _, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "listAll: failed to list tasks: %v", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
