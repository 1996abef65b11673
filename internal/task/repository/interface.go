package repository

import (
	"context"

	"assistente-gestao/internal/model"
)

// Repository is the task data store. The sqlite and memos packages
// implement it.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetOneTask returns a zero Task (ID == "") when nothing matches.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	// UpdateTask returns a zero Task when the ID does not exist.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
