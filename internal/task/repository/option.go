package repository

import "assistente-gestao/internal/model"

// CreateTaskOptions holds the fields of a new task. Defaults are applied
// by the use case before the call.
type CreateTaskOptions struct {
	DueDate      string
	Type         model.TaskType
	Work         string
	Entity       string
	Company      string
	ContractCode string
	Description  string
	Notes        string
	Status       model.TaskStatus
}

// GetOneTaskOptions holds filter parameters for fetching a single task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID           string
	ContractCode string
}

// ListTasksOptions holds exact-match filters and pagination.
type ListTasksOptions struct {
	Status    model.TaskStatus
	Type      model.TaskType
	Company   string
	DueBefore string // inclusive, YYYY-MM-DD
	Limit     int
	Offset    int
}

// UpdateTaskOptions carries the full new state of a task.
type UpdateTaskOptions struct {
	ID           string
	DueDate      string
	Type         model.TaskType
	Work         string
	Entity       string
	Company      string
	ContractCode string
	Description  string
	Notes        string
	Status       model.TaskStatus
}
