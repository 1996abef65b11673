package task

import (
	"assistente-gestao/internal/command"
	"assistente-gestao/internal/model"
)

// --- UseCase Inputs ---

// CreateInput holds the fields of a new task. Company and ContractCode fall
// back to model.NotApplicable; Status falls back to pending.
type CreateInput struct {
	DueDate      string           `validate:"required,datetime=2006-01-02"`
	Type         model.TaskType   `validate:"required,oneof=Auto Contrato Aditamento Desenvolvimento Outro"`
	Work         string           `validate:"required,max=200"`
	Entity       string           `validate:"required,max=200"`
	Company      string           `validate:"max=100"`
	ContractCode string           `validate:"max=100"`
	Description  string           `validate:"required,max=2000"`
	Notes        string           `validate:"max=4000"`
	Status       model.TaskStatus `validate:"omitempty,oneof=pendente concluido"`
}

// ListInput filters tasks. Entity, Work and Search match substrings
// ignoring case and accents.
type ListInput struct {
	Status  model.TaskStatus
	Type    model.TaskType
	Company string
	Entity  string
	Work    string
	Search  string
	Limit   int
	Offset  int
}

// UpdateInput is a partial update; empty fields keep their stored value.
type UpdateInput struct {
	ID           string           `validate:"required"`
	DueDate      string           `validate:"omitempty,datetime=2006-01-02"`
	Type         model.TaskType   `validate:"omitempty,oneof=Auto Contrato Aditamento Desenvolvimento Outro"`
	Work         string           `validate:"max=200"`
	Entity       string           `validate:"max=200"`
	Company      string           `validate:"max=100"`
	ContractCode string           `validate:"max=100"`
	Description  string           `validate:"max=2000"`
	Notes        string           `validate:"max=4000"`
	Status       model.TaskStatus `validate:"omitempty,oneof=pendente concluido"`
}

// CommandInput is a free-text Portuguese command.
type CommandInput struct {
	Text string
}

// ExportInput selects the output format and which tasks to include.
type ExportInput struct {
	Format string
	Filter string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Task model.Task
}

type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}

// StatsOutput summarises the task collection relative to today.
type StatsOutput struct {
	Total     int `json:"total"`
	Pending   int `json:"pendentes"`
	Overdue   int `json:"emAtraso"`
	Completed int `json:"concluidos"`
}

// CommandOutput is the effect of an executed command.
type CommandOutput struct {
	Action       command.Action
	Task         *model.Task  // created or changed task
	Tasks        []model.Task // ShowWeeklyPending listing
	Message      string       // user-facing feedback
	CalendarLink string
}

// ExportOutput is a rendered export file.
type ExportOutput struct {
	Filename    string
	ContentType string
	Data        []byte
	Count       int
}

// --- Command feedback ---

const (
	MsgAutoCreated      = "✅ Auto criado com sucesso!"
	MsgContractCreated  = "✅ Contrato criado com sucesso!"
	MsgTaskRescheduled  = "✅ Tarefa reagendada com sucesso!"
	MsgTaskCompleted    = "✅ Tarefa marcada como concluída!"
	MsgWeeklyPending    = "📋 Mostrando tarefas pendentes da semana"
	MsgTaskNotFound     = "❌ Tarefa não encontrada"
	MsgCommandFailedFmt = "❌ Erro ao executar comando: %s"
)
