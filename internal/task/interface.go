package task

import (
	"context"

	"assistente-gestao/internal/command"
	"assistente-gestao/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Stats counts tasks by derived status for the current day.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)

	// ExecuteCommand interprets a Portuguese command and applies it to storage.
	ExecuteCommand(ctx context.Context, sc model.Scope, input CommandInput) (CommandOutput, error)

	// ParseCommand interprets a command without side effects.
	ParseCommand(ctx context.Context, text string) command.Result
	Examples() []string
	Suggestions(partial string) []string

	// Export renders the filtered task list in the requested format.
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}
