package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistente-gestao/internal/command"
	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
)

func TestExecuteCommandCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("auto with calendar event", func(t *testing.T) {
		cal := &mockCalendar{}
		uc := newTestUseCase(t, cal)

		text := "Fazer auto à Confrasilvas, na VIC C, obra Club House para Terça, contrato VIC_0725"
		out, err := uc.ExecuteCommand(ctx, testScope, task.CommandInput{Text: text})
		require.NoError(t, err)

		assert.Equal(t, command.KindCreateAuto, out.Action.Kind)
		assert.Equal(t, task.MsgAutoCreated, out.Message)
		require.NotNil(t, out.Task)
		assert.Equal(t, "2025-03-11", out.Task.DueDate)
		assert.Equal(t, "Club House", out.Task.Work)
		assert.Equal(t, "Confrasilvas", out.Task.Entity)
		assert.Equal(t, "VIC C", out.Task.Company)
		assert.Equal(t, "VIC_0725", out.Task.ContractCode)
		assert.Equal(t, `Criado via comando: "`+text+`"`, out.Task.Notes)
		assert.Equal(t, "https://calendar.example/evt-1", out.CalendarLink)

		require.Len(t, cal.requests, 1)
		assert.Equal(t, "primary", cal.requests[0].CalendarID)
		assert.Equal(t, "2025-03-11", cal.requests[0].Date)
		assert.Equal(t, "Auto · Confrasilvas · Club House", cal.requests[0].Summary)
	})

	t.Run("contract survives calendar failure", func(t *testing.T) {
		cal := &mockCalendar{err: errCalendarDown}
		uc := newTestUseCase(t, cal)

		out, err := uc.ExecuteCommand(ctx, testScope, task.CommandInput{
			Text: "Criar contrato renovação anual para Construtora Silva em 15/02/2025",
		})
		require.NoError(t, err)
		assert.Equal(t, task.MsgContractCreated, out.Message)
		assert.Empty(t, out.CalendarLink)
		require.NotNil(t, out.Task)
		assert.Equal(t, model.TaskTypeContract, out.Task.Type)
		assert.Equal(t, model.GenericContractWork, out.Task.Work)
		assert.Equal(t, model.NotApplicable, out.Task.Company)
		assert.Equal(t, "2025-02-15", out.Task.DueDate)
	})

	t.Run("impossible explicit date", func(t *testing.T) {
		uc := newTestUseCase(t, nil)

		out, err := uc.ExecuteCommand(ctx, testScope, task.CommandInput{
			Text: "Criar contrato renovação para Construtora Silva em 31/02/2025",
		})
		assert.ErrorIs(t, err, task.ErrInvalidPayload)
		assert.Contains(t, out.Message, "❌ Erro ao executar comando:")
	})
}

func TestExecuteCommandRescheduleInvalidDate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		text string
	}{
		{"day out of range", "Auto VIC_0725 reagenda para 31/02/2025"},
		{"month out of range", "Auto VIC_0725 reagenda para 15/13/2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, nil)
			target := seed(t, uc, autoInput("2025-03-12", "Club House", "Confrasilvas", "VIC_0725"))

			out, err := uc.ExecuteCommand(ctx, testScope, task.CommandInput{Text: tt.text})
			assert.ErrorIs(t, err, task.ErrInvalidPayload)
			assert.Contains(t, out.Message, "❌ Erro ao executar comando:")

			stored, err := uc.Detail(ctx, testScope, target.ID)
			require.NoError(t, err)
			assert.Equal(t, "2025-03-12", stored.Task.DueDate)
		})
	}
}

func TestExecuteCommandRejected(t *testing.T) {
	uc := newTestUseCase(t, nil)

	tests := []struct {
		text   string
		reason string
	}{
		{"", command.ReasonEmpty},
		{"   ", command.ReasonEmpty},
		{"asdkjhasd", command.ReasonNotRecognized},
	}
	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			_, err := uc.ExecuteCommand(context.Background(), testScope, task.CommandInput{Text: tt.text})
			require.Error(t, err)
			assert.ErrorIs(t, err, task.ErrCommandRejected)

			var rejected *task.RejectedError
			require.True(t, errors.As(err, &rejected))
			assert.Equal(t, tt.reason, rejected.Reason)
		})
	}
}

func TestExecuteCommandReschedule(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)
	target := seed(t, uc, autoInput("2025-03-12", "Club House", "Confrasilvas", "VIC_0725"))
	seed(t, uc, autoInput("2025-03-12", "Edifício Sul", "Construções Lda", "HPR_01"))

	t.Run("by contract code fragment", func(t *testing.T) {
		out, err := uc.ExecuteCommand(ctx, testScope, task.CommandInput{Text: "Auto vic_07 reagenda para próxima quinta"})
		require.NoError(t, err)
		assert.Equal(t, task.MsgTaskRescheduled, out.Message)
		require.NotNil(t, out.Task)
		assert.Equal(t, target.ID, out.Task.ID)
		assert.Equal(t, "2025-03-13", out.Task.DueDate)
	})

	t.Run("by work fragment", func(t *testing.T) {
		out, err := uc.ExecuteCommand(ctx, testScope, task.CommandInput{Text: "Auto Edificio reagenda para 20/03/2025"})
		require.NoError(t, err)
		assert.Equal(t, "Edifício Sul", out.Task.Work)
		assert.Equal(t, "2025-03-20", out.Task.DueDate)
	})

	t.Run("not found", func(t *testing.T) {
		out, err := uc.ExecuteCommand(ctx, testScope, task.CommandInput{Text: "Auto XYZ_999 reagenda para amanhã"})
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
		assert.Equal(t, task.MsgTaskNotFound, out.Message)
		assert.Equal(t, command.KindRescheduleTask, out.Action.Kind)
	})
}

func TestExecuteCommandMarkCompleted(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	old := autoInput("2025-02-01", "Club House", "Confrasilvas", "VIC_0725")
	old.Status = model.StatusCompleted
	seed(t, uc, old)
	pending := seed(t, uc, autoInput("2025-03-12", "Club House II", "Confrasilvas", "VIC_0725B"))

	out, err := uc.ExecuteCommand(ctx, testScope, task.CommandInput{Text: "Marcar VIC_0725 como concluído"})
	require.NoError(t, err)
	assert.Equal(t, task.MsgTaskCompleted, out.Message)
	require.NotNil(t, out.Task)
	assert.Equal(t, pending.ID, out.Task.ID)
	assert.Equal(t, model.StatusCompleted, out.Task.Status)
}

func TestExecuteCommandWeeklyPending(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	seed(t, uc, autoInput("2025-03-16", "Domingo", "E", "A_1"))
	seed(t, uc, autoInput("2025-03-04", "Atrasada", "E", "A_2"))
	seed(t, uc, autoInput("2025-03-17", "Próxima semana", "E", "A_3"))
	seed(t, uc, autoInput("2025-03-12", "Quarta", "E", "A_4"))
	done := autoInput("2025-03-11", "Feita", "E", "A_5")
	done.Status = model.StatusCompleted
	seed(t, uc, done)

	out, err := uc.ExecuteCommand(ctx, testScope, task.CommandInput{Text: "mostrar pendentes para esta semana"})
	require.NoError(t, err)
	assert.Equal(t, task.MsgWeeklyPending, out.Message)
	assert.Nil(t, out.Task)

	works := make([]string, 0, len(out.Tasks))
	for _, tk := range out.Tasks {
		works = append(works, tk.Work)
	}
	assert.Equal(t, []string{"Atrasada", "Quarta", "Domingo"}, works)
}

func TestParseCommandHasNoSideEffects(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, nil)

	res := uc.ParseCommand(ctx, "Criar contrato renovação anual para Construtora Silva em amanhã")
	require.True(t, res.OK())
	assert.Equal(t, "2025-03-11", res.Action.Payload.(command.CreateContractPayload).DueDate)

	list, err := uc.List(ctx, testScope, task.ListInput{})
	require.NoError(t, err)
	assert.Zero(t, list.Total)

	assert.Len(t, uc.Examples(), 6)
	assert.NotEmpty(t, uc.Suggestions("marcar"))
}
