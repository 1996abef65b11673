package telegram

import (
	"errors"
	"fmt"
	"strings"

	"assistente-gestao/internal/command"
	"assistente-gestao/internal/task"
)

const (
	msgEmptyCommand     = "❌ Comando vazio"
	msgNotRecognized    = "❌ Comando não reconhecido. Tente um dos exemplos disponíveis (/help)."
	msgProcessFailedFmt = "❌ Erro ao processar comando: %s"
	msgRateLimited      = "⏳ Demasiados comandos seguidos. Aguarde um momento."
)

// errorMessage returns the Portuguese feedback for a failed command.
func errorMessage(err error, out task.CommandOutput) string {
	var rejected *task.RejectedError
	switch {
	case errors.As(err, &rejected):
		switch {
		case rejected.Reason == command.ReasonEmpty:
			return msgEmptyCommand
		case rejected.Reason == command.ReasonNotRecognized:
			return msgNotRecognized
		default:
			detail := strings.TrimPrefix(rejected.Reason, command.ReasonExtractionPrefix)
			return fmt.Sprintf(msgProcessFailedFmt, detail)
		}
	case errors.Is(err, task.ErrTaskNotFound):
		return task.MsgTaskNotFound
	case out.Message != "":
		return out.Message
	default:
		return fmt.Sprintf(task.MsgCommandFailedFmt, err)
	}
}
