package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrCommandRejected = errors.New("command rejected")
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrInvalidExport   = errors.New("invalid export request")
)

// RejectedError carries the interpreter's reason for refusing a command.
// It matches ErrCommandRejected with errors.Is.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return ErrCommandRejected.Error() + ": " + e.Reason
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrCommandRejected
}
