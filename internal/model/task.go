package model

import "time"

// TaskType classifies a tracked deadline.
type TaskType string

const (
	TaskTypeAuto        TaskType = "Auto"
	TaskTypeContract    TaskType = "Contrato"
	TaskTypeAmendment   TaskType = "Aditamento"
	TaskTypeDevelopment TaskType = "Desenvolvimento"
	TaskTypeOther       TaskType = "Outro"
)

// TaskTypes lists every accepted task type.
var TaskTypes = []TaskType{
	TaskTypeAuto,
	TaskTypeContract,
	TaskTypeAmendment,
	TaskTypeDevelopment,
	TaskTypeOther,
}

// IsValid reports whether t is one of the known task types.
func (t TaskType) IsValid() bool {
	for _, v := range TaskTypes {
		if v == t {
			return true
		}
	}
	return false
}

// TaskStatus is the processing state of a task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pendente"
	StatusCompleted TaskStatus = "concluido"
)

// IsValid reports whether s is a known status.
func (s TaskStatus) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Placeholder values used when a field does not apply.
const (
	NotApplicable       = "Não aplicável"
	GenericContractWork = "Contrato geral"
	UnspecifiedWork     = "Obra não especificada"
)

// DateLayout is the storage format of DueDate.
const DateLayout = "2006-01-02"

// Display labels derived from status and due date.
const (
	DisplayCompleted    = "Concluído"
	DisplayOverdue      = "Em atraso"
	DisplayPendingToday = "Pendente (hoje)"
	DisplayPending      = "Pendente"
)

// Task is a contract or work-order deadline.
type Task struct {
	ID           string
	DueDate      string // YYYY-MM-DD
	Type         TaskType
	Work         string // obra
	Entity       string
	Company      string // auto entre empresa
	ContractCode string
	Description  string
	Notes        string
	Status       TaskStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsOverdue reports whether a pending task is due before today.
// DueDate and today compare lexically since both are YYYY-MM-DD.
func (t Task) IsOverdue(today string) bool {
	return !t.IsCompleted() && t.DueDate != "" && t.DueDate < today
}

// DisplayStatus returns the label shown to users for the given reference day.
func (t Task) DisplayStatus(today string) string {
	switch {
	case t.IsCompleted():
		return DisplayCompleted
	case t.IsOverdue(today):
		return DisplayOverdue
	case t.DueDate == today:
		return DisplayPendingToday
	default:
		return DisplayPending
	}
}

// ApplyDefaults fills the fields that fall back to placeholder values.
func (t *Task) ApplyDefaults() {
	if t.Company == "" {
		t.Company = NotApplicable
	}
	if t.ContractCode == "" {
		t.ContractCode = NotApplicable
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
}
