package command

import (
	"encoding/json"

	"assistente-gestao/internal/model"
)

// ActionKind is the intent recognised in a command.
type ActionKind string

const (
	KindCreateAuto        ActionKind = "CreateAuto"
	KindCreateContract    ActionKind = "CreateContract"
	KindRescheduleTask    ActionKind = "RescheduleTask"
	KindMarkCompleted     ActionKind = "MarkCompleted"
	KindShowWeeklyPending ActionKind = "ShowWeeklyPending"
)

// Failure reasons reported in Result.Reason.
const (
	ReasonEmpty            = "empty command"
	ReasonNotRecognized    = "command not recognized"
	ReasonExtractionPrefix = "extraction failed: "
)

// PeriodWeek is the only period ShowWeeklyPending reports.
const PeriodWeek = "semana"

// Payload is the structured data extracted for one ActionKind.
type Payload interface {
	Kind() ActionKind
}

// CreateAutoPayload describes a new inspection record (auto de medição).
type CreateAutoPayload struct {
	DueDate               string         `json:"dueDate"`
	RecordType            model.TaskType `json:"recordType"`
	Company               string         `json:"company"`
	Entity                string         `json:"entity"`
	WorkCode              string         `json:"workCode"`
	ContractCode          string         `json:"contractCode"`
	CrossCompanyAutoLabel string         `json:"crossCompanyAutoLabel"`
	Description           string         `json:"description"`
}

func (CreateAutoPayload) Kind() ActionKind { return KindCreateAuto }

// CreateContractPayload describes a new contract deadline.
type CreateContractPayload struct {
	DueDate               string         `json:"dueDate"`
	RecordType            model.TaskType `json:"recordType"`
	Description           string         `json:"description"`
	Entity                string         `json:"entity"`
	WorkCode              string         `json:"workCode"`
	ContractCode          string         `json:"contractCode"`
	CrossCompanyAutoLabel string         `json:"crossCompanyAutoLabel"`
}

func (CreateContractPayload) Kind() ActionKind { return KindCreateContract }

// RescheduleTaskPayload moves an existing task identified by a contract code fragment.
type RescheduleTaskPayload struct {
	ContractCode string `json:"contractCode"`
	NewDueDate   string `json:"newDueDate"`
}

func (RescheduleTaskPayload) Kind() ActionKind { return KindRescheduleTask }

// MarkCompletedPayload closes an existing task identified by a contract code fragment.
type MarkCompletedPayload struct {
	ContractCode string           `json:"contractCode"`
	NewStatus    model.TaskStatus `json:"newStatus"`
}

func (MarkCompletedPayload) Kind() ActionKind { return KindMarkCompleted }

// ShowWeeklyPendingPayload asks for the pending tasks of the current period.
type ShowWeeklyPendingPayload struct {
	Period string `json:"period"`
}

func (ShowWeeklyPendingPayload) Kind() ActionKind { return KindShowWeeklyPending }

// Action is a recognised command.
type Action struct {
	Kind         ActionKind
	Payload      Payload
	OriginalText string
}

// Result is the outcome of parsing one command. Exactly one of Action and
// Reason is set.
type Result struct {
	Action *Action
	Reason string
}

// OK reports whether the command was recognised.
func (r Result) OK() bool {
	return r.Action != nil
}

func success(kind ActionKind, payload Payload, text string) Result {
	return Result{Action: &Action{Kind: kind, Payload: payload, OriginalText: text}}
}

func failure(reason string) Result {
	return Result{Reason: reason}
}

type resultJSON struct {
	OK           bool       `json:"ok"`
	ActionKind   ActionKind `json:"actionKind,omitempty"`
	Payload      Payload    `json:"payload,omitempty"`
	OriginalText string     `json:"originalText,omitempty"`
	Reason       string     `json:"reason,omitempty"`
}

// MarshalJSON renders the success or failure shape.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.OK() {
		return json.Marshal(resultJSON{Reason: r.Reason})
	}
	return json.Marshal(resultJSON{
		OK:           true,
		ActionKind:   r.Action.Kind,
		Payload:      r.Action.Payload,
		OriginalText: r.Action.OriginalText,
	})
}
