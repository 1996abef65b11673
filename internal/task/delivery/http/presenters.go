package http

import (
	"assistente-gestao/internal/command"
	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
	"assistente-gestao/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	DueDate      string `json:"dataLimite"`
	Type         string `json:"tipo"`
	Work         string `json:"obra"`
	Entity       string `json:"entidade"`
	Company      string `json:"autoEntreEmpresa"`
	ContractCode string `json:"codigoContrato"`
	Description  string `json:"descricao"`
	Notes        string `json:"observacoes"`
	Status       string `json:"processo"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		DueDate:      r.DueDate,
		Type:         model.TaskType(r.Type),
		Work:         r.Work,
		Entity:       r.Entity,
		Company:      r.Company,
		ContractCode: r.ContractCode,
		Description:  r.Description,
		Notes:        r.Notes,
		Status:       model.TaskStatus(r.Status),
	}
}

// ---

type listReq struct {
	Status  string `form:"processo"`
	Type    string `form:"tipo"`
	Company string `form:"empresa"`
	Entity  string `form:"entidade"`
	Work    string `form:"obra"`
	Search  string `form:"q"`
	Limit   int    `form:"limit"`
	Offset  int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		Status:  model.TaskStatus(r.Status),
		Type:    model.TaskType(r.Type),
		Company: r.Company,
		Entity:  r.Entity,
		Work:    r.Work,
		Search:  r.Search,
		Limit:   limit,
		Offset:  r.Offset,
	}
}

// ---

type updateReq struct {
	ID           string `json:"-"` // populated from URI param
	DueDate      string `json:"dataLimite"`
	Type         string `json:"tipo"`
	Work         string `json:"obra"`
	Entity       string `json:"entidade"`
	Company      string `json:"autoEntreEmpresa"`
	ContractCode string `json:"codigoContrato"`
	Description  string `json:"descricao"`
	Notes        string `json:"observacoes"`
	Status       string `json:"processo"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:           r.ID,
		DueDate:      r.DueDate,
		Type:         model.TaskType(r.Type),
		Work:         r.Work,
		Entity:       r.Entity,
		Company:      r.Company,
		ContractCode: r.ContractCode,
		Description:  r.Description,
		Notes:        r.Notes,
		Status:       model.TaskStatus(r.Status),
	}
}

// ---

type commandReq struct {
	Text string `json:"text"`
}

type exportReq struct {
	Format string `form:"format"`
	Filter string `form:"filter"`
}

// --- Response DTOs ---

type taskResp struct {
	ID           string            `json:"id"`
	DueDate      string            `json:"dataLimite"`
	Type         string            `json:"tipo"`
	Work         string            `json:"obra"`
	Entity       string            `json:"entidade"`
	Company      string            `json:"autoEntreEmpresa"`
	ContractCode string            `json:"codigoContrato"`
	Description  string            `json:"descricao"`
	Notes        string            `json:"observacoes"`
	Status       string            `json:"processo"`
	CreatedAt    response.DateTime `json:"createdAt"`
	UpdatedAt    response.DateTime `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		DueDate:      t.DueDate,
		Type:         string(t.Type),
		Work:         t.Work,
		Entity:       t.Entity,
		Company:      t.Company,
		ContractCode: t.ContractCode,
		Description:  t.Description,
		Notes:        t.Notes,
		Status:       string(t.Status),
		CreatedAt:    response.DateTime(t.CreatedAt),
		UpdatedAt:    response.DateTime(t.UpdatedAt),
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type taskItemResp struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks:  newTaskListResp(out.Tasks),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type commandResp struct {
	ActionKind   command.ActionKind `json:"actionKind"`
	Payload      command.Payload    `json:"payload"`
	Message      string             `json:"message"`
	Task         *taskResp          `json:"task,omitempty"`
	Tasks        []taskResp         `json:"tasks,omitempty"`
	CalendarLink string             `json:"calendarLink,omitempty"`
}

func (h *handler) newCommandResp(out task.CommandOutput) commandResp {
	resp := commandResp{
		ActionKind:   out.Action.Kind,
		Payload:      out.Action.Payload,
		Message:      out.Message,
		CalendarLink: out.CalendarLink,
	}
	if out.Task != nil {
		t := newTaskResp(*out.Task)
		resp.Task = &t
	}
	if out.Tasks != nil {
		resp.Tasks = newTaskListResp(out.Tasks)
	}
	return resp
}

type suggestionsResp struct {
	Suggestions []string `json:"suggestions"`
}
