package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"assistente-gestao/internal/command"
	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task"
)

type taskView struct {
	ID           string `json:"id"`
	DueDate      string `json:"dataLimite"`
	Type         string `json:"tipo"`
	Work         string `json:"obra"`
	Entity       string `json:"entidade"`
	Company      string `json:"autoEntreEmpresa"`
	ContractCode string `json:"codigoContrato"`
	Description  string `json:"descricao"`
	Notes        string `json:"observacoes,omitempty"`
	Status       string `json:"processo"`
	Display      string `json:"estado"`
}

type listView struct {
	Tasks  []taskView `json:"tarefas"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

type commandView struct {
	Message      string     `json:"mensagem"`
	ActionKind   string     `json:"acao"`
	Task         *taskView  `json:"tarefa,omitempty"`
	Tasks        []taskView `json:"tarefas,omitempty"`
	CalendarLink string     `json:"calendarLink,omitempty"`
	Payload      any        `json:"payload,omitempty"`
}

func toTaskView(t model.Task, today string) taskView {
	return taskView{
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
		Display:      t.DisplayStatus(today),
	}
}

func toTaskViews(tasks []model.Task, today string) []taskView {
	out := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskView(t, today))
	}
	return out
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printLines(w io.Writer, opts *rootOptions, lines []string) error {
	if opts.json {
		return printJSON(w, lines)
	}
	for _, line := range lines {
		fmt.Fprintln(w, "•", line)
	}
	return nil
}

func printTasks(w io.Writer, tasks []model.Task, today string) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "Nenhuma tarefa encontrada.")
		return
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Data limite", "Tipo", "Obra", "Entidade", "Contrato", "Estado", "ID"})
	for _, t := range tasks {
		tw.AppendRow(table.Row{t.DueDate, t.Type, t.Work, t.Entity, t.ContractCode, t.DisplayStatus(today), t.ID})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "Total", len(tasks), ""})
	tw.Render()
}

func printStats(w io.Writer, s task.StatsOutput) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Total", "Pendentes", "Em atraso", "Concluídos"})
	tw.AppendRow(table.Row{s.Total, s.Pending, s.Overdue, s.Completed})
	tw.Render()
}

func printCommandOutput(w io.Writer, opts *rootOptions, out task.CommandOutput, today string) error {
	if opts.json {
		v := commandView{
			Message:      out.Message,
			ActionKind:   string(out.Action.Kind),
			CalendarLink: out.CalendarLink,
			Payload:      out.Action.Payload,
		}
		if out.Task != nil {
			tv := toTaskView(*out.Task, today)
			v.Task = &tv
		}
		if out.Action.Kind == command.KindShowWeeklyPending {
			v.Tasks = toTaskViews(out.Tasks, today)
		}
		return printJSON(w, v)
	}

	fmt.Fprintln(w, out.Message)
	if out.Task != nil {
		printTasks(w, []model.Task{*out.Task}, today)
	}
	if out.Tasks != nil {
		printTasks(w, out.Tasks, today)
	}
	if out.CalendarLink != "" {
		fmt.Fprintln(w, "📅", out.CalendarLink)
	}
	return nil
}
