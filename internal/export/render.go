package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"assistente-gestao/internal/model"
)

const (
	appName       = "Assistente de Gestão"
	backupVersion = "1.0"
	backupType    = "full"
	ptDateLayout  = "02/01/2006"
)

// Options carries the context written into the export envelope.
type Options struct {
	Filter     Filter
	Today      string // YYYY-MM-DD, used for derived status
	ExportedAt time.Time
}

type taskRecord struct {
	ID                 string `json:"id" yaml:"id"`
	DueDate            string `json:"dataLimite" yaml:"dataLimite"`
	Status             string `json:"processo" yaml:"processo"`
	Type               string `json:"tipo" yaml:"tipo"`
	Work               string `json:"obra" yaml:"obra"`
	Entity             string `json:"entidade" yaml:"entidade"`
	Company            string `json:"autoEntreEmpresa" yaml:"autoEntreEmpresa"`
	ContractCode       string `json:"codigoContrato" yaml:"codigoContrato"`
	Description        string `json:"descricao" yaml:"descricao"`
	Notes              string `json:"observacoes" yaml:"observacoes"`
	DisplayStatus      string `json:"estado" yaml:"estado"`
	CreatedAt          string `json:"createdAt" yaml:"createdAt"`
	UpdatedAt          string `json:"updatedAt" yaml:"updatedAt"`
	DueDateFormatted   string `json:"dataLimiteFormatted" yaml:"dataLimiteFormatted"`
	CreatedAtFormatted string `json:"createdAtFormatted" yaml:"createdAtFormatted"`
	UpdatedAtFormatted string `json:"updatedAtFormatted" yaml:"updatedAtFormatted"`
}

type envelope struct {
	ExportedAt string       `json:"exportedAt" yaml:"exportedAt"`
	TotalTasks int          `json:"totalTasks" yaml:"totalTasks"`
	Filter     Filter       `json:"filter" yaml:"filter"`
	Format     Format       `json:"format" yaml:"format"`
	Tasks      []taskRecord `json:"tasks" yaml:"tasks"`
	Version    string       `json:"version,omitempty" yaml:"version,omitempty"`
	AppName    string       `json:"appName,omitempty" yaml:"appName,omitempty"`
	BackupType string       `json:"backupType,omitempty" yaml:"backupType,omitempty"`
}

var csvHeader = table.Row{
	"Data Limite", "Processo", "Tipo", "Obra", "Entidade", "Código Contrato",
	"Descrição", "Auto Entre Empresa", "Observações", "Criado em", "Atualizado em",
}

// Render encodes tasks in format f.
func Render(f Format, tasks []model.Task, opts Options) ([]byte, error) {
	switch f {
	case FormatJSON, FormatBackup:
		return json.MarshalIndent(newEnvelope(f, tasks, opts), "", "  ")
	case FormatYAML:
		return yaml.Marshal(newEnvelope(f, tasks, opts))
	case FormatCSV:
		return []byte(renderCSV(tasks)), nil
	case FormatMarkdown:
		return []byte(renderMarkdown(tasks, opts.Today)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func newEnvelope(f Format, tasks []model.Task, opts Options) envelope {
	filter := opts.Filter
	if filter == "" {
		filter = FilterAll
	}
	env := envelope{
		ExportedAt: opts.ExportedAt.UTC().Format(time.RFC3339),
		TotalTasks: len(tasks),
		Filter:     filter,
		Format:     f,
		Tasks:      make([]taskRecord, 0, len(tasks)),
	}
	if f == FormatBackup {
		env.Version = backupVersion
		env.AppName = appName
		env.BackupType = backupType
	}
	for _, t := range tasks {
		env.Tasks = append(env.Tasks, taskRecord{
			ID:                 t.ID,
			DueDate:            t.DueDate,
			Status:             string(t.Status),
			Type:               string(t.Type),
			Work:               t.Work,
			Entity:             t.Entity,
			Company:            t.Company,
			ContractCode:       t.ContractCode,
			Description:        t.Description,
			Notes:              t.Notes,
			DisplayStatus:      t.DisplayStatus(opts.Today),
			CreatedAt:          formatTimestamp(t.CreatedAt),
			UpdatedAt:          formatTimestamp(t.UpdatedAt),
			DueDateFormatted:   formatDueDate(t.DueDate),
			CreatedAtFormatted: formatPT(t.CreatedAt),
			UpdatedAtFormatted: formatPT(t.UpdatedAt),
		})
	}
	return env
}

func renderCSV(tasks []model.Task) string {
	tw := table.NewWriter()
	tw.AppendHeader(csvHeader)
	for _, t := range tasks {
		code := t.ContractCode
		if code == "" {
			code = model.NotApplicable
		}
		tw.AppendRow(table.Row{
			formatDueDate(t.DueDate),
			string(t.Status),
			string(t.Type),
			t.Work,
			t.Entity,
			code,
			t.Description,
			t.Company,
			t.Notes,
			formatPT(t.CreatedAt),
			formatPT(t.UpdatedAt),
		})
	}
	return tw.RenderCSV()
}

func renderMarkdown(tasks []model.Task, today string) string {
	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("Tarefas (%d)", len(tasks)))
	tw.AppendHeader(table.Row{"Data Limite", "Estado", "Tipo", "Obra", "Entidade", "Código Contrato", "Descrição"})
	for _, t := range tasks {
		tw.AppendRow(table.Row{
			formatDueDate(t.DueDate),
			t.DisplayStatus(today),
			string(t.Type),
			t.Work,
			t.Entity,
			t.ContractCode,
			t.Description,
		})
	}
	return tw.RenderMarkdown()
}

// formatDueDate renders YYYY-MM-DD as dd/mm/yyyy, passing unparseable values through.
func formatDueDate(s string) string {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return s
	}
	return d.Format(ptDateLayout)
}

func formatPT(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ptDateLayout)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
