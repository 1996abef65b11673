// Package export renders task lists as downloadable files.
package export

import (
	"errors"
	"fmt"
	"strings"

	"assistente-gestao/internal/model"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrUnknownFilter = errors.New("unknown export filter")
)

// Format is an output file format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatBackup   Format = "backup"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatBackup, FormatCSV, FormatMarkdown, FormatYAML}

// ParseFormat validates s. An empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatJSON, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Formats {
		if v == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension is the file extension without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatMarkdown:
		return "md"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatYAML:
		return "application/yaml"
	default:
		return "application/json"
	}
}

// Filename names the export file for the given day (YYYY-MM-DD).
func Filename(f Format, today string) string {
	if f == FormatBackup {
		return fmt.Sprintf("backup-assistente-gestao-%s.json", today)
	}
	return fmt.Sprintf("tarefas-%s.%s", today, f.Extension())
}

// Filter selects which tasks are exported.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
	FilterOverdue   Filter = "overdue"
)

// ParseFilter validates s. An empty string selects every task.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPending, FilterCompleted, FilterOverdue:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
}

// Apply returns the tasks matching f relative to today (YYYY-MM-DD).
func Apply(f Filter, tasks []model.Task, today string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		switch f {
		case FilterPending:
			if t.IsCompleted() {
				continue
			}
		case FilterCompleted:
			if !t.IsCompleted() {
				continue
			}
		case FilterOverdue:
			if !t.IsOverdue(today) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
