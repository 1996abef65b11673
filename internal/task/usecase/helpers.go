package usecase

import (
	"time"

	"assistente-gestao/internal/model"
	repo "assistente-gestao/internal/task/repository"
	"assistente-gestao/pkg/datemath"
	"assistente-gestao/pkg/textnorm"
)

// coalesce returns newVal when set, otherwise the existing value. Used for partial updates.
func coalesce[T ~string](newVal, existing T) T {
	if newVal != "" {
		return newVal
	}
	return existing
}

// today is the current calendar day in the interpreter's timezone.
func (uc *implUseCase) today() string {
	return datemath.Format(uc.interp.Today())
}

// endOfWeek returns the Sunday closing the week that contains day.
func endOfWeek(day time.Time) time.Time {
	return day.AddDate(0, 0, (7-int(day.Weekday()))%7)
}

// matchesSearch reports whether the free-text query occurs in any searchable field.
func matchesSearch(t model.Task, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range []string{t.Work, t.Entity, t.Description, string(t.Type), t.ContractCode} {
		if textnorm.Contains(field, query) {
			return true
		}
	}
	return false
}

func updateOptionsFrom(t model.Task) repo.UpdateTaskOptions {
	return repo.UpdateTaskOptions{
		ID:           t.ID,
		DueDate:      t.DueDate,
		Type:         t.Type,
		Work:         t.Work,
		Entity:       t.Entity,
		Company:      t.Company,
		ContractCode: t.ContractCode,
		Description:  t.Description,
		Notes:        t.Notes,
		Status:       t.Status,
	}
}

// paginate slices an in-memory result the way the repository would.
func paginate(tasks []model.Task, limit, offset int) []model.Task {
	start := min(max(offset, 0), len(tasks))
	end := len(tasks)
	if limit > 0 {
		end = min(start+limit, len(tasks))
	}
	return tasks[start:end]
}
