package sqlite

import (
	"strings"

	repo "assistente-gestao/internal/task/repository"
)

// buildGetOneQuery builds the WHERE clause and args for GetOneTask.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.ContractCode != "" {
		conditions = append(conditions, "contract_code = ?")
		args = append(args, opt.ContractCode)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildWhere builds the filter shared by the count and page queries.
func (r *implRepository) buildWhere(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, string(opt.Type))
	}
	if opt.Company != "" {
		conditions = append(conditions, "company = ?")
		args = append(args, opt.Company)
	}
	if opt.DueBefore != "" {
		conditions = append(conditions, "due_date <= ?")
		args = append(args, opt.DueBefore)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE + ORDER + LIMIT + OFFSET for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	where, args := r.buildWhere(opt)
	parts := []string{"WHERE " + where, "ORDER BY due_date ASC, created_at ASC"}

	// SQLite needs a LIMIT before OFFSET; -1 means unbounded.
	if opt.Limit > 0 || opt.Offset > 0 {
		limit := opt.Limit
		if limit <= 0 {
			limit = -1
		}
		parts = append(parts, "LIMIT ?")
		args = append(args, limit)
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
