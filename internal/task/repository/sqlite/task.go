package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"assistente-gestao/internal/model"
	repo "assistente-gestao/internal/task/repository"
)

const taskColumns = `id, due_date, type, work, entity, company, contract_code, description, notes, status, created_at, updated_at`

// timeLayout keeps fractional seconds fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := r.now().UTC()
	t := model.Task{
		ID:           uuid.NewString(),
		DueDate:      opt.DueDate,
		Type:         opt.Type,
		Work:         opt.Work,
		Entity:       opt.Entity,
		Company:      opt.Company,
		ContractCode: opt.ContractCode,
		Description:  opt.Description,
		Notes:        opt.Notes,
		Status:       opt.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	const query = `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.DueDate, string(t.Type), t.Work, t.Entity, t.Company, t.ContractCode,
		t.Description, t.Notes, string(t.Status), formatTime(now), formatTime(now),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns one page of tasks ordered by due date and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, whereArgs := r.buildWhere(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask overwrites a task by ID and returns the stored entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET due_date = ?, type = ?, work = ?, entity = ?, company = ?, contract_code = ?,
		    description = ?, notes = ?, status = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.DueDate, string(opt.Type), opt.Work, opt.Entity, opt.Company, opt.ContractCode,
		opt.Description, opt.Notes, string(opt.Status), formatTime(r.now().UTC()), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// DeleteTask removes a task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(s rowScanner) (model.Task, error) {
	var (
		t                    model.Task
		typ, status          string
		createdAt, updatedAt string
	)
	err := s.Scan(
		&t.ID, &t.DueDate, &typ, &t.Work, &t.Entity, &t.Company, &t.ContractCode,
		&t.Description, &t.Notes, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.Type = model.TaskType(typ)
	t.Status = model.TaskStatus(status)
	if t.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return model.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return model.Task{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
