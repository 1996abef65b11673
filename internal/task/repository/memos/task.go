package memos

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"assistente-gestao/internal/model"
	"assistente-gestao/internal/task/repository"
	pkgLog "assistente-gestao/pkg/log"
)

const listPageSize = 100

type implRepository struct {
	client      *Client
	memoBaseURL string // e.g. "http://localhost:5230" for deep links in logs
	l           pkgLog.Logger
}

// New creates a Memos-backed task repository. Each task is one private memo.
func New(client *Client, memoBaseURL string, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:      client,
		memoBaseURL: strings.TrimRight(memoBaseURL, "/"),
		l:           l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	content, err := encodeContent(taskDoc{
		DueDate:      opt.DueDate,
		Type:         string(opt.Type),
		Work:         opt.Work,
		Entity:       opt.Entity,
		Company:      opt.Company,
		ContractCode: opt.ContractCode,
		Description:  opt.Description,
		Notes:        opt.Notes,
		Status:       string(opt.Status),
	})
	if err != nil {
		return model.Task{}, repository.ErrFailedToInsert
	}

	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{Content: content, Visibility: "PRIVATE"})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to create memo: %v", err)
		return model.Task{}, repository.ErrFailedToInsert
	}

	t, err := r.memoToTask(memo)
	if err != nil {
		r.l.Errorf(ctx, "memos repository: created memo %s is unreadable: %v", memo.Name, err)
		return model.Task{}, repository.ErrFailedToInsert
	}
	r.l.Debugf(ctx, "memos repository: created %s", r.memoURL(t.ID))
	return t, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if opt.ID == "" {
		tasks, err := r.listAll(ctx)
		if err != nil {
			return model.Task{}, repository.ErrFailedToGet
		}
		for _, t := range tasks {
			if opt.ContractCode == "" || t.ContractCode == opt.ContractCode {
				return t, nil
			}
		}
		return model.Task{}, nil
	}

	memo, err := r.client.GetMemo(ctx, opt.ID)
	if errors.Is(err, ErrMemoNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to get memo %s: %v", opt.ID, err)
		return model.Task{}, repository.ErrFailedToGet
	}

	t, err := r.memoToTask(memo)
	if errors.Is(err, errNoTaskBlock) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Warnf(ctx, "memos repository: memo %s is not a task: %v", opt.ID, err)
		return model.Task{}, nil
	}
	if opt.ContractCode != "" && t.ContractCode != opt.ContractCode {
		return model.Task{}, nil
	}
	return t, nil
}

// ListTasks reads every task memo and filters, sorts and pages in memory.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	all, err := r.listAll(ctx)
	if err != nil {
		return nil, 0, repository.ErrFailedToList
	}

	filtered := make([]model.Task, 0, len(all))
	for _, t := range all {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Type != "" && t.Type != opt.Type {
			continue
		}
		if opt.Company != "" && t.Company != opt.Company {
			continue
		}
		if opt.DueBefore != "" && t.DueDate > opt.DueBefore {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].DueDate != filtered[j].DueDate {
			return filtered[i].DueDate < filtered[j].DueDate
		}
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})

	total := len(filtered)
	start := min(opt.Offset, total)
	end := total
	if opt.Limit > 0 {
		end = min(start+opt.Limit, total)
	}
	return filtered[start:end], total, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	content, err := encodeContent(taskDoc{
		DueDate:      opt.DueDate,
		Type:         string(opt.Type),
		Work:         opt.Work,
		Entity:       opt.Entity,
		Company:      opt.Company,
		ContractCode: opt.ContractCode,
		Description:  opt.Description,
		Notes:        opt.Notes,
		Status:       string(opt.Status),
	})
	if err != nil {
		return model.Task{}, repository.ErrFailedToUpdate
	}

	memo, err := r.client.UpdateMemo(ctx, opt.ID, UpdateMemoRequest{Content: content, UpdateMask: "content"})
	if errors.Is(err, ErrMemoNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to update memo %s: %v", opt.ID, err)
		return model.Task{}, repository.ErrFailedToUpdate
	}

	t, err := r.memoToTask(memo)
	if err != nil {
		return model.Task{}, repository.ErrFailedToUpdate
	}
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	err := r.client.DeleteMemo(ctx, id)
	if err != nil && !errors.Is(err, ErrMemoNotFound) {
		r.l.Errorf(ctx, "memos repository: failed to delete memo %s: %v", id, err)
		return repository.ErrFailedToDelete
	}
	return nil
}

// listAll follows page tokens until every tagged memo is read. Memos that
// carry the tag but no task block are skipped.
func (r *implRepository) listAll(ctx context.Context) ([]model.Task, error) {
	var (
		tasks []model.Task
		token string
	)
	for {
		page, err := r.client.ListMemos(ctx, ListMemosRequest{Tag: rootTag, PageSize: listPageSize, PageToken: token})
		if err != nil {
			r.l.Errorf(ctx, "memos repository: failed to list memos: %v", err)
			return nil, err
		}
		for i := range page.Memos {
			t, err := r.memoToTask(&page.Memos[i])
			if err != nil {
				r.l.Debugf(ctx, "memos repository: skipping memo %s: %v", page.Memos[i].Name, err)
				continue
			}
			tasks = append(tasks, t)
		}
		if page.NextPageToken == "" {
			return tasks, nil
		}
		token = page.NextPageToken
	}
}

// memoToTask converts a Memos API Memo object to the internal model.Task.
func (r *implRepository) memoToTask(m *Memo) (model.Task, error) {
	d, err := decodeContent(m.Content)
	if err != nil {
		return model.Task{}, err
	}

	uid := m.UID
	// Name format is "memos/{uid}" from the Memos v1 API
	if uid == "" && m.Name != "" {
		parts := strings.SplitN(m.Name, "/", 2)
		if len(parts) == 2 {
			uid = parts[1]
		}
	}

	return model.Task{
		ID:           uid,
		DueDate:      d.DueDate,
		Type:         model.TaskType(d.Type),
		Work:         d.Work,
		Entity:       d.Entity,
		Company:      d.Company,
		ContractCode: d.ContractCode,
		Description:  d.Description,
		Notes:        d.Notes,
		Status:       model.TaskStatus(d.Status),
		CreatedAt:    parseTime(m.CreateTime),
		UpdatedAt:    parseTime(m.UpdateTime),
	}, nil
}

func (r *implRepository) memoURL(uid string) string {
	if r.memoBaseURL == "" {
		return uid
	}
	return r.memoBaseURL + "/m/" + uid
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
