package memos_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"assistente-gestao/internal/task/repository/memos"
)

// fakeMemos is an in-memory stand-in for the Memos v1 API.
type fakeMemos struct {
	mu      sync.Mutex
	memos   map[string]memos.Memo
	nextID  int
	clock   time.Time
	filters []string
	maxPage int // caps pageSize to force pagination
}

func newFakeMemos(t *testing.T) (*fakeMemos, *httptest.Server) {
	t.Helper()

	f := &fakeMemos{
		memos: make(map[string]memos.Memo),
		clock: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)
	return f, ts
}

func (f *fakeMemos) add(content string) memos.Memo {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	f.clock = f.clock.Add(time.Minute)
	uid := fmt.Sprintf("uid-%d", f.nextID)
	m := memos.Memo{
		Name:       "memos/" + uid,
		UID:        uid,
		Content:    content,
		Visibility: "PRIVATE",
		CreateTime: f.clock.Format(time.RFC3339),
		UpdateTime: f.clock.Format(time.RFC3339),
	}
	f.memos[uid] = m
	return m
}

func (f *fakeMemos) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer test-token" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if r.URL.Path == "/api/v1/memos" {
		switch r.Method {
		case http.MethodPost:
			var req memos.CreateMemoRequest
			json.NewDecoder(r.Body).Decode(&req)
			writeJSON(w, f.add(req.Content))
		case http.MethodGet:
			f.list(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	uid := strings.TrimPrefix(r.URL.Path, "/api/v1/memos/")
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.memos[uid]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, m)
	case http.MethodPatch:
		var req memos.UpdateMemoRequest
		json.NewDecoder(r.Body).Decode(&req)
		if r.URL.Query().Get("updateMask") != "content" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.clock = f.clock.Add(time.Minute)
		m.Content = req.Content
		m.UpdateTime = f.clock.Format(time.RFC3339)
		f.memos[uid] = m
		writeJSON(w, m)
	case http.MethodDelete:
		delete(f.memos, uid)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeMemos) list(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.filters = append(f.filters, r.URL.Query().Get("filter"))

	uids := make([]string, 0, len(f.memos))
	for uid := range f.memos {
		uids = append(uids, uid)
	}
	sort.Strings(uids)

	size, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if size <= 0 {
		size = len(uids)
	}
	if f.maxPage > 0 && size > f.maxPage {
		size = f.maxPage
	}
	start, _ := strconv.Atoi(r.URL.Query().Get("pageToken"))
	end := min(start+size, len(uids))

	resp := memos.ListMemosResponse{}
	for _, uid := range uids[start:end] {
		resp.Memos = append(resp.Memos, f.memos[uid])
	}
	if end < len(uids) {
		resp.NextPageToken = strconv.Itoa(end)
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
