package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrMemoNotFound is returned when the Memos API answers 404.
var ErrMemoNotFound = errors.New("memo not found")

// Client is the HTTP wrapper for the Memos REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Memos HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateMemo creates a new memo via POST /api/v1/memos.
func (c *Client) CreateMemo(ctx context.Context, req CreateMemoRequest) (*Memo, error) {
	var memo Memo
	if err := c.do(ctx, http.MethodPost, "/api/v1/memos", req, &memo); err != nil {
		return nil, fmt.Errorf("memos create: %w", err)
	}
	return &memo, nil
}

// GetMemo fetches a single memo by UID or resource name ("memos/<uid>").
func (c *Client) GetMemo(ctx context.Context, id string) (*Memo, error) {
	var memo Memo
	if err := c.do(ctx, http.MethodGet, memoPath(id), nil, &memo); err != nil {
		return nil, fmt.Errorf("memos get: %w", err)
	}
	return &memo, nil
}

// ListMemos returns one page of memos carrying tag.
func (c *Client) ListMemos(ctx context.Context, req ListMemosRequest) (*ListMemosResponse, error) {
	q := url.Values{}
	if req.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(req.PageSize))
	}
	if req.PageToken != "" {
		q.Set("pageToken", req.PageToken)
	}
	if req.Tag != "" {
		q.Set("filter", fmt.Sprintf("tag in [%q]", req.Tag))
	}

	path := "/api/v1/memos"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListMemosResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("memos list: %w", err)
	}
	return &resp, nil
}

// UpdateMemo patches the fields named in req.UpdateMask.
func (c *Client) UpdateMemo(ctx context.Context, id string, req UpdateMemoRequest) (*Memo, error) {
	path := memoPath(id)
	if req.UpdateMask != "" {
		path += "?updateMask=" + url.QueryEscape(req.UpdateMask)
	}

	var memo Memo
	if err := c.do(ctx, http.MethodPatch, path, req, &memo); err != nil {
		return nil, fmt.Errorf("memos update: %w", err)
	}
	return &memo, nil
}

// DeleteMemo removes a memo.
func (c *Client) DeleteMemo(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, memoPath(id), nil, nil); err != nil {
		return fmt.Errorf("memos delete: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrMemoNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// memoPath accepts either a bare UID or the "memos/<uid>" resource name.
func memoPath(id string) string {
	if strings.HasPrefix(id, "memos/") {
		return "/api/v1/" + id
	}
	return "/api/v1/memos/" + url.PathEscape(id)
}

// ---- Request/Response types scoped to this package ----

// CreateMemoRequest is the body for POST /api/v1/memos.
type CreateMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// UpdateMemoRequest is the body for PATCH /api/v1/memos/{uid}.
type UpdateMemoRequest struct {
	Content    string `json:"content,omitempty"`
	UpdateMask string `json:"updateMask,omitempty"`
}

// ListMemosRequest selects one page of memos.
type ListMemosRequest struct {
	Tag       string
	PageSize  int
	PageToken string
}

// ListMemosResponse is one page of memos.
type ListMemosResponse struct {
	Memos         []Memo `json:"memos"`
	NextPageToken string `json:"nextPageToken"`
}

// Memo is the Memos API memo object.
type Memo struct {
	Name       string `json:"name"`
	UID        string `json:"uid"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}
