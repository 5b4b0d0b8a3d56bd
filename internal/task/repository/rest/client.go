package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the HTTP wrapper for the Task Store REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Task Store HTTP client.
func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// ListTasks fetches all tasks via GET /api/tasks.
func (c *Client) ListTasks(ctx context.Context) ([]apiTask, error) {
	var tasks []apiTask
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask fetches a single task via GET /api/tasks/{id}.
func (c *Client) GetTask(ctx context.Context, id string) (*apiTask, error) {
	var task apiTask
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+id, nil, &task); err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return &task, nil
}

// CreateTask creates a task via POST /api/tasks.
func (c *Client) CreateTask(ctx context.Context, req createTaskRequest) (*apiTask, error) {
	var task apiTask
	if err := c.do(ctx, http.MethodPost, "/api/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask applies a partial update via PUT /api/tasks/{id}.
func (c *Client) UpdateTask(ctx context.Context, id string, req updateTaskRequest) (*apiTask, error) {
	var task apiTask
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, req, &task); err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return &task, nil
}

// DeleteTask removes a task via DELETE /api/tasks/{id}.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}

// CompleteTask marks a task completed via PATCH /api/tasks/{id}/complete.
func (c *Client) CompleteTask(ctx context.Context, id string) (*apiTask, error) {
	var task apiTask
	if err := c.do(ctx, http.MethodPatch, "/api/tasks/"+id+"/complete", nil, &task); err != nil {
		return nil, fmt.Errorf("failed to complete task %s: %w", id, err)
	}
	return &task, nil
}

// do executes one request against the store. A non-2xx status becomes an
// error carrying the response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call task store API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("task store API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode task store response: %w", err)
	}
	return nil
}

// ---- Wire types scoped to this package ----

// apiTask is the Task Store's task object. The store speaks snake_case;
// mapping to model.Task stays inside this package.
type apiTask struct {
	ID          opaqueID `json:"id"` // store may assign string or numeric IDs
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	DueDate     string   `json:"due_date,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// opaqueID accepts either a JSON string or number and keeps the textual
// form; the pipeline never interprets it.
type opaqueID string

func (o *opaqueID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = opaqueID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*o = opaqueID(n.String())
	return nil
}

func (o opaqueID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(o))
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

type updateTaskRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Status      string `json:"status,omitempty"`
}
