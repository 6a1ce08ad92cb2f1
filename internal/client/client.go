// Package client is the typed HTTP wrapper the UI layer talks through.
// Every failure surfaces as a single error value carrying the server's
// error message when one is present, never a bare transport error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"task-calendar/backend/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API at baseURL (e.g.
// "http://localhost:3002/api"). Calls do not retry.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewTask is the create payload; the server mints the id.
type NewTask struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

func (c *Client) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.request(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) GetTasksByDate(ctx context.Context, date string) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.request(ctx, http.MethodGet, "/tasks/date/"+date, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, task NewTask) (models.Task, error) {
	var created models.Task
	if err := c.request(ctx, http.MethodPost, "/tasks", task, &created); err != nil {
		return models.Task{}, err
	}
	return created, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, updates models.TaskUpdate) (models.Task, error) {
	var updated models.Task
	if err := c.request(ctx, http.MethodPut, "/tasks/"+id, updates, &updated); err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

func (c *Client) ToggleTask(ctx context.Context, id string) (models.Task, error) {
	var toggled models.Task
	if err := c.request(ctx, http.MethodPatch, "/tasks/"+id+"/toggle", nil, &toggled); err != nil {
		return models.Task{}, err
	}
	return toggled, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) (DeleteResult, error) {
	var result DeleteResult
	if err := c.request(ctx, http.MethodDelete, "/tasks/"+id, nil, &result); err != nil {
		return DeleteResult{}, err
	}
	return result, nil
}

func (c *Client) HealthCheck(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus
	if err := c.request(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return HealthStatus{}, err
	}
	return status, nil
}

func (c *Client) request(ctx context.Context, method, path string, body, dest interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError prefers the server's error message; when the body carries
// none, it falls back to the status code.
func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("%s", payload.Error)
	}
	return fmt.Errorf("HTTP error: %d", resp.StatusCode)
}
