// Package client wraps the task API as typed operations and keeps an
// optional local cache of the fetched collection.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/taskboard/taskboard-api/internal/model"
	"github.com/taskboard/taskboard-api/internal/store"
)

var ErrNotFound = errors.New("task not found")

// APIError is a non-2xx response from the task API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type envelope struct {
	Status  string            `json:"status"`
	Results int               `json:"results"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
	Data    struct {
		Task  *model.Task  `json:"task"`
		Tasks []model.Task `json:"tasks"`
		Stats *store.Stats `json:"stats"`
	} `json:"data"`
}

func (c *Client) FetchAll(ctx context.Context) ([]model.Task, error) {
	env, err := c.do(ctx, http.MethodGet, "/tasks", nil)
	if err != nil {
		return nil, err
	}
	return env.Data.Tasks, nil
}

func (c *Client) FetchByID(ctx context.Context, id string) (model.Task, error) {
	env, err := c.do(ctx, http.MethodGet, "/tasks/"+id, nil)
	if err != nil {
		return model.Task{}, err
	}
	if env.Data.Task == nil {
		return model.Task{}, fmt.Errorf("response missing task")
	}
	return *env.Data.Task, nil
}

func (c *Client) Create(ctx context.Context, in model.CreateTaskInput) (model.Task, error) {
	env, err := c.do(ctx, http.MethodPost, "/tasks", in)
	if err != nil {
		return model.Task{}, err
	}
	if env.Data.Task == nil {
		return model.Task{}, fmt.Errorf("response missing task")
	}
	return *env.Data.Task, nil
}

func (c *Client) Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	env, err := c.do(ctx, http.MethodPut, "/tasks/"+id, patch)
	if err != nil {
		return model.Task{}, err
	}
	if env.Data.Task == nil {
		return model.Task{}, fmt.Errorf("response missing task")
	}
	return *env.Data.Task, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/tasks/"+id, nil)
	return err
}

func (c *Client) Stats(ctx context.Context) (store.Stats, error) {
	env, err := c.do(ctx, http.MethodGet, "/stats", nil)
	if err != nil {
		return store.Stats{}, err
	}
	if env.Data.Stats == nil {
		return store.Stats{}, fmt.Errorf("response missing stats")
	}
	return *env.Data.Stats, nil
}

// do performs one request and decodes the response envelope.
// Requests are never retried.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return &envelope{Status: "success"}, nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Debug("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("code", resp.StatusCode),
		)
		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     env.Status,
			Message:    env.Message,
			Fields:     env.Errors,
		}
	}
	return &env, nil
}
