// Package api implements the HTTP client for the remote to-do store.
//
// Every call decodes the body leniently and runs a per-endpoint validator
// that decides between a valid result and a *Failure carrying the server's
// message. Non-2xx statuses and network or decode errors come back as
// transport errors (see errors.go). No call retries and no call carries a
// timeout; cancellation is the caller's business via ctx.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/todolist/internal/client/storage"
)

// Client talks to the remote store. The bearer token is read from the
// injected storage on every request, so a login in the same process is
// picked up without rewiring.
type Client struct {
	baseURL string
	http    *http.Client
	store   storage.Storage
}

func NewClient(baseURL string, httpClient *http.Client, store storage.Storage) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient, store: store}
}

// Signup registers a new account. A 2xx response lacking a token or user
// identifier is returned as a *Failure.
func (c *Client) Signup(ctx context.Context, username, email, password string) (AuthResult, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	return c.doAuth(ctx, "/api/signup", body)
}

// Login authenticates an existing account, with the same validation rules
// as Signup.
func (c *Client) Login(ctx context.Context, username, password string) (AuthResult, error) {
	body := map[string]string{"username": username, "password": password}
	return c.doAuth(ctx, "/api/login", body)
}

func (c *Client) doAuth(ctx context.Context, path string, body any) (AuthResult, error) {
	data, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		return AuthResult{}, err
	}

	var payload authPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return AuthResult{}, fmt.Errorf("decoding auth response: %w", err)
	}

	if payload.Token == "" || payload.UserID == nil {
		return AuthResult{}, &Failure{Message: payload.Message}
	}

	return AuthResult{
		Token:   payload.Token,
		UserID:  string(*payload.UserID),
		Message: payload.Message,
	}, nil
}

// ListTasks fetches the full task list. A 2xx body that is not a JSON array
// is returned as a *Failure with the embedded message, matching the store's
// habit of answering 200 with an error object.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/todos", nil)
	if err != nil {
		return nil, err
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		var msg messagePayload
		if jsonErr := json.Unmarshal(data, &msg); jsonErr == nil {
			return nil, &Failure{Message: msg.Message}
		}
		return nil, fmt.Errorf("decoding task list: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a task with the given title. The response must carry a
// non-empty id to count as success.
func (c *Client) CreateTask(ctx context.Context, title string) (Task, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/todos", map[string]string{"title": title})
	if err != nil {
		return Task{}, err
	}
	return validateTask(data)
}

// UpdateTask replaces both fields of the task; the store has full-replace
// semantics, so title must accompany every completed flip.
func (c *Client) UpdateTask(ctx context.Context, id, title string, completed bool) (Task, error) {
	body := map[string]any{"title": title, "completed": completed}
	data, err := c.do(ctx, http.MethodPut, "/api/todos/"+id, body)
	if err != nil {
		return Task{}, err
	}
	return validateTask(data)
}

// DeleteTask removes a task. A 2xx response with success=false is a *Failure.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	data, err := c.do(ctx, http.MethodDelete, "/api/todos/"+id, nil)
	if err != nil {
		return err
	}

	var payload deletePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("decoding delete response: %w", err)
	}
	if !payload.Success {
		return &Failure{Message: payload.Message}
	}
	return nil
}

func validateTask(data []byte) (Task, error) {
	var payload taskPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Task{}, fmt.Errorf("decoding task response: %w", err)
	}
	if payload.ID == "" {
		return Task{}, &Failure{Message: payload.Message}
	}
	return Task{ID: payload.ID, Title: payload.Title, Completed: payload.Completed}, nil
}

// do issues the request and returns the raw 2xx body. Non-2xx responses are
// converted to *StatusError with the body's "message" field when present.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.store.Get(storage.KeyToken); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := "API Error"
		var msg messagePayload
		if err := json.Unmarshal(data, &msg); err == nil && msg.Message != "" {
			message = msg.Message
		}
		return nil, &StatusError{Code: resp.StatusCode, Message: message}
	}

	return data, nil
}
