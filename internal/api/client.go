// Package api is the typed client for the remote barge backend. The backend
// owns persistence, validation, and the authoritative role model; this client
// forwards requests and decodes responses, degrading to empty collections
// where the UI is designed to stay usable under partial failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	"barge-tracker/internal/models"
)

// Error is a rejection from the backend: the HTTP status plus whatever
// message body it sent, if any.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// Message returns the backend's own message when err carries one, otherwise
// the fallback. Used where the UI surfaces server detail verbatim.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the backend at baseURL. No timeout is configured;
// callers that need a deadline put one on the context.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode/100 != 2 {
		apiErr := &Error{Status: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// Login exchanges credentials for the user record.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	payload := map[string]string{"username": username, "password": password}
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", payload, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, fmt.Errorf("login: response carried no user")
	}
	return resp.User, nil
}

// referenceList fetches one lookup list. A body that is not a JSON array is
// normalized to an empty list rather than reported as an error.
func (c *Client) referenceList(ctx context.Context, path string) ([]models.RefOption, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	var list []models.RefOption
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Printf("[api] %s returned a non-array body, treating as empty", path)
		return nil, nil
	}
	return list, nil
}

func (c *Client) Barges(ctx context.Context) ([]models.RefOption, error) {
	return c.referenceList(ctx, "/api/barges")
}

func (c *Client) Locations(ctx context.Context) ([]models.RefOption, error) {
	return c.referenceList(ctx, "/api/locations")
}

func (c *Client) Supervisors(ctx context.Context) ([]models.RefOption, error) {
	return c.referenceList(ctx, "/api/supervisors")
}

func (c *Client) LaborTeams(ctx context.Context) ([]models.RefOption, error) {
	return c.referenceList(ctx, "/api/labor-teams")
}

// ReferenceData fetches the four lookup lists concurrently. Each list fails
// independently: a fetch error leaves that one list empty and the others
// intact, so the entry form stays usable under partial backend failure.
func (c *Client) ReferenceData(ctx context.Context) models.ReferenceData {
	var refs models.ReferenceData

	fetches := []struct {
		name string
		fn   func(context.Context) ([]models.RefOption, error)
		dst  *[]models.RefOption
	}{
		{"barges", c.Barges, &refs.Barges},
		{"locations", c.Locations, &refs.Locations},
		{"supervisors", c.Supervisors, &refs.Supervisors},
		{"labor-teams", c.LaborTeams, &refs.LaborTeams},
	}

	var wg sync.WaitGroup
	for _, f := range fetches {
		wg.Add(1)
		go func(name string, fn func(context.Context) ([]models.RefOption, error), dst *[]models.RefOption) {
			defer wg.Done()
			list, err := fn(ctx)
			if err != nil {
				log.Printf("[api] fetch %s failed: %v", name, err)
				return
			}
			*dst = list
		}(f.name, f.fn, f.dst)
	}
	wg.Wait()

	return refs
}

// CreateEntry submits one barge log entry draft as-is.
func (c *Client) CreateEntry(ctx context.Context, draft models.EntryDraft) error {
	return c.do(ctx, http.MethodPost, "/api/barge-entry", draft, nil)
}

// Logs fetches the full log list. The backend returns the complete set; any
// paging on top of it is cosmetic and client-side.
func (c *Client) Logs(ctx context.Context) ([]models.LogEntry, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/barge-logs", nil, &raw); err != nil {
		return nil, err
	}
	var logs []models.LogEntry
	if err := json.Unmarshal(raw, &logs); err != nil {
		log.Printf("[api] /api/barge-logs returned a non-array body, treating as empty")
		return nil, nil
	}
	return logs, nil
}

// Users lists every account.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, username, password string, role models.Role) error {
	payload := map[string]string{
		"username": username,
		"password": password,
		"role":     string(role),
	}
	return c.do(ctx, http.MethodPost, "/api/users", payload, nil)
}

// UpdateUser changes an account's role and, when password is non-empty, its
// password. The role is always sent; the password field is omitted entirely
// when blank so the backend keeps the current one.
func (c *Client) UpdateUser(ctx context.Context, id models.ID, role models.Role, password string) error {
	payload := struct {
		Role     models.Role `json:"role"`
		Password string      `json:"password,omitempty"`
	}{Role: role, Password: password}
	return c.do(ctx, http.MethodPut, "/api/users/"+string(id), payload, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id models.ID) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+string(id), nil, nil)
}
