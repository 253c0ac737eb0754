// Package upstream is a thin client for the third-party demo users API
// (reqres.in-compatible) used by the user-management views. Pagination fields
// are passed through from the upstream response as-is; no guarantees beyond
// what the upstream provides.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the public demo instance.
	DefaultBaseURL = "https://reqres.in/api"

	defaultTimeout = 10 * time.Second
)

// User is an upstream user record.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar,omitempty"`
}

// UserPage is one page of the upstream user listing. Page, PerPage, Total and
// TotalPages are the upstream's own pagination fields, untouched.
type UserPage struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}

// UserPatch carries the editable fields for UpdateUser.
type UserPatch struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Error is a non-2xx upstream response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.StatusCode, e.Message)
}

// Client calls the upstream users API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for baseURL; an empty baseURL selects the public demo
// instance.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// ListUsers fetches one page of users.
func (c *Client) ListUsers(ctx context.Context, page int) (*UserPage, error) {
	var out UserPage
	if err := c.do(ctx, http.MethodGet, "/users?page="+strconv.Itoa(page), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches a single user.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var out struct {
		Data User `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateUser sends the edited fields upstream. The demo API echoes the patch
// back rather than persisting it; the echoed record is returned.
func (c *Client) UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPut, "/users/"+strconv.FormatInt(id, 10), patch, &out); err != nil {
		return nil, err
	}
	out.ID = id
	return &out, nil
}

// Login exchanges demo credentials for an upstream token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	buf := bytes.NewBuffer(nil)
	if body != nil {
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		msg := http.StatusText(resp.StatusCode)
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
