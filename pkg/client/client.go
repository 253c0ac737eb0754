// Package client is a typed data-access layer for the blog service HTTP API.
// It keeps request/response plumbing out of presentation code so callers can
// be tested against a stub server. Failed requests are not retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const defaultTimeout = 10 * time.Second

// Post mirrors the post JSON shape returned by the API.
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// APIError is a non-2xx response decoded from the {"error": ...} envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client calls the blog service. The zero value is not usable; construct with
// New. SetToken installs the bearer token used by the post operations.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// SetToken stores the session token attached to authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenEnvelope struct {
	Token string `json:"token"`
}

// Register creates an account and returns its session token.
func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	var out tokenEnvelope
	err := c.do(ctx, http.MethodPost, "/users/register", credentials{Email: email, Password: password}, &out)
	return out.Token, err
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenEnvelope
	err := c.do(ctx, http.MethodPost, "/users/login", credentials{Email: email, Password: password}, &out)
	return out.Token, err
}

type postBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListPosts returns the caller's posts, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var out []Post
	err := c.do(ctx, http.MethodGet, "/posts", nil, &out)
	return out, err
}

// GetPost returns a single post owned by the caller.
func (c *Client) GetPost(ctx context.Context, id int64) (*Post, error) {
	var out Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePost creates a post and returns it with generated ID and timestamps.
func (c *Client) CreatePost(ctx context.Context, title, content string) (*Post, error) {
	var out Post
	if err := c.do(ctx, http.MethodPost, "/posts", postBody{Title: title, Content: content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost rewrites a post's title and content.
func (c *Client) UpdatePost(ctx context.Context, id int64, title, content string) (*Post, error) {
	var out Post
	if err := c.do(ctx, http.MethodPut, "/posts/"+strconv.FormatInt(id, 10), postBody{Title: title, Content: content}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost removes a post owned by the caller.
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		buf = &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
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
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
