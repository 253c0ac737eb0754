package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quillpad/blog-service/internal/core/domain"
	"github.com/quillpad/blog-service/internal/infrastructure/db/sqlite"
)

// The Prometheus middleware registers collectors with the default registry,
// so the router is built exactly once and the whole HTTP contract is
// exercised as one scenario against a real SQLite database.
func TestRouter_FullScenario(t *testing.T) {
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	e := NewRouter(db, "test-secret", time.Hour, zerolog.Nop())

	do := func(method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
		t.Helper()
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var payload map[string]any
		_ = json.Unmarshal(rec.Body.Bytes(), &payload)
		return rec, payload
	}

	tokenID := func(token string) int64 {
		t.Helper()
		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		if err != nil || !parsed.Valid {
			t.Fatalf("token invalid: %v", err)
		}
		id, ok := claims["id"].(float64)
		if !ok {
			t.Fatalf("token missing id claim: %v", claims)
		}
		return int64(id)
	}

	// --- Registration ---
	rec, payload := do(http.MethodPost, "/users/register", "", `{"email":"a@x.com","password":"secret1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rec.Code, rec.Body)
	}
	aliceToken, _ := payload["token"].(string)
	if aliceToken == "" {
		t.Fatalf("register: no token in response")
	}
	aliceID := tokenID(aliceToken)

	rec, payload = do(http.MethodPost, "/users/register", "", `{"email":"a@x.com","password":"secret2"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", rec.Code)
	}
	if payload["error"] != "Email already exists" {
		t.Fatalf("duplicate register: unexpected error %v", payload["error"])
	}

	rec, _ = do(http.MethodPost, "/users/register", "", `{"email":"a@x.com","password":"abc"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short password: expected 400, got %d", rec.Code)
	}

	// --- Login ---
	rec, payload = do(http.MethodPost, "/users/login", "", `{"email":"a@x.com","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	loginToken, _ := payload["token"].(string)
	if tokenID(loginToken) != aliceID {
		t.Fatalf("login token identifies a different user")
	}

	rec, payload = do(http.MethodPost, "/users/login", "", `{"email":"a@x.com","password":"wrong1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: expected 401, got %d", rec.Code)
	}
	if payload["error"] != "Invalid credentials" {
		t.Fatalf("bad password: unexpected error %v", payload["error"])
	}

	rec, payload = do(http.MethodPost, "/users/login", "", `{"email":"ghost@x.com","password":"secret1"}`)
	if rec.Code != http.StatusUnauthorized || payload["error"] != "Invalid credentials" {
		t.Fatalf("unknown email must be indistinguishable from bad password: %d %v", rec.Code, payload["error"])
	}

	// --- Posts require a token ---
	rec, _ = do(http.MethodGet, "/posts", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}
	rec, _ = do(http.MethodGet, "/posts", "garbage", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: expected 401, got %d", rec.Code)
	}

	// --- Create / round trip ---
	rec, payload = do(http.MethodPost, "/posts", aliceToken, `{"title":"T","content":"C"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create post: expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var created domain.Post
	raw, _ := json.Marshal(payload)
	if err := json.Unmarshal(raw, &created); err != nil {
		t.Fatalf("create post: bad payload: %v", err)
	}
	if created.Title != "T" || created.Content != "C" {
		t.Fatalf("create post: round trip mismatch: %+v", created)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("create post: createdAt != updatedAt")
	}

	rec, _ = do(http.MethodPost, "/posts", aliceToken, `{"title":"   ","content":"C"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("whitespace title: expected 400, got %d", rec.Code)
	}

	// --- Owner scoping: a second user sees nothing ---
	rec, payload = do(http.MethodPost, "/users/register", "", `{"email":"b@x.com","password":"secret1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register b: expected 201, got %d", rec.Code)
	}
	bobToken, _ := payload["token"].(string)

	postPath := "/posts/" + strconv.FormatInt(created.ID, 10)

	rec, payload = do(http.MethodGet, postPath, bobToken, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign get: expected 404, got %d", rec.Code)
	}
	if payload["error"] != "Post not found" {
		t.Fatalf("foreign get must not reveal existence: %v", payload["error"])
	}
	rec, _ = do(http.MethodPut, postPath, bobToken, `{"title":"x","content":"y"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign update: expected 404, got %d", rec.Code)
	}
	rec, _ = do(http.MethodDelete, postPath, bobToken, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign delete: expected 404, got %d", rec.Code)
	}

	// --- Update advances updated_at only ---
	rec, payload = do(http.MethodPut, postPath, aliceToken, `{"title":"T","content":"C2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var updated domain.Post
	raw, _ = json.Marshal(payload)
	if err := json.Unmarshal(raw, &updated); err != nil {
		t.Fatalf("update: bad payload: %v", err)
	}
	if updated.ID != created.ID || updated.Content != "C2" {
		t.Fatalf("update: unexpected post: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("update changed createdAt")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("update did not advance updatedAt")
	}

	// --- List and delete ---
	rec, _ = do(http.MethodGet, "/posts", aliceToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var posts []domain.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &posts); err != nil {
		t.Fatalf("list: bad payload: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != created.ID {
		t.Fatalf("list: unexpected posts: %+v", posts)
	}

	rec, _ = do(http.MethodGet, "/posts/abc", aliceToken, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("non-numeric id: expected 404, got %d", rec.Code)
	}

	rec, payload = do(http.MethodDelete, postPath, aliceToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	if payload["message"] != "Post deleted successfully" {
		t.Fatalf("delete: unexpected message %v", payload["message"])
	}
	rec, _ = do(http.MethodGet, postPath, aliceToken, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}

	// --- Probes ---
	rec, _ = do(http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("liveness: expected 200, got %d", rec.Code)
	}
	rec, _ = do(http.MethodGet, "/health/ready", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("readiness: expected 200, got %d", rec.Code)
	}
	rec, _ = do(http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}
