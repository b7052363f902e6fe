// ABOUTME: Tests for the HTTP API routes, CORS handling, and error mapping
// ABOUTME: Uses httptest with a stub chat service
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tl-kuno/ai-powered-portfolio/internal/chat"
	"github.com/tl-kuno/ai-powered-portfolio/internal/models"
)

type stubService struct {
	response *chat.Response
	err      error
	calls    int
	query    string
	history  []models.ConversationTurn
}

func (s *stubService) Chat(ctx context.Context, query string, history []models.ConversationTurn) (*chat.Response, error) {
	s.calls++
	s.query = query
	s.history = history
	return s.response, s.err
}

func TestRoot(t *testing.T) {
	srv := New(&stubService{}, "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["message"] != "AI Portfolio API" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestHealth(t *testing.T) {
	srv := New(&stubService{}, "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("health check: status %d body %q", rec.Code, rec.Body.String())
	}
}

func TestTopics(t *testing.T) {
	srv := New(&stubService{}, "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/topics", nil))

	var body map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(body["topics"]) == 0 {
		t.Error("expected a non-empty topics list")
	}
}

func TestChat_HappyPath(t *testing.T) {
	service := &stubService{response: &chat.Response{Text: "an answer"}}
	srv := New(service, "")

	payload := `{"message": "what do you do?", "history": [{"role": "user", "content": "hi"}]}`
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(payload)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["response"] != "an answer" {
		t.Errorf("response = %q", body["response"])
	}
	if service.query != "what do you do?" {
		t.Errorf("service query = %q", service.query)
	}
	if len(service.history) != 1 || service.history[0].Content != "hi" {
		t.Errorf("service history = %+v", service.history)
	}
}

func TestChat_RejectsMalformedJSON(t *testing.T) {
	service := &stubService{}
	srv := New(service, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if service.calls != 0 {
		t.Error("service called for malformed payload")
	}
}

func TestChat_RejectsEmptyMessage(t *testing.T) {
	service := &stubService{}
	srv := New(service, "")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": ""}`)))

	if rec.Code != http.StatusBadRequest || service.calls != 0 {
		t.Errorf("status = %d, calls = %d; want 400 with no service call", rec.Code, service.calls)
	}
}

func TestChat_MethodNotAllowed(t *testing.T) {
	srv := New(&stubService{}, "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chat", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestChat_ServiceErrorIs500(t *testing.T) {
	srv := New(&stubService{err: fmt.Errorf("model unavailable")}, "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "hi"}`)))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "model unavailable") {
		t.Errorf("error body = %q", rec.Body.String())
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(&stubService{}, "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	service := &stubService{}
	srv := New(service, "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/chat", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if service.calls != 0 {
		t.Error("preflight reached the chat service")
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Errorf("Allow-Methods = %q", got)
	}
}

func TestCORSDisabledWithoutOrigin(t *testing.T) {
	srv := New(&stubService{}, "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin = %q, want unset", got)
	}
}

func TestUnknownPathIs404(t *testing.T) {
	srv := New(&stubService{}, "")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
