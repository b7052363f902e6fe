// ABOUTME: HTTP API exposing the portfolio chat over JSON
// ABOUTME: Routes: GET / and /health and /api/topics, POST /api/chat
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tl-kuno/ai-powered-portfolio/internal/chat"
	"github.com/tl-kuno/ai-powered-portfolio/internal/models"
)

// ChatService answers one portfolio question
type ChatService interface {
	Chat(ctx context.Context, query string, history []models.ConversationTurn) (*chat.Response, error)
}

// Topics suggested to visitors who don't know what to ask
var defaultTopics = []string{
	"Work experience and roles",
	"Technical skills and technologies",
	"Side projects and hobbies",
	"Healthcare background",
	"Career goals and interests",
}

type chatRequest struct {
	Message string                    `json:"message"`
	History []models.ConversationTurn `json:"history"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server serves the portfolio chat API
type Server struct {
	service     ChatService
	allowOrigin string
	mux         *http.ServeMux
}

// New builds a Server. allowOrigin is reflected in CORS headers; an empty
// value disables cross-origin access.
func New(service ChatService, allowOrigin string) *Server {
	s := &Server{
		service:     service,
		allowOrigin: allowOrigin,
		mux:         http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/topics", s.handleTopics)
	s.mux.HandleFunc("/api/chat", s.handleChat)
	return s
}

// ServeHTTP applies CORS and request logging around the route mux
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	start := time.Now()

	if s.allowOrigin != "" {
		w.Header().Set("Access-Control-Allow-Origin", s.allowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	}
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.mux.ServeHTTP(w, r)
	log.Printf("[%s] %s %s (%s)", requestID, r.Method, r.URL.Path, time.Since(start))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "AI Portfolio API"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"topics": defaultTopics})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	result, err := s.service.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
