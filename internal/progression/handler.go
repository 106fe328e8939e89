package progression

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"quiz-platform/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// errorBody is the single error shape clients ever see: an HTTP status plus
// a stable machine-readable kind.
type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Client messages are fixed per kind. The wrapped detail (driver text,
// attempt ids) goes to the log only.
func writeError(w http.ResponseWriter, err error) {
	var status int
	var kind, message string
	switch {
	case errors.Is(err, ErrNotFound):
		status, kind, message = http.StatusNotFound, "not_found", "quiz not found"
	case errors.Is(err, ErrDataIntegrity):
		status, kind, message = http.StatusInternalServerError, "data_integrity", "quiz content is malformed"
		log.Printf("Data integrity fault: %v", err)
	case errors.Is(err, ErrRetryable):
		status, kind, message = http.StatusServiceUnavailable, "retryable", "temporary failure, retry the request"
		log.Printf("Retryable failure: %v", err)
	default:
		status, kind, message = http.StatusInternalServerError, "internal", "internal error"
		log.Printf("Unexpected error: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Kind: kind, Message: message})
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(uint)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.service.SubmitQuiz(userID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	json.NewEncoder(w).Encode(result)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(uint)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	progress, err := h.service.GetStats(userID)
	if err != nil {
		writeError(w, err)
		return
	}

	json.NewEncoder(w).Encode(progress)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(uint)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.service.GetHistory(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []models.AttemptHistoryEntry{}
	}

	json.NewEncoder(w).Encode(entries)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetLeaderboard()
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}

	json.NewEncoder(w).Encode(entries)
}
