package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/api/validation"
	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/blaisecz/sleep-analytics/internal/service"
	"github.com/blaisecz/sleep-analytics/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Create handles POST /v1/users/{userId}/sleep/sessions
// @Summary Record a sleep session
// @Description Record a sleep session with optional stage intervals. Use client_request_id for safe retries (idempotency). Returns 200 if duplicate request, 201 if new.
// @Tags sleep-sessions
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateSessionRequest true "Sleep session data"
// @Success 201 {object} domain.SessionResponse "New session created"
// @Success 200 {object} domain.SessionResponse "Existing session returned (idempotent duplicate)"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Sleep period overlaps with an existing session"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/sessions [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	session, isExisting, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrOverlappingSleep) {
			problem.Conflict("Overlapping sleep period detected").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Stage intervals must fall inside the session window").Write(w)
			return
		}
		problem.InternalError("Failed to create sleep session").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if isExisting {
		w.WriteHeader(http.StatusOK) // Return 200 for idempotent duplicate
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(session.ToResponse())
}

// Get handles GET /v1/users/{userId}/sleep/sessions/{sessionId}
// @Summary Get a sleep session
// @Description Fetch a single sleep session with its stage intervals.
// @Tags sleep-sessions
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param sessionId path string true "Session ID"
// @Success 200 {object} domain.SessionResponse "Sleep session"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/sessions/{sessionId} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	sessionID := chi.URLParam(r, "sessionId")
	if sessionID == "" {
		problem.BadRequest("Session ID is required").Write(w)
		return
	}

	session, err := h.service.GetByID(r.Context(), userID, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Session not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch sleep session").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session.ToResponse())
}

// List handles GET /v1/users/{userId}/sleep/sessions
// @Summary List sleep sessions
// @Description Fetch paginated sleep history. Filter by date range. Results sorted by start_at descending (newest first).
// @Tags sleep-sessions
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of date range (RFC3339, UTC recommended for consistent filtering)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of date range (RFC3339, UTC recommended for consistent filtering)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SessionListResponse "Sleep sessions with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/sessions [get]
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list sleep sessions").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.SessionFilter, []problem.FieldError) {
	var filter domain.SessionFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
