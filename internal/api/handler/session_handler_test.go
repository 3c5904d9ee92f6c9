package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func newSessionRequest(method, target, userID, body string) (*httptest.ResponseRecorder, *http.Request) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	return httptest.NewRecorder(), req
}

func TestSessionHandler_Create(t *testing.T) {
	userID := uuid.New()
	validBody := `{
		"start_at": "2024-01-15T23:00:00Z",
		"end_at": "2024-01-16T07:00:00Z",
		"wake_count": 1,
		"stages": [
			{"start_at": "2024-01-15T23:00:00Z", "end_at": "2024-01-16T03:00:00Z", "type": "LIGHT"},
			{"start_at": "2024-01-16T03:00:00Z", "end_at": "2024-01-16T07:00:00Z", "type": "DEEP"}
		]
	}`

	tests := []struct {
		name           string
		userID         string
		body           string
		mockService    *MockSessionService
		wantStatusCode int
	}{
		{
			name:           "valid request",
			userID:         userID.String(),
			body:           validBody,
			mockService:    &MockSessionService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:   "idempotent duplicate returns 200",
			userID: userID.String(),
			body:   validBody,
			mockService: &MockSessionService{
				createFunc: func(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.SleepSession, bool, error) {
					return &domain.SleepSession{ID: "existing", UserID: userID, StartAt: req.StartAt, EndAt: req.EndAt}, true, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			userID:         userID.String(),
			body:           `{invalid}`,
			mockService:    &MockSessionService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "end before start",
			userID:         userID.String(),
			body:           `{"start_at": "2024-01-16T07:00:00Z", "end_at": "2024-01-15T23:00:00Z"}`,
			mockService:    &MockSessionService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid stage type",
			userID:         userID.String(),
			body:           `{"start_at": "2024-01-15T23:00:00Z", "end_at": "2024-01-16T07:00:00Z", "stages": [{"start_at": "2024-01-15T23:00:00Z", "end_at": "2024-01-16T00:00:00Z", "type": "NAPPING"}]}`,
			mockService:    &MockSessionService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid user ID",
			userID:         "not-a-uuid",
			body:           validBody,
			mockService:    &MockSessionService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "user not found",
			userID: userID.String(),
			body:   validBody,
			mockService: &MockSessionService{
				createFunc: func(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.SleepSession, bool, error) {
					return nil, false, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "overlapping session",
			userID: userID.String(),
			body:   validBody,
			mockService: &MockSessionService{
				createFunc: func(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.SleepSession, bool, error) {
					return nil, false, domain.ErrOverlappingSleep
				},
			},
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSessionHandler(tt.mockService)

			rec, req := newSessionRequest(http.MethodPost, "/v1/users/"+tt.userID+"/sleep/sessions", tt.userID, tt.body)
			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusCreated {
				var response domain.SessionResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Errorf("Failed to decode response: %v", err)
				}
				if response.ID == "" {
					t.Error("response session ID is empty")
				}
			}
		})
	}
}

func TestSessionHandler_Get(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		sessionID      string
		mockService    *MockSessionService
		wantStatusCode int
	}{
		{
			name:           "existing session",
			sessionID:      "session-1",
			mockService:    &MockSessionService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:      "session not found",
			sessionID: "missing",
			mockService: &MockSessionService{
				getFunc: func(ctx context.Context, userID uuid.UUID, sessionID string) (*domain.SleepSession, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSessionHandler(tt.mockService)

			rec, req := newSessionRequest(http.MethodGet, "/v1/users/"+userID.String()+"/sleep/sessions/"+tt.sessionID, userID.String(), "")
			rctx := chi.RouteContext(req.Context())
			rctx.URLParams.Add("sessionId", tt.sessionID)

			handler.Get(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Get() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestSessionHandler_List(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		query          string
		mockService    *MockSessionService
		wantStatusCode int
	}{
		{
			name:           "empty list",
			userID:         userID.String(),
			mockService:    &MockSessionService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid from timestamp",
			userID:         userID.String(),
			query:          "?from=yesterday",
			mockService:    &MockSessionService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid limit",
			userID:         userID.String(),
			query:          "?limit=-1",
			mockService:    &MockSessionService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "user not found",
			userID: userID.String(),
			mockService: &MockSessionService{
				listFunc: func(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSessionHandler(tt.mockService)

			rec, req := newSessionRequest(http.MethodGet, "/v1/users/"+tt.userID+"/sleep/sessions"+tt.query, tt.userID, "")
			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
