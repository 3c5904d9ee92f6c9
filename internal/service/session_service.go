package service

import (
	"context"

	"github.com/blaisecz/sleep-analytics/internal/analysis"
	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/blaisecz/sleep-analytics/internal/repository"
	"github.com/blaisecz/sleep-analytics/pkg/pagination"
	"github.com/google/uuid"
)

type SessionService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.SleepSession, bool, error)
	GetByID(ctx context.Context, userID uuid.UUID, sessionID string) (*domain.SleepSession, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error)
}

type sessionService struct {
	repo     repository.SessionRepository
	userRepo repository.UserRepository
}

func NewSessionService(repo repository.SessionRepository, userRepo repository.UserRepository) SessionService {
	return &sessionService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// Create records a new sleep session with its stage intervals.
// Returns (session, isExisting, error) - isExisting is true if returning an
// existing session due to idempotency.
func (s *sessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.SleepSession, bool, error) {
	// Load user to confirm existence and get their home timezone
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, err
	}

	// Determine local timezone for this session
	localTZ := user.Timezone
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		localTZ = *req.LocalTimezone
	}
	if localTZ == "" {
		localTZ = "UTC"
	}

	// Normalize timestamps to UTC for storage and overlap checks
	startUTC := req.StartAt.UTC()
	endUTC := req.EndAt.UTC()

	// Check for idempotency (duplicate client_request_id)
	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil // Return existing session
		}
	}

	// Check for overlapping sleep periods
	hasOverlap, err := s.repo.HasOverlap(ctx, userID, startUTC, endUTC)
	if err != nil {
		return nil, false, err
	}
	if hasOverlap {
		return nil, false, domain.ErrOverlappingSleep
	}

	source := req.Source
	if source == "" {
		source = domain.SourceManual
	}

	session := &domain.SleepSession{
		ID:              uuid.NewString(),
		UserID:          userID,
		StartAt:         startUTC,
		EndAt:           endUTC,
		WakeCount:       req.WakeCount,
		Notes:           req.Notes,
		Source:          source,
		LocalTimezone:   localTZ,
		ClientRequestID: req.ClientRequestID,
	}

	// Persist stages inside the session window, in time order
	for _, in := range req.Stages {
		stageStart := in.StartAt.UTC()
		stageEnd := in.EndAt.UTC()
		if stageStart.Before(startUTC) || stageEnd.After(endUTC) {
			return nil, false, domain.ErrInvalidInput
		}
		session.Stages = append(session.Stages, domain.SleepStage{
			ID:        uuid.NewString(),
			SessionID: session.ID,
			StartAt:   stageStart,
			EndAt:     stageEnd,
			Type:      in.Type,
			Source:    source,
		})
	}

	// Derive efficiency and stage percentages from the recorded stages
	if session.HasStageData() {
		computed := analysis.WithComputedMetrics(*session)
		session.Efficiency = computed.Efficiency
		session.LightSleepPct = computed.LightSleepPct
		session.DeepSleepPct = computed.DeepSleepPct
		session.REMSleepPct = computed.REMSleepPct
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, false, err
	}

	return session, false, nil
}

func (s *sessionService) GetByID(ctx context.Context, userID uuid.UUID, sessionID string) (*domain.SleepSession, error) {
	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Verify ownership
	if session.UserID != userID {
		return nil, domain.ErrNotFound
	}

	return session, nil
}

func (s *sessionService) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
	// Check if user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	sessions, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(sessions) > limit

	// Trim to actual limit
	if hasMore {
		sessions = sessions[:limit]
	}

	// Build response
	response := &domain.SessionListResponse{
		Data: make([]domain.SessionResponse, len(sessions)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i := range sessions {
		response.Data[i] = sessions[i].ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(sessions) > 0 {
		last := sessions[len(sessions)-1]
		cursor := &pagination.Cursor{
			ID:      last.ID,
			StartAt: last.StartAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
