package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/google/uuid"
)

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	sessions        map[string]*domain.SleepSession
	clientRequestID map[string]*domain.SleepSession
	listResult      []domain.SleepSession
	err             error
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{
		sessions:        make(map[string]*domain.SleepSession),
		clientRequestID: make(map[string]*domain.SleepSession),
	}
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.SleepSession) error {
	if m.err != nil {
		return m.err
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	session.CreatedAt = time.Now()
	m.sessions[session.ID] = session
	if session.ClientRequestID != nil {
		key := session.UserID.String() + ":" + *session.ClientRequestID
		m.clientRequestID[key] = session
	}
	return nil
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id string) (*domain.SleepSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (m *MockSessionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]domain.SleepSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepSession, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepSession
	for _, session := range m.sessions {
		if session.UserID == userID {
			result = append(result, *session)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartAt.After(result[j].StartAt)
	})
	return result, nil
}

func (m *MockSessionRepository) ListByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepSession
	for _, session := range m.sessions {
		if session.UserID == userID && !session.EndAt.Before(from) && !session.EndAt.After(to) {
			result = append(result, *session)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartAt.Before(result[j].StartAt)
	})
	return result, nil
}

func (m *MockSessionRepository) HasOverlap(ctx context.Context, userID uuid.UUID, startAt, endAt time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, session := range m.sessions {
		if session.UserID != userID {
			continue
		}
		// Check overlap: new period overlaps if start < existing.end AND end > existing.start
		if startAt.Before(session.EndAt) && endAt.After(session.StartAt) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockSessionRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	key := userID.String() + ":" + clientRequestID
	session, ok := m.clientRequestID[key]
	if !ok {
		return nil, nil
	}
	return session, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockAdviceLLM is a mock implementation of llm.AdviceLLM
type MockAdviceLLM struct {
	output  *domain.AdviceOutput
	err     error
	lastCtx *domain.AdviceContext
}

func (m *MockAdviceLLM) GenerateAdvice(ctx context.Context, adviceCtx *domain.AdviceContext) (*domain.AdviceOutput, error) {
	m.lastCtx = adviceCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}
