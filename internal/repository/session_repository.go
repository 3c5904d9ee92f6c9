package repository

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/blaisecz/sleep-analytics/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.SleepSession) error
	GetByID(ctx context.Context, id string) (*domain.SleepSession, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]domain.SleepSession, error)
	// ListByEndRange returns sessions ending inside [from, to], oldest first,
	// with stages preloaded in time order. This is the analysis engine's feed.
	ListByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSession, error)
	HasOverlap(ctx context.Context, userID uuid.UUID, startAt, endAt time.Time) (bool, error)
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSession, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.SleepSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.SleepSession, error) {
	var session domain.SleepSession
	err := r.db.WithContext(ctx).
		Preload("Stages", orderStages).
		First(&session, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) ([]domain.SleepSession, error) {
	query := r.db.WithContext(ctx).
		Preload("Stages", orderStages).
		Where("user_id = ?", userID).
		Order("start_at DESC")

	if filter.From != nil {
		query = query.Where("start_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: records strictly before the cursor position.
			query = query.Where(
				"(start_at < ?) OR (start_at = ? AND id < ?)",
				cursor.StartAt, cursor.StartAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results.
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var sessions []domain.SleepSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *sessionRepository) ListByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSession, error) {
	var sessions []domain.SleepSession
	err := r.db.WithContext(ctx).
		Preload("Stages", orderStages).
		Where("user_id = ? AND end_at >= ? AND end_at <= ?", userID, from, to).
		Order("start_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// HasOverlap checks whether any stored session intersects the given span.
func (r *sessionRepository) HasOverlap(ctx context.Context, userID uuid.UUID, startAt, endAt time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SleepSession{}).
		Where("user_id = ?", userID).
		Where("start_at < ?", endAt).
		Where("end_at > ?", startAt).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sessionRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSession, error) {
	var session domain.SleepSession
	err := r.db.WithContext(ctx).
		Preload("Stages", orderStages).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&session).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // Not found is not an error for idempotency check
		}
		return nil, err
	}
	return &session, nil
}

func orderStages(db *gorm.DB) *gorm.DB {
	return db.Order("sleep_stages.start_at ASC")
}
