package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepStageType classifies a sub-interval of a session by sleep depth.
// @Description Sleep stage kind: AWAKE, LIGHT, DEEP, REM, SLEEPING, OUT_OF_BED or UNKNOWN.
type SleepStageType string

const (
	StageAwake    SleepStageType = "AWAKE"
	StageLight    SleepStageType = "LIGHT"
	StageDeep     SleepStageType = "DEEP"
	StageREM      SleepStageType = "REM"
	StageSleeping SleepStageType = "SLEEPING"
	StageOutOfBed SleepStageType = "OUT_OF_BED"
	StageUnknown  SleepStageType = "UNKNOWN"
)

// SessionSource tags where a session or stage record came from.
// @Description Record provenance: MANUAL for user-entered or consolidated records,
// PLATFORM for health-platform imports, SIMULATED for synthesized stage estimates.
type SessionSource string

const (
	SourceManual    SessionSource = "MANUAL"
	SourcePlatform  SessionSource = "PLATFORM"
	SourceSimulated SessionSource = "SIMULATED"
	SourceUnknown   SessionSource = "UNKNOWN"
)

// SleepStage is one immutable stage interval inside a session.
type SleepStage struct {
	ID        string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	SessionID string         `gorm:"type:varchar(160);not null;index" json:"-"`
	StartAt   time.Time      `gorm:"not null" json:"start_at"`
	EndAt     time.Time      `gorm:"not null" json:"end_at"`
	Type      SleepStageType `gorm:"type:varchar(16);not null" json:"type"`
	Source    SessionSource  `gorm:"type:varchar(16);not null;default:'UNKNOWN'" json:"source"`
}

func (SleepStage) TableName() string {
	return "sleep_stages"
}

// Duration is the stage length. A stage with end before start counts as zero.
func (s SleepStage) Duration() time.Duration {
	d := s.EndAt.Sub(s.StartAt)
	if d < 0 {
		return 0
	}
	return d
}

// SleepSession is one contiguous period spent sleeping (or attempting to).
// Consolidated sessions carry a concatenated ID and are never persisted;
// raw sessions are stored with their ordered stage intervals.
type SleepSession struct {
	ID            string        `gorm:"type:varchar(160);primaryKey" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index:idx_sleep_sessions_user_start" json:"user_id"`
	StartAt       time.Time     `gorm:"not null;index:idx_sleep_sessions_user_start,sort:desc" json:"start_at"`
	EndAt         time.Time     `gorm:"not null" json:"end_at"`
	Stages        []SleepStage  `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"stages"`
	Efficiency    int           `gorm:"type:smallint;not null;default:0" json:"efficiency"`
	LightSleepPct float64       `gorm:"not null;default:0" json:"light_sleep_pct"`
	DeepSleepPct  float64       `gorm:"not null;default:0" json:"deep_sleep_pct"`
	REMSleepPct   float64       `gorm:"not null;default:0" json:"rem_sleep_pct"`
	WakeCount     int           `gorm:"not null;default:0" json:"wake_count"`
	Notes         string        `gorm:"type:text" json:"notes,omitempty"`
	Source        SessionSource `gorm:"type:varchar(16);not null;default:'UNKNOWN'" json:"source"`

	LocalTimezone   string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"local_timezone"`
	ClientRequestID *string   `gorm:"type:varchar(255);uniqueIndex:idx_session_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepSession) TableName() string {
	return "sleep_sessions"
}

// Duration is the nominal session length (end minus start).
func (s SleepSession) Duration() time.Duration {
	d := s.EndAt.Sub(s.StartAt)
	if d < 0 {
		return 0
	}
	return d
}

// HasStageData reports whether the session carries any stage intervals.
func (s SleepSession) HasStageData() bool {
	return len(s.Stages) > 0
}

// Location resolves the session's local timezone, falling back to UTC.
func (s SleepSession) Location() *time.Location {
	if s.LocalTimezone != "" {
		if loc, err := time.LoadLocation(s.LocalTimezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// StageInput is one stage interval in a create request.
// @Description Stage interval payload for session creation.
type StageInput struct {
	// Stage start time in RFC3339 format
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-01-15T23:00:00Z"`
	// Stage end time in RFC3339 format (must be after start_at)
	EndAt time.Time `json:"end_at" validate:"required,gtfield=StartAt" example:"2024-01-16T00:30:00Z"`
	// Stage kind
	Type SleepStageType `json:"type" validate:"required,oneof=AWAKE LIGHT DEEP REM SLEEPING OUT_OF_BED UNKNOWN" example:"LIGHT" enums:"AWAKE,LIGHT,DEEP,REM,SLEEPING,OUT_OF_BED,UNKNOWN"`
}

// CreateSessionRequest is the request body for recording a sleep session.
// @Description Request payload for recording a raw sleep session with optional stages.
type CreateSessionRequest struct {
	// Sleep start time in RFC3339 format (UTC recommended)
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-01-15T23:00:00Z"`
	// Sleep end time in RFC3339 format (must be after start_at)
	EndAt time.Time `json:"end_at" validate:"required,gtfield=StartAt" example:"2024-01-16T07:00:00Z"`
	// Number of times the user woke during the session
	WakeCount int `json:"wake_count" validate:"min=0" example:"1" minimum:"0"`
	// Optional stage intervals inside the session
	Stages []StageInput `json:"stages,omitempty" validate:"omitempty,dive"`
	// Optional free-text notes
	Notes string `json:"notes,omitempty" validate:"omitempty,max=2000" example:"Late coffee"`
	// Record provenance (defaults to MANUAL)
	Source SessionSource `json:"source,omitempty" validate:"omitempty,oneof=MANUAL PLATFORM SIMULATED UNKNOWN" example:"MANUAL" enums:"MANUAL,PLATFORM,SIMULATED,UNKNOWN"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
	// Optional IANA timezone for local time display (defaults to user's timezone)
	LocalTimezone *string `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// SessionResponse is the response body for session endpoints.
// @Description Sleep session record with stage intervals and computed metrics.
type SessionResponse struct {
	ID         string        `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID     uuid.UUID     `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	StartAt    time.Time     `json:"start_at" example:"2024-01-15T23:00:00Z"`
	EndAt      time.Time     `json:"end_at" example:"2024-01-16T07:00:00Z"`
	Stages     []SleepStage  `json:"stages"`
	Efficiency int           `json:"efficiency" example:"92"`
	// Percentage of stage time per kind (0-100)
	LightSleepPct float64       `json:"light_sleep_pct" example:"55.0"`
	DeepSleepPct  float64       `json:"deep_sleep_pct" example:"25.0"`
	REMSleepPct   float64       `json:"rem_sleep_pct" example:"20.0"`
	WakeCount     int           `json:"wake_count" example:"1"`
	Notes         string        `json:"notes,omitempty"`
	Source        SessionSource `json:"source" example:"MANUAL"`
	LocalTimezone string        `json:"local_timezone" example:"Europe/Prague"`
	CreatedAt     time.Time     `json:"created_at" example:"2024-01-16T07:05:00Z"`
}

func (s *SleepSession) ToResponse() SessionResponse {
	stages := s.Stages
	if stages == nil {
		stages = []SleepStage{}
	}
	return SessionResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		StartAt:       s.StartAt,
		EndAt:         s.EndAt,
		Stages:        stages,
		Efficiency:    s.Efficiency,
		LightSleepPct: s.LightSleepPct,
		DeepSleepPct:  s.DeepSleepPct,
		REMSleepPct:   s.REMSleepPct,
		WakeCount:     s.WakeCount,
		Notes:         s.Notes,
		Source:        s.Source,
		LocalTimezone: s.LocalTimezone,
		CreatedAt:     s.CreatedAt,
	}
}

// SessionListResponse is the response body for listing sessions.
// @Description Paginated list of sleep sessions.
type SessionListResponse struct {
	// Array of sleep session records
	Data []SessionResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SessionFilter contains filter parameters for listing sessions.
type SessionFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
