package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/analysis"
	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample users and sleep sessions. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepSession{}, &domain.SleepStage{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Madrid"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedSessionsForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedSessionsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), 22+rng.Intn(2), rng.Intn(60), 0, 0, time.UTC)
		wakeup := bedtime.Add(time.Duration(6+rng.Intn(3)) * time.Hour)

		// Every fifth night is split into two records with a short gap,
		// so the consolidator has something to merge.
		if i%5 == 0 {
			splitAt := bedtime.Add(2 * time.Hour)
			resumeAt := splitAt.Add(time.Duration(5+rng.Intn(10)) * time.Minute)

			if err := createSession(db, user, rng, fmt.Sprintf("seed-night-%s-%d-a", user.ID, i), bedtime, splitAt, 0); err != nil {
				return err
			}
			if err := createSession(db, user, rng, fmt.Sprintf("seed-night-%s-%d-b", user.ID, i), resumeAt, wakeup, rng.Intn(3)); err != nil {
				return err
			}
		} else {
			if err := createSession(db, user, rng, fmt.Sprintf("seed-night-%s-%d", user.ID, i), bedtime, wakeup, rng.Intn(3)); err != nil {
				return err
			}
		}

		if rng.Float32() < 0.4 {
			napStart := time.Date(date.Year(), date.Month(), date.Day(), 13+rng.Intn(3), rng.Intn(60), 0, 0, time.UTC)
			napEnd := napStart.Add(time.Duration(20+rng.Intn(40)) * time.Minute)

			if err := createSession(db, user, rng, fmt.Sprintf("seed-nap-%s-%d", user.ID, i), napStart, napEnd, 0); err != nil {
				return err
			}
		}
	}
	return nil
}

func createSession(db *gorm.DB, user domain.User, rng *rand.Rand, clientReqID string, start, end time.Time, wakeCount int) error {
	session := domain.SleepSession{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		StartAt:         start,
		EndAt:           end,
		WakeCount:       wakeCount,
		Source:          domain.SourceManual,
		LocalTimezone:   user.Timezone,
		ClientRequestID: &clientReqID,
	}

	// Roughly half the sessions carry stage intervals
	if rng.Float32() < 0.5 {
		for _, s := range analysis.SynthesizeStages(start, end) {
			session.Stages = append(session.Stages, domain.SleepStage{
				ID:        uuid.NewString(),
				SessionID: session.ID,
				StartAt:   s.StartAt,
				EndAt:     s.EndAt,
				Type:      s.Type,
				Source:    domain.SourcePlatform,
			})
		}
		computed := analysis.WithComputedMetrics(session)
		session.Efficiency = computed.Efficiency
		session.LightSleepPct = computed.LightSleepPct
		session.DeepSleepPct = computed.DeepSleepPct
		session.REMSleepPct = computed.REMSleepPct
	}

	if err := db.Where("client_request_id = ?", clientReqID).FirstOrCreate(&session).Error; err != nil {
		return fmt.Errorf("failed to create sleep session: %w", err)
	}
	return nil
}
