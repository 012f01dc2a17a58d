package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"liftlog/workout-app/internal/domain"
)

// sessionOn builds a completed session dated the given number of days
// before now (0 = today).
func sessionOn(now time.Time, daysAgo int) domain.WorkoutSession {
	return domain.WorkoutSession{
		ID:     "s",
		Date:   now.AddDate(0, 0, -daysAgo),
		Status: domain.StatusCompleted,
	}
}

func TestStreakEmptyHistory(t *testing.T) {
	assert.Zero(t, Streak(nil, time.Now()))
}

func TestStreakThreeConsecutiveDays(t *testing.T) {
	now := time.Date(2026, 8, 31, 18, 30, 0, 0, time.UTC)
	history := []domain.WorkoutSession{
		sessionOn(now, 0),
		sessionOn(now, 1),
		sessionOn(now, 2),
	}
	assert.Equal(t, 3, Streak(history, now))
}

func TestStreakGapBreaksWalk(t *testing.T) {
	now := time.Date(2026, 8, 31, 18, 30, 0, 0, time.UTC)
	history := []domain.WorkoutSession{
		sessionOn(now, 0),
		sessionOn(now, 3),
	}
	assert.Equal(t, 1, Streak(history, now))
}

func TestStreakAnchoredAtYesterday(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	history := []domain.WorkoutSession{sessionOn(now, 1)}
	assert.Equal(t, 1, Streak(history, now))
}

func TestStreakMissedDayBreaksImmediately(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	history := []domain.WorkoutSession{
		sessionOn(now, 2),
		sessionOn(now, 3),
	}
	assert.Zero(t, Streak(history, now))
}

func TestStreakSameDaySessionsCountOnce(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	history := []domain.WorkoutSession{
		sessionOn(now, 0),
		sessionOn(now, 0), // second session today
		sessionOn(now, 1),
	}
	assert.Equal(t, 2, Streak(history, now))
}

// Stored dates come back from the database in UTC; the walk must count
// calendar days in the caller's location, not the stored one.
func TestStreakNormalizesStoredUTCDates(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*60*60)
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, loc)
	history := []domain.WorkoutSession{
		{ID: "a", Date: now.UTC(), Status: domain.StatusCompleted},
		{ID: "b", Date: now.AddDate(0, 0, -1).UTC(), Status: domain.StatusCompleted},
	}
	assert.Equal(t, 2, Streak(history, now))
}

func TestStreakUnsortedInput(t *testing.T) {
	now := time.Date(2026, 8, 31, 20, 0, 0, 0, time.UTC)
	history := []domain.WorkoutSession{
		sessionOn(now, 2),
		sessionOn(now, 0),
		sessionOn(now, 1),
	}
	assert.Equal(t, 3, Streak(history, now))
}
