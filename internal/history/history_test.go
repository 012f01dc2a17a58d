package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftlog/workout-app/internal/domain"
)

func datedSession(id string, date time.Time, typ domain.WorkoutType, startMs, endMs int64) domain.WorkoutSession {
	return domain.WorkoutSession{
		ID:        id,
		Date:      date,
		Type:      typ,
		StartTime: startMs,
		EndTime:   endMs,
		Status:    domain.StatusCompleted,
	}
}

func TestParseWindow(t *testing.T) {
	assert.Equal(t, WindowWeek, ParseWindow("week"))
	assert.Equal(t, WindowMonth, ParseWindow("month"))
	assert.Equal(t, WindowYear, ParseWindow("year"))
	assert.Equal(t, WindowAll, ParseWindow(""))
	assert.Equal(t, WindowAll, ParseWindow("fortnight"))
}

func TestFilterByWindowWeekBoundary(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	sixDays := datedSession("in", now.AddDate(0, 0, -6), domain.WorkoutPush, 0, 0)
	eightDays := datedSession("out", now.AddDate(0, 0, -8), domain.WorkoutPull, 0, 0)

	filtered := FilterByWindow([]domain.WorkoutSession{sixDays, eightDays}, WindowWeek, now)

	require.Len(t, filtered, 1)
	assert.Equal(t, "in", filtered[0].ID)
}

func TestFilterByWindowAllIsNonDestructive(t *testing.T) {
	now := time.Now()
	input := []domain.WorkoutSession{
		datedSession("a", now, domain.WorkoutPush, 0, 0),
		datedSession("b", now.AddDate(-2, 0, 0), domain.WorkoutLegs, 0, 0),
	}

	filtered := FilterByWindow(input, WindowAll, now)
	require.Len(t, filtered, 2)

	// Mutating the view must not touch the input.
	filtered[0].ID = "mutated"
	assert.Equal(t, "a", input[0].ID)
}

func TestFilterByWindowYear(t *testing.T) {
	now := time.Now()
	input := []domain.WorkoutSession{
		datedSession("recent", now.AddDate(0, 0, -300), domain.WorkoutPush, 0, 0),
		datedSession("ancient", now.AddDate(0, 0, -400), domain.WorkoutPush, 0, 0),
	}

	filtered := FilterByWindow(input, WindowYear, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, "recent", filtered[0].ID)
}

func TestAggregateDurationsSkipMalformedRecords(t *testing.T) {
	now := time.Now()
	input := []domain.WorkoutSession{
		datedSession("a", now, domain.WorkoutPush, 1000, 61000),  // 60 s
		datedSession("b", now, domain.WorkoutPull, 5000, 125000), // 120 s
		datedSession("c", now, domain.WorkoutLegs, 9000, 0),      // missing end: excluded
		datedSession("d", now, domain.WorkoutLegs, 0, 0),         // missing both: excluded
	}

	stats := Aggregate(input)

	assert.Equal(t, 4, stats.TotalSessions)
	assert.Equal(t, int64(180000), stats.TotalDurationMs)
}

func TestAggregateTypeDistribution(t *testing.T) {
	now := time.Now()
	input := []domain.WorkoutSession{
		datedSession("a", now, domain.WorkoutPush, 0, 0),
		datedSession("b", now, domain.WorkoutPush, 0, 0),
		datedSession("c", now, domain.WorkoutLegs, 0, 0),
		datedSession("d", now, domain.WorkoutCustom, 0, 0),
	}

	stats := Aggregate(input)
	require.Len(t, stats.TypeShares, 3)

	byType := map[domain.WorkoutType]TypeShare{}
	for _, s := range stats.TypeShares {
		byType[s.Type] = s
	}
	assert.Equal(t, 2, byType[domain.WorkoutPush].Count)
	assert.InDelta(t, 50.0, byType[domain.WorkoutPush].Percent, 0.001)
	assert.InDelta(t, 25.0, byType[domain.WorkoutLegs].Percent, 0.001)
}

func TestAggregateEmptyHistory(t *testing.T) {
	stats := Aggregate(nil)

	assert.Zero(t, stats.TotalSessions)
	assert.Zero(t, stats.TotalDurationMs)
	assert.Empty(t, stats.TypeShares)
}
