package analytics

import (
	"math"
	"sort"
	"time"

	"liftlog/workout-app/internal/domain"
)

// Streak counts consecutive calendar days with at least one completed
// session, anchored at today or yesterday. A most recent session older than
// yesterday breaks the streak immediately (returns 0). Multiple sessions on
// the same day count once; a gap of more than one day terminates the walk.
// Calendar days are taken in now's location: stored dates come back from the
// database in UTC and would otherwise land on the wrong day.
func Streak(history []domain.WorkoutSession, now time.Time) int {
	if len(history) == 0 {
		return 0
	}

	sorted := make([]domain.WorkoutSession, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	loc := now.Location()
	today := midnight(now)
	yesterday := today.AddDate(0, 0, -1)

	anchor := midnight(sorted[0].Date.In(loc))
	if !anchor.Equal(today) && !anchor.Equal(yesterday) {
		return 0
	}

	streak := 1
	for _, s := range sorted[1:] {
		day := midnight(s.Date.In(loc))
		switch daysBetween(anchor, day) {
		case 0:
			// Same day, multiple sessions: neither increments nor breaks.
			continue
		case 1:
			streak++
			anchor = day
		default:
			return streak
		}
	}
	return streak
}

// midnight normalizes a timestamp to the start of its calendar day.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole-day difference between two midnights.
// Rounding absorbs DST transitions that make a day 23 or 25 hours.
func daysBetween(later, earlier time.Time) int {
	return int(math.Round(later.Sub(earlier).Hours() / 24))
}
