// Package history provides non-destructive filtering and aggregation over
// the completed-session collection. Like the analytics package, everything
// here is pure and recomputed per query.
package history

import (
	"time"

	"liftlog/workout-app/internal/domain"
)

// Window selects the time span of a history query.
type Window string

const (
	WindowAll   Window = "all"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

// ParseWindow maps a query value to a Window, defaulting to all.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowWeek, WindowMonth, WindowYear:
		return Window(s)
	default:
		return WindowAll
	}
}

// cutoff returns the inclusive lower bound for a window. Month and year are
// calendar-naive fixed spans (30 and 365 days), matching the display the
// stats screen promises.
func cutoff(w Window, now time.Time) (time.Time, bool) {
	switch w {
	case WindowWeek:
		return now.AddDate(0, 0, -7), true
	case WindowMonth:
		return now.AddDate(0, 0, -30), true
	case WindowYear:
		return now.AddDate(0, 0, -365), true
	default:
		return time.Time{}, false
	}
}

// FilterByWindow returns the sessions dated on or after the window's lower
// bound. The input slice is never mutated.
func FilterByWindow(sessions []domain.WorkoutSession, w Window, now time.Time) []domain.WorkoutSession {
	bound, limited := cutoff(w, now)
	if !limited {
		out := make([]domain.WorkoutSession, len(sessions))
		copy(out, sessions)
		return out
	}

	out := make([]domain.WorkoutSession, 0, len(sessions))
	for _, s := range sessions {
		if !s.Date.Before(bound) {
			out = append(out, s)
		}
	}
	return out
}

// TypeShare is one workout type's slice of the filtered history.
type TypeShare struct {
	Type    domain.WorkoutType `json:"type"`
	Count   int                `json:"count"`
	Percent float64            `json:"percent"`
}

// Stats aggregates a filtered history view for display.
type Stats struct {
	TotalSessions   int         `json:"totalSessions"`
	TotalDurationMs int64       `json:"totalDurationMs"`
	TypeShares      []TypeShare `json:"typeShares"`
}

// Aggregate computes session count, total duration and the per-type
// distribution. Sessions missing either timestamp are excluded from the
// duration sum rather than counted as zero, so malformed records cannot
// skew the average. Percentages are guarded against an empty view.
func Aggregate(sessions []domain.WorkoutSession) Stats {
	stats := Stats{TotalSessions: len(sessions)}

	counts := map[domain.WorkoutType]int{}
	for _, s := range sessions {
		if d, ok := s.DurationMillis(); ok {
			stats.TotalDurationMs += d
		}
		counts[s.Type]++
	}

	// Stable ordering for display.
	for _, t := range []domain.WorkoutType{
		domain.WorkoutPush, domain.WorkoutPull, domain.WorkoutLegs, domain.WorkoutCustom,
	} {
		n, ok := counts[t]
		if !ok {
			continue
		}
		share := TypeShare{Type: t, Count: n}
		if stats.TotalSessions > 0 {
			share.Percent = float64(n) * 100 / float64(stats.TotalSessions)
		}
		stats.TypeShares = append(stats.TypeShares, share)
	}
	return stats
}
