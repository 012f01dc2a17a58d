// Package session implements the workout session editor: pure
// transformations over an active WorkoutSession. Every operation returns a
// new session value and leaves its input untouched, so callers can hold the
// previous value without surprises. Operations on a completed session are
// no-ops; the service layer rejects them before they get here.
package session

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"liftlog/workout-app/internal/domain"
)

// Start creates a new active session for the given workout type. Preset
// types deep-copy their routine template; Custom seeds a single placeholder
// exercise with three empty sets.
func Start(t domain.WorkoutType, username string, now time.Time) domain.WorkoutSession {
	return domain.WorkoutSession{
		ID:        uuid.NewString(),
		Username:  username,
		Type:      t,
		Title:     string(t) + " Day",
		Date:      now,
		StartTime: now.UnixMilli(),
		Exercises: exercisesFor(t),
		Status:    domain.StatusActive,
	}
}

// clone deep-copies a session so editor operations never alias the input's
// exercise or set slices.
func clone(s domain.WorkoutSession) domain.WorkoutSession {
	out := s
	out.Exercises = make([]domain.Exercise, len(s.Exercises))
	for i, ex := range s.Exercises {
		cp := ex
		cp.Sets = make([]domain.Set, len(ex.Sets))
		copy(cp.Sets, ex.Sets)
		out.Exercises[i] = cp
	}
	return out
}

// UpdateSet replaces the set with a matching id inside the matching
// exercise. Unknown exercise or set ids make this a no-op.
func UpdateSet(s domain.WorkoutSession, exerciseID string, updated domain.Set) domain.WorkoutSession {
	if s.Status == domain.StatusCompleted {
		return s
	}
	out := clone(s)
	for i := range out.Exercises {
		if out.Exercises[i].ID != exerciseID {
			continue
		}
		for j := range out.Exercises[i].Sets {
			if out.Exercises[i].Sets[j].ID == updated.ID {
				out.Exercises[i].Sets[j] = updated
			}
		}
	}
	return out
}

// UpdateExerciseName replaces only the name of the matching exercise.
func UpdateExerciseName(s domain.WorkoutSession, exerciseID, name string) domain.WorkoutSession {
	if s.Status == domain.StatusCompleted {
		return s
	}
	out := clone(s)
	for i := range out.Exercises {
		if out.Exercises[i].ID == exerciseID {
			out.Exercises[i].Name = name
		}
	}
	return out
}

// AddSet appends a new set to the matching exercise. Reps and weight are
// prefilled from the last existing set as a continuity convenience. The new
// set's number is the current count plus one; existing sets keep their
// numbers even if earlier ones were removed.
func AddSet(s domain.WorkoutSession, exerciseID string) domain.WorkoutSession {
	if s.Status == domain.StatusCompleted {
		return s
	}
	out := clone(s)
	for i := range out.Exercises {
		if out.Exercises[i].ID != exerciseID {
			continue
		}
		newSet := domain.Set{
			ID:        uuid.NewString(),
			SetNumber: len(out.Exercises[i].Sets) + 1,
		}
		if n := len(out.Exercises[i].Sets); n > 0 {
			last := out.Exercises[i].Sets[n-1]
			newSet.Reps = last.Reps
			newSet.Weight = last.Weight
		}
		out.Exercises[i].Sets = append(out.Exercises[i].Sets, newSet)
	}
	return out
}

// AddExercise appends a blank exercise with three empty sets.
func AddExercise(s domain.WorkoutSession) domain.WorkoutSession {
	return AddSuggestedExercise(s, "New Exercise")
}

// AddSuggestedExercise appends an exercise with the given name and three
// empty sets. The suggestion catalog has no muscle-group metadata, so the
// muscle group defaults to Chest rather than failing.
func AddSuggestedExercise(s domain.WorkoutSession, name string) domain.WorkoutSession {
	if s.Status == domain.StatusCompleted {
		return s
	}
	out := clone(s)
	out.Exercises = append(out.Exercises, domain.Exercise{
		ID:          uuid.NewString(),
		Name:        name,
		MuscleGroup: domain.MuscleChest,
		TargetSets:  defaultSetCount,
		TargetReps:  "8-12",
		Sets:        newEmptySets(defaultSetCount),
	})
	return out
}

// RemoveExercise filters the matching exercise out of the session.
// Irreversible within the session; the caller is responsible for the
// confirmation step.
func RemoveExercise(s domain.WorkoutSession, exerciseID string) domain.WorkoutSession {
	if s.Status == domain.StatusCompleted {
		return s
	}
	out := clone(s)
	kept := out.Exercises[:0]
	for _, ex := range out.Exercises {
		if ex.ID != exerciseID {
			kept = append(kept, ex)
		}
	}
	out.Exercises = kept
	return out
}

// Complete stamps the end time and freezes the session. Completing an
// already completed session is a no-op.
func Complete(s domain.WorkoutSession, now time.Time) domain.WorkoutSession {
	if s.Status == domain.StatusCompleted {
		return s
	}
	out := clone(s)
	out.EndTime = now.UnixMilli()
	out.Status = domain.StatusCompleted
	return out
}

// LastWeightFor scans history newest-first and returns the maximum weight
// among completed, weight>0 sets of the first session containing an exercise
// with exactly the given name. The bool reports whether any such weight was
// found. Name matching is exact and case-sensitive: a renamed exercise will
// not match its own earlier entries.
func LastWeightFor(history []domain.WorkoutSession, exerciseName string) (float64, bool) {
	sorted := make([]domain.WorkoutSession, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	for _, s := range sorted {
		matched := false
		best := 0.0
		for _, ex := range s.Exercises {
			if ex.Name != exerciseName {
				continue
			}
			matched = true
			for _, set := range ex.Sets {
				if set.CountsForAnalytics() && set.WeightValue() > best {
					best = set.WeightValue()
				}
			}
		}
		// Only the most recent matching session counts, even when it has
		// no qualifying sets.
		if matched {
			return best, best > 0
		}
	}
	return 0, false
}
