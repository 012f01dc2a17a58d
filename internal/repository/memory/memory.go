// Package memory provides in-memory implementations of the repository
// interfaces for demo mode: when no database is configured the app runs
// fully local and nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/repository"
)

// profileRepository implements repository.ProfileRepository on a map.
type profileRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.UserProfile
}

// NewProfileRepository creates an empty in-memory profile repository.
func NewProfileRepository() repository.ProfileRepository {
	return &profileRepository{profiles: make(map[string]domain.UserProfile)}
}

func (r *profileRepository) Create(_ context.Context, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[profile.Username]; exists {
		return repository.ErrDuplicate
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.profiles[profile.Username] = *profile
	return nil
}

func (r *profileRepository) GetByUsername(_ context.Context, username string) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *profileRepository) UpdateFields(_ context.Context, username string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[username]
	if !ok {
		return repository.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "displayName":
			p.DisplayName, _ = value.(string)
		case "age":
			p.Age, _ = value.(string)
		case "weight":
			p.Weight, _ = value.(string)
		case "height":
			p.Height, _ = value.(string)
		case "avatarUrl":
			p.AvatarURL, _ = value.(string)
		case "gender":
			if g, ok := value.(domain.Gender); ok {
				p.Gender = g
			}
		case "activityLevel":
			if a, ok := value.(domain.ActivityLevel); ok {
				p.ActivityLevel = a
			}
		}
	}
	p.UpdatedAt = time.Now().UTC()
	r.profiles[username] = p
	return nil
}

// workoutRepository implements repository.WorkoutRepository on a per-user
// slice.
type workoutRepository struct {
	mu       sync.RWMutex
	sessions map[string][]domain.WorkoutSession
}

// NewWorkoutRepository creates an empty in-memory workout repository.
func NewWorkoutRepository() repository.WorkoutRepository {
	return &workoutRepository{sessions: make(map[string][]domain.WorkoutSession)}
}

func (r *workoutRepository) Insert(_ context.Context, session *domain.WorkoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Username] = append(r.sessions[session.Username], *session)
	return nil
}

func (r *workoutRepository) GetAllByUser(_ context.Context, username string) ([]domain.WorkoutSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.sessions[username]
	out := make([]domain.WorkoutSession, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *workoutRepository) Delete(_ context.Context, username, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.sessions[username]
	for i, s := range stored {
		if s.ID == sessionID {
			r.sessions[username] = append(stored[:i:i], stored[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
