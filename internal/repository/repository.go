package repository

import (
	"context"

	"liftlog/workout-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository defines the persistence contract for user profiles.
// Profiles are keyed by their unique username.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error)
	// UpdateFields performs a field-level update on the named profile.
	// Keys are the bson/json field names (displayName, age, weight, ...).
	UpdateFields(ctx context.Context, username string, fields map[string]any) error
}

// WorkoutRepository defines the persistence contract for completed workout
// sessions. GetAllByUser returns sessions newest-first; history ownership is
// scoped entirely to one username, with no cross-user visibility.
type WorkoutRepository interface {
	Insert(ctx context.Context, session *domain.WorkoutSession) error
	GetAllByUser(ctx context.Context, username string) ([]domain.WorkoutSession, error)
	Delete(ctx context.Context, username, sessionID string) error
}
