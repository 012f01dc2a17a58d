package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"liftlog/workout-app/internal/analytics"
	"liftlog/workout-app/internal/domain"
	"liftlog/workout-app/internal/history"
	"liftlog/workout-app/internal/repository"
	"liftlog/workout-app/internal/session"
)

// --- Error Definitions ---
var (
	ErrNoActiveSession     = errors.New("no active workout session")
	ErrActiveSessionExists = errors.New("an active workout session already exists")
	ErrSessionNotFound     = errors.New("workout session not found")
)

// LastWeightResult reports the most recent weight used for an exercise.
// Found is false when no completed set with a positive weight matches the
// name anywhere in history.
type LastWeightResult struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Found    bool    `json:"found"`
}

// WorkoutService owns the active-session store and the completed-session
// history. Active sessions are in-memory only (one per user); completed
// sessions go through the workout repository.
type WorkoutService interface {
	StartSession(ctx context.Context, username string, workoutType domain.WorkoutType) (*domain.WorkoutSession, error)
	ActiveSession(ctx context.Context, username string) (*domain.WorkoutSession, error)
	UpdateSet(ctx context.Context, username, exerciseID string, set domain.Set) (*domain.WorkoutSession, error)
	RenameExercise(ctx context.Context, username, exerciseID, name string) (*domain.WorkoutSession, error)
	AddSet(ctx context.Context, username, exerciseID string) (*domain.WorkoutSession, error)
	AddExercise(ctx context.Context, username, suggestedName string) (*domain.WorkoutSession, error)
	RemoveExercise(ctx context.Context, username, exerciseID string) (*domain.WorkoutSession, error)
	CompleteSession(ctx context.Context, username string) (*domain.WorkoutSession, error)
	DiscardSession(ctx context.Context, username string) error

	History(ctx context.Context, username string, window history.Window) ([]domain.WorkoutSession, error)
	Stats(ctx context.Context, username string, window history.Window) (*history.Stats, error)
	DeleteSession(ctx context.Context, username, sessionID string) error
	LastWeight(ctx context.Context, username, exerciseName string) (*LastWeightResult, error)
	Streak(ctx context.Context, username string) (int, error)
	Achievements(ctx context.Context, username string) ([]analytics.Evaluation, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository

	mu     sync.RWMutex
	active map[string]domain.WorkoutSession // keyed by username
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		active:      make(map[string]domain.WorkoutSession),
	}
}

// StartSession begins a new active session from a routine template (or a
// blank custom one). A user has at most one active session; the existing one
// must be completed or discarded first.
func (s *workoutService) StartSession(_ context.Context, username string, workoutType domain.WorkoutType) (*domain.WorkoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.active[username]; exists {
		return nil, ErrActiveSessionExists
	}

	sess := session.Start(workoutType, username, time.Now())
	s.active[username] = sess
	return &sess, nil
}

// ActiveSession returns the user's current active session.
func (s *workoutService) ActiveSession(_ context.Context, username string) (*domain.WorkoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.active[username]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return &sess, nil
}

// edit applies a session editor transformation to the active session under
// the lock and stores the result.
func (s *workoutService) edit(username string, fn func(domain.WorkoutSession) domain.WorkoutSession) (*domain.WorkoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.active[username]
	if !ok {
		return nil, ErrNoActiveSession
	}
	sess = fn(sess)
	s.active[username] = sess
	return &sess, nil
}

func (s *workoutService) UpdateSet(_ context.Context, username, exerciseID string, set domain.Set) (*domain.WorkoutSession, error) {
	return s.edit(username, func(sess domain.WorkoutSession) domain.WorkoutSession {
		return session.UpdateSet(sess, exerciseID, set)
	})
}

func (s *workoutService) RenameExercise(_ context.Context, username, exerciseID, name string) (*domain.WorkoutSession, error) {
	return s.edit(username, func(sess domain.WorkoutSession) domain.WorkoutSession {
		return session.UpdateExerciseName(sess, exerciseID, name)
	})
}

func (s *workoutService) AddSet(_ context.Context, username, exerciseID string) (*domain.WorkoutSession, error) {
	return s.edit(username, func(sess domain.WorkoutSession) domain.WorkoutSession {
		return session.AddSet(sess, exerciseID)
	})
}

// AddExercise appends an exercise; a non-empty suggestedName quick-adds from
// the suggestion catalog, otherwise a blank placeholder is appended.
func (s *workoutService) AddExercise(_ context.Context, username, suggestedName string) (*domain.WorkoutSession, error) {
	return s.edit(username, func(sess domain.WorkoutSession) domain.WorkoutSession {
		if suggestedName != "" {
			return session.AddSuggestedExercise(sess, suggestedName)
		}
		return session.AddExercise(sess)
	})
}

func (s *workoutService) RemoveExercise(_ context.Context, username, exerciseID string) (*domain.WorkoutSession, error) {
	return s.edit(username, func(sess domain.WorkoutSession) domain.WorkoutSession {
		return session.RemoveExercise(sess, exerciseID)
	})
}

// CompleteSession freezes the active session and appends it to history. If
// persisting fails the session stays active so nothing is lost.
func (s *workoutService) CompleteSession(ctx context.Context, username string) (*domain.WorkoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.active[username]
	if !ok {
		return nil, ErrNoActiveSession
	}

	completed := session.Complete(sess, time.Now())
	if err := s.workoutRepo.Insert(ctx, &completed); err != nil {
		return nil, err
	}
	delete(s.active, username)
	return &completed, nil
}

// DiscardSession drops the active session without persisting it. The
// confirmation step happens on the client; this call is irreversible.
func (s *workoutService) DiscardSession(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.active[username]; !ok {
		return ErrNoActiveSession
	}
	delete(s.active, username)
	return nil
}

// History returns the user's completed sessions within a window, newest-first.
func (s *workoutService) History(ctx context.Context, username string, window history.Window) ([]domain.WorkoutSession, error) {
	sessions, err := s.workoutRepo.GetAllByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return history.FilterByWindow(sessions, window, time.Now()), nil
}

// Stats aggregates the windowed history for the stats screen.
func (s *workoutService) Stats(ctx context.Context, username string, window history.Window) (*history.Stats, error) {
	filtered, err := s.History(ctx, username, window)
	if err != nil {
		return nil, err
	}
	stats := history.Aggregate(filtered)
	return &stats, nil
}

// DeleteSession removes a completed session from history. The repository
// delete happens first; a failure is reported to the caller and leaves no
// local/remote divergence.
func (s *workoutService) DeleteSession(ctx context.Context, username, sessionID string) error {
	err := s.workoutRepo.Delete(ctx, username, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSessionNotFound
	}
	return err
}

// LastWeight looks up the most recent weight used for an exercise name.
func (s *workoutService) LastWeight(ctx context.Context, username, exerciseName string) (*LastWeightResult, error) {
	sessions, err := s.workoutRepo.GetAllByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	weight, found := session.LastWeightFor(sessions, exerciseName)
	return &LastWeightResult{Exercise: exerciseName, Weight: weight, Found: found}, nil
}

// Streak recomputes the consecutive-day streak from full history.
func (s *workoutService) Streak(ctx context.Context, username string) (int, error) {
	sessions, err := s.workoutRepo.GetAllByUser(ctx, username)
	if err != nil {
		return 0, err
	}
	return analytics.Streak(sessions, time.Now()), nil
}

// Achievements evaluates the full catalog fresh against current history and
// streak. Nothing is cached or persisted.
func (s *workoutService) Achievements(ctx context.Context, username string) ([]analytics.Evaluation, error) {
	sessions, err := s.workoutRepo.GetAllByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	streak := analytics.Streak(sessions, time.Now())
	return analytics.EvaluateAll(sessions, streak), nil
}
