package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftlog/workout-app/internal/domain"
)

func findEvaluation(t *testing.T, evals []Evaluation, id string) Evaluation {
	t.Helper()
	for _, e := range evals {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("achievement %q not in catalog", id)
	return Evaluation{}
}

func TestRookieUnlocksOnFirstSession(t *testing.T) {
	now := time.Now()

	empty := EvaluateAll(nil, 0)
	rookie := findEvaluation(t, empty, "rookie")
	assert.False(t, rookie.Unlocked)
	assert.Zero(t, rookie.Progress)

	one := EvaluateAll([]domain.WorkoutSession{{ID: "a", Date: now}}, 1)
	rookie = findEvaluation(t, one, "rookie")
	assert.True(t, rookie.Unlocked)
	assert.Equal(t, 100, rookie.Progress)
}

func TestCountProgressIsClamped(t *testing.T) {
	a := domain.Achievement{
		ID:        "ten",
		Condition: domain.Condition{Kind: domain.ConditionCount, Target: 10},
	}

	unlocked, progress := Evaluate(a, 4, 0)
	assert.False(t, unlocked)
	assert.Equal(t, 40, progress)

	unlocked, progress = Evaluate(a, 25, 0)
	assert.True(t, unlocked)
	assert.Equal(t, 100, progress)
}

func TestStreakCondition(t *testing.T) {
	a := domain.Achievement{
		ID:        "streak7",
		Condition: domain.Condition{Kind: domain.ConditionStreak, Target: 7},
	}

	unlocked, progress := Evaluate(a, 100, 3) // session count must not leak in
	assert.False(t, unlocked)
	assert.Equal(t, 42, progress)

	unlocked, progress = Evaluate(a, 0, 7)
	assert.True(t, unlocked)
	assert.Equal(t, 100, progress)
}

func TestEvaluationIsIdempotent(t *testing.T) {
	history := []domain.WorkoutSession{{ID: "a"}, {ID: "b"}}

	first := EvaluateAll(history, 2)
	second := EvaluateAll(history, 2)
	require.Equal(t, first, second)
}
