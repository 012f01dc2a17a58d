package session

import (
	"github.com/google/uuid"

	"liftlog/workout-app/internal/domain"
)

const defaultSetCount = 3

// templateExercise is one entry of a routine template. Templates hold no
// ids; fresh ids are assigned when a session is started so the shared
// template can never be mutated through an active session.
type templateExercise struct {
	name        string
	muscleGroup domain.MuscleGroup
	targetSets  int
	targetReps  string
}

var routineTemplates = map[domain.WorkoutType][]templateExercise{
	domain.WorkoutPush: {
		{"Bench Press", domain.MuscleChest, 4, "6-10"},
		{"Incline Dumbbell Press", domain.MuscleChest, 3, "8-12"},
		{"Overhead Press", domain.MuscleShoulders, 3, "6-10"},
		{"Lateral Raise", domain.MuscleShoulders, 3, "12-15"},
		{"Triceps Pushdown", domain.MuscleArms, 3, "10-15"},
	},
	domain.WorkoutPull: {
		{"Deadlift", domain.MuscleBack, 3, "3-6"},
		{"Pull Up", domain.MuscleBack, 3, "6-10"},
		{"Barbell Row", domain.MuscleBack, 3, "8-12"},
		{"Face Pull", domain.MuscleShoulders, 3, "12-15"},
		{"Barbell Curl", domain.MuscleArms, 3, "8-12"},
	},
	domain.WorkoutLegs: {
		{"Squat", domain.MuscleLegs, 4, "5-8"},
		{"Romanian Deadlift", domain.MuscleLegs, 3, "8-12"},
		{"Leg Press", domain.MuscleLegs, 3, "10-12"},
		{"Leg Curl", domain.MuscleLegs, 3, "10-15"},
		{"Calf Raise", domain.MuscleLegs, 4, "12-20"},
	},
}

// suggestedExercises is the quick-add catalog. The suggestion list carries
// no muscle-group metadata, so quick-added exercises default to Chest.
var suggestedExercises = []string{
	"Bench Press",
	"Incline Dumbbell Press",
	"Overhead Press",
	"Lateral Raise",
	"Triceps Pushdown",
	"Deadlift",
	"Pull Up",
	"Barbell Row",
	"Face Pull",
	"Barbell Curl",
	"Squat",
	"Romanian Deadlift",
	"Leg Press",
	"Leg Curl",
	"Calf Raise",
	"Dumbbell Fly",
	"Hammer Curl",
	"Plank",
	"Cable Crunch",
}

// SuggestedExercises returns the quick-add exercise name catalog.
func SuggestedExercises() []string {
	out := make([]string, len(suggestedExercises))
	copy(out, suggestedExercises)
	return out
}

// newEmptySets builds n blank sets numbered 1..n.
func newEmptySets(n int) []domain.Set {
	sets := make([]domain.Set, n)
	for i := range sets {
		sets[i] = domain.Set{
			ID:        uuid.NewString(),
			SetNumber: i + 1,
		}
	}
	return sets
}

// exercisesFor instantiates the template for a workout type with fresh ids
// and blank sets. Custom workouts seed exactly one placeholder exercise.
func exercisesFor(t domain.WorkoutType) []domain.Exercise {
	tmpl, ok := routineTemplates[t]
	if !ok {
		return []domain.Exercise{{
			ID:          uuid.NewString(),
			Name:        "Exercise 1",
			MuscleGroup: domain.MuscleChest,
			TargetSets:  defaultSetCount,
			TargetReps:  "8-12",
			Sets:        newEmptySets(defaultSetCount),
		}}
	}

	exercises := make([]domain.Exercise, len(tmpl))
	for i, te := range tmpl {
		exercises[i] = domain.Exercise{
			ID:          uuid.NewString(),
			Name:        te.name,
			MuscleGroup: te.muscleGroup,
			TargetSets:  te.targetSets,
			TargetReps:  te.targetReps,
			Sets:        newEmptySets(defaultSetCount),
		}
	}
	return exercises
}
