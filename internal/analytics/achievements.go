package analytics

import (
	"liftlog/workout-app/internal/domain"
)

// Catalog is the built-in achievement set. Conditions are tagged variants
// evaluated by Evaluate; nothing here is ever persisted.
var Catalog = []domain.Achievement{
	{
		ID:          "rookie",
		Title:       "Rookie",
		Description: "Complete your first workout",
		Icon:        domain.IconMedal,
		TargetLabel: "1 workout",
		Condition:   domain.Condition{Kind: domain.ConditionCount, Target: 1},
	},
	{
		ID:          "regular",
		Title:       "Regular",
		Description: "Complete 10 workouts",
		Icon:        domain.IconStar,
		TargetLabel: "10 workouts",
		Condition:   domain.Condition{Kind: domain.ConditionCount, Target: 10},
	},
	{
		ID:          "half_century",
		Title:       "Half Century",
		Description: "Complete 50 workouts",
		Icon:        domain.IconTrophy,
		TargetLabel: "50 workouts",
		Condition:   domain.Condition{Kind: domain.ConditionCount, Target: 50},
	},
	{
		ID:          "on_a_roll",
		Title:       "On a Roll",
		Description: "Train 3 days in a row",
		Icon:        domain.IconFlame,
		TargetLabel: "3-day streak",
		Condition:   domain.Condition{Kind: domain.ConditionStreak, Target: 3},
	},
	{
		ID:          "week_warrior",
		Title:       "Week Warrior",
		Description: "Train 7 days in a row",
		Icon:        domain.IconFlame,
		TargetLabel: "7-day streak",
		Condition:   domain.Condition{Kind: domain.ConditionStreak, Target: 7},
	},
	{
		ID:          "iron_month",
		Title:       "Iron Month",
		Description: "Train 30 days in a row",
		Icon:        domain.IconCrown,
		TargetLabel: "30-day streak",
		Condition:   domain.Condition{Kind: domain.ConditionStreak, Target: 30},
	},
}

// Evaluation is one achievement with its freshly computed state.
type Evaluation struct {
	domain.Achievement
	Unlocked bool `json:"unlocked"`
	Progress int  `json:"progress"` // Percentage in [0,100]
}

// Evaluate dispatches an achievement condition against the completed-session
// count and the current streak. Progress is clamped to [0,100].
func Evaluate(a domain.Achievement, sessionCount, streak int) (bool, int) {
	current := 0
	switch a.Condition.Kind {
	case domain.ConditionStreak:
		current = streak
	case domain.ConditionCount:
		current = sessionCount
	}
	if a.Condition.Target <= 0 {
		return false, 0
	}
	progress := current * 100 / a.Condition.Target
	if progress > 100 {
		progress = 100
	}
	if progress < 0 {
		progress = 0
	}
	return current >= a.Condition.Target, progress
}

// EvaluateAll evaluates the whole catalog against the given history and
// streak value.
func EvaluateAll(history []domain.WorkoutSession, streak int) []Evaluation {
	evals := make([]Evaluation, len(Catalog))
	for i, a := range Catalog {
		unlocked, progress := Evaluate(a, len(history), streak)
		evals[i] = Evaluation{Achievement: a, Unlocked: unlocked, Progress: progress}
	}
	return evals
}
