package domain

// IconTag is the closed set of icons an achievement can display.
type IconTag string

const (
	IconMedal  IconTag = "medal"
	IconFlame  IconTag = "flame"
	IconTrophy IconTag = "trophy"
	IconStar   IconTag = "star"
	IconCrown  IconTag = "crown"
)

// ConditionKind selects which derived value an achievement condition reads.
type ConditionKind string

const (
	// ConditionCount unlocks when the completed-session count reaches Target.
	ConditionCount ConditionKind = "count"
	// ConditionStreak unlocks when the current streak reaches Target.
	ConditionStreak ConditionKind = "streak"
)

// Condition is a tagged variant instead of a stored closure so achievements
// stay serializable and trivially testable.
type Condition struct {
	Kind   ConditionKind `json:"kind"`
	Target int           `json:"target"`
}

// Achievement is a stateless derivation over (history, streak). Achievements
// are never persisted; unlock state and progress are recomputed on every
// query.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        IconTag   `json:"icon"`
	TargetLabel string    `json:"targetLabel"`
	Condition   Condition `json:"condition"`
}
