package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutType classifies a session.
type WorkoutType string

const (
	WorkoutPush   WorkoutType = "Push"
	WorkoutPull   WorkoutType = "Pull"
	WorkoutLegs   WorkoutType = "Legs"
	WorkoutCustom WorkoutType = "Custom"
)

// MuscleGroup classifies an exercise.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "Chest"
	MuscleBack      MuscleGroup = "Back"
	MuscleLegs      MuscleGroup = "Legs"
	MuscleShoulders MuscleGroup = "Shoulders"
	MuscleArms      MuscleGroup = "Arms"
	MuscleCore      MuscleGroup = "Core"
)

// SessionStatus tracks the one-way active -> completed transition.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
)

// Set is one logged set of an exercise. Reps and weight are stored as text
// so an untouched set stays visibly empty. SetNumber matches the position at
// creation time and is never renumbered when earlier sets are deleted.
type Set struct {
	ID        string `bson:"id" json:"id"`
	SetNumber int    `bson:"setNumber" json:"setNumber"`
	Reps      string `bson:"reps" json:"reps"`
	Weight    string `bson:"weight" json:"weight"` // kg
	Completed bool   `bson:"completed" json:"completed"`
}

// WeightValue returns the set weight as a number, 0 when unset.
func (s Set) WeightValue() float64 { return ParseNumber(s.Weight) }

// CountsForAnalytics reports whether this set contributes to derived values.
// Only completed sets with a positive weight count.
func (s Set) CountsForAnalytics() bool {
	return s.Completed && s.WeightValue() > 0
}

// Exercise is one exercise within a session. The order of Sets is stable and
// defines set numbering.
type Exercise struct {
	ID          string      `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	MuscleGroup MuscleGroup `bson:"muscleGroup" json:"muscleGroup"`
	TargetSets  int         `bson:"targetSets" json:"targetSets"`
	TargetReps  string      `bson:"targetReps" json:"targetReps"` // Free-text range, e.g. "8-12"
	Sets        []Set       `bson:"sets" json:"sets"`
	Note        string      `bson:"note,omitempty" json:"note,omitempty"`
}

// WorkoutSession is one workout occurrence from start to completion.
// While active it is mutated exclusively by the session editor; once
// completed it is frozen and appended to history.
type WorkoutSession struct {
	DocID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `bson:"id" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Type      WorkoutType        `bson:"type" json:"type"`
	Title     string             `bson:"title" json:"title"`
	Date      time.Time          `bson:"date" json:"date"`           // Creation timestamp
	StartTime int64              `bson:"startTime" json:"startTime"` // Epoch millis
	EndTime   int64              `bson:"endTime" json:"endTime"`     // Epoch millis, 0 until completed
	Exercises []Exercise         `bson:"exercises" json:"exercises"`
	Status    SessionStatus      `bson:"status" json:"status"`
}

// DurationMillis returns the session duration and whether both timestamps
// are present. Sessions missing either timestamp carry no duration.
func (w *WorkoutSession) DurationMillis() (int64, bool) {
	if w.StartTime <= 0 || w.EndTime <= 0 || w.EndTime < w.StartTime {
		return 0, false
	}
	return w.EndTime - w.StartTime, true
}
