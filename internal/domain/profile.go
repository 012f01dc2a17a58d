package domain

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender of a user, used by the BMR formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel drives the TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// UserProfile represents an account in the system. The username is the sole
// external identity key and is immutable after creation. Age, weight and
// height are stored as text so the empty (never filled in) state survives
// round trips; ParseNumber turns them into values for analytics.
type UserProfile struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Username      string             `bson:"username" json:"username"` // Unique handle
	DisplayName   string             `bson:"displayName" json:"displayName"`
	Age           string             `bson:"age" json:"age"`
	Weight        string             `bson:"weight" json:"weight"` // kg
	Height        string             `bson:"height" json:"height"` // cm
	AvatarURL     string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Gender        Gender             `bson:"gender" json:"gender"`
	ActivityLevel ActivityLevel      `bson:"activityLevel" json:"activityLevel"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ParseNumber converts a user-entered numeric field to a float64.
// Empty or malformed input yields 0, never an error; zero means "unset"
// throughout the analytics engine.
func ParseNumber(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// WeightKg returns the profile weight as a number, 0 when unset.
func (p *UserProfile) WeightKg() float64 { return ParseNumber(p.Weight) }

// HeightCm returns the profile height as a number, 0 when unset.
func (p *UserProfile) HeightCm() float64 { return ParseNumber(p.Height) }

// AgeYears returns the profile age as a number, 0 when unset.
func (p *UserProfile) AgeYears() float64 { return ParseNumber(p.Age) }
