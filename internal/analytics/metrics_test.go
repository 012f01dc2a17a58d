package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"liftlog/workout-app/internal/domain"
)

func TestBMI(t *testing.T) {
	// 80 kg at 180 cm -> 24.69...
	assert.InDelta(t, 24.69, BMI(80, 180), 0.01)

	// Zero inputs yield 0, never a division by zero.
	assert.Zero(t, BMI(0, 180))
	assert.Zero(t, BMI(80, 0))
	assert.Zero(t, BMI(0, 0))
}

func TestBMIIsPure(t *testing.T) {
	first := BMI(72.5, 178)
	second := BMI(72.5, 178)
	assert.Equal(t, first, second)
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{0, ""},
		{17.0, CategoryThin},
		{18.49, CategoryThin},
		{18.5, CategoryNormal},
		{22.99, CategoryNormal},
		{23.0, CategoryOverweight},
		{24.99, CategoryOverweight},
		{25.0, CategoryObese},
		{29.99, CategoryObese},
		{30.0, CategoryExtremelyObese},
		{42.0, CategoryExtremelyObese},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BMICategory(tt.bmi), "bmi=%v", tt.bmi)
	}
}

func TestBMR(t *testing.T) {
	// Mifflin-St Jeor, male: 10*80 + 6.25*180 - 5*30 + 5 = 1780
	assert.InDelta(t, 1780, BMR(80, 180, 30, domain.GenderMale), 0.001)
	// Female: 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
	assert.InDelta(t, 1345.25, BMR(60, 165, 25, domain.GenderFemale), 0.001)

	// Any zero input yields 0.
	assert.Zero(t, BMR(0, 180, 30, domain.GenderMale))
	assert.Zero(t, BMR(80, 0, 30, domain.GenderMale))
	assert.Zero(t, BMR(80, 180, 0, domain.GenderMale))
}

func TestTDEE(t *testing.T) {
	tests := []struct {
		level domain.ActivityLevel
		want  float64
	}{
		{domain.ActivitySedentary, 1200},
		{domain.ActivityLight, 1375},
		{domain.ActivityModerate, 1550},
		{domain.ActivityActive, 1725},
		{domain.ActivityVeryActive, 1900},
		{domain.ActivityLevel("rowing-in-space"), 1200}, // unknown falls back to sedentary
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, TDEE(1000, tt.level), 0.001, "level=%s", tt.level)
	}

	assert.Zero(t, TDEE(0, domain.ActivityModerate))
}
