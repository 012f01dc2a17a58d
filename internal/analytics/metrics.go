// Package analytics computes derived values (body metrics, streak,
// achievements) from the domain model. Everything in here is a pure
// function: no I/O, no caching, recomputed on every query.
package analytics

import (
	"liftlog/workout-app/internal/domain"
)

// BMICategory labels, ordered by ascending threshold.
const (
	CategoryThin           = "Thin"
	CategoryNormal         = "Normal"
	CategoryOverweight     = "Overweight"
	CategoryObese          = "Obese"
	CategoryExtremelyObese = "Extremely Obese"
)

// BMI computes body mass index from weight in kg and height in cm.
// Returns 0 when either input is zero/unset; never divides by zero.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// BMICategory maps a BMI value to its display category. A zero BMI has no
// category (caller skips the categorization display).
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return CategoryThin
	case bmi < 23:
		return CategoryNormal
	case bmi < 25:
		return CategoryOverweight
	case bmi < 30:
		return CategoryObese
	default:
		return CategoryExtremelyObese
	}
}

// BMR computes basal metabolic rate using the Mifflin-St Jeor equation.
// Returns 0 when any of weight, height or age is zero/unset.
func BMR(weightKg, heightCm, ageYears float64, gender domain.Gender) float64 {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0
	}
	base := 10*weightKg + 6.25*heightCm - 5*ageYears
	if gender == domain.GenderFemale {
		return base - 161
	}
	return base + 5
}

// activityMultipliers per activity level; unknown levels fall back to
// sedentary.
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:  1.2,
	domain.ActivityLight:      1.375,
	domain.ActivityModerate:   1.55,
	domain.ActivityActive:     1.725,
	domain.ActivityVeryActive: 1.9,
}

// TDEE computes total daily energy expenditure from a BMR value and an
// activity level.
func TDEE(bmr float64, level domain.ActivityLevel) float64 {
	if bmr <= 0 {
		return 0
	}
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = 1.2
	}
	return bmr * mult
}
