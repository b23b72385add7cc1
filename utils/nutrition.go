package utils

import (
	"errors"
	"math"
)

// activityFactors scales BMR to total daily energy expenditure.
var activityFactors = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"very":      1.725,
	"extra":     1.9,
}

// goalAdjustments shifts daily calories by the user's aim.
var goalAdjustments = map[string]float64{
	"cut":      -500,
	"maintain": 0,
	"bulk":     300,
}

// MacroSuggestion is a computed set of daily targets.
type MacroSuggestion struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// CalculateMacros derives suggested daily targets from body stats using
// the Mifflin-St Jeor equation. Weight in kg, height in cm. Protein is
// 2.2 g/kg, fat 25% of calories, carbs the remainder.
func CalculateMacros(weightKg, heightCm float64, age int, gender, activity, goal string) (MacroSuggestion, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return MacroSuggestion{}, errors.New("weight, height and age must be positive")
	}
	factor, ok := activityFactors[activity]
	if !ok {
		return MacroSuggestion{}, errors.New("unknown activity level")
	}
	adjustment, ok := goalAdjustments[goal]
	if !ok {
		return MacroSuggestion{}, errors.New("unknown goal")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	targetCalories := math.Round(bmr*factor + adjustment)

	proteinGrams := math.Round(weightKg * 2.2)
	fatGrams := math.Round(targetCalories * 0.25 / 9)
	remaining := targetCalories - proteinGrams*4 - fatGrams*9
	carbGrams := math.Max(0, math.Round(remaining/4))

	return MacroSuggestion{
		Calories: targetCalories,
		Protein:  proteinGrams,
		Carbs:    carbGrams,
		Fat:      fatGrams,
	}, nil
}
