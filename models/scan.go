package models

// DetectedFood is one item the vision model spotted in a meal photo.
type DetectedFood struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Portion    string  `json:"portion,omitempty"`
}

// NutritionEstimate is the structured estimate for a scanned meal.
type NutritionEstimate struct {
	CaloriesKcal float64 `json:"calories_kcal"`
	ProteinG     float64 `json:"protein_g"`
	CarbsG       float64 `json:"carbs_g"`
	FatG         float64 `json:"fat_g"`
	FiberG       float64 `json:"fiber_g"`
	SugarG       float64 `json:"sugar_g"`
	SodiumMg     float64 `json:"sodium_mg"`
}

// PlanAssessment is the qualitative verdict against the user's goals.
type PlanAssessment struct {
	IsHealthy    bool     `json:"is_healthy"`
	Notes        []string `json:"notes,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// ScanResult is the full reply of a meal-photo analysis.
type ScanResult struct {
	MealName          string             `json:"meal_name"`
	FoodsDetected     []DetectedFood     `json:"foods_detected"`
	NutritionEstimate *NutritionEstimate `json:"nutrition_estimate,omitempty"`
	PlanAssessment    *PlanAssessment    `json:"plan_assessment,omitempty"`
	ImageURL          string             `json:"image_url,omitempty"`
}
