package models

// FoodCandidate is one item from the AI food search, ready to log.
type FoodCandidate struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Icon     string  `json:"icon"`
}
