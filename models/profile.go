package models

// MacroTargets mirrors the four daily targets as the client sees them.
type MacroTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Profile is the user-facing profile document: bio fields used to derive
// macro suggestions plus the current targets.
type Profile struct {
	FullName  string       `json:"full_name"`
	Gender    string       `json:"gender"`
	Age       int          `json:"age"`
	Height    float64      `json:"height"`
	Weight    float64      `json:"weight"`
	Activity  string       `json:"activity"`
	Goal      string       `json:"goal"`
	Macros    MacroTargets `json:"macros"`
	Onboarded bool         `json:"onboarded"`
}
