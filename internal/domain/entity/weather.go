package entity

// Weather is the current conditions at a destination. When Error is set the
// other fields are empty.
type Weather struct {
	Temp        float64 `json:"temp"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Error       string  `json:"error,omitempty"`
}
