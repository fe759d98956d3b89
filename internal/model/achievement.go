package model

// Achievement is a one-time unlockable reward. Earned transitions false→true
// exactly once and never reverts.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Earned      bool   `json:"earned"`
}
