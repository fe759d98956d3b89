package model

import "time"

// GoalCategory determines progress polarity: debt goals measure reduction
// toward the target, everything else measures accumulation.
type GoalCategory string

const (
	GoalSavings   GoalCategory = "savings"
	GoalDebt      GoalCategory = "debt"
	GoalInvesting GoalCategory = "investing"
	GoalOther     GoalCategory = "other"
)

// FinancialGoal is a tracked financial target. Baseline amounts are derived
// once from the locale presentation tables when the goal set is created.
type FinancialGoal struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Category GoalCategory `json:"category"`
	Current  float64      `json:"current"`
	Target   float64      `json:"target"`
	Deadline *time.Time   `json:"deadline,omitempty"`
}
