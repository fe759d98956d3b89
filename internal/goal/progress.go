// Package goal computes progress toward financial goals. Polarity depends
// on the goal category: debt goals measure how far the balance has shrunk
// toward the target, all other goals measure accumulation toward it.
package goal

import (
	"errors"

	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

// ErrZeroTargetDebt marks a debt goal whose target is 0 while a balance
// remains: the percentage is undefined by direct division and callers must
// show the remaining balance instead of a number.
var ErrZeroTargetDebt = errors.New("zero-target debt goal with remaining balance")

// ErrZeroTarget marks a non-debt goal constructed with a zero target, which
// no valid goal set produces.
var ErrZeroTarget = errors.New("goal target is zero")

// Progress returns the raw completion percentage for a goal. The result is
// not clamped; display layers clamp to [0, 100]. A debt goal with target 0
// is fully paid (100) once the balance reaches 0, and returns
// ErrZeroTargetDebt while a balance remains, never NaN or Inf.
func Progress(g model.FinancialGoal) (float64, error) {
	if g.Category == model.GoalDebt {
		if g.Target == 0 {
			if g.Current == 0 {
				return 100, nil
			}
			return 0, ErrZeroTargetDebt
		}
		return (g.Target - g.Current) / g.Target * 100, nil
	}
	if g.Target == 0 {
		return 0, ErrZeroTarget
	}
	return g.Current / g.Target * 100, nil
}

// DisplayPercent returns the clamped whole-number percentage for display.
// Undefined progress renders as 0; the caller pairs it with the remaining
// balance text from the render layer.
func DisplayPercent(g model.FinancialGoal) int {
	pct, err := Progress(g)
	if err != nil {
		return 0
	}
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct + 0.5)
}
