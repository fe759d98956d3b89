package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/rkathal/wise-wallet-buddy/internal/locale"
	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

func deadline(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// DefaultSet builds the starter goal set for a currency, with amounts taken
// from the locale baseline tables. The debt goal deliberately targets 0:
// progress grows as the balance is paid down.
func DefaultSet(currency string) []model.FinancialGoal {
	b := locale.Resolve(currency).Baselines
	return []model.FinancialGoal{
		{
			ID:       uuid.NewString(),
			Title:    "Emergency Fund",
			Category: model.GoalSavings,
			Current:  b.EmergencyCurrent,
			Target:   b.EmergencyTarget,
			Deadline: deadline(2024, time.December, 31),
		},
		{
			ID:       uuid.NewString(),
			Title:    "Credit Card Debt",
			Category: model.GoalDebt,
			Current:  b.DebtCurrent,
			Target:   0,
			Deadline: deadline(2024, time.August, 15),
		},
		{
			ID:       uuid.NewString(),
			Title:    "Investment Portfolio",
			Category: model.GoalInvesting,
			Current:  b.InvestmentCurrent,
			Target:   b.InvestmentTarget,
			Deadline: deadline(2025, time.June, 30),
		},
	}
}
