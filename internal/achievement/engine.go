// Package achievement drives the gamification state machine. Achievements
// move from locked to earned exactly once; points accumulate on the profile
// and the level is always recomputed from the point total, never set
// directly.
package achievement

import (
	"time"

	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

// Semantic trigger events emitted by the session owner.
const (
	EventBudgetQuestion    = "budget-question-asked"
	EventInvestingQuestion = "investing-question-asked"
	EventDebtPlanCreated   = "debt-plan-created"
	EventEmergencyGoalSet  = "emergency-goal-set"
)

// Achievement ids.
const (
	FirstSteps         = "first-steps"
	BudgetMaster       = "budget-master"
	InvestmentExplorer = "investment-explorer"
	DebtDestroyer      = "debt-destroyer"
	EmergencyFundHero  = "emergency-fund-hero"
)

// pointsPerLevel is the flat point cost of each level past the first.
const pointsPerLevel = 250

// eventAchievements maps a trigger event to the achievement it unlocks.
var eventAchievements = map[string]string{
	EventBudgetQuestion:    BudgetMaster,
	EventInvestingQuestion: InvestmentExplorer,
	EventDebtPlanCreated:   DebtDestroyer,
	EventEmergencyGoalSet:  EmergencyFundHero,
}

// Unlock is the notification payload returned when an achievement is earned.
type Unlock struct {
	AchievementID string
	Title         string
	Description   string
	Points        int
}

// NewCatalog returns the fixed achievement catalog. First Steps is earned at
// onboarding completion; its points are the profile's starting allotment.
func NewCatalog() []model.Achievement {
	return []model.Achievement{
		{ID: FirstSteps, Title: "First Steps", Description: "Complete your profile setup", Points: 50, Earned: true},
		{ID: BudgetMaster, Title: "Budget Master", Description: "Ask your first budget question", Points: 100},
		{ID: InvestmentExplorer, Title: "Investment Explorer", Description: "Learn about investment basics", Points: 150},
		{ID: DebtDestroyer, Title: "Debt Destroyer", Description: "Create a debt payment plan", Points: 200},
		{ID: EmergencyFundHero, Title: "Emergency Fund Hero", Description: "Set up your emergency fund goal", Points: 175},
	}
}

// Level is the pure level function over a point total.
func Level(points int) int {
	if points < 0 {
		points = 0
	}
	return 1 + points/pointsPerLevel
}

// Apply processes a semantic event against an immutable profile snapshot and
// catalog, returning updated copies and at most one unlock notification.
// Unknown events and replays of already-earned achievements are no-ops, so
// replaying an event never double-counts points.
func Apply(event string, profile model.UserProfile, catalog []model.Achievement) (model.UserProfile, []model.Achievement, *Unlock) {
	id, ok := eventAchievements[event]
	if !ok {
		return profile, catalog, nil
	}

	updated := append([]model.Achievement(nil), catalog...)
	for i, a := range updated {
		if a.ID != id {
			continue
		}
		if a.Earned {
			return profile, catalog, nil
		}
		updated[i].Earned = true
		profile.Points += a.Points
		profile.Level = Level(profile.Points)
		profile.UpdatedAt = time.Now()
		return profile, updated, &Unlock{
			AchievementID: a.ID,
			Title:         a.Title,
			Description:   a.Description,
			Points:        a.Points,
		}
	}
	return profile, catalog, nil
}
