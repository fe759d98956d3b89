package model

import "time"

// ExperienceLevel describes how comfortable the user is with personal finance.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// UserProfile holds everything the coach knows about a user. It is produced
// by the onboarding wizard; afterwards only the gamification counters
// (Points, Level, Streak) change, and only through the achievement engine.
type UserProfile struct {
	Name          string          `json:"name"`
	AgeGroup      string          `json:"age_group"`
	Country       string          `json:"country"`
	Currency      string          `json:"currency"`
	Language      string          `json:"language"`
	Income        string          `json:"income"`
	Goals         []string        `json:"goals"`
	Experience    ExperienceLevel `json:"experience"`
	Accessibility []string        `json:"accessibility"`
	Points        int             `json:"points"`
	Level         int             `json:"level"`
	Streak        int             `json:"streak"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// HasGoal reports whether the user selected the given goal label during
// onboarding.
func (p *UserProfile) HasGoal(label string) bool {
	for _, g := range p.Goals {
		if g == label {
			return true
		}
	}
	return false
}
