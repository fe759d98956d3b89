// Package render formats engine output as plain text for the CLI host.
package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rkathal/wise-wallet-buddy/internal/goal"
	"github.com/rkathal/wise-wallet-buddy/internal/locale"
	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

// Amount formats a goal amount with the currency symbol.
func Amount(symbol string, v float64) string {
	return symbol + humanize.Commaf(v)
}

// GoalLine renders one goal's progress line: debt goals show the remaining
// balance, accumulation goals show "current of target". The percentage is
// clamped to [0, 100].
func GoalLine(g model.FinancialGoal, symbol string) string {
	var amounts string
	if g.Category == model.GoalDebt {
		amounts = fmt.Sprintf("%s remaining", Amount(symbol, g.Current))
	} else {
		amounts = fmt.Sprintf("%s of %s", Amount(symbol, g.Current), Amount(symbol, g.Target))
	}
	return fmt.Sprintf("%s: %s (%d%%)", g.Title, amounts, goal.DisplayPercent(g))
}

// Dashboard renders the profile overview with goals and achievements, the
// text equivalent of the app's dashboard screen.
func Dashboard(profile model.UserProfile, goals []model.FinancialGoal, achievements []model.Achievement) string {
	symbol := locale.Symbol(profile.Currency)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 %s | Level %d | %d pts | 🔥 %d days\n\n",
		profile.Name, profile.Level, profile.Points, profile.Streak))

	b.WriteString("🎯 Financial Goals:\n")
	for _, g := range goals {
		b.WriteString("  " + GoalLine(g, symbol) + "\n")
	}

	var earned, next []model.Achievement
	for _, a := range achievements {
		if a.Earned {
			earned = append(earned, a)
		} else {
			next = append(next, a)
		}
	}

	b.WriteString(fmt.Sprintf("\n🏆 Achievements (%d/%d):\n", len(earned), len(achievements)))
	for _, a := range earned {
		b.WriteString(fmt.Sprintf("  ✓ %s (+%d) — %s\n", a.Title, a.Points, a.Description))
	}
	if len(next) > 0 {
		b.WriteString("\n⭐ Next up:\n")
		for i, a := range next {
			if i == 3 {
				break
			}
			b.WriteString(fmt.Sprintf("  • %s (%d pts) — %s\n", a.Title, a.Points, a.Description))
		}
	}
	return b.String()
}

// Unlock renders an achievement-unlocked toast.
func Unlock(title, description string, points int) string {
	return fmt.Sprintf("🏆 Achievement Unlocked! %s (+%d pts)\n   %s", title, points, description)
}

// Reply renders an assistant message with its suggested actions.
func Reply(msg model.Message) string {
	var b strings.Builder
	b.WriteString(msg.Content)
	if len(msg.Actions) > 0 {
		b.WriteString("\n\nSuggested actions:\n")
		for i, a := range msg.Actions {
			b.WriteString(fmt.Sprintf("  [%d] %s\n", i+1, a))
		}
	}
	return b.String()
}
