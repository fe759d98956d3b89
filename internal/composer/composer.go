// Package composer turns a classified category and the user profile into
// the assistant's reply: body text, a confidence score, and 2-3 suggested
// follow-up actions. All content is static per category; personalization is
// a suffix keyed on the profile's experience level.
package composer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rkathal/wise-wallet-buddy/internal/classifier"
	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

const (
	beginnerSuffix = " Since you're new to this, I'll keep my explanations simple and provide step-by-step guidance."
	advancedSuffix = " I can see you have experience, so I can dive deeper into advanced strategies if you'd like."
)

type template struct {
	body    string
	actions []string
}

var templates = map[model.Category]template{
	model.CategoryBudgeting: {
		body: "Great question about budgeting! For someone at your %s level, I recommend starting with the 50/30/20 rule: " +
			"50%% for needs, 30%% for wants, and 20%% for savings. Would you like me to help you create a personalized budget based on your income?",
		actions: []string{"Create Budget", "Track Expenses", "Set Alerts"},
	},
	model.CategoryInvesting: {
		body: "Investing is one of your goals! Given your experience level, I'd suggest starting with low-cost index funds or ETFs. " +
			"They're diversified and less risky for beginners. The key is to start early and be consistent. Would you like to learn about different investment types?",
		actions: []string{"Learn Investment Types", "Risk Assessment", "Portfolio Builder"},
	},
	model.CategoryDebt: {
		body: "Debt management is crucial for financial health. I recommend the debt avalanche method: pay minimums on all debts, " +
			"then put extra money toward the highest interest rate debt first. This saves you the most money long-term. What types of debt are you dealing with?",
		actions: []string{"Debt Calculator", "Payment Plan", "Debt Consolidation"},
	},
	model.CategorySavings: {
		body: "Building an emergency fund is excellent! Aim for 3-6 months of expenses. Start small - even $500 can help with minor emergencies. " +
			"Set up automatic transfers to make saving easier. Based on your goals, this seems like a priority. Should we calculate your target amount?",
		actions: []string{"Calculate Target", "Auto-Save Setup", "High-Yield Accounts"},
	},
	model.CategoryCredit: {
		body: "Credit scores are important for financial opportunities! Pay bills on time, keep credit utilization below 30%, " +
			"and don't close old accounts. Check your credit report annually for errors. Improving credit takes time but is worth it. Want to know your current credit factors?",
		actions: []string{"Credit Report", "Score Tracker", "Improvement Plan"},
	},
	model.CategoryClarification: {
		body: "I understand you're asking about %q. As your financial coach, I'm here to help with budgeting, saving, investing, " +
			"debt management, and credit improvement. Could you be more specific about which area you'd like to focus on?",
		actions: []string{"Budget Help", "Investment Guide", "Debt Planning"},
	},
}

// Compose builds the assistant reply for a classified category. It never
// fails: every category has a template and clarification is the designed
// fallback for unrecognized input.
func Compose(category model.Category, userText string, profile model.UserProfile) model.Message {
	tpl, ok := templates[category]
	if !ok {
		tpl = templates[model.CategoryClarification]
		category = model.CategoryClarification
	}

	body := tpl.body
	switch category {
	case model.CategoryBudgeting:
		body = fmt.Sprintf(body, profile.Experience)
	case model.CategoryClarification:
		body = fmt.Sprintf(body, userText)
	}

	switch profile.Experience {
	case model.ExperienceBeginner:
		body += beginnerSuffix
	case model.ExperienceAdvanced:
		body += advancedSuffix
	}

	return model.Message{
		ID:         uuid.NewString(),
		Content:    body,
		Sender:     model.SenderAssistant,
		Timestamp:  time.Now(),
		Category:   category,
		Confidence: classifier.Confidence,
		Actions:    append([]string(nil), tpl.actions...),
	}
}

// Greeting builds the opening message of a session, personalized with the
// user's name and their first two selected goals.
func Greeting(profile model.UserProfile) model.Message {
	goals := profile.Goals
	shown := goals
	more := ""
	if len(goals) > 2 {
		shown = goals[:2]
		more = " and more"
	}
	content := fmt.Sprintf(
		"Hello %s! 👋 I'm your AI Financial Coach. I'm here to help you achieve your financial goals. "+
			"Based on your profile, I see you're interested in: %s%s. What would you like to discuss today?",
		profile.Name, strings.Join(shown, ", "), more)

	return model.Message{
		ID:         uuid.NewString(),
		Content:    content,
		Sender:     model.SenderAssistant,
		Timestamp:  time.Now(),
		Category:   model.CategoryGreeting,
		Confidence: 1.0,
	}
}

// Actions returns the suggested action labels for a category.
func Actions(category model.Category) []string {
	tpl, ok := templates[category]
	if !ok {
		return nil
	}
	return append([]string(nil), tpl.actions...)
}
