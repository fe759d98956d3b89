// Package classifier assigns a finance topic to free-text user input using
// an ordered keyword decision table. This is deliberately not a scored
// model: the first rule with any matching keyword wins, so the rule order
// is the tie-break policy when input touches several topics.
package classifier

import (
	"strings"

	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

// Confidence reported for every keyword-classified message. The only
// exception is the session greeting, which the composer emits at 1.0.
const Confidence = 0.85

type rule struct {
	category model.Category
	keywords []string
}

// rules is evaluated top to bottom; do not reorder. "debt and savings"
// classifies as debt because debt is tested before savings.
var rules = []rule{
	{model.CategoryBudgeting, []string{"budget", "spending"}},
	{model.CategoryInvesting, []string{"invest", "stock"}},
	{model.CategoryDebt, []string{"debt", "loan"}},
	{model.CategorySavings, []string{"emergency", "savings"}},
	{model.CategoryCredit, []string{"credit", "score"}},
}

// Classify maps user input to a topic category. Input that matches no rule
// returns CategoryClarification so the conversation loop always has a
// designed fallback.
func Classify(text string) model.Category {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return model.CategoryClarification
}
