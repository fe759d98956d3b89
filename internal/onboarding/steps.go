package onboarding

// Step identifies a wizard step.
type Step int

const (
	StepBasics Step = iota + 1
	StepGoalsIncome
	StepLanguageExperience
	StepAccessibility
)

// TotalSteps is the number of wizard steps.
const TotalSteps = 4

var stepTitles = map[Step]string{
	StepBasics:             "Let's Get to Know You",
	StepGoalsIncome:        "What Are Your Financial Goals?",
	StepLanguageExperience: "Language & Experience",
	StepAccessibility:      "Accessibility Preferences",
}

// stepFields lists the Form fields each step validates before advancing.
// The accessibility step has no required fields.
var stepFields = map[Step][]string{
	StepBasics:             {"Name", "AgeGroup", "Country"},
	StepGoalsIncome:        {"Goals", "Income"},
	StepLanguageExperience: {"Experience"},
	StepAccessibility:      {},
}

// Title returns the display title for a step.
func (s Step) Title() string { return stepTitles[s] }

// GoalCatalog is the fixed set of selectable goal labels.
func GoalCatalog() []string {
	return []string{
		"Build Emergency Fund",
		"Pay Off Debt",
		"Save for Retirement",
		"Buy a Home",
		"Start Investing",
		"Improve Credit Score",
		"Create a Budget",
		"Start a Business",
	}
}

// AgeGroups are the selectable age ranges.
func AgeGroups() []string {
	return []string{"18-25", "26-35", "36-45", "46-55", "56-65", "65+"}
}

// Languages are the supported language codes.
func Languages() []string {
	return []string{"en", "es", "fr", "de", "zh", "hi", "ar"}
}

// AccessibilityOptions are the selectable accessibility preferences.
func AccessibilityOptions() []string {
	return []string{
		"Large text support",
		"High contrast mode",
		"Screen reader support",
		"Simplified navigation",
		"Audio descriptions",
		"Keyboard navigation",
	}
}
