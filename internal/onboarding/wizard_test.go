package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

func fillBasics(w *Wizard) {
	w.SetName("Aiko")
	w.SetAgeGroup("26-35")
	w.SetCountry("japan")
}

func TestAdvance_BlockedWithoutName(t *testing.T) {
	w := New()
	w.SetAgeGroup("26-35")
	w.SetCountry("us")

	err := w.Advance()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StepBasics, w.Step(), "wizard stays on the current step")
}

func TestAdvance_StepOneComplete(t *testing.T) {
	w := New()
	fillBasics(w)
	require.NoError(t, w.Advance())
	assert.Equal(t, StepGoalsIncome, w.Step())
}

func TestCountryChangeRederivesCurrency(t *testing.T) {
	w := New()
	assert.Equal(t, "USD", w.Form().Currency)

	w.SetCountry("japan")
	assert.Equal(t, "JPY", w.Form().Currency)

	brackets := w.IncomeBrackets()
	require.NotEmpty(t, brackets)
	assert.Equal(t, "Under ¥3,000,000", brackets[0].Label)

	// Changing the country again regenerates the bracket labels.
	w.SetCountry("uk")
	assert.Equal(t, "GBP", w.Form().Currency)
	assert.Equal(t, "Under £20,000", w.IncomeBrackets()[0].Label)
}

func TestAdvance_GoalsAndIncomeRequired(t *testing.T) {
	w := New()
	fillBasics(w)
	require.NoError(t, w.Advance())

	err := w.Advance()
	assert.ErrorIs(t, err, ErrValidation, "no goals, no income")

	w.ToggleGoal("Create a Budget")
	err = w.Advance()
	assert.ErrorIs(t, err, ErrValidation, "income still missing")

	w.SetIncome("under-3000000")
	require.NoError(t, w.Advance())
	assert.Equal(t, StepLanguageExperience, w.Step())
}

func TestToggleGoal(t *testing.T) {
	w := New()
	w.ToggleGoal("Pay Off Debt")
	w.ToggleGoal("Buy a Home")
	assert.Equal(t, []string{"Pay Off Debt", "Buy a Home"}, w.Form().Goals)

	w.ToggleGoal("Pay Off Debt")
	assert.Equal(t, []string{"Buy a Home"}, w.Form().Goals)
}

func TestRetreat(t *testing.T) {
	w := New()
	w.Retreat()
	assert.Equal(t, StepBasics, w.Step(), "no-op on the first step")

	fillBasics(w)
	require.NoError(t, w.Advance())
	w.Retreat()
	assert.Equal(t, StepBasics, w.Step())
}

func TestComplete_FullRun(t *testing.T) {
	w := New()
	fillBasics(w)
	require.NoError(t, w.Advance())

	w.ToggleGoal("Start Investing")
	w.ToggleGoal("Create a Budget")
	w.SetIncome("3000000-6000000")
	require.NoError(t, w.Advance())

	w.SetExperience(model.ExperienceBeginner)
	require.NoError(t, w.Advance())

	w.ToggleAccessibility("Large text support")
	require.NoError(t, w.Advance())
	assert.True(t, w.Finished())

	profile, err := w.Complete()
	require.NoError(t, err)

	assert.Equal(t, "Aiko", profile.Name)
	assert.Equal(t, "japan", profile.Country)
	assert.Equal(t, "JPY", profile.Currency)
	assert.Equal(t, model.ExperienceBeginner, profile.Experience)
	assert.Equal(t, []string{"Start Investing", "Create a Budget"}, profile.Goals)
	assert.Equal(t, []string{"Large text support"}, profile.Accessibility)

	// Fixed starting allotment, independent of onboarding answers.
	assert.Equal(t, 50, profile.Points)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, 1, profile.Streak)
}

func TestComplete_BeforeFinishFails(t *testing.T) {
	w := New()
	_, err := w.Complete()
	assert.ErrorIs(t, err, ErrNotFinished)
}

func TestAdvance_ExperienceRequired(t *testing.T) {
	w := New()
	fillBasics(w)
	require.NoError(t, w.Advance())
	w.ToggleGoal("Buy a Home")
	w.SetIncome("under-3000000")
	require.NoError(t, w.Advance())

	err := w.Advance()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StepLanguageExperience, w.Step())
}

func TestCatalogs(t *testing.T) {
	assert.Len(t, GoalCatalog(), 8)
	assert.Len(t, AgeGroups(), 6)
	assert.Len(t, Languages(), 7)
	assert.Len(t, AccessibilityOptions(), 6)
	assert.Equal(t, "Let's Get to Know You", StepBasics.Title())
}
