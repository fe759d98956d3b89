// Package onboarding collects the user profile through a fixed step
// sequence. Each step is gated by a validation predicate over the
// in-progress form; country changes recompute the currency through the
// locale resolver as an explicit transition, not a hidden side effect.
package onboarding

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rkathal/wise-wallet-buddy/internal/achievement"
	"github.com/rkathal/wise-wallet-buddy/internal/locale"
	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

// ErrValidation wraps field errors that block a step advance. The wizard
// stays on the current step; the caller surfaces the message and retries.
var ErrValidation = errors.New("step validation failed")

// ErrNotFinished is returned by Complete before the last step is passed.
var ErrNotFinished = errors.New("onboarding not finished")

// Form is the in-progress profile being collected.
type Form struct {
	Name          string                `validate:"required"`
	AgeGroup      string                `validate:"required"`
	Country       string                `validate:"required"`
	Currency      string                `validate:"required"`
	Language      string                `validate:"required"`
	Income        string                `validate:"required"`
	Goals         []string              `validate:"required,min=1"`
	Experience    model.ExperienceLevel `validate:"required,oneof=beginner intermediate advanced"`
	Accessibility []string              `validate:"-"`
}

// Wizard walks the fixed step sequence. Zero value is not usable; use New.
type Wizard struct {
	step     Step
	form     Form
	finished bool
	validate *validator.Validate
}

// New creates a wizard positioned on the first step with the default
// currency and language preselected.
func New() *Wizard {
	return &Wizard{
		step: StepBasics,
		form: Form{
			Currency: locale.DefaultCurrency,
			Language: "en",
		},
		validate: validator.New(),
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Form returns a copy of the in-progress form.
func (w *Wizard) Form() Form { return w.form }

// Finished reports whether the final step has been passed.
func (w *Wizard) Finished() bool { return w.finished }

// SetName sets the user's name.
func (w *Wizard) SetName(name string) { w.form.Name = name }

// SetAgeGroup sets the age range selection.
func (w *Wizard) SetAgeGroup(age string) { w.form.AgeGroup = age }

// SetCountry records the country selection and re-derives the currency from
// it. This is the explicit "field changed, recompute dependent field"
// transition; income bracket labels follow the new currency on next read.
func (w *Wizard) SetCountry(country string) {
	w.form.Country = country
	w.form.Currency = locale.ResolveCurrency(country)
}

// SetLanguage sets the preferred language code.
func (w *Wizard) SetLanguage(lang string) { w.form.Language = lang }

// SetIncome records the selected income bracket id.
func (w *Wizard) SetIncome(bracketID string) { w.form.Income = bracketID }

// SetExperience sets the self-reported experience level.
func (w *Wizard) SetExperience(level model.ExperienceLevel) { w.form.Experience = level }

// ToggleGoal adds the goal label to the selection, or removes it when
// already selected.
func (w *Wizard) ToggleGoal(label string) {
	w.form.Goals = toggle(w.form.Goals, label)
}

// ToggleAccessibility adds or removes an accessibility preference.
func (w *Wizard) ToggleAccessibility(feature string) {
	w.form.Accessibility = toggle(w.form.Accessibility, feature)
}

// IncomeBrackets returns the income brackets for the currently derived
// currency.
func (w *Wizard) IncomeBrackets() []locale.IncomeBracket {
	return locale.Resolve(w.form.Currency).IncomeBrackets
}

// Advance validates the current step and moves to the next one. A failed
// predicate returns an error wrapping ErrValidation and the wizard stays
// put. Advancing past the last step marks the wizard finished.
func (w *Wizard) Advance() error {
	fields := stepFields[w.step]
	if len(fields) > 0 {
		if err := w.validate.StructPartial(w.form, fields...); err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrValidation, w.step, err)
		}
	}
	if w.step < TotalSteps {
		w.step++
		return nil
	}
	w.finished = true
	return nil
}

// Retreat moves back one step. It is unconditionally allowed except from
// the first step, where it is a no-op.
func (w *Wizard) Retreat() {
	if w.step > StepBasics {
		w.step--
	}
}

// Progress returns completion as a percentage of steps reached.
func (w *Wizard) Progress() float64 {
	return float64(w.step) / float64(TotalSteps) * 100
}

// Complete finalizes the profile after the last step. Every new profile
// starts with the same allotment regardless of answers: the First Steps
// points, level 1, a one-day streak.
func (w *Wizard) Complete() (model.UserProfile, error) {
	if !w.finished {
		return model.UserProfile{}, ErrNotFinished
	}
	now := time.Now()
	return model.UserProfile{
		Name:          w.form.Name,
		AgeGroup:      w.form.AgeGroup,
		Country:       w.form.Country,
		Currency:      w.form.Currency,
		Language:      w.form.Language,
		Income:        w.form.Income,
		Goals:         append([]string(nil), w.form.Goals...),
		Experience:    w.form.Experience,
		Accessibility: append([]string(nil), w.form.Accessibility...),
		Points:        50,
		Level:         achievement.Level(50),
		Streak:        1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func toggle(list []string, item string) []string {
	for i, v := range list {
		if v == item {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return append(list, item)
}
