// Package coach is the interactive loop's entry point: it classifies a user
// message, composes the reply, and derives the achievement events the
// session owner should emit. The artificial typing delay lives here so the
// engines underneath stay pure and instant.
package coach

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rkathal/wise-wallet-buddy/internal/achievement"
	"github.com/rkathal/wise-wallet-buddy/internal/classifier"
	"github.com/rkathal/wise-wallet-buddy/internal/composer"
	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

// Engine composes the classifier and composer into one call per user turn.
type Engine struct {
	baseDelay   time.Duration
	delayJitter time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithTypingDelay sets the base pacing delay and the maximum random jitter
// added on top. Zero base disables the delay entirely (tests, batch runs).
func WithTypingDelay(base, jitter time.Duration) Option {
	return func(e *Engine) {
		e.baseDelay = base
		e.delayJitter = jitter
	}
}

// New creates an Engine with the original pacing: one second plus up to two
// seconds of jitter before each reply.
func New(opts ...Option) *Engine {
	e := &Engine{baseDelay: time.Second, delayJitter: 2 * time.Second}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewUserMessage wraps raw user input as a transcript message.
func NewUserMessage(text string) model.Message {
	return model.Message{
		ID:        uuid.NewString(),
		Content:   text,
		Sender:    model.SenderUser,
		Timestamp: time.Now(),
	}
}

// Respond classifies the user text and composes the assistant reply after
// the typing delay. Cancelling the context discards the pending reply; there
// are no partial results.
func (e *Engine) Respond(ctx context.Context, userText string, profile model.UserProfile) (model.Message, error) {
	if err := e.wait(ctx); err != nil {
		return model.Message{}, err
	}
	category := classifier.Classify(userText)
	return composer.Compose(category, userText, profile), nil
}

// Greet returns the session-opening message without any pacing delay.
func (e *Engine) Greet(profile model.UserProfile) model.Message {
	return composer.Greeting(profile)
}

// QuestionEvent derives the achievement event a classified question should
// trigger, if any. Budget questions only count once the user has picked the
// "Create a Budget" goal; investing questions always count.
func QuestionEvent(category model.Category, profile model.UserProfile) (string, bool) {
	switch category {
	case model.CategoryBudgeting:
		if profile.HasGoal("Create a Budget") {
			return achievement.EventBudgetQuestion, true
		}
	case model.CategoryInvesting:
		return achievement.EventInvestingQuestion, true
	}
	return "", false
}

// ActionEvent maps a suggested action label the user took to the semantic
// event it stands for. Most actions carry no achievement.
func ActionEvent(action string) (string, bool) {
	switch action {
	case "Payment Plan":
		return achievement.EventDebtPlanCreated, true
	case "Calculate Target":
		return achievement.EventEmergencyGoalSet, true
	}
	return "", false
}

func (e *Engine) wait(ctx context.Context) error {
	if e.baseDelay <= 0 {
		return ctx.Err()
	}
	delay := e.baseDelay
	if e.delayJitter > 0 {
		delay += time.Duration(rand.Int63n(int64(e.delayJitter)))
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
