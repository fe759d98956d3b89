package coach

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkathal/wise-wallet-buddy/internal/achievement"
	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

func noDelay() *Engine {
	return New(WithTypingDelay(0, 0))
}

func TestRespond_BeginnerInvestingQuestion(t *testing.T) {
	profile := model.UserProfile{
		Name:       "Aiko",
		Experience: model.ExperienceBeginner,
		Goals:      []string{"Start Investing"},
	}

	msg, err := noDelay().Respond(context.Background(), "How do I start investing?", profile)
	require.NoError(t, err)

	assert.Equal(t, model.CategoryInvesting, msg.Category)
	assert.True(t, strings.Contains(msg.Content, "keep my explanations simple"),
		"beginner simplification suffix missing")
	require.GreaterOrEqual(t, len(msg.Actions), 2)
	require.LessOrEqual(t, len(msg.Actions), 3)
	assert.Contains(t, msg.Actions, "Learn Investment Types")
}

func TestRespond_UnrecognizedInputStillAnswers(t *testing.T) {
	msg, err := noDelay().Respond(context.Background(), "what about the weather", model.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryClarification, msg.Category)
	assert.NotEmpty(t, msg.Content)
	assert.NotEmpty(t, msg.Actions)
}

func TestRespond_CancelDiscardsReply(t *testing.T) {
	e := New(WithTypingDelay(5*time.Second, 0))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := e.Respond(ctx, "budget", model.UserProfile{})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Respond did not return after cancellation")
	}
}

func TestQuestionEvent(t *testing.T) {
	withGoal := model.UserProfile{Goals: []string{"Create a Budget"}}
	withoutGoal := model.UserProfile{Goals: []string{"Buy a Home"}}

	evt, ok := QuestionEvent(model.CategoryBudgeting, withGoal)
	require.True(t, ok)
	assert.Equal(t, achievement.EventBudgetQuestion, evt)

	_, ok = QuestionEvent(model.CategoryBudgeting, withoutGoal)
	assert.False(t, ok, "budget event is gated on the Create a Budget goal")

	evt, ok = QuestionEvent(model.CategoryInvesting, withoutGoal)
	require.True(t, ok)
	assert.Equal(t, achievement.EventInvestingQuestion, evt)

	_, ok = QuestionEvent(model.CategoryCredit, withGoal)
	assert.False(t, ok)
}

func TestActionEvent(t *testing.T) {
	evt, ok := ActionEvent("Payment Plan")
	require.True(t, ok)
	assert.Equal(t, achievement.EventDebtPlanCreated, evt)

	evt, ok = ActionEvent("Calculate Target")
	require.True(t, ok)
	assert.Equal(t, achievement.EventEmergencyGoalSet, evt)

	_, ok = ActionEvent("Track Expenses")
	assert.False(t, ok)
}

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("hello")
	assert.Equal(t, model.SenderUser, msg.Sender)
	assert.Equal(t, "hello", msg.Content)
	assert.NotEmpty(t, msg.ID)
}
