package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkathal/wise-wallet-buddy/internal/achievement"
	"github.com/rkathal/wise-wallet-buddy/internal/coach"
	"github.com/rkathal/wise-wallet-buddy/internal/goal"
	"github.com/rkathal/wise-wallet-buddy/internal/model"
	"github.com/rkathal/wise-wallet-buddy/internal/profile"
	"github.com/rkathal/wise-wallet-buddy/internal/recorder"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	snap := &profile.Snapshot{
		Profile: model.UserProfile{
			Name:       "Aiko",
			Currency:   "USD",
			Experience: model.ExperienceBeginner,
			Goals:      []string{"Create a Budget", "Start Investing"},
			Points:     50,
			Level:      1,
			Streak:     1,
		},
		Goals:        goal.DefaultSet("USD"),
		Achievements: achievement.NewCatalog(),
	}
	engine := coach.New(coach.WithTypingDelay(0, 0))
	return New(engine, recorder.NewNoopRecorder(), snap, "")
}

func TestStart_AppendsGreeting(t *testing.T) {
	s := newTestSession(t)
	greeting := s.Start()
	assert.Equal(t, model.CategoryGreeting, greeting.Category)
	assert.Equal(t, 1.0, greeting.Confidence)

	transcript := s.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, greeting.ID, transcript[0].ID)
}

func TestSend_AppendsBothTurnsInOrder(t *testing.T) {
	s := newTestSession(t)
	s.Start()

	reply, _, err := s.Send(context.Background(), "help with my savings")
	require.NoError(t, err)
	assert.Equal(t, model.CategorySavings, reply.Category)

	transcript := s.Transcript()
	require.Len(t, transcript, 3)
	assert.Equal(t, model.SenderAssistant, transcript[0].Sender)
	assert.Equal(t, model.SenderUser, transcript[1].Sender)
	assert.Equal(t, model.SenderAssistant, transcript[2].Sender)
	assert.False(t, transcript[2].Timestamp.Before(transcript[1].Timestamp))
}

func TestSend_BudgetQuestionUnlocksOnce(t *testing.T) {
	s := newTestSession(t)

	_, unlock, err := s.Send(context.Background(), "how do I budget?")
	require.NoError(t, err)
	require.NotNil(t, unlock)
	assert.Equal(t, achievement.BudgetMaster, unlock.AchievementID)
	assert.Equal(t, 150, s.Profile().Points)

	// Second budget question: achievement already earned, no notification,
	// points unchanged.
	_, unlock2, err := s.Send(context.Background(), "budget again please")
	require.NoError(t, err)
	assert.Nil(t, unlock2)
	assert.Equal(t, 150, s.Profile().Points)
}

func TestSend_BudgetEventGatedOnGoal(t *testing.T) {
	s := newTestSession(t)
	s.profile.Goals = []string{"Buy a Home"}

	_, unlock, err := s.Send(context.Background(), "budget help")
	require.NoError(t, err)
	assert.Nil(t, unlock)
	assert.Equal(t, 50, s.Profile().Points)
}

func TestSend_CancelLeavesNoReply(t *testing.T) {
	s := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.Send(ctx, "budget")
	require.Error(t, err)

	transcript := s.Transcript()
	require.Len(t, transcript, 1, "user message kept, no assistant turn")
	assert.Equal(t, model.SenderUser, transcript[0].Sender)
}

func TestTakeAction(t *testing.T) {
	s := newTestSession(t)

	unlock := s.TakeAction("Payment Plan")
	require.NotNil(t, unlock)
	assert.Equal(t, achievement.DebtDestroyer, unlock.AchievementID)

	assert.Nil(t, s.TakeAction("Payment Plan"), "replay is a no-op")
	assert.Nil(t, s.TakeAction("Track Expenses"), "unmapped action")
}

func TestDailyRollover(t *testing.T) {
	s := newTestSession(t)
	s.DailyRollover()
	s.DailyRollover()
	assert.Equal(t, 3, s.Profile().Streak)
}

func TestLastReply(t *testing.T) {
	s := newTestSession(t)
	_, ok := s.LastReply()
	assert.False(t, ok)

	s.Start()
	reply, _, err := s.Send(context.Background(), "invest")
	require.NoError(t, err)

	last, ok := s.LastReply()
	require.True(t, ok)
	assert.Equal(t, reply.ID, last.ID)
}
