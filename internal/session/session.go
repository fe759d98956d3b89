// Package session owns the authoritative per-user state: profile snapshot,
// conversation transcript, goal set, and achievement catalog. The engines
// are pure; every mutation flows through here under a single mutex, so a
// multi-session host gets one Session per profile and no shared state.
package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/rkathal/wise-wallet-buddy/internal/achievement"
	"github.com/rkathal/wise-wallet-buddy/internal/coach"
	"github.com/rkathal/wise-wallet-buddy/internal/goal"
	"github.com/rkathal/wise-wallet-buddy/internal/logger"
	"github.com/rkathal/wise-wallet-buddy/internal/model"
	"github.com/rkathal/wise-wallet-buddy/internal/profile"
	"github.com/rkathal/wise-wallet-buddy/internal/recorder"
)

// Session serializes access to one user's state.
type Session struct {
	mu sync.Mutex

	engine   *coach.Engine
	recorder recorder.Recorder

	profile      model.UserProfile
	goals        []model.FinancialGoal
	achievements []model.Achievement
	transcript   []model.Message

	profilePath string
}

// New creates a session around an existing snapshot.
func New(engine *coach.Engine, rec recorder.Recorder, snap *profile.Snapshot, profilePath string) *Session {
	return &Session{
		engine:       engine,
		recorder:     rec,
		profile:      snap.Profile,
		goals:        snap.Goals,
		achievements: snap.Achievements,
		profilePath:  profilePath,
	}
}

// Start appends the greeting message and returns it.
func (s *Session) Start() model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	greeting := s.engine.Greet(s.profile)
	s.transcript = append(s.transcript, greeting)
	return greeting
}

// Send processes one user turn: append the user message, classify and
// compose the reply (waiting out the typing delay), append it, emit any
// question-derived achievement event, and record the turn. Returns the
// reply and an unlock notification when one fired.
func (s *Session) Send(ctx context.Context, text string) (model.Message, *achievement.Unlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userMsg := coach.NewUserMessage(text)
	s.transcript = append(s.transcript, userMsg)

	reply, err := s.engine.Respond(ctx, text, s.profile)
	if err != nil {
		// Discarded pending reply: the user message stays in the
		// transcript, no assistant turn is appended.
		return model.Message{}, nil, err
	}
	s.transcript = append(s.transcript, reply)

	if err := s.recorder.RecordTurn(&recorder.Turn{
		UserText:   text,
		Category:   reply.Category,
		Confidence: reply.Confidence,
		ReplyID:    reply.ID,
		ReplyText:  reply.Content,
	}); err != nil {
		logger.Get().Error("record turn", zap.Error(err))
	}

	var unlock *achievement.Unlock
	if evt, ok := coach.QuestionEvent(reply.Category, s.profile); ok {
		unlock = s.applyEventLocked(evt)
	}
	return reply, unlock, nil
}

// TakeAction marks a suggested action as taken and emits its achievement
// event when one is mapped.
func (s *Session) TakeAction(action string) *achievement.Unlock {
	s.mu.Lock()
	defer s.mu.Unlock()

	evt, ok := coach.ActionEvent(action)
	if !ok {
		return nil
	}
	return s.applyEventLocked(evt)
}

// ApplyEvent emits a raw semantic event. Replays of earned achievements are
// no-ops.
func (s *Session) ApplyEvent(event string) *achievement.Unlock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyEventLocked(event)
}

func (s *Session) applyEventLocked(event string) *achievement.Unlock {
	updatedProfile, updatedCatalog, unlock := achievement.Apply(event, s.profile, s.achievements)
	s.profile = updatedProfile
	s.achievements = updatedCatalog
	if unlock == nil {
		return nil
	}

	logger.Get().Info("achievement unlocked",
		zap.String("id", unlock.AchievementID),
		zap.Int("points", unlock.Points),
		zap.Int("total", s.profile.Points))

	if err := s.recorder.RecordUnlock(&recorder.UnlockEvent{
		AchievementID: unlock.AchievementID,
		Title:         unlock.Title,
		PointsAwarded: unlock.Points,
		PointsAfter:   s.profile.Points,
		LevelAfter:    s.profile.Level,
	}); err != nil {
		logger.Get().Error("record unlock", zap.Error(err))
	}
	s.saveLocked()
	return unlock
}

// DailyRollover advances the streak counter by one day.
func (s *Session) DailyRollover() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Streak++
	logger.Get().Info("streak rollover", zap.Int("streak", s.profile.Streak))

	if err := s.recorder.RecordProfileEvent(&recorder.ProfileEvent{
		Points: s.profile.Points,
		Level:  s.profile.Level,
		Streak: s.profile.Streak,
		Note:   "daily streak rollover",
	}); err != nil {
		logger.Get().Error("record profile event", zap.Error(err))
	}
	s.saveLocked()
}

// SnapshotGoals records the current progress of every goal.
func (s *Session) SnapshotGoals() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.goals {
		if err := s.recorder.RecordGoalSnapshot(&recorder.GoalSnapshot{
			GoalID:   g.ID,
			Title:    g.Title,
			Category: g.Category,
			Current:  g.Current,
			Target:   g.Target,
			Percent:  goal.DisplayPercent(g),
		}); err != nil {
			logger.Get().Error("record goal snapshot", zap.Error(err))
		}
	}
}

// Profile returns a copy of the current profile snapshot.
func (s *Session) Profile() model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Goals returns a copy of the goal set.
func (s *Session) Goals() []model.FinancialGoal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.FinancialGoal(nil), s.goals...)
}

// Achievements returns a copy of the achievement catalog.
func (s *Session) Achievements() []model.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Achievement(nil), s.achievements...)
}

// Transcript returns a copy of the chronological message sequence.
func (s *Session) Transcript() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Message(nil), s.transcript...)
}

// LastReply returns the most recent assistant message, if any.
func (s *Session) LastReply() (model.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.transcript) - 1; i >= 0; i-- {
		if s.transcript[i].Sender == model.SenderAssistant {
			return s.transcript[i], true
		}
	}
	return model.Message{}, false
}

// Save persists the current snapshot to the profile file.
func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Session) saveLocked() {
	if err := s.save(); err != nil {
		logger.Get().Error("save profile snapshot", zap.Error(err))
	}
}

func (s *Session) save() error {
	if s.profilePath == "" {
		return nil
	}
	snap := &profile.Snapshot{
		Profile:      s.profile,
		Goals:        s.goals,
		Achievements: s.achievements,
	}
	if err := profile.Save(s.profilePath, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
