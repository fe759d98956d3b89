package recorder

import "github.com/rkathal/wise-wallet-buddy/internal/model"

// Turn holds one conversation exchange: the user message and the reply it
// produced.
type Turn struct {
	UserText   string
	Category   model.Category
	Confidence float64
	ReplyID    string
	ReplyText  string
}

// UnlockEvent records an achievement transition to earned.
type UnlockEvent struct {
	AchievementID string
	Title         string
	PointsAwarded int
	PointsAfter   int
	LevelAfter    int
}

// GoalSnapshot records a goal's progress at a point in time.
type GoalSnapshot struct {
	GoalID   string
	Title    string
	Category model.GoalCategory
	Current  float64
	Target   float64
	Percent  int
}

// ProfileEvent records a change to the gamification counters outside of an
// unlock, such as the daily streak rollover.
type ProfileEvent struct {
	Points int
	Level  int
	Streak int
	Note   string
}

// Recorder persists session history for later analysis.
type Recorder interface {
	RecordTurn(t *Turn) error
	RecordUnlock(evt *UnlockEvent) error
	RecordGoalSnapshot(snap *GoalSnapshot) error
	RecordProfileEvent(evt *ProfileEvent) error
	Close() error
}
