package session

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// StreakScheduler runs the daily streak rollover for a session.
type StreakScheduler struct {
	cron    *cron.Cron
	session *Session
}

// NewStreakScheduler creates a scheduler bound to a session.
func NewStreakScheduler(s *Session) *StreakScheduler {
	return &StreakScheduler{
		cron:    cron.New(cron.WithSeconds()),
		session: s,
	}
}

// Register adds the rollover job under the given cron spec (with seconds,
// default midnight daily).
func (ss *StreakScheduler) Register(spec string) error {
	if _, err := ss.cron.AddFunc(spec, ss.session.DailyRollover); err != nil {
		return fmt.Errorf("register streak rollover: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (ss *StreakScheduler) Start() { ss.cron.Start() }

// Stop stops the cron scheduler gracefully.
func (ss *StreakScheduler) Stop() { ss.cron.Stop() }
