package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/rkathal/wise-wallet-buddy/internal/logger"
)

// SQLiteRecorder persists session history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Get().Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS conversation_turns (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			user_text   TEXT,
			category    TEXT,
			confidence  REAL,
			reply_id    TEXT,
			reply_text  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_ts ON conversation_turns(timestamp)`,

		`CREATE TABLE IF NOT EXISTS achievement_unlocks (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			achievement_id TEXT,
			title          TEXT,
			points_awarded INTEGER,
			points_after   INTEGER,
			level_after    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_unlocks_ts ON achievement_unlocks(timestamp)`,

		`CREATE TABLE IF NOT EXISTS goal_snapshots (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			goal_id   TEXT,
			title     TEXT,
			category  TEXT,
			current   REAL,
			target    REAL,
			percent   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_ts ON goal_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS profile_events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			points    INTEGER,
			level     INTEGER,
			streak    INTEGER,
			note      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_profile_ts ON profile_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTurn(t *Turn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO conversation_turns
		(timestamp, user_text, category, confidence, reply_id, reply_text)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), t.UserText, string(t.Category), t.Confidence, t.ReplyID, t.ReplyText,
	)
	return err
}

func (r *SQLiteRecorder) RecordUnlock(evt *UnlockEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO achievement_unlocks
		(timestamp, achievement_id, title, points_awarded, points_after, level_after)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.AchievementID, evt.Title,
		evt.PointsAwarded, evt.PointsAfter, evt.LevelAfter,
	)
	return err
}

func (r *SQLiteRecorder) RecordGoalSnapshot(snap *GoalSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO goal_snapshots
		(timestamp, goal_id, title, category, current, target, percent)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.GoalID, snap.Title, string(snap.Category),
		snap.Current, snap.Target, snap.Percent,
	)
	return err
}

func (r *SQLiteRecorder) RecordProfileEvent(evt *ProfileEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO profile_events
		(timestamp, points, level, streak, note)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Points, evt.Level, evt.Streak, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	logger.Get().Info("closing sqlite recorder")
	return r.db.Close()
}
