// Package profile persists the profile snapshot for the CLI host between
// runs. The engines never touch storage; they take and return snapshots,
// and the host saves the authoritative copy here.
package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rkathal/wise-wallet-buddy/internal/model"
)

// Snapshot is everything the host carries across sessions.
type Snapshot struct {
	Profile      model.UserProfile     `json:"profile"`
	Goals        []model.FinancialGoal `json:"goals"`
	Achievements []model.Achievement   `json:"achievements"`
	SavedAt      time.Time             `json:"saved_at"`
}

// Load reads a snapshot from a JSON file. A missing file returns (nil, nil)
// so the caller can run onboarding instead.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save writes the snapshot to a JSON file, creating parent directories as
// needed.
func Save(path string, snap *Snapshot) error {
	snap.SavedAt = time.Now()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
