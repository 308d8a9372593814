// Package snapshot persists the most recent categorization pass as a JSON
// file under the config directory, for inspection and for scripting against
// the dump without re-hitting the API.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/harrisonrobin/habitick/pkg/categorize"
)

const snapshotFile = "snapshot.json"

type Snapshot struct {
	TakenAt time.Time          `json:"taken_at"`
	Result  *categorize.Result `json:"result"`

	Path  string `json:"-"`
	dirty bool
}

// New returns a snapshot bound to the default path, loading any existing
// dump from a previous run.
func New() (*Snapshot, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(home, ".config", "habitick", snapshotFile)

	s := &Snapshot{Path: path}
	if _, err := os.Stat(path); err == nil {
		if err := s.Load(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Snapshot) Load() error {
	f, err := os.Open(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(s)
}

// Record replaces the stored pass and marks the snapshot for saving.
func (s *Snapshot) Record(result *categorize.Result, takenAt time.Time) {
	s.TakenAt = takenAt
	s.Result = result
	s.dirty = true
}

// Save writes the snapshot if it changed since the last save.
func (s *Snapshot) Save() error {
	if !s.dirty {
		return nil
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(s)
	if err == nil {
		s.dirty = false
	}
	return err
}
