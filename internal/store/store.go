// Package store persists confirmed routines as JSON documents under a
// base directory. It is deliberately a plain key-value layout: one file
// per confirmed routine, named by its id.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rafin/routine-genius/pkg/model"
)

// ConfirmedRoutine is a routine copied out of a result set and kept
// across sessions.
type ConfirmedRoutine struct {
	ID       string           `json:"id"`
	SavedAt  time.Time        `json:"savedAt"`
	Sections []*model.Section `json:"sections"`
}

// Store is a file-backed confirmed-routine store.
type Store struct {
	baseDir string
}

// New ensures the base directory exists and returns a handle.
func New(baseDir string) (*Store, error) {
	if baseDir == "" {
		baseDir = "./confirmed"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Confirm copies the routine into the store and returns the saved entry.
func (s *Store) Confirm(routine model.Routine) (*ConfirmedRoutine, error) {
	entry := &ConfirmedRoutine{
		ID:       uuid.NewString(),
		SavedAt:  time.Now().UTC(),
		Sections: routine,
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode confirmed routine: %w", err)
	}
	if err := os.WriteFile(s.path(entry.ID), data, 0o644); err != nil {
		return nil, fmt.Errorf("write confirmed routine: %w", err)
	}
	return entry, nil
}

// Get loads one confirmed routine by id.
func (s *Store) Get(id string) (*ConfirmedRoutine, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, fmt.Errorf("read confirmed routine: %w", err)
	}
	var entry ConfirmedRoutine
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode confirmed routine: %w", err)
	}
	return &entry, nil
}

// List returns all confirmed routines, oldest first.
func (s *Store) List() ([]*ConfirmedRoutine, error) {
	names, err := filepath.Glob(filepath.Join(s.baseDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan store directory: %w", err)
	}
	entries := make([]*ConfirmedRoutine, 0, len(names))
	for _, name := range names {
		id := strings.TrimSuffix(filepath.Base(name), ".json")
		entry, err := s.Get(id)
		if err != nil {
			// A corrupt entry should not hide the rest.
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SavedAt.Before(entries[j].SavedAt)
	})
	return entries, nil
}

// Delete removes one confirmed routine.
func (s *Store) Delete(id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		return fmt.Errorf("delete confirmed routine: %w", err)
	}
	return nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.baseDir, filepath.Base(id)+".json")
}
