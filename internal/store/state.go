package store

import (
	"errors"
	"fmt"
)

const (
	// StateKey holds the planner record.
	StateKey = "productivity-planner-state"
	// BackupKey holds the record replaced by the last import or reset.
	BackupKey = StateKey + ".backup"
)

// LoadState returns the stored planner record, or nil if none was saved.
func (s *Store) LoadState() ([]byte, error) {
	return s.load(StateKey)
}

// SaveState stores raw as the planner record.
func (s *Store) SaveState(raw []byte) error {
	if err := s.Put(StateKey, string(raw)); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Backup copies the current record to BackupKey. It is a no-op when
// nothing has been saved yet.
func (s *Store) Backup() error {
	raw, err := s.LoadState()
	if err != nil {
		return err
	}
	return s.SaveBackup(raw)
}

// SaveBackup stores raw under BackupKey. A nil record leaves the existing
// backup alone.
func (s *Store) SaveBackup(raw []byte) error {
	if raw == nil {
		return nil
	}
	if err := s.Put(BackupKey, string(raw)); err != nil {
		return fmt.Errorf("backup state: %w", err)
	}
	return nil
}

// LoadBackup returns the record saved by Backup, or nil.
func (s *Store) LoadBackup() ([]byte, error) {
	return s.load(BackupKey)
}

func (s *Store) load(key string) ([]byte, error) {
	value, err := s.Get(key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return []byte(value), nil
}
