package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// Int returns the integer stored under key, or 0 if the key has never been set.
func (s *Store) Int(key string) (int, error) {
	var value int64
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return int(value), nil
}

// SetInt stores value under key, replacing any previous value.
func (s *Store) SetInt(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// RaiseInt stores value under key only if it exceeds the stored value, in a
// single statement, and returns the value stored afterwards. Concurrent
// writers sharing the database can never lower the value.
func (s *Store) RaiseInt(key string, value int) (int, error) {
	var stored int64
	err := s.db.QueryRow(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			value = MAX(value, excluded.value),
			updated_at = CASE WHEN excluded.value > value THEN CURRENT_TIMESTAMP ELSE updated_at END
		 RETURNING value`,
		key, value,
	).Scan(&stored)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot raise setting %q: %w", key, err)
	}
	return int(stored), nil
}

// DeleteSetting removes key. Deleting a missing key is not an error.
func (s *Store) DeleteSetting(key string) error {
	if _, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete setting %q: %w", key, err)
	}
	return nil
}

// MemorySettings is an in-process settings store with the same semantics as
// the SQLite settings table. Used when no database is available.
type MemorySettings struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemorySettings creates an empty in-memory settings store.
func NewMemorySettings() *MemorySettings {
	return &MemorySettings{values: make(map[string]int)}
}

// Int returns the value under key, or 0 if unset.
func (m *MemorySettings) Int(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// SetInt stores value under key.
func (m *MemorySettings) SetInt(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// RaiseInt stores value under key if it exceeds the current value and
// returns the value stored afterwards.
func (m *MemorySettings) RaiseInt(key string, value int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value > m.values[key] {
		m.values[key] = value
	}
	return m.values[key], nil
}
