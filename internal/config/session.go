package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/andy/gigpost/internal/domain"
)

// DefaultSessionPath returns ~/.config/gigpost/session.json
func DefaultSessionPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "gigpost", "session.json")
	}
	return filepath.Join(homeDir, ".config", "gigpost", "session.json")
}

// LoadSession reads the persisted session. A missing file means an
// anonymous session, not an error.
func LoadSession(path string) (domain.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Session{}, nil
		}
		return domain.Session{}, err
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// SaveSession persists the session with owner-only permissions
func SaveSession(path string, sess domain.Session) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ClearSession removes the persisted session, returning to anonymous
func ClearSession(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
