package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const sessionIDKey = "session_id"

// sessionState remembers which stored session the CLI is logged in with.
type sessionState struct {
	v    *viper.Viper
	path string
}

func loadSessionState(path string) (*sessionState, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	return &sessionState{v: v, path: path}, nil
}

// SessionID returns the current session id, or "" when logged out.
func (s *sessionState) SessionID() string {
	return s.v.GetString(sessionIDKey)
}

// Set stores id as the current session.
func (s *sessionState) Set(id string) error {
	s.v.Set(sessionIDKey, id)
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(s.path), err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Clear forgets the current session.
func (s *sessionState) Clear() error {
	return s.Set("")
}
