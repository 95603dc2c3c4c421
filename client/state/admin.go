package state

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const adminSessionKey = "adminToken"

// FlagStore persists small key/value flags across process restarts,
// the way a browser keeps a session in local storage.
type FlagStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// FileFlagStore keeps flags in a JSON file on disk
type FileFlagStore struct {
	mu   sync.Mutex
	path string
}

// NewFileFlagStore creates a FileFlagStore at path; the file is
// created on first write.
func NewFileFlagStore(path string) *FileFlagStore {
	return &FileFlagStore{path: path}
}

// Get returns the value for key, or "" when absent
func (s *FileFlagStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flags, err := s.read()
	if err != nil {
		return "", err
	}
	return flags[key], nil
}

// Set writes a flag
func (s *FileFlagStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	flags, err := s.read()
	if err != nil {
		return err
	}
	flags[key] = value
	return s.write(flags)
}

// Delete removes a flag; deleting an absent key is not an error
func (s *FileFlagStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	flags, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := flags[key]; !ok {
		return nil
	}
	delete(flags, key)
	return s.write(flags)
}

func (s *FileFlagStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	flags := map[string]string{}
	if err := json.Unmarshal(data, &flags); err != nil {
		return nil, err
	}
	return flags, nil
}

func (s *FileFlagStore) write(flags map[string]string) error {
	data, err := json.Marshal(flags)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Credentials is the expected admin login pair
type Credentials struct {
	Username string
	Password string
}

// AdminSession gates the admin editor behind a login. The session has
// no expiry; it survives restarts via the flag store and ends only on
// an explicit logout.
type AdminSession struct {
	mu       sync.Mutex
	flags    FlagStore
	expected Credentials

	authenticated bool
}

// NewAdminSession creates a session, restoring a previous login from
// the flag store if one is present.
func NewAdminSession(flags FlagStore, expected Credentials) *AdminSession {
	s := &AdminSession{flags: flags, expected: expected}
	if token, err := flags.Get(adminSessionKey); err == nil && token == "authenticated" {
		s.authenticated = true
	}
	return s
}

// Login checks the supplied credentials and, on a match, marks the
// session authenticated and persists it.
func (s *AdminSession) Login(username, password string) bool {
	if username != s.expected.Username || password != s.expected.Password {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	_ = s.flags.Set(adminSessionKey, "authenticated")
	return true
}

// Logout ends the session and clears the persisted flag
func (s *AdminSession) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	_ = s.flags.Delete(adminSessionKey)
}

// IsAuthenticated reports whether the session is logged in
func (s *AdminSession) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}
