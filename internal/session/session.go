// Package session holds runtime state for the active viewer.
package session

import "sync"

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Authenticated bool
	InputEnabled  bool
}

// Session holds runtime state for the active viewer.
type Session struct {
	mu            sync.RWMutex
	password      string
	authenticated bool
	inputEnabled  bool
}

// New returns an initialized session with the given password.
func New(password string) *Session {
	return &Session{
		password:     password,
		inputEnabled: true,
	}
}

// Authenticate validates the password and marks the session as authenticated.
func (s *Session) Authenticate(pass string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pass != "" && pass == s.password {
		s.authenticated = true
		return true
	}
	s.authenticated = false
	return false
}

// Logout clears authentication state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
}

// IsAuthenticated reports whether the session is authenticated.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// SetInputEnabled toggles whether pointer events reach the controls.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether pointer events reach the controls.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Authenticated: s.authenticated,
		InputEnabled:  s.inputEnabled,
	}
}
