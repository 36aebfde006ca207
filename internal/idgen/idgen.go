// Package idgen supplies opaque control instance identifiers.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces instance identifiers. Identifiers are used for event
// attribution only; no uniqueness is relied upon.
type Generator interface {
	NewID() string
}

// UUID generates random UUID identifiers.
type UUID struct{}

// NewID returns a random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequential produces deterministic prefixed identifiers for tests.
type Sequential struct {
	Prefix string
	n      int
}

// NewID returns the next prefixed identifier.
func (s *Sequential) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n)
}
