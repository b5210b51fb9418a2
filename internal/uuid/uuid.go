// Package uuid generates identifiers and lets tests fake them.
package uuid

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// PrefixedGenerator namespaces its IDs so stored keys read well when
// listed straight out of the backend
type PrefixedGenerator struct {
	prefix string
	inner  Generator
}

// NewPrefixed creates a generator whose IDs carry the given prefix
func NewPrefixed(prefix string) *PrefixedGenerator {
	return &PrefixedGenerator{
		prefix: prefix,
		inner:  NewGoogleUUIDGenerator(),
	}
}

// New generates a prefixed ID
func (g *PrefixedGenerator) New() string {
	return g.prefix + "-" + g.inner.New()
}
