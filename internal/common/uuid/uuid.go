package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go teamcoup/internal/common/uuid Generator

// Generator abstracts ID generation so services can be tested with
// predictable identifiers
type Generator interface {
	NewID() string
}

// DefaultGenerator implements Generator using random UUIDs
type DefaultGenerator struct{}

// New creates a new generator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new random UUID string
func (g *DefaultGenerator) NewID() string {
	return uuid.New().String()
}
