package id

import (
	"fmt"

	"github.com/google/uuid"
)

const maxExternalLength = 64

// Generator creates opaque IDs for request correlation.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

// NewID returns a random (v4) UUID.
func (g *RandomGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// Acceptable reports whether an id supplied by a caller can be echoed back
// and logged as is.
func Acceptable(v string) bool {
	if v == "" || len(v) > maxExternalLength {
		return false
	}
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
