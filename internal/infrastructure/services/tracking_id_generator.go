package services

import (
	"context"

	"jannivaran/internal/shared/id"
)

// RandomTrackingIDGenerator produces JAN-prefixed tracking IDs from a
// cryptographic source. Uniqueness is enforced by the database index; the
// caller retries on collision.
type RandomTrackingIDGenerator struct{}

func NewRandomTrackingIDGenerator() *RandomTrackingIDGenerator {
	return &RandomTrackingIDGenerator{}
}

func (g *RandomTrackingIDGenerator) Generate(ctx context.Context) (string, error) {
	return id.NewTrackingID()
}
