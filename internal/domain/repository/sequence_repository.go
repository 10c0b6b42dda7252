package repository

import (
	"context"

	"github.com/google/uuid"
)

// SequenceRepository mints per-restaurant invoice sequence numbers.
type SequenceRepository interface {
	// Next atomically increments and returns the restaurant's counter,
	// creating it on first use. Two concurrent calls never observe the
	// same value.
	Next(ctx context.Context, restaurantID uuid.UUID) (int64, error)
}
