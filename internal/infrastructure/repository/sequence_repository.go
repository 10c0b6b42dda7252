package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	domainRepo "github.com/tablewise/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new invoice sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next upserts and increments the per-restaurant counter in one
// statement, so concurrent callers each see a distinct value even across
// server processes. The counter row is created on first use.
func (r *sequenceRepository) Next(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	var seq int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO invoice_counters (restaurant_id, seq)
		VALUES (?, 1)
		ON CONFLICT (restaurant_id)
		DO UPDATE SET seq = invoice_counters.seq + 1
		RETURNING seq
	`, restaurantID).Scan(&seq).Error
	if err != nil {
		return 0, fmt.Errorf("failed to increment invoice counter: %w", err)
	}
	return seq, nil
}
