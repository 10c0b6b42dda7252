package entity

import (
	"github.com/google/uuid"
)

// InvoiceCounter is the per-restaurant invoice sequence. It is mutated
// only through SequenceRepository.Next, which performs an atomic
// increment; nothing else reads or writes it.
type InvoiceCounter struct {
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq          int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for the InvoiceCounter model
func (InvoiceCounter) TableName() string {
	return "invoice_counters"
}
