package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DistributionRecord is a payment made against an ObligationRecord.
type DistributionRecord struct {
	ID            uuid.UUID
	RecordID      uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Currency      string
	Category      RecipientCategory
	RecipientType RecipientType
	DistributedAt time.Time
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AcceptsNewDistributions reports whether distributions may be added to a
// record in state s.
func (s RecordState) AcceptsNewDistributions() bool {
	switch s {
	case RecordStateActiveTracking, RecordStateWaitingPeriodComplete,
		RecordStateFinalized, RecordStateUnlocked:
		return true
	}
	return false
}

// AllowsDistributionEdits reports whether existing distributions may be
// changed or removed while the parent record is in state s.
func (s RecordState) AllowsDistributionEdits() bool {
	return s.AcceptsNewDistributions() && s != RecordStateFinalized
}

// PaidTotal sums the amounts of ds.
func PaidTotal(ds []DistributionRecord) decimal.Decimal {
	total := decimal.Zero
	for _, d := range ds {
		total = total.Add(d.Amount)
	}
	return total
}
