package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodPoint is one record's figures within a comparison.
type PeriodPoint struct {
	RecordID       uuid.UUID       `json:"record_id"`
	State          RecordState     `json:"state"`
	PeriodStart    *time.Time      `json:"period_start,omitempty"`
	TotalWealth    decimal.Decimal `json:"total_wealth"`
	EligibleWealth decimal.Decimal `json:"eligible_wealth"`
	LevyAmount     decimal.Decimal `json:"levy_amount"`
}

// PeriodDelta is the change between two adjacent periods.
type PeriodDelta struct {
	FromRecordID   uuid.UUID       `json:"from_record_id"`
	ToRecordID     uuid.UUID       `json:"to_record_id"`
	EligibleChange decimal.Decimal `json:"eligible_change"`
	LevyChange     decimal.Decimal `json:"levy_change"`
	// PercentChange is nil when the earlier period had no eligible wealth.
	PercentChange *decimal.Decimal `json:"percent_change,omitempty"`
	Trend         TrendDirection   `json:"trend"`
}

// Comparison is a trend series over two to five records.
type Comparison struct {
	Points      []PeriodPoint  `json:"points"`
	Deltas      []PeriodDelta  `json:"deltas"`
	Trend       TrendDirection `json:"trend"`
	Insights    []string       `json:"insights"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// DistributionSummary breaks a record's distributions down for display.
// The methodology and threshold block is filled only for FINALIZED records,
// whose figures are frozen.
type DistributionSummary struct {
	RecordID       uuid.UUID        `json:"record_id"`
	State          RecordState      `json:"state"`
	Currency       string           `json:"currency"`
	Methodology    Methodology      `json:"methodology,omitempty"`
	Basis          ThresholdBasis   `json:"basis,omitempty"`
	ThresholdValue *decimal.Decimal `json:"threshold_value,omitempty"`
	// ThresholdFallback reports that the frozen threshold came from the
	// static fallback rather than a live price.
	ThresholdFallback bool                                  `json:"threshold_fallback"`
	FinalizedAt       *time.Time                            `json:"finalized_at,omitempty"`
	LevyAmount        decimal.Decimal                       `json:"levy_amount"`
	PaidTotal         decimal.Decimal                       `json:"paid_total"`
	Remaining         decimal.Decimal                       `json:"remaining"`
	PaidPercent       decimal.Decimal                       `json:"paid_percent"`
	ByCategory        map[RecipientCategory]decimal.Decimal `json:"by_category"`
	ByRecipientType   map[RecipientType]decimal.Decimal     `json:"by_recipient_type"`
	Count             int                                   `json:"count"`
	FirstAt           *time.Time                            `json:"first_at,omitempty"`
	LastAt            *time.Time                            `json:"last_at,omitempty"`
	GeneratedAt       time.Time                             `json:"generated_at"`
}
