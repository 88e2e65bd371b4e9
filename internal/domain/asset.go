package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset is an already-validated holding owned by the asset collaborator.
type Asset struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Category AssetCategory
	Value    decimal.Decimal
	Currency string
	AddedAt  time.Time
}

// Threshold is the nisab value for one basis at a point in time.
type Threshold struct {
	Basis        ThresholdBasis
	Value        decimal.Decimal
	PricePerGram decimal.Decimal
	Grams        decimal.Decimal
	Currency     string
	AsOf         time.Time
	// Fallback is set when the live price source was unavailable.
	Fallback bool
}

// PriceQuote is a per-gram spot price from the external price source.
type PriceQuote struct {
	Basis        ThresholdBasis
	PricePerGram decimal.Decimal
	Currency     string
	AsOf         time.Time
}

// WealthSummary is the aggregate of a record's selected assets.
type WealthSummary struct {
	// TotalWealth is every selected asset in the record currency, net of liabilities.
	TotalWealth    decimal.Decimal
	Liabilities    decimal.Decimal
	EligibleWealth decimal.Decimal
	// Assets lists every counted asset, flagged by methodology eligibility.
	Assets []AssetValue
	// SkippedCurrency counts assets held in another currency.
	SkippedCurrency int
}
