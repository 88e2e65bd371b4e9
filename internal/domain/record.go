package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var recordTransitions = map[RecordState][]RecordState{
	RecordStateDraft:                 {RecordStateActiveTracking},
	RecordStateActiveTracking:        {RecordStateInterrupted, RecordStateWaitingPeriodComplete},
	RecordStateInterrupted:           {RecordStateDraft},
	RecordStateWaitingPeriodComplete: {RecordStateFinalized},
	RecordStateFinalized:             {RecordStateUnlocked},
	RecordStateUnlocked:              {RecordStateFinalized},
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s RecordState) CanTransitionTo(next RecordState) bool {
	for _, allowed := range recordTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ObligationRecord is one user's assessment period.
type ObligationRecord struct {
	ID     uuid.UUID
	UserID uuid.UUID
	State  RecordState

	Methodology Methodology
	Basis       ThresholdBasis
	Currency    string

	ThresholdValue    decimal.Decimal
	ThresholdFallback bool
	TotalWealth       decimal.Decimal
	EligibleWealth    decimal.Decimal
	LevyRate          decimal.Decimal
	LevyAmount        decimal.Decimal

	// AssetRefs is the selection snapshot; values are resolved live until finalization.
	AssetRefs     []uuid.UUID
	AssetSnapshot []AssetValue

	PeriodStart        *time.Time
	PeriodStartHijri   string
	HawlCompleteAt     *time.Time
	DaysRemaining      *int
	LastRecalculatedAt *time.Time
	FinalizedAt        *time.Time
	UnlockedAt         *time.Time
	UnlockReason       string

	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AssetValue is a frozen asset figure captured at finalization.
type AssetValue struct {
	AssetID  uuid.UUID       `json:"asset_id"`
	Category AssetCategory   `json:"category"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
	Eligible bool            `json:"eligible"`
}

// ApplyFigures sets wealth figures and recomputes the levy in the same step.
// Eligible wealth below zero is clamped to zero.
func (r *ObligationRecord) ApplyFigures(total, eligible decimal.Decimal) {
	if eligible.IsNegative() {
		eligible = decimal.Zero
	}
	r.TotalWealth = total
	r.EligibleWealth = eligible
	r.LevyAmount = eligible.Mul(r.LevyRate).Round(2)
}

// ApplyThreshold records the threshold the figures are compared against.
func (r *ObligationRecord) ApplyThreshold(t Threshold) {
	r.ThresholdValue = t.Value
	r.ThresholdFallback = t.Fallback
	if t.Currency != "" {
		r.Currency = t.Currency
	}
}

// MeetsThreshold reports whether eligible wealth is at or above the threshold.
func (r *ObligationRecord) MeetsThreshold() bool {
	if !r.ThresholdValue.IsPositive() {
		return false
	}
	return r.EligibleWealth.GreaterThanOrEqual(r.ThresholdValue)
}

// Activate starts the waiting period at start, ending at completeAt.
func (r *ObligationRecord) Activate(start, completeAt time.Time, startHijri string) error {
	if !r.State.CanTransitionTo(RecordStateActiveTracking) {
		return NewStateConflict("activate", r.State)
	}
	r.State = RecordStateActiveTracking
	r.PeriodStart = &start
	r.PeriodStartHijri = startHijri
	r.HawlCompleteAt = &completeAt
	r.DaysRemaining = nil
	return nil
}

// Interrupt resets an actively tracked record back to DRAFT. The
// INTERRUPTED state is passed through within the same write.
func (r *ObligationRecord) Interrupt() error {
	if !r.State.CanTransitionTo(RecordStateInterrupted) {
		return NewStateConflict("interrupt", r.State)
	}
	r.State = RecordStateDraft
	r.HawlCompleteAt = nil
	r.DaysRemaining = nil
	return nil
}

// CompleteWaitingPeriod marks the hawl as elapsed.
func (r *ObligationRecord) CompleteWaitingPeriod() error {
	if !r.State.CanTransitionTo(RecordStateWaitingPeriodComplete) {
		return NewStateConflict("complete waiting period", r.State)
	}
	r.State = RecordStateWaitingPeriodComplete
	zero := 0
	r.DaysRemaining = &zero
	return nil
}

// Finalize freezes figures and the asset snapshot.
func (r *ObligationRecord) Finalize(snapshot []AssetValue, now time.Time) error {
	if !r.State.CanTransitionTo(RecordStateFinalized) {
		return NewStateConflict("finalize", r.State)
	}
	r.State = RecordStateFinalized
	r.AssetSnapshot = snapshot
	r.FinalizedAt = &now
	r.UnlockReason = ""
	r.UnlockedAt = nil
	return nil
}

// Unlock reopens a finalized record for correction. reason must be non-empty.
func (r *ObligationRecord) Unlock(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return NewValidationError("reason", "required")
	}
	if !r.State.CanTransitionTo(RecordStateUnlocked) {
		return NewStateConflict("unlock", r.State)
	}
	r.State = RecordStateUnlocked
	r.UnlockReason = reason
	r.UnlockedAt = &now
	return nil
}

// DaysUntilComplete returns whole days left until HawlCompleteAt, never negative.
func (r *ObligationRecord) DaysUntilComplete(now time.Time) int {
	if r.HawlCompleteAt == nil {
		return 0
	}
	left := r.HawlCompleteAt.Sub(now)
	if left <= 0 {
		return 0
	}
	days := int(left / (24 * time.Hour))
	if left%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// RecordFilter narrows record listings.
type RecordFilter struct {
	UserID uuid.UUID
	States []RecordState
	Limit  int
	Offset int
}

// RecordRef identifies a record touched at UpdatedAt. Used by batch jobs.
type RecordRef struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	UpdatedAt time.Time
}

// AuditEntry is an immutable history row for an ObligationRecord.
type AuditEntry struct {
	ID            uuid.UUID
	RecordID      uuid.UUID
	RecordVersion int64
	// Seq orders entries written by the same version.
	Seq       int
	Actor     AuditActor
	ActorID   *uuid.UUID
	Field     string
	Before    string
	After     string
	Reason    string
	CreatedAt time.Time
}
