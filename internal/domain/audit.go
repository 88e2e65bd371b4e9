package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FieldChange is one audited field transition.
type FieldChange struct {
	Field  string
	Before string
	After  string
}

// DiffRecords lists the audited fields that differ between before and
// after. A collapse from ACTIVE_TRACKING straight to DRAFT is reported as
// two state changes through INTERRUPTED. The unlock reason is not a field:
// it travels as the entry's Reason, so an unlock yields a single state entry.
func DiffRecords(before, after *ObligationRecord) []FieldChange {
	var out []FieldChange
	add := func(field, b, a string) {
		if b != a {
			out = append(out, FieldChange{Field: field, Before: b, After: a})
		}
	}

	if before.State == RecordStateActiveTracking && after.State == RecordStateDraft {
		add("state", string(before.State), string(RecordStateInterrupted))
		add("state", string(RecordStateInterrupted), string(after.State))
	} else {
		add("state", string(before.State), string(after.State))
	}

	add("methodology", string(before.Methodology), string(after.Methodology))
	add("basis", string(before.Basis), string(after.Basis))
	add("levy_rate", rateString(before.LevyRate), rateString(after.LevyRate))
	add("asset_refs", refsString(before.AssetRefs), refsString(after.AssetRefs))
	add("threshold_value", money(before.ThresholdValue), money(after.ThresholdValue))
	add("total_wealth", money(before.TotalWealth), money(after.TotalWealth))
	add("eligible_wealth", money(before.EligibleWealth), money(after.EligibleWealth))
	add("levy_amount", money(before.LevyAmount), money(after.LevyAmount))
	add("period_start", timeString(before.PeriodStart), timeString(after.PeriodStart))
	add("hawl_complete_at", timeString(before.HawlCompleteAt), timeString(after.HawlCompleteAt))
	add("finalized_at", timeString(before.FinalizedAt), timeString(after.FinalizedAt))
	return out
}

// NewAuditEntries stamps changes for rec at its current version.
func NewAuditEntries(rec *ObligationRecord, changes []FieldChange, actor AuditActor, actorID *uuid.UUID, reason string, now time.Time) []AuditEntry {
	entries := make([]AuditEntry, len(changes))
	for i, c := range changes {
		entries[i] = AuditEntry{
			ID:            uuid.New(),
			RecordID:      rec.ID,
			RecordVersion: rec.Version,
			Seq:           i,
			Actor:         actor,
			ActorID:       actorID,
			Field:         c.Field,
			Before:        c.Before,
			After:         c.After,
			Reason:        reason,
			CreatedAt:     now,
		}
	}
	return entries
}

// Clone returns a copy of r that shares no slices or pointers with it.
func (r *ObligationRecord) Clone() *ObligationRecord {
	c := *r
	c.AssetRefs = append([]uuid.UUID(nil), r.AssetRefs...)
	c.AssetSnapshot = append([]AssetValue(nil), r.AssetSnapshot...)
	c.PeriodStart = cloneTime(r.PeriodStart)
	c.HawlCompleteAt = cloneTime(r.HawlCompleteAt)
	c.LastRecalculatedAt = cloneTime(r.LastRecalculatedAt)
	c.FinalizedAt = cloneTime(r.FinalizedAt)
	c.UnlockedAt = cloneTime(r.UnlockedAt)
	if r.DaysRemaining != nil {
		d := *r.DaysRemaining
		c.DaysRemaining = &d
	}
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func rateString(d decimal.Decimal) string { return d.String() }

func timeString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func refsString(refs []uuid.UUID) string {
	ids := make([]string, len(refs))
	for i, id := range refs {
		ids[i] = id.String()
	}
	return strconv.Itoa(len(refs)) + ":" + strings.Join(ids, ",")
}
