package record

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
	maxReasonLength  = 500
)

// CreateRecordInput holds the parameters for opening a record.
type CreateRecordInput struct {
	Methodology domain.Methodology
	// Basis defaults to the methodology's basis.
	Basis domain.ThresholdBasis
	// AssetRefs selects assets; empty means every current eligible asset.
	AssetRefs []uuid.UUID
	// LevyRate is honoured only for methodologies that allow an override.
	LevyRate *decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i CreateRecordInput) Validate() error {
	var errs []domain.FieldError

	rules, ok := domain.RulesFor(i.Methodology)
	if !ok {
		errs = append(errs, domain.FieldError{Field: "methodology", Message: "unknown methodology"})
	}
	if i.Basis != "" && !i.Basis.IsValid() {
		errs = append(errs, domain.FieldError{Field: "basis", Message: "must be GOLD or SILVER"})
	}
	errs = append(errs, validateRefs(i.AssetRefs)...)
	if i.LevyRate != nil {
		errs = append(errs, validateRate(ok && rules.RateOverride, *i.LevyRate)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRecordInput holds the parameters for editing a DRAFT or UNLOCKED
// record. Nil fields are left unchanged.
type UpdateRecordInput struct {
	RecordID    uuid.UUID
	Methodology *domain.Methodology
	Basis       *domain.ThresholdBasis
	AssetRefs   *[]uuid.UUID
	LevyRate    *decimal.Decimal
}

// Validate checks the fields that can be checked without the stored record.
func (i UpdateRecordInput) Validate() error {
	var errs []domain.FieldError

	if i.RecordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if i.Methodology == nil && i.Basis == nil && i.AssetRefs == nil && i.LevyRate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Methodology != nil && !i.Methodology.IsValid() {
		errs = append(errs, domain.FieldError{Field: "methodology", Message: "unknown methodology"})
	}
	if i.Basis != nil && !i.Basis.IsValid() {
		errs = append(errs, domain.FieldError{Field: "basis", Message: "must be GOLD or SILVER"})
	}
	if i.AssetRefs != nil {
		errs = append(errs, validateRefs(*i.AssetRefs)...)
	}
	if i.LevyRate != nil && (!i.LevyRate.IsPositive() || i.LevyRate.GreaterThan(decimal.NewFromInt(1))) {
		errs = append(errs, domain.FieldError{Field: "levy_rate", Message: "must be in (0, 1]"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRecordsInput narrows a record listing.
type ListRecordsInput struct {
	States []domain.RecordState
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListRecordsInput) Validate() error {
	var errs []domain.FieldError

	for _, st := range i.States {
		if !st.IsValid() {
			errs = append(errs, domain.FieldError{Field: "states", Message: "unknown state " + string(st)})
		}
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.NewValidationError("reason", "required")
	}
	if len(reason) > maxReasonLength {
		return domain.NewValidationError("reason", "max 500 characters")
	}
	return nil
}

func validateRefs(refs []uuid.UUID) []domain.FieldError {
	seen := make(map[uuid.UUID]struct{}, len(refs))
	for _, id := range refs {
		if id == uuid.Nil {
			return []domain.FieldError{{Field: "asset_refs", Message: "contains nil id"}}
		}
		if _, dup := seen[id]; dup {
			return []domain.FieldError{{Field: "asset_refs", Message: "contains duplicates"}}
		}
		seen[id] = struct{}{}
	}
	return nil
}

func validateRate(allowed bool, rate decimal.Decimal) []domain.FieldError {
	if !allowed {
		return []domain.FieldError{{Field: "levy_rate", Message: "only CUSTOM methodology accepts a levy rate"}}
	}
	if !rate.IsPositive() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return []domain.FieldError{{Field: "levy_rate", Message: "must be in (0, 1]"}}
	}
	return nil
}
