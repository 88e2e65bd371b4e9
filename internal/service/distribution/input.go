package distribution

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

const maxNotesLength = 1000

// RecordDistributionInput holds the parameters for a new distribution.
type RecordDistributionInput struct {
	RecordID      uuid.UUID
	Amount        decimal.Decimal
	Category      domain.RecipientCategory
	RecipientType domain.RecipientType
	// DistributedAt defaults to now.
	DistributedAt time.Time
	Notes         string
}

// Validate checks all fields and collects all errors.
func (i RecordDistributionInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.RecordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be > 0"})
	}
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown recipient category"})
	}
	if !i.RecipientType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "recipient_type", Message: "must be INDIVIDUAL or ORGANIZATION"})
	}
	if i.DistributedAt.After(now) {
		errs = append(errs, domain.FieldError{Field: "distributed_at", Message: "must not be in the future"})
	}
	if len(strings.TrimSpace(i.Notes)) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDistributionInput holds the parameters for editing a distribution.
// Nil fields are left unchanged.
type UpdateDistributionInput struct {
	DistributionID uuid.UUID
	Amount         *decimal.Decimal
	Category       *domain.RecipientCategory
	RecipientType  *domain.RecipientType
	DistributedAt  *time.Time
	Notes          *string
}

// Validate checks all fields and collects all errors.
func (i UpdateDistributionInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.DistributionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "distribution_id", Message: "required"})
	}
	if i.Amount == nil && i.Category == nil && i.RecipientType == nil && i.DistributedAt == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Amount != nil && !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be > 0"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown recipient category"})
	}
	if i.RecipientType != nil && !i.RecipientType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "recipient_type", Message: "must be INDIVIDUAL or ORGANIZATION"})
	}
	if i.DistributedAt != nil && i.DistributedAt.After(now) {
		errs = append(errs, domain.FieldError{Field: "distributed_at", Message: "must not be in the future"})
	}
	if i.Notes != nil && len(strings.TrimSpace(*i.Notes)) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
