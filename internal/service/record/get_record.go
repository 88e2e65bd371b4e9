package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// GetRecord returns one of the caller's records.
func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*domain.ObligationRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, userID, id)
}

// ListRecords returns the caller's records, newest first.
func (s *Service) ListRecords(ctx context.Context, input ListRecordsInput) ([]domain.ObligationRecord, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	recs, err := s.records.List(ctx, domain.RecordFilter{
		UserID: userID,
		States: input.States,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// AuditTrail returns the history of one of the caller's records ordered by
// record version.
func (s *Service) AuditTrail(ctx context.Context, id uuid.UUID) ([]domain.AuditEntry, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, userID, id); err != nil {
		return nil, err
	}
	entries, err := s.audit.ListByRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	return entries, nil
}
