package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// DeleteRecord removes a DRAFT or UNLOCKED record and everything that
// cascades from it. confirm must be true.
func (s *Service) DeleteRecord(ctx context.Context, id uuid.UUID, confirm bool) error {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return err
	}
	if !confirm {
		return domain.NewValidationError("confirm", "deletion must be confirmed")
	}

	rec, err := s.load(ctx, userID, id)
	if err != nil {
		return err
	}
	if !rec.State.IsDeletable() {
		return domain.NewStateConflict("delete record", rec.State)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.records.Delete(txCtx, id, rec.Version)
	})
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	s.invalidate(ctx, id)

	s.log.InfoContext(ctx, "record deleted",
		slog.String("user_id", userID.String()),
		slog.String("record_id", id.String()),
	)
	return nil
}
