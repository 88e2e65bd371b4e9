package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

// ListRemindersInput narrows a reminder listing.
type ListRemindersInput struct {
	RecordID *uuid.UUID
	Statuses []domain.ReminderStatus
	Limit    int
}

// Validate checks all fields and collects all errors.
func (i ListRemindersInput) Validate() error {
	var errs []domain.FieldError
	for _, st := range i.Statuses {
		if !st.IsValid() {
			errs = append(errs, domain.FieldError{Field: "statuses", Message: "unknown status " + string(st)})
		}
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListReminders returns the caller's reminders. Listed PENDING events become
// SHOWN and SNOOZED events whose snooze expired are woken.
func (s *Service) ListReminders(ctx context.Context, input ListRemindersInput) ([]domain.ReminderEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	events, err := s.reminders.List(ctx, domain.ReminderFilter{
		UserID:   userID,
		RecordID: input.RecordID,
		Statuses: input.Statuses,
		Limit:    input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	now := s.now()
	for i := range events {
		if !events[i].MarkShown(now) {
			continue
		}
		events[i].UpdatedAt = now
		if err := s.reminders.Update(ctx, &events[i]); err != nil {
			return nil, fmt.Errorf("mark reminder shown: %w", err)
		}
	}
	return events, nil
}

// Acknowledge closes a reminder as acted upon.
func (s *Service) Acknowledge(ctx context.Context, id uuid.UUID) (*domain.ReminderEvent, error) {
	return s.transition(ctx, id, "acknowledged", func(ev *domain.ReminderEvent, now time.Time) error {
		return ev.Acknowledge(now)
	})
}

// Dismiss closes a reminder without action.
func (s *Service) Dismiss(ctx context.Context, id uuid.UUID) (*domain.ReminderEvent, error) {
	return s.transition(ctx, id, "dismissed", func(ev *domain.ReminderEvent, now time.Time) error {
		return ev.Dismiss(now)
	})
}

// Snooze hides a reminder until until, or for the default snooze when until
// is nil.
func (s *Service) Snooze(ctx context.Context, id uuid.UUID, until *time.Time) (*domain.ReminderEvent, error) {
	return s.transition(ctx, id, "snoozed", func(ev *domain.ReminderEvent, now time.Time) error {
		wake := now.Add(s.cfg.DefaultSnooze)
		if until != nil {
			wake = *until
		}
		return ev.Snooze(wake, now)
	})
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, verb string, fn func(*domain.ReminderEvent, time.Time) error) (*domain.ReminderEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ev, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reminder: %w", err)
	}
	if ev.UserID != userID {
		return nil, fmt.Errorf("get reminder: %w", domain.ErrNotFound)
	}

	now := s.now()
	if err := fn(ev, now); err != nil {
		return nil, err
	}
	ev.UpdatedAt = now
	if err := s.reminders.Update(ctx, ev); err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}

	s.log.InfoContext(ctx, "reminder "+verb,
		slog.String("reminder_id", id.String()),
		slog.String("record_id", ev.RecordID.String()),
	)
	return ev, nil
}
