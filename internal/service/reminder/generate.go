package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/calendar"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

// candidate is an event a record would need now, before deduplication.
type candidate struct {
	typ          domain.ReminderType
	priority     domain.ReminderPriority
	scheduledFor time.Time
	title        string
	message      string
}

type rule func(ctx context.Context, rec *domain.ObligationRecord, now time.Time) (*candidate, error)

// Run scans FINALIZED, WAITING_PERIOD_COMPLETE and UNLOCKED records and
// creates the reminders that are due. Processed counts created events,
// Skipped counts records with nothing due or an existing event.
func (s *Service) Run(ctx context.Context) (domain.BatchStats, error) {
	var stats domain.BatchStats
	job := ctxutil.JobNameFromCtx(ctx)

	passes := []struct {
		state domain.RecordState
		rule  rule
	}{
		{domain.RecordStateFinalized, s.anniversary},
		{domain.RecordStateWaitingPeriodComplete, s.distributionDue},
		{domain.RecordStateUnlocked, s.recalculation},
	}
	for _, p := range passes {
		if err := s.scan(ctx, p.state, p.rule, &stats); err != nil {
			return stats, err
		}
	}

	s.log.InfoContext(ctx, "reminder run finished",
		slog.String("job", job),
		slog.Int("created", stats.Processed),
		slog.Int("skipped", stats.Skipped),
		slog.Int("failed", stats.Failed),
	)
	return stats, nil
}

func (s *Service) scan(ctx context.Context, state domain.RecordState, r rule, stats *domain.BatchStats) error {
	afterID := uuid.Nil
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ids, err := s.records.ListIDsByState(ctx, []domain.RecordState{state}, afterID, s.cfg.BatchSize)
		if err != nil {
			return fmt.Errorf("list %s records: %w", state, err)
		}
		if len(ids) == 0 {
			return nil
		}
		recs, err := s.records.GetByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("load %s records: %w", state, err)
		}

		now := s.now()
		for i := range recs {
			created, err := s.consider(ctx, &recs[i], r, now)
			switch {
			case err != nil:
				stats.Failed++
				s.log.ErrorContext(ctx, "reminder record failed",
					slog.String("job", ctxutil.JobNameFromCtx(ctx)),
					slog.String("record_id", recs[i].ID.String()),
					slog.String("error", err.Error()),
				)
			case created:
				stats.Processed++
			default:
				stats.Skipped++
			}
		}

		if len(ids) < s.cfg.BatchSize {
			return nil
		}
		afterID = ids[len(ids)-1]
	}
}

// consider creates the event rule asks for unless one already exists
// nearby.
func (s *Service) consider(ctx context.Context, rec *domain.ObligationRecord, r rule, now time.Time) (bool, error) {
	c, err := r(ctx, rec, now)
	if err != nil || c == nil {
		return false, err
	}

	exists, err := s.reminders.ExistsNear(ctx, rec.ID, c.typ,
		c.scheduledFor.Add(-s.cfg.DedupeWindow), c.scheduledFor.Add(s.cfg.DedupeWindow))
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	ev := &domain.ReminderEvent{
		ID:           uuid.New(),
		UserID:       rec.UserID,
		RecordID:     rec.ID,
		Type:         c.typ,
		Priority:     c.priority,
		Status:       domain.ReminderStatusPending,
		Title:        c.title,
		Message:      c.message,
		ScheduledFor: c.scheduledFor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.reminders.Create(ctx, ev); err != nil {
		return false, fmt.Errorf("create reminder: %w", err)
	}
	return true, nil
}

func (s *Service) anniversary(_ context.Context, rec *domain.ObligationRecord, now time.Time) (*candidate, error) {
	if rec.PeriodStart == nil {
		return nil, nil
	}
	next := calendar.NextAnniversary(*rec.PeriodStart, now)
	until := next.Sub(now)
	if until > s.cfg.Lookahead {
		return nil, nil
	}

	priority := domain.ReminderPriorityMedium
	if until <= s.cfg.HighPriorityIn {
		priority = domain.ReminderPriorityHigh
	}
	return &candidate{
		typ:          domain.ReminderTypeAnniversary,
		priority:     priority,
		scheduledFor: next,
		title:        "Hawl anniversary approaching",
		message:      anniversaryMessage(next, now),
	}, nil
}

func anniversaryMessage(next, now time.Time) string {
	h := calendar.ToHijri(next)
	days := calendar.DaysBetween(now, next)
	when := fmt.Sprintf("in %d days", days)
	switch days {
	case 0:
		when = "today"
	case 1:
		when = "tomorrow"
	}
	return fmt.Sprintf("Your assessment year closes %s, on %d %s %d AH (%s). Review your assets for the new period.",
		when, h.Day, h.MonthName(), h.Year, next.Format("2006-01-02"))
}

func (s *Service) distributionDue(ctx context.Context, rec *domain.ObligationRecord, now time.Time) (*candidate, error) {
	if !rec.LevyAmount.IsPositive() {
		return nil, nil
	}
	ds, err := s.distributions.ListByRecord(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("list distributions: %w", err)
	}
	remaining := rec.LevyAmount.Sub(domain.PaidTotal(ds))
	if !remaining.IsPositive() {
		return nil, nil
	}
	return &candidate{
		typ:          domain.ReminderTypeDistributionDue,
		priority:     domain.ReminderPriorityHigh,
		scheduledFor: now,
		title:        "Distribution due",
		message: fmt.Sprintf("The waiting period is complete. %s %s remains to be distributed.",
			remaining.StringFixed(2), rec.Currency),
	}, nil
}

func (s *Service) recalculation(_ context.Context, rec *domain.ObligationRecord, now time.Time) (*candidate, error) {
	if rec.UnlockedAt == nil || now.Sub(*rec.UnlockedAt) < s.cfg.UnlockedAfter {
		return nil, nil
	}
	days := int(now.Sub(*rec.UnlockedAt) / (24 * time.Hour))
	return &candidate{
		typ:          domain.ReminderTypeRecalculation,
		priority:     domain.ReminderPriorityLow,
		scheduledFor: now,
		title:        "Record still unlocked",
		message:      fmt.Sprintf("This record has been unlocked for %d days. Recalculate and finalize it again.", days),
	}, nil
}
