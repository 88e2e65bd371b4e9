// Package record owns the ObligationRecord lifecycle: creation, live
// recomputation, finalization, unlocking and deletion.
package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/calendar"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

type recordRepo interface {
	Create(ctx context.Context, rec *domain.ObligationRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ObligationRecord, error)
	List(ctx context.Context, f domain.RecordFilter) ([]domain.ObligationRecord, error)
	Save(ctx context.Context, rec *domain.ObligationRecord, expectedVersion int64) error
	Delete(ctx context.Context, id uuid.UUID, expectedVersion int64) error
}

type auditRepo interface {
	Append(ctx context.Context, entries ...domain.AuditEntry) error
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.AuditEntry, error)
}

type wealthAggregator interface {
	AggregateForUser(ctx context.Context, userID uuid.UUID, refs []uuid.UUID, rules domain.MethodologyRules, currency string) (domain.WealthSummary, error)
	CurrentRefs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type thresholdProvider interface {
	ThresholdFor(ctx context.Context, rules domain.MethodologyRules, basis domain.ThresholdBasis) (domain.Threshold, error)
}

type metricInvalidator interface {
	Delete(ctx context.Context, metricType, scopeKey string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds record service settings.
type Config struct {
	// Currency is the currency new records are assessed in.
	Currency string
	// MaxRetries bounds attempts after a lost version race.
	MaxRetries int
}

// Service provides obligation record operations.
type Service struct {
	records    recordRepo
	audit      auditRepo
	wealth     wealthAggregator
	thresholds thresholdProvider
	metrics    metricInvalidator
	tx         txManager
	cfg        Config
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new record service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	audit auditRepo,
	wealth wealthAggregator,
	thresholds thresholdProvider,
	metrics metricInvalidator,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &Service{
		records:    records,
		audit:      audit,
		wealth:     wealth,
		thresholds: thresholds,
		metrics:    metrics,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "record"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// load returns the record if it belongs to userID. Records owned by someone
// else are reported as not found.
func (s *Service) load(ctx context.Context, userID, id uuid.UUID) (*domain.ObligationRecord, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	if rec.UserID != userID {
		return nil, fmt.Errorf("get record: %w", domain.ErrNotFound)
	}
	return rec, nil
}

// mutate reads the record, applies fn and writes it at the read version
// together with its audit entries. A lost version race re-reads and
// re-applies fn, so a transition that is no longer valid fails on its own
// terms. After MaxRetries attempts the conflict is returned.
func (s *Service) mutate(
	ctx context.Context,
	userID, id uuid.UUID,
	op, reason string,
	fn func(ctx context.Context, rec *domain.ObligationRecord, now time.Time) error,
) (*domain.ObligationRecord, error) {
	for attempt := 1; ; attempt++ {
		rec, err := s.load(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		before := rec.Clone()
		now := s.now()

		if err := fn(ctx, rec, now); err != nil {
			return nil, err
		}

		err = s.commit(ctx, before, rec, &userID, reason, now)
		if err == nil {
			s.invalidate(ctx, rec.ID)
			return rec, nil
		}
		if !isVersionConflict(err) || attempt >= s.cfg.MaxRetries {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.log.DebugContext(ctx, "version conflict, retrying",
			slog.String("op", op),
			slog.String("record_id", id.String()),
			slog.Int("attempt", attempt),
		)
	}
}

// commit saves rec at before.Version and appends the field diff.
func (s *Service) commit(ctx context.Context, before, rec *domain.ObligationRecord, actorID *uuid.UUID, reason string, now time.Time) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.records.Save(txCtx, rec, before.Version); err != nil {
			return fmt.Errorf("save record: %w", err)
		}
		changes := domain.DiffRecords(before, rec)
		if len(changes) == 0 {
			return nil
		}
		entries := domain.NewAuditEntries(rec, changes, domain.AuditActorUser, actorID, reason, now)
		if err := s.audit.Append(txCtx, entries...); err != nil {
			return fmt.Errorf("append audit: %w", err)
		}
		return nil
	})
}

// recompute refreshes threshold and wealth figures from live data.
func (s *Service) recompute(ctx context.Context, rec *domain.ObligationRecord, now time.Time) (domain.WealthSummary, error) {
	rules, ok := domain.RulesFor(rec.Methodology)
	if !ok {
		return domain.WealthSummary{}, domain.NewValidationError("methodology", "unknown methodology")
	}

	th, err := s.thresholds.ThresholdFor(ctx, rules, rec.Basis)
	if err != nil {
		return domain.WealthSummary{}, fmt.Errorf("threshold: %w", err)
	}
	rec.ApplyThreshold(th)

	sum, err := s.wealth.AggregateForUser(ctx, rec.UserID, rec.AssetRefs, rules, rec.Currency)
	if err != nil {
		return domain.WealthSummary{}, fmt.Errorf("aggregate wealth: %w", err)
	}
	rec.ApplyFigures(sum.TotalWealth, sum.EligibleWealth)
	rec.LastRecalculatedAt = &now
	return sum, nil
}

// track starts the waiting period for a DRAFT record that reached the
// threshold and refreshes the countdown of an active one. Interruption and
// completion are left to the scheduler.
func (s *Service) track(rec *domain.ObligationRecord, now time.Time) error {
	switch rec.State {
	case domain.RecordStateDraft:
		if !rec.MeetsThreshold() {
			return nil
		}
		if err := rec.Activate(now, calendar.HawlCompletion(now), calendar.ToHijri(now).String()); err != nil {
			return err
		}
	case domain.RecordStateActiveTracking:
	default:
		return nil
	}
	days := rec.DaysUntilComplete(now)
	rec.DaysRemaining = &days
	return nil
}

// invalidate drops cached analytics derived from the record. Failures only
// leave a stale entry until its TTL, so they are logged.
func (s *Service) invalidate(ctx context.Context, recordID uuid.UUID) {
	if err := s.metrics.Delete(ctx, domain.MetricDistributionBreakdown, recordID.String()); err != nil {
		s.log.WarnContext(ctx, "invalidate metric",
			slog.String("record_id", recordID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func userFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// isVersionConflict reports a lost optimistic race, as opposed to a
// transition that is invalid for the stored state.
func isVersionConflict(err error) bool {
	var sc *domain.StateConflictError
	return errors.As(err, &sc) && sc.State == ""
}
