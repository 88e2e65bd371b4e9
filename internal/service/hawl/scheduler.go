// Package hawl advances actively tracked records through their waiting
// period: it recomputes figures, interrupts records that fell below the
// threshold and completes those whose hawl has elapsed.
package hawl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

type recordStore interface {
	ListIDsByState(ctx context.Context, states []domain.RecordState, afterID uuid.UUID, limit int) ([]uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ObligationRecord, error)
	SaveTracking(ctx context.Context, rec *domain.ObligationRecord, expectedVersion int64) error
}

type auditRepo interface {
	Append(ctx context.Context, entries ...domain.AuditEntry) error
}

type wealthAggregator interface {
	AggregateForUser(ctx context.Context, userID uuid.UUID, refs []uuid.UUID, rules domain.MethodologyRules, currency string) (domain.WealthSummary, error)
}

type thresholdProvider interface {
	ThresholdFor(ctx context.Context, rules domain.MethodologyRules, basis domain.ThresholdBasis) (domain.Threshold, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds scheduler settings.
type Config struct {
	BatchSize  int
	MaxRetries int
}

// Scheduler is the waiting-period job handler.
type Scheduler struct {
	records    recordStore
	audit      auditRepo
	wealth     wealthAggregator
	thresholds thresholdProvider
	tx         txManager
	cfg        Config
	log        *slog.Logger
	now        func() time.Time
}

// NewScheduler creates a new waiting-period scheduler.
func NewScheduler(
	log *slog.Logger,
	records recordStore,
	audit auditRepo,
	wealth wealthAggregator,
	thresholds thresholdProvider,
	tx txManager,
	cfg Config,
) *Scheduler {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 200
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &Scheduler{
		records:    records,
		audit:      audit,
		wealth:     wealth,
		thresholds: thresholds,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "hawl"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

type outcome int

const (
	outcomeUpdated outcome = iota
	outcomeSkipped
)

var activeStates = []domain.RecordState{domain.RecordStateActiveTracking}

// Run processes every ACTIVE_TRACKING record once. A failing record is
// logged and counted; only listing errors and cancellation stop the run.
func (s *Scheduler) Run(ctx context.Context) (domain.BatchStats, error) {
	var (
		stats   domain.BatchStats
		afterID = uuid.Nil
		job     = ctxutil.JobNameFromCtx(ctx)
	)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		ids, err := s.records.ListIDsByState(ctx, activeStates, afterID, s.cfg.BatchSize)
		if err != nil {
			return stats, fmt.Errorf("list active records: %w", err)
		}

		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			res, err := s.process(ctx, id)
			switch {
			case err != nil:
				stats.Failed++
				s.log.ErrorContext(ctx, "hawl record failed",
					slog.String("job", job),
					slog.String("record_id", id.String()),
					slog.String("error", err.Error()),
				)
			case res == outcomeSkipped:
				stats.Skipped++
			default:
				stats.Processed++
			}
		}

		if len(ids) < s.cfg.BatchSize {
			break
		}
		afterID = ids[len(ids)-1]
	}

	s.log.InfoContext(ctx, "hawl run finished",
		slog.String("job", job),
		slog.Int("processed", stats.Processed),
		slog.Int("skipped", stats.Skipped),
		slog.Int("failed", stats.Failed),
	)
	return stats, nil
}

// process advances one record, re-reading it after a lost version race.
func (s *Scheduler) process(ctx context.Context, id uuid.UUID) (outcome, error) {
	for attempt := 1; ; attempt++ {
		rec, err := s.records.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return outcomeSkipped, nil
			}
			return 0, fmt.Errorf("get record: %w", err)
		}
		// The user may have moved it on since the id was listed.
		if rec.State != domain.RecordStateActiveTracking {
			return outcomeSkipped, nil
		}

		before := rec.Clone()
		now := s.now()
		reason, err := s.advance(ctx, rec, now)
		if err != nil {
			return 0, err
		}

		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if err := s.records.SaveTracking(txCtx, rec, before.Version); err != nil {
				return fmt.Errorf("save tracking: %w", err)
			}
			changes := domain.DiffRecords(before, rec)
			if len(changes) == 0 {
				return nil
			}
			entries := domain.NewAuditEntries(rec, changes, domain.AuditActorScheduler, nil, reason, now)
			return s.audit.Append(txCtx, entries...)
		})
		if err == nil {
			if rec.State != before.State {
				s.log.InfoContext(ctx, "record transitioned",
					slog.String("record_id", id.String()),
					slog.String("from", before.State.String()),
					slog.String("to", rec.State.String()),
				)
			}
			return outcomeUpdated, nil
		}
		if !isVersionConflict(err) || attempt >= s.cfg.MaxRetries {
			return 0, err
		}
	}
}

// advance recomputes figures and applies the resulting transition. It
// returns the audit reason.
func (s *Scheduler) advance(ctx context.Context, rec *domain.ObligationRecord, now time.Time) (string, error) {
	rules, ok := domain.RulesFor(rec.Methodology)
	if !ok {
		return "", fmt.Errorf("unknown methodology %q", rec.Methodology)
	}
	th, err := s.thresholds.ThresholdFor(ctx, rules, rec.Basis)
	if err != nil {
		return "", fmt.Errorf("threshold: %w", err)
	}
	rec.ApplyThreshold(th)

	sum, err := s.wealth.AggregateForUser(ctx, rec.UserID, rec.AssetRefs, rules, rec.Currency)
	if err != nil {
		return "", fmt.Errorf("aggregate wealth: %w", err)
	}
	rec.ApplyFigures(sum.TotalWealth, sum.EligibleWealth)
	rec.LastRecalculatedAt = &now

	switch {
	case !rec.MeetsThreshold():
		return "eligible wealth fell below threshold", rec.Interrupt()
	case rec.HawlCompleteAt != nil && !now.Before(*rec.HawlCompleteAt):
		return "waiting period complete", rec.CompleteWaitingPeriod()
	default:
		days := rec.DaysUntilComplete(now)
		rec.DaysRemaining = &days
		return "scheduled recalculation", nil
	}
}

func isVersionConflict(err error) bool {
	var sc *domain.StateConflictError
	return errors.As(err, &sc) && sc.State == ""
}
