package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

// RegenerateSummaries refreshes the cached breakdown of up to one batch of
// records modified since the stored watermark, then advances the watermark
// to the last record of that batch. Later batches wait for the next run. A
// failing record is logged and counted.
func (s *Service) RegenerateSummaries(ctx context.Context) (domain.BatchStats, error) {
	var stats domain.BatchStats
	job := ctxutil.JobNameFromCtx(ctx)

	start, _, err := s.checkpoints.Get(ctx, SummaryCheckpoint)
	if err != nil {
		return stats, fmt.Errorf("read watermark: %w", err)
	}

	refs, err := s.records.ListModifiedSince(ctx, start, uuid.Nil, s.cfg.RegenBatchSize)
	if err != nil {
		return stats, fmt.Errorf("list modified records: %w", err)
	}

	watermark := start
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if err := s.regenerate(ctx, ref.ID); err != nil {
			stats.Failed++
			s.log.ErrorContext(ctx, "regenerate summary",
				slog.String("job", job),
				slog.String("record_id", ref.ID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			stats.Processed++
		}
	}
	if len(refs) > 0 {
		watermark = refs[len(refs)-1].UpdatedAt
	}

	if watermark.After(start) {
		if err := s.checkpoints.Set(ctx, SummaryCheckpoint, watermark); err != nil {
			return stats, fmt.Errorf("store watermark: %w", err)
		}
	}

	s.log.InfoContext(ctx, "summaries regenerated",
		slog.String("job", job),
		slog.Int("processed", stats.Processed),
		slog.Int("failed", stats.Failed),
		slog.Bool("more", len(refs) == s.cfg.RegenBatchSize),
		slog.Time("watermark", watermark),
	)
	return stats, nil
}

func (s *Service) regenerate(ctx context.Context, id uuid.UUID) error {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get record: %w", err)
	}
	sum, err := s.summarize(ctx, rec)
	if err != nil {
		return err
	}
	return s.store(ctx, domain.MetricDistributionBreakdown, id.String(), sum)
}

// CleanupExpired deletes every expired cached metric.
func (s *Service) CleanupExpired(ctx context.Context) (domain.BatchStats, error) {
	n, err := s.metrics.DeleteExpired(ctx, s.now())
	if err != nil {
		return domain.BatchStats{}, fmt.Errorf("cleanup metrics: %w", err)
	}
	s.log.InfoContext(ctx, "expired metrics removed",
		slog.String("job", ctxutil.JobNameFromCtx(ctx)),
		slog.Int64("deleted", n),
	)
	return domain.BatchStats{Processed: int(n)}, nil
}
