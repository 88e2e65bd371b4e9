package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
	"github.com/heartmarshall/zakat-tracker/pkg/ctxutil"
)

const (
	minCompare = 2
	maxCompare = 5
)

var hundred = decimal.NewFromInt(100)

// Compare builds a trend series over two to five of the caller's records,
// ordered by period start.
func (s *Service) Compare(ctx context.Context, ids []uuid.UUID) (*domain.Comparison, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validateIDs(ids); err != nil {
		return nil, err
	}

	scope := compareScope(userID, ids)
	var cmp domain.Comparison
	if s.cached(ctx, domain.MetricTrendSeries, scope, &cmp) {
		return &cmp, nil
	}

	recs, err := s.records.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get records: %w", err)
	}
	owned := recs[:0]
	for _, rec := range recs {
		if rec.UserID == userID {
			owned = append(owned, rec)
		}
	}
	if len(owned) != len(ids) {
		return nil, fmt.Errorf("compare: %w", domain.ErrNotFound)
	}

	cmp = s.buildComparison(owned)
	if err := s.store(ctx, domain.MetricTrendSeries, scope, cmp); err != nil {
		s.log.WarnContext(ctx, "cache trend series", slog.String("error", err.Error()))
	}
	return &cmp, nil
}

func (s *Service) buildComparison(recs []domain.ObligationRecord) domain.Comparison {
	sort.SliceStable(recs, func(i, j int) bool {
		return periodKey(recs[i]).Before(periodKey(recs[j]))
	})

	cmp := domain.Comparison{GeneratedAt: s.now()}
	for _, rec := range recs {
		cmp.Points = append(cmp.Points, domain.PeriodPoint{
			RecordID:       rec.ID,
			State:          rec.State,
			PeriodStart:    rec.PeriodStart,
			TotalWealth:    rec.TotalWealth,
			EligibleWealth: rec.EligibleWealth,
			LevyAmount:     rec.LevyAmount,
		})
	}

	for i := 1; i < len(cmp.Points); i++ {
		prev, cur := cmp.Points[i-1], cmp.Points[i]
		cmp.Deltas = append(cmp.Deltas, s.delta(prev, cur))
	}

	first, last := cmp.Points[0], cmp.Points[len(cmp.Points)-1]
	overall := s.delta(first, last)
	cmp.Trend = overall.Trend
	cmp.Insights = insights(overall, cmp.Deltas)
	return cmp
}

func (s *Service) delta(prev, cur domain.PeriodPoint) domain.PeriodDelta {
	d := domain.PeriodDelta{
		FromRecordID:   prev.RecordID,
		ToRecordID:     cur.RecordID,
		EligibleChange: cur.EligibleWealth.Sub(prev.EligibleWealth),
		LevyChange:     cur.LevyAmount.Sub(prev.LevyAmount),
		Trend:          domain.TrendStable,
	}

	if prev.EligibleWealth.IsZero() {
		if cur.EligibleWealth.IsPositive() {
			d.Trend = domain.TrendIncreasing
		}
		return d
	}

	pct := d.EligibleChange.Div(prev.EligibleWealth).Mul(hundred).Round(2)
	d.PercentChange = &pct
	switch {
	case pct.GreaterThan(s.cfg.TrendThreshold):
		d.Trend = domain.TrendIncreasing
	case pct.LessThan(s.cfg.TrendThreshold.Neg()):
		d.Trend = domain.TrendDecreasing
	}
	return d
}

func insights(overall domain.PeriodDelta, deltas []domain.PeriodDelta) []string {
	var out []string

	switch overall.Trend {
	case domain.TrendIncreasing:
		if overall.PercentChange != nil {
			out = append(out, fmt.Sprintf("Eligible wealth grew %s%% across the compared periods.", overall.PercentChange.StringFixed(1)))
		} else {
			out = append(out, "Eligible wealth grew from nothing across the compared periods.")
		}
	case domain.TrendDecreasing:
		out = append(out, fmt.Sprintf("Eligible wealth fell %s%% across the compared periods.", overall.PercentChange.Abs().StringFixed(1)))
	default:
		out = append(out, "Eligible wealth stayed broadly stable across the compared periods.")
	}

	if !overall.LevyChange.IsZero() {
		verb := "higher"
		if overall.LevyChange.IsNegative() {
			verb = "lower"
		}
		out = append(out, fmt.Sprintf("The latest levy is %s %s than the earliest.", overall.LevyChange.Abs().StringFixed(2), verb))
	}

	var largest *domain.PeriodDelta
	for i := range deltas {
		d := &deltas[i]
		if d.PercentChange == nil {
			continue
		}
		if largest == nil || d.PercentChange.Abs().GreaterThan(largest.PercentChange.Abs()) {
			largest = d
		}
	}
	if largest != nil && len(deltas) > 1 {
		out = append(out, fmt.Sprintf("The largest single change was %s%% between consecutive periods.", largest.PercentChange.StringFixed(1)))
	}
	return out
}

func periodKey(rec domain.ObligationRecord) time.Time {
	if rec.PeriodStart != nil {
		return *rec.PeriodStart
	}
	return rec.CreatedAt
}

func validateIDs(ids []uuid.UUID) error {
	if len(ids) < minCompare || len(ids) > maxCompare {
		return domain.NewValidationError("record_ids", "between 2 and 5 records are required")
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return domain.NewValidationError("record_ids", "contains duplicates")
		}
		seen[id] = struct{}{}
	}
	return nil
}

// compareScope is independent of the order ids were given in.
func compareScope(userID uuid.UUID, ids []uuid.UUID) string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	sort.Strings(keys)
	return userID.String() + ":" + strings.Join(keys, ",")
}
