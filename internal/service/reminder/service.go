// Package reminder generates time-based reminder events for obligation
// records and lets users act on them.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

type reminderRepo interface {
	Create(ctx context.Context, ev *domain.ReminderEvent) error
	Update(ctx context.Context, ev *domain.ReminderEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReminderEvent, error)
	ExistsNear(ctx context.Context, recordID uuid.UUID, typ domain.ReminderType, from, to time.Time) (bool, error)
	List(ctx context.Context, f domain.ReminderFilter) ([]domain.ReminderEvent, error)
}

type recordStore interface {
	ListIDsByState(ctx context.Context, states []domain.RecordState, afterID uuid.UUID, limit int) ([]uuid.UUID, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ObligationRecord, error)
}

type distributionLister interface {
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.DistributionRecord, error)
}

// Config holds reminder generation settings.
type Config struct {
	// Lookahead is how far ahead anniversary reminders are created.
	Lookahead time.Duration
	// DedupeWindow suppresses a new event when one of the same type is
	// scheduled within this distance.
	DedupeWindow time.Duration
	// UnlockedAfter is how long a record may stay unlocked before a
	// recalculation reminder.
	UnlockedAfter time.Duration
	DefaultSnooze time.Duration
	// HighPriorityIn marks anniversaries closer than this as HIGH.
	HighPriorityIn time.Duration
	BatchSize      int
}

// DefaultConfig returns the standard reminder windows.
func DefaultConfig() Config {
	return Config{
		Lookahead:      30 * 24 * time.Hour,
		DedupeWindow:   7 * 24 * time.Hour,
		UnlockedAfter:  7 * 24 * time.Hour,
		DefaultSnooze:  24 * time.Hour,
		HighPriorityIn: 7 * 24 * time.Hour,
		BatchSize:      200,
	}
}

// Service provides reminder generation and user operations.
type Service struct {
	reminders     reminderRepo
	records       recordStore
	distributions distributionLister
	cfg           Config
	log           *slog.Logger
	now           func() time.Time
}

// NewService creates a new reminder service.
func NewService(
	log *slog.Logger,
	reminders reminderRepo,
	records recordStore,
	distributions distributionLister,
	cfg Config,
) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 200
	}
	return &Service{
		reminders:     reminders,
		records:       records,
		distributions: distributions,
		cfg:           cfg,
		log:           log.With("service", "reminder"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}
