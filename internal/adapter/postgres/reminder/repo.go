// Package reminder implements reminder event persistence using PostgreSQL.
package reminder

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

const entity = "reminder_event"

// Repo provides reminder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reminder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const reminderColumns = `id, user_id, record_id, type, priority, status, title, message, scheduled_for,
snoozed_until, shown_at, acknowledged_at, dismissed_at, created_at, updated_at`

const createSQL = `
INSERT INTO reminder_events (` + reminderColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

const getByIDSQL = `
SELECT ` + reminderColumns + `
FROM reminder_events
WHERE id = $1`

const updateSQL = `
UPDATE reminder_events SET
    status = $2, snoozed_until = $3, shown_at = $4, acknowledged_at = $5, dismissed_at = $6, updated_at = $7
WHERE id = $1`

const existsNearSQL = `
SELECT EXISTS (
    SELECT 1 FROM reminder_events
    WHERE record_id = $1 AND type = $2 AND status <> 'DISMISSED'
      AND scheduled_for BETWEEN $3 AND $4
)`

const (
	defaultLimit = 50
	maxLimit     = 200
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new reminder event.
func (r *Repo) Create(ctx context.Context, ev *domain.ReminderEvent) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	_, err := q.Exec(ctx, createSQL,
		ev.ID, ev.UserID, ev.RecordID, string(ev.Type), string(ev.Priority), string(ev.Status),
		ev.Title, ev.Message, ev.ScheduledFor,
		ev.SnoozedUntil, ev.ShownAt, ev.AcknowledgedAt, ev.DismissedAt, ev.CreatedAt, ev.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, ev.ID)
	}
	return nil
}

// Update persists status changes of an event and refreshes UpdatedAt.
func (r *Repo) Update(ctx context.Context, ev *domain.ReminderEvent) error {
	ev.UpdatedAt = time.Now().UTC()

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, updateSQL,
		ev.ID, string(ev.Status), ev.SnoozedUntil, ev.ShownAt, ev.AcknowledgedAt, ev.DismissedAt, ev.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, ev.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, ev.ID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a reminder event by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReminderEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	ev, err := scanReminder(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return ev, nil
}

// ExistsNear reports whether a non-dismissed event of typ for recordID is
// scheduled within [from, to].
func (r *Repo) ExistsNear(ctx context.Context, recordID uuid.UUID, typ domain.ReminderType, from, to time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	var exists bool
	if err := q.QueryRow(ctx, existsNearSQL, recordID, string(typ), from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("check reminder dedupe: %w", err)
	}
	return exists, nil
}

// List returns a user's reminders ordered by scheduled time.
func (r *Repo) List(ctx context.Context, f domain.ReminderFilter) ([]domain.ReminderEvent, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	b := sq.Select(reminderColumns).
		From("reminder_events").
		Where(sq.Eq{"user_id": f.UserID}).
		OrderBy("scheduled_for", "id").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)
	if f.RecordID != nil {
		b = b.Where(sq.Eq{"record_id": *f.RecordID})
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		b = b.Where(sq.Eq{"status": statuses})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reminder_events: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reminder_events: %w", err)
	}
	defer rows.Close()

	var out []domain.ReminderEvent
	for rows.Next() {
		ev, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reminder_event: %w", err)
		}
		out = append(out, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminder_events: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanReminder(row pgx.Row) (*domain.ReminderEvent, error) {
	var (
		ev                    domain.ReminderEvent
		typ, priority, status string
	)
	err := row.Scan(
		&ev.ID, &ev.UserID, &ev.RecordID, &typ, &priority, &status, &ev.Title, &ev.Message, &ev.ScheduledFor,
		&ev.SnoozedUntil, &ev.ShownAt, &ev.AcknowledgedAt, &ev.DismissedAt, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	ev.Type = domain.ReminderType(typ)
	ev.Priority = domain.ReminderPriority(priority)
	ev.Status = domain.ReminderStatus(status)
	return &ev, nil
}
