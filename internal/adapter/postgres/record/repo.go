// Package record implements the ObligationRecord repository using PostgreSQL.
// Financial scalars and the frozen asset snapshot are sealed with a field
// cipher on write and opened on read. Every update is conditioned on the
// caller's expected version.
package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

const entity = "obligation_record"

type fieldCipher interface {
	EncryptDecimal(d decimal.Decimal) (string, error)
	DecryptDecimal(ciphertext string) (decimal.Decimal, error)
	EncryptJSON(v any) (string, error)
	DecryptJSON(ciphertext string, v any) error
}

// Repo provides obligation record persistence backed by PostgreSQL.
type Repo struct {
	pool   *pgxpool.Pool
	cipher fieldCipher
}

// New creates a new record repository.
func New(pool *pgxpool.Pool, cipher fieldCipher) *Repo {
	return &Repo{pool: pool, cipher: cipher}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const recordColumns = `id, user_id, state, methodology, basis, currency, threshold_value, threshold_fallback,
levy_rate, total_wealth_enc, eligible_wealth_enc, levy_amount_enc, asset_refs, asset_snapshot_enc,
period_start, period_start_hijri, hawl_complete_at, days_remaining, last_recalculated_at,
finalized_at, unlocked_at, unlock_reason, version, created_at, updated_at`

const createSQL = `
INSERT INTO obligation_records (` + recordColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`

const getByIDSQL = `
SELECT ` + recordColumns + `
FROM obligation_records
WHERE id = $1`

const getByIDsSQL = `
SELECT ` + recordColumns + `
FROM obligation_records
WHERE id = ANY($1)`

const saveSQL = `
UPDATE obligation_records SET
    state = $3, methodology = $4, basis = $5, currency = $6,
    threshold_value = $7, threshold_fallback = $8, levy_rate = $9,
    total_wealth_enc = $10, eligible_wealth_enc = $11, levy_amount_enc = $12,
    asset_refs = $13, asset_snapshot_enc = $14,
    period_start = $15, period_start_hijri = $16, hawl_complete_at = $17, days_remaining = $18,
    last_recalculated_at = $19, finalized_at = $20, unlocked_at = $21, unlock_reason = $22,
    version = version + 1, updated_at = $23
WHERE id = $1 AND version = $2
RETURNING version, updated_at`

// saveTrackingSQL never touches asset_refs, methodology, basis or levy_rate.
const saveTrackingSQL = `
UPDATE obligation_records SET
    state = $3, currency = $4, threshold_value = $5, threshold_fallback = $6,
    total_wealth_enc = $7, eligible_wealth_enc = $8, levy_amount_enc = $9,
    period_start = $10, period_start_hijri = $11, hawl_complete_at = $12, days_remaining = $13,
    last_recalculated_at = $14,
    version = version + 1, updated_at = $15
WHERE id = $1 AND version = $2
RETURNING version, updated_at`

const deleteSQL = `
DELETE FROM obligation_records
WHERE id = $1 AND version = $2 AND state IN ('DRAFT', 'UNLOCKED')`

const stateVersionSQL = `
SELECT state, version FROM obligation_records WHERE id = $1`

const listIDsByStateSQL = `
SELECT id FROM obligation_records
WHERE state = ANY($1) AND id > $2
ORDER BY id
LIMIT $3`

const listModifiedSinceSQL = `
SELECT id, user_id, updated_at FROM obligation_records
WHERE (updated_at, id) > ($1, $2)
ORDER BY updated_at, id
LIMIT $3`

const (
	defaultLimit = 50
	maxLimit     = 200
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new record at version 1.
func (r *Repo) Create(ctx context.Context, rec *domain.ObligationRecord) error {
	enc, err := r.seal(rec)
	if err != nil {
		return fmt.Errorf("%s %s: %w", entity, rec.ID, err)
	}

	rec.Version = 1
	q := postgres.QuerierFromCtx(ctx, r.pool)
	_, err = q.Exec(ctx, createSQL,
		rec.ID, rec.UserID, string(rec.State), string(rec.Methodology), string(rec.Basis), rec.Currency,
		rec.ThresholdValue, rec.ThresholdFallback, rec.LevyRate,
		enc.total, enc.eligible, enc.levy, refsOrEmpty(rec.AssetRefs), enc.snapshot,
		rec.PeriodStart, rec.PeriodStartHijri, rec.HawlCompleteAt, rec.DaysRemaining, rec.LastRecalculatedAt,
		rec.FinalizedAt, rec.UnlockedAt, rec.UnlockReason, rec.Version, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, rec.ID)
	}
	return nil
}

// Save writes every mutable column if the stored version still equals
// expectedVersion. On success rec.Version and rec.UpdatedAt are refreshed.
// A version mismatch returns a StateConflictError.
func (r *Repo) Save(ctx context.Context, rec *domain.ObligationRecord, expectedVersion int64) error {
	enc, err := r.seal(rec)
	if err != nil {
		return fmt.Errorf("%s %s: %w", entity, rec.ID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, saveSQL,
		rec.ID, expectedVersion,
		string(rec.State), string(rec.Methodology), string(rec.Basis), rec.Currency,
		rec.ThresholdValue, rec.ThresholdFallback, rec.LevyRate,
		enc.total, enc.eligible, enc.levy,
		refsOrEmpty(rec.AssetRefs), enc.snapshot,
		rec.PeriodStart, rec.PeriodStartHijri, rec.HawlCompleteAt, rec.DaysRemaining,
		rec.LastRecalculatedAt, rec.FinalizedAt, rec.UnlockedAt, rec.UnlockReason,
		time.Now().UTC(),
	)
	return r.afterUpdate(ctx, row, rec, "save")
}

// SaveTracking is the scheduler's write path: state, dates and derived
// figures only. Selection, methodology, basis and rate are left untouched.
func (r *Repo) SaveTracking(ctx context.Context, rec *domain.ObligationRecord, expectedVersion int64) error {
	enc, err := r.sealFigures(rec)
	if err != nil {
		return fmt.Errorf("%s %s: %w", entity, rec.ID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, saveTrackingSQL,
		rec.ID, expectedVersion,
		string(rec.State), rec.Currency, rec.ThresholdValue, rec.ThresholdFallback,
		enc.total, enc.eligible, enc.levy,
		rec.PeriodStart, rec.PeriodStartHijri, rec.HawlCompleteAt, rec.DaysRemaining,
		rec.LastRecalculatedAt,
		time.Now().UTC(),
	)
	return r.afterUpdate(ctx, row, rec, "save tracking")
}

func (r *Repo) afterUpdate(ctx context.Context, row pgx.Row, rec *domain.ObligationRecord, op string) error {
	var (
		version   int64
		updatedAt time.Time
	)
	err := row.Scan(&version, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.explainMiss(ctx, rec.ID, op)
	}
	if err != nil {
		return postgres.MapError(err, entity, rec.ID)
	}
	rec.Version = version
	rec.UpdatedAt = updatedAt
	return nil
}

// Delete removes a DRAFT or UNLOCKED record at expectedVersion. Audit
// entries, reminders and distributions cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID, expectedVersion int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, deleteSQL, id, expectedVersion)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return r.explainMiss(ctx, id, "delete")
	}
	return nil
}

// explainMiss distinguishes a missing row from a version or state conflict.
func (r *Repo) explainMiss(ctx context.Context, id uuid.UUID, op string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	var (
		state   string
		version int64
	)
	if err := q.QueryRow(ctx, stateVersionSQL, id).Scan(&state, &version); err != nil {
		return postgres.MapError(err, entity, id)
	}
	if op == "delete" && !domain.RecordState(state).IsDeletable() {
		return fmt.Errorf("%s %s: %w", entity, id, domain.NewStateConflict(op, domain.RecordState(state)))
	}
	return fmt.Errorf("%s %s: %w", entity, id, domain.NewStateConflict(op, ""))
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a record with its sealed fields opened.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ObligationRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rec, err := r.scanRecord(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapScanError(err, id)
	}
	return rec, nil
}

// GetByIDs returns the records that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ObligationRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get obligation_records by ids: %w", err)
	}
	return r.collect(rows)
}

// List returns a user's records, newest first.
func (r *Repo) List(ctx context.Context, f domain.RecordFilter) ([]domain.ObligationRecord, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	b := sq.Select(recordColumns).
		From("obligation_records").
		Where(sq.Eq{"user_id": f.UserID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)
	if len(f.States) > 0 {
		states := make([]string, len(f.States))
		for i, s := range f.States {
			states[i] = string(s)
		}
		b = b.Where(sq.Eq{"state": states})
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list obligation_records: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list obligation_records: %w", err)
	}
	return r.collect(rows)
}

// ListIDsByState pages through record ids in the given states using keyset
// pagination on id. Pass uuid.Nil to start.
func (r *Repo) ListIDsByState(ctx context.Context, states []domain.RecordState, afterID uuid.UUID, limit int) ([]uuid.UUID, error) {
	raw := make([]string, len(states))
	for i, s := range states {
		raw[i] = string(s)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listIDsByStateSQL, raw, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("list obligation_record ids by state: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scan obligation_record ids: %w", err)
	}
	return ids, nil
}

// ListModifiedSince returns up to limit records updated after the
// (since, afterID) cursor, ordered by (updated_at, id).
func (r *Repo) ListModifiedSince(ctx context.Context, since time.Time, afterID uuid.UUID, limit int) ([]domain.RecordRef, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listModifiedSinceSQL, since, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("list obligation_records modified since: %w", err)
	}
	defer rows.Close()

	var refs []domain.RecordRef
	for rows.Next() {
		var ref domain.RecordRef
		if err := rows.Scan(&ref.ID, &ref.UserID, &ref.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan obligation_record ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate obligation_record refs: %w", err)
	}
	return refs, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type sealed struct {
	total, eligible, levy, snapshot string
}

func (r *Repo) sealFigures(rec *domain.ObligationRecord) (sealed, error) {
	var (
		s   sealed
		err error
	)
	if s.total, err = r.cipher.EncryptDecimal(rec.TotalWealth); err != nil {
		return s, err
	}
	if s.eligible, err = r.cipher.EncryptDecimal(rec.EligibleWealth); err != nil {
		return s, err
	}
	if s.levy, err = r.cipher.EncryptDecimal(rec.LevyAmount); err != nil {
		return s, err
	}
	return s, nil
}

func (r *Repo) seal(rec *domain.ObligationRecord) (sealed, error) {
	s, err := r.sealFigures(rec)
	if err != nil {
		return s, err
	}
	if len(rec.AssetSnapshot) > 0 {
		if s.snapshot, err = r.cipher.EncryptJSON(rec.AssetSnapshot); err != nil {
			return s, err
		}
	}
	return s, nil
}

func (r *Repo) scanRecord(row pgx.Row) (*domain.ObligationRecord, error) {
	var (
		rec                                     domain.ObligationRecord
		state, methodology, basis               string
		totalEnc, eligibleEnc, levyEnc, snapEnc string
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &state, &methodology, &basis, &rec.Currency,
		&rec.ThresholdValue, &rec.ThresholdFallback, &rec.LevyRate,
		&totalEnc, &eligibleEnc, &levyEnc, &rec.AssetRefs, &snapEnc,
		&rec.PeriodStart, &rec.PeriodStartHijri, &rec.HawlCompleteAt, &rec.DaysRemaining,
		&rec.LastRecalculatedAt, &rec.FinalizedAt, &rec.UnlockedAt, &rec.UnlockReason,
		&rec.Version, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.State = domain.RecordState(state)
	rec.Methodology = domain.Methodology(methodology)
	rec.Basis = domain.ThresholdBasis(basis)

	if rec.TotalWealth, err = r.cipher.DecryptDecimal(totalEnc); err != nil {
		return nil, fmt.Errorf("%s %s total_wealth: %w", entity, rec.ID, err)
	}
	if rec.EligibleWealth, err = r.cipher.DecryptDecimal(eligibleEnc); err != nil {
		return nil, fmt.Errorf("%s %s eligible_wealth: %w", entity, rec.ID, err)
	}
	if rec.LevyAmount, err = r.cipher.DecryptDecimal(levyEnc); err != nil {
		return nil, fmt.Errorf("%s %s levy_amount: %w", entity, rec.ID, err)
	}
	if snapEnc != "" {
		if err := r.cipher.DecryptJSON(snapEnc, &rec.AssetSnapshot); err != nil {
			return nil, fmt.Errorf("%s %s asset_snapshot: %w", entity, rec.ID, err)
		}
	}
	return &rec, nil
}

func (r *Repo) collect(rows pgx.Rows) ([]domain.ObligationRecord, error) {
	defer rows.Close()

	var out []domain.ObligationRecord
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate obligation_records: %w", err)
	}
	return out, nil
}

func mapScanError(err error, id uuid.UUID) error {
	if errors.Is(err, domain.ErrEncryption) {
		return err
	}
	return postgres.MapError(err, entity, id)
}

func refsOrEmpty(refs []uuid.UUID) []uuid.UUID {
	if refs == nil {
		return []uuid.UUID{}
	}
	return refs
}
