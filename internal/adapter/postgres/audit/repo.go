// Package audit implements the record audit trail using PostgreSQL.
// Entries are append-only; before and after values are sealed because they
// may carry financial figures.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

const entity = "audit_entry"

type fieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Repo provides audit trail persistence backed by PostgreSQL.
type Repo struct {
	pool   *pgxpool.Pool
	cipher fieldCipher
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool, cipher fieldCipher) *Repo {
	return &Repo{pool: pool, cipher: cipher}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const auditColumns = `id, record_id, record_version, seq, actor, actor_id, field, before_value, after_value, reason, created_at`

const appendSQL = `
INSERT INTO record_audit_entries (` + auditColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const listByRecordSQL = `
SELECT ` + auditColumns + `
FROM record_audit_entries
WHERE record_id = $1
ORDER BY record_version, seq`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts entries in one round trip. Call it inside the transaction
// that persists the record change so both commit together. Entries sharing
// a record version are ordered by Seq.
func (r *Repo) Append(ctx context.Context, entries ...domain.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		before, err := r.seal(e.Before)
		if err != nil {
			return fmt.Errorf("%s %s before: %w", entity, e.ID, err)
		}
		after, err := r.seal(e.After)
		if err != nil {
			return fmt.Errorf("%s %s after: %w", entity, e.ID, err)
		}
		batch.Queue(appendSQL,
			e.ID, e.RecordID, e.RecordVersion, e.Seq, string(e.Actor), e.ActorID,
			e.Field, before, after, e.Reason, e.CreatedAt,
		)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for _, e := range entries {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, entity, e.ID)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByRecord returns the full trail of a record in version order.
func (r *Repo) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.AuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listByRecordSQL, recordID)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var out []domain.AuditEntry
	for rows.Next() {
		var (
			e             domain.AuditEntry
			actor         string
			before, after string
		)
		if err := rows.Scan(&e.ID, &e.RecordID, &e.RecordVersion, &e.Seq, &actor, &e.ActorID,
			&e.Field, &before, &after, &e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.Actor = domain.AuditActor(actor)
		if e.Before, err = r.open(before); err != nil {
			return nil, fmt.Errorf("%s %s before: %w", entity, e.ID, err)
		}
		if e.After, err = r.open(after); err != nil {
			return nil, fmt.Errorf("%s %s after: %w", entity, e.ID, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func (r *Repo) seal(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	return r.cipher.Encrypt(v)
}

func (r *Repo) open(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	return r.cipher.Decrypt(v)
}
