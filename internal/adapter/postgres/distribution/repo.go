// Package distribution implements distribution record persistence using
// PostgreSQL. Amount and notes are sealed with the field cipher.
package distribution

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

const entity = "distribution_record"

type fieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	EncryptDecimal(d decimal.Decimal) (string, error)
	DecryptDecimal(ciphertext string) (decimal.Decimal, error)
}

// Repo provides distribution persistence backed by PostgreSQL.
type Repo struct {
	pool   *pgxpool.Pool
	cipher fieldCipher
}

// New creates a new distribution repository.
func New(pool *pgxpool.Pool, cipher fieldCipher) *Repo {
	return &Repo{pool: pool, cipher: cipher}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const distributionColumns = `id, record_id, user_id, amount_enc, currency, category, recipient_type,
distributed_at, notes_enc, created_at, updated_at`

const createSQL = `
INSERT INTO distribution_records (` + distributionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const getByIDSQL = `
SELECT ` + distributionColumns + `
FROM distribution_records
WHERE id = $1`

const updateSQL = `
UPDATE distribution_records SET
    amount_enc = $2, currency = $3, category = $4, recipient_type = $5,
    distributed_at = $6, notes_enc = $7, updated_at = $8
WHERE id = $1`

const deleteSQL = `
DELETE FROM distribution_records WHERE id = $1`

const listByRecordSQL = `
SELECT ` + distributionColumns + `
FROM distribution_records
WHERE record_id = $1
ORDER BY distributed_at, id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new distribution.
func (r *Repo) Create(ctx context.Context, d *domain.DistributionRecord) error {
	amount, notes, err := r.seal(d)
	if err != nil {
		return fmt.Errorf("%s %s: %w", entity, d.ID, err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	_, err = q.Exec(ctx, createSQL,
		d.ID, d.RecordID, d.UserID, amount, d.Currency, string(d.Category), string(d.RecipientType),
		d.DistributedAt, notes, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, d.ID)
	}
	return nil
}

// Update overwrites the mutable fields of an existing distribution.
func (r *Repo) Update(ctx context.Context, d *domain.DistributionRecord) error {
	amount, notes, err := r.seal(d)
	if err != nil {
		return fmt.Errorf("%s %s: %w", entity, d.ID, err)
	}
	d.UpdatedAt = time.Now().UTC()

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, updateSQL,
		d.ID, amount, d.Currency, string(d.Category), string(d.RecipientType), d.DistributedAt, notes, d.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, d.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, d.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a distribution.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a distribution by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DistributionRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	d, err := r.scan(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// ListByRecord returns the distributions made against a record, oldest first.
func (r *Repo) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.DistributionRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listByRecordSQL, recordID)
	if err != nil {
		return nil, fmt.Errorf("list distribution_records: %w", err)
	}
	defer rows.Close()

	var out []domain.DistributionRecord
	for rows.Next() {
		d, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distribution_records: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func (r *Repo) seal(d *domain.DistributionRecord) (amount, notes string, err error) {
	if amount, err = r.cipher.EncryptDecimal(d.Amount); err != nil {
		return "", "", err
	}
	if d.Notes != "" {
		if notes, err = r.cipher.Encrypt(d.Notes); err != nil {
			return "", "", err
		}
	}
	return amount, notes, nil
}

func (r *Repo) scan(row pgx.Row) (*domain.DistributionRecord, error) {
	var (
		d                       domain.DistributionRecord
		category, recipientType string
		amountEnc, notesEnc     string
	)
	err := row.Scan(
		&d.ID, &d.RecordID, &d.UserID, &amountEnc, &d.Currency, &category, &recipientType,
		&d.DistributedAt, &notesEnc, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d.Category = domain.RecipientCategory(category)
	d.RecipientType = domain.RecipientType(recipientType)

	if d.Amount, err = r.cipher.DecryptDecimal(amountEnc); err != nil {
		return nil, fmt.Errorf("%s %s amount: %w", entity, d.ID, err)
	}
	if notesEnc != "" {
		if d.Notes, err = r.cipher.Decrypt(notesEnc); err != nil {
			return nil, fmt.Errorf("%s %s notes: %w", entity, d.ID, err)
		}
	}
	return &d, nil
}
