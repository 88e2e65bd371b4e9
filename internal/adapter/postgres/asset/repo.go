// Package asset reads the asset collaborator's table. Assets are owned and
// validated elsewhere; this package never writes them.
package asset

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/zakat-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

type fieldCipher interface {
	DecryptDecimal(ciphertext string) (decimal.Decimal, error)
}

// Repo provides read access to user assets.
type Repo struct {
	pool   *pgxpool.Pool
	cipher fieldCipher
}

// New creates a new asset repository.
func New(pool *pgxpool.Pool, cipher fieldCipher) *Repo {
	return &Repo{pool: pool, cipher: cipher}
}

const listEligibleSQL = `
SELECT id, user_id, category, value_enc, currency, added_at
FROM assets
WHERE user_id = $1 AND eligible
ORDER BY added_at, id`

// ListEligible returns the user's currently eligible assets with values opened.
func (r *Repo) ListEligible(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listEligibleSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list eligible assets: %w", err)
	}
	defer rows.Close()

	var out []domain.Asset
	for rows.Next() {
		var (
			a        domain.Asset
			category string
			valueEnc string
		)
		if err := rows.Scan(&a.ID, &a.UserID, &category, &valueEnc, &a.Currency, &a.AddedAt); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		a.Category = domain.AssetCategory(category)
		if a.Value, err = r.cipher.DecryptDecimal(valueEnc); err != nil {
			return nil, fmt.Errorf("asset %s value: %w", a.ID, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets: %w", err)
	}
	return out, nil
}
