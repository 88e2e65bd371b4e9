package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/zakat-tracker/internal/cipher"
	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

// Cipher returns a FieldCipher with a fixed test key so values sealed by
// seed helpers can be opened by repositories under test.
func Cipher(t *testing.T) *cipher.FieldCipher {
	t.Helper()
	c, err := cipher.NewWithKey(testKey)
	if err != nil {
		t.Fatalf("testhelper: Cipher: %v", err)
	}
	return c
}

// SeedAsset inserts an asset owned by userID with a sealed value.
func SeedAsset(t *testing.T, pool *pgxpool.Pool, c *cipher.FieldCipher, userID uuid.UUID, category domain.AssetCategory, value string, eligible bool) domain.Asset {
	t.Helper()
	ctx := context.Background()

	asset := domain.Asset{
		ID:       uuid.New(),
		UserID:   userID,
		Category: category,
		Value:    decimal.RequireFromString(value),
		Currency: "USD",
		AddedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	enc, err := c.EncryptDecimal(asset.Value)
	if err != nil {
		t.Fatalf("testhelper: SeedAsset encrypt: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO assets (id, user_id, category, value_enc, currency, eligible, added_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		asset.ID, asset.UserID, string(asset.Category), enc, asset.Currency, eligible, asset.AddedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAsset insert: %v", err)
	}

	return asset
}

// SeedRecord inserts an obligation record in the given state with
// STANDARD methodology, gold basis and zero figures. ACTIVE_TRACKING
// records get a period start and completion date.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, c *cipher.FieldCipher, userID uuid.UUID, state domain.RecordState) domain.ObligationRecord {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.ObligationRecord{
		ID:          uuid.New(),
		UserID:      userID,
		State:       state,
		Methodology: domain.MethodologyStandard,
		Basis:       domain.ThresholdBasisGold,
		Currency:    "USD",
		LevyRate:    decimal.RequireFromString("0.025"),
		AssetRefs:   []uuid.UUID{},
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if state == domain.RecordStateActiveTracking {
		start := now.Add(-24 * time.Hour)
		complete := start.Add(354 * 24 * time.Hour)
		rec.PeriodStart = &start
		rec.HawlCompleteAt = &complete
	}

	zero, err := c.EncryptDecimal(decimal.Zero)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord encrypt: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO obligation_records (id, user_id, state, methodology, basis, currency, levy_rate,
		     total_wealth_enc, eligible_wealth_enc, levy_amount_enc, asset_refs,
		     period_start, hawl_complete_at, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $8, $9, $10, $11, $12, $13, $14)`,
		rec.ID, rec.UserID, string(rec.State), string(rec.Methodology), string(rec.Basis), rec.Currency, rec.LevyRate,
		zero, rec.AssetRefs, rec.PeriodStart, rec.HawlCompleteAt, rec.Version, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}

// SeedReminder inserts a reminder for rec.
func SeedReminder(t *testing.T, pool *pgxpool.Pool, rec domain.ObligationRecord, typ domain.ReminderType, status domain.ReminderStatus, scheduledFor time.Time) domain.ReminderEvent {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ev := domain.ReminderEvent{
		ID:           uuid.New(),
		UserID:       rec.UserID,
		RecordID:     rec.ID,
		Type:         typ,
		Priority:     domain.ReminderPriorityMedium,
		Status:       status,
		Title:        "Seeded " + string(typ),
		ScheduledFor: scheduledFor.UTC().Truncate(time.Microsecond),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO reminder_events (id, user_id, record_id, type, priority, status, title, scheduled_for, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		ev.ID, ev.UserID, ev.RecordID, string(ev.Type), string(ev.Priority), string(ev.Status), ev.Title,
		ev.ScheduledFor, ev.CreatedAt, ev.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReminder insert: %v", err)
	}

	return ev
}
