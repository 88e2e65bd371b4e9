package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/zakat-tracker/internal/adapter/postgres"
	"github.com/heartmarshall/zakat-tracker/internal/config"
	"github.com/heartmarshall/zakat-tracker/migrations"
)

// ExternalDSNEnv points the repository tests at an already running, migrated
// database instead of a throwaway container.
const ExternalDSNEnv = "ZAKAT_TEST_DATABASE_DSN"

const (
	pgImage    = "postgres:17-alpine"
	pgUser     = "zakat"
	pgPassword = "zakat"
	pgDatabase = "zakat_test"
)

var (
	dbOnce sync.Once
	dbDSN  string
	dbErr  error
)

// SetupTestDB returns a pool on the shared test database. The database is
// created and migrated once per test binary; each call gets its own pool,
// closed on cleanup. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("repository tests need PostgreSQL; skipped in -short mode")
	}

	dbOnce.Do(func() {
		if dsn := os.Getenv(ExternalDSNEnv); dsn != "" {
			dbDSN, dbErr = dsn, migrate(dsn)
			return
		}
		dbDSN, dbErr = startPostgres()
	})
	if dbErr != nil {
		t.Fatalf("testhelper: database unavailable: %v", dbErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:          dbDSN,
		MaxConns:     4,
		MinConns:     1,
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        pgImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       pgDatabase,
			},
			Cmd: []string{"postgres", "-c", "fsync=off", "-c", "timezone=UTC"},
			// The entrypoint restarts the server once after init.
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", pgImage, err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		return "", fmt.Errorf("container endpoint: %w", err)
	}

	dsn := (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pgUser, pgPassword),
		Host:     endpoint,
		Path:     pgDatabase,
		RawQuery: "sslmode=disable",
	}).String()

	if err := migrate(dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

// migrate applies the embedded goose migrations; goose needs a *sql.DB.
func migrate(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if _, err := migrations.Up(ctx, db); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
