package integration

import (
	"context"
	"testing"
	"time"

	"item-api/internal/config"
	"item-api/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and the items schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("items_test"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := postgresContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(ctx, TestDatabaseConfig(connStr), zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// TestDatabaseConfig returns pool settings pointing at connStr.
func TestDatabaseConfig(connStr string) config.DatabaseConfig {
	return config.DatabaseConfig{
		URL:             connStr,
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}
}

// SeedItems inserts one item per name with ascending prices and returns their IDs in insertion order.
func SeedItems(t *testing.T, pool *pgxpool.Pool, names ...string) []int64 {
	t.Helper()

	ctx := context.Background()

	ids := make([]int64, 0, len(names))
	for i, name := range names {
		var id int64
		err := pool.QueryRow(ctx,
			"INSERT INTO items (name, price) VALUES ($1, $2) RETURNING id",
			name, float64(i+1)*10,
		).Scan(&id)
		if err != nil {
			t.Fatalf("failed to seed item %s: %v", name, err)
		}
		ids = append(ids, id)
	}
	return ids
}

// CleanupDB removes all items and restarts the id sequence.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "TRUNCATE items RESTART IDENTITY"); err != nil {
		t.Fatalf("failed to clean items table: %v", err)
	}
}
