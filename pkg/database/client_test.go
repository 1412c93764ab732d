package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// Use dialect.Postgres for Ent compatibility while pgx handles the actual connection
	drv := entsql.OpenDB(dialect.Postgres, db)

	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests instead of embedded SQL migrations
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.CheckHealth(ctx)
	require.NoError(t, err)
	assert.True(t, health.Reachable)
	assert.Greater(t, health.MaxOpen, 0)
	assert.GreaterOrEqual(t, health.Open, health.InUse)
}

func TestPayloadContainmentQuery(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.MindEvent.Create().
		SetID("evt-1").
		SetWorkspaceID("ws-1").
		SetActor("system").
		SetEventType("playbook_step").
		SetPayload(map[string]any{"status": "completed", "step": float64(2)}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.MindEvent.Create().
		SetID("evt-2").
		SetWorkspaceID("ws-1").
		SetActor("system").
		SetEventType("playbook_step").
		SetPayload(map[string]any{"status": "started", "step": float64(3)}).
		Save(ctx)
	require.NoError(t, err)

	// Containment query served by the GIN index
	rows, err := client.DB().QueryContext(ctx,
		`SELECT event_id FROM mind_events WHERE payload @> $1`,
		`{"status": "completed"}`,
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}

	assert.Equal(t, []string{"evt-1"}, results)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	for _, key := range envKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "playbookd", cfg.User)
		assert.Equal(t, "playbookd", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_USER", "admin")
		t.Setenv("DB_NAME", "production")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "production", cfg.Database)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "invalid")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}
