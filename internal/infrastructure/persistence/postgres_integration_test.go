//go:build integration

package persistence

import (
	"context"
	"database/sql"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/recoffee/backend/internal/domain/collection"
	"github.com/recoffee/backend/internal/domain/shared"
	"github.com/recoffee/backend/internal/infrastructure/config"
	"github.com/recoffee/backend/internal/infrastructure/migration"
	"github.com/recoffee/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
)

// newPostgresDatabase starts a throwaway postgres, applies the SQL
// migrations and opens it through NewDatabase.
func newPostgresDatabase(t *testing.T) *Database {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("coffee_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	_, file, _, _ := runtime.Caller(0)
	m, err := migration.New(sqlDB, filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations"), zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, m.Up())
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.NotZero(t, version)
	assert.False(t, dirty)
	require.NoError(t, m.Close())

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := NewDatabase(&config.DatabaseConfig{
		Driver:       "postgres",
		Host:         host,
		Port:         port.Int(),
		User:         "postgres",
		Password:     "postgres",
		DBName:       "coffee_test",
		SSLMode:      "disable",
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPostgres_CollectionLifecycle(t *testing.T) {
	db := newPostgresDatabase(t)
	ctx := context.Background()

	rules := NewGormRuleRepository(db.DB)
	txs := NewGormTransactionRepository(db.DB)
	users := NewGormUserRepository(db.DB)

	require.NoError(t, rules.CreateBatch(ctx, collection.NewRules(1, []collection.Slot{{Weekday: 1, Time: "09:00"}, {Weekday: 3, Time: "15:00"}})))
	require.NoError(t, rules.CreateBatch(ctx, collection.NewRules(1, []collection.Slot{{Weekday: 1, Time: "09:00"}})))
	got, err := rules.FindByCafe(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("KST", 9*3600))
	require.NoError(t, txs.Create(ctx, collection.NewTransaction(1, 42, "kim", at, 100)))
	assert.Error(t, txs.Create(ctx, collection.NewTransaction(1, 42, "dup", at, 1)))

	list, err := txs.FindByCafe(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Time.Equal(at))

	require.NoError(t, db.DB.Model(&models.CollectTransactionModel{}).
		Where("id = ?", 42).Update("status", collection.StatusCompleted).Error)
	total, err := txs.SumCompletedAmount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), total)

	n, err := txs.DeleteByCafeAndID(ctx, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = txs.DeleteByCafeAndID(ctx, 1, 42)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = users.FindByID(ctx, 1)
	assert.ErrorIs(t, err, shared.ErrUserNotFound)
}
