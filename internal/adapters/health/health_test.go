package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"constraintsvc/internal/adapters/database"
	"constraintsvc/internal/config"
	"constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/core/ports/mocks"
	platformPostgres "constraintsvc/internal/platform/database/postgres"
	platformRedis "constraintsvc/internal/platform/database/redis"
	"constraintsvc/internal/platform/health"
	"constraintsvc/internal/platform/logger"
)

var (
	_ health.Checker = (*StoreChecker)(nil)
	_ health.Checker = (*DatabaseChecker)(nil)
	_ health.Checker = (*RedisChecker)(nil)
)

func TestStoreChecker_Check(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		repo := mocks.NewMockSchemaRepository(t)
		repo.On("List", mock.Anything).Return([]*schema.Schema{{ID: "a"}, {ID: "b"}}, nil).Once()

		checker := NewStoreChecker(repo, "schema_store")
		result := checker.Check(context.Background())

		assert.Equal(t, "schema_store", checker.Name())
		assert.Equal(t, health.StatusHealthy, result.Status)
		assert.Equal(t, "2 schemas stored", result.Message)
	})

	t.Run("store error", func(t *testing.T) {
		repo := mocks.NewMockSchemaRepository(t)
		repo.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		result := NewStoreChecker(repo, "schema_store").Check(context.Background())

		assert.Equal(t, health.StatusUnhealthy, result.Status)
		assert.Equal(t, "connection refused", result.Error)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := NewStoreChecker(mocks.NewMockSchemaRepository(t), "schema_store").Check(ctx)

		assert.Equal(t, health.StatusUnhealthy, result.Status)
		assert.Equal(t, context.Canceled.Error(), result.Error)
	})
}

func TestDatabaseChecker_Check_NoConnection(t *testing.T) {
	db := database.NewDatabaseLifecycle(&config.DatabaseConfig{}, logger.NewNop())

	result := NewDatabaseChecker(db, "database").Check(context.Background())

	assert.Equal(t, health.StatusUnhealthy, result.Status)
	assert.Equal(t, database.ErrNotConnected.Error(), result.Message)
}

func TestDatabaseChecker_Check_Ping(t *testing.T) {
	sqlDB, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = sqlDB.Close() }()

	lifecycle := database.NewConnectedLifecycle(platformPostgres.Wrap(sqlDB), logger.NewNop())
	checker := NewDatabaseChecker(lifecycle, "database")

	sqlMock.ExpectPing()
	result := checker.Check(context.Background())
	assert.Equal(t, health.StatusHealthy, result.Status)
	assert.Contains(t, result.Message, "in use")

	sqlMock.ExpectPing().WillReturnError(errors.New("server closed the connection"))
	result = checker.Check(context.Background())
	assert.Equal(t, health.StatusUnhealthy, result.Status)
	assert.Equal(t, "server closed the connection", result.Error)

	require.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRedisChecker_Check(t *testing.T) {
	server := miniredis.RunT(t)
	client, err := platformRedis.New("redis://" + server.Addr())
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	checker := NewRedisChecker(client, "redis", time.Second)

	result := checker.Check(context.Background())
	assert.Equal(t, "redis", checker.Name())
	assert.Equal(t, health.StatusHealthy, result.Status)
	assert.Contains(t, result.Message, "idle")

	server.Close()
	result = checker.Check(context.Background())
	assert.Equal(t, health.StatusUnhealthy, result.Status)
	assert.Equal(t, "ping failed", result.Message)
	assert.NotEmpty(t, result.Error)
}
