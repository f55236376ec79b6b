//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"constraintsvc/internal/adapters/database"
	"constraintsvc/internal/config"
	"constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/platform/logger"
)

type RepositoryTestSuite struct {
	suite.Suite
	db         *database.Lifecycle
	repository *Repository
	pg         *postgres.PostgresContainer
}

func (s *RepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase("test-db"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	s.Require().NoError(err)
	s.pg = pg

	host, err := pg.Host(ctx)
	s.Require().NoError(err)
	port, err := pg.MappedPort(ctx, "5432")
	s.Require().NoError(err)

	dbConfig := &config.DatabaseConfig{
		Postgres: config.PostgresConfig{
			Host:     host,
			Port:     port.Int(),
			User:     "postgres",
			Password: "postgres",
			Database: "test-db",
			SSLMode:  "disable",
		},
	}

	s.db = database.NewDatabaseLifecycle(dbConfig, logger.NewNop())
	s.Require().NoError(s.db.Start(ctx))

	s.repository = NewRepository(s.db)
	s.Require().NoError(s.repository.CreateTable(ctx))
}

func (s *RepositoryTestSuite) SetupTest() {
	_, err := s.db.Connection().ExecContext(context.Background(), "TRUNCATE TABLE schemas")
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) TearDownSuite() {
	ctx := context.Background()
	s.Require().NoError(s.db.Stop(ctx))
	s.Require().NoError(s.pg.Terminate(ctx))
}

func (s *RepositoryTestSuite) TestSaveGetListDelete() {
	ctx := context.Background()
	sc := &schema.Schema{
		ID:          "profile",
		Description: "Профиль 🚀",
		Document:    "name:\n  presence: true\n",
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	s.Require().NoError(s.repository.Save(ctx, sc))

	got, err := s.repository.GetByID(ctx, sc.ID)
	s.Require().NoError(err)
	s.Equal(sc.Description, got.Description)
	s.Equal(sc.Document, got.Document)
	s.True(sc.CreatedAt.Equal(got.CreatedAt))

	list, err := s.repository.List(ctx)
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(s.repository.Delete(ctx, sc.ID))
	_, err = s.repository.GetByID(ctx, sc.ID)
	s.True(errors.Is(err, schema.ErrSchemaNotFound))
}

func (s *RepositoryTestSuite) TestSave_AlreadyExists() {
	ctx := context.Background()
	sc := &schema.Schema{ID: "duplicate", Document: "a: {}", CreatedAt: time.Now().UTC()}

	s.Require().NoError(s.repository.Save(ctx, sc))

	err := s.repository.Save(ctx, sc)
	var exists *schema.AlreadyExistsError
	s.Require().True(errors.As(err, &exists))
	s.Equal(sc.ID, exists.ID)
}

func (s *RepositoryTestSuite) TestSave_SQLInjectionPrevention() {
	ctx := context.Background()
	sc := &schema.Schema{
		ID:        "injection",
		Document:  "'; DROP TABLE schemas; --",
		CreatedAt: time.Now().UTC(),
	}

	s.Require().NoError(s.repository.Save(ctx, sc))

	var count int
	err := s.db.Connection().QueryRowContext(ctx, "SELECT COUNT(*) FROM schemas").Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
