package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"constraintsvc/internal/adapters/database"
	"constraintsvc/internal/config"
	"constraintsvc/internal/core/domain/schema"
	platformPostgres "constraintsvc/internal/platform/database/postgres"
	"constraintsvc/internal/platform/logger"
)

type RepositoryUnitTestSuite struct {
	suite.Suite
	mock       sqlmock.Sqlmock
	repository *Repository
	closeDB    func()
}

func (s *RepositoryUnitTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)

	s.mock = mock
	s.closeDB = func() { _ = db.Close() }
	s.repository = NewRepository(database.NewConnectedLifecycle(platformPostgres.Wrap(db), logger.NewNop()))
}

func (s *RepositoryUnitTestSuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
	s.closeDB()
}

func TestRepositoryUnitTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryUnitTestSuite))
}

var errConnReset = errors.New("connection reset by peer")

var createdAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func (s *RepositoryUnitTestSuite) TestGetByID() {
	rows := sqlmock.NewRows([]string{"id", "description", "document", "created_at"}).
		AddRow("profile", "user profile", "name: {presence: true}", createdAt)
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, description, document, created_at FROM schemas WHERE id = $1`)).
		WithArgs("profile").
		WillReturnRows(rows)

	got, err := s.repository.GetByID(context.Background(), "profile")

	s.Require().NoError(err)
	s.Equal("profile", got.ID)
	s.Equal("user profile", got.Description)
	s.Equal("name: {presence: true}", got.Document)
	s.Nil(got.Constraints)
	s.True(createdAt.Equal(got.CreatedAt))
}

func (s *RepositoryUnitTestSuite) TestGetByID_NotFound() {
	s.mock.ExpectQuery("SELECT id, description").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "document", "created_at"}))

	got, err := s.repository.GetByID(context.Background(), "missing")

	s.Nil(got)
	s.ErrorIs(err, schema.ErrSchemaNotFound)
}

func (s *RepositoryUnitTestSuite) TestSave() {
	sc := &schema.Schema{ID: "profile", Document: "doc", CreatedAt: createdAt}
	s.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO schemas (id, description, document, created_at) VALUES ($1, $2, $3, $4)`)).
		WithArgs("profile", "", "doc", createdAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	s.NoError(s.repository.Save(context.Background(), sc))
}

func (s *RepositoryUnitTestSuite) TestSave_AlreadyExists() {
	sc := &schema.Schema{ID: "profile", Document: "doc", CreatedAt: createdAt}
	s.mock.ExpectExec("INSERT INTO schemas").
		WithArgs("profile", "", "doc", createdAt).
		WillReturnError(&pq.Error{Code: "23505"})

	err := s.repository.Save(context.Background(), sc)

	var exists *schema.AlreadyExistsError
	s.Require().True(errors.As(err, &exists))
	s.Equal("profile", exists.ID)
}

func (s *RepositoryUnitTestSuite) TestList() {
	rows := sqlmock.NewRows([]string{"id", "description", "document", "created_at"}).
		AddRow("address", "", "a: {}", createdAt).
		AddRow("profile", "", "b: {}", createdAt)
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, description, document, created_at FROM schemas ORDER BY id`)).
		WillReturnRows(rows)

	list, err := s.repository.List(context.Background())

	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("address", list[0].ID)
	s.Equal("profile", list[1].ID)
}

func (s *RepositoryUnitTestSuite) TestDelete() {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "not found", affected: 0, wantErr: schema.ErrSchemaNotFound},
		{name: "driver error", execErr: errConnReset, wantErr: errConnReset},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			exec := s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM schemas WHERE id = $1`)).WithArgs("profile")
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := s.repository.Delete(context.Background(), "profile")

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
				return
			}
			s.NoError(err)
		})
	}
}

func (s *RepositoryUnitTestSuite) TestCreateTable() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("CREATE TABLE IF NOT EXISTS schemas").WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectExec("CREATE INDEX IF NOT EXISTS schemas_created_at_idx").WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	s.NoError(s.repository.CreateTable(context.Background()))
}

func (s *RepositoryUnitTestSuite) TestCreateTable_RollsBack() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec("CREATE TABLE IF NOT EXISTS schemas").WillReturnError(errConnReset)
	s.mock.ExpectRollback()

	s.ErrorIs(s.repository.CreateTable(context.Background()), errConnReset)
}

func TestRepository_NotConnected(t *testing.T) {
	repo := NewRepository(database.NewDatabaseLifecycle(&config.DatabaseConfig{}, logger.NewNop()))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "profile")
	assert.ErrorIs(t, err, database.ErrNotConnected)
	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, database.ErrNotConnected)
	assert.ErrorIs(t, repo.Save(ctx, &schema.Schema{ID: "profile"}), database.ErrNotConnected)
	assert.ErrorIs(t, repo.Delete(ctx, "profile"), database.ErrNotConnected)
	assert.ErrorIs(t, repo.CreateTable(ctx), database.ErrNotConnected)
}
