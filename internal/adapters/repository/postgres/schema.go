package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"constraintsvc/internal/adapters/database"
	"constraintsvc/internal/core/domain/schema"
)

// Repository stores schema documents. Constraints are not persisted; callers
// decode Document when they need them.
type Repository struct {
	db *database.Lifecycle
}

func NewRepository(db *database.Lifecycle) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*schema.Schema, error) {
	query := `SELECT id, description, document, created_at FROM schemas WHERE id = $1`

	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	var s schema.Schema
	err = db.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.Description,
		&s.Document,
		&s.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, schema.ErrSchemaNotFound
		}
		return nil, err
	}

	s.CreatedAt = s.CreatedAt.UTC()
	return &s, nil
}

func (r *Repository) Save(ctx context.Context, s *schema.Schema) error {
	query := `INSERT INTO schemas (id, description, document, created_at) VALUES ($1, $2, $3, $4)`

	db, err := r.db.DB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, query, s.ID, s.Description, s.Document, s.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return &schema.AlreadyExistsError{ID: s.ID}
		}
		return err
	}

	return nil
}

func (r *Repository) List(ctx context.Context) ([]*schema.Schema, error) {
	query := `SELECT id, description, document, created_at FROM schemas ORDER BY id`

	db, err := r.db.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	schemas := make([]*schema.Schema, 0)
	for rows.Next() {
		var s schema.Schema
		if err := rows.Scan(&s.ID, &s.Description, &s.Document, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.CreatedAt = s.CreatedAt.UTC()
		schemas = append(schemas, &s)
	}

	return schemas, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM schemas WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return schema.ErrSchemaNotFound
	}
	return nil
}

// CreateTable applies the schema table and its index in one transaction.
func (r *Repository) CreateTable(ctx context.Context) error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}

	return db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range migrations {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schemas (
		id VARCHAR(64) PRIMARY KEY,
		description TEXT NOT NULL DEFAULT '',
		document TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS schemas_created_at_idx ON schemas (created_at)`,
}
