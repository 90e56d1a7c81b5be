package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"results_api/internal/domain"
	"results_api/internal/domain/entity"
	"results_api/pkg/errcodes"
	"results_api/pkg/lox"
)

// Connector выдаёт соединение на время одного запроса.
type Connector interface {
	Acquire(ctx context.Context) (*sqlx.DB, error)
	Release(ctx context.Context, db *sqlx.DB)
}

type ResultRepository struct {
	conn Connector
}

// NewResultRepository создаёт новый экземпляр репозитория.
func NewResultRepository(conn Connector) *ResultRepository {
	return &ResultRepository{conn: conn}
}

// withDB выполняет функцию на выданном соединении и возвращает его.
func (r *ResultRepository) withDB(ctx context.Context, fn func(db *sqlx.DB) error) error {
	db, err := r.conn.Acquire(ctx)
	if err != nil {
		return domain.WrapError(err, errcodes.DatabaseError, "failed to connect")
	}
	defer r.conn.Release(ctx, db)

	return fn(db)
}

// List возвращает все результаты, новые первыми.
func (r *ResultRepository) List(ctx context.Context) ([]entity.Result, error) {
	query := `
		SELECT id, name, phone, company_name, liked_items, noped_items, created_at
		FROM results
		ORDER BY created_at DESC, id DESC`

	var schemas []resultSchema

	err := r.withDB(ctx, func(db *sqlx.DB) error {
		if err := db.SelectContext(ctx, &schemas, query); err != nil {
			return domain.WrapError(err, errcodes.DatabaseError, "failed to select results")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	results, err := lox.MapErr(schemas, func(s resultSchema) (entity.Result, error) {
		return s.toDomain()
	})
	if err != nil {
		return nil, fmt.Errorf("toDomain: %w", err)
	}

	return results, nil
}

// Create сохраняет одну запись.
func (r *ResultRepository) Create(ctx context.Context, submission entity.Submission) error {
	liked, err := submission.Liked.Text()
	if err != nil {
		return fmt.Errorf("liked.Text: %w", err)
	}

	noped, err := submission.Noped.Text()
	if err != nil {
		return fmt.Errorf("noped.Text: %w", err)
	}

	query := `
		INSERT INTO results (name, phone, company_name, liked_items, noped_items)
		VALUES (?, ?, ?, ?, ?)`

	return r.withDB(ctx, func(db *sqlx.DB) error {
		if _, err := db.ExecContext(ctx, db.Rebind(query),
			submission.Name, submission.Phone, submission.Company, liked, noped,
		); err != nil {
			return domain.WrapError(err, errcodes.DatabaseError, "failed to insert result")
		}
		return nil
	})
}

// DeleteAll удаляет все записи и возвращает их количество.
func (r *ResultRepository) DeleteAll(ctx context.Context) (int64, error) {
	var deleted int64

	err := r.withDB(ctx, func(db *sqlx.DB) error {
		res, err := db.ExecContext(ctx, `DELETE FROM results`)
		if err != nil {
			return domain.WrapError(err, errcodes.DatabaseError, "failed to delete results")
		}

		deleted, err = res.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.DatabaseError, "failed to count deleted results")
		}

		return nil
	})

	return deleted, err
}
