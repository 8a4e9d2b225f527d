package category

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"methakadai-be/internal/product"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryExists    = errors.New("category already exists")
	ErrProtectedCategory = errors.New("the default category cannot be deleted")
	ErrNameRequired      = errors.New("category name is required")
)

type Repository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
	// DeleteWithReassign removes the category and moves its products to the
	// default category. Returns the number of products reassigned.
	DeleteWithReassign(ctx context.Context, name string) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *repository) Add(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES ($1)`, name)
	if err != nil && strings.Contains(err.Error(), "categories_pkey") {
		return ErrCategoryExists
	}
	return err
}

func (r *repository) DeleteWithReassign(ctx context.Context, name string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE name = $1`, name)
	if err != nil {
		return 0, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrCategoryNotFound
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE products SET category = $2 WHERE category = $1`,
		name, product.DefaultCategory)
	if err != nil {
		return 0, err
	}
	moved, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(moved), nil
}
