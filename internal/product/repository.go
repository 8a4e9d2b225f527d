package product

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = "id, name, price, mrp, size, material, warranty, category, images, variants, description"

func scanProduct(scan func(dest ...any) error) (Product, error) {
	var (
		p           Product
		variantsRaw []byte
	)
	err := scan(&p.ID, &p.Name, &p.Price, &p.MRP, &p.Size, &p.Material,
		&p.Warranty, &p.Category, pq.Array(&p.Images), &variantsRaw, &p.Description)
	if err != nil {
		return Product{}, err
	}

	if len(variantsRaw) > 0 {
		if err := json.Unmarshal(variantsRaw, &p.Variants); err != nil {
			return Product{}, err
		}
	}
	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
	return p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *repository) Create(ctx context.Context, p Product) (Product, error) {
	variantsRaw, err := json.Marshal(p.Variants)
	if err != nil {
		return Product{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, price, mrp, size, material, warranty, category, images, variants, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+productColumns,
		p.Name, p.Price, p.MRP, p.Size, p.Material, p.Warranty, p.Category,
		pq.Array(p.Images), variantsRaw, p.Description,
	)
	return scanProduct(row.Scan)
}

func (r *repository) Update(ctx context.Context, p Product) (Product, error) {
	variantsRaw, err := json.Marshal(p.Variants)
	if err != nil {
		return Product{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE products SET
			name = $2, price = $3, mrp = $4, size = $5, material = $6,
			warranty = $7, category = $8, images = $9, variants = $10, description = $11
		WHERE id = $1
		RETURNING `+productColumns,
		p.ID, p.Name, p.Price, p.MRP, p.Size, p.Material, p.Warranty,
		p.Category, pq.Array(p.Images), variantsRaw, p.Description,
	)

	updated, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return Product{}, ErrProductNotFound
	}
	return updated, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}
