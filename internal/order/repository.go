package order

import (
	"context"
	"database/sql"
	"encoding/json"
)

type Repository interface {
	Create(ctx context.Context, o Order) (Order, error)
	GetAll(ctx context.Context) ([]Order, error)
	GetByUser(ctx context.Context, userID string) ([]Order, error)
	GetByID(ctx context.Context, id string) (Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = "id, user_id, name, phone, address, payment_method, transaction_id, items, total_amount, status, order_date"

func scanOrder(scan func(dest ...any) error) (Order, error) {
	var (
		o        Order
		itemsRaw []byte
	)
	err := scan(&o.ID, &o.UserID, &o.Name, &o.Phone, &o.Address,
		&o.PaymentMethod, &o.TransactionID, &itemsRaw, &o.TotalAmount,
		&o.Status, &o.OrderDate)
	if err != nil {
		return Order{}, err
	}

	if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *repository) Create(ctx context.Context, o Order) (Order, error) {
	itemsRaw, err := json.Marshal(o.Items)
	if err != nil {
		return Order{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, name, phone, address, payment_method, transaction_id, items, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+orderColumns,
		o.UserID, o.Name, o.Phone, o.Address, o.PaymentMethod,
		o.TransactionID, itemsRaw, o.TotalAmount, o.Status,
	)
	return scanOrder(row.Scan)
}

func (r *repository) GetAll(ctx context.Context) ([]Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY order_date DESC`)
}

func (r *repository) GetByUser(ctx context.Context, userID string) ([]Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY order_date DESC`,
		userID)
}

func (r *repository) queryOrders(ctx context.Context, query string, args ...any) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	o, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
