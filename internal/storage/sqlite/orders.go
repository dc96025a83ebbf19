package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sandevgo/grubbot/internal/core"
)

type OrdersRepo struct {
	db *sql.DB
}

func NewOrdersRepo(db *sql.DB) *OrdersRepo {
	return &OrdersRepo{db: db}
}

func (r *OrdersRepo) Insert(ctx context.Context, order core.Order) error {
	query := `INSERT INTO orders (id, item, quantity, total, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		order.ID, order.Item, order.Quantity, order.Total, string(order.Status), order.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("%w: insert order: %v", core.ErrStore, err)
	}
	return nil
}

func (r *OrdersRepo) FindByID(ctx context.Context, id string) (core.Order, error) {
	query := `SELECT id, item, quantity, total, status, created_at FROM orders WHERE id = ?`

	var order core.Order
	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.Item, &order.Quantity, &order.Total, &status, &order.Timestamp,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Order{}, core.ErrNotFound
	}
	if err != nil {
		return core.Order{}, fmt.Errorf("%w: find order: %v", core.ErrStore, err)
	}
	order.Status = core.OrderStatus(status)
	return order, nil
}
