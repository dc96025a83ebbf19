package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sandevgo/grubbot/internal/core"
)

type MenuRepo struct {
	db *sql.DB
}

func NewMenuRepo(db *sql.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

func (r *MenuRepo) FindByName(ctx context.Context, name string) (core.MenuItem, error) {
	query := `SELECT name, description, category, price, available FROM menu WHERE name = ? COLLATE NOCASE`

	var item core.MenuItem
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&item.Name, &item.Description, &item.Category, &item.Price, &item.Available,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return core.MenuItem{}, core.ErrNotFound
	}
	if err != nil {
		return core.MenuItem{}, fmt.Errorf("%w: find menu item: %v", core.ErrStore, err)
	}
	return item, nil
}

func (r *MenuRepo) ListAvailable(ctx context.Context) ([]core.MenuItem, error) {
	query := `SELECT name, description, category, price, available FROM menu WHERE available = 1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list menu: %v", core.ErrStore, err)
	}
	defer rows.Close()

	var items []core.MenuItem
	for rows.Next() {
		var item core.MenuItem
		if err := rows.Scan(&item.Name, &item.Description, &item.Category, &item.Price, &item.Available); err != nil {
			return nil, fmt.Errorf("%w: scan menu item: %v", core.ErrStore, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list menu: %v", core.ErrStore, err)
	}
	return items, nil
}

func (r *MenuRepo) Upsert(ctx context.Context, item core.MenuItem) error {
	query := `INSERT INTO menu (name, description, category, price, available)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name COLLATE NOCASE) DO UPDATE SET
			description = excluded.description,
			category = excluded.category,
			price = excluded.price,
			available = excluded.available`

	if _, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.Category, item.Price, item.Available); err != nil {
		return fmt.Errorf("%w: upsert menu item: %v", core.ErrStore, err)
	}
	return nil
}
