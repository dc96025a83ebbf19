package order

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/grubbot/internal/core"
)

// Store owns the order lifecycle and read-only menu lookups. Orders are only
// ever created with status pending; fulfillment tooling moves them forward.
type Store struct {
	menu   core.MenuRepository
	orders core.OrdersRepository

	now   func() time.Time
	newID func() string
}

func NewStore(menu core.MenuRepository, orders core.OrdersRepository) *Store {
	return &Store{
		menu:   menu,
		orders: orders,
		now:    time.Now,
		newID:  NewOrderID,
	}
}

func (s *Store) CreateOrder(ctx context.Context, item core.MenuItem, quantity int) (core.Order, error) {
	if quantity <= 0 {
		return core.Order{}, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	order := core.Order{
		ID:        s.newID(),
		Item:      item.Name,
		Quantity:  quantity,
		Total:     item.Price * float64(quantity),
		Status:    core.OrderStatusPending,
		Timestamp: s.now().UTC(),
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return core.Order{}, err
	}
	return order, nil
}

func (s *Store) FindOrder(ctx context.Context, id string) (core.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// FindMenuItem matches case-insensitively after trimming and collapsing
// internal whitespace, so "margherita   pizza" still resolves.
func (s *Store) FindMenuItem(ctx context.Context, name string) (core.MenuItem, error) {
	return s.menu.FindByName(ctx, CollapseSpaces(name))
}

func (s *Store) ListAvailableMenu(ctx context.Context) ([]core.MenuItem, error) {
	return s.menu.ListAvailable(ctx)
}

// NewOrderID returns a 24-hex-character token, the identifier format users
// paste back into track commands.
func NewOrderID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("order id entropy unavailable: %v", err))
	}
	return hex.EncodeToString(buf)
}

func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
