package core

import "time"

const (
	GrubName    = "GrubBot"
	GrubVersion = "0.1.0"
)

// ItemKindText is the only actionable inbox item kind; everything else
// (likes, media, reactions) is skipped by the poller.
const ItemKindText = "text"

// Thread is one DM conversation between the bot and one or more users.
type Thread struct {
	ID    string
	Users []ThreadUser
}

type ThreadUser struct {
	ID       string
	Username string
}

// InboxItem is a single inbound message unit fetched from the gateway.
// Immutable once fetched; never stored verbatim.
type InboxItem struct {
	ID       string
	ThreadID string
	UserID   string
	Kind     string
	Text     string
}

// MenuItem is read-only from the bot's perspective; the seed command and
// external tooling are the only writers.
type MenuItem struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Available   bool
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is created exactly once per successful order command. The bot only
// ever sets status "pending"; fulfillment tooling moves it forward.
type Order struct {
	ID        string
	Item      string
	Quantity  int
	Total     float64
	Status    OrderStatus
	Timestamp time.Time
}
