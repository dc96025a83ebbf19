package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/grubbot/internal/core"
	"github.com/sandevgo/grubbot/pkg/log"
)

type TrackCommand struct {
	orders OrderService
}

func NewTrackCommand(orders OrderService) *TrackCommand {
	return &TrackCommand{orders: orders}
}

func (c *TrackCommand) Keyword() string { return "track" }

// Execute validates the identifier format before touching the store; a
// malformed id never becomes a lookup.
func (c *TrackCommand) Execute(ctx context.Context, input string) string {
	id := strings.TrimSpace(trimKeyword(input, "track"))
	if !isValidOrderID(id) {
		return replyInvalidOrderID
	}

	order, err := c.orders.FindOrder(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return replyOrderNotFound
	}
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("order_id", id).Msg("order lookup failed")
		return replyTrackApology
	}

	return fmt.Sprintf("Order Status:\n\n"+
		"• Item: %s\n"+
		"• Quantity: %d\n"+
		"• Status: %s\n"+
		"• Total: $%.2f\n"+
		"• Placed on: %s",
		order.Item, order.Quantity, order.Status, order.Total,
		order.Timestamp.UTC().Format("2006-01-02 15:04:05"))
}
