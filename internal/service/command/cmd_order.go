package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sandevgo/grubbot/internal/core"
	"github.com/sandevgo/grubbot/pkg/log"
)

type OrderCommand struct {
	orders OrderService
}

func NewOrderCommand(orders OrderService) *OrderCommand {
	return &OrderCommand{orders: orders}
}

func (c *OrderCommand) Keyword() string { return "order" }

func (c *OrderCommand) Execute(ctx context.Context, input string) string {
	logger := log.FromCtx(ctx)

	itemName, quantityText, ok := splitOrderArgs(input)
	if !ok {
		return replyOrderUsage
	}

	quantity, err := strconv.Atoi(quantityText)
	if err != nil {
		return replyQuantityNotNumber
	}
	if quantity <= 0 {
		return replyQuantityTooSmall
	}

	menuItem, err := c.orders.FindMenuItem(ctx, itemName)
	if errors.Is(err, core.ErrNotFound) {
		return fmt.Sprintf("Sorry, '%s' is not on our menu. Type 'menu' to see available items.", itemName)
	}
	if err != nil {
		logger.Error().Err(err).Str("item", itemName).Msg("menu lookup failed")
		return replyOrderApology
	}

	order, err := c.orders.CreateOrder(ctx, menuItem, quantity)
	if err != nil {
		logger.Error().Err(err).Str("item", menuItem.Name).Int("quantity", quantity).Msg("failed to create order")
		return replyOrderApology
	}

	logger.Info().Str("order_id", order.ID).Str("item", order.Item).Int("quantity", order.Quantity).Msg("order placed")

	return fmt.Sprintf("Order received! 🎉\n\n"+
		"Order details:\n"+
		"• %dx %s\n"+
		"• Total: $%.2f\n\n"+
		"Your order ID is: %s\n"+
		"Track your order with: track %s",
		order.Quantity, order.Item, order.Total, order.ID, order.ID)
}
