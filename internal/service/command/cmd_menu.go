package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/grubbot/pkg/log"
)

type MenuCommand struct {
	orders OrderService
}

func NewMenuCommand(orders OrderService) *MenuCommand {
	return &MenuCommand{orders: orders}
}

func (c *MenuCommand) Keyword() string { return "menu" }

// Execute lists all available items. An empty menu is not an error: the
// header still goes out with no item lines.
func (c *MenuCommand) Execute(ctx context.Context, input string) string {
	items, err := c.orders.ListAvailableMenu(ctx)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to load menu")
		return replyMenuApology
	}

	var b strings.Builder
	b.WriteString(replyMenuHeader)
	for _, item := range items {
		fmt.Fprintf(&b, "• %s - $%.2f\n", item.Name, item.Price)
		fmt.Fprintf(&b, "  %s\n\n", item.Description)
	}
	b.WriteString(replyMenuOrderFooter)
	return b.String()
}
