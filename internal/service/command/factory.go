package command

// NewHandlers wires the full command set against the order service.
func NewHandlers(orders OrderService) []Handler {
	return []Handler{
		NewMenuCommand(orders),
		NewOrderCommand(orders),
		NewTrackCommand(orders),
	}
}
