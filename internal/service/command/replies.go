package command

// Every inbound message yields exactly one of these or a formatted variant;
// no command is ever silently dropped.
const (
	replyWelcome = "Welcome to our Food Bot! 🍽️\n\n" +
		"Available commands:\n" +
		"• Type 'menu' to see our menu\n" +
		"• Type 'order <item> x<quantity>' to place an order\n" +
		"• Type 'track <order-id>' to track your order"

	replyGenericApology = "Sorry, I couldn't process your request. Please try again."
	replyMenuApology    = "Sorry, I couldn't retrieve the menu right now. Please try again later."
	replyOrderApology   = "Sorry, I couldn't process your order. Please try again."
	replyTrackApology   = "Sorry, I couldn't retrieve your order status. Please try again later."

	replyOrderUsage = "Please use the format: order <item> x<quantity>\n" +
		"Example: order Margherita Pizza x2"
	replyQuantityNotNumber = "Please specify a valid quantity number"
	replyQuantityTooSmall  = "Please specify a quantity greater than 0"

	replyInvalidOrderID  = "Please provide a valid order ID"
	replyOrderNotFound   = "Order not found. Please check the ID and try again."
	replyMenuHeader      = "🍽️ Our Menu:\n\n"
	replyMenuOrderFooter = "\nTo order, type: order <item> x<quantity>"
)
