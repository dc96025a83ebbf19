package command

import (
	"regexp"
	"strings"
)

// orderIDPattern is the fixed identifier format handed out by the order store.
var orderIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

func isValidOrderID(id string) bool {
	return orderIDPattern.MatchString(id)
}

// splitOrderArgs tokenizes "order <item> x<quantity>". Only the leading
// keyword is stripped, and the item/quantity split happens at the LAST " x"
// separator, so item names containing "order" or "x" survive intact
// (e.g. "order Xtra Sauce Box x3").
func splitOrderArgs(input string) (item, quantity string, ok bool) {
	rest := strings.TrimSpace(trimKeyword(input, "order"))

	idx := strings.LastIndex(strings.ToLower(rest), " x")
	if idx < 0 {
		return "", "", false
	}

	item = strings.TrimSpace(rest[:idx])
	quantity = strings.TrimSpace(rest[idx+2:])
	if item == "" || quantity == "" {
		return "", "", false
	}
	return item, quantity, true
}

// trimKeyword removes the leading command keyword, case-insensitively.
func trimKeyword(input, keyword string) string {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) >= len(keyword) && strings.EqualFold(trimmed[:len(keyword)], keyword) {
		return trimmed[len(keyword):]
	}
	return trimmed
}
