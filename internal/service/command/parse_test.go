package command

import "testing"

func TestSplitOrderArgs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantItem string
		wantQty  string
		wantOK   bool
	}{
		{
			name:     "simple order",
			input:    "order Margherita Pizza x2",
			wantItem: "Margherita Pizza",
			wantQty:  "2",
			wantOK:   true,
		},
		{
			name:     "space before quantity",
			input:    "order Chicken Burger x 3",
			wantItem: "Chicken Burger",
			wantQty:  "3",
			wantOK:   true,
		},
		{
			name:     "item name containing the order keyword survives",
			input:    "order Reorder Special x1",
			wantItem: "Reorder Special",
			wantQty:  "1",
			wantOK:   true,
		},
		{
			name:     "item name containing x splits at the last separator",
			input:    "order Xtra Sauce Box x3",
			wantItem: "Xtra Sauce Box",
			wantQty:  "3",
			wantOK:   true,
		},
		{
			name:   "missing separator",
			input:  "order Margherita Pizza",
			wantOK: false,
		},
		{
			name:   "missing item",
			input:  "order x2",
			wantOK: false,
		},
		{
			name:   "missing quantity",
			input:  "order Pizza x",
			wantOK: false,
		},
		{
			name:   "keyword only",
			input:  "order",
			wantOK: false,
		},
		{
			name:     "uppercase keyword",
			input:    "ORDER Margherita Pizza x2",
			wantItem: "Margherita Pizza",
			wantQty:  "2",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, qty, ok := splitOrderArgs(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if item != tt.wantItem {
				t.Errorf("item = %q, want %q", item, tt.wantItem)
			}
			if qty != tt.wantQty {
				t.Errorf("quantity = %q, want %q", qty, tt.wantQty)
			}
		})
	}
}

func TestIsValidOrderID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"6874faceb00c1234deadbeef", true},
		{"6874FACEB00C1234DEADBEEF", true},
		{"abc", false},
		{"", false},
		{"6874faceb00c1234deadbee", false},   // 23 chars
		{"6874faceb00c1234deadbeef0", false}, // 25 chars
		{"6874faceb00c1234deadbeeg", false},  // non-hex
	}
	for _, tt := range tests {
		if got := isValidOrderID(tt.id); got != tt.want {
			t.Errorf("isValidOrderID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
