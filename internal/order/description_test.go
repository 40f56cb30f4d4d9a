package order

import "testing"

func TestBuildDescription(t *testing.T) {
	cases := []struct {
		name     string
		pizza    string
		toppings []string
		expected string
	}{
		{
			name:     "size only",
			pizza:    "large pepperoni",
			expected: "Size : Large",
		},
		{
			name:     "size and burst",
			pizza:    "medium cheese burst",
			expected: "Size : Medium , Burst : Cheese Burst",
		},
		{
			name:     "size and crust",
			pizza:    "regular new hand tossed",
			expected: "Size : Regular , Crust : New Hand Tossed",
		},
		{
			name:     "classic hand tossed",
			pizza:    "large classic hand tossed",
			expected: "Size : Large , Crust : Classic Hand Tossed",
		},
		{
			name:     "wheat thin crust",
			pizza:    "medium wheat thin crust",
			expected: "Size : Medium , Crust : Wheat Thin Crust",
		},
		{
			name:     "fresh pan pizza",
			pizza:    "regular fresh pan pizza",
			expected: "Size : Regular , Crust : Fresh Pan Pizza",
		},
		{
			name:     "everything",
			pizza:    "medium cheese burst",
			toppings: []string{"mushroom", "olives"},
			expected: "Size : Medium , Burst : Cheese Burst , Toppings : Mushroom, Olives",
		},
		{
			name:     "toppings only",
			pizza:    "pepperoni",
			toppings: []string{"corn"},
			expected: "Toppings : Corn",
		},
		{
			name:     "multi word topping",
			pizza:    "pepperoni",
			toppings: []string{"extra cheese"},
			expected: "Toppings : Extra Cheese",
		},
		{
			name:     "no attributes",
			pizza:    "margherita",
			expected: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildDescription(tc.pizza, tc.toppings)
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestBuildDescriptionFirstSizeWins(t *testing.T) {
	// "regular" is tested before "large"; a name carrying both keeps
	// only the first match.
	got := BuildDescription("regular large combo", nil)
	if got != "Size : Regular" {
		t.Fatalf("expected first size rule to win, got %q", got)
	}
}
