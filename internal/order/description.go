package order

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type attributeRule struct {
	term  string
	label string
}

// First match wins within each group. Crust rules are ordered most
// specific first so a longer term is never shadowed by a shorter one.
var (
	sizeRules = []attributeRule{
		{"regular", "Size : Regular"},
		{"medium", "Size : Medium"},
		{"large", "Size : Large"},
	}

	crustRules = []attributeRule{
		{"cheese burst", "Burst : Cheese Burst"},
		{"fresh pan pizza", "Crust : Fresh Pan Pizza"},
		{"wheat thin crust", "Crust : Wheat Thin Crust"},
		{"new hand tossed", "Crust : New Hand Tossed"},
		{"classic hand tossed", "Crust : Classic Hand Tossed"},
	}
)

// BuildDescription renders the human-readable attribute string for a
// pizza: size, crust/burst type, and toppings, joined by " , ".
// Attributes are detected by substring containment in the normalized
// pizza name. Returns "" when nothing matches and no toppings exist.
func BuildDescription(pizzaName string, toppings []string) string {
	var parts []string

	for _, rule := range sizeRules {
		if strings.Contains(pizzaName, rule.term) {
			parts = append(parts, rule.label)
			break
		}
	}

	for _, rule := range crustRules {
		if strings.Contains(pizzaName, rule.term) {
			parts = append(parts, rule.label)
			break
		}
	}

	if len(toppings) > 0 {
		caser := cases.Title(language.English)
		titled := make([]string, len(toppings))
		for i, t := range toppings {
			titled[i] = caser.String(t)
		}
		parts = append(parts, "Toppings : "+strings.Join(titled, ", "))
	}

	return strings.Join(parts, " , ")
}
