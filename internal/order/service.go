package order

import (
	"strings"

	"github.com/krishna-v-thinkwik/invoicesyntaxwithdescription/internal/catalog"
)

type Service struct {
	catalog *catalog.Catalog
}

func NewService(c *catalog.Catalog) *Service {
	return &Service{catalog: c}
}

// PriceOrder turns the three free-text request fields into priced line
// items: pizzas first in parse order, then additional items in parse
// order. Unknown names price at 0 instead of failing, so an order
// always comes back as a full line-item list.
func (s *Service) PriceOrder(pizzaText, toppingText, additionalText string) []LineItem {
	pizzas := ParseItems(pizzaText)
	toppingSets := ParseToppings(toppingText)

	result := make([]LineItem, 0, len(pizzas))

	for _, pizza := range pizzas {
		toppings := matchToppings(pizza.Name, toppingSets)

		unitPrice := s.catalog.Lookup(pizza.Name)
		for _, t := range toppings {
			unitPrice += s.catalog.Lookup(t)
		}

		description := BuildDescription(pizza.Name, toppings)

		result = append(result, LineItem{
			Name:        pizza.Name,
			Currency:    Currency,
			Amount:      unitPrice * pizza.Qty,
			Qty:         pizza.Qty,
			Description: &description,
		})
	}

	for _, item := range ParseItems(additionalText) {
		result = append(result, LineItem{
			Name:     item.Name,
			Currency: Currency,
			Amount:   s.catalog.Lookup(item.Name) * item.Qty,
			Qty:      item.Qty,
		})
	}

	return result
}

// matchToppings finds the first topping set whose fragment is contained
// in the pizza name. This is a heuristic join: when pizza names overlap
// (two pizzas of the same size, say) a fragment can attach to the wrong
// pizza, and we keep that behavior rather than guessing intent.
func matchToppings(pizzaName string, sets []ToppingSet) []string {
	for _, set := range sets {
		if strings.Contains(pizzaName, set.Fragment) {
			return set.Toppings
		}
	}
	return nil
}
