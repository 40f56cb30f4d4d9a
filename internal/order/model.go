package order

// Currency is fixed; the catalog carries USD prices only.
const Currency = "USD"

// LineItem is one priced entry in the response: a pizza or an
// additional item. Description is a pointer so that additional items
// omit the field entirely while pizzas always carry it, even when empty.
type LineItem struct {
	Name        string  `json:"name"`
	Currency    string  `json:"currency"`
	Amount      int     `json:"amount"`
	Qty         int     `json:"qty"`
	Description *string `json:"description,omitempty"`
}

// ParsedItem is one "<qty> <name>" clause pulled out of order text.
type ParsedItem struct {
	Qty  int
	Name string
}

// ToppingSet associates an ordered topping list with a pizza-name
// fragment. Sets are kept in a slice, not a map: the topping-to-pizza
// join is first-match-wins over the fragments in the order they
// appeared in the request text, and Go maps do not keep that order.
type ToppingSet struct {
	Fragment string
	Toppings []string
}
