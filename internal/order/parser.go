package order

import (
	"regexp"
	"strconv"
	"strings"
)

// Order text is a restricted grammar, not full natural language:
// items are "<qty> <name>" clauses joined by " and ", toppings are
// "<topping list> for <pizza fragment>" clauses joined by " and ".
// Built at package level to avoid recompiling on every request.
var (
	itemPattern    = regexp.MustCompile(`(\d+)\s+([\w\s-]+?)(?:\sand\s|$)`)
	toppingPattern = regexp.MustCompile(`(.+?)\s+for\s+([\w\s-]+?)(?:\sand\s|$)`)
	toppingSplit   = regexp.MustCompile(`and|,`)
)

// ParseItems extracts (qty, name) pairs from text like
// "2 medium cheese burst and 1 garlic bread". A clause without a
// leading quantity produces no match and is skipped. Order is
// preserved and duplicate names stay as separate entries.
func ParseItems(text string) []ParsedItem {
	matches := itemPattern.FindAllStringSubmatch(text, -1)

	items := make([]ParsedItem, 0, len(matches))
	for _, m := range matches {
		qty, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		items = append(items, ParsedItem{
			Qty:  qty,
			Name: strings.ToLower(strings.TrimSpace(m[2])),
		})
	}
	return items
}

// ParseToppings extracts topping sets from text like
// "mushroom and olives for medium cheese burst and corn for large margherita".
// The left side of each "for" is split on "and"/"," into individual
// toppings; the right side becomes the fragment key matched against
// pizza names by substring inclusion. A repeated fragment overwrites
// the earlier entry's toppings, keeping its original position.
//
// Known limitation: the non-greedy left capture still mis-splits when a
// topping name itself contains the word "for".
func ParseToppings(text string) []ToppingSet {
	matches := toppingPattern.FindAllStringSubmatch(text, -1)

	sets := make([]ToppingSet, 0, len(matches))
	for _, m := range matches {
		parts := toppingSplit.Split(m[1], -1)
		toppings := make([]string, 0, len(parts))
		for _, p := range parts {
			toppings = append(toppings, strings.ToLower(strings.TrimSpace(p)))
		}

		fragment := strings.ToLower(strings.TrimSpace(m[2]))

		replaced := false
		for i := range sets {
			if sets[i].Fragment == fragment {
				sets[i].Toppings = toppings
				replaced = true
				break
			}
		}
		if !replaced {
			sets = append(sets, ToppingSet{Fragment: fragment, Toppings: toppings})
		}
	}
	return sets
}
