package catalog

import (
	"context"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Row is one raw (name, price) pair as delivered by a Source.
// Prices arrive as strings because the sheet returns untyped cells.
type Row struct {
	Name  string
	Price string
}

// Source delivers the raw price rows. Implementations: Google Sheets
// (production), Postgres, and a static in-memory source for tests.
type Source interface {
	Rows(ctx context.Context) ([]Row, error)
}

// Catalog is the read-only item name -> unit price mapping.
// It is built once at startup and never mutated afterwards, so
// concurrent lookups need no locking.
type Catalog struct {
	prices map[string]int
}

// Load fetches rows from the source and builds the catalog.
// Rows with an empty name or a price that does not parse as an integer
// are skipped with a warning rather than failing the whole load.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]int, len(rows))
	for _, row := range rows {
		name := Normalize(row.Name)
		if name == "" {
			continue
		}
		price, err := strconv.Atoi(strings.TrimSpace(row.Price))
		if err != nil {
			log.Warnf("catalog: skipping %q, bad price %q", row.Name, row.Price)
			continue
		}
		prices[name] = price
	}

	return &Catalog{prices: prices}, nil
}

// FromMap builds a catalog directly from a name -> price map,
// normalizing the keys. Used for fixed catalogs in tests.
func FromMap(prices map[string]int) *Catalog {
	normalized := make(map[string]int, len(prices))
	for name, price := range prices {
		normalized[Normalize(name)] = price
	}
	return &Catalog{prices: normalized}
}

// Lookup returns the unit price for a normalized item name,
// defaulting to 0 when the name is unknown.
func (c *Catalog) Lookup(name string) int {
	return c.prices[Normalize(name)]
}

// Len reports how many priced items the catalog holds.
func (c *Catalog) Len() int {
	return len(c.prices)
}

// Normalize lowercases and trims an item name, matching how
// catalog keys and parsed order text are compared everywhere.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
