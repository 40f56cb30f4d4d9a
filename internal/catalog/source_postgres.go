package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads price rows from the item_prices table,
// for deployments that keep the catalog in Postgres instead of a sheet.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Rows(ctx context.Context) ([]Row, error) {
	query := `SELECT name, price::text FROM item_prices ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.Name, &row.Price); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
