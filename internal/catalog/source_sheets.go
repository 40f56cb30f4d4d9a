package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads the price sheet over the Google Sheets API using
// a service account. This is the production catalog source.
type SheetsSource struct {
	credentialsJSON string
	sheetID         string
	sheetName       string
}

func NewSheetsSource() *SheetsSource {
	sheetName := os.Getenv("SHEET_NAME")
	if sheetName == "" {
		sheetName = "pizza_price"
	}
	return &SheetsSource{
		credentialsJSON: os.Getenv("SERVICE_ACCOUNT_JSON"),
		sheetID:         os.Getenv("SHEET_ID"),
		sheetName:       sheetName,
	}
}

// Rows fetches columns A:B starting at row 2 (row 1 is the header).
func (s *SheetsSource) Rows(ctx context.Context) ([]Row, error) {
	if s.credentialsJSON == "" {
		return nil, errors.New("missing SERVICE_ACCOUNT_JSON")
	}
	if s.sheetID == "" {
		return nil, errors.New("missing SHEET_ID")
	}

	svc, err := sheets.NewService(
		ctx,
		option.WithCredentialsJSON([]byte(s.credentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	readRange := fmt.Sprintf("%s!A2:B", s.sheetName)
	resp, err := svc.Spreadsheets.Values.Get(s.sheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets read %s: %w", readRange, err)
	}

	rows := make([]Row, 0, len(resp.Values))
	for _, cells := range resp.Values {
		if len(cells) < 2 {
			continue
		}
		rows = append(rows, Row{
			Name:  fmt.Sprint(cells[0]),
			Price: fmt.Sprint(cells[1]),
		})
	}
	return rows, nil
}
