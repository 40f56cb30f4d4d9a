package catalog

import "context"

// StaticSource serves a fixed row set from memory. Used in tests.
type StaticSource struct {
	rows []Row
}

func NewStaticSource(rows []Row) *StaticSource {
	return &StaticSource{rows: rows}
}

func (s *StaticSource) Rows(_ context.Context) ([]Row, error) {
	return s.rows, nil
}
