package store

import (
	"context"

	"github.com/MKhiriev/trade-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_repository_mock.go -package=mock

// JournalRepository persists journal cells.
type JournalRepository interface {
	// SaveCell stores cell.Labels for its key, replacing what was there.
	// Empty labels delete the row. The returned cell carries UpdatedAt.
	SaveCell(ctx context.Context, cell models.Cell) (models.Cell, error)
	// GetCell returns ErrCellNotFound when nothing is stored for key.
	GetCell(ctx context.Context, key models.CellKey) (models.Cell, error)
	// DeleteCell removes a cell; deleting a missing cell is not an error.
	DeleteCell(ctx context.Context, key models.CellKey) error
	// GetDay returns every stored cell of date.
	GetDay(ctx context.Context, date string) ([]models.Cell, error)
	// ListDays returns the dates with at least one cell, newest first.
	ListDays(ctx context.Context) ([]string, error)
	// DeleteDay removes all cells of date and reports how many were removed.
	DeleteDay(ctx context.Context, date string) (int64, error)
}
