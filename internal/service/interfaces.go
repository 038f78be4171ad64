package service

import (
	"context"

	"github.com/MKhiriev/trade-journal/internal/presets"
	"github.com/MKhiriev/trade-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=JournalServiceWrapper

// PresetService exposes the preset set resolved at startup. It never changes
// while the process runs.
type PresetService interface {
	Presets(ctx context.Context) models.PresetSet
	Origin(ctx context.Context) presets.Origin
	Resolution(ctx context.Context) presets.Resolution
	Layout(ctx context.Context) models.Layout
}

// JournalService edits the labels of journal cells.
type JournalService interface {
	GetDay(ctx context.Context, date string) (models.Day, error)
	ListDays(ctx context.Context) ([]string, error)
	GetCell(ctx context.Context, key models.CellKey) (models.Cell, error)

	// SetLabels replaces the labels of a cell. Labels are trimmed, blanks are
	// dropped and duplicates removed keeping the first occurrence.
	SetLabels(ctx context.Context, key models.CellKey, labels []string) (models.Cell, error)
	// AddLabel appends label unless the cell already has it.
	AddLabel(ctx context.Context, key models.CellKey, label string) (models.Cell, error)
	// RemoveLabel drops label from the cell; ErrLabelNotFound if absent.
	RemoveLabel(ctx context.Context, key models.CellKey, label string) (models.Cell, error)
	ClearCell(ctx context.Context, key models.CellKey) error
	DeleteDay(ctx context.Context, date string) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// JournalServiceWrapper defines middleware composition for JournalService.
// Implementations wrap an existing JournalService to add behavior such as
// logging or validating.
type JournalServiceWrapper interface {
	Wrap(JournalService) JournalService // returns a decorated JournalService applying additional behavior
}
