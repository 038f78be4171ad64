package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/store"
	"github.com/MKhiriev/trade-journal/models"
)

type journalService struct {
	repository store.JournalRepository

	logger *logger.Logger
}

func NewJournalService(repository store.JournalRepository, logger *logger.Logger) JournalService {
	logger.Debug().Msg("creating journal service...")

	return &journalService{
		repository: repository,
		logger:     logger,
	}
}

func (s *journalService) GetDay(ctx context.Context, date string) (models.Day, error) {
	cells, err := s.repository.GetDay(ctx, date)
	if err != nil {
		return models.Day{}, fmt.Errorf("error getting journal day %s: %w", date, err)
	}

	return models.NewDay(date, cells), nil
}

func (s *journalService) ListDays(ctx context.Context) ([]string, error) {
	days, err := s.repository.ListDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing journal days: %w", err)
	}

	return days, nil
}

func (s *journalService) GetCell(ctx context.Context, key models.CellKey) (models.Cell, error) {
	cell, err := s.repository.GetCell(ctx, key)
	if errors.Is(err, store.ErrCellNotFound) {
		return models.Cell{}, ErrCellNotFound
	}
	if err != nil {
		return models.Cell{}, fmt.Errorf("error getting journal cell: %w", err)
	}

	return cell, nil
}

func (s *journalService) SetLabels(ctx context.Context, key models.CellKey, labels []string) (models.Cell, error) {
	return s.save(ctx, key, normalizeLabels(labels))
}

func (s *journalService) AddLabel(ctx context.Context, key models.CellKey, label string) (models.Cell, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return models.Cell{}, ErrEmptyLabel
	}

	current, err := s.currentLabels(ctx, key)
	if err != nil {
		return models.Cell{}, err
	}

	if slices.Contains(current.Labels, label) {
		return current, nil
	}

	return s.save(ctx, key, append(current.Labels, label))
}

func (s *journalService) RemoveLabel(ctx context.Context, key models.CellKey, label string) (models.Cell, error) {
	label = strings.TrimSpace(label)

	current, err := s.currentLabels(ctx, key)
	if err != nil {
		return models.Cell{}, err
	}

	idx := slices.Index(current.Labels, label)
	if idx < 0 {
		return models.Cell{}, fmt.Errorf("%w: %q", ErrLabelNotFound, label)
	}

	return s.save(ctx, key, slices.Delete(current.Labels, idx, idx+1))
}

func (s *journalService) ClearCell(ctx context.Context, key models.CellKey) error {
	if err := s.repository.DeleteCell(ctx, key); err != nil {
		return fmt.Errorf("error clearing journal cell: %w", err)
	}

	return nil
}

func (s *journalService) DeleteDay(ctx context.Context, date string) (int64, error) {
	n, err := s.repository.DeleteDay(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("error deleting journal day %s: %w", date, err)
	}

	logger.FromContext(ctx).Info().Str("date", date).Int64("cells", n).Msg("journal day deleted")
	return n, nil
}

// currentLabels returns the stored cell, or an empty one if nothing is stored.
func (s *journalService) currentLabels(ctx context.Context, key models.CellKey) (models.Cell, error) {
	cell, err := s.repository.GetCell(ctx, key)
	if errors.Is(err, store.ErrCellNotFound) {
		return models.Cell{CellKey: key, Labels: []string{}}, nil
	}
	if err != nil {
		return models.Cell{}, fmt.Errorf("error getting journal cell: %w", err)
	}

	return cell, nil
}

func (s *journalService) save(ctx context.Context, key models.CellKey, labels []string) (models.Cell, error) {
	cell, err := s.repository.SaveCell(ctx, models.Cell{CellKey: key, Labels: labels})
	if err != nil {
		return models.Cell{}, fmt.Errorf("error saving journal cell: %w", err)
	}

	return cell, nil
}

// normalizeLabels trims, drops blanks and removes duplicates keeping the
// first occurrence. The result is never nil.
func normalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" || slices.Contains(out, label) {
			continue
		}
		out = append(out, label)
	}
	return out
}
