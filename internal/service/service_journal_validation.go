package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/trade-journal/internal/validators"
	"github.com/MKhiriev/trade-journal/models"
)

// JournalValidationService rejects malformed addresses and labels before
// they reach the wrapped JournalService.
type JournalValidationService struct {
	inner     JournalService
	validator validators.Validator
}

func NewJournalValidationService() JournalServiceWrapper {
	return &JournalValidationService{
		validator: validators.NewJournalValidator(),
	}
}

func (v *JournalValidationService) GetDay(ctx context.Context, date string) (models.Day, error) {
	if err := v.validator.Validate(ctx, date, validators.FieldDate); err != nil {
		return models.Day{}, fmt.Errorf("error during journal day validation: %w", err)
	}

	return v.inner.GetDay(ctx, date)
}

func (v *JournalValidationService) ListDays(ctx context.Context) ([]string, error) {
	return v.inner.ListDays(ctx)
}

func (v *JournalValidationService) GetCell(ctx context.Context, key models.CellKey) (models.Cell, error) {
	if err := v.validator.Validate(ctx, key); err != nil {
		return models.Cell{}, fmt.Errorf("error during journal cell validation: %w", err)
	}

	return v.inner.GetCell(ctx, key)
}

func (v *JournalValidationService) SetLabels(ctx context.Context, key models.CellKey, labels []string) (models.Cell, error) {
	if err := v.validator.Validate(ctx, models.Cell{CellKey: key, Labels: labels}); err != nil {
		return models.Cell{}, fmt.Errorf("error during journal cell validation: %w", err)
	}

	return v.inner.SetLabels(ctx, key, labels)
}

func (v *JournalValidationService) AddLabel(ctx context.Context, key models.CellKey, label string) (models.Cell, error) {
	if err := v.validator.Validate(ctx, key); err != nil {
		return models.Cell{}, fmt.Errorf("error during journal cell validation: %w", err)
	}
	if err := v.validator.Validate(ctx, models.AddLabelRequest{Label: label}); err != nil {
		return models.Cell{}, fmt.Errorf("error during label validation: %w", err)
	}

	return v.inner.AddLabel(ctx, key, label)
}

func (v *JournalValidationService) RemoveLabel(ctx context.Context, key models.CellKey, label string) (models.Cell, error) {
	if err := v.validator.Validate(ctx, key); err != nil {
		return models.Cell{}, fmt.Errorf("error during journal cell validation: %w", err)
	}
	if err := v.validator.Validate(ctx, models.AddLabelRequest{Label: label}); err != nil {
		return models.Cell{}, fmt.Errorf("error during label validation: %w", err)
	}

	return v.inner.RemoveLabel(ctx, key, label)
}

func (v *JournalValidationService) ClearCell(ctx context.Context, key models.CellKey) error {
	if err := v.validator.Validate(ctx, key); err != nil {
		return fmt.Errorf("error during journal cell validation: %w", err)
	}

	return v.inner.ClearCell(ctx, key)
}

func (v *JournalValidationService) DeleteDay(ctx context.Context, date string) (int64, error) {
	if err := v.validator.Validate(ctx, date, validators.FieldDate); err != nil {
		return 0, fmt.Errorf("error during journal day validation: %w", err)
	}

	return v.inner.DeleteDay(ctx, date)
}

func (v *JournalValidationService) Wrap(wrapper JournalService) JournalService {
	v.inner = wrapper
	return v
}
