package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/trade-journal/models"
)

const (
	FieldDate   = "date"
	FieldBar    = "bar"
	FieldKind   = "kind"
	FieldLabel  = "label"
	FieldLabels = "labels"
)

const (
	// MaxLabelLength is the longest label accepted, in runes.
	MaxLabelLength = 200
	// MaxLabelsPerCell bounds a single cell.
	MaxLabelsPerCell = 64
)

// JournalValidator checks journal addresses and labels.
type JournalValidator struct{}

func NewJournalValidator() Validator {
	return &JournalValidator{}
}

// Validate accepts models.CellKey, models.Cell, models.SetLabelsRequest,
// models.AddLabelRequest, or a date string together with FieldDate.
// Named fields restrict validation to those parts of a CellKey or Cell.
func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CellKey:
		return v.validateCellKey(value, fields...)
	case *models.CellKey:
		return v.validateCellKey(*value, fields...)

	case models.Cell:
		return v.validateCell(value, fields...)
	case *models.Cell:
		return v.validateCell(*value, fields...)

	case models.SetLabelsRequest:
		return validateLabels(value.Labels)
	case models.AddLabelRequest:
		return validateLabel(value.Label)

	case string:
		if !slices.Contains(fields, FieldDate) {
			return ErrEmptyDateField
		}
		return validateDate(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *JournalValidator) validateCellKey(key models.CellKey, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldBar, FieldKind}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldDate:
			err = validateDate(key.Date)
		case FieldBar:
			if !models.IsValidBar(key.Bar) {
				err = fmt.Errorf("%w: %q", ErrInvalidBar, key.Bar)
			}
		case FieldKind:
			if !slices.Contains(models.Kinds, key.Kind) {
				err = fmt.Errorf("%w: %q", ErrInvalidKind, key.Kind)
			}
		case FieldLabel, FieldLabels:
			// not part of a key
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *JournalValidator) validateCell(cell models.Cell, fields ...string) error {
	if err := v.validateCellKey(cell.CellKey, fields...); err != nil {
		return err
	}

	if len(fields) == 0 || slices.Contains(fields, FieldLabels) {
		return validateLabels(cell.Labels)
	}

	return nil
}

func validateDate(date string) error {
	if _, err := models.ParseTradeDate(date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// validateLabels allows blank entries; they are dropped by the service.
func validateLabels(labels []string) error {
	if len(labels) > MaxLabelsPerCell {
		return fmt.Errorf("%w: %d > %d", ErrTooManyLabels, len(labels), MaxLabelsPerCell)
	}
	for _, label := range labels {
		if utf8.RuneCountInString(strings.TrimSpace(label)) > MaxLabelLength {
			return fmt.Errorf("%w: max %d characters", ErrLabelTooLong, MaxLabelLength)
		}
	}
	return nil
}

func validateLabel(label string) error {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return ErrEmptyLabel
	}
	if utf8.RuneCountInString(trimmed) > MaxLabelLength {
		return fmt.Errorf("%w: max %d characters", ErrLabelTooLong, MaxLabelLength)
	}
	return nil
}
