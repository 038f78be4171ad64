package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidDate    = errors.New("invalid trade date")
	ErrInvalidBar     = errors.New("invalid bar")
	ErrInvalidKind    = errors.New("invalid label kind")
	ErrEmptyLabel     = errors.New("label cannot be empty")
	ErrLabelTooLong   = errors.New("label is too long")
	ErrTooManyLabels  = errors.New("too many labels in one cell")
	ErrEmptyDateField = errors.New("date validation needs the date field")
)
