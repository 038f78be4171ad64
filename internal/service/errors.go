package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrCellNotFound  = errors.New("journal cell not found")
	ErrLabelNotFound = errors.New("label not found in cell")
	ErrEmptyLabel    = errors.New("label cannot be empty")
)
