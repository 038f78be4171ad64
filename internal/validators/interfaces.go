// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks journal input before it reaches storage.
//
// The service layer wraps [JournalValidator] around the journal service so
// that every mutating call is rejected early with one of the sentinel errors
// in errors.go. Optional field names narrow a check to part of a value, for
// example only the date of a models.CellKey.
package validators

import "context"

// Validator checks a value, optionally limited to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
