// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrPresetIndexOutOfRange is returned by "presets copy" for an index
	// outside the kind's list.
	ErrPresetIndexOutOfRange = errors.New("preset index out of range")

	// ErrEmptyLabel is returned when a label argument is blank.
	ErrEmptyLabel = errors.New("label must not be empty")
)
