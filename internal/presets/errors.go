// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presets

import "errors"

// Reasons recorded in [Attempt.Err]. They never escape [Resolver.Resolve].
var (
	// ErrMalformedJSON means the candidate is not valid JSON.
	ErrMalformedJSON = errors.New("malformed presets JSON")

	// ErrNotAnObject means the candidate is valid JSON but its top-level
	// value is not an object.
	ErrNotAnObject = errors.New("presets JSON is not an object")

	// ErrNotRegularFile means the candidate exists but is a directory,
	// device, socket or similar.
	ErrNotRegularFile = errors.New("presets path is not a regular file")
)
