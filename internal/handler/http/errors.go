// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidRequestBody is returned when a request body is not the
	// expected JSON document.
	ErrInvalidRequestBody = errors.New("invalid JSON was passed")

	// ErrMissingLabel is returned when DELETE .../labels has no label query
	// parameter.
	ErrMissingLabel = errors.New("`label` query parameter is required")
)
