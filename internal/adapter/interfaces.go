// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the journal REST API.
//
// [ServerAdapter] hides the transport from the CLI. The HTTP implementation
// ([NewHTTPServerAdapter]) is built on resty; non-2xx responses are mapped to
// the sentinel errors in errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/trade-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running journal server.
type ServerAdapter interface {
	// GetVersion returns the server's application version.
	GetVersion(ctx context.Context) (string, error)

	// GetPresets returns the presets the server resolved at startup and
	// their origin.
	GetPresets(ctx context.Context) (models.PresetsResponse, error)

	// GetResolution returns every presets location the server considered.
	GetResolution(ctx context.Context) (models.ResolutionResponse, error)

	GetLayout(ctx context.Context) (models.Layout, error)

	// ListDays returns the dates with stored labels, newest first.
	ListDays(ctx context.Context) ([]string, error)
	GetDay(ctx context.Context, date string) (models.Day, error)
	DeleteDay(ctx context.Context, date string) error

	// GetCell returns [ErrNotFound] (wrapped) for an empty cell.
	GetCell(ctx context.Context, key models.CellKey) (models.Cell, error)
	SetLabels(ctx context.Context, key models.CellKey, labels []string) (models.Cell, error)
	AddLabel(ctx context.Context, key models.CellKey, label string) (models.Cell, error)
	RemoveLabel(ctx context.Context, key models.CellKey, label string) (models.Cell, error)
	ClearCell(ctx context.Context, key models.CellKey) error
}
