package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/presets"
	"github.com/MKhiriev/trade-journal/internal/store"
	"github.com/MKhiriev/trade-journal/internal/validators"
	"github.com/MKhiriev/trade-journal/models"
)

func newTestServices(t *testing.T, version string) (*Services, error) {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.DB{DSN: filepath.Join(t.TempDir(), "journal.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	cfg := config.StructuredConfig{App: config.App{Version: version}}
	return NewServices(storages, presets.Resolution{Set: presets.Defaults()}, cfg, logger.Nop())
}

func TestNewServices_MissingVersion(t *testing.T) {
	_, err := newTestServices(t, "")
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices_JournalRoundTrip(t *testing.T) {
	services, err := newTestServices(t, "test")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = services.JournalService.AddLabel(ctx, testKey, "Gap up")
	require.NoError(t, err)
	cell, err := services.JournalService.AddLabel(ctx, testKey, "Trend bar")
	require.NoError(t, err)
	assert.Equal(t, []string{"Gap up", "Trend bar"}, cell.Labels)

	day, err := services.JournalService.GetDay(ctx, testKey.Date)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gap up", "Trend bar"}, day.Rows[models.BarIndex(testKey.Bar)].Bull)

	days, err := services.JournalService.ListDays(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{testKey.Date}, days)

	require.NoError(t, services.JournalService.ClearCell(ctx, testKey))
	_, err = services.JournalService.GetCell(ctx, testKey)
	assert.ErrorIs(t, err, ErrCellNotFound)
}

func TestNewServices_JournalIsValidated(t *testing.T) {
	services, err := newTestServices(t, "test")
	require.NoError(t, err)

	_, err = services.JournalService.GetDay(context.Background(), "16/10/2026")
	assert.ErrorIs(t, err, validators.ErrInvalidDate)
}
