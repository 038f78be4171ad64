package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/internal/mock"
	"github.com/MKhiriev/trade-journal/internal/store"
	"github.com/MKhiriev/trade-journal/models"
)

var (
	testKey = models.CellKey{Date: "2026-10-16", Bar: "7", Kind: models.KindBull}
	testNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
)

// newTestJournalSvc: хелпер для создания journalService с моком репозитория
func newTestJournalSvc(t *testing.T) (JournalService, *mock.MockJournalRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockJournalRepository(ctrl)
	return NewJournalService(repo, logger.Nop()), repo
}

// echoSave returns what it was asked to store, stamped with testNow.
func echoSave(_ context.Context, cell models.Cell) (models.Cell, error) {
	cell.UpdatedAt = testNow
	return cell, nil
}

// ── GetDay / ListDays ────────────────────────────────────────────────────────

func TestJournalService_GetDay_BuildsFullGrid(t *testing.T) {
	svc, repo := newTestJournalSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetDay(ctx, "2026-10-16").Return([]models.Cell{
		{CellKey: testKey, Labels: []string{"Trend bar"}},
	}, nil)

	day, err := svc.GetDay(ctx, "2026-10-16")

	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", day.Date)
	assert.Len(t, day.Rows, models.BarsPerSession+2)
	assert.Equal(t, []string{"Trend bar"}, day.Rows[models.BarIndex("7")].Bull)
}

func TestJournalService_GetDay_RepositoryError(t *testing.T) {
	svc, repo := newTestJournalSvc(t)

	repo.EXPECT().GetDay(gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.GetDay(context.Background(), "2026-10-16")
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestJournalService_ListDays(t *testing.T) {
	svc, repo := newTestJournalSvc(t)

	repo.EXPECT().ListDays(gomock.Any()).Return([]string{"2026-10-16"}, nil)

	days, err := svc.ListDays(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-16"}, days)
}

func TestJournalService_GetCell_NotFound(t *testing.T) {
	svc, repo := newTestJournalSvc(t)

	repo.EXPECT().GetCell(gomock.Any(), testKey).Return(models.Cell{}, store.ErrCellNotFound)

	_, err := svc.GetCell(context.Background(), testKey)
	assert.ErrorIs(t, err, ErrCellNotFound)
}

// ── SetLabels ────────────────────────────────────────────────────────────────

func TestJournalService_SetLabels_Normalizes(t *testing.T) {
	svc, repo := newTestJournalSvc(t)

	repo.EXPECT().
		SaveCell(gomock.Any(), models.Cell{CellKey: testKey, Labels: []string{"Gap up", "Trend bar"}}).
		DoAndReturn(echoSave)

	cell, err := svc.SetLabels(context.Background(), testKey, []string{" Gap up ", "", "Trend bar", "Gap up", "   "})

	require.NoError(t, err)
	assert.Equal(t, []string{"Gap up", "Trend bar"}, cell.Labels)
	assert.Equal(t, testNow, cell.UpdatedAt)
}

func TestJournalService_SetLabels_AllBlankClears(t *testing.T) {
	svc, repo := newTestJournalSvc(t)

	repo.EXPECT().
		SaveCell(gomock.Any(), models.Cell{CellKey: testKey, Labels: []string{}}).
		DoAndReturn(echoSave)

	cell, err := svc.SetLabels(context.Background(), testKey, []string{" ", ""})

	require.NoError(t, err)
	assert.Empty(t, cell.Labels)
}

func TestJournalService_SetLabels_InvalidCell(t *testing.T) {
	svc, repo := newTestJournalSvc(t)

	repo.EXPECT().SaveCell(gomock.Any(), gomock.Any()).Return(models.Cell{}, store.ErrInvalidCell)

	_, err := svc.SetLabels(context.Background(), testKey, []string{"x"})
	assert.ErrorIs(t, err, store.ErrInvalidCell)
}

// ── AddLabel ─────────────────────────────────────────────────────────────────

func TestJournalService_AddLabel_ToEmptyCell(t *testing.T) {
	svc, repo := newTestJournalSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().GetCell(ctx, testKey).Return(models.Cell{}, store.ErrCellNotFound),
		repo.EXPECT().SaveCell(ctx, models.Cell{CellKey: testKey, Labels: []string{"Gap up"}}).DoAndReturn(echoSave),
	)

	cell, err := svc.AddLabel(ctx, testKey, "  Gap up ")

	require.NoError(t, err)
	assert.Equal(t, []string{"Gap up"}, cell.Labels)
}

func TestJournalService_AddLabel_Appends(t *testing.T) {
	svc, repo := newTestJournalSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetCell(ctx, testKey).Return(models.Cell{CellKey: testKey, Labels: []string{"a"}}, nil)
	repo.EXPECT().SaveCell(ctx, models.Cell{CellKey: testKey, Labels: []string{"a", "b"}}).DoAndReturn(echoSave)

	cell, err := svc.AddLabel(ctx, testKey, "b")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, cell.Labels)
}

func TestJournalService_AddLabel_AlreadyPresent(t *testing.T) {
	svc, repo := newTestJournalSvc(t)
	existing := models.Cell{CellKey: testKey, Labels: []string{"a"}, UpdatedAt: testNow}

	repo.EXPECT().GetCell(gomock.Any(), testKey).Return(existing, nil)
	// SaveCell не должен вызываться

	cell, err := svc.AddLabel(context.Background(), testKey, "a")

	require.NoError(t, err)
	assert.Equal(t, existing, cell)
}

func TestJournalService_AddLabel_Empty(t *testing.T) {
	svc, _ := newTestJournalSvc(t)

	_, err := svc.AddLabel(context.Background(), testKey, "  ")
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestJournalService_AddLabel_ReadError(t *testing.T) {
	svc, repo := newTestJournalSvc(t)
	dbErr := errors.New("disk I/O error")

	repo.EXPECT().GetCell(gomock.Any(), testKey).Return(models.Cell{}, dbErr)

	_, err := svc.AddLabel(context.Background(), testKey, "a")
	assert.ErrorIs(t, err, dbErr)
}

// ── RemoveLabel / ClearCell / DeleteDay ──────────────────────────────────────

func TestJournalService_RemoveLabel(t *testing.T) {
	svc, repo := newTestJournalSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetCell(ctx, testKey).Return(models.Cell{CellKey: testKey, Labels: []string{"a", "b", "c"}}, nil)
	repo.EXPECT().SaveCell(ctx, models.Cell{CellKey: testKey, Labels: []string{"a", "c"}}).DoAndReturn(echoSave)

	cell, err := svc.RemoveLabel(ctx, testKey, "b")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, cell.Labels)
}

func TestJournalService_RemoveLabel_Missing(t *testing.T) {
	svc, repo := newTestJournalSvc(t)

	repo.EXPECT().GetCell(gomock.Any(), testKey).Return(models.Cell{}, store.ErrCellNotFound)

	_, err := svc.RemoveLabel(context.Background(), testKey, "b")
	assert.ErrorIs(t, err, ErrLabelNotFound)
}

func TestJournalService_ClearCell(t *testing.T) {
	svc, repo := newTestJournalSvc(t)

	repo.EXPECT().DeleteCell(gomock.Any(), testKey).Return(nil)

	assert.NoError(t, svc.ClearCell(context.Background(), testKey))
}

func TestJournalService_DeleteDay(t *testing.T) {
	svc, repo := newTestJournalSvc(t)

	repo.EXPECT().DeleteDay(gomock.Any(), "2026-10-16").Return(int64(4), nil)

	n, err := svc.DeleteDay(context.Background(), "2026-10-16")
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestNormalizeLabels(t *testing.T) {
	assert.Equal(t, []string{}, normalizeLabels(nil))
	assert.Equal(t, []string{"b", "a"}, normalizeLabels([]string{"b", " a", "b ", "a"}))
}
