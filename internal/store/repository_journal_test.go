package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/models"
)

var fixedNow = time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)

func newTestJournalRepo(t *testing.T) (*journalRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &journalRepository{
		db: &DB{
			DB:                 db,
			dialect:            DialectPostgres,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		now:    func() time.Time { return fixedNow },
		after:  time.After,
		logger: l,
	}
	return repo, mock
}

func cellRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"trade_date", "bar", "kind", "labels", "updated_at"})
}

// ─── SaveCell ────────────────────────────────────────────────────────────────

func TestSaveCell_Upserts(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectExec("INSERT INTO journal_cells").
		WithArgs("2026-10-16", "RTH", "bull", `["Trend bar","Gap up"]`, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	cell := models.Cell{CellKey: models.CellKey{Date: "2026-10-16", Bar: "RTH", Kind: models.KindBull}, Labels: []string{"Trend bar", "Gap up"}}
	got, err := repo.SaveCell(context.Background(), cell)

	require.NoError(t, err)
	assert.Equal(t, fixedNow, got.UpdatedAt)
	assert.Equal(t, cell.Labels, got.Labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCell_EmptyLabelsDeletes(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journal_cells WHERE trade_date = $1 AND bar = $2 AND kind = $3")).
		WithArgs("2026-10-16", "5", "tr").
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.SaveCell(context.Background(), models.Cell{CellKey: models.CellKey{Date: "2026-10-16", Bar: "5", Kind: models.KindTR}})

	require.NoError(t, err)
	assert.NotNil(t, got.Labels)
	assert.Empty(t, got.Labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCell_CheckViolation(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectExec("INSERT INTO journal_cells").
		WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.SaveCell(context.Background(), models.Cell{
		CellKey: models.CellKey{Date: "2026-10-16", Bar: "1", Kind: "sideways"},
		Labels:  []string{"x"},
	})

	assert.ErrorIs(t, err, ErrInvalidCell)
}

func TestSaveCell_RetriesDeadlock(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectExec("INSERT INTO journal_cells").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec("INSERT INTO journal_cells").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.SaveCell(context.Background(), models.Cell{
		CellKey: models.CellKey{Date: "2026-10-16", Bar: "1", Kind: models.KindBias},
		Labels:  []string{"Always in long"},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCell_GivesUpAfterMaxRetries(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	for i := 0; i < maxRetries; i++ {
		mock.ExpectExec("INSERT INTO journal_cells").WillReturnError(pgError(pgerrcode.SerializationFailure))
	}

	var waits []time.Duration
	repo.after = func(d time.Duration) <-chan time.Time {
		waits = append(waits, d)
		ch := make(chan time.Time, 1)
		ch <- fixedNow
		return ch
	}

	_, err := repo.SaveCell(context.Background(), models.Cell{
		CellKey: models.CellKey{Date: "2026-10-16", Bar: "1", Kind: models.KindBias},
		Labels:  []string{"x"},
	})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
	// one wait between each pair of attempts, none after the last
	assert.Equal(t, []time.Duration{retryBackoff, 2 * retryBackoff}, waits)
}

// ─── GetCell ─────────────────────────────────────────────────────────────────

func TestGetCell_Found(t *testing.T) {
	repo, mock := newTestJournalRepo(t)
	key := models.CellKey{Date: "2026-10-16", Bar: "ETH", Kind: models.KindBear}

	mock.ExpectQuery("SELECT (.+) FROM journal_cells").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(cellRows().AddRow("2026-10-16", "ETH", "bear", `["Lower high"]`, fixedNow))

	got, err := repo.GetCell(context.Background(), key)

	require.NoError(t, err)
	assert.Equal(t, key, got.CellKey)
	assert.Equal(t, []string{"Lower high"}, got.Labels)
}

func TestGetCell_NotFound(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM journal_cells").WillReturnRows(cellRows())

	_, err := repo.GetCell(context.Background(), testKey)
	assert.ErrorIs(t, err, ErrCellNotFound)
}

func TestGetCell_BadLabels(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM journal_cells").
		WillReturnRows(cellRows().AddRow("2026-10-16", "12", "bull", `{"not":"array"}`, fixedNow))

	_, err := repo.GetCell(context.Background(), testKey)
	assert.ErrorIs(t, err, ErrDecodingLabels)
}

// ─── GetDay / ListDays / DeleteDay ───────────────────────────────────────────

func TestGetDay(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM journal_cells WHERE trade_date").
		WithArgs("2026-10-16").
		WillReturnRows(cellRows().
			AddRow("2026-10-16", "1", "bull", `["a"]`, fixedNow).
			AddRow("2026-10-16", "1", "tr", `["b","c"]`, fixedNow))

	cells, err := repo.GetDay(context.Background(), "2026-10-16")

	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, models.KindTR, cells[1].Kind)
	assert.Equal(t, []string{"b", "c"}, cells[1].Labels)
}

func TestGetDay_QueryError(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

	_, err := repo.GetDay(context.Background(), "2026-10-16")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListDays(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("SELECT DISTINCT trade_date FROM journal_cells ORDER BY trade_date DESC").
		WillReturnRows(sqlmock.NewRows([]string{"trade_date"}).AddRow("2026-10-16").AddRow("2026-10-15"))

	days, err := repo.ListDays(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-16", "2026-10-15"}, days)
}

func TestListDays_Empty(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectQuery("SELECT DISTINCT").WillReturnRows(sqlmock.NewRows([]string{"trade_date"}))

	days, err := repo.ListDays(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestDeleteDay(t *testing.T) {
	repo, mock := newTestJournalRepo(t)

	mock.ExpectExec("DELETE FROM journal_cells WHERE trade_date").
		WithArgs("2026-10-16").
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := repo.DeleteDay(context.Background(), "2026-10-16")

	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
}

// ─── SQLite end to end ───────────────────────────────────────────────────────

func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "journal.db")

	storages, err := NewStorages(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	repo := storages.JournalRepository

	key := models.CellKey{Date: "2026-10-16", Bar: "RTH", Kind: models.KindBull}
	_, err = repo.SaveCell(ctx, models.Cell{CellKey: key, Labels: []string{"first"}})
	require.NoError(t, err)
	saved, err := repo.SaveCell(ctx, models.Cell{CellKey: key, Labels: []string{"second", "third"}})
	require.NoError(t, err)

	got, err := repo.GetCell(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "third"}, got.Labels)
	assert.WithinDuration(t, saved.UpdatedAt, got.UpdatedAt, time.Second)

	_, err = repo.SaveCell(ctx, models.Cell{CellKey: models.CellKey{Date: "2026-10-15", Bar: "3", Kind: models.KindTR}, Labels: []string{"x"}})
	require.NoError(t, err)

	days, err := repo.ListDays(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-16", "2026-10-15"}, days)

	_, err = repo.SaveCell(ctx, models.Cell{CellKey: models.CellKey{Date: "2026-10-16", Bar: "1", Kind: "sideways"}, Labels: []string{"x"}})
	assert.ErrorIs(t, err, ErrInvalidCell)

	n, err := repo.DeleteDay(ctx, "2026-10-16")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.GetCell(ctx, key)
	assert.ErrorIs(t, err, ErrCellNotFound)
	assert.False(t, errors.Is(err, sql.ErrNoRows))
}

func TestNewStorages_EmptyDSN(t *testing.T) {
	_, err := NewStorages(context.Background(), config.DB{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
