package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/trade-journal/models"
)

const journalCellsTable = "journal_cells"

var journalCellColumns = []string{"trade_date", "bar", "kind", "labels", "updated_at"}

const upsertCellSuffix = `ON CONFLICT (trade_date, bar, kind) DO UPDATE
		SET labels = excluded.labels, updated_at = excluded.updated_at`

func buildUpsertCellQuery(b sq.StatementBuilderType, key models.CellKey, labels string, updatedAt time.Time) (string, []any, error) {
	return b.Insert(journalCellsTable).
		Columns(journalCellColumns...).
		Values(key.Date, key.Bar, string(key.Kind), labels, updatedAt).
		Suffix(upsertCellSuffix).
		ToSql()
}

func buildSelectCellQuery(b sq.StatementBuilderType, key models.CellKey) (string, []any, error) {
	return b.Select(journalCellColumns...).
		From(journalCellsTable).
		Where(sq.Eq{"trade_date": key.Date}).
		Where(sq.Eq{"bar": key.Bar}).
		Where(sq.Eq{"kind": string(key.Kind)}).
		ToSql()
}

func buildDeleteCellQuery(b sq.StatementBuilderType, key models.CellKey) (string, []any, error) {
	return b.Delete(journalCellsTable).
		Where(sq.Eq{"trade_date": key.Date}).
		Where(sq.Eq{"bar": key.Bar}).
		Where(sq.Eq{"kind": string(key.Kind)}).
		ToSql()
}

func buildSelectDayQuery(b sq.StatementBuilderType, date string) (string, []any, error) {
	return b.Select(journalCellColumns...).
		From(journalCellsTable).
		Where(sq.Eq{"trade_date": date}).
		OrderBy("bar", "kind").
		ToSql()
}

func buildListDaysQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("DISTINCT trade_date").
		From(journalCellsTable).
		OrderBy("trade_date DESC").
		ToSql()
}

func buildDeleteDayQuery(b sq.StatementBuilderType, date string) (string, []any, error) {
	return b.Delete(journalCellsTable).
		Where(sq.Eq{"trade_date": date}).
		ToSql()
}
