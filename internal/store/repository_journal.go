package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/trade-journal/internal/logger"
	"github.com/MKhiriev/trade-journal/models"
)

const (
	maxRetries   = 3
	retryBackoff = 25 * time.Millisecond
)

type journalRepository struct {
	db     *DB
	now    func() time.Time
	after  func(time.Duration) <-chan time.Time
	logger *logger.Logger
}

// NewJournalRepository builds a JournalRepository over db.
func NewJournalRepository(db *DB, log *logger.Logger) JournalRepository {
	return &journalRepository{
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
		after:  time.After,
		logger: log,
	}
}

func (r *journalRepository) SaveCell(ctx context.Context, cell models.Cell) (models.Cell, error) {
	log := logger.FromContext(ctx)

	if len(cell.Labels) == 0 {
		if err := r.DeleteCell(ctx, cell.CellKey); err != nil {
			return models.Cell{}, err
		}
		cell.Labels = []string{}
		cell.UpdatedAt = r.now()
		return cell, nil
	}

	encoded, err := json.Marshal(cell.Labels)
	if err != nil {
		return models.Cell{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updatedAt := r.now().Truncate(time.Microsecond)
	query, args, err := buildUpsertCellQuery(r.db.builder(), cell.CellKey, string(encoded), updatedAt)
	if err != nil {
		return models.Cell{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.SaveCell").
			Str("date", cell.Date).
			Str("bar", cell.Bar).
			Str("kind", cell.Kind.String()).
			Msg("failed to upsert journal cell")
		if r.db.classify(err) == ConstraintViolation {
			return models.Cell{}, fmt.Errorf("%w: %w", ErrInvalidCell, err)
		}
		return models.Cell{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	cell.UpdatedAt = updatedAt
	return cell, nil
}

func (r *journalRepository) GetCell(ctx context.Context, key models.CellKey) (models.Cell, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCellQuery(r.db.builder(), key)
	if err != nil {
		return models.Cell{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	cell, err := scanCell(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cell{}, ErrCellNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.GetCell").
			Str("date", key.Date).
			Str("bar", key.Bar).
			Msg("failed to read journal cell")
		return models.Cell{}, err
	}

	return cell, nil
}

func (r *journalRepository) DeleteCell(ctx context.Context, key models.CellKey) error {
	query, args, err := buildDeleteCellQuery(r.db.builder(), key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "journalRepository.DeleteCell").
			Str("date", key.Date).
			Msg("failed to delete journal cell")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *journalRepository) GetDay(ctx context.Context, date string) ([]models.Cell, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDayQuery(r.db.builder(), date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.GetDay").Str("date", date).Msg("failed to query journal day")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cells := make([]models.Cell, 0)
	for rows.Next() {
		cell, scanErr := scanCell(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "journalRepository.GetDay").Str("date", date).Msg("failed to scan journal cell")
			return nil, scanErr
		}
		cells = append(cells, cell)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "journalRepository.GetDay").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cells, nil
}

func (r *journalRepository) ListDays(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDaysQuery(r.db.builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.ListDays").Msg("failed to query journal days")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	days := make([]string, 0)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return days, nil
}

func (r *journalRepository) DeleteDay(ctx context.Context, date string) (int64, error) {
	query, args, err := buildDeleteDayQuery(r.db.builder(), date)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "journalRepository.DeleteDay").
			Str("date", date).
			Msg("failed to delete journal day")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

// withRetry runs op until it succeeds, fails with a non-retryable error,
// or maxRetries attempts are used. There is no wait after the last attempt.
func (r *journalRepository) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; ; attempt++ {
		if err = op(); err == nil || r.db.classify(err) != Retryable {
			return err
		}

		r.logger.Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")
		if attempt == maxRetries {
			return err
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-r.after(time.Duration(attempt) * retryBackoff):
		}
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCell(row rowScanner) (models.Cell, error) {
	var (
		cell   models.Cell
		kind   string
		labels string
	)

	if err := row.Scan(&cell.Date, &cell.Bar, &kind, &labels, &cell.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cell{}, err
		}
		return models.Cell{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	cell.Kind = models.Kind(kind)
	cell.Labels = []string{}
	if err := json.Unmarshal([]byte(labels), &cell.Labels); err != nil {
		return models.Cell{}, fmt.Errorf("%w: %w", ErrDecodingLabels, err)
	}
	cell.UpdatedAt = cell.UpdatedAt.UTC()

	return cell, nil
}
