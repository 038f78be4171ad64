package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/trade-journal/internal/config"
	"github.com/MKhiriev/trade-journal/internal/logger"
)

// Storages groups the repositories used by the services.
type Storages struct {
	JournalRepository JournalRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DSN, applies
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Debug().Msg("creating storages...")

	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, ErrUnsupportedDSN
	}

	var (
		db  *DB
		err error
	)
	switch DialectFromDSN(cfg.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	log.Info().Str("dialect", string(db.dialect)).Msg("storages are ready")
	return &Storages{
		JournalRepository: NewJournalRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
