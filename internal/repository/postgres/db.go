package postgres

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"tributo/internal/config"
	"tributo/internal/domain"
)

// NewDB creates a new PostgreSQL connection pool.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	return db, nil
}

// unavailable marks a storage failure so callers can tell it apart from bad input.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDataUnavailable, err)
}

// windowClause returns the half-open date filter for column, or nothing when
// w is nil. Bounds are passed as calendar dates in the window's own zone.
func windowClause(column string, w *domain.Window) (clause string, args []interface{}) {
	if w == nil {
		return "", nil
	}
	clause = fmt.Sprintf(" AND %s >= ? AND %s < ?", column, column)
	return clause, []interface{}{w.Start.Format(time.DateOnly), w.End.Format(time.DateOnly)}
}
