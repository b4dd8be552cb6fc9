package dataset

import (
	"context"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"
	_ "github.com/jackc/pgx/v5/stdlib" // postgresql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/umputun/vizdash/app/enum"
)

// Table is the name of the table holding gapminder rows in sql sources.
const Table = "gapminder"

// loadSQL reads all gapminder rows from sqlite or postgres.
// The table must have columns country, continent, year, life_exp, pop and gdp_percap.
func loadSQL(ctx context.Context, dbURL string, st enum.SourceType) ([]Row, error) {
	var db *sqlx.DB
	var err error
	switch st {
	case enum.SourceTypePostgres:
		db, err = connectPostgres(ctx, dbURL)
	default:
		db, err = connectSQLite(ctx, dbURL)
	}
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var rows []Row
	query := `SELECT country, continent, year, life_exp, pop, gdp_percap FROM ` + Table + ` ORDER BY year, country`
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to select %s rows: %w", Table, err)
	}
	log.Printf("[DEBUG] loaded %d rows from %s %s", len(rows), st, Table)
	return rows, nil
}

// connectSQLite opens a sqlite database, the dataset is only read.
func connectSQLite(ctx context.Context, dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set sqlite busy timeout: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// connectPostgres opens a postgres connection pool sized for a one-off load.
func connectPostgres(ctx context.Context, dbURL string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(time.Minute)
	return db, nil
}
