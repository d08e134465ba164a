package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"options-engine/internal/errors"
	"options-engine/internal/models"
)

// SQLiteStore implements HistoryStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based history store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS price_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		symbol TEXT NOT NULL,
		date DATETIME NOT NULL,
		close REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(symbol, date)
	);
	CREATE INDEX IF NOT EXISTS idx_price_history_symbol_date
		ON price_history(symbol, date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveCloses upserts a close-price series for a symbol.
func (s *SQLiteStore) SaveCloses(ctx context.Context, symbol string, points []models.PricePoint) error {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return errors.NewValidationError("symbol", symbol, "must not be empty")
	}
	if len(points) == 0 {
		return nil
	}
	for _, p := range points {
		if p.Close <= 0 {
			return errors.NewValidationError("close", p.Close, "must be positive")
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO price_history (symbol, date, close)
		VALUES (?, ?, ?)
		ON CONFLICT(symbol, date) DO UPDATE SET close = excluded.close`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, symbol, p.Date.UTC(), p.Close); err != nil {
			return fmt.Errorf("insert close for %s: %w", symbol, err)
		}
	}
	return tx.Commit()
}

// GetCloses returns a symbol's close series ordered by ascending date.
func (s *SQLiteStore) GetCloses(ctx context.Context, symbol string) ([]models.PricePoint, error) {
	symbol = normalizeSymbol(symbol)

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, close FROM price_history
		WHERE symbol = ? ORDER BY date ASC`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query closes: %w", err)
	}
	defer rows.Close()

	var points []models.PricePoint
	for rows.Next() {
		var p models.PricePoint
		if err := rows.Scan(&p.Date, &p.Close); err != nil {
			return nil, fmt.Errorf("scan close: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, errors.Wrapf(errors.ErrDataNotFound, "no price history for %s", symbol)
	}
	return points, nil
}

// ListSymbols returns every symbol with stored history.
func (s *SQLiteStore) ListSymbols(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT symbol FROM price_history ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("query symbols: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var sym string
		if err := rows.Scan(&sym); err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		symbols = append(symbols, sym)
	}
	return symbols, rows.Err()
}

// DeleteSymbol removes a symbol's history.
func (s *SQLiteStore) DeleteSymbol(ctx context.Context, symbol string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM price_history WHERE symbol = ?`, normalizeSymbol(symbol))
	return err
}

// Close releases the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
