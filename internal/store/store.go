// Package store persists imported close-price history, the input series for
// the volatility estimator. It is an input cache: positions and results are
// never persisted.
package store

import (
	"context"

	"options-engine/internal/models"
)

// HistoryStore defines the interface for close-price persistence.
type HistoryStore interface {
	// SaveCloses upserts a close-price series for a symbol.
	SaveCloses(ctx context.Context, symbol string, points []models.PricePoint) error
	// GetCloses returns a symbol's series ordered by ascending date.
	// A symbol with no rows is ErrDataNotFound.
	GetCloses(ctx context.Context, symbol string) ([]models.PricePoint, error)
	// ListSymbols returns every symbol with stored history.
	ListSymbols(ctx context.Context) ([]string, error)
	// DeleteSymbol removes a symbol's history.
	DeleteSymbol(ctx context.Context, symbol string) error
	// Close releases the underlying database.
	Close() error
}
