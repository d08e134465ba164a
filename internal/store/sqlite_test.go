package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"options-engine/internal/errors"
	"options-engine/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func day(n int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func series(closes ...float64) []models.PricePoint {
	points := make([]models.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = models.PricePoint{Date: day(i), Close: c}
	}
	return points
}

func TestSaveAndGetCloses(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCloses(ctx, "aapl", series(100, 101, 99, 102, 98)))

	got, err := s.GetCloses(ctx, "AAPL")
	require.NoError(t, err)
	require.Len(t, got, 5)

	// Ascending by date, closes intact.
	want := []float64{100, 101, 99, 102, 98}
	for i, p := range got {
		assert.Equal(t, want[i], p.Close)
		if i > 0 {
			assert.True(t, p.Date.After(got[i-1].Date), "dates not ascending")
		}
	}
}

func TestSaveClosesUpsertsOnSameDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCloses(ctx, "SPY", series(100, 101)))
	// Same dates, revised closes.
	require.NoError(t, s.SaveCloses(ctx, "SPY", series(100.5, 101.5)))

	got, err := s.GetCloses(ctx, "SPY")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 100.5, got[0].Close)
	assert.Equal(t, 101.5, got[1].Close)
}

func TestGetClosesUnknownSymbol(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetCloses(context.Background(), "NOPE")
	assert.ErrorIs(t, err, errors.ErrDataNotFound)
}

func TestSaveClosesRejectsBadInput(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.SaveCloses(ctx, "  ", series(100))
	assert.ErrorIs(t, err, errors.ErrInvalidInput)

	err = s.SaveCloses(ctx, "SPY", series(100, -5))
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestListAndDeleteSymbols(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCloses(ctx, "msft", series(300, 301)))
	require.NoError(t, s.SaveCloses(ctx, "aapl", series(100, 101)))

	symbols, err := s.ListSymbols(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, symbols)

	require.NoError(t, s.DeleteSymbol(ctx, "AAPL"))

	symbols, err = s.ListSymbols(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"MSFT"}, symbols)

	_, err = s.GetCloses(ctx, "AAPL")
	assert.ErrorIs(t, err, errors.ErrDataNotFound)
}
