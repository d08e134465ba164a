// Package export serializes engine results to CSV and reads close-price
// series back in, for spreadsheet workflows.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"options-engine/internal/errors"
	"options-engine/internal/models"
)

// DateLayout is the calendar-date format used in close-price CSV files.
const DateLayout = "2006-01-02"

type chainRowCSV struct {
	Strike    float64 `csv:"strike"`
	CallPrice float64 `csv:"call_price"`
	CallDelta float64 `csv:"call_delta"`
	CallTheta float64 `csv:"call_theta"`
	PutPrice  float64 `csv:"put_price"`
	PutDelta  float64 `csv:"put_delta"`
	PutTheta  float64 `csv:"put_theta"`
	Gamma     float64 `csv:"gamma"`
	Vega      float64 `csv:"vega"`
}

// WriteChain writes an options chain as CSV, one row per strike.
func WriteChain(w io.Writer, chain models.Chain) error {
	rows := make([]chainRowCSV, 0, len(chain.Rows))
	for _, r := range chain.Rows {
		rows = append(rows, chainRowCSV{
			Strike:    r.Strike,
			CallPrice: r.Call.Price,
			CallDelta: r.Call.Greeks.Delta,
			CallTheta: r.Call.Greeks.Theta,
			PutPrice:  r.Put.Price,
			PutDelta:  r.Put.Greeks.Delta,
			PutTheta:  r.Put.Greeks.Theta,
			Gamma:     r.Call.Greeks.Gamma,
			Vega:      r.Call.Greeks.Vega,
		})
	}
	return gocsv.Marshal(rows, w)
}

type surfacePointCSV struct {
	ExpiryDays       int     `csv:"expiry_days"`
	Strike           float64 `csv:"strike"`
	TheoreticalPrice float64 `csv:"theoretical_price"`
	ImpliedVol       float64 `csv:"implied_vol"`
}

// WriteSurface writes an IV surface as CSV, one row per grid point.
func WriteSurface(w io.Writer, surface models.IVSurface) error {
	rows := make([]surfacePointCSV, 0, len(surface.Points))
	for _, p := range surface.Points {
		rows = append(rows, surfacePointCSV{
			ExpiryDays:       p.ExpiryDays,
			Strike:           p.Strike,
			TheoreticalPrice: p.TheoreticalPrice,
			ImpliedVol:       p.ImpliedVol,
		})
	}
	return gocsv.Marshal(rows, w)
}

type strategyLegCSV struct {
	Type     string  `csv:"type"`
	Strike   float64 `csv:"strike"`
	Side     string  `csv:"side"`
	Quantity int     `csv:"quantity"`
	Premium  float64 `csv:"premium"`
}

// WriteStrategyLegs writes a strategy's legs as CSV.
func WriteStrategyLegs(w io.Writer, strategy models.Strategy) error {
	rows := make([]strategyLegCSV, 0, len(strategy.Legs))
	for _, leg := range strategy.Legs {
		rows = append(rows, strategyLegCSV{
			Type:     string(leg.Type),
			Strike:   leg.Strike,
			Side:     string(leg.Side),
			Quantity: leg.Quantity,
			Premium:  leg.Premium,
		})
	}
	return gocsv.Marshal(rows, w)
}

type closeRowCSV struct {
	Date  string  `csv:"date"`
	Close float64 `csv:"close"`
}

// ReadCloses parses a close-price CSV (columns: date, close) into an
// ordered series. Dates use the 2006-01-02 layout.
func ReadCloses(r io.Reader) ([]models.PricePoint, error) {
	var rows []closeRowCSV
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse close CSV: %w", err)
	}

	points := make([]models.PricePoint, 0, len(rows))
	for i, row := range rows {
		date, err := time.Parse(DateLayout, row.Date)
		if err != nil {
			return nil, errors.NewValidationError("date", row.Date,
				fmt.Sprintf("row %d: want %s", i+1, DateLayout))
		}
		if row.Close <= 0 {
			return nil, errors.NewValidationError("close", row.Close,
				fmt.Sprintf("row %d: must be positive", i+1))
		}
		points = append(points, models.PricePoint{Date: date, Close: row.Close})
	}
	return points, nil
}

// WriteCloses writes a close-price series as CSV, the inverse of ReadCloses.
func WriteCloses(w io.Writer, points []models.PricePoint) error {
	rows := make([]closeRowCSV, 0, len(points))
	for _, p := range points {
		rows = append(rows, closeRowCSV{Date: p.Date.Format(DateLayout), Close: p.Close})
	}
	return gocsv.Marshal(rows, w)
}
