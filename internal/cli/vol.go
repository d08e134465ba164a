package cli

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"options-engine/internal/errors"
	"options-engine/internal/export"
	"options-engine/internal/volatility"
)

func newVolCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vol",
		Short: "Historical volatility estimation and price-history management",
	}

	cmd.AddCommand(newVolEstimateCmd(app))
	cmd.AddCommand(newVolImportCmd(app))
	cmd.AddCommand(newVolListCmd(app))
	cmd.AddCommand(newVolDeleteCmd(app))

	return cmd
}

func newVolEstimateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <symbol>",
		Short: "Annualized historical volatility from stored closes",
		Long: `Estimate annualized volatility from a stored close-price series.

Log returns are annualized over the configured trading days (default 252).
With no stored history the documented 30% default applies instead.`,
		Example: `  options-engine vol estimate AAPL
  options-engine vol estimate AAPL --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])

			historyStore, err := app.HistoryStore()
			if err != nil {
				output.Error("Failed to open price history: %v", err)
				return err
			}

			points, err := historyStore.GetCloses(ctx, symbol)
			if errors.Is(err, errors.ErrDataNotFound) {
				fallback := app.Config.Pricing.DefaultVolatility
				app.Logger.Warn().Str("symbol", symbol).
					Float64("fallback", fallback).
					Msg("no price history, using default volatility")
				if output.IsJSON() {
					return output.JSON(map[string]interface{}{
						"symbol":     symbol,
						"volatility": fallback,
						"source":     "default",
					})
				}
				output.Warning("No price history for %s; using default volatility %s",
					symbol, FormatPercent(fallback))
				return nil
			}
			if err != nil {
				output.Error("Failed to load closes: %v", err)
				return err
			}

			closes := make([]float64, len(points))
			for i, p := range points {
				closes[i] = p.Close
			}
			vol, err := volatility.Annualized(closes, app.Config.Pricing.TradingDaysPerYear)
			if err != nil {
				output.Error("Estimation failed: %v", err)
				return err
			}

			lowConfidence := volatility.LowConfidence(len(closes))
			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"symbol":         symbol,
					"volatility":     vol,
					"observations":   len(closes),
					"low_confidence": lowConfidence,
					"source":         "historical",
				})
			}

			output.Bold("Historical Volatility - %s", symbol)
			output.Printf("  Annualized: %s (%d closes)\n", output.BoldText(FormatPercent(vol)), len(closes))
			if lowConfidence {
				output.Warning("  Fewer than %d observations; treat as low confidence",
					volatility.MinConfidentObservations)
			}
			return nil
		},
	}
	return cmd
}

func newVolImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <symbol> <csv-file>",
		Short: "Import a close-price CSV (columns: date, close)",
		Example: `  options-engine vol import AAPL closes.csv`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])

			f, err := os.Open(args[1])
			if err != nil {
				output.Error("Cannot open %s: %v", args[1], err)
				return err
			}
			defer f.Close()

			points, err := export.ReadCloses(f)
			if err != nil {
				output.Error("Import failed: %v", err)
				return err
			}

			historyStore, err := app.HistoryStore()
			if err != nil {
				output.Error("Failed to open price history: %v", err)
				return err
			}
			if err := historyStore.SaveCloses(ctx, symbol, points); err != nil {
				output.Error("Save failed: %v", err)
				return err
			}

			app.Logger.Info().Str("symbol", symbol).Int("closes", len(points)).Msg("imported price history")
			output.Success("Imported %d closes for %s", len(points), symbol)
			return nil
		},
	}
	return cmd
}

func newVolDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <symbol>",
		Short: "Delete a symbol's stored price history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])

			historyStore, err := app.HistoryStore()
			if err != nil {
				output.Error("Failed to open price history: %v", err)
				return err
			}
			if err := historyStore.DeleteSymbol(ctx, symbol); err != nil {
				output.Error("Delete failed: %v", err)
				return err
			}

			output.Success("Deleted price history for %s", symbol)
			return nil
		},
	}
	return cmd
}

func newVolListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List symbols with stored price history",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			historyStore, err := app.HistoryStore()
			if err != nil {
				output.Error("Failed to open price history: %v", err)
				return err
			}

			symbols, err := historyStore.ListSymbols(ctx)
			if err != nil {
				output.Error("List failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(symbols)
			}
			if len(symbols) == 0 {
				output.Dim("No price history stored")
				return nil
			}
			for _, s := range symbols {
				output.Println(s)
			}
			return nil
		},
	}
	return cmd
}
