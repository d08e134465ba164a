package cli

import (
	"math"
	"os"

	"github.com/spf13/cobra"

	"options-engine/internal/chain"
	"options-engine/internal/export"
	"options-engine/internal/models"
)

func newChainCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Synthetic options chain around spot",
		Long: `Generate a synthetic options chain.

Strikes ladder symmetrically around the at-the-money strike using a
denomination-dependent step (5 above 100, 2.5 above 50, else 1), priced
with a single flat volatility.`,
		Example: `  options-engine chain --spot 102 --days 30 --vol 0.25
  options-engine chain --spot 102 --span 5 --csv chain.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			spot, _ := cmd.Flags().GetFloat64("spot")
			days, _ := cmd.Flags().GetInt("days")
			rate, _ := cmd.Flags().GetFloat64("rate")
			vol, _ := cmd.Flags().GetFloat64("vol")
			span, _ := cmd.Flags().GetInt("span")
			csvPath, _ := cmd.Flags().GetString("csv")

			strikes := chain.StrikeLadder(spot, span)
			c, err := chain.Generate(spot, rate, vol, strikes, days)
			if err != nil {
				output.Error("Chain generation failed: %v", err)
				return err
			}

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteChain(f, c); err != nil {
					return err
				}
				output.Success("Chain written to %s", csvPath)
				return nil
			}

			if output.IsJSON() {
				return output.JSON(c)
			}

			return displayChain(output, c)
		},
	}

	optionFlags(cmd, app)
	cmd.Flags().Int("span", app.Config.Chain.StrikeSpan, "Strike steps each side of ATM")
	cmd.Flags().String("csv", "", "Write the chain to a CSV file instead of stdout")

	return cmd
}

func displayChain(output *Output, c models.Chain) error {
	output.Bold("Options Chain - spot %s, %d days", FormatPrice(c.Spot), c.DaysToExpiry)
	output.Println()
	output.Printf("%-10s %-8s │ %-10s │ %-10s %-8s\n",
		"Call", "Δ", "Strike", "Put", "Δ")

	atm := nearestStrike(c.Spot, c.Rows)
	for _, row := range c.Rows {
		strikeStr := FormatPrice(row.Strike)
		if row.Strike == atm {
			strikeStr = output.BoldText(strikeStr)
		}
		output.Printf("%-10s %-8s │ %-10s │ %-10s %-8s\n",
			FormatPrice(row.Call.Price), FormatGreek(row.Call.Greeks.Delta),
			strikeStr,
			FormatPrice(row.Put.Price), FormatGreek(row.Put.Greeks.Delta))
	}
	return nil
}

func nearestStrike(spot float64, rows []models.ChainRow) float64 {
	best := math.Inf(1)
	var strike float64
	for _, row := range rows {
		if d := math.Abs(row.Strike - spot); d < best {
			best = d
			strike = row.Strike
		}
	}
	return strike
}
