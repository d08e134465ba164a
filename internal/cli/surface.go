package cli

import (
	"os"

	"github.com/spf13/cobra"

	"options-engine/internal/export"
	"options-engine/internal/models"
	"options-engine/internal/surface"
)

func newSurfaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "surface",
		Short: "Theoretical price / IV surface across strikes and expiries",
		Long: `Generate an IV surface grid.

Every point carries the single input volatility (no skew or smile is
modeled); the price shape comes from moneyness and time value.`,
		Example: `  options-engine surface --spot 100 --vol 0.30
  options-engine surface --spot 100 --expiries 7,30,90 --strike-count 11 --csv surface.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			spot, _ := cmd.Flags().GetFloat64("spot")
			rate, _ := cmd.Flags().GetFloat64("rate")
			vol, _ := cmd.Flags().GetFloat64("vol")
			expiries, _ := cmd.Flags().GetIntSlice("expiries")
			strikeCount, _ := cmd.Flags().GetInt("strike-count")
			csvPath, _ := cmd.Flags().GetString("csv")

			sv, err := surface.Generate(spot, rate, vol, expiries, strikeCount)
			if err != nil {
				output.Error("Surface generation failed: %v", err)
				return err
			}

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteSurface(f, sv); err != nil {
					return err
				}
				output.Success("Surface written to %s", csvPath)
				return nil
			}

			if output.IsJSON() {
				return output.JSON(sv)
			}

			return displaySurface(output, sv)
		},
	}

	cmd.Flags().Float64("spot", 0, "Underlying spot price (required)")
	cmd.Flags().Float64("rate", app.Config.Pricing.RiskFreeRate, "Annualized risk-free rate")
	cmd.Flags().Float64("vol", app.Config.Pricing.DefaultVolatility, "Annualized volatility")
	cmd.MarkFlagRequired("spot")
	cmd.Flags().IntSlice("expiries", app.Config.Surface.ExpiriesDays, "Expiries in calendar days")
	cmd.Flags().Int("strike-count", app.Config.Surface.StrikeCount, "Strikes per expiry")
	cmd.Flags().String("csv", "", "Write the surface to a CSV file instead of stdout")

	return cmd
}

// displaySurface prints the surface as an expiry-per-row price matrix.
func displaySurface(output *Output, sv models.IVSurface) error {
	if len(sv.Points) == 0 {
		output.Warning("Empty surface")
		return nil
	}
	output.Bold("Theoretical Price Surface - spot %s", FormatPrice(sv.Spot))
	output.Println()

	// Points arrive ordered by expiry then strike; pick the strike axis off
	// the first expiry block.
	var strikes []float64
	first := sv.Points[0].ExpiryDays
	for _, p := range sv.Points {
		if p.ExpiryDays != first {
			break
		}
		strikes = append(strikes, p.Strike)
	}

	output.Printf("%8s", "days")
	for _, k := range strikes {
		output.Printf(" %9s", FormatPrice(k))
	}
	output.Println()

	for i, p := range sv.Points {
		if i%len(strikes) == 0 {
			output.Printf("%8d", p.ExpiryDays)
		}
		output.Printf(" %9s", FormatPrice(p.TheoreticalPrice))
		if i%len(strikes) == len(strikes)-1 {
			output.Println()
		}
	}
	return nil
}
