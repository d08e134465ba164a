package cli

import (
	"github.com/spf13/cobra"

	"options-engine/internal/probability"
)

func newProbabilityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probability",
		Short: "Probability of finishing ITM, touch probability, expected move",
		Long: `Probability-of-outcome statistics under a zero-drift lognormal model.

Touch probability uses the reflection-principle heuristic (twice the
one-sided OTM probability), the convention retail platforms display.`,
		Example: `  options-engine probability --type call --spot 100 --strike 105 --days 30 --vol 0.25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			typStr, _ := cmd.Flags().GetString("type")
			spot, _ := cmd.Flags().GetFloat64("spot")
			strike, _ := cmd.Flags().GetFloat64("strike")
			days, _ := cmd.Flags().GetInt("days")
			vol, _ := cmd.Flags().GetFloat64("vol")

			typ, ok := parseOptionType(typStr)
			if !ok {
				output.Error("Invalid option type %q. Use call or put.", typStr)
				return errFlagUsage
			}

			result, err := probability.Probabilities(typ, spot, strike, vol, days)
			if err != nil {
				output.Error("Probability calculation failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(result)
			}

			output.Bold("Probabilities - %s %s @ %s, %d days", FormatPrice(spot), typ, FormatPrice(strike), days)
			output.Printf("  P(finish ITM):   %s\n", output.BoldText(FormatPercent(result.ProbITM)))
			output.Printf("  P(touch strike): %s\n", FormatPercent(result.ProbTouch))
			output.Printf("  Expected move:   ±%s\n", FormatPrice(result.ExpectedMove))
			output.Printf("  1σ range:        %s - %s\n", FormatPrice(result.RangeLow), FormatPrice(result.RangeHigh))
			return nil
		},
	}

	// Probabilities use a zero-drift model, so there is no --rate flag here.
	cmd.Flags().Float64("spot", 0, "Underlying spot price (required)")
	cmd.Flags().Int("days", 30, "Calendar days to expiry")
	cmd.Flags().Float64("vol", app.Config.Pricing.DefaultVolatility, "Annualized volatility")
	cmd.MarkFlagRequired("spot")
	cmd.Flags().String("type", "call", "Option type: call or put")
	cmd.Flags().Float64("strike", 0, "Strike price (required)")
	cmd.MarkFlagRequired("strike")

	return cmd
}
