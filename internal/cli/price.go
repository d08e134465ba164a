package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"options-engine/internal/models"
	"options-engine/internal/pricing"
)

func parseOptionType(s string) (models.OptionType, bool) {
	typ := models.OptionType(strings.ToUpper(s))
	return typ, typ.IsValid()
}

func newPriceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Black-Scholes theoretical option price",
		Example: `  options-engine price --type call --spot 100 --strike 100 --days 90 --vol 0.30
  options-engine price --type put --spot 4500 --strike 4400 --days 7 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			typStr, _ := cmd.Flags().GetString("type")
			spot, _ := cmd.Flags().GetFloat64("spot")
			strike, _ := cmd.Flags().GetFloat64("strike")
			days, _ := cmd.Flags().GetInt("days")
			rate, _ := cmd.Flags().GetFloat64("rate")
			vol, _ := cmd.Flags().GetFloat64("vol")

			typ, ok := parseOptionType(typStr)
			if !ok {
				output.Error("Invalid option type %q. Use call or put.", typStr)
				return errFlagUsage
			}

			price, err := pricing.PriceDays(typ, spot, strike, days, rate, vol)
			if err != nil {
				output.Error("Pricing failed: %v", err)
				return err
			}

			app.Logger.Debug().
				Str("type", string(typ)).
				Float64("spot", spot).
				Float64("strike", strike).
				Int("days", days).
				Float64("price", price).
				Msg("priced option")

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"type":           typ,
					"spot":           spot,
					"strike":         strike,
					"days_to_expiry": days,
					"risk_free_rate": rate,
					"volatility":     vol,
					"price":          price,
				})
			}

			output.Bold("%s %s @ %s, %d days", FormatPrice(spot), typ, FormatPrice(strike), days)
			output.Printf("  Theoretical price: %s\n", output.BoldText(FormatPrice(price)))
			output.Printf("  Volatility: %s  Rate: %s\n", FormatPercent(vol), FormatPercent(rate))
			return nil
		},
	}

	optionFlags(cmd, app)
	cmd.Flags().String("type", "call", "Option type: call or put")
	cmd.Flags().Float64("strike", 0, "Strike price (required)")
	cmd.MarkFlagRequired("strike")

	return cmd
}

func newGreeksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greeks",
		Short: "Option Greeks (delta, gamma, theta, vega, rho)",
		Long: `Calculate option Greeks.

Theta is per calendar day; vega and rho are per 1% move.`,
		Example: `  options-engine greeks --type call --spot 100 --strike 100 --days 90 --vol 0.30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			typStr, _ := cmd.Flags().GetString("type")
			spot, _ := cmd.Flags().GetFloat64("spot")
			strike, _ := cmd.Flags().GetFloat64("strike")
			days, _ := cmd.Flags().GetInt("days")
			rate, _ := cmd.Flags().GetFloat64("rate")
			vol, _ := cmd.Flags().GetFloat64("vol")

			typ, ok := parseOptionType(typStr)
			if !ok {
				output.Error("Invalid option type %q. Use call or put.", typStr)
				return errFlagUsage
			}

			price, err := pricing.PriceDays(typ, spot, strike, days, rate, vol)
			if err != nil {
				output.Error("Pricing failed: %v", err)
				return err
			}
			greeks, err := pricing.GreeksDays(typ, spot, strike, days, rate, vol)
			if err != nil {
				output.Error("Greeks failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"type":   typ,
					"price":  price,
					"greeks": greeks,
				})
			}

			output.Bold("Greeks - %s %s @ %s, %d days", FormatPrice(spot), typ, FormatPrice(strike), days)
			output.Printf("  Price:      %s\n", FormatPrice(price))
			output.Printf("  Delta (Δ):  %s\n", output.BoldText(FormatGreek(greeks.Delta)))
			output.Printf("  Gamma (Γ):  %s\n", FormatGreek(greeks.Gamma))
			output.Printf("  Theta (Θ):  %s\n", output.Red(FormatGreek(greeks.Theta)))
			output.Printf("  Vega (ν):   %s\n", FormatGreek(greeks.Vega))
			output.Printf("  Rho (ρ):    %s\n", FormatGreek(greeks.Rho))
			return nil
		},
	}

	optionFlags(cmd, app)
	cmd.Flags().String("type", "call", "Option type: call or put")
	cmd.Flags().Float64("strike", 0, "Strike price (required)")
	cmd.MarkFlagRequired("strike")

	return cmd
}
