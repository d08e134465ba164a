package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"options-engine/internal/export"
	"options-engine/internal/models"
	"options-engine/internal/strategy"
)

func newStrategyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Multi-leg option strategy analytics",
		Long:  "Compose option strategies and derive net premium, breakevens, and max profit/loss.",
	}

	cmd.AddCommand(newStraddleCmd(app))
	cmd.AddCommand(newIronCondorCmd(app))

	return cmd
}

func newStraddleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "straddle",
		Short: "Long straddle: call + put at the same strike",
		Example: `  options-engine strategy straddle --spot 100 --strike 100 --days 30 --vol 0.25
  options-engine strategy straddle --spot 100 --strike 100 --payoff`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			spot, _ := cmd.Flags().GetFloat64("spot")
			strike, _ := cmd.Flags().GetFloat64("strike")
			days, _ := cmd.Flags().GetInt("days")
			rate, _ := cmd.Flags().GetFloat64("rate")
			vol, _ := cmd.Flags().GetFloat64("vol")

			st, err := strategy.Straddle(spot, strike, rate, vol, days)
			if err != nil {
				output.Error("Straddle composition failed: %v", err)
				return err
			}
			return renderStrategy(cmd, output, st)
		},
	}

	optionFlags(cmd, app)
	cmd.Flags().Float64("strike", 0, "Strike price (required)")
	cmd.MarkFlagRequired("strike")
	strategyOutputFlags(cmd)

	return cmd
}

func newIronCondorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iron-condor",
		Short: "Short iron condor: short put spread + short call spread",
		Long: `Compose a short iron condor.

Strikes must be strictly ascending: put-buy < put-sell < call-sell < call-buy.`,
		Example: `  options-engine strategy iron-condor --spot 100 --strikes 90,95,105,110 --days 30 --vol 0.25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			spot, _ := cmd.Flags().GetFloat64("spot")
			days, _ := cmd.Flags().GetInt("days")
			rate, _ := cmd.Flags().GetFloat64("rate")
			vol, _ := cmd.Flags().GetFloat64("vol")
			strikes, _ := cmd.Flags().GetFloat64Slice("strikes")

			if len(strikes) != 4 {
				output.Error("--strikes needs exactly 4 values: putBuy,putSell,callSell,callBuy")
				return errFlagUsage
			}

			st, err := strategy.IronCondor(spot, strikes[0], strikes[1], strikes[2], strikes[3], rate, vol, days)
			if err != nil {
				output.Error("Iron condor composition failed: %v", err)
				return err
			}
			return renderStrategy(cmd, output, st)
		},
	}

	optionFlags(cmd, app)
	cmd.Flags().Float64Slice("strikes", nil, "putBuy,putSell,callSell,callBuy (required)")
	cmd.MarkFlagRequired("strikes")
	strategyOutputFlags(cmd)

	return cmd
}

func strategyOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("payoff", false, "Render an ASCII payoff diagram")
	cmd.Flags().String("csv", "", "Write strategy legs to a CSV file")
}

func renderStrategy(cmd *cobra.Command, output *Output, st models.Strategy) error {
	csvPath, _ := cmd.Flags().GetString("csv")
	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteStrategyLegs(f, st); err != nil {
			return err
		}
		output.Success("Strategy legs written to %s", csvPath)
		return nil
	}

	if output.IsJSON() {
		return output.JSON(st)
	}

	output.Bold("%s - spot %s, %d days", strings.ReplaceAll(st.Name, "_", " "), FormatPrice(st.Spot), st.DaysToExpiry)
	output.Println()

	output.Bold("Legs")
	for i, leg := range st.Legs {
		output.Printf("  %d. %-4s %s %s @ %s\n",
			i+1, leg.Side, FormatPrice(leg.Strike), leg.Type, FormatPrice(leg.Premium))
	}
	output.Println()

	output.Bold("Analysis")
	output.Printf("  Net premium: %s\n", FormatPrice(st.NetPremium))
	output.Printf("  Max profit:  %s\n", output.Green(formatBound(st.MaxProfit)))
	output.Printf("  Max loss:    %s\n", output.Red(formatBound(st.MaxLoss)))
	if len(st.Breakevens) == 2 {
		output.Printf("  Breakevens:  %s / %s\n", FormatPrice(st.Breakevens[0]), FormatPrice(st.Breakevens[1]))
	}
	if st.Degenerate {
		output.Warning("  Credit exceeds wing width; strategy is likely misconfigured")
	}

	payoff, _ := cmd.Flags().GetBool("payoff")
	if payoff {
		output.Println()
		renderPayoffDiagram(output, st)
	}
	return nil
}

func formatBound(b models.ProfitBound) string {
	if b.Unlimited {
		return "Unlimited"
	}
	return FormatPrice(b.Amount)
}

// renderPayoffDiagram plots expiry payoff across a price range bracketing
// the breakevens.
func renderPayoffDiagram(output *Output, st models.Strategy) {
	const (
		width  = 61
		height = 15
	)

	lo, hi := payoffRange(st)
	step := (hi - lo) / float64(width-1)

	payoffs := make([]float64, width)
	minP, maxP := 0.0, 0.0
	for i := range payoffs {
		payoffs[i] = st.PayoffAt(lo + float64(i)*step)
		if payoffs[i] < minP {
			minP = payoffs[i]
		}
		if payoffs[i] > maxP {
			maxP = payoffs[i]
		}
	}
	if maxP == minP {
		maxP = minP + 1
	}

	// Bucket each column's payoff into one of the rows; row 0 is the top.
	band := (maxP - minP) / float64(height-1)
	rowFor := func(p float64) int {
		return int((maxP - p) / band)
	}
	zeroRow := -1
	if minP <= 0 && maxP >= 0 {
		zeroRow = rowFor(0)
	}

	output.Bold("Payoff at expiry")
	for row := 0; row < height; row++ {
		line := make([]byte, width)
		for col := range line {
			switch {
			case rowFor(payoffs[col]) == row:
				line[col] = '*'
			case row == zeroRow:
				line[col] = '-'
			default:
				line[col] = ' '
			}
		}
		label := ""
		if row == 0 {
			label = FormatPrice(maxP)
		} else if row == height-1 {
			label = FormatPrice(minP)
		} else if row == zeroRow {
			label = "0"
		}
		output.Printf("  %8s │%s\n", label, string(line))
	}
	output.Printf("  %8s  %s%*s\n", "", FormatPrice(lo), width-len(FormatPrice(lo)), FormatPrice(hi))
}

func payoffRange(st models.Strategy) (float64, float64) {
	lo, hi := st.Spot, st.Spot
	for _, be := range st.Breakevens {
		if be < lo {
			lo = be
		}
		if be > hi {
			hi = be
		}
	}
	span := hi - lo
	if span <= 0 {
		span = st.Spot * 0.2
	}
	lo -= span / 2
	if lo < 0 {
		lo = 0
	}
	return lo, hi + span/2
}
