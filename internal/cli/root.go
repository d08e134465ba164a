package cli

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"options-engine/internal/config"
	"options-engine/internal/store"
)

// Version information
const Version = "0.1.0"

// errFlagUsage marks a rejected flag value whose detail was already printed.
var errFlagUsage = errors.New("invalid flag value")

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.HistoryStore
}

// HistoryStore lazily opens the price-history database. Pricing commands
// never touch it; only the vol commands pay the open cost.
func (a *App) HistoryStore() (store.HistoryStore, error) {
	if a.Store != nil {
		return a.Store, nil
	}
	s, err := store.NewSQLiteStore(a.Config.Store.Path)
	if err != nil {
		return nil, err
	}
	a.Store = s
	return s, nil
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:     "options-engine",
		Short:   "Options pricing and strategy analytics",
		Version: Version,
		Long: `Options pricing and strategy analytics engine.

Computes Black-Scholes theoretical prices, Greeks, probability statistics,
synthetic option chains, multi-leg strategy payoffs, and IV surfaces from
plain numeric inputs. All calculations are deterministic and stateless.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(newPriceCmd(app))
	rootCmd.AddCommand(newGreeksCmd(app))
	rootCmd.AddCommand(newChainCmd(app))
	rootCmd.AddCommand(newProbabilityCmd(app))
	rootCmd.AddCommand(newVolCmd(app))
	rootCmd.AddCommand(newStrategyCmd(app))
	rootCmd.AddCommand(newSurfaceCmd(app))

	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.Store != nil {
			return app.Store.Close()
		}
		return nil
	}

	return rootCmd
}

// optionFlags registers the shared numeric inputs of every pricing command.
func optionFlags(cmd *cobra.Command, app *App) {
	cmd.Flags().Float64("spot", 0, "Underlying spot price (required)")
	cmd.Flags().Int("days", 30, "Calendar days to expiry")
	cmd.Flags().Float64("rate", app.Config.Pricing.RiskFreeRate, "Annualized risk-free rate")
	cmd.Flags().Float64("vol", app.Config.Pricing.DefaultVolatility, "Annualized volatility")
	cmd.MarkFlagRequired("spot")
}
