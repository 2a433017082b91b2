// Package cmd implements the fincalc CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"fincalc/internal/config"
	"fincalc/internal/model"
	"fincalc/internal/store"
)

var flagDBPath string

var rootCmd = &cobra.Command{
	Use:   "fincalc",
	Short: "Personal finance calculators",
	Long: "Mortgage, credit card and debt payoff calculators.\n" +
		"Track cards with `fincalc cards add`, then project payoff plans,\n" +
		"utilization and payment allocations across them.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", store.DefaultPath(), "Database file for saved cards and scenarios")
}

// loadConfig returns the saved configuration, or defaults when none exists.
// Config errors are not fatal for calculations.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// openStore opens the card/scenario database shared by all commands.
func openStore() (*store.Store, error) {
	return store.Open(flagDBPath)
}

// loadCards fetches all tracked cards from the store.
func loadCards() ([]model.Card, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()
	return s.ListCards()
}
