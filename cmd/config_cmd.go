package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default strategy: %s\n", cfg.General.DefaultStrategy)
	if cfg.General.MonthlyBudget != nil {
		fmt.Printf("    Monthly budget:   $%.2f\n", *cfg.General.MonthlyBudget)
	} else {
		fmt.Println("    Monthly budget:   not set")
	}
	fmt.Println()

	fmt.Println("  [Minimum payment]")
	fmt.Printf("    Percent of balance: %.2f%%\n", cfg.Minimum.Percent)
	fmt.Printf("    Flat floor:         $%.2f\n", cfg.Minimum.Flat)
	fmt.Println()

	fmt.Println("  [Mortgage]")
	fmt.Printf("    Default term: %d years\n", cfg.Mortgage.DefaultTermYears)
	if cfg.Mortgage.DefaultRate > 0 {
		fmt.Printf("    Default rate: %.2f%%\n", cfg.Mortgage.DefaultRate)
	}
	fmt.Println()

	fmt.Println("  Run `fincalc setup` to reconfigure.")
	return nil
}
