package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"fincalc/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// parseOptionalAmount accepts an empty string or a positive dollar amount.
func parseOptionalAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("enter a dollar amount, or leave blank")
	}
	return v, nil
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	budgetIn := ""
	if cfg.General.MonthlyBudget != nil {
		budgetIn = fmt.Sprintf("%.2f", *cfg.General.MonthlyBudget)
	}
	percentIn := fmt.Sprintf("%g", cfg.Minimum.Percent)
	flatIn := fmt.Sprintf("%g", cfg.Minimum.Flat)
	termIn := fmt.Sprintf("%d", cfg.Mortgage.DefaultTermYears)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Debt payoff strategy").
				Description("Ordering used by allocate and plan.").
				Options(
					huh.NewOption("Avalanche (highest rate first)", "avalanche"),
					huh.NewOption("Snowball (smallest balance first)", "snowball"),
				).
				Value(&cfg.General.DefaultStrategy),

			huh.NewInput().
				Title("Monthly debt budget").
				Description("Used by allocate and plan when --budget is omitted. Leave blank to skip.").
				Validate(func(s string) error {
					_, err := parseOptionalAmount(s)
					return err
				}).
				Value(&budgetIn),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum payment: percent of balance").
				Validate(requirePositiveNumber).
				Value(&percentIn),

			huh.NewInput().
				Title("Minimum payment: flat floor ($)").
				Validate(requirePositiveNumber).
				Value(&flatIn),

			huh.NewInput().
				Title("Default mortgage term (years)").
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a whole number of years")
					}
					return nil
				}).
				Value(&termIn),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if budget, _ := parseOptionalAmount(budgetIn); budget > 0 {
		cfg.General.MonthlyBudget = &budget
	} else {
		cfg.General.MonthlyBudget = nil
	}
	cfg.Minimum.Percent, _ = strconv.ParseFloat(strings.TrimSpace(percentIn), 64)
	cfg.Minimum.Flat, _ = strconv.ParseFloat(strings.TrimSpace(flatIn), 64)
	cfg.Mortgage.DefaultTermYears, _ = strconv.Atoi(strings.TrimSpace(termIn))

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\n  Saved to %s\n", config.Path())
	fmt.Println("  Run `fincalc setup` anytime to reconfigure.")
	return nil
}

func requirePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
