package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/cli"
	"fincalc/internal/config"
	"fincalc/internal/debtplan"
)

var (
	flagAllocBudget   float64
	flagAllocStrategy string
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Distribute one month's budget across tracked cards",
	Long: "Split a monthly debt budget across all tracked cards: minimum\n" +
		"payments first in strategy order, then the surplus onto the top\n" +
		"priority card.",
	RunE: runAllocate,
}

func init() {
	allocateCmd.Flags().Float64Var(&flagAllocBudget, "budget", 0, "Total monthly budget (default from config)")
	allocateCmd.Flags().StringVar(&flagAllocStrategy, "strategy", "", "avalanche or snowball (default from config)")
	rootCmd.AddCommand(allocateCmd)
}

// resolveStrategy applies the config default when the flag is empty.
func resolveStrategy(flagValue string) (debtplan.Strategy, error) {
	name := flagValue
	if name == "" {
		name = loadConfig().General.DefaultStrategy
	}
	return debtplan.ParseStrategy(name)
}

// resolveBudget applies the config default when the flag is zero.
func resolveBudget(flagValue float64) (float64, error) {
	if flagValue > 0 {
		return flagValue, nil
	}
	cfg := loadConfig()
	if cfg.General.MonthlyBudget != nil && *cfg.General.MonthlyBudget > 0 {
		return *cfg.General.MonthlyBudget, nil
	}
	return 0, fmt.Errorf("no budget given; pass --budget or set monthly_budget in %s", config.Path())
}

func runAllocate(_ *cobra.Command, _ []string) error {
	strategy, err := resolveStrategy(flagAllocStrategy)
	if err != nil {
		return err
	}
	budget, err := resolveBudget(flagAllocBudget)
	if err != nil {
		return err
	}

	cards, err := loadCards()
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Println("\n  No cards tracked yet. Add one with `fincalc cards add`.")
		return nil
	}

	var minimums float64
	for _, c := range cards {
		minimums += c.MinimumPayment
	}

	allocations := debtplan.Distribute(cards, budget, strategy)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ALLOCATION  %s · %s", cli.FormatUSD(budget), strategy)))
	fmt.Println()

	var total float64
	rows := make([][]string, 0, len(allocations)+2)
	for _, a := range allocations {
		rows = append(rows, []string{a.Name, cli.FormatUSD(a.Payment)})
		total += a.Payment
	}
	rows = append(rows, []string{"---"}, []string{"total", cli.FormatUSD(total)})

	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"Card", "Payment"}, Rows: rows}))

	if budget < minimums {
		fmt.Println(cli.Warnf("  Budget %s does not cover the %s in combined minimums; lower-priority cards got less.",
			cli.FormatUSD(budget), cli.FormatUSD(minimums)))
	}
	fmt.Println()
	return nil
}
