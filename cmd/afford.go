package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/cli"
	"fincalc/internal/mortgage"
)

var (
	flagAffordBudget  float64
	flagAffordDownPct float64
	flagAffordRate    float64
	flagAffordTerm    int
	flagAffordEscrow  float64
)

var affordCmd = &cobra.Command{
	Use:   "afford",
	Short: "Maximum affordable house price for a monthly budget",
	RunE:  runAfford,
}

func init() {
	affordCmd.Flags().Float64Var(&flagAffordBudget, "budget", 0, "Total monthly housing budget")
	affordCmd.Flags().Float64Var(&flagAffordDownPct, "down-pct", 0, "Planned down payment (%)")
	affordCmd.Flags().Float64Var(&flagAffordRate, "rate", 0, "Annual interest rate (%)")
	affordCmd.Flags().IntVar(&flagAffordTerm, "term", 0, "Loan term in years (default from config)")
	affordCmd.Flags().Float64Var(&flagAffordEscrow, "escrow", 0, "Monthly tax + insurance estimate")
	rootCmd.AddCommand(affordCmd)
}

func runAfford(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("term") {
		flagAffordTerm = loadConfig().Mortgage.DefaultTermYears
	}
	if flagAffordBudget <= 0 {
		return fmt.Errorf("--budget must be positive")
	}

	price := mortgage.AffordablePrice(flagAffordBudget, flagAffordDownPct,
		flagAffordRate, flagAffordTerm, flagAffordEscrow)

	fmt.Println()
	fmt.Println(cli.RenderTitle("AFFORDABILITY"))
	fmt.Println()

	if price == 0 {
		fmt.Println(cli.Warnf("  The escrow estimate consumes the whole budget; nothing left for a loan."))
		fmt.Println()
		return nil
	}

	available := flagAffordBudget - flagAffordEscrow
	rows := [][]string{
		{"Monthly budget", cli.FormatUSD(flagAffordBudget)},
		{"Escrow (tax + insurance)", cli.FormatUSD(flagAffordEscrow)},
		{"Available for P&I", cli.FormatUSD(available)},
		{"---"},
		{"Affordable house price", cli.FormatUSD(price)},
		{"Down payment needed", cli.FormatUSD(price * flagAffordDownPct / 100)},
	}
	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"", "Amount"}, Rows: rows}))
	fmt.Println()
	return nil
}
