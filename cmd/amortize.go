package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/cli"
	"fincalc/internal/mortgage"
	"fincalc/internal/tui"
)

var (
	flagAmortPrincipal float64
	flagAmortRate      float64
	flagAmortTerm      int
	flagAmortShow      int
	flagAmortBrowse    bool
)

var amortizeCmd = &cobra.Command{
	Use:   "amortize",
	Short: "Month-by-month amortization schedule",
	RunE:  runAmortize,
}

func init() {
	amortizeCmd.Flags().Float64Var(&flagAmortPrincipal, "principal", 0, "Financed amount")
	amortizeCmd.Flags().Float64Var(&flagAmortRate, "rate", 0, "Annual interest rate (%)")
	amortizeCmd.Flags().IntVar(&flagAmortTerm, "term", 0, "Loan term in years (default from config)")
	amortizeCmd.Flags().IntVar(&flagAmortShow, "show", 12, "Number of months to print (0 for all)")
	amortizeCmd.Flags().BoolVar(&flagAmortBrowse, "browse", false, "Open the schedule in an interactive viewer")
	rootCmd.AddCommand(amortizeCmd)
}

func runAmortize(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("term") {
		flagAmortTerm = loadConfig().Mortgage.DefaultTermYears
	}
	if flagAmortPrincipal <= 0 {
		return fmt.Errorf("--principal must be positive")
	}
	if flagAmortTerm <= 0 {
		return fmt.Errorf("--term must be positive")
	}

	schedule := mortgage.AmortizationSchedule(flagAmortPrincipal, flagAmortRate, flagAmortTerm)
	headers := []string{"Month", "Principal", "Interest", "Balance", "Interest to date"}

	rows := make([][]string, 0, len(schedule))
	for _, e := range schedule {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Month),
			cli.FormatUSD(e.PrincipalPayment),
			cli.FormatUSD(e.InterestPayment),
			cli.FormatUSD(e.RemainingBalance),
			cli.FormatUSD(e.TotalInterestPaid),
		})
	}

	title := fmt.Sprintf("AMORTIZATION  %s at %s over %dy",
		cli.FormatUSD(flagAmortPrincipal), cli.FormatPercent(flagAmortRate), flagAmortTerm)

	if flagAmortBrowse {
		return tui.Run(title, headers, rows)
	}

	shown := rows
	if flagAmortShow > 0 && flagAmortShow < len(rows) {
		shown = rows[:flagAmortShow]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{Headers: headers, Rows: shown}))
	if len(shown) < len(rows) {
		fmt.Printf("  ... %d more months. Use --show 0 or --browse for the full schedule.\n", len(rows)-len(shown))
	}
	fmt.Println()
	return nil
}
