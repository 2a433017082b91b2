package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/cli"
	"fincalc/internal/creditcard"
	"fincalc/internal/tui"
)

var (
	flagSchedBalance float64
	flagSchedRate    float64
	flagSchedAmount  float64
	flagSchedMax     int
	flagSchedBrowse  bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Month-by-month credit card payment schedule",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().Float64Var(&flagSchedBalance, "balance", 0, "Current balance")
	scheduleCmd.Flags().Float64Var(&flagSchedRate, "rate", 0, "Annual interest rate (%)")
	scheduleCmd.Flags().Float64Var(&flagSchedAmount, "payment", 0, "Monthly payment")
	scheduleCmd.Flags().IntVar(&flagSchedMax, "max", creditcard.MaxPayoffMonths, "Maximum months to simulate")
	scheduleCmd.Flags().BoolVar(&flagSchedBrowse, "browse", false, "Open the schedule in an interactive viewer")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(_ *cobra.Command, _ []string) error {
	if flagSchedBalance <= 0 {
		return fmt.Errorf("--balance must be positive")
	}
	if flagSchedAmount <= 0 {
		return fmt.Errorf("--payment must be positive")
	}

	schedule := creditcard.PaymentSchedule(flagSchedBalance, flagSchedRate, flagSchedAmount, flagSchedMax)
	if len(schedule) == 0 {
		return fmt.Errorf("no schedule produced; check the inputs")
	}

	headers := []string{"Month", "Payment", "Interest", "Principal", "Balance"}
	rows := make([][]string, 0, len(schedule))
	for _, e := range schedule {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Month),
			cli.FormatUSD(e.Amount),
			cli.FormatUSD(e.InterestCharged),
			cli.FormatUSD(e.PrincipalPaid),
			cli.FormatUSD(e.RemainingBalance),
		})
	}

	title := fmt.Sprintf("PAYMENT SCHEDULE  %s at %s, %s/mo",
		cli.FormatUSD(flagSchedBalance), cli.FormatPercent(flagSchedRate), cli.FormatUSD(flagSchedAmount))

	if flagSchedBrowse {
		return tui.Run(title, headers, rows)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{Headers: headers, Rows: rows}))

	last := schedule[len(schedule)-1]
	if last.RemainingBalance > 0.01 {
		fmt.Println(cli.Warnf("  Balance of %s remains after %d months.",
			cli.FormatUSD(last.RemainingBalance), len(schedule)))
	}
	fmt.Println()
	return nil
}
