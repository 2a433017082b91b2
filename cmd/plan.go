package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/cli"
	"fincalc/internal/debtplan"
	"fincalc/internal/model"
)

var (
	flagPlanBudget    float64
	flagPlanStrategy  string
	flagPlanCompare   bool
	flagPlanMaxMonths int
	flagPlanDetail    bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Multi-month debt payoff plan",
	Long: "Simulate paying a fixed monthly budget across all tracked cards\n" +
		"until every balance clears. --compare runs both strategies and\n" +
		"shows what the avalanche ordering saves.",
	RunE: runPlan,
}

func init() {
	planCmd.Flags().Float64Var(&flagPlanBudget, "budget", 0, "Total monthly budget (default from config)")
	planCmd.Flags().StringVar(&flagPlanStrategy, "strategy", "", "avalanche or snowball (default from config)")
	planCmd.Flags().BoolVar(&flagPlanCompare, "compare", false, "Compare both strategies")
	planCmd.Flags().IntVar(&flagPlanMaxMonths, "max-months", 0, "Simulation cap in months (default 600)")
	planCmd.Flags().BoolVar(&flagPlanDetail, "detail", false, "Print every month instead of the summary")
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	budget, err := resolveBudget(flagPlanBudget)
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

	if flagPlanCompare {
		return renderComparison(debtplan.Compare(cards, budget, flagPlanMaxMonths), budget)
	}

	strategy, err := resolveStrategy(flagPlanStrategy)
	if err != nil {
		return err
	}
	return renderPlan(debtplan.Plan(cards, budget, strategy, flagPlanMaxMonths), budget)
}

func renderPlan(res model.PlanResult, budget float64) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PAYOFF PLAN  %s/mo · %s", cli.FormatUSD(budget), res.Strategy)))
	fmt.Println()

	if len(res.Months) == 0 {
		fmt.Println("  Nothing to pay off.")
		fmt.Println()
		return nil
	}

	rows := [][]string{
		{"Total debt", cli.FormatUSD(res.TotalDebt)},
		{"Months to debt free", cli.FormatMonths(res.PayoffMonths)},
		{"Total interest", cli.FormatUSD(res.TotalInterest)},
	}
	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"", "Value"}, Rows: rows}))

	// Balance trajectory across the plan.
	trajectory := make([]float64, 0, len(res.Months))
	for _, m := range res.Months {
		var open float64
		for _, p := range m.Payments {
			open += p.RemainingBalance
		}
		trajectory = append(trajectory, open)
	}
	fmt.Printf("\n  Balance  %s\n", cli.RenderSparkline(trajectory))

	if res.Capped {
		fmt.Println(cli.Warnf("  The budget cannot clear these balances within the simulation cap."))
	}

	if flagPlanDetail {
		fmt.Println()
		detail := make([][]string, 0, len(res.Months))
		for _, m := range res.Months {
			var remaining float64
			for _, p := range m.Payments {
				remaining += p.RemainingBalance
			}
			detail = append(detail, []string{
				fmt.Sprintf("%d", m.Month),
				cli.FormatUSD(m.Interest),
				cli.FormatUSD(m.TotalPaid),
				cli.FormatUSD(remaining),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Month by month",
			Headers: []string{"Month", "Interest", "Paid", "Remaining"},
			Rows:    detail,
		}))
	}

	fmt.Println()
	return nil
}

func renderComparison(c model.Comparison, budget float64) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STRATEGY COMPARISON  %s/mo", cli.FormatUSD(budget))))
	fmt.Println()

	rows := [][]string{
		{"avalanche", cli.FormatMonths(c.Avalanche.PayoffMonths), cli.FormatUSD(c.Avalanche.TotalInterest)},
		{"snowball", cli.FormatMonths(c.Snowball.PayoffMonths), cli.FormatUSD(c.Snowball.TotalInterest)},
		{"---"},
		{"avalanche saves", cli.FormatMonths(c.MonthsSaved), cli.FormatUSD(c.InterestSaved)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Strategy", "Payoff", "Interest"},
		Rows:    rows,
	}))

	if c.Avalanche.Capped || c.Snowball.Capped {
		fmt.Println(cli.Warnf("  At least one strategy hit the simulation cap before payoff."))
	}
	fmt.Println()
	return nil
}
