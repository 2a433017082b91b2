package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/cli"
	"fincalc/internal/creditcard"
)

var (
	flagPayoffBalance float64
	flagPayoffRate    float64
	flagPayoffAmount  float64
	flagPayoffCard    string
)

var payoffCmd = &cobra.Command{
	Use:   "payoff",
	Short: "Credit card payoff projection",
	Long: "Project how long a fixed monthly payment takes to clear a card\n" +
		"balance, and what it saves against the minimum payment. Use --card\n" +
		"to pull the balance and rate from a tracked card.",
	RunE: runPayoff,
}

func init() {
	payoffCmd.Flags().Float64Var(&flagPayoffBalance, "balance", 0, "Current balance")
	payoffCmd.Flags().Float64Var(&flagPayoffRate, "rate", 0, "Annual interest rate (%)")
	payoffCmd.Flags().Float64Var(&flagPayoffAmount, "payment", 0, "Monthly payment")
	payoffCmd.Flags().StringVar(&flagPayoffCard, "card", "", "Use a tracked card's balance and rate")
	rootCmd.AddCommand(payoffCmd)
}

func runPayoff(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	balance, rate := flagPayoffBalance, flagPayoffRate
	minimum := 0.0
	if flagPayoffCard != "" {
		s, err := openStore()
		if err != nil {
			return err
		}
		card, err := s.GetCard(flagPayoffCard)
		_ = s.Close()
		if err != nil {
			return err
		}
		balance, rate, minimum = card.Balance, card.InterestRate, card.MinimumPayment
	}
	if balance <= 0 {
		return fmt.Errorf("--balance must be positive")
	}
	if flagPayoffAmount <= 0 {
		return fmt.Errorf("--payment must be positive")
	}
	if minimum == 0 {
		minimum = creditcard.MinimumPayment(balance, cfg.Minimum.Percent, cfg.Minimum.Flat)
	}

	res := creditcard.PayoffTime(balance, rate, flagPayoffAmount)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PAYOFF  %s at %s", cli.FormatUSD(balance), cli.FormatPercent(rate))))
	fmt.Println()

	if res.Unreachable {
		interest := creditcard.MonthlyInterest(balance, rate)
		fmt.Println(cli.Bad(fmt.Sprintf(
			"  A %s payment never clears this balance: monthly interest alone is %s.",
			cli.FormatUSD(flagPayoffAmount), cli.FormatUSD(interest))))
		fmt.Println()
		return nil
	}

	rows := [][]string{
		{"Monthly payment", cli.FormatUSD(flagPayoffAmount)},
		{"Months to payoff", cli.FormatMonths(res.Months)},
		{"Total interest", cli.FormatUSD(res.TotalInterest)},
		{"Total paid", cli.FormatUSD(res.TotalPaid)},
	}
	if res.Months == creditcard.MaxPayoffMonths {
		rows = append(rows, []string{"Note", "projection capped at 50 years"})
	}

	savings := creditcard.InterestSavings(balance, rate, minimum, flagPayoffAmount)
	rows = append(rows, []string{"---"})
	if savings.MinimumPayoff.Unreachable {
		rows = append(rows, []string{"vs minimum payment", "minimum never pays off"})
	} else {
		rows = append(rows,
			[]string{"Minimum payment", cli.FormatUSD(minimum)},
			[]string{"Payoff at minimum", cli.FormatMonths(savings.MinimumPayoff.Months)},
			[]string{"Interest saved", cli.Good(cli.FormatUSD(savings.InterestSaved))},
			[]string{"Time saved", cli.Good(cli.FormatMonths(savings.MonthsSaved))},
		)
	}

	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"", "Value"}, Rows: rows}))
	fmt.Println()
	return nil
}
