package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/cli"
	"fincalc/internal/mortgage"
)

var (
	flagPrice     float64
	flagDown      float64
	flagRate      float64
	flagTermYears int
	flagTax       float64
	flagInsurance float64
	flagPMIRate   float64
	flagSaveAs    string
	flagScenario  string
)

var mortgageCmd = &cobra.Command{
	Use:   "mortgage",
	Short: "Full mortgage payment breakdown",
	Long: "Compute the monthly payment, escrow components, PMI and lifetime\n" +
		"cost of a fixed-rate mortgage. Save inputs with --save and recall\n" +
		"them with --scenario.",
	RunE: runMortgage,
}

func init() {
	mortgageCmd.Flags().Float64Var(&flagPrice, "price", 0, "Sale price")
	mortgageCmd.Flags().Float64Var(&flagDown, "down", 0, "Down payment")
	mortgageCmd.Flags().Float64Var(&flagRate, "rate", 0, "Annual interest rate (%)")
	mortgageCmd.Flags().IntVar(&flagTermYears, "term", 0, "Loan term in years (default from config)")
	mortgageCmd.Flags().Float64Var(&flagTax, "tax", 0, "Annual property tax")
	mortgageCmd.Flags().Float64Var(&flagInsurance, "insurance", 0, "Annual home insurance")
	mortgageCmd.Flags().Float64Var(&flagPMIRate, "pmi", 0, "Annual PMI rate (%)")
	mortgageCmd.Flags().StringVar(&flagSaveAs, "save", "", "Save these inputs as a named scenario")
	mortgageCmd.Flags().StringVar(&flagScenario, "scenario", "", "Load inputs from a saved scenario")
	rootCmd.AddCommand(mortgageCmd)
}

func mortgageInputs(cmd *cobra.Command) (mortgage.Inputs, error) {
	if flagScenario != "" {
		s, err := openStore()
		if err != nil {
			return mortgage.Inputs{}, err
		}
		defer func() { _ = s.Close() }()
		return s.GetScenario(flagScenario)
	}

	in := mortgage.Inputs{
		LoanAmount:    flagPrice,
		DownPayment:   flagDown,
		InterestRate:  flagRate,
		TermYears:     flagTermYears,
		PropertyTax:   flagTax,
		HomeInsurance: flagInsurance,
		PMIRate:       flagPMIRate,
	}
	// Config defaults apply only when the flag was omitted, so an explicit
	// --rate 0 still means a zero-rate loan.
	cfg := loadConfig()
	if !cmd.Flags().Changed("term") && in.TermYears == 0 {
		in.TermYears = cfg.Mortgage.DefaultTermYears
	}
	if !cmd.Flags().Changed("rate") {
		in.InterestRate = cfg.Mortgage.DefaultRate
	}
	return in, nil
}

func runMortgage(cmd *cobra.Command, _ []string) error {
	in, err := mortgageInputs(cmd)
	if err != nil {
		return err
	}

	res, err := mortgage.Calculate(in)
	if err != nil {
		return err
	}

	if flagSaveAs != "" {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		if err := s.SaveScenario(flagSaveAs, in); err != nil {
			return err
		}
	}

	downPct := in.DownPayment / in.LoanAmount * 100

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MORTGAGE  %s over %dy", cli.FormatUSD(in.LoanAmount), in.TermYears)))
	fmt.Println()

	rows := [][]string{
		{"Financed principal", cli.FormatUSD(res.Principal)},
		{"Down payment", fmt.Sprintf("%s (%s)", cli.FormatUSD(in.DownPayment), cli.FormatPercent(downPct))},
		{"---"},
		{"Principal & interest", cli.FormatUSD(res.MonthlyPayment)},
		{"Property tax", cli.FormatUSD(res.MonthlyTax)},
		{"Home insurance", cli.FormatUSD(res.MonthlyInsurance)},
		{"PMI", cli.FormatUSD(res.MonthlyPMI)},
		{"Total monthly", cli.FormatUSD(res.TotalMonthlyPayment)},
		{"---"},
		{"Total interest", cli.FormatUSD(res.TotalInterest)},
		{"Total cost", cli.FormatUSD(res.TotalCost)},
	}

	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"", "Amount"}, Rows: rows}))

	if res.MonthlyPMI > 0 {
		fmt.Println(cli.Warnf("  PMI applies while the down payment is under 20%% of the price."))
	}
	if flagSaveAs != "" {
		fmt.Printf("  Saved scenario %q.\n", flagSaveAs)
	}
	fmt.Println()
	return nil
}
