package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/cli"
	"fincalc/internal/creditcard"
)

var utilizationCmd = &cobra.Command{
	Use:   "utilization",
	Short: "Credit utilization across tracked cards",
	RunE:  runUtilization,
}

func init() {
	rootCmd.AddCommand(utilizationCmd)
}

func runUtilization(_ *cobra.Command, _ []string) error {
	cards, err := loadCards()
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Println("\n  No cards tracked yet. Add one with `fincalc cards add`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CREDIT UTILIZATION"))
	fmt.Println()

	rows := make([][]string, 0, len(cards)+2)
	for _, c := range cards {
		pct := creditcard.Utilization(c.Balance, c.CreditLimit)
		usage := fmt.Sprintf("%s / %s", cli.FormatUSD(c.Balance), cli.FormatUSD(c.CreditLimit))
		used := cli.FormatPercent(pct)
		switch {
		case pct >= 70:
			used = cli.Bad(used)
		case pct >= 30:
			used = cli.Warn(used)
		}
		rows = append(rows, []string{
			c.Name, usage, cli.RenderUtilizationBar(pct, 20), used,
		})
	}
	total := creditcard.TotalUtilization(cards)
	rows = append(rows,
		[]string{"---"},
		[]string{"overall", "", cli.RenderUtilizationBar(total, 20), cli.FormatPercent(total)},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Card", "Balance / Limit", "", "Used"},
		Rows:    rows,
	}))

	if total >= 30 {
		fmt.Println(cli.Warnf("  Overall utilization above 30%% can weigh on credit scores."))
	}
	fmt.Println()
	return nil
}
