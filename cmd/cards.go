package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/internal/cli"
	"fincalc/internal/creditcard"
	"fincalc/internal/model"
)

var (
	flagCardName    string
	flagCardBalance float64
	flagCardRate    float64
	flagCardMinimum float64
	flagCardLimit   float64
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List tracked credit cards",
	RunE:  runCardsList,
}

var cardsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a tracked card",
	RunE:  runCardsAdd,
}

var cardsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a tracked card",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardsRm,
}

func init() {
	cardsAddCmd.Flags().StringVar(&flagCardName, "name", "", "Card name (required)")
	cardsAddCmd.Flags().Float64Var(&flagCardBalance, "balance", 0, "Current balance")
	cardsAddCmd.Flags().Float64Var(&flagCardRate, "rate", 0, "Annual interest rate (%)")
	cardsAddCmd.Flags().Float64Var(&flagCardMinimum, "min", 0, "Minimum payment (computed from config when omitted)")
	cardsAddCmd.Flags().Float64Var(&flagCardLimit, "limit", 0, "Credit limit")
	_ = cardsAddCmd.MarkFlagRequired("name")

	cardsCmd.AddCommand(cardsAddCmd)
	cardsCmd.AddCommand(cardsRmCmd)
	rootCmd.AddCommand(cardsCmd)
}

func runCardsList(_ *cobra.Command, _ []string) error {
	cards, err := loadCards()
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Println("\n  No cards tracked yet. Add one with `fincalc cards add`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("TRACKED CARDS"))
	fmt.Println()

	var totalBalance, totalMinimum float64
	rows := make([][]string, 0, len(cards)+2)
	for _, c := range cards {
		rows = append(rows, []string{
			c.Name,
			cli.FormatUSD(c.Balance),
			cli.FormatPercent(c.InterestRate),
			cli.FormatUSD(c.MinimumPayment),
			cli.FormatUSD(c.CreditLimit),
		})
		totalBalance += c.Balance
		totalMinimum += c.MinimumPayment
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"total", cli.FormatUSD(totalBalance), "", cli.FormatUSD(totalMinimum), ""},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Card", "Balance", "APR", "Minimum", "Limit"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runCardsAdd(_ *cobra.Command, _ []string) error {
	if flagCardBalance < 0 || flagCardRate < 0 || flagCardMinimum < 0 || flagCardLimit < 0 {
		return fmt.Errorf("card values cannot be negative")
	}

	minimum := flagCardMinimum
	if minimum == 0 && flagCardBalance > 0 {
		cfg := loadConfig()
		minimum = creditcard.MinimumPayment(flagCardBalance, cfg.Minimum.Percent, cfg.Minimum.Flat)
	}

	card := model.Card{
		Name:           flagCardName,
		Balance:        flagCardBalance,
		InterestRate:   flagCardRate,
		MinimumPayment: minimum,
		CreditLimit:    flagCardLimit,
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := s.SaveCard(&card); err != nil {
		return err
	}

	fmt.Printf("  Saved %q: %s at %s, %s minimum.\n",
		card.Name, cli.FormatUSD(card.Balance), cli.FormatPercent(card.InterestRate),
		cli.FormatUSD(card.MinimumPayment))
	return nil
}

func runCardsRm(_ *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	if err := s.DeleteCard(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Removed %q.\n", args[0])
	return nil
}
