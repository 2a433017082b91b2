package debtplan

import (
	"fincalc/internal/model"
	"fincalc/internal/money"
)

// DefaultPlanMonths bounds a payoff plan at 50 years, matching the payoff
// simulation cap in the creditcard package.
const DefaultPlanMonths = 600

// Plan simulates paying the monthly budget across all cards until every
// balance clears or maxMonths is reached. Each month accrues interest on
// the open balances, then distributes the budget with Distribute. Cards
// with a zero balance drop out of the allocation.
func Plan(cards []model.Card, monthlyBudget float64, strategy Strategy, maxMonths int) model.PlanResult {
	if maxMonths <= 0 {
		maxMonths = DefaultPlanMonths
	}

	res := model.PlanResult{Strategy: string(strategy)}

	working := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		res.TotalDebt += c.Balance
		if c.Balance > 0 {
			working = append(working, c)
		}
	}
	res.TotalDebt = money.RoundCents(res.TotalDebt)
	if len(working) == 0 || monthlyBudget <= 0 {
		return res
	}

	for month := 1; month <= maxMonths; month++ {
		// Interest accrues on what is still owed.
		var monthInterest float64
		for i := range working {
			if working[i].Balance <= 0 {
				continue
			}
			interest := working[i].Balance * (working[i].InterestRate / 100 / 12)
			working[i].Balance += interest
			monthInterest += interest
		}

		// The index into working doubles as the card handle through
		// Distribute, so cards sharing an ID cannot collide.
		open := make([]model.Card, 0, len(working))
		for i, c := range working {
			if c.Balance > balancePaidEpsilon {
				c.ID = int64(i)
				open = append(open, c)
			}
		}
		allocations := Distribute(open, monthlyBudget, strategy)

		pm := model.PlanMonth{
			Month:    month,
			Interest: money.RoundCents(monthInterest),
		}
		for _, a := range allocations {
			wc := &working[a.CardID]
			wc.Balance -= a.Payment
			if wc.Balance < 0 {
				wc.Balance = 0
			}
			pm.Payments = append(pm.Payments, model.CardPayment{
				CardID:           wc.ID,
				Name:             a.Name,
				Payment:          a.Payment,
				RemainingBalance: money.RoundCents(wc.Balance),
			})
			pm.TotalPaid += a.Payment
		}
		pm.TotalPaid = money.RoundCents(pm.TotalPaid)

		res.TotalInterest += monthInterest
		res.Months = append(res.Months, pm)
		res.PayoffMonths = month

		if len(openCards(working)) == 0 {
			res.TotalInterest = money.RoundCents(res.TotalInterest)
			return res
		}
	}

	res.TotalInterest = money.RoundCents(res.TotalInterest)
	res.Capped = true
	return res
}

// Compare runs the plan under both strategies and reports how much the
// avalanche ordering saves over snowball.
func Compare(cards []model.Card, monthlyBudget float64, maxMonths int) model.Comparison {
	avalanche := Plan(cards, monthlyBudget, Avalanche, maxMonths)
	snowball := Plan(cards, monthlyBudget, Snowball, maxMonths)

	c := model.Comparison{
		Avalanche: avalanche,
		Snowball:  snowball,
	}
	saved := snowball.TotalInterest - avalanche.TotalInterest
	if saved > 0 {
		c.InterestSaved = money.RoundCents(saved)
	}
	c.MonthsSaved = snowball.PayoffMonths - avalanche.PayoffMonths
	return c
}

func openCards(cards []model.Card) []model.Card {
	open := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if c.Balance > balancePaidEpsilon {
			open = append(open, c)
		}
	}
	return open
}

// Balances below this are treated as paid off.
const balancePaidEpsilon = 0.01
