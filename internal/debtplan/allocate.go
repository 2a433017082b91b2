// Package debtplan distributes a monthly debt budget across credit cards
// and simulates multi-month payoff plans under the avalanche and snowball
// strategies.
package debtplan

import (
	"fmt"
	"sort"

	"fincalc/internal/model"
	"fincalc/internal/money"
)

// Strategy selects the card priority ordering.
type Strategy string

const (
	// Avalanche targets the highest interest rate first.
	Avalanche Strategy = "avalanche"
	// Snowball targets the smallest balance first.
	Snowball Strategy = "snowball"
)

// ParseStrategy validates a strategy name from config or a CLI flag.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case Avalanche, Snowball:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown strategy %q (want avalanche or snowball)", s)
}

// OrderAvalanche returns the cards sorted by interest rate, highest first.
// The sort is stable so equal-rate cards keep their input order.
func OrderAvalanche(cards []model.Card) []model.Card {
	ordered := make([]model.Card, len(cards))
	copy(ordered, cards)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].InterestRate > ordered[j].InterestRate
	})
	return ordered
}

// OrderSnowball returns the cards sorted by balance, smallest first.
func OrderSnowball(cards []model.Card) []model.Card {
	ordered := make([]model.Card, len(cards))
	copy(ordered, cards)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Balance < ordered[j].Balance
	})
	return ordered
}

func order(cards []model.Card, strategy Strategy) []model.Card {
	if strategy == Snowball {
		return OrderSnowball(cards)
	}
	return OrderAvalanche(cards)
}

// Distribute splits a monthly budget across cards in two phases: minimum
// payments in priority order, then the whole remainder onto the first
// priority card. Minimums degrade gracefully when the budget cannot cover
// them all: cards later in priority order simply get less, or nothing. No
// card is ever allocated more than its balance.
func Distribute(cards []model.Card, totalBudget float64, strategy Strategy) []model.PaymentAllocation {
	ordered := order(cards, strategy)

	allocations := make([]model.PaymentAllocation, len(ordered))
	remaining := totalBudget

	for i, c := range ordered {
		payment := c.MinimumPayment
		if payment > remaining {
			payment = remaining
		}
		if payment > c.Balance {
			payment = c.Balance
		}
		if payment < 0 {
			payment = 0
		}
		allocations[i] = model.PaymentAllocation{
			CardID:  c.ID,
			Name:    c.Name,
			Payment: money.RoundCents(payment),
		}
		remaining -= payment
	}

	// Surplus goes to the first priority card, capped at its balance; any
	// amount left after clearing it rolls on to the next card in order.
	// allocations[i] stays aligned with ordered[i].
	for i, c := range ordered {
		if remaining <= 0 {
			break
		}
		room := c.Balance - allocations[i].Payment
		if room <= 0 {
			continue
		}
		extra := remaining
		if extra > room {
			extra = room
		}
		allocations[i].Payment = money.RoundCents(allocations[i].Payment + extra)
		remaining -= extra
	}

	return allocations
}
