// Package creditcard computes credit card interest, payoff projections and
// utilization metrics. Like the mortgage package, everything here is a pure
// function over plain values.
package creditcard

import (
	"math"

	"fincalc/internal/model"
	"fincalc/internal/money"
)

const (
	// Payoff simulation stops once the balance drops below this.
	balanceEpsilon = 0.01

	// MaxPayoffMonths bounds the payoff simulation at 50 years. Reaching
	// the cap ends the simulation at whatever state it is in.
	MaxPayoffMonths = 600
)

// PayoffResult describes how long a fixed monthly payment takes to clear a
// balance. When the payment does not exceed the first month's interest the
// balance never shrinks: Unreachable is set and the totals are +Inf.
type PayoffResult struct {
	Months        int
	TotalInterest float64
	TotalPaid     float64
	Unreachable   bool
}

// ScheduleEntry is one simulated month of payments against a card balance.
type ScheduleEntry struct {
	Month            int
	Amount           float64
	InterestCharged  float64
	PrincipalPaid    float64
	RemainingBalance float64
}

// Savings compares a proposed payment against the minimum payment.
type Savings struct {
	MinimumPayoff  PayoffResult
	ProposedPayoff PayoffResult
	InterestSaved  float64
	MonthsSaved    int
}

// MonthlyInterest computes one month of interest on a balance.
func MonthlyInterest(balance, annualRate float64) float64 {
	return money.RoundCents(balance * (annualRate / 100 / 12))
}

// MinimumPayment applies the usual issuer heuristic: a percentage of the
// balance with a flat floor.
func MinimumPayment(balance, pct, flat float64) float64 {
	return money.RoundCents(math.Max(balance*pct/100, flat))
}

// PayoffTime simulates paying a fixed amount each month until the balance
// clears. Zero or negative balance or payment short-circuits to an empty
// result; a payment that cannot outrun interest returns the unreachable
// sentinel instead of looping.
func PayoffTime(balance, annualRate, payment float64) PayoffResult {
	if payment <= 0 || balance <= 0 {
		return PayoffResult{}
	}

	monthlyRate := annualRate / 100 / 12
	if payment <= balance*monthlyRate {
		return PayoffResult{
			TotalInterest: math.Inf(1),
			TotalPaid:     math.Inf(1),
			Unreachable:   true,
		}
	}

	current := balance
	var months int
	var totalInterest float64

	for current > balanceEpsilon && months < MaxPayoffMonths {
		interest := current * monthlyRate
		principal := payment - interest
		if principal > current {
			principal = current
		}
		current -= principal
		totalInterest += interest
		months++
	}

	totalInterest = money.RoundCents(totalInterest)
	return PayoffResult{
		Months:        months,
		TotalInterest: totalInterest,
		TotalPaid:     money.RoundCents(balance + totalInterest),
	}
}

// PaymentSchedule runs the same simulation as PayoffTime but materializes
// each month, stopping at maxMonths entries or when the balance clears.
func PaymentSchedule(balance, annualRate, payment float64, maxMonths int) []ScheduleEntry {
	if payment <= 0 || balance <= 0 || maxMonths <= 0 {
		return nil
	}

	monthlyRate := annualRate / 100 / 12
	schedule := make([]ScheduleEntry, 0, maxMonths)
	current := balance

	for month := 1; month <= maxMonths && current > balanceEpsilon; month++ {
		interest := current * monthlyRate
		principal := payment - interest
		if principal > current {
			principal = current
		}
		if principal < 0 {
			principal = 0
		}
		current -= principal

		schedule = append(schedule, ScheduleEntry{
			Month:            month,
			Amount:           money.RoundCents(math.Min(payment, principal+interest)),
			InterestCharged:  money.RoundCents(interest),
			PrincipalPaid:    money.RoundCents(principal),
			RemainingBalance: money.RoundCents(current),
		})
	}

	return schedule
}

// Utilization returns balance over limit as a percentage, 0 when the limit
// is not positive.
func Utilization(balance, creditLimit float64) float64 {
	if creditLimit <= 0 {
		return 0
	}
	return money.RoundPercent(balance / creditLimit * 100)
}

// TotalUtilization computes utilization across all cards as the ratio of
// summed balances to summed limits.
func TotalUtilization(cards []model.Card) float64 {
	var balance, limit float64
	for _, c := range cards {
		balance += c.Balance
		limit += c.CreditLimit
	}
	return Utilization(balance, limit)
}

// InterestSavings runs the payoff projection at the minimum and at a
// proposed payment and reports the difference. The deltas go negative when
// the proposed payment is below the minimum; callers decide how to present
// that. Either projection may be unreachable, in which case the deltas are
// not meaningful and the caller should check the embedded results.
func InterestSavings(balance, annualRate, minimumPayment, proposedPayment float64) Savings {
	minPayoff := PayoffTime(balance, annualRate, minimumPayment)
	propPayoff := PayoffTime(balance, annualRate, proposedPayment)

	s := Savings{
		MinimumPayoff:  minPayoff,
		ProposedPayoff: propPayoff,
	}
	if !minPayoff.Unreachable && !propPayoff.Unreachable {
		s.InterestSaved = money.RoundCents(minPayoff.TotalInterest - propPayoff.TotalInterest)
		s.MonthsSaved = minPayoff.Months - propPayoff.Months
	}
	return s
}
