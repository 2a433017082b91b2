// Package mortgage computes fixed-rate mortgage payments, amortization
// schedules and affordability estimates. All functions are pure: inputs in,
// values out, rounded to cents.
package mortgage

import (
	"errors"
	"fmt"
	"math"

	"fincalc/internal/money"
)

// PMI applies below this down-payment percentage of the sale price.
const pmiCutoffPercent = 20.0

// Inputs holds everything needed for a full mortgage calculation.
// Monetary amounts are in dollars, rates in annual percent.
type Inputs struct {
	LoanAmount    float64 // sale price
	DownPayment   float64
	InterestRate  float64
	TermYears     int
	PropertyTax   float64 // annual
	HomeInsurance float64 // annual
	PMIRate       float64 // annual, applied to the financed amount
}

// Results holds the assembled mortgage calculation.
type Results struct {
	MonthlyPayment      float64 // principal and interest only
	Principal           float64 // financed amount
	Interest            float64 // same as TotalInterest
	MonthlyTax          float64
	MonthlyInsurance    float64
	MonthlyPMI          float64
	TotalMonthlyPayment float64
	TotalInterest       float64
	TotalCost           float64
}

// Entry is one month of an amortization schedule.
type Entry struct {
	Month             int
	PrincipalPayment  float64
	InterestPayment   float64
	RemainingBalance  float64
	TotalInterestPaid float64
}

// MonthlyPayment computes the fixed monthly principal-and-interest payment
// using the standard annuity formula. A zero rate degrades to a straight
// principal split over the term.
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	n := float64(termYears * 12)
	if annualRate == 0 {
		return money.RoundCents(principal / n)
	}
	r := annualRate / 100 / 12
	factor := math.Pow(1+r, n)
	return money.RoundCents(principal * r * factor / (factor - 1))
}

// PMI computes the monthly private mortgage insurance premium on the
// financed amount.
func PMI(financed, annualPMIRate float64) float64 {
	return money.RoundCents(financed * (annualPMIRate / 100) / 12)
}

// MonthlyPropertyTax converts an annual property tax bill to monthly.
func MonthlyPropertyTax(annual float64) float64 {
	return money.RoundCents(annual / 12)
}

// MonthlyInsurance converts an annual home insurance premium to monthly.
func MonthlyInsurance(annual float64) float64 {
	return money.RoundCents(annual / 12)
}

// TotalInterest computes lifetime interest from the flat monthly payment.
// This is the same approximation the schedule converges to; the two agree
// within a few cents of accumulated rounding.
func TotalInterest(monthlyPayment float64, termYears int, principal float64) float64 {
	return money.RoundCents(monthlyPayment*float64(termYears*12) - principal)
}

// Calculate validates the inputs and assembles the full monthly and
// lifetime cost picture. PMI is charged only while the down payment is
// under 20% of the sale price.
func Calculate(in Inputs) (Results, error) {
	if err := validate(in); err != nil {
		return Results{}, err
	}

	principal := in.LoanAmount - in.DownPayment
	payment := MonthlyPayment(principal, in.InterestRate, in.TermYears)
	tax := MonthlyPropertyTax(in.PropertyTax)
	insurance := MonthlyInsurance(in.HomeInsurance)

	downPct := in.DownPayment / in.LoanAmount * 100
	var pmi float64
	if downPct < pmiCutoffPercent {
		pmi = PMI(principal, in.PMIRate)
	}

	totalInterest := TotalInterest(payment, in.TermYears, principal)
	months := float64(in.TermYears * 12)

	return Results{
		MonthlyPayment:      payment,
		Principal:           money.RoundCents(principal),
		Interest:            totalInterest,
		MonthlyTax:          tax,
		MonthlyInsurance:    insurance,
		MonthlyPMI:          pmi,
		TotalMonthlyPayment: money.RoundCents(payment + tax + insurance + pmi),
		TotalInterest:       totalInterest,
		TotalCost:           money.RoundCents(principal + totalInterest + (tax+insurance)*months),
	}, nil
}

func validate(in Inputs) error {
	if in.LoanAmount <= 0 {
		return errors.New("loan amount must be positive")
	}
	if in.DownPayment < 0 || in.DownPayment > in.LoanAmount {
		return fmt.Errorf("down payment must be between 0 and the loan amount (%.2f)", in.LoanAmount)
	}
	if in.TermYears <= 0 {
		return errors.New("loan term must be at least one year")
	}
	if in.InterestRate < 0 {
		return errors.New("interest rate cannot be negative")
	}
	if in.PropertyTax < 0 || in.HomeInsurance < 0 || in.PMIRate < 0 {
		return errors.New("tax, insurance and PMI rate cannot be negative")
	}
	return nil
}

// AmortizationSchedule produces one entry per month over the full term.
// The remaining balance is non-increasing and reaches zero (within cent
// rounding) at the final entry.
func AmortizationSchedule(principal, annualRate float64, termYears int) []Entry {
	n := termYears * 12
	if n <= 0 || principal <= 0 {
		return nil
	}

	payment := MonthlyPayment(principal, annualRate, termYears)
	monthlyRate := annualRate / 100 / 12

	schedule := make([]Entry, 0, n)
	balance := principal
	var totalInterest float64

	for month := 1; month <= n; month++ {
		interest := balance * monthlyRate
		principalPart := payment - interest
		if principalPart > balance {
			principalPart = balance
		}
		balance -= principalPart
		if balance < 0 {
			balance = 0
		}
		totalInterest += interest

		schedule = append(schedule, Entry{
			Month:             month,
			PrincipalPayment:  money.RoundCents(principalPart),
			InterestPayment:   money.RoundCents(interest),
			RemainingBalance:  money.RoundCents(balance),
			TotalInterestPaid: money.RoundCents(totalInterest),
		})
	}

	return schedule
}

// AffordablePrice inverts the payment formula: given a total monthly
// housing budget, how expensive a house can the buyer afford? Returns 0
// when the budget does not even cover tax and insurance.
func AffordablePrice(monthlyBudget, downPaymentPct, annualRate float64, termYears int, monthlyTaxInsurance float64) float64 {
	available := monthlyBudget - monthlyTaxInsurance
	if available <= 0 || termYears <= 0 {
		return 0
	}

	n := float64(termYears * 12)
	var maxLoan float64
	if annualRate == 0 {
		maxLoan = available * n
	} else {
		r := annualRate / 100 / 12
		factor := math.Pow(1+r, n)
		maxLoan = available * (factor - 1) / (r * factor)
	}

	if downPaymentPct >= 100 {
		return 0
	}
	return money.RoundCents(maxLoan / (1 - downPaymentPct/100))
}
