package model

// CardPayment records the payment applied to one card in one plan month.
type CardPayment struct {
	CardID           int64
	Name             string
	Payment          float64
	RemainingBalance float64
}

// PlanMonth holds the state of a payoff plan after one simulated month.
type PlanMonth struct {
	Month     int
	Interest  float64
	Payments  []CardPayment
	TotalPaid float64
}

// PlanResult is a complete multi-month debt payoff simulation.
type PlanResult struct {
	Strategy      string
	Months        []PlanMonth
	TotalDebt     float64
	TotalInterest float64
	PayoffMonths  int
	Capped        bool // simulation hit the month cap before payoff
}

// Comparison holds both strategies' plans side by side.
type Comparison struct {
	Avalanche     PlanResult
	Snowball      PlanResult
	InterestSaved float64 // snowball interest minus avalanche interest, floored at 0
	MonthsSaved   int
}
