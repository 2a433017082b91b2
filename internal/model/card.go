package model

// Card holds a single credit card tracked by the user. The calculation
// packages only read Balance, InterestRate and MinimumPayment; the rest is
// bookkeeping for the store and CLI layers.
type Card struct {
	ID             int64
	Name           string
	Balance        float64
	InterestRate   float64 // annual percentage rate
	MinimumPayment float64
	CreditLimit    float64
}

// PaymentAllocation is one card's share of a monthly debt budget.
type PaymentAllocation struct {
	CardID  int64
	Name    string
	Payment float64
}
