package mortgage

import (
	"math"
	"testing"
)

const centTolerance = 0.011

func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		termYears int
		want      float64
	}{
		{"300k at 4.5 for 30y", 300000, 4.5, 30, 1520.06},
		{"300k at 0 for 30y", 300000, 0, 30, 833.33},
		{"100k at 5 for 30y", 100000, 5, 30, 536.82},
		{"zero principal", 0, 4.5, 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyPayment(tt.principal, tt.rate, tt.termYears)
			if !closeTo(got, tt.want, centTolerance) {
				t.Errorf("MonthlyPayment(%v, %v, %d) = %v, want %v",
					tt.principal, tt.rate, tt.termYears, got, tt.want)
			}
		})
	}
}

func TestMonthlyPayment_CoversPrincipal(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		termYears int
	}{
		{250000, 6.5, 30},
		{80000, 3.0, 15},
		{500000, 0, 20},
		{10000, 22.0, 5},
	}
	for _, c := range cases {
		payment := MonthlyPayment(c.principal, c.rate, c.termYears)
		total := payment * float64(c.termYears*12)
		if total < c.principal-centTolerance {
			t.Errorf("payment %v over %dy repays only %v of principal %v",
				payment, c.termYears, total, c.principal)
		}
	}
}

func TestComponentHelpers(t *testing.T) {
	if got := PMI(340000, 0.5); got != 141.67 {
		t.Errorf("PMI(340000, 0.5) = %v, want 141.67", got)
	}
	if got := PMI(340000, 0); got != 0 {
		t.Errorf("PMI with zero rate = %v, want 0", got)
	}
	if got := MonthlyPropertyTax(6000); got != 500 {
		t.Errorf("MonthlyPropertyTax(6000) = %v, want 500", got)
	}
	if got := MonthlyInsurance(1200); got != 100 {
		t.Errorf("MonthlyInsurance(1200) = %v, want 100", got)
	}
}

func TestCalculate_WorkedExample(t *testing.T) {
	// 400k house, 15% down, 4.5% for 30 years, 6000 tax, 1200 insurance,
	// 0.5% PMI.
	res, err := Calculate(Inputs{
		LoanAmount:    400000,
		DownPayment:   60000,
		InterestRate:  4.5,
		TermYears:     30,
		PropertyTax:   6000,
		HomeInsurance: 1200,
		PMIRate:       0.5,
	})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if res.Principal != 340000 {
		t.Errorf("Principal = %v, want 340000", res.Principal)
	}
	if !closeTo(res.MonthlyPayment, 1722.73, 0.02) {
		t.Errorf("MonthlyPayment = %v, want ~1722.73", res.MonthlyPayment)
	}
	if res.MonthlyTax != 500 || res.MonthlyInsurance != 100 {
		t.Errorf("tax/insurance = %v/%v, want 500/100", res.MonthlyTax, res.MonthlyInsurance)
	}
	if !closeTo(res.MonthlyPMI, 141.67, centTolerance) {
		t.Errorf("MonthlyPMI = %v, want 141.67", res.MonthlyPMI)
	}
	if !closeTo(res.TotalMonthlyPayment, 2464.40, 0.03) {
		t.Errorf("TotalMonthlyPayment = %v, want ~2464.40", res.TotalMonthlyPayment)
	}
	if res.Interest != res.TotalInterest {
		t.Errorf("Interest (%v) should mirror TotalInterest (%v)", res.Interest, res.TotalInterest)
	}
}

func TestCalculate_PMICutoff(t *testing.T) {
	base := Inputs{
		LoanAmount:   400000,
		InterestRate: 4.5,
		TermYears:    30,
		PMIRate:      0.5,
	}

	at20 := base
	at20.DownPayment = 80000 // exactly 20%
	res, err := Calculate(at20)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.MonthlyPMI != 0 {
		t.Errorf("MonthlyPMI at 20%% down = %v, want 0", res.MonthlyPMI)
	}

	under20 := base
	under20.DownPayment = 79999
	res, err = Calculate(under20)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.MonthlyPMI <= 0 {
		t.Errorf("MonthlyPMI just under 20%% down = %v, want > 0", res.MonthlyPMI)
	}
}

func TestCalculate_RejectsDegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
	}{
		{"zero loan amount", Inputs{TermYears: 30}},
		{"negative loan amount", Inputs{LoanAmount: -1, TermYears: 30}},
		{"down payment over price", Inputs{LoanAmount: 100000, DownPayment: 100001, TermYears: 30}},
		{"negative down payment", Inputs{LoanAmount: 100000, DownPayment: -5, TermYears: 30}},
		{"zero term", Inputs{LoanAmount: 100000}},
		{"negative rate", Inputs{LoanAmount: 100000, TermYears: 30, InterestRate: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Calculate(tt.in); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestAmortizationSchedule(t *testing.T) {
	principal := 300000.0
	schedule := AmortizationSchedule(principal, 4.5, 30)

	if len(schedule) != 360 {
		t.Fatalf("schedule length = %d, want 360", len(schedule))
	}
	if schedule[0].Month != 1 || schedule[359].Month != 360 {
		t.Errorf("months should run 1..360, got %d..%d", schedule[0].Month, schedule[359].Month)
	}

	// First month interest = 300000 * 0.045/12 = 1125.
	if schedule[0].InterestPayment != 1125 {
		t.Errorf("first interest = %v, want 1125", schedule[0].InterestPayment)
	}

	prev := principal
	for _, e := range schedule {
		if e.RemainingBalance > prev+centTolerance {
			t.Fatalf("month %d: balance %v increased from %v", e.Month, e.RemainingBalance, prev)
		}
		if e.RemainingBalance < 0 {
			t.Fatalf("month %d: balance went negative: %v", e.Month, e.RemainingBalance)
		}
		prev = e.RemainingBalance
	}

	final := schedule[len(schedule)-1]
	if final.RemainingBalance > 0.01 {
		t.Errorf("final balance = %v, want ~0", final.RemainingBalance)
	}
}

func TestAmortizationSchedule_ZeroRate(t *testing.T) {
	schedule := AmortizationSchedule(120000, 0, 10)
	if len(schedule) != 120 {
		t.Fatalf("schedule length = %d, want 120", len(schedule))
	}
	first := schedule[0]
	if first.InterestPayment != 0 || first.PrincipalPayment != 1000 {
		t.Errorf("zero-rate first entry = %+v, want 1000 principal, 0 interest", first)
	}
	if schedule[119].RemainingBalance != 0 {
		t.Errorf("zero-rate final balance = %v, want 0", schedule[119].RemainingBalance)
	}
}

func TestAmortizationSchedule_Degenerate(t *testing.T) {
	if s := AmortizationSchedule(0, 4.5, 30); s != nil {
		t.Errorf("zero principal should yield nil schedule, got %d entries", len(s))
	}
	if s := AmortizationSchedule(100000, 4.5, 0); s != nil {
		t.Errorf("zero term should yield nil schedule, got %d entries", len(s))
	}
}

func TestTotalInterest_MatchesSchedule(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		termYears int
	}{
		{300000, 4.5, 30},
		{150000, 6.0, 15},
		{90000, 0, 10},
	}
	for _, c := range cases {
		payment := MonthlyPayment(c.principal, c.rate, c.termYears)
		flat := TotalInterest(payment, c.termYears, c.principal)
		schedule := AmortizationSchedule(c.principal, c.rate, c.termYears)
		simulated := schedule[len(schedule)-1].TotalInterestPaid

		// The flat approximation and the simulated schedule accumulate
		// rounding differently; they agree within a few dollars over a
		// 30-year term.
		if math.Abs(flat-simulated) > 5 {
			t.Errorf("%v @ %v%%/%dy: flat interest %v vs schedule %v",
				c.principal, c.rate, c.termYears, flat, simulated)
		}
	}
}

func TestAffordablePrice(t *testing.T) {
	// Inverse of the worked payment example: a budget equal to the payment
	// on 300k at 4.5/30 plus 600 tax-insurance should afford ~300k before
	// the down payment gross-up.
	budget := 1520.06 + 600
	price := AffordablePrice(budget, 0, 4.5, 30, 600)
	if !closeTo(price, 300000, 5) {
		t.Errorf("AffordablePrice = %v, want ~300000", price)
	}

	// 20% down means the affordable price grosses up by 1/0.8.
	withDown := AffordablePrice(budget, 20, 4.5, 30, 600)
	if !closeTo(withDown, price/0.8, 7) {
		t.Errorf("AffordablePrice with 20%% down = %v, want ~%v", withDown, price/0.8)
	}
}

func TestAffordablePrice_ZeroRate(t *testing.T) {
	price := AffordablePrice(1000, 0, 0, 30, 0)
	if price != 360000 {
		t.Errorf("zero-rate AffordablePrice = %v, want 360000", price)
	}
}

func TestAffordablePrice_BudgetConsumedByEscrow(t *testing.T) {
	if got := AffordablePrice(500, 10, 4.5, 30, 600); got != 0 {
		t.Errorf("AffordablePrice with budget under escrow = %v, want 0", got)
	}
	if got := AffordablePrice(600, 10, 4.5, 30, 600); got != 0 {
		t.Errorf("AffordablePrice with budget equal to escrow = %v, want 0", got)
	}
}
