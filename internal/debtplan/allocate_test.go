package debtplan

import (
	"testing"

	"fincalc/internal/model"
)

func testCards() []model.Card {
	return []model.Card{
		{ID: 1, Name: "visa", Balance: 5000, InterestRate: 18, MinimumPayment: 100, CreditLimit: 10000},
		{ID: 2, Name: "store", Balance: 800, InterestRate: 26.99, MinimumPayment: 25, CreditLimit: 2000},
		{ID: 3, Name: "amex", Balance: 2500, InterestRate: 21.5, MinimumPayment: 50, CreditLimit: 8000},
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []string{"avalanche", "snowball"} {
		if _, err := ParseStrategy(s); err != nil {
			t.Errorf("ParseStrategy(%q): %v", s, err)
		}
	}
	if _, err := ParseStrategy("blizzard"); err == nil {
		t.Error("ParseStrategy should reject unknown strategies")
	}
}

func TestOrderAvalanche(t *testing.T) {
	ordered := OrderAvalanche(testCards())
	want := []string{"store", "amex", "visa"}
	for i, name := range want {
		if ordered[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, ordered[i].Name, name)
		}
	}
}

func TestOrderAvalanche_StableOnTies(t *testing.T) {
	cards := []model.Card{
		{ID: 1, Name: "a", InterestRate: 20},
		{ID: 2, Name: "b", InterestRate: 20},
		{ID: 3, Name: "c", InterestRate: 20},
	}
	ordered := OrderAvalanche(cards)
	for i, name := range []string{"a", "b", "c"} {
		if ordered[i].Name != name {
			t.Errorf("tie order broken at %d: got %s, want %s", i, ordered[i].Name, name)
		}
	}
}

func TestOrderSnowball(t *testing.T) {
	ordered := OrderSnowball(testCards())
	want := []string{"store", "amex", "visa"}
	for i, name := range want {
		if ordered[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, ordered[i].Name, name)
		}
	}
}

func TestOrderings_DoNotMutateInput(t *testing.T) {
	cards := testCards()
	OrderAvalanche(cards)
	OrderSnowball(cards)
	if cards[0].Name != "visa" || cards[2].Name != "amex" {
		t.Error("input slice order changed")
	}
}

func sumPayments(allocs []model.PaymentAllocation) float64 {
	var total float64
	for _, a := range allocs {
		total += a.Payment
	}
	return total
}

func TestDistribute_SurplusToHighestRate(t *testing.T) {
	cards := testCards()
	allocs := Distribute(cards, 500, Avalanche)

	if len(allocs) != 3 {
		t.Fatalf("got %d allocations, want 3", len(allocs))
	}
	// Minimums total 175; the 325 surplus belongs to the 26.99% card.
	if allocs[0].Name != "store" {
		t.Fatalf("first allocation is %s, want store", allocs[0].Name)
	}
	if allocs[0].Payment != 350 {
		t.Errorf("store payment = %v, want 25 + 325 surplus = 350", allocs[0].Payment)
	}
	if allocs[1].Payment != 50 || allocs[2].Payment != 100 {
		t.Errorf("minimums = %v / %v, want 50 / 100", allocs[1].Payment, allocs[2].Payment)
	}
	if got := sumPayments(allocs); got != 500 {
		t.Errorf("total allocated = %v, want full 500 budget", got)
	}
}

func TestDistribute_SnowballTargetsSmallestBalance(t *testing.T) {
	allocs := Distribute(testCards(), 400, Snowball)
	if allocs[0].Name != "store" {
		t.Fatalf("first allocation is %s, want store (smallest balance)", allocs[0].Name)
	}
	if allocs[0].Payment != 250 { // 25 minimum + 225 surplus
		t.Errorf("store payment = %v, want 250", allocs[0].Payment)
	}
}

func TestDistribute_PaymentNeverExceedsBalance(t *testing.T) {
	cards := []model.Card{
		{ID: 1, Name: "small", Balance: 120, InterestRate: 29, MinimumPayment: 25},
		{ID: 2, Name: "big", Balance: 4000, InterestRate: 15, MinimumPayment: 80},
	}
	allocs := Distribute(cards, 1000, Avalanche)

	for _, a := range allocs {
		var balance float64
		for _, c := range cards {
			if c.ID == a.CardID {
				balance = c.Balance
			}
		}
		if a.Payment > balance {
			t.Errorf("%s allocated %v over balance %v", a.Name, a.Payment, balance)
		}
	}
	// 120 clears the small card; the rest of the surplus moves on to the
	// next card with room.
	if allocs[0].Payment != 120 {
		t.Errorf("small card payment = %v, want its full 120 balance", allocs[0].Payment)
	}
	if allocs[1].Payment != 880 {
		t.Errorf("big card payment = %v, want 880", allocs[1].Payment)
	}
}

func TestDistribute_DuplicateIDsDoNotCollide(t *testing.T) {
	// Cards that were never stored all carry the zero ID; the allocator
	// must keep them apart anyway.
	cards := []model.Card{
		{ID: 0, Name: "low", Balance: 100, InterestRate: 10, MinimumPayment: 25},
		{ID: 0, Name: "high", Balance: 200, InterestRate: 20, MinimumPayment: 25},
	}
	allocs := Distribute(cards, 500, Avalanche)

	if allocs[0].Name != "high" {
		t.Fatalf("first allocation is %s, want high (highest rate)", allocs[0].Name)
	}
	if allocs[0].Payment != 200 {
		t.Errorf("high payment = %v, want its full 200 balance", allocs[0].Payment)
	}
	if allocs[1].Payment != 100 {
		t.Errorf("low payment = %v, want its full 100 balance", allocs[1].Payment)
	}
	for _, a := range allocs {
		if a.Payment > 200 {
			t.Errorf("%s allocated %v over any card's balance", a.Name, a.Payment)
		}
	}
}

func TestDistribute_InsufficientBudgetDegrades(t *testing.T) {
	allocs := Distribute(testCards(), 60, Avalanche)

	// Priority order is store (25), amex (50), visa (100): store gets its
	// full minimum, amex the remaining 35, visa nothing.
	if allocs[0].Payment != 25 {
		t.Errorf("store payment = %v, want 25", allocs[0].Payment)
	}
	if allocs[1].Payment != 35 {
		t.Errorf("amex payment = %v, want remaining 35", allocs[1].Payment)
	}
	if allocs[2].Payment != 0 {
		t.Errorf("visa payment = %v, want 0", allocs[2].Payment)
	}
	if got := sumPayments(allocs); got != 60 {
		t.Errorf("total allocated = %v, want 60", got)
	}
}

func TestDistribute_BudgetBeyondAllDebt(t *testing.T) {
	cards := []model.Card{
		{ID: 1, Name: "a", Balance: 100, InterestRate: 20, MinimumPayment: 25},
		{ID: 2, Name: "b", Balance: 200, InterestRate: 10, MinimumPayment: 25},
	}
	allocs := Distribute(cards, 10000, Avalanche)
	if got := sumPayments(allocs); got != 300 {
		t.Errorf("total allocated = %v, want 300 (all debt, not the whole budget)", got)
	}
}

func TestDistribute_ZeroBudget(t *testing.T) {
	allocs := Distribute(testCards(), 0, Avalanche)
	if got := sumPayments(allocs); got != 0 {
		t.Errorf("total allocated = %v, want 0", got)
	}
}
