package money

import (
	"math"
	"testing"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.234, 1.23},
		{1.235, 1.24},
		{1.005, 1.01},
		{833.3333333, 833.33},
		{141.6666667, 141.67},
		{-1.235, -1.24},
		{2464.399, 2464.40},
	}
	for _, tt := range tests {
		if got := RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundCents_NonFinitePassThrough(t *testing.T) {
	if !math.IsNaN(RoundCents(math.NaN())) {
		t.Error("RoundCents(NaN) should stay NaN")
	}
	if !math.IsInf(RoundCents(math.Inf(1)), 1) {
		t.Error("RoundCents(+Inf) should stay +Inf")
	}
}

func TestCents(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{1520.06, 152006},
		{0.005, 1},
		{-12.34, -1234},
	}
	for _, tt := range tests {
		if got := Cents(tt.in); got != tt.want {
			t.Errorf("Cents(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
