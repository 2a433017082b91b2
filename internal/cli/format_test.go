package cli

import (
	"math"
	"testing"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1520.06, "$1,520.06"},
		{0, "$0.00"},
		{833.3, "$833.30"},
		{2464400, "$2,464,400.00"},
		{-12.5, "-$12.50"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.in); got != tt.want {
			t.Errorf("FormatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatUSD_NonFinite(t *testing.T) {
	if got := FormatUSD(math.Inf(1)); got != "∞" {
		t.Errorf("FormatUSD(+Inf) = %q, want ∞", got)
	}
	if got := FormatUSD(math.NaN()); got != "n/a" {
		t.Errorf("FormatUSD(NaN) = %q, want n/a", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(33.3); got != "33.30%" {
		t.Errorf("FormatPercent(33.3) = %q, want 33.30%%", got)
	}
}

func TestFormatMonths(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{7, "7m"},
		{12, "1y"},
		{31, "2y 7m"},
		{360, "30y"},
	}
	for _, tt := range tests {
		if got := FormatMonths(tt.in); got != tt.want {
			t.Errorf("FormatMonths(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
