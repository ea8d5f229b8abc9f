package services

import "testing"

func TestCalculateFee(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		includeFee bool
		wantFee    float64
		wantTotal  float64
	}{
		{name: "thousand with fee", amount: 1000, includeFee: true, wantFee: 35, wantTotal: 1035},
		{name: "thousand without fee", amount: 1000, includeFee: false, wantFee: 0, wantTotal: 1000},
		{name: "hundred with fee", amount: 100, includeFee: true, wantFee: 3.50, wantTotal: 103.50},
		{name: "rounds to cents", amount: 99.99, includeFee: true, wantFee: 3.50, wantTotal: 103.49},
		{name: "small amount", amount: 1, includeFee: true, wantFee: 0.04, wantTotal: 1.04},
		{name: "zero", amount: 0, includeFee: true, wantFee: 0, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, total := CalculateFee(tt.amount, tt.includeFee)
			if fee != tt.wantFee {
				t.Errorf("CalculateFee() fee = %v, want %v", fee, tt.wantFee)
			}
			if total != tt.wantTotal {
				t.Errorf("CalculateFee() total = %v, want %v", total, tt.wantTotal)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{999.9, "$999.90"},
		{-42.5, "-$42.50"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
