package services

import (
	"math"
	"strconv"
	"strings"
)

// CreditCardFeeRate is the flat surcharge applied to card payments.
const CreditCardFeeRate = 0.035

// CalculateFee computes the card surcharge and grand total for a base amount.
// Every card total in the system (checkout, portal payment, fee preview) must
// go through here so the quoted and charged amounts never drift.
func CalculateFee(baseAmount float64, includeFee bool) (fee float64, total float64) {
	if !includeFee {
		return 0, baseAmount
	}
	fee = math.Round(baseAmount*CreditCardFeeRate*100) / 100
	total = math.Round((baseAmount+fee)*100) / 100
	return fee, total
}

// FormatCurrency renders an amount as a display string like "$1,234.56".
// Merge-field values are pre-formatted with this before template rendering.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}
