package widget

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// predefinedAmountCount is the number of suggested contribution values
// derived from the configured range.
const predefinedAmountCount = 5

// round2 rounds to 2 decimal places, the precision every displayed and
// submitted amount uses.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DerivePredefinedAmounts spans [minAmount, maxAmount] with five ascending
// values in equal steps, each rounded to 2 decimals. The first entry is the
// minimum and the last the maximum.
func DerivePredefinedAmounts(minAmount, maxAmount float64) []float64 {
	amounts := make([]float64, predefinedAmountCount)
	step := (maxAmount - minAmount) / float64(predefinedAmountCount-1)
	for i := range amounts {
		amounts[i] = round2(minAmount + step*float64(i))
	}
	amounts[predefinedAmountCount-1] = round2(maxAmount)
	return amounts
}

// FormatAmount renders an amount with its currency symbol, e.g. "$2.00".
func FormatAmount(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// parseAmount reads a user-typed amount. Returns 0 for anything that does
// not parse, mirroring how the contribute button treats invalid input.
func parseAmount(text string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
