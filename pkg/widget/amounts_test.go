package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePredefinedAmounts(t *testing.T) {
	tests := []struct {
		name      string
		minAmount float64
		maxAmount float64
		want      []float64
	}{
		{
			name:      "Whole number range",
			minAmount: 1,
			maxAmount: 5,
			want:      []float64{1, 2, 3, 4, 5},
		},
		{
			name:      "Fractional defaults range",
			minAmount: 0.50,
			maxAmount: 5.00,
			want:      []float64{0.50, 1.63, 2.75, 3.88, 5.00},
		},
		{
			name:      "Wide range",
			minAmount: 10,
			maxAmount: 100,
			want:      []float64{10, 32.5, 55, 77.5, 100},
		},
		{
			name:      "Uneven step rounds to 2 decimals",
			minAmount: 1,
			maxAmount: 2,
			want:      []float64{1, 1.25, 1.5, 1.75, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePredefinedAmounts(tt.minAmount, tt.maxAmount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerivePredefinedAmounts_Properties(t *testing.T) {
	ranges := []struct{ min, max float64 }{
		{0.5, 5},
		{1, 5},
		{2.37, 19.99},
		{0.01, 0.02},
		{100, 10000},
	}

	for _, r := range ranges {
		got := DerivePredefinedAmounts(r.min, r.max)

		assert.Len(t, got, 5)
		assert.Equal(t, round2(r.min), got[0])
		assert.Equal(t, round2(r.max), got[len(got)-1])
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i], got[i-1], "sequence must be non-decreasing")
		}
		for _, v := range got {
			assert.Equal(t, round2(v), v, "every entry is rounded to 2 decimals")
		}
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$2.00", FormatAmount("$", 2))
	assert.Equal(t, "GH₵1.50", FormatAmount("GH₵", 1.5))
	assert.Equal(t, "€0.50", FormatAmount("€", 0.499999))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"Plain number", "2.50", 2.50},
		{"Whole number", "3", 3},
		{"Whitespace tolerated", " 4.2 ", 4.2},
		{"Empty", "", 0},
		{"Garbage", "abc", 0},
		{"Trailing garbage", "1.5x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAmount(tt.text))
		})
	}
}
