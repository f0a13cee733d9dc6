package format

import (
	"github.com/stretchr/testify/assert"
	"go-currency-converter/domain"
	"testing"
)

func TestAmount_UnknownCurrency(t *testing.T) {
	assert.Equal(t, "12.35 XYZ", Amount(12.345, "XYZ"))
	assert.Equal(t, "3.00 ", Amount(3, ""))
}

func TestAmount_KnownCurrency(t *testing.T) {
	got := Amount(85, "EUR")

	assert.Contains(t, got, "€")
	assert.Contains(t, got, "85.00")
}

func TestSummary(t *testing.T) {
	got := Summary(domain.Conversion{Original: 100, Converted: 85, From: "USD", To: "EUR", Rate: 0.85})

	assert.Contains(t, got, "100.00")
	assert.Contains(t, got, " = ")
	assert.Contains(t, got, "85.00")
}

func TestRateLine(t *testing.T) {
	tests := []struct {
		name string
		c    domain.Conversion
		want string
	}{
		{"direct", domain.Conversion{From: "USD", To: "EUR", Rate: 0.85}, "1 USD = 0.8500 EUR"},
		{"inverse", domain.Conversion{From: "JPY", To: "INR", Rate: 1 / 1.33}, "1 JPY = 0.7519 INR"},
		{"identity", domain.Conversion{From: "GBP", To: "GBP", Rate: 1}, "1 GBP = 1.0000 GBP"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RateLine(tt.c))
		})
	}
}
