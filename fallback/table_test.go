package fallback

import (
	"github.com/stretchr/testify/assert"
	"go-currency-converter/domain"
	"testing"
)

func TestTable_Lookup(t *testing.T) {
	table := New(map[domain.Currency]domain.Rates{
		"USD": {"EUR": 0.85},
		"INR": {"JPY": 1.33},
	})

	tests := []struct {
		name   string
		from   domain.Currency
		to     domain.Currency
		want   domain.Quote
		wantOk bool
	}{
		{"direct", "USD", "EUR", domain.Quote{Rate: 0.85, Source: domain.SourceFallback}, true},
		{"inverse", "JPY", "INR", domain.Quote{Rate: 1 / 1.33, Source: domain.SourceFallbackInverse}, true},
		{"inverse of direct", "EUR", "USD", domain.Quote{Rate: 1 / 0.85, Source: domain.SourceFallbackInverse}, true},
		{"unknown pair", "ABC", "XYZ", domain.Quote{}, false},
		{"known from, unknown to", "USD", "XYZ", domain.Quote{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Lookup(tt.from, tt.to)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want.Source, got.Source)
			assert.InDelta(t, float64(tt.want.Rate), float64(got.Rate), 1e-12)
		})
	}
}

func TestTable_DirectPreferredOverInverse(t *testing.T) {
	table := New(map[domain.Currency]domain.Rates{
		"EUR": {"USD": 1.18},
		"USD": {"EUR": 0.85},
	})

	got, ok := table.Lookup("EUR", "USD")

	assert.True(t, ok)
	assert.Equal(t, domain.Quote{Rate: 1.18, Source: domain.SourceFallback}, got)
}

func TestNew_DropsUnusableRates(t *testing.T) {
	table := New(map[domain.Currency]domain.Rates{
		"USD": {"EUR": 0, "GBP": -1, "JPY": 110},
	})

	_, ok := table.Lookup("EUR", "USD")
	assert.False(t, ok, "zero entry must not be inverted")

	_, ok = table.Lookup("GBP", "USD")
	assert.False(t, ok)

	got, ok := table.Lookup("USD", "JPY")
	assert.True(t, ok)
	assert.Equal(t, domain.Rate(110), got.Rate)
}

func TestNew_CopiesInput(t *testing.T) {
	rates := map[domain.Currency]domain.Rates{"USD": {"EUR": 0.85}}
	table := New(rates)

	rates["USD"]["EUR"] = 2

	got, _ := table.Lookup("USD", "EUR")
	assert.Equal(t, domain.Rate(0.85), got.Rate)
}

func TestDefault(t *testing.T) {
	table := Default()

	got, ok := table.Lookup("USD", "EUR")
	assert.True(t, ok)
	assert.Equal(t, domain.Rate(0.85), got.Rate)

	got, ok = table.Lookup("EUR", "USD")
	assert.True(t, ok)
	assert.Equal(t, domain.Rate(1.18), got.Rate)

	// AUD has no row of its own, only the inverse of USD -> AUD
	got, ok = table.Lookup("AUD", "USD")
	assert.True(t, ok)
	assert.Equal(t, domain.SourceFallbackInverse, got.Source)
	assert.InDelta(t, 1/1.35, float64(got.Rate), 1e-12)

	assert.Len(t, table.Currencies(), 16)
}

func TestTable_CurrenciesSorted(t *testing.T) {
	table := New(map[domain.Currency]domain.Rates{
		"USD": {"EUR": 0.85, "AUD": 1.35},
	})

	assert.Equal(t, []domain.Currency{"AUD", "EUR", "USD"}, table.Currencies())
}
