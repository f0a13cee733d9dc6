package fallback

import (
	"go-currency-converter/domain"
	"math"
	"sort"
)

// Table static exchange rates used when the live source is unavailable.
// A Table is never mutated after construction, so it is safe for concurrent reads.
// Entries only exist in the directions they were given; Lookup derives the reverse.
type Table struct {
	rates map[domain.Currency]domain.Rates
}

// New copies rates into a Table. Entries that are not strictly positive and finite
// are dropped so an inverse lookup never divides by zero.
func New(rates map[domain.Currency]domain.Rates) *Table {
	t := &Table{rates: make(map[domain.Currency]domain.Rates, len(rates))}
	for from, row := range rates {
		copied := make(domain.Rates, len(row))
		for to, rate := range row {
			if !valid(rate) {
				continue
			}
			copied[to] = rate
		}
		t.rates[from] = copied
	}
	return t
}

// Default the built-in fallback table.
func Default() *Table {
	return New(defaultRates)
}

// Direct returns table[from][to] if present.
func (t *Table) Direct(from, to domain.Currency) (domain.Rate, bool) {
	rate, ok := t.rates[from][to]
	return rate, ok
}

// Lookup finds the rate for from -> to: the direct entry when present, otherwise
// the reciprocal of the to -> from entry.
func (t *Table) Lookup(from, to domain.Currency) (domain.Quote, bool) {
	if rate, ok := t.Direct(from, to); ok {
		return domain.Quote{Rate: rate, Source: domain.SourceFallback}, true
	}
	if rate, ok := t.Direct(to, from); ok {
		return domain.Quote{Rate: 1 / rate, Source: domain.SourceFallbackInverse}, true
	}
	return domain.Quote{}, false
}

// Currencies lists every currency that appears in the table, in either position, sorted.
func (t *Table) Currencies() []domain.Currency {
	seen := map[domain.Currency]struct{}{}
	var out []domain.Currency
	add := func(c domain.Currency) {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	for from, row := range t.rates {
		add(from)
		for to := range row {
			add(to)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func valid(rate domain.Rate) bool {
	f := float64(rate)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

var defaultRates = map[domain.Currency]domain.Rates{
	"USD": {"EUR": 0.85, "GBP": 0.73, "JPY": 110, "INR": 83, "AUD": 1.35, "CAD": 1.25, "CHF": 0.92, "CNY": 7.2, "KRW": 1200, "SGD": 1.35, "NOK": 8.5, "MXN": 18, "ZAR": 15, "BRL": 5.2, "RUB": 75},
	"EUR": {"USD": 1.18, "GBP": 0.86, "JPY": 129, "INR": 98, "AUD": 1.59, "CAD": 1.47, "CHF": 1.08, "CNY": 8.5, "KRW": 1415, "SGD": 1.59, "NOK": 10, "MXN": 21, "ZAR": 17.6, "BRL": 6.1, "RUB": 88},
	"GBP": {"USD": 1.37, "EUR": 1.16, "JPY": 150, "INR": 114, "AUD": 1.85, "CAD": 1.71, "CHF": 1.26, "CNY": 9.9, "KRW": 1645, "SGD": 1.85, "NOK": 11.6, "MXN": 24.7, "ZAR": 20.5, "BRL": 7.1, "RUB": 103},
	"JPY": {"USD": 0.0091, "EUR": 0.0077, "GBP": 0.0067, "INR": 0.75, "AUD": 0.012, "CAD": 0.011, "CHF": 0.0084, "CNY": 0.066, "KRW": 10.9, "SGD": 0.012, "NOK": 0.077, "MXN": 0.16, "ZAR": 0.14, "BRL": 0.047, "RUB": 0.68},
	"INR": {"USD": 0.012, "EUR": 0.010, "GBP": 0.0088, "JPY": 1.33, "AUD": 0.016, "CAD": 0.015, "CHF": 0.011, "CNY": 0.087, "KRW": 14.5, "SGD": 0.016, "NOK": 0.10, "MXN": 0.22, "ZAR": 0.18, "BRL": 0.063, "RUB": 0.90},
}
