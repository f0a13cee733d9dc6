package domain

// Currency a currency code, e.g. "USD"
type Currency string

// Amount a monetary amount... still a float...
type Amount float64

// Rate an exchange rate: one unit of the from currency buys Rate units of the to currency
type Rate float64

// Rates maps a currency code to the rate from some base currency
type Rates map[Currency]Rate

// Source where a rate came from
type Source string

const (
	SourceIdentity        Source = "identity"
	SourceRemote          Source = "remote"
	SourceFallback        Source = "fallback"
	SourceFallbackInverse Source = "fallback_inverse"
)

// Quote a resolved rate and where it came from
type Quote struct {
	Rate   Rate
	Source Source
}

// Conversion the outcome of converting Original from one currency to another.
// Converted is always Original * Rate.
type Conversion struct {
	Original  Amount
	Converted Amount
	From      Currency
	To        Currency
	Rate      Rate
	Source    Source
}
