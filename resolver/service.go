package resolver

import (
	"context"
	"errors"
	"fmt"
	"go-currency-converter/domain"
	"go-currency-converter/exchangerate"
	"go-currency-converter/fallback"
	"math"
)

// ErrRateUnavailable neither the remote source nor the fallback table has a rate for the pair
var ErrRateUnavailable = errors.New("exchange rate not available")

// Service resolves the rate for converting one currency into another
type Service interface {
	Resolve(ctx context.Context, from domain.Currency, to domain.Currency) (domain.Quote, error)
}

// service tries the remote source once, then the fallback table
type service struct {
	// remote live rate source
	remote exchangerate.Service

	// table static rates used when remote fails
	table *fallback.Table
}

// NewService constructs a valid Service
func NewService(remote exchangerate.Service, table *fallback.Table) Service {
	return &service{
		remote: remote,
		table:  table,
	}
}

// Resolve returns the rate for from -> to.
// Identical currencies resolve to 1 without any lookup. Otherwise exactly one remote
// request is made; any remote failure falls through to the fallback table.
func (s *service) Resolve(ctx context.Context, from domain.Currency, to domain.Currency) (domain.Quote, error) {
	if from == to {
		return domain.Quote{Rate: 1, Source: domain.SourceIdentity}, nil
	}

	rate, err := s.remoteRate(ctx, from, to)
	if err == nil {
		return domain.Quote{Rate: rate, Source: domain.SourceRemote}, nil
	}

	quote, ok := s.table.Lookup(from, to)
	if !ok {
		return domain.Quote{}, fmt.Errorf("%w: %v -> %v (remote: %v)", ErrRateUnavailable, from, to, err)
	}
	return quote, nil
}

func (s *service) remoteRate(ctx context.Context, from domain.Currency, to domain.Currency) (domain.Rate, error) {
	rates, err := s.remote.ExchangeRates(ctx, from)
	if err != nil {
		return 0, fmt.Errorf("remote rates [%v]: %w", from, err)
	}
	rate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("unknown 'to' currency: %v", to)
	}
	if f := float64(rate); f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("unusable rate %v for %v -> %v", rate, from, to)
	}
	return rate, nil
}
