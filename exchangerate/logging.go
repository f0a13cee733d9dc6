package exchangerate

import (
	"context"
	"github.com/go-kit/log"
	"go-currency-converter/domain"
	"time"
)

// loggingService decorates an exchangerate.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) ExchangeRates(ctx context.Context, base domain.Currency) (rates domain.Rates, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "exchange_rates",
			"base", base,
			"count", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExchangeRates(ctx, base)
}
