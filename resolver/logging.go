package resolver

import (
	"context"
	"github.com/go-kit/log"
	"go-currency-converter/domain"
	"time"
)

// loggingService decorates a resolver.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Resolve(ctx context.Context, from domain.Currency, to domain.Currency) (q domain.Quote, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "resolve",
			"from", from,
			"to", to,
			"rate", q.Rate,
			"source", q.Source,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Resolve(ctx, from, to)
}
