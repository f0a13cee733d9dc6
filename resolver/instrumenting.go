package resolver

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"go-currency-converter/domain"
	"time"
)

// unavailable label used when no source produced a rate
const unavailable = "unavailable"

// instrumentingService decorates a resolver.Service with Prometheus metrics
type instrumentingService struct {
	resolutions *prometheus.CounterVec
	duration    prometheus.Histogram
	next        Service
}

// NewInstrumentingService registers the resolver metrics on reg and returns a decorated Service
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	resolutions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "converter",
			Name:      "rate_resolutions_total",
			Help:      "Rate resolutions by the source that produced the rate.",
		},
		[]string{"source"},
	)
	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "converter",
			Name:      "rate_resolution_duration_seconds",
			Help:      "Time spent resolving a rate, remote call included.",
			Buckets:   prometheus.DefBuckets,
		},
	)
	reg.MustRegister(resolutions, duration)

	return &instrumentingService{
		resolutions: resolutions,
		duration:    duration,
		next:        s,
	}
}

func (s *instrumentingService) Resolve(ctx context.Context, from domain.Currency, to domain.Currency) (q domain.Quote, err error) {
	defer func(begin time.Time) {
		source := string(q.Source)
		if err != nil {
			source = unavailable
		}
		s.resolutions.WithLabelValues(source).Inc()
		s.duration.Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.Resolve(ctx, from, to)
}
