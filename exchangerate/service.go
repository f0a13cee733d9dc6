package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"go-currency-converter/domain"
	"io"
	"net/http"
	"time"
)

// DefaultURL base of the exchangerate-api v4 "latest" endpoint
const DefaultURL = "https://api.exchangerate-api.com/v4/latest"

// DefaultTimeout for a single rates request
const DefaultTimeout = 5 * time.Second

// Service fetches live exchange rates for a base currency
type Service interface {
	ExchangeRates(ctx context.Context, base domain.Currency) (domain.Rates, error)
}

// service exchangerate-api REST client
type service struct {
	// url base API url, the base currency is appended as the last path segment
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid Service. An empty url selects DefaultURL, a zero timeout DefaultTimeout.
func NewService(url string, timeout time.Duration) Service {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &service{
		url: url,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// ExchangeRates loads the current rates anchored at base.
// Any non-2xx status or undecodable body is an error.
func (s *service) ExchangeRates(ctx context.Context, base domain.Currency) (domain.Rates, error) {
	type response struct {
		Base  string             `json:"base"`
		Date  string             `json:"date"`
		Rates map[string]float64 `json:"rates"`
	}

	url := fmt.Sprintf("%v/%v", s.url, base)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return nil, fmt.Errorf("http get: unexpected status %d", httpResponse.StatusCode)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	var body response
	err = json.Unmarshal(bytes, &body)
	if err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	if body.Rates == nil {
		return nil, fmt.Errorf("decoding json: no rates for %v", base)
	}

	rates := make(domain.Rates, len(body.Rates))
	for k, v := range body.Rates {
		rates[domain.Currency(k)] = domain.Rate(v)
	}

	return rates, nil
}
