package http

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-currency-converter/controller"
	"go-currency-converter/domain"
	"io"
	"net/http"
	"strings"
	"time"
)

// Converter converts raw form state, as controller.Controller does
type Converter interface {
	Convert(ctx context.Context, state controller.FormState) (domain.Conversion, error)
}

// Server dependencies for HTTP Server functions
type Server struct {
	Converter Converter
	Logger    log.Logger
	router    *http.ServeMux
}

// Option configures a Server
type Option func(*Server, *http.ServeMux)

// WithMetrics serves g on /metrics
func WithMetrics(g prometheus.Gatherer) Option {
	return func(_ *Server, mux *http.ServeMux) {
		mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	}
}

// NewServer constructs a Server with its routes registered
func NewServer(c Converter, logger log.Logger, opts ...Option) *Server {
	server := &Server{
		Converter: c,
		Logger:    logger,
		router:    http.NewServeMux(),
	}
	server.routes()
	for _, opt := range opts {
		opt(server, server.router)
	}
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/convert", s.convert())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	defer func(begin time.Time) {
		s.Logger.Log("method", r.Method, "path", r.URL.Path, "took", time.Since(begin))
	}(time.Now())
	s.router.ServeHTTP(rw, r)
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients.
	// amount is kept raw so both 3 and "3" are accepted, as a form would send it.
	type request struct {
		FromCurrency string          `json:"fromCurrency"`
		ToCurrency   string          `json:"toCurrency"`
		Amount       json.RawMessage `json:"amount"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange domain.Rate   `json:"exchange"`
		Amount   domain.Amount `json:"amount"`
		Original domain.Amount `json:"original"`
		Source   domain.Source `json:"source"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			writeError(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		bytes, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "invalid request")
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "invalid json")
			return
		}

		state := controller.FormState{
			From:   request.FromCurrency,
			To:     request.ToCurrency,
			Amount: rawAmount(request.Amount),
		}

		result, err := s.Converter.Convert(r.Context(), state)
		if err != nil {
			var verr *controller.ValidationError
			if errors.As(err, &verr) {
				writeError(rw, http.StatusBadRequest, controller.Message(err))
				return
			}
			writeError(rw, http.StatusBadGateway, controller.Message(err))
			return
		}

		response := response{
			Exchange: result.Rate,
			Amount:   result.Converted,
			Original: result.Original,
			Source:   result.Source,
		}

		enc := json.NewEncoder(rw)
		err = enc.Encode(&response)
		if err != nil {
			writeError(rw, http.StatusInternalServerError, "failed json encoding")
			return
		}
	}
}

// rawAmount turns a JSON number or string into the text a form field would hold
func rawAmount(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	return text
}

func writeError(rw http.ResponseWriter, status int, message string) {
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(map[string]string{"error": message})
}
