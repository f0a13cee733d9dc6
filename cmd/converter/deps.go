package main

import (
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"go-currency-converter/config"
	"go-currency-converter/exchangerate"
	"go-currency-converter/fallback"
	"go-currency-converter/resolver"
	"io"
)

// deps shared by every command
type deps struct {
	cfg      *config.Config
	logger   log.Logger
	resolver resolver.Service
}

func newLogger(w io.Writer, cfg config.Log) log.Logger {
	w = log.NewSyncWriter(w)
	var logger log.Logger
	if cfg.Format == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}
	var allow level.Option
	switch cfg.Level {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

// setup loads configuration and wires the resolver stack.
// reg may be nil when metrics are not exposed.
func setup(stderr io.Writer, reg prometheus.Registerer) (*deps, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load a config: %w", err)
	}
	logger := newLogger(stderr, cfg.Log)

	var remote exchangerate.Service
	remote = exchangerate.NewService(cfg.RateAPI.URL, cfg.RateAPI.Timeout)
	remote = exchangerate.NewLoggingService(level.Debug(log.With(logger, "component", "exchangerate")), remote)

	var rs resolver.Service
	rs = resolver.NewService(remote, fallback.Default())
	rs = resolver.NewLoggingService(level.Info(log.With(logger, "component", "resolver")), rs)
	if reg != nil {
		rs = resolver.NewInstrumentingService(reg, rs)
	}

	return &deps{cfg: cfg, logger: logger, resolver: rs}, nil
}
