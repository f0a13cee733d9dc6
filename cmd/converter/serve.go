package main

import (
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go-currency-converter/controller"
	"go-currency-converter/http"
	nhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve POST /api/convert and GET /metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		d, err := setup(cmd.ErrOrStderr(), reg)
		if err != nil {
			return err
		}

		c := controller.New(d.resolver, nil, nil,
			controller.WithLogger(log.With(d.logger, "component", "controller")))
		handler := http.NewServer(c, level.Debug(log.With(d.logger, "component", "http")), http.WithMetrics(reg))

		srv := &nhttp.Server{
			Addr:              d.cfg.HTTP.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			level.Info(d.logger).Log("msg", "listening", "addr", srv.Addr)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
			level.Info(d.logger).Log("msg", "shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errc; !errors.Is(err, nhttp.ErrServerClosed) {
				return err
			}
			return nil
		}
	},
}
