package main

import (
	"github.com/go-kit/log"
	"github.com/spf13/cobra"
	"go-currency-converter/controller"
	"go-currency-converter/fallback"
	"go-currency-converter/terminal"
	"strings"
)

var convertCmd = &cobra.Command{
	Use:     "convert FROM TO AMOUNT",
	Short:   "Convert an amount once and exit",
	Example: "  converter convert USD EUR 100",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd.ErrOrStderr(), nil)
		if err != nil {
			return err
		}

		form := terminal.NewForm(args[0], args[1], args[2])
		presenter := terminal.NewPresenter(cmd.OutOrStdout(), false)
		c := controller.New(d.resolver, form, presenter,
			controller.WithLogger(log.With(d.logger, "component", "controller")))
		defer c.Close()

		return c.Submit(cmd.Context())
	},
}

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List the currencies covered by the offline fallback table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := fallback.Default().Currencies()
		out := make([]string, len(codes))
		for i, c := range codes {
			out[i] = string(c)
		}
		_, err := cmd.OutOrStdout().Write([]byte(strings.Join(out, " ") + "\n"))
		return err
	},
}
