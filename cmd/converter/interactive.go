package main

import (
	"context"
	"errors"
	"github.com/go-kit/log"
	"github.com/spf13/cobra"
	"go-currency-converter/controller"
	"go-currency-converter/debounce"
	"go-currency-converter/terminal"
)

var (
	interactiveFrom    string
	interactiveTo      string
	interactiveVerbose bool
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Read form edits from stdin; amounts convert automatically after a pause",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd.ErrOrStderr(), nil)
		if err != nil {
			return err
		}

		form := terminal.NewForm(interactiveFrom, interactiveTo, "")
		presenter := terminal.NewPresenter(cmd.OutOrStdout(), interactiveVerbose)
		c := controller.New(d.resolver, form, presenter,
			controller.WithDebouncer(debounce.New(d.cfg.Debounce.Window)),
			controller.WithLogger(log.With(d.logger, "component", "controller")))

		session := terminal.NewSession(c, form, presenter, log.With(d.logger, "component", "session"))
		_, _ = cmd.OutOrStdout().Write([]byte(terminal.Help + "\n"))
		err = session.Run(cmd.Context(), cmd.InOrStdin())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	interactiveCmd.Flags().StringVar(&interactiveFrom, "from", "USD", "initial currency to convert from")
	interactiveCmd.Flags().StringVar(&interactiveTo, "to", "EUR", "initial currency to convert to")
	interactiveCmd.Flags().BoolVarP(&interactiveVerbose, "verbose", "v", false, "show the loading indicator")
}
