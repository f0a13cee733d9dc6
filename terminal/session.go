package terminal

import (
	"bufio"
	"context"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/controller"
	"io"
	"strings"
)

// Help lists the commands understood by Session
const Help = `commands:
  from CODE     select the currency to convert from
  to CODE       select the currency to convert to
  amount N      type an amount (converts after a short pause)
  swap          swap the currencies
  convert       convert now
  show          print the form
  help          print this help
  quit          leave`

// Session drives a Controller from line commands, standing in for the form UI
type Session struct {
	controller *controller.Controller
	form       *Form
	presenter  *Presenter
	logger     log.Logger
}

// NewSession constructs a Session. form and presenter must be the ones the controller uses.
func NewSession(c *controller.Controller, form *Form, presenter *Presenter, logger log.Logger) *Session {
	return &Session{
		controller: c,
		form:       form,
		presenter:  presenter,
		logger:     logger,
	}
}

// Run reads commands from r until EOF, "quit" or ctx is done.
// Any pending debounced conversion is dropped on return.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	defer s.controller.Close()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		done, err := s.handle(ctx, scanner.Text())
		if err != nil {
			s.presenter.println(err.Error())
		}
		if done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

func (s *Session) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	command, args := strings.ToLower(fields[0]), fields[1:]
	level.Debug(s.logger).Log("msg", "command", "command", command, "args", strings.Join(args, " "))

	switch command {
	case "from", "to":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: %v CODE", command)
		}
		if command == "from" {
			s.form.SetFrom(args[0])
		} else {
			s.form.SetTo(args[0])
		}
	case "amount":
		if len(args) > 1 {
			return false, fmt.Errorf("usage: amount N")
		}
		s.form.SetAmount(strings.Join(args, ""))
		s.controller.AmountEdited(ctx)
	case "swap":
		_ = s.controller.Swap(ctx)
	case "convert":
		_ = s.controller.Submit(ctx)
	case "show":
		state := s.form.State()
		s.presenter.println(fmt.Sprintf("from=%v to=%v amount=%v", state.From, state.To, state.Amount))
	case "help":
		s.presenter.println(Help)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q, try help", command)
	}
	return false, nil
}
