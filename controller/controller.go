package controller

import (
	"context"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/debounce"
	"go-currency-converter/domain"
	"go-currency-converter/resolver"
)

// Form input source: the current selections and the typed amount
type Form interface {
	State() FormState
	SwapCurrencies()
}

// Presenter output sink for results, errors and the loading indicator
type Presenter interface {
	Loading(on bool)
	Result(c domain.Conversion)
	Error(message string)
	Clear()
}

// Controller mediates between the form, the rate resolver and the presenter.
// Explicit submits surface validation errors; auto conversions triggered by edits
// or swaps stay silent until the form is complete.
type Controller struct {
	resolver  resolver.Service
	form      Form
	presenter Presenter

	// debouncer coalesces amount edits
	debouncer *debounce.Debouncer

	logger log.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithDebouncer replaces the default 500ms debouncer
func WithDebouncer(d *debounce.Debouncer) Option {
	return func(c *Controller) {
		c.debouncer = d
	}
}

// WithLogger sets the logger, nop by default
func WithLogger(logger log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New constructs a valid Controller. A nil form reads as empty and a nil presenter
// discards everything, which suits callers that only use Convert.
func New(r resolver.Service, form Form, presenter Presenter, opts ...Option) *Controller {
	if form == nil {
		form = emptyForm{}
	}
	if presenter == nil {
		presenter = nopPresenter{}
	}
	c := &Controller{
		resolver:  r,
		form:      form,
		presenter: presenter,
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.debouncer == nil {
		c.debouncer = debounce.New(debounce.DefaultWindow)
	}
	return c
}

// Convert validates state and converts the amount.
// Same-currency requests never reach the resolver. Around a resolver call the
// loading indicator is on, and it is switched off again on every path.
func (c *Controller) Convert(ctx context.Context, state FormState) (domain.Conversion, error) {
	req, err := ParseRequest(state)
	if err != nil {
		return domain.Conversion{}, err
	}

	if req.From == req.To {
		return domain.Conversion{
			Original:  req.Amount,
			Converted: req.Amount,
			From:      req.From,
			To:        req.To,
			Rate:      1,
			Source:    domain.SourceIdentity,
		}, nil
	}

	c.presenter.Loading(true)
	defer c.presenter.Loading(false)
	c.presenter.Clear()

	quote, err := c.resolver.Resolve(ctx, req.From, req.To)
	if err != nil {
		level.Error(c.logger).Log("msg", "conversion error", "from", req.From, "to", req.To, "err", err)
		return domain.Conversion{}, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	return domain.Conversion{
		Original:  req.Amount,
		Converted: domain.Amount(float64(req.Amount) * float64(quote.Rate)),
		From:      req.From,
		To:        req.To,
		Rate:      quote.Rate,
		Source:    quote.Source,
	}, nil
}

// Submit converts the current form state and presents the outcome.
// The returned error has already been shown to the user.
func (c *Controller) Submit(ctx context.Context) error {
	return c.dispatch(ctx, c.form.State())
}

// AutoConvert converts the current form state only when every field is filled in;
// an incomplete form is a silent no-op.
func (c *Controller) AutoConvert(ctx context.Context) error {
	state := c.form.State()
	if !state.Complete() {
		level.Debug(c.logger).Log("msg", "auto convert skipped", "reason", "incomplete form")
		return nil
	}
	return c.dispatch(ctx, state)
}

// Swap exchanges the from and to currencies and, when an amount is present,
// converts again in the new direction.
func (c *Controller) Swap(ctx context.Context) error {
	c.form.SwapCurrencies()
	if c.form.State().Amount == "" {
		return nil
	}
	return c.AutoConvert(ctx)
}

// AmountEdited schedules an auto conversion once edits have been quiet for the
// debounce window. Only the last edit in a burst converts.
func (c *Controller) AmountEdited(ctx context.Context) {
	c.debouncer.Trigger(func() {
		_ = c.AutoConvert(ctx)
	})
}

// Close drops any pending debounced conversion
func (c *Controller) Close() {
	c.debouncer.Cancel()
}

func (c *Controller) dispatch(ctx context.Context, state FormState) error {
	conversion, err := c.Convert(ctx, state)
	if err != nil {
		c.presenter.Error(Message(err))
		return err
	}
	c.presenter.Result(conversion)
	return nil
}

type emptyForm struct{}

func (emptyForm) State() FormState { return FormState{} }

func (emptyForm) SwapCurrencies() {}

type nopPresenter struct{}

func (nopPresenter) Loading(bool) {}

func (nopPresenter) Result(domain.Conversion) {}

func (nopPresenter) Error(string) {}

func (nopPresenter) Clear() {}
