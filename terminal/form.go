package terminal

import (
	"go-currency-converter/controller"
	"strings"
	"sync"
)

// Form in-memory converter form, safe for concurrent use
type Form struct {
	mu    sync.RWMutex
	state controller.FormState
}

// NewForm constructs a Form with the given initial values
func NewForm(from, to, amount string) *Form {
	return &Form{state: controller.FormState{
		From:   normalize(from),
		To:     normalize(to),
		Amount: amount,
	}}
}

func (f *Form) State() controller.FormState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

func (f *Form) SwapCurrencies() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.From, f.state.To = f.state.To, f.state.From
}

func (f *Form) SetFrom(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.From = normalize(code)
}

func (f *Form) SetTo(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.To = normalize(code)
}

func (f *Form) SetAmount(amount string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Amount = amount
}

// normalize currency codes are compared verbatim, so trim and upper-case them
func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
