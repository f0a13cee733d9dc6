package terminal

import (
	"fmt"
	"go-currency-converter/domain"
	"go-currency-converter/format"
	"io"
	"sync"
)

// Presenter writes conversion output as plain lines.
// Debounced conversions report from timer goroutines, so writes are serialised.
type Presenter struct {
	mu sync.Mutex
	w  io.Writer

	// verbose also prints the loading indicator
	verbose bool
}

// NewPresenter constructs a Presenter writing to w
func NewPresenter(w io.Writer, verbose bool) *Presenter {
	return &Presenter{w: w, verbose: verbose}
}

func (p *Presenter) Loading(on bool) {
	if !p.verbose || !on {
		return
	}
	p.println("converting...")
}

func (p *Presenter) Result(c domain.Conversion) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, format.Amount(c.Converted, c.To))
	fmt.Fprintln(p.w, format.Summary(c))
	fmt.Fprintln(p.w, format.RateLine(c))
}

func (p *Presenter) Error(message string) {
	p.println("error: " + message)
}

// Clear is a no-op; a terminal cannot take lines back.
func (p *Presenter) Clear() {}

func (p *Presenter) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, line)
}
