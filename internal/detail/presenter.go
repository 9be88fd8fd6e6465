// Package detail builds the fragments of an item's detail panel and turns
// user interaction on them into attribute updates.
package detail

import (
	"io"
	"log/slog"
	"time"

	"github.com/Makepad-fr/itemdetail/internal/model"
)

// Dispatcher sends item updates to wherever items live. Calls are
// fire-and-forget: failures are the dispatcher's to report.
type Dispatcher interface {
	UpdateItem(productID string, itemID int, attrs map[string]any)
}

// Params are the ambient routing parameters of the current view.
type Params struct {
	ID string // product id
}

// Router exposes the current routing parameters.
type Router interface {
	Params() Params
}

// StaticRouter is a Router with fixed parameters.
type StaticRouter Params

func (r StaticRouter) Params() Params { return Params(r) }

// Presenter renders the detail panel for one item at a time. It holds no
// per-item state; everything it draws comes from its arguments.
type Presenter struct {
	dispatcher Dispatcher
	router     Router
	scores     model.Table[int]
	statuses   model.Table[string]
	now        func() time.Time
	log        *slog.Logger
}

// Option customises a Presenter.
type Option func(*Presenter)

// WithScores replaces the estimate scale.
func WithScores(t model.Table[int]) Option {
	return func(p *Presenter) {
		if len(t) > 0 {
			p.scores = t
		}
	}
}

// WithStatuses replaces the status table.
func WithStatuses(t model.Table[string]) Option {
	return func(p *Presenter) {
		if len(t) > 0 {
			p.statuses = t
		}
	}
}

// WithClock sets the reference time for relative timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Presenter) { p.now = now }
}

// WithLogger sets the logger used on the dispatch path.
func WithLogger(l *slog.Logger) Option {
	return func(p *Presenter) { p.log = l }
}

// New returns a Presenter dispatching through d, with the product taken from r.
func New(d Dispatcher, r Router, opts ...Option) *Presenter {
	p := &Presenter{
		dispatcher: d,
		router:     r,
		scores:     model.ScoreMap,
		statuses:   model.StatusMap,
		now:        time.Now,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}
