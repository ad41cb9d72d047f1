// Package dispatch implements the server-side pattern-to-handler registry
// that routes an inbound frame body to the sub-controller that owns it.
package dispatch

import (
	"log/slog"
	"regexp"
	"time"

	"github.com/openhlx/hlxgo/internal/metrics"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// Connection is the opaque write-sink a handler renders its response onto.
// Sub-controllers never see anything about a connection besides this.
type Connection interface {
	Write(frame []byte) error
}

// HandlerFunc processes one matched frame. captures is the result of
// regexp.Regexp.FindSubmatch: captures[0] is the whole body, captures[1:]
// are the positional capture groups in pattern order.
type HandlerFunc func(conn Connection, captures [][]byte)

type registration struct {
	pattern *regexp.Regexp
	handler HandlerFunc
}

// Dispatcher owns the ordered {pattern -> handler} table. It is built up at
// sub-controller construction time, before any connection is accepted, and
// is read-only thereafter — matching the single dispatch goroutine's
// ownership of the model, it carries no mutex.
type Dispatcher struct {
	log     *slog.Logger
	regs    []registration
	metrics *metrics.Metrics
}

// New creates an empty Dispatcher.
func New(log *slog.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// SetMetrics attaches m so subsequent OnFrame calls record dispatch counts
// and durations. Optional; a Dispatcher with no metrics attached behaves
// exactly as before.
func (d *Dispatcher) SetMetrics(m *metrics.Metrics) {
	d.metrics = m
}

// Register binds pattern to handler. Idempotent by pattern identity: calling
// it twice with the same *regexp.Regexp is a no-op, so sub-controllers can
// register defensively during re-initialization without double-binding.
func (d *Dispatcher) Register(pattern *regexp.Regexp, handler HandlerFunc) {
	for _, r := range d.regs {
		if r.pattern == pattern {
			return
		}
	}
	d.regs = append(d.regs, registration{pattern: pattern, handler: handler})
}

// Unregister removes the binding for pattern, if any.
func (d *Dispatcher) Unregister(pattern *regexp.Regexp) {
	for i, r := range d.regs {
		if r.pattern == pattern {
			d.regs = append(d.regs[:i], d.regs[i+1:]...)
			return
		}
	}
}

// OnFrame matches body against the registered patterns in registration
// order and invokes the first handler that matches. A frame matching no
// pattern is logged and answered with (ERROR), per spec §4.3.
func (d *Dispatcher) OnFrame(conn Connection, body []byte) {
	verb := "unmatched"
	if entry, _, matched := protocol.Find(body); matched {
		verb = entry.Name
	}
	start := time.Now()
	defer func() { d.metrics.ObserveDispatch(verb, time.Since(start)) }()

	for _, r := range d.regs {
		if m := r.pattern.FindSubmatch(body); m != nil {
			r.handler(conn, m)
			return
		}
	}
	d.log.Warn("no handler matched frame", "body", string(body))
	if err := conn.Write(protocol.RenderError()); err != nil {
		d.log.Error("failed writing error response", "err", err)
	}
}

// Len reports the number of registered bindings, chiefly for tests.
func (d *Dispatcher) Len() int { return len(d.regs) }
