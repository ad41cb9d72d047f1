// Package exchange implements the client-side request/response correlation
// described in spec §4.4: a single-outstanding-exchange FIFO per connection
// that classifies inbound frames as the expected response, an unsolicited
// notification, or a protocol error, with bounded retry for read-only
// queries.
package exchange

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"golang.org/x/time/rate"

	"github.com/openhlx/hlxgo/internal/metrics"
	"github.com/openhlx/hlxgo/internal/protocol"
	"github.com/openhlx/hlxgo/internal/transport"
)

// ErrDisconnected is returned to every queued and in-flight exchange when
// the connection closes.
var ErrDisconnected = errors.New("exchange: connection closed")

// ErrProtocol is returned when the peer answers with the literal (ERROR)
// frame.
var ErrProtocol = errors.New("exchange: peer returned (ERROR)")

// ErrTimeout is returned when a request exhausts its retry budget (or has
// none) without a matching response.
var ErrTimeout = errors.New("exchange: timed out waiting for response")

// retryBackoff is the exponential-backoff schedule for read-only query
// retries: 250ms, 500ms, 1s. A rate.Limiter is unsuited to a bounded
// one-shot backoff like this — it shapes steady-state throughput, not a
// three-attempt-and-stop sequence — so the schedule is this plain slice;
// see DESIGN.md. golang.org/x/time/rate is still exercised, as a ceiling
// that keeps a flood of concurrent Submits from retrying faster than the
// slowest backoff step would otherwise allow.
var retryBackoff = []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 1 * time.Second}

const maxRetries = 3

// Frame is one classified inbound frame: the catalog entry it matched and
// its positional captures.
type Frame struct {
	Entry    protocol.Entry
	Captures [][]byte
}

// Result is what Submit returns on success: either a single matched frame
// (Captures populated) or, for a Collect request, every frame gathered
// before the terminator; the terminator itself is not included.
type Result struct {
	Captures [][]byte
	Frames   []Frame
}

// NotificationSink receives frames that are not the response to any
// in-flight request.
type NotificationSink interface {
	OnNotification(entry protocol.Entry, captures [][]byte)
}

// NotificationSinkFunc adapts a function to NotificationSink.
type NotificationSinkFunc func(entry protocol.Entry, captures [][]byte)

// OnNotification calls f.
func (f NotificationSinkFunc) OnNotification(entry protocol.Entry, captures [][]byte) {
	f(entry, captures)
}

// Request describes one outbound exchange.
type Request struct {
	// Frame is the already-rendered wire body, e.g. protocol.RenderZoneSetVolume(...).
	Frame []byte
	// Expect matches the response frame that completes this exchange.
	Expect *regexp.Regexp
	// Collect, when true, accumulates every frame until Terminator matches
	// instead of completing on the first Expect match (spec §4.5.4 Query).
	Collect bool
	// Terminator matches the final frame of a Collect sequence.
	Terminator *regexp.Regexp
	// ReadOnly marks the request retry-eligible on timeout, per §4.4.
	ReadOnly bool
}

type pendingExchange struct {
	req      Request
	resultCh chan outcome
	frames   []Frame
	attempt  int
}

type outcome struct {
	result Result
	err    error
}

// Manager is the single-outstanding-exchange FIFO for one connection.
type Manager struct {
	conn transport.Connection
	sink NotificationSink
	log  *slog.Logger

	timeout time.Duration
	limiter *rate.Limiter
	metrics *metrics.Metrics

	submitCh chan *pendingExchange
	frameCh  chan frameEvent
	stopCh   chan struct{}
	doneCh   chan struct{}
}

type frameEvent struct {
	body []byte
	err  error
}

// New starts a Manager reading frames from conn and delivering unmatched
// notifications to sink. timeout bounds each attempt; 0 selects 2s.
func New(conn transport.Connection, sink NotificationSink, log *slog.Logger, timeout time.Duration) *Manager {
	if timeout == 0 {
		timeout = 2 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	m := &Manager{
		conn:     conn,
		sink:     sink,
		log:      log,
		timeout:  timeout,
		limiter:  rate.NewLimiter(rate.Every(retryBackoff[0]), 1),
		submitCh: make(chan *pendingExchange),
		frameCh:  make(chan frameEvent, 16),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go m.readLoop()
	go m.runLoop()
	return m
}

// SetMetrics attaches m so a subsequent exhausted retry budget is counted.
// Optional; call before the manager sees any traffic.
func (m *Manager) SetMetrics(mt *metrics.Metrics) {
	m.metrics = mt
}

// Close disconnects the manager, failing every queued and in-flight
// exchange with ErrDisconnected, per spec §4.4.
func (m *Manager) Close() error {
	select {
	case <-m.stopCh:
	default:
		close(m.stopCh)
	}
	err := m.conn.Close()
	<-m.doneCh
	return err
}

// Submit enqueues req and blocks until it completes, times out (after
// retries, if ReadOnly), or the connection closes.
func (m *Manager) Submit(ctx context.Context, req Request) (Result, error) {
	p := &pendingExchange{req: req, resultCh: make(chan outcome, 1)}
	select {
	case m.submitCh <- p:
	case <-m.stopCh:
		return Result{}, ErrDisconnected
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
	select {
	case o := <-p.resultCh:
		return o.result, o.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (m *Manager) readLoop() {
	var framer protocol.Framer
	buf := make([]byte, 4096)
	for {
		n, err := m.conn.Read(buf)
		if n > 0 {
			frames, frameErrs := framer.Feed(buf[:n])
			for _, ferr := range frameErrs {
				m.log.Warn("exchange: framing error", "err", ferr)
			}
			for _, body := range frames {
				select {
				case m.frameCh <- frameEvent{body: body}:
				case <-m.stopCh:
					return
				}
			}
		}
		if err != nil {
			select {
			case m.frameCh <- frameEvent{err: err}:
			case <-m.stopCh:
			}
			return
		}
	}
}

// runLoop is the sole owner of the FIFO and the in-flight exchange; no
// mutex is needed because everything funnels through these two channels
// (§5's single-owner-goroutine pattern applied to the client side).
func (m *Manager) runLoop() {
	defer close(m.doneCh)

	var queue []*pendingExchange
	var current *pendingExchange
	var timer *time.Timer
	timerCh := func() <-chan time.Time {
		if timer == nil {
			return nil
		}
		return timer.C
	}

	failAll := func(err error) {
		if current != nil {
			current.resultCh <- outcome{err: err}
			current = nil
		}
		for _, p := range queue {
			p.resultCh <- outcome{err: err}
		}
		queue = nil
	}

	dispatchNext := func() {
		if current != nil || len(queue) == 0 {
			return
		}
		current = queue[0]
		queue = queue[1:]
		m.send(current)
		if timer != nil {
			timer.Stop()
		}
		timer = time.NewTimer(m.timeout)
	}

	for {
		select {
		case p := <-m.submitCh:
			queue = append(queue, p)
			dispatchNext()

		case ev := <-m.frameCh:
			if ev.err != nil {
				failAll(ErrDisconnected)
				return
			}
			m.handleFrame(ev.body, &current, timer)
			if current == nil {
				timer = nil
				dispatchNext()
			}

		case <-timerCh():
			if current == nil {
				continue
			}
			if current.req.ReadOnly && current.attempt < maxRetries {
				current.attempt++
				_ = m.limiter.Wait(context.Background())
				m.log.Debug("exchange: retrying read-only query", "attempt", current.attempt)
				m.send(current)
				delay := retryBackoff[min(current.attempt-1, len(retryBackoff)-1)]
				timer = time.NewTimer(delay)
				continue
			}
			m.metrics.IncExchangeTimeout()
			current.resultCh <- outcome{err: ErrTimeout}
			current = nil
			timer = nil
			dispatchNext()

		case <-m.stopCh:
			failAll(ErrDisconnected)
			return
		}
	}
}

func (m *Manager) send(p *pendingExchange) {
	if _, err := m.conn.Write(p.req.Frame); err != nil {
		m.log.Error("exchange: write failed", "err", err)
	}
}

// handleFrame classifies one inbound frame against the in-flight exchange
// (if any) and either completes it, accumulates it (Collect requests), or
// routes it to the notification sink.
func (mgr *Manager) handleFrame(body []byte, current **pendingExchange, _ *time.Timer) {
	p := *current
	entry, captures, matched := protocol.Find(body)

	if matched && entry.Name == "Error" {
		if p != nil {
			p.resultCh <- outcome{err: ErrProtocol}
			*current = nil
		} else {
			mgr.log.Warn("exchange: unsolicited (ERROR) frame dropped")
		}
		return
	}

	if p != nil && p.req.Collect {
		if p.req.Terminator != nil && p.req.Terminator.Match(body) {
			p.resultCh <- outcome{result: Result{Frames: p.frames}}
			*current = nil
			return
		}
		p.frames = append(p.frames, Frame{Entry: entry, Captures: captures})
		return
	}

	if p != nil && p.req.Expect != nil && p.req.Expect.Match(body) {
		sub := p.req.Expect.FindSubmatch(body)
		p.resultCh <- outcome{result: Result{Captures: sub}}
		*current = nil
		return
	}

	if matched && entry.Notification {
		if mgr.sink != nil {
			mgr.sink.OnNotification(entry, captures)
		}
		return
	}

	mgr.log.Warn("exchange: frame matched neither in-flight request nor a notification pattern, dropping", "body", string(body))
}
