// Package server implements the nine sub-controllers of spec §4.5, the
// group/zone orchestrator, and the Application Controller that composes
// them over a dispatch.Dispatcher and a backup.Store.
package server

import (
	"log/slog"
	"strconv"

	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/metrics"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// Dirtier marks the running configuration as needing a save. Every
// effective mutation calls it exactly once (spec §3 Invariants); a mutation
// that reports StatusValueAlreadySet must not.
type Dirtier interface {
	MarkDirty()
}

// controllerContext is embedded by every sub-controller: the shared model,
// the state-change sink, the dirty-flag setter, and a logger. Sub-
// controllers never hold back-pointers to each other — cross-controller
// effects (the group/zone orchestrator) go through this shared state and
// the Zones controller's exported mutation API instead, per Design Notes §9.
type controllerContext struct {
	state   *model.State
	sink    events.Sink
	dirty   Dirtier
	log     *slog.Logger
	metrics *metrics.Metrics
}

func (c *controllerContext) emit(kind events.Kind, id model.Identifier, value any) {
	if c.sink != nil {
		c.sink.OnStateChange(events.StateChange{Kind: kind, Identifier: id, NewValue: value})
	}
}

// sendError renders and writes the universal (ERROR) response.
func sendError(conn dispatch.Connection) {
	if err := conn.Write(protocol.RenderError()); err != nil {
		slog.Default().Error("server: failed writing error response", "err", err)
	}
}

// parseIdentifier parses a decimal capture into a model.Identifier, range
// checked against [IdentifierMin, max].
func parseIdentifier(b []byte, max int) (model.Identifier, bool) {
	n, err := strconv.Atoi(string(b))
	if err != nil || n < int(model.IdentifierMin) || n > max {
		return 0, false
	}
	return model.Identifier(n), true
}

// parseInt8 parses a signed decimal capture into an int8, with an
// additional caller-supplied range check.
func parseInt8(b []byte, min, max int) (int8, bool) {
	n, err := strconv.Atoi(string(b))
	if err != nil || n < min || n > max {
		return 0, false
	}
	return int8(n), true
}

// parseUint16 parses an unsigned decimal capture into a uint16.
func parseUint16(b []byte, min, max int) (uint16, bool) {
	n, err := strconv.Atoi(string(b))
	if err != nil || n < min || n > max {
		return 0, false
	}
	return uint16(n), true
}

// parseDigit parses a single '0'/'1' capture into a bool.
func parseDigit(b []byte) (bool, bool) {
	switch string(b) {
	case "0":
		return false, true
	case "1":
		return true, true
	default:
		return false, false
	}
}
