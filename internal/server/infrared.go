package server

import (
	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// InfraredController: a single attribute, query, and setter.
type InfraredController struct {
	*controllerContext
}

func NewInfraredController(ctx *controllerContext) *InfraredController {
	return &InfraredController{controllerContext: ctx}
}

func (c *InfraredController) Register(d *dispatch.Dispatcher) {
	d.Register(protocol.MustEntry("InfraredQuery").Pattern, c.handleQuery)
	d.Register(protocol.MustEntry("InfraredSetDisabled").Pattern, c.handleSetDisabled)
}

func (c *InfraredController) handleQuery(conn dispatch.Connection, _ [][]byte) {
	c.writeSnapshot(conn)
}

func (c *InfraredController) writeSnapshot(conn dispatch.Connection) {
	_ = conn.Write(protocol.RenderInfraredSetDisabled(c.state.Infrared.Disabled()))
}

func (c *InfraredController) handleSetDisabled(conn dispatch.Connection, m [][]byte) {
	disabled, ok := parseDigit(m[1])
	if !ok {
		sendError(conn)
		return
	}
	status, err := c.state.Infrared.SetDisabled(disabled)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindInfrared, 0, c.state.Infrared)
	}
	_ = conn.Write(protocol.RenderInfraredSetDisabled(c.state.Infrared.Disabled()))
}

// QueryCurrent replays the infrared snapshot.
func (c *InfraredController) QueryCurrent(conn dispatch.Connection) {
	c.writeSnapshot(conn)
}

// ResetToDefaults re-enables the IR remote receiver.
func (c *InfraredController) ResetToDefaults() {
	c.state.Infrared = model.NewInfrared()
}
