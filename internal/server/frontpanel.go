package server

import (
	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// FrontPanelController: two attributes, a query, and per-attribute setters
// (spec §4.5.6).
type FrontPanelController struct {
	*controllerContext
}

func NewFrontPanelController(ctx *controllerContext) *FrontPanelController {
	return &FrontPanelController{controllerContext: ctx}
}

func (c *FrontPanelController) Register(d *dispatch.Dispatcher) {
	d.Register(protocol.MustEntry("FrontPanelQuery").Pattern, c.handleQuery)
	d.Register(protocol.MustEntry("FrontPanelSetBrightness").Pattern, c.handleSetBrightness)
	d.Register(protocol.MustEntry("FrontPanelSetLocked").Pattern, c.handleSetLocked)
}

func (c *FrontPanelController) handleQuery(conn dispatch.Connection, _ [][]byte) {
	c.writeSnapshot(conn)
	_ = conn.Write(protocol.RenderFrontPanelQueryEnd())
}

func (c *FrontPanelController) writeSnapshot(conn dispatch.Connection) {
	_ = conn.Write(protocol.RenderFrontPanelSetBrightness(c.state.FrontPanel.Brightness()))
	_ = conn.Write(protocol.RenderFrontPanelSetLocked(c.state.FrontPanel.Locked()))
}

func (c *FrontPanelController) handleSetBrightness(conn dispatch.Connection, m [][]byte) {
	level, ok := parseUint16(m[1], int(model.FrontPanelBrightnessMin), int(model.FrontPanelBrightnessMax))
	if !ok {
		sendError(conn)
		return
	}
	status, err := c.state.FrontPanel.SetBrightness(uint8(level))
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindFrontPanel, 0, c.state.FrontPanel)
	}
	_ = conn.Write(protocol.RenderFrontPanelSetBrightness(c.state.FrontPanel.Brightness()))
}

func (c *FrontPanelController) handleSetLocked(conn dispatch.Connection, m [][]byte) {
	locked, ok := parseDigit(m[1])
	if !ok {
		sendError(conn)
		return
	}
	status, err := c.state.FrontPanel.SetLocked(locked)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindFrontPanel, 0, c.state.FrontPanel)
	}
	_ = conn.Write(protocol.RenderFrontPanelSetLocked(c.state.FrontPanel.Locked()))
}

// QueryCurrent replays the front panel snapshot, per Configuration's
// full-snapshot query.
func (c *FrontPanelController) QueryCurrent(conn dispatch.Connection) {
	c.writeSnapshot(conn)
}

// ResetToDefaults restores brightness and lock state to their defaults.
func (c *FrontPanelController) ResetToDefaults() {
	c.state.FrontPanel = model.NewFrontPanel()
}
