package server

import (
	"fmt"

	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// EqualizerPresetsController owns the preset table: name, and a fixed
// ten-band curve each, per spec §4.5.3.
type EqualizerPresetsController struct {
	*controllerContext
}

func NewEqualizerPresetsController(ctx *controllerContext) *EqualizerPresetsController {
	return &EqualizerPresetsController{controllerContext: ctx}
}

func (c *EqualizerPresetsController) Register(d *dispatch.Dispatcher) {
	d.Register(protocol.MustEntry("EqualizerPresetQuery").Pattern, c.handleQuery)
	d.Register(protocol.MustEntry("EqualizerPresetSetName").Pattern, c.handleSetName)
	d.Register(protocol.MustEntry("EqualizerPresetSetBand").Pattern, c.handleSetBand)
	d.Register(protocol.MustEntry("EqualizerPresetAdjustBand").Pattern, c.handleAdjustBand)
}

// handleQuery emits the preset's name, then one band response per band in
// identifier order.
func (c *EqualizerPresetsController) handleQuery(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxEqualizerPresets)
	if !ok {
		sendError(conn)
		return
	}
	p, err := c.state.Presets.Get(id)
	if err != nil {
		sendError(conn)
		return
	}
	c.writeSnapshot(conn, id, p)
	_ = conn.Write(protocol.RenderEqualizerPresetQueryEnd(int(id)))
}

func (c *EqualizerPresetsController) writeSnapshot(conn dispatch.Connection, id model.Identifier, p *model.EqualizerPreset) {
	_ = conn.Write(protocol.RenderEqualizerPresetSetName(int(id), p.Name()))
	bands := p.Bands()
	for i, b := range bands {
		_ = conn.Write(protocol.RenderEqualizerPresetSetBand(int(id), i+1, int(b.Level())))
	}
}

func (c *EqualizerPresetsController) handleSetName(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxEqualizerPresets)
	if !ok {
		sendError(conn)
		return
	}
	p, gerr := c.state.Presets.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	status, err := p.SetName(string(m[2]))
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindPresetName, id, p.Name())
	}
	_ = conn.Write(protocol.RenderEqualizerPresetSetName(int(id), p.Name()))
}

func (c *EqualizerPresetsController) handleSetBand(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxEqualizerPresets)
	if !ok {
		sendError(conn)
		return
	}
	bandID, ok := parseIdentifier(m[2], model.EqualizerBandsPerSet)
	if !ok {
		sendError(conn)
		return
	}
	level, ok := parseInt8(m[3], int(model.EqualizerBandLevelMin), int(model.EqualizerBandLevelMax))
	if !ok {
		sendError(conn)
		return
	}
	p, gerr := c.state.Presets.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	band, berr := p.Band(bandID)
	if berr != nil {
		sendError(conn)
		return
	}
	status, err := band.Set(level)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindPresetBand, id, band.Level())
	}
	_ = conn.Write(protocol.RenderEqualizerPresetSetBand(int(id), int(bandID), int(band.Level())))
}

func (c *EqualizerPresetsController) handleAdjustBand(conn dispatch.Connection, m [][]byte) {
	increase := string(m[1]) == "U"
	id, ok := parseIdentifier(m[2], model.MaxEqualizerPresets)
	if !ok {
		sendError(conn)
		return
	}
	bandID, ok := parseIdentifier(m[3], model.EqualizerBandsPerSet)
	if !ok {
		sendError(conn)
		return
	}
	p, gerr := c.state.Presets.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	band, berr := p.Band(bandID)
	if berr != nil {
		sendError(conn)
		return
	}
	var status model.Status
	var err *model.Error
	if increase {
		status, err = band.Increase()
	} else {
		status, err = band.Decrease()
	}
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindPresetBand, id, band.Level())
	}
	_ = conn.Write(protocol.RenderEqualizerPresetSetBand(int(id), int(bandID), int(band.Level())))
}

// QueryCurrent iterates all presets, per Configuration's full-snapshot query.
func (c *EqualizerPresetsController) QueryCurrent(conn dispatch.Connection) {
	c.state.Presets.Each(func(id model.Identifier, p *model.EqualizerPreset) {
		c.writeSnapshot(conn, id, p)
	})
}

// ResetToDefaults regenerates every preset's name and flattens its bands.
func (c *EqualizerPresetsController) ResetToDefaults() {
	c.state.Presets.Each(func(id model.Identifier, p *model.EqualizerPreset) {
		_, _ = p.SetName(fmt.Sprintf("Equalizer Preset Name %d", id))
		bands := p.Bands()
		for i := range bands {
			band, _ := p.Band(model.Identifier(i + 1))
			_, _ = band.Set(0)
		}
	})
}
