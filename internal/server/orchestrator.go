package server

import (
	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// Orchestrator intercepts the five group-level audio-attribute verbs ahead
// of GroupsController and expands each into the equivalent mutation on
// every member zone, via ZonesController's internal mutation API. Per spec
// §4.5.5 this produces exactly one wire frame — the group's own response,
// built by reflecting the request — never a per-zone state-change frame.
//
// A per-zone mutation that reports an out-of-range error is folded into
// success: a saturated or rejected member does not fail the group
// operation as a whole, matching the reference behavior spec §4.5.5 calls
// out explicitly.
type Orchestrator struct {
	*controllerContext
	zones *ZonesController
}

func NewOrchestrator(ctx *controllerContext, zones *ZonesController) *Orchestrator {
	return &Orchestrator{controllerContext: ctx, zones: zones}
}

func (c *Orchestrator) Register(d *dispatch.Dispatcher) {
	d.Register(protocol.MustEntry("GroupMute").Pattern, c.handleMute)
	d.Register(protocol.MustEntry("GroupToggleMute").Pattern, c.handleToggleMute)
	d.Register(protocol.MustEntry("GroupSetVolume").Pattern, c.handleSetVolume)
	d.Register(protocol.MustEntry("GroupAdjustVolume").Pattern, c.handleAdjustVolume)
	d.Register(protocol.MustEntry("GroupSetSource").Pattern, c.handleSetSource)
}

func (c *Orchestrator) memberZones(id model.Identifier) ([]model.Identifier, bool) {
	g, err := c.state.Groups.Get(id)
	if err != nil {
		return nil, false
	}
	return g.ZoneIDs(), true
}

func (c *Orchestrator) handleMute(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxGroups)
	if !ok {
		sendError(conn)
		return
	}
	mute, ok := parseDigit(m[2])
	if !ok {
		sendError(conn)
		return
	}
	members, ok := c.memberZones(id)
	if !ok {
		sendError(conn)
		return
	}
	for _, zoneID := range members {
		if _, err := c.zones.mutateMute(zoneID, mute); err != nil {
			c.log.Debug("orchestrator: per-zone mute folded into success", "group", id, "zone", zoneID, "err", err)
		}
	}
	_ = conn.Write(protocol.RenderGroupMute(int(id), mute))
}

func (c *Orchestrator) handleToggleMute(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxGroups)
	if !ok {
		sendError(conn)
		return
	}
	members, ok := c.memberZones(id)
	if !ok {
		sendError(conn)
		return
	}
	for _, zoneID := range members {
		if _, err := c.zones.mutateToggleMute(zoneID); err != nil {
			c.log.Debug("orchestrator: per-zone toggle-mute folded into success", "group", id, "zone", zoneID, "err", err)
		}
	}
	_ = conn.Write(protocol.RenderGroupToggleMute(int(id)))
}

func (c *Orchestrator) handleSetVolume(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxGroups)
	if !ok {
		sendError(conn)
		return
	}
	level, ok := parseInt8(m[2], int(model.VolumeLevelMin), int(model.VolumeLevelMax))
	if !ok {
		sendError(conn)
		return
	}
	members, ok := c.memberZones(id)
	if !ok {
		sendError(conn)
		return
	}
	for _, zoneID := range members {
		if _, err := c.zones.mutateSetVolume(zoneID, level); err != nil {
			c.log.Debug("orchestrator: per-zone volume folded into success", "group", id, "zone", zoneID, "err", err)
		}
	}
	_ = conn.Write(protocol.RenderGroupSetVolume(int(id), level))
}

func (c *Orchestrator) handleAdjustVolume(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxGroups)
	if !ok {
		sendError(conn)
		return
	}
	increase := string(m[2]) == "U"
	members, ok := c.memberZones(id)
	if !ok {
		sendError(conn)
		return
	}
	for _, zoneID := range members {
		if _, err := c.zones.mutateAdjustVolume(zoneID, increase); err != nil {
			c.log.Debug("orchestrator: per-zone volume adjust folded into success", "group", id, "zone", zoneID, "err", err)
		}
	}
	if increase {
		_ = conn.Write(protocol.RenderGroupIncreaseVolume(int(id)))
	} else {
		_ = conn.Write(protocol.RenderGroupDecreaseVolume(int(id)))
	}
}

func (c *Orchestrator) handleSetSource(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxGroups)
	if !ok {
		sendError(conn)
		return
	}
	source, ok := parseIdentifier(m[2], model.MaxSources)
	if !ok {
		sendError(conn)
		return
	}
	members, ok := c.memberZones(id)
	if !ok {
		sendError(conn)
		return
	}
	for _, zoneID := range members {
		if _, err := c.zones.mutateSetSource(zoneID, source); err != nil {
			c.log.Debug("orchestrator: per-zone source folded into success", "group", id, "zone", zoneID, "err", err)
		}
	}
	_ = conn.Write(protocol.RenderGroupSetSource(int(id), int(source)))
}
