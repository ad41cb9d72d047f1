package server

import (
	"strconv"

	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// GroupsController owns group identity and membership only — name and the
// zone_set (spec §3.1). Groups are stateless with respect to audio
// attributes; Mute/SetVolume/SetSource and friends are intercepted ahead of
// this controller by the Orchestrator (orchestrator.go).
type GroupsController struct {
	*controllerContext
}

func NewGroupsController(ctx *controllerContext) *GroupsController {
	return &GroupsController{controllerContext: ctx}
}

func (c *GroupsController) Register(d *dispatch.Dispatcher) {
	d.Register(protocol.MustEntry("GroupQuery").Pattern, c.handleQuery)
	d.Register(protocol.MustEntry("GroupSetName").Pattern, c.handleSetName)
	d.Register(protocol.MustEntry("GroupAddZone").Pattern, c.handleAddZone)
	d.Register(protocol.MustEntry("GroupRemoveZone").Pattern, c.handleRemoveZone)
	d.Register(protocol.MustEntry("GroupClearZones").Pattern, c.handleClearZones)
}

// handleQuery reports the group's name and membership only — per-zone
// audio attributes are queried through ZonesController instead.
func (c *GroupsController) handleQuery(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxGroups)
	if !ok {
		sendError(conn)
		return
	}
	g, err := c.state.Groups.Get(id)
	if err != nil {
		sendError(conn)
		return
	}
	c.writeSnapshot(conn, id, g)
	_ = conn.Write(protocol.RenderGroupQueryEnd(int(id)))
}

func (c *GroupsController) writeSnapshot(conn dispatch.Connection, id model.Identifier, g *model.Group) {
	_ = conn.Write(protocol.RenderGroupSetName(int(id), g.Name()))
	for _, zoneID := range g.ZoneIDs() {
		_ = conn.Write(protocol.RenderGroupAddZone(int(id), int(zoneID)))
	}
}

func (c *GroupsController) handleSetName(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxGroups)
	if !ok {
		sendError(conn)
		return
	}
	g, gerr := c.state.Groups.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	status, err := g.SetName(string(m[2]))
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindGroupName, id, g.Name())
	}
	_ = conn.Write(protocol.RenderGroupSetName(int(id), g.Name()))
}

func (c *GroupsController) handleAddZone(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxGroups)
	if !ok {
		sendError(conn)
		return
	}
	zoneID, ok := parseIdentifier(m[2], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	g, gerr := c.state.Groups.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if _, zerr := c.state.Zones.Get(zoneID); zerr != nil {
		sendError(conn)
		return
	}
	status, err := g.AddZone(zoneID)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindGroupMembership, id, g.ZoneIDs())
	}
	_ = conn.Write(protocol.RenderGroupAddZone(int(id), int(zoneID)))
}

func (c *GroupsController) handleRemoveZone(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxGroups)
	if !ok {
		sendError(conn)
		return
	}
	zoneID, ok := parseIdentifier(m[2], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	g, gerr := c.state.Groups.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	status, err := g.RemoveZone(zoneID)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindGroupMembership, id, g.ZoneIDs())
	}
	_ = conn.Write(protocol.RenderGroupRemoveZone(int(id), int(zoneID)))
}

func (c *GroupsController) handleClearZones(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxGroups)
	if !ok {
		sendError(conn)
		return
	}
	g, gerr := c.state.Groups.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	status, err := g.ClearZones()
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindGroupMembership, id, g.ZoneIDs())
	}
	_ = conn.Write(protocol.RenderGroupClearZones(int(id)))
}

// QueryCurrent replays every group's name and membership, in ascending
// identifier order, as part of Configuration's full-snapshot query.
func (c *GroupsController) QueryCurrent(conn dispatch.Connection) {
	c.state.Groups.Each(func(id model.Identifier, g *model.Group) {
		c.writeSnapshot(conn, id, g)
	})
}

// ResetToDefaults replaces every group with an empty, default-named group.
func (c *GroupsController) ResetToDefaults() {
	c.state.Groups.Each(func(id model.Identifier, g *model.Group) {
		*g = model.NewGroup(id, groupDefaultName(id))
	})
}

func groupDefaultName(id model.Identifier) string {
	return "Group Name " + strconv.Itoa(int(id))
}
