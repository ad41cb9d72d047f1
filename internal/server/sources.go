package server

import (
	"fmt"

	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// SourcesController owns the source table. Its only mutation is SetName;
// QueryCurrent (driven by Configuration) replays one SetName-style frame
// per source in ascending identifier order.
type SourcesController struct {
	*controllerContext
}

func NewSourcesController(ctx *controllerContext) *SourcesController {
	return &SourcesController{controllerContext: ctx}
}

func (c *SourcesController) Register(d *dispatch.Dispatcher) {
	d.Register(protocol.MustEntry("SourceSetName").Pattern, c.handleSetName)
}

func (c *SourcesController) handleSetName(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxSources)
	if !ok {
		sendError(conn)
		return
	}
	src, gerr := c.state.Sources.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	status, err := src.SetName(string(m[2]))
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindSourceName, id, src.Name())
	}
	_ = conn.Write(protocol.RenderSourceSetName(int(id), src.Name()))
}

// QueryCurrent replays every source's name, in ascending identifier order,
// as part of Configuration's full-snapshot query (spec §4.5.7).
func (c *SourcesController) QueryCurrent(conn dispatch.Connection) {
	c.state.Sources.Each(func(id model.Identifier, s *model.Source) {
		_ = conn.Write(protocol.RenderSourceSetName(int(id), s.Name()))
	})
}

// ResetToDefaults regenerates every source's name to "Source Name <id>",
// per spec §4.5.7's reset fan-out.
func (c *SourcesController) ResetToDefaults() {
	c.state.Sources.Each(func(id model.Identifier, s *model.Source) {
		_, _ = s.SetName(fmt.Sprintf("Source Name %d", id))
	})
}
