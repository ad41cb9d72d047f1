package server

import (
	"fmt"

	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// FavoritesController is shaped identically to Sources, plus a by-id query.
type FavoritesController struct {
	*controllerContext
}

func NewFavoritesController(ctx *controllerContext) *FavoritesController {
	return &FavoritesController{controllerContext: ctx}
}

func (c *FavoritesController) Register(d *dispatch.Dispatcher) {
	d.Register(protocol.MustEntry("FavoriteQuery").Pattern, c.handleQuery)
	d.Register(protocol.MustEntry("FavoriteSetName").Pattern, c.handleSetName)
}

func (c *FavoritesController) handleQuery(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxFavorites)
	if !ok {
		sendError(conn)
		return
	}
	f, err := c.state.Favorites.Get(id)
	if err != nil {
		sendError(conn)
		return
	}
	_ = conn.Write(protocol.RenderFavoriteSetName(int(id), f.Name()))
}

func (c *FavoritesController) handleSetName(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxFavorites)
	if !ok {
		sendError(conn)
		return
	}
	f, gerr := c.state.Favorites.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	status, err := f.SetName(string(m[2]))
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindFavoriteName, id, f.Name())
	}
	_ = conn.Write(protocol.RenderFavoriteSetName(int(id), f.Name()))
}

// QueryCurrent replays every favorite's name, per Configuration's
// full-snapshot query.
func (c *FavoritesController) QueryCurrent(conn dispatch.Connection) {
	c.state.Favorites.Each(func(id model.Identifier, f *model.Favorite) {
		_ = conn.Write(protocol.RenderFavoriteSetName(int(id), f.Name()))
	})
}

// ResetToDefaults regenerates every favorite's name.
func (c *FavoritesController) ResetToDefaults() {
	c.state.Favorites.Each(func(id model.Identifier, f *model.Favorite) {
		_, _ = f.SetName(fmt.Sprintf("Favorite Name %d", id))
	})
}
