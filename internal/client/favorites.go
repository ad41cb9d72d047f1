package client

import (
	"context"

	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// FavoritesClient issues the favorite-addressed verbs of
// catalog_favorites.go.
type FavoritesClient struct{ *clientContext }

func (c *FavoritesClient) Query(ctx context.Context, id model.Identifier) (string, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:    protocol.RenderFavoriteQuery(int(id)),
		Expect:   protocol.MustEntry("FavoriteSetName").Pattern,
		ReadOnly: true,
	})
	if err != nil {
		return "", err
	}
	return parseNameCapture(caps[2]), nil
}

func (c *FavoritesClient) SetName(ctx context.Context, id model.Identifier, name string) (string, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderFavoriteSetName(int(id), name),
		Expect: protocol.MustEntry("FavoriteSetName").Pattern,
	})
	if err != nil {
		return "", err
	}
	return parseNameCapture(caps[2]), nil
}
