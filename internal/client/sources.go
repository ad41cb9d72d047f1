package client

import (
	"context"

	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// SourcesClient issues the one mutation catalog_sources.go defines. Sources
// have no standalone query verb — their names surface only through
// ConfigurationClient.QueryCurrent's full-snapshot fan-out, the same
// asymmetry SourcesController has on the server side.
type SourcesClient struct{ *clientContext }

func (c *SourcesClient) SetName(ctx context.Context, id model.Identifier, name string) (string, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderSourceSetName(int(id), name),
		Expect: protocol.MustEntry("SourceSetName").Pattern,
	})
	if err != nil {
		return "", err
	}
	return parseNameCapture(caps[2]), nil
}
