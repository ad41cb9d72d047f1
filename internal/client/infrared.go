package client

import (
	"context"

	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// InfraredClient issues the single-attribute verb set of
// catalog_infrared.go.
type InfraredClient struct{ *clientContext }

func (c *InfraredClient) Query(ctx context.Context) (bool, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:    protocol.RenderInfraredQuery(),
		Expect:   protocol.MustEntry("InfraredSetDisabled").Pattern,
		ReadOnly: true,
	})
	if err != nil {
		return false, err
	}
	return parseBoolCapture(caps[1]), nil
}

func (c *InfraredClient) SetDisabled(ctx context.Context, disabled bool) (bool, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderInfraredSetDisabled(disabled),
		Expect: protocol.MustEntry("InfraredSetDisabled").Pattern,
	})
	if err != nil {
		return false, err
	}
	return parseBoolCapture(caps[1]), nil
}
