// Package client implements the nine sub-controller-shaped command groups
// of spec §4.5 from the caller's side of the wire: one typed method per
// verb, each building an exchange.Request from a protocol.Render* frame
// and the catalog entry that names its response shape, and handing it to
// a single exchange.Manager.
//
// The split mirrors internal/server's: Zones, Groups, Sources, Favorites,
// EqualizerPresets, FrontPanel, Infrared, Network, Configuration. Every
// sub-client embeds *clientContext exactly the way internal/server's
// sub-controllers embed *controllerContext.
package client

import (
	"context"
	"strconv"

	"github.com/openhlx/hlxgo/internal/exchange"
)

// clientContext is embedded by every sub-client. It holds the one
// exchange.Manager a Client's sub-clients share, the same pattern
// internal/server's controllerContext uses for its shared *model.State.
type clientContext struct {
	mgr *exchange.Manager
}

// submit renders req's single expected response into captures.
func (c *clientContext) submit(ctx context.Context, req exchange.Request) ([][]byte, error) {
	res, err := c.mgr.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Captures, nil
}

// collect runs a Collect request and returns every frame gathered before
// the terminator; the terminator itself is not included.
func (c *clientContext) collect(ctx context.Context, req exchange.Request) ([]exchange.Frame, error) {
	req.Collect = true
	res, err := c.mgr.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Frames, nil
}

// Client is the composition root for every sub-client, built over one
// exchange.Manager exactly the way server.Application builds every
// sub-controller over one dispatch.Dispatcher.
type Client struct {
	Zones            *ZonesClient
	Groups           *GroupsClient
	Sources          *SourcesClient
	Favorites        *FavoritesClient
	EqualizerPresets *EqualizerPresetsClient
	FrontPanel       *FrontPanelClient
	Infrared         *InfraredClient
	Network          *NetworkClient
	Configuration    *ConfigurationClient
}

// New builds a Client issuing every request through mgr.
func New(mgr *exchange.Manager) *Client {
	ctx := &clientContext{mgr: mgr}
	return &Client{
		Zones:            &ZonesClient{ctx},
		Groups:           &GroupsClient{ctx},
		Sources:          &SourcesClient{ctx},
		Favorites:        &FavoritesClient{ctx},
		EqualizerPresets: &EqualizerPresetsClient{ctx},
		FrontPanel:       &FrontPanelClient{ctx},
		Infrared:         &InfraredClient{ctx},
		Network:          &NetworkClient{ctx},
		Configuration:    &ConfigurationClient{ctx},
	}
}

func parseBoolCapture(b []byte) bool {
	return len(b) == 1 && b[0] == '1'
}

func parseIntCapture(b []byte) (int, error) {
	return strconv.Atoi(string(b))
}

func parseInt8Capture(b []byte) (int8, error) {
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, err
	}
	return int8(n), nil
}

func parseNameCapture(b []byte) string { return string(b) }

