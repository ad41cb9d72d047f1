package client

import (
	"context"

	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// FrontPanelClient issues the two-attribute verb set of
// catalog_frontpanel.go.
type FrontPanelClient struct{ *clientContext }

// FrontPanelSnapshot is the front panel's brightness and lock state.
type FrontPanelSnapshot struct {
	Brightness uint8
	Locked     bool
}

// Query issues (QF) and collects the fixed two-frame response through its
// FrontPanelQueryEnd terminator. The terminator can't be FrontPanelSetLocked
// itself: exchange.Manager completes a Collect request on the frame that
// matches Terminator without adding it to the returned frames, so a
// terminator built from the last attribute's own pattern would silently
// drop that attribute.
func (c *FrontPanelClient) Query(ctx context.Context) (FrontPanelSnapshot, error) {
	frames, err := c.collect(ctx, exchange.Request{
		Frame:      protocol.RenderFrontPanelQuery(),
		Terminator: protocol.MustEntry("FrontPanelQueryEnd").Pattern,
		ReadOnly:   true,
	})
	if err != nil {
		return FrontPanelSnapshot{}, err
	}
	var snap FrontPanelSnapshot
	for _, f := range frames {
		switch f.Entry.Name {
		case "FrontPanelSetBrightness":
			n, _ := parseIntCapture(f.Captures[1])
			snap.Brightness = uint8(n)
		case "FrontPanelSetLocked":
			snap.Locked = parseBoolCapture(f.Captures[1])
		}
	}
	return snap, nil
}

func (c *FrontPanelClient) SetBrightness(ctx context.Context, level uint8) (uint8, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderFrontPanelSetBrightness(level),
		Expect: protocol.MustEntry("FrontPanelSetBrightness").Pattern,
	})
	if err != nil {
		return 0, err
	}
	n, err := parseIntCapture(caps[1])
	return uint8(n), err
}

func (c *FrontPanelClient) SetLocked(ctx context.Context, locked bool) (bool, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderFrontPanelSetLocked(locked),
		Expect: protocol.MustEntry("FrontPanelSetLocked").Pattern,
	})
	if err != nil {
		return false, err
	}
	return parseBoolCapture(caps[1]), nil
}
