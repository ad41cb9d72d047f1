package client

import (
	"context"

	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// ConfigurationClient issues the backup-lifecycle verbs of
// catalog_configuration.go.
type ConfigurationClient struct{ *clientContext }

// Load issues (LX), replaying the backup document over the running state.
func (c *ConfigurationClient) Load(ctx context.Context) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderLoadFromBackup(),
		Expect: protocol.MustEntry("LoadFromBackup").Pattern,
	})
	return err
}

// QueryCurrent issues (QX) and collects every frame of the full-device
// snapshot through its QueryCurrentEnd terminator, in the order
// ConfigurationController's subsystem fan-out writes them (FrontPanel,
// Infrared, Network, Sources, Favorites, EqualizerPresets, Zones, Groups).
// It returns the raw classified frames rather than a merged struct: unlike
// a single zone or group, the full snapshot interleaves eight independent
// per-entity shapes with no wrapping boundary beyond the identifiers each
// frame already carries in its own captures, so reassembly is left to the
// caller — typically by replaying the same per-attribute parsing used in
// ZonesClient.Query, GroupsClient.Query, and friends against the matching
// Frame.Entry.Name values in this slice.
func (c *ConfigurationClient) QueryCurrent(ctx context.Context) ([]exchange.Frame, error) {
	return c.collect(ctx, exchange.Request{
		Frame:      protocol.RenderQueryCurrent(),
		Terminator: protocol.MustEntry("QueryCurrentEnd").Pattern,
		ReadOnly:   true,
	})
}

// ResetToDefaults issues (RX), restoring every subsystem to its default
// state.
func (c *ConfigurationClient) ResetToDefaults(ctx context.Context) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderResetToDefaults(),
		Expect: protocol.MustEntry("ResetToDefaults").Pattern,
	})
	return err
}

// Save issues (SX) and waits for the two-phase SaveStart/SaveEnd sequence
// to close, per spec §4.5.7. Both frames are Notification-flagged
// (catalog_configuration.go), so an ordinary Expect match on SaveEnd alone
// would work too, but Collect makes the two-phase shape explicit to
// callers reading this code instead of the catalog comment.
func (c *ConfigurationClient) Save(ctx context.Context) error {
	_, err := c.collect(ctx, exchange.Request{
		Frame:      protocol.RenderSaveToBackup(),
		Terminator: protocol.MustEntry("SaveEnd").Pattern,
	})
	return err
}
