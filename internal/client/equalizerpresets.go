package client

import (
	"context"

	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// EqualizerPresetsClient issues the preset-addressed verbs of
// catalog_equalizerpresets.go.
type EqualizerPresetsClient struct{ *clientContext }

// EqualizerPresetSnapshot is a preset's name and its fixed ten-band curve.
type EqualizerPresetSnapshot struct {
	ID    model.Identifier
	Name  string
	Bands [model.EqualizerBandsPerSet]int8
}

// Query issues (QE<id>) and collects the name followed by all
// EqualizerBandsPerSet band frames through its EqualizerPresetQueryEnd
// terminator (see FrontPanelClient.Query for why the terminator can't be
// the last band's own pattern).
func (c *EqualizerPresetsClient) Query(ctx context.Context, id model.Identifier) (EqualizerPresetSnapshot, error) {
	frames, err := c.collect(ctx, exchange.Request{
		Frame:      protocol.RenderEqualizerPresetQuery(int(id)),
		Terminator: protocol.MustEntry("EqualizerPresetQueryEnd").Pattern,
		ReadOnly:   true,
	})
	if err != nil {
		return EqualizerPresetSnapshot{}, err
	}
	snap := EqualizerPresetSnapshot{ID: id}
	for _, f := range frames {
		switch f.Entry.Name {
		case "EqualizerPresetSetName":
			snap.Name = parseNameCapture(f.Captures[2])
		case "EqualizerPresetSetBand":
			band, _ := parseIntCapture(f.Captures[2])
			level, _ := parseInt8Capture(f.Captures[3])
			if band >= 1 && band <= model.EqualizerBandsPerSet {
				snap.Bands[band-1] = level
			}
		}
	}
	return snap, nil
}

func (c *EqualizerPresetsClient) SetName(ctx context.Context, id model.Identifier, name string) (string, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderEqualizerPresetSetName(int(id), name),
		Expect: protocol.MustEntry("EqualizerPresetSetName").Pattern,
	})
	if err != nil {
		return "", err
	}
	return parseNameCapture(caps[2]), nil
}

func (c *EqualizerPresetsClient) SetBand(ctx context.Context, id model.Identifier, band int, level int8) (int8, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderEqualizerPresetSetBand(int(id), band, int(level)),
		Expect: protocol.MustEntry("EqualizerPresetSetBand").Pattern,
	})
	if err != nil {
		return 0, err
	}
	return parseInt8Capture(caps[3])
}

func (c *EqualizerPresetsClient) IncreaseBand(ctx context.Context, id model.Identifier, band int) (int8, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderEqualizerPresetIncreaseBand(int(id), band),
		Expect: protocol.MustEntry("EqualizerPresetSetBand").Pattern,
	})
	if err != nil {
		return 0, err
	}
	return parseInt8Capture(caps[3])
}

func (c *EqualizerPresetsClient) DecreaseBand(ctx context.Context, id model.Identifier, band int) (int8, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderEqualizerPresetDecreaseBand(int(id), band),
		Expect: protocol.MustEntry("EqualizerPresetSetBand").Pattern,
	})
	if err != nil {
		return 0, err
	}
	return parseInt8Capture(caps[3])
}
