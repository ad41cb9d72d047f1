package client

import (
	"context"

	"github.com/openhlx/hlxgo/internal/exchange"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// ZonesClient issues every zone-addressed verb in catalog_zones.go.
type ZonesClient struct{ *clientContext }

// ZoneSnapshot is the parsed result of a full ZoneQuery: every frame
// ZonesController.writeFullSnapshot emits, decoded in the order it writes
// them. The mode-specific trailer (Tone/Bands/Preset/Crossover) is decoded
// into whichever field SoundMode selects; the others are left zero.
type ZoneSnapshot struct {
	ID              model.Identifier
	Name            string
	Balance         int8
	SourceID        model.Identifier
	VolumeLevel     int8
	Mute            bool
	VolumeFixed     bool
	SoundMode       model.SoundMode
	ToneBass        int8
	ToneTreble      int8
	Bands           []int8
	EqualizerPreset model.Identifier
	LowpassHz       uint16
	HighpassHz      uint16
}

// Query issues (QZ<id>) and collects the full snapshot through its
// ZoneQueryEnd terminator.
func (c *ZonesClient) Query(ctx context.Context, id model.Identifier) (ZoneSnapshot, error) {
	frames, err := c.collect(ctx, exchange.Request{
		Frame:      protocol.RenderZoneQuery(int(id)),
		Terminator: protocol.MustEntry("ZoneQueryEnd").Pattern,
		ReadOnly:   true,
	})
	if err != nil {
		return ZoneSnapshot{}, err
	}
	snap := ZoneSnapshot{ID: id}
	for _, f := range frames {
		switch f.Entry.Name {
		case "ZoneSetName":
			snap.Name = parseNameCapture(f.Captures[2])
		case "ZoneSetBalance":
			mag, _ := parseInt8Capture(f.Captures[3])
			if string(f.Captures[2]) == "L" {
				mag = -mag
			}
			snap.Balance = mag
		case "ZoneSetSource":
			n, _ := parseIntCapture(f.Captures[2])
			snap.SourceID = model.Identifier(n)
		case "ZoneSetVolume":
			snap.VolumeLevel, _ = parseInt8Capture(f.Captures[1])
		case "ZoneMute":
			snap.Mute = string(f.Captures[1]) == "M"
		case "ZoneSetVolumeFixed":
			snap.VolumeFixed = parseBoolCapture(f.Captures[2])
		case "ZoneSetSoundMode":
			n, _ := parseIntCapture(f.Captures[2])
			snap.SoundMode = model.SoundMode(n)
		case "ZoneSetTone":
			snap.ToneBass, _ = parseInt8Capture(f.Captures[2])
			snap.ToneTreble, _ = parseInt8Capture(f.Captures[3])
		case "ZoneSetEqualizerBand":
			level, _ := parseInt8Capture(f.Captures[3])
			snap.Bands = append(snap.Bands, level)
		case "ZoneSetEqualizerPreset":
			n, _ := parseIntCapture(f.Captures[2])
			snap.EqualizerPreset = model.Identifier(n)
		case "ZoneSetLowpassCrossover":
			n, _ := parseIntCapture(f.Captures[2])
			snap.LowpassHz = uint16(n)
		case "ZoneSetHighpassCrossover":
			n, _ := parseIntCapture(f.Captures[2])
			snap.HighpassHz = uint16(n)
		}
	}
	return snap, nil
}

func (c *ZonesClient) QueryMute(ctx context.Context, id model.Identifier) (bool, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:    protocol.RenderZoneQueryMute(int(id)),
		Expect:   protocol.MustEntry("ZoneMute").Pattern,
		ReadOnly: true,
	})
	if err != nil {
		return false, err
	}
	return string(caps[1]) == "M", nil
}

func (c *ZonesClient) QuerySource(ctx context.Context, id model.Identifier) (model.Identifier, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:    protocol.RenderZoneQuerySource(int(id)),
		Expect:   protocol.MustEntry("ZoneSetSource").Pattern,
		ReadOnly: true,
	})
	if err != nil {
		return 0, err
	}
	n, err := parseIntCapture(caps[2])
	return model.Identifier(n), err
}

func (c *ZonesClient) QueryVolume(ctx context.Context, id model.Identifier) (int8, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:    protocol.RenderZoneQueryVolume(int(id)),
		Expect:   protocol.MustEntry("ZoneSetVolume").Pattern,
		ReadOnly: true,
	})
	if err != nil {
		return 0, err
	}
	return parseInt8Capture(caps[1])
}

func (c *ZonesClient) SetName(ctx context.Context, id model.Identifier, name string) (string, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetName(int(id), name),
		Expect: protocol.MustEntry("ZoneSetName").Pattern,
	})
	if err != nil {
		return "", err
	}
	return parseNameCapture(caps[2]), nil
}

func (c *ZonesClient) SetSource(ctx context.Context, id, source model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetSource(int(id), int(source)),
		Expect: protocol.MustEntry("ZoneSetSource").Pattern,
	})
	return err
}

func (c *ZonesClient) SetSourceAll(ctx context.Context, source model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetSourceAll(int(source)),
		Expect: protocol.MustEntry("ZoneSetSourceAll").Pattern,
	})
	return err
}

func (c *ZonesClient) SetVolume(ctx context.Context, id model.Identifier, level int8) (int8, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetVolume(int(id), level),
		Expect: protocol.MustEntry("ZoneSetVolume").Pattern,
	})
	if err != nil {
		return 0, err
	}
	return parseInt8Capture(caps[1])
}

func (c *ZonesClient) SetVolumeAll(ctx context.Context, level int8) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetVolumeAll(level),
		Expect: protocol.MustEntry("ZoneSetVolumeAll").Pattern,
	})
	return err
}

// IncreaseVolume and DecreaseVolume respond by reflecting the request
// itself (the ZoneAdjustVolume shape, direction and zone only) rather than
// reporting the resulting level — callers needing the new level follow up
// with QueryVolume, mirroring how the group orchestrator's analogous verbs
// never report post-fan-out state either.
func (c *ZonesClient) IncreaseVolume(ctx context.Context, id model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneIncreaseVolume(int(id)),
		Expect: protocol.MustEntry("ZoneAdjustVolume").Pattern,
	})
	return err
}

func (c *ZonesClient) DecreaseVolume(ctx context.Context, id model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneDecreaseVolume(int(id)),
		Expect: protocol.MustEntry("ZoneAdjustVolume").Pattern,
	})
	return err
}

func (c *ZonesClient) Mute(ctx context.Context, id model.Identifier, mute bool) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneMute(int(id), mute),
		Expect: protocol.MustEntry("ZoneMute").Pattern,
	})
	return err
}

func (c *ZonesClient) ToggleMute(ctx context.Context, id model.Identifier) (bool, error) {
	caps, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneToggleMute(int(id)),
		Expect: protocol.MustEntry("ZoneMute").Pattern,
	})
	if err != nil {
		return false, err
	}
	return string(caps[1]) == "M", nil
}

func (c *ZonesClient) SetVolumeFixed(ctx context.Context, id model.Identifier, fixed bool) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetVolumeFixed(int(id), fixed),
		Expect: protocol.MustEntry("ZoneSetVolumeFixed").Pattern,
	})
	return err
}

func (c *ZonesClient) SetBalance(ctx context.Context, id model.Identifier, value int8) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetBalance(int(id), value),
		Expect: protocol.MustEntry("ZoneSetBalance").Pattern,
	})
	return err
}

// AdjustBalance nudges balance toward channel, which must be "L" or "R".
func (c *ZonesClient) AdjustBalance(ctx context.Context, id model.Identifier, channel string) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneAdjustBalance(int(id), channel),
		Expect: protocol.MustEntry("ZoneSetBalance").Pattern,
	})
	return err
}

func (c *ZonesClient) SetSoundMode(ctx context.Context, id model.Identifier, mode model.SoundMode) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetSoundMode(int(id), int(mode)),
		Expect: protocol.MustEntry("ZoneSetSoundMode").Pattern,
	})
	return err
}

func (c *ZonesClient) SetTone(ctx context.Context, id model.Identifier, bass, treble int8) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetTone(int(id), bass, treble),
		Expect: protocol.MustEntry("ZoneSetTone").Pattern,
	})
	return err
}

// SetBass, SetTreble, and their increase/decrease variants each respond
// with their own single-attribute frame (ZoneSetBass / ZoneSetTreble), not
// the combined ZoneSetTone the Set-both command and a sound-mode-switch
// prelude use — mirrored from ZonesController.handleSetBass/handleSetTreble.
func (c *ZonesClient) SetBass(ctx context.Context, id model.Identifier, level int8) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetBass(int(id), level),
		Expect: protocol.MustEntry("ZoneSetBass").Pattern,
	})
	return err
}

func (c *ZonesClient) SetTreble(ctx context.Context, id model.Identifier, level int8) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetTreble(int(id), level),
		Expect: protocol.MustEntry("ZoneSetTreble").Pattern,
	})
	return err
}

func (c *ZonesClient) IncreaseBass(ctx context.Context, id model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneIncreaseBass(int(id)),
		Expect: protocol.MustEntry("ZoneSetBass").Pattern,
	})
	return err
}

func (c *ZonesClient) DecreaseBass(ctx context.Context, id model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneDecreaseBass(int(id)),
		Expect: protocol.MustEntry("ZoneSetBass").Pattern,
	})
	return err
}

func (c *ZonesClient) IncreaseTreble(ctx context.Context, id model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneIncreaseTreble(int(id)),
		Expect: protocol.MustEntry("ZoneSetTreble").Pattern,
	})
	return err
}

func (c *ZonesClient) DecreaseTreble(ctx context.Context, id model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneDecreaseTreble(int(id)),
		Expect: protocol.MustEntry("ZoneSetTreble").Pattern,
	})
	return err
}

func (c *ZonesClient) SetEqualizerBand(ctx context.Context, id model.Identifier, band int, level int8) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetEqualizerBand(int(id), band, level),
		Expect: protocol.MustEntry("ZoneSetEqualizerBand").Pattern,
	})
	return err
}

func (c *ZonesClient) IncreaseEqualizerBand(ctx context.Context, id model.Identifier, band int) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneIncreaseEqualizerBand(int(id), band),
		Expect: protocol.MustEntry("ZoneSetEqualizerBand").Pattern,
	})
	return err
}

func (c *ZonesClient) DecreaseEqualizerBand(ctx context.Context, id model.Identifier, band int) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneDecreaseEqualizerBand(int(id), band),
		Expect: protocol.MustEntry("ZoneSetEqualizerBand").Pattern,
	})
	return err
}

func (c *ZonesClient) SetEqualizerPreset(ctx context.Context, id, preset model.Identifier) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetEqualizerPreset(int(id), int(preset)),
		Expect: protocol.MustEntry("ZoneSetEqualizerPreset").Pattern,
	})
	return err
}

func (c *ZonesClient) SetLowpassCrossover(ctx context.Context, id model.Identifier, hz uint16) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetLowpassCrossover(int(id), hz),
		Expect: protocol.MustEntry("ZoneSetLowpassCrossover").Pattern,
	})
	return err
}

func (c *ZonesClient) SetHighpassCrossover(ctx context.Context, id model.Identifier, hz uint16) error {
	_, err := c.submit(ctx, exchange.Request{
		Frame:  protocol.RenderZoneSetHighpassCrossover(int(id), hz),
		Expect: protocol.MustEntry("ZoneSetHighpassCrossover").Pattern,
	})
	return err
}
