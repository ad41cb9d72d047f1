package server

import (
	"strconv"

	"github.com/openhlx/hlxgo/internal/dispatch"
	"github.com/openhlx/hlxgo/internal/events"
	"github.com/openhlx/hlxgo/internal/model"
	"github.com/openhlx/hlxgo/internal/protocol"
)

// ZonesController owns the zone table and its notable algorithms: the
// sound-mode conditional prelude, the volume-unmute conditional prelude,
// balance adjustment, and the all-zones aggregate operations (spec §4.5.4).
//
// Its internal mutate* methods perform the model change, mark the
// configuration dirty on an effective change, and emit an events.Sink
// notification, but never write a wire frame themselves — that is left to
// the wire-facing handle* methods below. This split is what lets the group
// orchestrator (orchestrator.go) reuse the exact same mutation path while
// ensuring group-sourced zone mutations never produce their own per-zone
// wire frames.
type ZonesController struct {
	*controllerContext
}

func NewZonesController(ctx *controllerContext) *ZonesController {
	return &ZonesController{controllerContext: ctx}
}

func (c *ZonesController) Register(d *dispatch.Dispatcher) {
	d.Register(protocol.MustEntry("ZoneQuery").Pattern, c.handleQuery)
	d.Register(protocol.MustEntry("ZoneQueryMute").Pattern, c.handleQueryMute)
	d.Register(protocol.MustEntry("ZoneQuerySource").Pattern, c.handleQuerySource)
	d.Register(protocol.MustEntry("ZoneQueryVolume").Pattern, c.handleQueryVolume)
	d.Register(protocol.MustEntry("ZoneSetName").Pattern, c.handleSetName)
	d.Register(protocol.MustEntry("ZoneSetSource").Pattern, c.handleSetSource)
	d.Register(protocol.MustEntry("ZoneSetSourceAll").Pattern, c.handleSetSourceAll)
	d.Register(protocol.MustEntry("ZoneSetVolume").Pattern, c.handleSetVolume)
	d.Register(protocol.MustEntry("ZoneSetVolumeAll").Pattern, c.handleSetVolumeAll)
	d.Register(protocol.MustEntry("ZoneAdjustVolume").Pattern, c.handleAdjustVolume)
	d.Register(protocol.MustEntry("ZoneMute").Pattern, c.handleMute)
	d.Register(protocol.MustEntry("ZoneToggleMute").Pattern, c.handleToggleMute)
	d.Register(protocol.MustEntry("ZoneSetVolumeFixed").Pattern, c.handleSetVolumeFixed)
	d.Register(protocol.MustEntry("ZoneSetBalance").Pattern, c.handleSetBalance)
	d.Register(protocol.MustEntry("ZoneAdjustBalance").Pattern, c.handleAdjustBalance)
	d.Register(protocol.MustEntry("ZoneSetSoundMode").Pattern, c.handleSetSoundMode)
	d.Register(protocol.MustEntry("ZoneSetTone").Pattern, c.handleSetTone)
	d.Register(protocol.MustEntry("ZoneSetBass").Pattern, c.handleSetBass)
	d.Register(protocol.MustEntry("ZoneSetTreble").Pattern, c.handleSetTreble)
	d.Register(protocol.MustEntry("ZoneAdjustBass").Pattern, c.handleAdjustBass)
	d.Register(protocol.MustEntry("ZoneAdjustTreble").Pattern, c.handleAdjustTreble)
	d.Register(protocol.MustEntry("ZoneSetEqualizerBand").Pattern, c.handleSetEqualizerBand)
	d.Register(protocol.MustEntry("ZoneAdjustEqualizerBand").Pattern, c.handleAdjustEqualizerBand)
	d.Register(protocol.MustEntry("ZoneSetEqualizerPreset").Pattern, c.handleSetEqualizerPreset)
	d.Register(protocol.MustEntry("ZoneSetLowpassCrossover").Pattern, c.handleSetLowpassCrossover)
	d.Register(protocol.MustEntry("ZoneSetHighpassCrossover").Pattern, c.handleSetHighpassCrossover)
}

// --- internal mutation API, shared with the group orchestrator ---

func (c *ZonesController) mutateMute(id model.Identifier, mute bool) (model.Status, *model.Error) {
	z, err := c.state.Zones.Get(id)
	if err != nil {
		return 0, err
	}
	status, err := z.SetMute(mute)
	if err != nil {
		return 0, err
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneMute, id, mute)
	}
	return status, nil
}

func (c *ZonesController) mutateToggleMute(id model.Identifier) (model.Status, *model.Error) {
	z, err := c.state.Zones.Get(id)
	if err != nil {
		return 0, err
	}
	status, err := z.ToggleMute()
	if err != nil {
		return 0, err
	}
	c.dirty.MarkDirty()
	c.emit(events.KindZoneMute, id, z.Volume().Mute())
	return status, nil
}

func (c *ZonesController) mutateSetVolume(id model.Identifier, level int8) (model.Status, *model.Error) {
	z, err := c.state.Zones.Get(id)
	if err != nil {
		return 0, err
	}
	status, err := z.SetVolume(level)
	if err != nil {
		return 0, err
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneVolume, id, level)
	}
	return status, nil
}

func (c *ZonesController) mutateAdjustVolume(id model.Identifier, increase bool) (model.Status, *model.Error) {
	z, err := c.state.Zones.Get(id)
	if err != nil {
		return 0, err
	}
	var status model.Status
	if increase {
		status, err = z.IncreaseVolume()
	} else {
		status, err = z.DecreaseVolume()
	}
	if err != nil {
		return 0, err
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneVolume, id, z.Volume().Level())
	}
	return status, nil
}

func (c *ZonesController) mutateSetSource(id, source model.Identifier) (model.Status, *model.Error) {
	z, err := c.state.Zones.Get(id)
	if err != nil {
		return 0, err
	}
	status, err := z.SetSourceID(source, model.Identifier(model.MaxSources))
	if err != nil {
		return 0, err
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneSource, id, source)
	}
	return status, nil
}

// unmuteConditional is the volume-unmute prelude of spec §4.5.4: SetVolume,
// IncreaseVolume, DecreaseVolume, and SetVolumeAll unmute a muted zone
// before applying the volume change, emitting a mute wire frame first only
// if the zone was actually muted.
func (c *ZonesController) unmuteConditional(conn dispatch.Connection, id model.Identifier) *model.Error {
	status, err := c.mutateMute(id, false)
	if err != nil {
		return err
	}
	if status == model.StatusSuccess {
		_ = conn.Write(protocol.RenderZoneMute(int(id), false))
	}
	return nil
}

// soundModeConditional is the sound-mode prelude of spec §4.5.4: a
// mode-specific mutation first switches the zone into the required mode,
// emitting a sound-mode wire frame before the primary response only if the
// mode actually had to change.
func (c *ZonesController) soundModeConditional(conn dispatch.Connection, z *model.Zone, id model.Identifier, mode model.SoundMode) *model.Error {
	status, err := z.SetSoundMode(mode)
	if err != nil {
		return err
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneSoundMode, id, mode)
		_ = conn.Write(protocol.RenderZoneSetSoundMode(int(id), int(mode)))
	}
	return nil
}

// --- queries ---

func (c *ZonesController) handleQuery(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	z, err := c.state.Zones.Get(id)
	if err != nil {
		sendError(conn)
		return
	}
	c.writeFullSnapshot(conn, id, z)
	_ = conn.Write(protocol.RenderZoneQueryEnd(int(id)))
}

func (c *ZonesController) writeFullSnapshot(conn dispatch.Connection, id model.Identifier, z *model.Zone) {
	_ = conn.Write(protocol.RenderZoneSetName(int(id), z.Name()))
	_ = conn.Write(protocol.RenderZoneSetBalance(int(id), z.Balance().Value()))
	_ = conn.Write(protocol.RenderZoneSetSource(int(id), int(z.SourceID())))
	_ = conn.Write(protocol.RenderZoneSetVolume(int(id), z.Volume().Level()))
	_ = conn.Write(protocol.RenderZoneMute(int(id), z.Volume().Mute()))
	_ = conn.Write(protocol.RenderZoneSetVolumeFixed(int(id), z.Volume().Fixed()))
	_ = conn.Write(protocol.RenderZoneSetSoundMode(int(id), int(z.SoundMode())))
	switch z.SoundMode() {
	case model.SoundModeTone:
		_ = conn.Write(protocol.RenderZoneSetTone(int(id), z.Tone().Bass(), z.Tone().Treble()))
	case model.SoundModeZoneEqualizer:
		bands := z.Bands()
		for i, b := range bands {
			_ = conn.Write(protocol.RenderZoneSetEqualizerBand(int(id), i+1, b.Level()))
		}
	case model.SoundModePresetEqualizer:
		_ = conn.Write(protocol.RenderZoneSetEqualizerPreset(int(id), int(z.EqualizerPresetID())))
	case model.SoundModeLowpass:
		_ = conn.Write(protocol.RenderZoneSetLowpassCrossover(int(id), z.Lowpass().Frequency()))
	case model.SoundModeHighpass:
		_ = conn.Write(protocol.RenderZoneSetHighpassCrossover(int(id), z.Highpass().Frequency()))
	}
}

func (c *ZonesController) handleQueryMute(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	z, err := c.state.Zones.Get(id)
	if err != nil {
		sendError(conn)
		return
	}
	_ = conn.Write(protocol.RenderZoneMute(int(id), z.Volume().Mute()))
}

func (c *ZonesController) handleQuerySource(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	z, err := c.state.Zones.Get(id)
	if err != nil {
		sendError(conn)
		return
	}
	_ = conn.Write(protocol.RenderZoneSetSource(int(id), int(z.SourceID())))
}

func (c *ZonesController) handleQueryVolume(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	z, err := c.state.Zones.Get(id)
	if err != nil {
		sendError(conn)
		return
	}
	_ = conn.Write(protocol.RenderZoneSetVolume(int(id), z.Volume().Level()))
}

// --- name, source ---

func (c *ZonesController) handleSetName(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	status, err := z.SetName(string(m[2]))
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneName, id, z.Name())
	}
	_ = conn.Write(protocol.RenderZoneSetName(int(id), z.Name()))
}

func (c *ZonesController) handleSetSource(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	source, ok := parseIdentifier(m[2], model.MaxSources)
	if !ok {
		sendError(conn)
		return
	}
	if _, err := c.mutateSetSource(id, source); err != nil {
		sendError(conn)
		return
	}
	_ = conn.Write(protocol.RenderZoneSetSource(int(id), int(source)))
}

func (c *ZonesController) handleSetSourceAll(conn dispatch.Connection, m [][]byte) {
	source, ok := parseIdentifier(m[1], model.MaxSources)
	if !ok {
		sendError(conn)
		return
	}
	for id := model.Identifier(1); int(id) <= c.state.Zones.Len(); id++ {
		if _, err := c.mutateSetSource(id, source); err != nil {
			sendError(conn)
			return
		}
	}
	_ = conn.Write(protocol.RenderZoneSetSourceAll(int(source)))
}

// --- volume ---

func (c *ZonesController) handleSetVolume(conn dispatch.Connection, m [][]byte) {
	level, ok := parseInt8(m[1], int(model.VolumeLevelMin), int(model.VolumeLevelMax))
	if !ok {
		sendError(conn)
		return
	}
	id, ok := parseIdentifier(m[2], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	if err := c.unmuteConditional(conn, id); err != nil {
		sendError(conn)
		return
	}
	if _, err := c.mutateSetVolume(id, level); err != nil {
		sendError(conn)
		return
	}
	_ = conn.Write(protocol.RenderZoneSetVolume(int(id), level))
}

func (c *ZonesController) handleSetVolumeAll(conn dispatch.Connection, m [][]byte) {
	level, ok := parseInt8(m[1], int(model.VolumeLevelMin), int(model.VolumeLevelMax))
	if !ok {
		sendError(conn)
		return
	}
	for id := model.Identifier(1); int(id) <= c.state.Zones.Len(); id++ {
		if err := c.unmuteConditional(conn, id); err != nil {
			sendError(conn)
			return
		}
		if _, err := c.mutateSetVolume(id, level); err != nil {
			sendError(conn)
			return
		}
	}
	_ = conn.Write(protocol.RenderZoneSetVolumeAll(level))
}

func (c *ZonesController) handleAdjustVolume(conn dispatch.Connection, m [][]byte) {
	increase := string(m[1]) == "U"
	id, ok := parseIdentifier(m[2], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	if err := c.unmuteConditional(conn, id); err != nil {
		sendError(conn)
		return
	}
	if _, err := c.mutateAdjustVolume(id, increase); err != nil {
		sendError(conn)
		return
	}
	if increase {
		_ = conn.Write(protocol.RenderZoneIncreaseVolume(int(id)))
	} else {
		_ = conn.Write(protocol.RenderZoneDecreaseVolume(int(id)))
	}
}

func (c *ZonesController) handleMute(conn dispatch.Connection, m [][]byte) {
	mute := string(m[1]) == "M"
	id, ok := parseIdentifier(m[2], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	if _, err := c.mutateMute(id, mute); err != nil {
		sendError(conn)
		return
	}
	_ = conn.Write(protocol.RenderZoneMute(int(id), mute))
}

func (c *ZonesController) handleToggleMute(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	if _, err := c.mutateToggleMute(id); err != nil {
		sendError(conn)
		return
	}
	z, _ := c.state.Zones.Get(id)
	_ = conn.Write(protocol.RenderZoneMute(int(id), z.Volume().Mute()))
}

func (c *ZonesController) handleSetVolumeFixed(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	fixed, ok := parseDigit(m[2])
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	status, err := z.SetVolumeFixed(fixed)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneVolume, id, z.Volume())
	}
	_ = conn.Write(protocol.RenderZoneSetVolumeFixed(int(id), fixed))
}

// --- balance ---

func (c *ZonesController) handleSetBalance(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	channel := model.ChannelRight
	if string(m[2]) == "L" {
		channel = model.ChannelLeft
	}
	magnitude, ok := parseInt8(m[3], 0, int(model.BalanceMax))
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	status, err := z.SetBalanceTagged(channel, magnitude)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneBalance, id, z.Balance().Value())
	}
	_ = conn.Write(protocol.RenderZoneSetBalance(int(id), z.Balance().Value()))
}

func (c *ZonesController) handleAdjustBalance(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	channel := model.ChannelRight
	if string(m[2]) == "L" {
		channel = model.ChannelLeft
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	status, err := z.AdjustBalance(channel)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneBalance, id, z.Balance().Value())
	}
	_ = conn.Write(protocol.RenderZoneSetBalance(int(id), z.Balance().Value()))
}

// --- sound mode, tone, crossovers: explicit unconditional setters ---

func (c *ZonesController) handleSetSoundMode(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	modeN, ok := parseInt8(m[2], int(model.SoundModeDisabled), int(model.SoundModeHighpass))
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	mode := model.SoundMode(modeN)
	status, err := z.SetSoundMode(mode)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneSoundMode, id, mode)
	}
	_ = conn.Write(protocol.RenderZoneSetSoundMode(int(id), int(mode)))
}

func (c *ZonesController) handleSetTone(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	bass, ok := parseInt8(m[2], int(model.ToneLevelMin), int(model.ToneLevelMax))
	if !ok {
		sendError(conn)
		return
	}
	treble, ok := parseInt8(m[3], int(model.ToneLevelMin), int(model.ToneLevelMax))
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if err := c.soundModeConditional(conn, z, id, model.SoundModeTone); err != nil {
		sendError(conn)
		return
	}
	status, err := z.SetTone(bass, treble)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneTone, id, z.Tone())
	}
	_ = conn.Write(protocol.RenderZoneSetTone(int(id), z.Tone().Bass(), z.Tone().Treble()))
}

func (c *ZonesController) handleSetBass(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	level, ok := parseInt8(m[2], int(model.ToneLevelMin), int(model.ToneLevelMax))
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if err := c.soundModeConditional(conn, z, id, model.SoundModeTone); err != nil {
		sendError(conn)
		return
	}
	status, err := z.SetBass(level)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneTone, id, z.Tone())
	}
	_ = conn.Write(protocol.RenderZoneSetBass(int(id), z.Tone().Bass()))
}

func (c *ZonesController) handleSetTreble(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	level, ok := parseInt8(m[2], int(model.ToneLevelMin), int(model.ToneLevelMax))
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if err := c.soundModeConditional(conn, z, id, model.SoundModeTone); err != nil {
		sendError(conn)
		return
	}
	status, err := z.SetTreble(level)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneTone, id, z.Tone())
	}
	_ = conn.Write(protocol.RenderZoneSetTreble(int(id), z.Tone().Treble()))
}

func (c *ZonesController) handleAdjustBass(conn dispatch.Connection, m [][]byte) {
	increase := string(m[1]) == "U"
	id, ok := parseIdentifier(m[2], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if err := c.soundModeConditional(conn, z, id, model.SoundModeTone); err != nil {
		sendError(conn)
		return
	}
	var status model.Status
	var err *model.Error
	if increase {
		status, err = z.IncreaseBass()
	} else {
		status, err = z.DecreaseBass()
	}
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneTone, id, z.Tone())
	}
	_ = conn.Write(protocol.RenderZoneSetBass(int(id), z.Tone().Bass()))
}

func (c *ZonesController) handleAdjustTreble(conn dispatch.Connection, m [][]byte) {
	increase := string(m[1]) == "U"
	id, ok := parseIdentifier(m[2], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if err := c.soundModeConditional(conn, z, id, model.SoundModeTone); err != nil {
		sendError(conn)
		return
	}
	var status model.Status
	var err *model.Error
	if increase {
		status, err = z.IncreaseTreble()
	} else {
		status, err = z.DecreaseTreble()
	}
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneTone, id, z.Tone())
	}
	_ = conn.Write(protocol.RenderZoneSetTreble(int(id), z.Tone().Treble()))
}

func (c *ZonesController) handleSetEqualizerBand(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	bandID, ok := parseIdentifier(m[2], model.EqualizerBandsPerSet)
	if !ok {
		sendError(conn)
		return
	}
	level, ok := parseInt8(m[3], int(model.EqualizerBandLevelMin), int(model.EqualizerBandLevelMax))
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if err := c.soundModeConditional(conn, z, id, model.SoundModeZoneEqualizer); err != nil {
		sendError(conn)
		return
	}
	band, berr := z.Band(bandID)
	if berr != nil {
		sendError(conn)
		return
	}
	status, err := band.Set(level)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneEqualizerBand, id, band.Level())
	}
	_ = conn.Write(protocol.RenderZoneSetEqualizerBand(int(id), int(bandID), band.Level()))
}

func (c *ZonesController) handleAdjustEqualizerBand(conn dispatch.Connection, m [][]byte) {
	increase := string(m[1]) == "U"
	id, ok := parseIdentifier(m[2], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	bandID, ok := parseIdentifier(m[3], model.EqualizerBandsPerSet)
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if err := c.soundModeConditional(conn, z, id, model.SoundModeZoneEqualizer); err != nil {
		sendError(conn)
		return
	}
	band, berr := z.Band(bandID)
	if berr != nil {
		sendError(conn)
		return
	}
	var status model.Status
	var err *model.Error
	if increase {
		status, err = band.Increase()
	} else {
		status, err = band.Decrease()
	}
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneEqualizerBand, id, band.Level())
	}
	_ = conn.Write(protocol.RenderZoneSetEqualizerBand(int(id), int(bandID), band.Level()))
}

func (c *ZonesController) handleSetEqualizerPreset(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	preset, ok := parseIdentifier(m[2], model.MaxEqualizerPresets)
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if err := c.soundModeConditional(conn, z, id, model.SoundModePresetEqualizer); err != nil {
		sendError(conn)
		return
	}
	status, err := z.SetEqualizerPreset(preset, model.Identifier(model.MaxEqualizerPresets))
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneEqualizerBand, id, preset)
	}
	_ = conn.Write(protocol.RenderZoneSetEqualizerPreset(int(id), int(preset)))
}

func (c *ZonesController) handleSetLowpassCrossover(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	hz, ok := parseUint16(m[2], int(model.CrossoverFrequencyMin), int(model.CrossoverFrequencyMax))
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if err := c.soundModeConditional(conn, z, id, model.SoundModeLowpass); err != nil {
		sendError(conn)
		return
	}
	status, err := z.SetLowpassCrossover(hz)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneCrossover, id, hz)
	}
	_ = conn.Write(protocol.RenderZoneSetLowpassCrossover(int(id), z.Lowpass().Frequency()))
}

func (c *ZonesController) handleSetHighpassCrossover(conn dispatch.Connection, m [][]byte) {
	id, ok := parseIdentifier(m[1], model.MaxZones)
	if !ok {
		sendError(conn)
		return
	}
	hz, ok := parseUint16(m[2], int(model.CrossoverFrequencyMin), int(model.CrossoverFrequencyMax))
	if !ok {
		sendError(conn)
		return
	}
	z, gerr := c.state.Zones.Get(id)
	if gerr != nil {
		sendError(conn)
		return
	}
	if err := c.soundModeConditional(conn, z, id, model.SoundModeHighpass); err != nil {
		sendError(conn)
		return
	}
	status, err := z.SetHighpassCrossover(hz)
	if err != nil {
		sendError(conn)
		return
	}
	if status == model.StatusSuccess {
		c.dirty.MarkDirty()
		c.emit(events.KindZoneCrossover, id, hz)
	}
	_ = conn.Write(protocol.RenderZoneSetHighpassCrossover(int(id), z.Highpass().Frequency()))
}

// --- Configuration fan-out ---

// QueryCurrent replays every zone's full snapshot, in ascending identifier
// order, as part of Configuration's full-snapshot query.
func (c *ZonesController) QueryCurrent(conn dispatch.Connection) {
	c.state.Zones.Each(func(id model.Identifier, z *model.Zone) {
		c.writeFullSnapshot(conn, id, z)
	})
}

// ResetToDefaults replaces every zone with its default-constructed value.
func (c *ZonesController) ResetToDefaults() {
	c.state.Zones.Each(func(id model.Identifier, z *model.Zone) {
		*z = model.NewZone(id, zoneDefaultName(id))
	})
}

func zoneDefaultName(id model.Identifier) string {
	return "Zone Name " + strconv.Itoa(int(id))
}
