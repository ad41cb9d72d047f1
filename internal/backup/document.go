// Package backup implements the persisted configuration document: its JSON
// shape (spec §6) and the Store delegate that loads and saves it.
package backup

import (
	"fmt"
	"net"
	"strconv"

	"github.com/openhlx/hlxgo/internal/model"
)

// Document is the complete backup document tree, spec §6: a nested mapping
// keyed by stringified 1-based identifier under each container.
type Document struct {
	Sources    map[string]SourceDocument          `json:"Sources"`
	Zones      map[string]ZoneDocument            `json:"Zones"`
	Groups     map[string]GroupDocument           `json:"Groups"`
	Favorites  map[string]FavoriteDocument        `json:"Favorites"`
	Presets    map[string]EqualizerPresetDocument `json:"Equalizer Presets"`
	FrontPanel FrontPanelDocument                 `json:"Front Panel"`
	Infrared   InfraredDocument                   `json:"Infrared"`
	Network    NetworkDocument                    `json:"Network"`
}

// SourceDocument and FavoriteDocument share the minimal {Name} shape.
type SourceDocument struct {
	Name string `json:"Name"`
}

type FavoriteDocument struct {
	Name string `json:"Name"`
}

// EqualizerPresetDocument carries a name plus its ten band levels.
type EqualizerPresetDocument struct {
	Name            string                                  `json:"Name"`
	EqualizerLevels [model.EqualizerBandsPerSet]int8 `json:"Equalizer Levels"`
}

// GroupDocument carries a name plus its zone membership set.
type GroupDocument struct {
	Name  string `json:"Name"`
	Zones []int  `json:"Zones"`
}

// SoundModeDocument is the zone sub-object carrying the active mode plus
// whichever mode-specific fields apply to it. Inactive fields are zero
// valued and always present: the wire protocol has no concept of "absent"
// and round-tripping every field keeps Decode total.
type SoundModeDocument struct {
	Mode                       int                               `json:"Mode"`
	EqualizerLevels            [model.EqualizerBandsPerSet]int8 `json:"Equalizer Levels"`
	EqualizerPreset            int                               `json:"Equalizer Preset"`
	Bass                       int8                              `json:"Bass"`
	Treble                     int8                              `json:"Treble"`
	LowpassCrossoverFrequency  uint16                            `json:"Lowpass Crossover Frequency"`
	HighpassCrossoverFrequency uint16                            `json:"Highpass Crossover Frequency"`
}

// VolumeDocument is the zone sub-object carrying volume state.
type VolumeDocument struct {
	Level  int8 `json:"Level"`
	Locked bool `json:"Locked"`
	Muted  bool `json:"Muted"`
}

// ZoneDocument is one zone's persisted state.
type ZoneDocument struct {
	Name      string            `json:"Name"`
	Balance   int8              `json:"Balance"`
	Source    int               `json:"Source"`
	SoundMode SoundModeDocument `json:"Sound Mode"`
	Volume    VolumeDocument    `json:"Volume"`
}

// FrontPanelDocument is the device-wide front panel singleton.
type FrontPanelDocument struct {
	Brightness uint8 `json:"Brightness"`
	Locked     bool  `json:"Locked"`
}

// InfraredDocument is the device-wide infrared singleton.
type InfraredDocument struct {
	Disabled bool `json:"Disabled"`
}

// NetworkDocument is the device-wide network singleton.
type NetworkDocument struct {
	DHCPv4Enabled   bool   `json:"DHCPv4 Enabled"`
	EthernetEUI48   string `json:"Ethernet EUI-48"`
	HostIP          string `json:"Host IP"`
	DefaultRouterIP string `json:"Default Router IP"`
	Netmask         string `json:"Netmask"`
	SDDPEnabled     bool   `json:"SDDP Enabled"`
}

// Encode converts the live model into a Document, ready for JSON encoding.
func Encode(state *model.State) *Document {
	doc := &Document{
		Sources:   make(map[string]SourceDocument, state.Sources.Len()),
		Zones:     make(map[string]ZoneDocument, state.Zones.Len()),
		Groups:    make(map[string]GroupDocument, state.Groups.Len()),
		Favorites: make(map[string]FavoriteDocument, state.Favorites.Len()),
		Presets:   make(map[string]EqualizerPresetDocument, state.Presets.Len()),
	}

	state.Sources.Each(func(id model.Identifier, s *model.Source) {
		doc.Sources[key(id)] = SourceDocument{Name: s.Name()}
	})
	state.Favorites.Each(func(id model.Identifier, f *model.Favorite) {
		doc.Favorites[key(id)] = FavoriteDocument{Name: f.Name()}
	})
	state.Presets.Each(func(id model.Identifier, p *model.EqualizerPreset) {
		doc.Presets[key(id)] = EqualizerPresetDocument{Name: p.Name(), EqualizerLevels: bandLevels(p.Bands())}
	})
	state.Groups.Each(func(id model.Identifier, g *model.Group) {
		ids := g.ZoneIDs()
		zones := make([]int, len(ids))
		for i, zid := range ids {
			zones[i] = int(zid)
		}
		doc.Groups[key(id)] = GroupDocument{Name: g.Name(), Zones: zones}
	})
	state.Zones.Each(func(id model.Identifier, z *model.Zone) {
		doc.Zones[key(id)] = ZoneDocument{
			Name:    z.Name(),
			Balance: z.Balance().Value(),
			Source:  int(z.SourceID()),
			SoundMode: SoundModeDocument{
				Mode:                       int(z.SoundMode()),
				EqualizerLevels:            bandLevels(z.Bands()),
				EqualizerPreset:            int(z.EqualizerPresetID()),
				Bass:                       z.Tone().Bass(),
				Treble:                     z.Tone().Treble(),
				LowpassCrossoverFrequency:  z.Lowpass().Frequency(),
				HighpassCrossoverFrequency: z.Highpass().Frequency(),
			},
			Volume: VolumeDocument{
				Level:  z.Volume().Level(),
				Locked: z.Volume().Fixed(),
				Muted:  z.Volume().Mute(),
			},
		}
	})

	doc.FrontPanel = FrontPanelDocument{Brightness: state.FrontPanel.Brightness(), Locked: state.FrontPanel.Locked()}
	doc.Infrared = InfraredDocument{Disabled: state.Infrared.Disabled()}
	doc.Network = NetworkDocument{
		DHCPv4Enabled:   state.Network.DHCPv4Enabled(),
		EthernetEUI48:   formatMAC(state.Network.EthernetEUI48()),
		HostIP:          formatIP(state.Network.HostIP()),
		DefaultRouterIP: formatIP(state.Network.DefaultRouterIP()),
		Netmask:         formatIP(state.Network.Netmask()),
		SDDPEnabled:     state.Network.SDDPEnabled(),
	}

	return doc
}

// Decode rebuilds a model.State from a Document, validating every
// identifier and enumerated value. A structurally defective document
// (missing container, out-of-range identifier, invalid sound mode) yields
// MissingConfiguration or InvalidConfiguration, per spec §7, and the caller
// is expected to fall back to ResetToDefaults.
func Decode(doc *Document) (*model.State, *model.Error) {
	if doc == nil {
		return nil, model.ErrMissingConfiguration("nil document")
	}

	state := model.DefaultState()

	if err := decodeEach(doc.Sources, state.Sources.Len(), func(id model.Identifier, d SourceDocument) *model.Error {
		s, err := state.Sources.Get(id)
		if err != nil {
			return err
		}
		_, err = s.SetName(d.Name)
		return err
	}); err != nil {
		return nil, err
	}

	if err := decodeEach(doc.Favorites, state.Favorites.Len(), func(id model.Identifier, d FavoriteDocument) *model.Error {
		f, err := state.Favorites.Get(id)
		if err != nil {
			return err
		}
		_, err = f.SetName(d.Name)
		return err
	}); err != nil {
		return nil, err
	}

	if err := decodeEach(doc.Presets, state.Presets.Len(), func(id model.Identifier, d EqualizerPresetDocument) *model.Error {
		p, err := state.Presets.Get(id)
		if err != nil {
			return err
		}
		if _, err := p.SetName(d.Name); err != nil {
			return err
		}
		return setBands(p, d.EqualizerLevels)
	}); err != nil {
		return nil, err
	}

	if err := decodeEach(doc.Groups, state.Groups.Len(), func(id model.Identifier, d GroupDocument) *model.Error {
		g, err := state.Groups.Get(id)
		if err != nil {
			return err
		}
		if _, err := g.SetName(d.Name); err != nil {
			return err
		}
		for _, zid := range d.Zones {
			if zid < int(model.IdentifierMin) || zid > model.MaxZones {
				return model.ErrInvalidConfiguration(fmt.Sprintf("group %d references out-of-range zone %d", id, zid))
			}
			if _, err := g.AddZone(model.Identifier(zid)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := decodeEach(doc.Zones, state.Zones.Len(), func(id model.Identifier, d ZoneDocument) *model.Error {
		return decodeZone(state, id, d)
	}); err != nil {
		return nil, err
	}

	state.FrontPanel = model.NewFrontPanel()
	if _, err := (&state.FrontPanel).SetBrightness(doc.FrontPanel.Brightness); err != nil {
		return nil, err
	}
	if _, err := (&state.FrontPanel).SetLocked(doc.FrontPanel.Locked); err != nil {
		return nil, err
	}

	if _, err := (&state.Infrared).SetDisabled(doc.Infrared.Disabled); err != nil {
		return nil, err
	}

	net := model.NewNetwork()
	net.SetDHCPv4Enabled(doc.Network.DHCPv4Enabled)
	if mac, ok := parseMAC(doc.Network.EthernetEUI48); ok {
		net.SetEthernetEUI48(mac)
	}
	net.SetHostIP(parseIP(doc.Network.HostIP))
	net.SetDefaultRouterIP(parseIP(doc.Network.DefaultRouterIP))
	net.SetNetmask(parseIP(doc.Network.Netmask))
	net.SetSDDPEnabled(doc.Network.SDDPEnabled)
	state.Network = net

	return state, nil
}

func decodeZone(state *model.State, id model.Identifier, d ZoneDocument) *model.Error {
	z, err := state.Zones.Get(id)
	if err != nil {
		return err
	}
	if _, err := z.SetName(d.Name); err != nil {
		return err
	}
	if _, err := setZoneBalance(z, d.Balance); err != nil {
		return err
	}
	if _, err := z.SetSourceID(model.Identifier(d.Source), model.MaxSources); err != nil {
		return err
	}

	if _, err := z.SetVolume(d.Volume.Level); err != nil {
		return err
	}
	if _, err := z.SetVolumeFixed(d.Volume.Locked); err != nil {
		return err
	}
	if _, err := z.SetMute(d.Volume.Muted); err != nil {
		return err
	}

	mode := model.SoundMode(d.SoundMode.Mode)
	if !mode.Valid() {
		return model.ErrInvalidConfiguration(fmt.Sprintf("zone %d has invalid sound mode %d", id, d.SoundMode.Mode))
	}
	if err := setBands(z, d.SoundMode.EqualizerLevels); err != nil {
		return err
	}
	if _, err := z.SetEqualizerPreset(model.Identifier(d.SoundMode.EqualizerPreset), model.MaxEqualizerPresets); err != nil {
		return err
	}
	if _, err := z.SetTone(d.SoundMode.Bass, d.SoundMode.Treble); err != nil {
		return err
	}
	if _, err := z.SetLowpassCrossover(d.SoundMode.LowpassCrossoverFrequency); err != nil {
		return err
	}
	if _, err := z.SetHighpassCrossover(d.SoundMode.HighpassCrossoverFrequency); err != nil {
		return err
	}
	if _, err := z.SetSoundMode(mode); err != nil {
		return err
	}
	return nil
}

// bandHolder is satisfied by both *model.Zone and *model.EqualizerPreset.
type bandHolder interface {
	Band(id model.Identifier) (*model.EqualizerBand, *model.Error)
}

func setBands(holder bandHolder, levels [model.EqualizerBandsPerSet]int8) *model.Error {
	for i, level := range levels {
		id := model.Identifier(i + 1)
		band, err := holder.Band(id)
		if err != nil {
			return err
		}
		if _, err := band.Set(level); err != nil && err.Kind != model.ErrorValueAlreadySet {
			return err
		}
	}
	return nil
}

func setZoneBalance(z *model.Zone, value int8) (model.Status, *model.Error) {
	if value < 0 {
		return z.SetBalanceTagged(model.ChannelLeft, -value)
	}
	return z.SetBalanceTagged(model.ChannelRight, value)
}

func bandLevels(bands [model.EqualizerBandsPerSet]model.EqualizerBand) [model.EqualizerBandsPerSet]int8 {
	var out [model.EqualizerBandsPerSet]int8
	for i, b := range bands {
		out[i] = b.Level()
	}
	return out
}

func decodeEach[T any](m map[string]T, max int, apply func(id model.Identifier, d T) *model.Error) *model.Error {
	if m == nil {
		return model.ErrMissingConfiguration("missing container")
	}
	if len(m) != max {
		return model.ErrInvalidConfiguration(fmt.Sprintf("container has %d entries, want %d", len(m), max))
	}
	for i := 1; i <= max; i++ {
		d, ok := m[key(model.Identifier(i))]
		if !ok {
			return model.ErrMissingConfiguration(fmt.Sprintf("missing identifier %d", i))
		}
		if err := apply(model.Identifier(i), d); err != nil {
			return err
		}
	}
	return nil
}

func key(id model.Identifier) string { return strconv.Itoa(int(id)) }

func formatMAC(mac [6]byte) string {
	return fmt.Sprintf("%02X-%02X-%02X-%02X-%02X-%02X", mac[0], mac[1], mac[2], mac[3], mac[4], mac[5])
}

func parseMAC(s string) ([6]byte, bool) {
	var out [6]byte
	hw, err := net.ParseMAC(macToColon(s))
	if err != nil || len(hw) != 6 {
		return out, false
	}
	copy(out[:], hw)
	return out, true
}

func macToColon(s string) string {
	out := []byte(s)
	for i, b := range out {
		if b == '-' {
			out[i] = ':'
		}
	}
	return string(out)
}

func formatIP(ip net.IP) string {
	if ip == nil {
		return ""
	}
	return ip.String()
}

func parseIP(s string) net.IP {
	return net.ParseIP(s)
}
