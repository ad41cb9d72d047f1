package model

import "fmt"

// DefaultState returns a fresh State with every collection populated at
// its maximum size and generated names, matching the reset-to-defaults
// fan-out of the configuration controller (spec §4.5.7).
func DefaultState() *State {
	return &State{
		Sources: NewCollection(MaxSources, func(id Identifier) Source {
			return NewSource(id, fmt.Sprintf("Source Name %d", id))
		}),
		Zones: NewCollection(MaxZones, func(id Identifier) Zone {
			return NewZone(id, fmt.Sprintf("Zone Name %d", id))
		}),
		Groups: NewCollection(MaxGroups, func(id Identifier) Group {
			return NewGroup(id, fmt.Sprintf("Group Name %d", id))
		}),
		Presets: NewCollection(MaxEqualizerPresets, func(id Identifier) EqualizerPreset {
			return NewEqualizerPreset(id, fmt.Sprintf("Equalizer Preset Name %d", id))
		}),
		Favorites: NewCollection(MaxFavorites, func(id Identifier) Favorite {
			return NewFavorite(id, fmt.Sprintf("Favorite Name %d", id))
		}),
		FrontPanel: NewFrontPanel(),
		Infrared:   NewInfrared(),
		Network:    NewNetwork(),
	}
}
