package model

// State is the complete in-memory domain model: every collection plus the
// three singleton device-wide areas (front panel, infrared, network).
type State struct {
	Sources    *Collection[Source]
	Zones      *Collection[Zone]
	Groups     *Collection[Group]
	Presets    *Collection[EqualizerPreset]
	Favorites  *Collection[Favorite]
	FrontPanel FrontPanel
	Infrared   Infrared
	Network    Network
}
