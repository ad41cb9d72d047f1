// Package events defines the state-change notification shared between the
// server's sub-controllers and the client's delivery sink.
package events

import "github.com/openhlx/hlxgo/internal/model"

// Kind identifies which attribute a StateChange reports on.
type Kind string

const (
	KindZoneVolume        Kind = "ZoneVolume"
	KindZoneMute          Kind = "ZoneMute"
	KindZoneBalance       Kind = "ZoneBalance"
	KindZoneSource        Kind = "ZoneSource"
	KindZoneSoundMode     Kind = "ZoneSoundMode"
	KindZoneTone          Kind = "ZoneTone"
	KindZoneEqualizerBand Kind = "ZoneEqualizerBand"
	KindZoneCrossover     Kind = "ZoneCrossover"
	KindZoneName          Kind = "ZoneName"
	KindSourceName        Kind = "SourceName"
	KindFavoriteName      Kind = "FavoriteName"
	KindPresetName        Kind = "PresetName"
	KindPresetBand        Kind = "PresetBand"
	KindGroupMembership   Kind = "GroupMembership"
	KindGroupName         Kind = "GroupName"
	KindFrontPanel        Kind = "FrontPanel"
	KindInfrared          Kind = "Infrared"
	KindNetwork           Kind = "Network"
	KindConfigurationSaved Kind = "ConfigurationSaved"
)

// StateChange is the typed notification emitted for every model mutation,
// per spec §4.6, whether it originated from an in-flight response or an
// unsolicited notification.
type StateChange struct {
	Kind       Kind
	Identifier model.Identifier
	NewValue   any
}

// Sink receives StateChange values in strict per-connection order. The
// server's Application controller and the client's exchange-driven
// delivery both implement it: this is the "single-owner event sink" Design
// Notes §9 substitutes for the reference's cyclic delegate graph.
type Sink interface {
	OnStateChange(change StateChange)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(change StateChange)

// OnStateChange calls f.
func (f SinkFunc) OnStateChange(change StateChange) { f(change) }
