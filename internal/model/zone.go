package model

// MaxZones is the largest valid zone identifier.
const MaxZones = 24

// Zone is one audio output channel: its own volume, source, balance, and
// equalizer/tone/crossover state. All attributes are always present; only
// the ones matching SoundMode are semantically "active", but every getter
// is always callable.
type Zone struct {
	id                Identifier
	name              Name
	balance           Balance
	soundMode         SoundMode
	bands             [EqualizerBandsPerSet]EqualizerBand
	equalizerPresetID Identifier
	tone              Tone
	lowpass           Crossover
	highpass          Crossover
	sourceID          Identifier
	volume            Volume
}

// NewZone constructs a zone at its documented defaults (spec §3.1):
// centered balance, disabled sound mode, flat bands/tone, preset 1,
// 100 Hz crossovers, source 1, muted, volume at the minimum, unlocked.
func NewZone(id Identifier, name string) Zone {
	return Zone{
		id:                id,
		name:              NewName(name),
		balance:           NewBalance(0),
		soundMode:         SoundModeDisabled,
		equalizerPresetID: IdentifierMin,
		tone:              NewTone(0, 0),
		lowpass:           NewCrossover(CrossoverFrequencyDefault),
		highpass:          NewCrossover(CrossoverFrequencyDefault),
		sourceID:          IdentifierMin,
		volume:            NewVolume(VolumeLevelMin, true, false),
	}
}

func (z Zone) ID() Identifier         { return z.id }
func (z Zone) Name() string           { return z.name.String() }
func (z Zone) Balance() Balance       { return z.balance }
func (z Zone) SoundMode() SoundMode   { return z.soundMode }
func (z Zone) SourceID() Identifier   { return z.sourceID }
func (z Zone) Volume() Volume         { return z.volume }
func (z Zone) Tone() Tone             { return z.tone }
func (z Zone) Lowpass() Crossover     { return z.lowpass }
func (z Zone) Highpass() Crossover    { return z.highpass }
func (z Zone) EqualizerPresetID() Identifier { return z.equalizerPresetID }
func (z Zone) Bands() [EqualizerBandsPerSet]EqualizerBand { return z.bands }

// SetName validates and assigns a new zone name.
func (z *Zone) SetName(name string) (Status, *Error) { return z.name.Set(name) }

// SetSourceID validates and assigns the zone's audio source.
func (z *Zone) SetSourceID(id Identifier, maxSource Identifier) (Status, *Error) {
	if id < IdentifierMin || id > maxSource {
		return 0, ErrOutOfRange("source identifier out of range")
	}
	if id == z.sourceID {
		return StatusValueAlreadySet, nil
	}
	z.sourceID = id
	return StatusSuccess, nil
}

// SetBalanceTagged sets balance from the wire's L/R-tagged form.
func (z *Zone) SetBalanceTagged(channel BalanceChannel, magnitude int8) (Status, *Error) {
	return z.balance.SetTagged(channel, magnitude)
}

// AdjustBalance moves the balance one step toward channel.
func (z *Zone) AdjustBalance(channel BalanceChannel) (Status, *Error) {
	return z.balance.Adjust(channel)
}

// SetMute, ToggleMute, SetVolumeFixed, SetVolume, IncreaseVolume, and
// DecreaseVolume delegate to the embedded Volume.
func (z *Zone) SetMute(mute bool) (Status, *Error)       { return z.volume.SetMute(mute) }
func (z *Zone) ToggleMute() (Status, *Error)              { return z.volume.ToggleMute() }
func (z *Zone) SetVolumeFixed(fixed bool) (Status, *Error) { return z.volume.SetFixed(fixed) }
func (z *Zone) SetVolume(level int8) (Status, *Error)     { return z.volume.SetLevel(level) }
func (z *Zone) IncreaseVolume() (Status, *Error)           { return z.volume.Increase() }
func (z *Zone) DecreaseVolume() (Status, *Error)           { return z.volume.Decrease() }

// SetSoundMode conditionally transitions the sound mode, returning
// StatusValueAlreadySet when it was already at mode.
func (z *Zone) SetSoundMode(mode SoundMode) (Status, *Error) {
	if !mode.Valid() {
		return 0, ErrOutOfRange("invalid sound mode")
	}
	if mode == z.soundMode {
		return StatusValueAlreadySet, nil
	}
	z.soundMode = mode
	return StatusSuccess, nil
}

func (z *Zone) SetBass(v int8) (Status, *Error)   { return z.tone.SetBass(v) }
func (z *Zone) SetTreble(v int8) (Status, *Error) { return z.tone.SetTreble(v) }
func (z *Zone) SetTone(bass, treble int8) (Status, *Error) {
	if bass < ToneLevelMin || bass > ToneLevelMax || treble < ToneLevelMin || treble > ToneLevelMax {
		return 0, ErrOutOfRange("tone level out of range")
	}
	bassStatus, _ := z.tone.SetBass(bass)
	trebleStatus, _ := z.tone.SetTreble(treble)
	if bassStatus == StatusSuccess || trebleStatus == StatusSuccess {
		return StatusSuccess, nil
	}
	return StatusValueAlreadySet, nil
}
func (z *Zone) IncreaseBass() (Status, *Error)   { return z.tone.IncreaseBass() }
func (z *Zone) DecreaseBass() (Status, *Error)   { return z.tone.DecreaseBass() }
func (z *Zone) IncreaseTreble() (Status, *Error) { return z.tone.IncreaseTreble() }
func (z *Zone) DecreaseTreble() (Status, *Error) { return z.tone.DecreaseTreble() }

// Band returns a pointer to the zone-equalizer band at the given identifier.
func (z *Zone) Band(id Identifier) (*EqualizerBand, *Error) {
	if id < IdentifierMin || int(id) > EqualizerBandsPerSet {
		return nil, ErrOutOfRange("equalizer band identifier out of range")
	}
	return &z.bands[id-1], nil
}

// SetEqualizerPreset validates and assigns the zone's active preset.
func (z *Zone) SetEqualizerPreset(id Identifier, maxPreset Identifier) (Status, *Error) {
	if id < IdentifierMin || id > maxPreset {
		return 0, ErrOutOfRange("equalizer preset identifier out of range")
	}
	if id == z.equalizerPresetID {
		return StatusValueAlreadySet, nil
	}
	z.equalizerPresetID = id
	return StatusSuccess, nil
}

func (z *Zone) SetLowpassCrossover(hz uint16) (Status, *Error)  { return z.lowpass.Set(hz) }
func (z *Zone) SetHighpassCrossover(hz uint16) (Status, *Error) { return z.highpass.Set(hz) }
