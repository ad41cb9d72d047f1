package model

import "fmt"

// VolumeLevelMin and VolumeLevelMax bound Volume.Level in integer
// decibel-equivalent units.
const (
	VolumeLevelMin int8 = -80
	VolumeLevelMax int8 = 0
)

// Volume is a zone's (or, transiently, a group aggregate's) volume state:
// level, mute, and whether the level is hardware-locked.
type Volume struct {
	level int8
	mute  bool
	fixed bool
}

// NewVolume constructs a Volume with the given initial values.
func NewVolume(level int8, mute, fixed bool) Volume {
	return Volume{level: level, mute: mute, fixed: fixed}
}

func (v Volume) Level() int8 { return v.level }
func (v Volume) Mute() bool  { return v.mute }
func (v Volume) Fixed() bool { return v.fixed }

// SetLevel sets the volume level. Refused with ErrorVolumeIsFixed when the
// volume is locked; refused with ErrorOutOfRange outside
// [VolumeLevelMin, VolumeLevelMax].
func (v *Volume) SetLevel(level int8) (Status, *Error) {
	if v.fixed {
		return 0, ErrVolumeIsFixed("volume is fixed")
	}
	if level < VolumeLevelMin || level > VolumeLevelMax {
		return 0, ErrOutOfRange(fmt.Sprintf("volume level %d out of range [%d,%d]", level, VolumeLevelMin, VolumeLevelMax))
	}
	if level == v.level {
		return StatusValueAlreadySet, nil
	}
	v.level = level
	return StatusSuccess, nil
}

// Increase adds one unit, saturating at VolumeLevelMax.
func (v *Volume) Increase() (Status, *Error) {
	if v.fixed {
		return 0, ErrVolumeIsFixed("volume is fixed")
	}
	if v.level >= VolumeLevelMax {
		return StatusValueAlreadySet, nil
	}
	v.level++
	return StatusSuccess, nil
}

// Decrease subtracts one unit, saturating at VolumeLevelMin.
func (v *Volume) Decrease() (Status, *Error) {
	if v.fixed {
		return 0, ErrVolumeIsFixed("volume is fixed")
	}
	if v.level <= VolumeLevelMin {
		return StatusValueAlreadySet, nil
	}
	v.level--
	return StatusSuccess, nil
}

// SetMute sets the mute flag. Mute and unmute remain permitted even when
// the volume is fixed.
func (v *Volume) SetMute(mute bool) (Status, *Error) {
	if mute == v.mute {
		return StatusValueAlreadySet, nil
	}
	v.mute = mute
	return StatusSuccess, nil
}

// ToggleMute flips the mute flag and always reports a change.
func (v *Volume) ToggleMute() (Status, *Error) {
	v.mute = !v.mute
	return StatusSuccess, nil
}

// SetFixed locks or unlocks the volume level.
func (v *Volume) SetFixed(fixed bool) (Status, *Error) {
	if fixed == v.fixed {
		return StatusValueAlreadySet, nil
	}
	v.fixed = fixed
	return StatusSuccess, nil
}
