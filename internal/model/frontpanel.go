package model

import "fmt"

// FrontPanel brightness bounds and default.
const (
	FrontPanelBrightnessMin     uint8 = 0
	FrontPanelBrightnessMax     uint8 = 3
	FrontPanelBrightnessDefault uint8 = 2
)

// FrontPanel is the device's physical front-panel display state.
type FrontPanel struct {
	brightness uint8
	locked     bool
}

// NewFrontPanel constructs a FrontPanel at its documented defaults.
func NewFrontPanel() FrontPanel {
	return FrontPanel{brightness: FrontPanelBrightnessDefault}
}

func (f FrontPanel) Brightness() uint8 { return f.brightness }
func (f FrontPanel) Locked() bool      { return f.locked }

// SetBrightness validates and assigns a new brightness level.
func (f *FrontPanel) SetBrightness(level uint8) (Status, *Error) {
	if level > FrontPanelBrightnessMax {
		return 0, ErrOutOfRange(fmt.Sprintf("brightness %d out of range [%d,%d]", level, FrontPanelBrightnessMin, FrontPanelBrightnessMax))
	}
	if level == f.brightness {
		return StatusValueAlreadySet, nil
	}
	f.brightness = level
	return StatusSuccess, nil
}

// SetLocked locks or unlocks the front panel.
func (f *FrontPanel) SetLocked(locked bool) (Status, *Error) {
	if locked == f.locked {
		return StatusValueAlreadySet, nil
	}
	f.locked = locked
	return StatusSuccess, nil
}
