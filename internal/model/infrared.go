package model

// Infrared is the device's IR remote receiver state.
type Infrared struct {
	disabled bool
}

// NewInfrared constructs an Infrared with the remote enabled.
func NewInfrared() Infrared { return Infrared{} }

func (i Infrared) Disabled() bool { return i.disabled }

// SetDisabled enables or disables the IR remote receiver.
func (i *Infrared) SetDisabled(disabled bool) (Status, *Error) {
	if disabled == i.disabled {
		return StatusValueAlreadySet, nil
	}
	i.disabled = disabled
	return StatusSuccess, nil
}
