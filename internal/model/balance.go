package model

import "fmt"

// BalanceMin and BalanceMax bound Balance.Value. Negative is left-biased,
// positive is right-biased, zero is center.
const (
	BalanceMin int8 = -80
	BalanceMax int8 = 80
)

// BalanceChannel names the wire-form side of a balance command.
type BalanceChannel int

const (
	ChannelLeft BalanceChannel = iota
	ChannelRight
)

// Balance is a zone's stereo balance, stored as a single signed value but
// rendered on the wire as a tagged channel + magnitude pair.
type Balance struct {
	value int8
}

// NewBalance constructs a Balance at the given internal (signed) value.
func NewBalance(v int8) Balance { return Balance{value: v} }

func (b Balance) Value() int8 { return b.value }

// Tag reports which wire channel the current value renders under. Zero
// renders as ChannelRight per spec.
func (b Balance) Tag() BalanceChannel {
	if b.value < 0 {
		return ChannelLeft
	}
	return ChannelRight
}

// Magnitude reports the unsigned wire-form level for the current channel.
func (b Balance) Magnitude() int8 {
	if b.value < 0 {
		return -b.value
	}
	return b.value
}

// Set assigns the internal signed value directly.
func (b *Balance) Set(v int8) (Status, *Error) {
	if v < BalanceMin || v > BalanceMax {
		return 0, ErrOutOfRange(fmt.Sprintf("balance %d out of range [%d,%d]", v, BalanceMin, BalanceMax))
	}
	if v == b.value {
		return StatusValueAlreadySet, nil
	}
	b.value = v
	return StatusSuccess, nil
}

// SetTagged assigns balance from the wire's discontinuous tagged form,
// normalizing L to negative and R to non-negative.
func (b *Balance) SetTagged(channel BalanceChannel, magnitude int8) (Status, *Error) {
	if magnitude < 0 || magnitude > BalanceMax {
		return 0, ErrOutOfRange(fmt.Sprintf("balance magnitude %d out of range [0,%d]", magnitude, BalanceMax))
	}
	v := magnitude
	if channel == ChannelLeft {
		v = -magnitude
	}
	return b.Set(v)
}

// Adjust moves the stored value one unit toward channel, saturating at the
// extreme rather than wrapping or stalling at zero.
func (b *Balance) Adjust(channel BalanceChannel) (Status, *Error) {
	delta := int8(1)
	if channel == ChannelLeft {
		delta = -1
	}
	next := b.value + delta
	if next > BalanceMax {
		next = BalanceMax
	}
	if next < BalanceMin {
		next = BalanceMin
	}
	if next == b.value {
		return StatusValueAlreadySet, nil
	}
	b.value = next
	return StatusSuccess, nil
}
