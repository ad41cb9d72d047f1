package model

import "fmt"

// ToneLevelMin and ToneLevelMax bound both Tone.Bass and Tone.Treble.
const (
	ToneLevelMin int8 = -10
	ToneLevelMax int8 = 10
)

// Tone holds a zone's bass and treble levels. A tone query always reports
// both, regardless of which one was last touched.
type Tone struct {
	bass, treble int8
}

// NewTone constructs a Tone with the given initial levels.
func NewTone(bass, treble int8) Tone { return Tone{bass: bass, treble: treble} }

func (t Tone) Bass() int8   { return t.bass }
func (t Tone) Treble() int8 { return t.treble }

func clampedToneSet(cur *int8, v int8) (Status, *Error) {
	if v < ToneLevelMin || v > ToneLevelMax {
		return 0, ErrOutOfRange(fmt.Sprintf("tone level %d out of range [%d,%d]", v, ToneLevelMin, ToneLevelMax))
	}
	if v == *cur {
		return StatusValueAlreadySet, nil
	}
	*cur = v
	return StatusSuccess, nil
}

func (t *Tone) SetBass(v int8) (Status, *Error)   { return clampedToneSet(&t.bass, v) }
func (t *Tone) SetTreble(v int8) (Status, *Error) { return clampedToneSet(&t.treble, v) }

func adjustTone(cur *int8, delta int8) (Status, *Error) {
	next := *cur + delta
	if next > ToneLevelMax {
		next = ToneLevelMax
	}
	if next < ToneLevelMin {
		next = ToneLevelMin
	}
	if next == *cur {
		return StatusValueAlreadySet, nil
	}
	*cur = next
	return StatusSuccess, nil
}

func (t *Tone) IncreaseBass() (Status, *Error)   { return adjustTone(&t.bass, 1) }
func (t *Tone) DecreaseBass() (Status, *Error)   { return adjustTone(&t.bass, -1) }
func (t *Tone) IncreaseTreble() (Status, *Error) { return adjustTone(&t.treble, 1) }
func (t *Tone) DecreaseTreble() (Status, *Error) { return adjustTone(&t.treble, -1) }
