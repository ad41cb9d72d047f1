package model

import "fmt"

// Crossover frequency bounds, in Hz. CrossoverFrequencyDefault matches the
// reference simulator's device default for both lowpass and highpass.
const (
	CrossoverFrequencyMin     uint16 = 1
	CrossoverFrequencyMax     uint16 = 20000
	CrossoverFrequencyDefault uint16 = 100
)

// Crossover is a single lowpass or highpass filter's corner frequency. The
// model only stores and reports the value; it performs no DSP.
type Crossover struct {
	frequency uint16
}

// NewCrossover constructs a Crossover at the given frequency.
func NewCrossover(hz uint16) Crossover { return Crossover{frequency: hz} }

func (c Crossover) Frequency() uint16 { return c.frequency }

// Set validates and assigns a new corner frequency.
func (c *Crossover) Set(hz uint16) (Status, *Error) {
	if hz < CrossoverFrequencyMin || hz > CrossoverFrequencyMax {
		return 0, ErrOutOfRange(fmt.Sprintf("crossover frequency %d out of range [%d,%d]", hz, CrossoverFrequencyMin, CrossoverFrequencyMax))
	}
	if hz == c.frequency {
		return StatusValueAlreadySet, nil
	}
	c.frequency = hz
	return StatusSuccess, nil
}
