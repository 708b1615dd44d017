package synth

import "math"

// ----- Waveform ----- //

// Waveform selects the shape stored into a generated wavetable. The set is
// closed; adding a shape means adding one constant and one case in Generate.
type Waveform int

const (
	Sine Waveform = iota
	Saw
	Square
	Triangle
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

// ----- Wavetable ----- //

// Wavetable holds one period of a waveform, normalized to [-1, 1]. Tables are
// immutable after Generate; oscillators share the backing array and never
// copy it. The old table is simply dropped when the last oscillator using it
// goes away.
type Wavetable []float32

// Generate builds a table of the given size for the given shape.
// size must be > 1 so that Lerp always has two points to work with.
func Generate(shape Waveform, size int) Wavetable {
	table := make(Wavetable, size)
	for n := 0; n < size; n++ {
		t := float64(n) / float64(size)
		switch shape {
		case Sine:
			table[n] = float32(math.Sin(2.0 * math.Pi * t))
		case Saw:
			table[n] = float32(2.0*t - 1.0)
		case Square:
			if n < size/2 {
				table[n] = 1.0
			} else {
				table[n] = -1.0
			}
		case Triangle:
			table[n] = float32(4.0*math.Abs(t-0.5) - 1.0)
		}
	}
	return table
}

// Lerp reads the table at a fractional index in [0, len) with linear
// interpolation between the two nearest entries, wrapping at the end.
func (wt Wavetable) Lerp(index float32) float32 {
	truncated := int(index)
	next := truncated + 1
	if next >= len(wt) {
		next = 0
	}
	frac := index - float32(truncated)
	return wt[truncated]*(1-frac) + wt[next]*frac
}
