package synth

import "math"

// ----- Oscillator ----- //

// Oscillator is one voice's phase accumulator over a shared wavetable.
// The phase stays within [0, len(table)) after every advance.
type Oscillator struct {
	sampleRate int
	table      Wavetable
	phase      float32
	increment  float32
	playing    bool
}

func NewOscillator(sampleRate int, table Wavetable) *Oscillator {
	return &Oscillator{
		sampleRate: sampleRate,
		table:      table,
	}
}

// SetFrequency derives the per-sample phase increment. hz is not range
// checked; zero or negative values degenerate to no or backwards advance.
func (o *Oscillator) SetFrequency(hz float32) {
	o.increment = hz * float32(len(o.table)) / float32(o.sampleRate)
}

// NoteOn starts the oscillator. Calling it on a playing oscillator is a
// no-op: the phase is not re-triggered.
func (o *Oscillator) NoteOn() {
	if o.playing {
		return
	}
	o.playing = true
}

// NoteOff stops the oscillator. Idempotent like NoteOn.
func (o *Oscillator) NoteOff() {
	if !o.playing {
		return
	}
	o.playing = false
}

func (o *Oscillator) IsPlaying() bool {
	return o.playing
}

// Sample returns the interpolated table value at the current phase and then
// advances. Returns 0 without touching the phase when not playing.
func (o *Oscillator) Sample() float32 {
	if !o.playing {
		return 0.0
	}
	sample := o.table.Lerp(o.phase)
	o.phase = positiveMod(o.phase+o.increment, float32(len(o.table)))
	return sample
}

func positiveMod(a float32, b float32) float32 {
	m := float32(math.Mod(float64(a), float64(b)))
	if m < 0 {
		m += b
	}
	// float32 rounding can land exactly on b
	if m >= b {
		m -= b
	}
	return m
}
