package synth

// ----- Voice ----- //

// Voice ties an oscillator to the input key that triggered it, so a later
// note-off can find it. Voices never share phase state; they may share a
// wavetable.
type Voice struct {
	osc    *Oscillator
	active bool
	key    rune
}

// ----- Voice Pool ----- //

// VoicePool owns all currently sounding voices. New voices inherit the
// pool's sample rate and its current wavetable reference.
type VoicePool struct {
	voices     []*Voice
	sampleRate int
	table      Wavetable
}

func NewVoicePool(sampleRate int, table Wavetable) *VoicePool {
	return &VoicePool{
		sampleRate: sampleRate,
		table:      table,
	}
}

// NoteOn creates and activates a voice for key. If an active voice for key
// already exists (OS key-repeat), the call is a no-op: at most one active
// voice per key.
func (p *VoicePool) NoteOn(frequency float32, key rune) {
	for _, v := range p.voices {
		if v.active && v.key == key {
			return
		}
	}
	osc := NewOscillator(p.sampleRate, p.table)
	osc.SetFrequency(frequency)
	osc.NoteOn()
	p.voices = append(p.voices, &Voice{
		osc:    osc,
		active: true,
		key:    key,
	})
}

// NoteOff deactivates every voice bound to key. NoteOn keeps at most one
// active per key, but all matches are handled anyway. Unknown keys are a
// no-op.
func (p *VoicePool) NoteOff(key rune) {
	for _, v := range p.voices {
		if v.key == key {
			v.active = false
			v.osc.NoteOff()
		}
	}
}

// MixSample returns the arithmetic mean of all active voices, an average
// rather than a sum so output stays in range as polyphony grows. Voices
// found inactive are pruned in the same pass; there is no separate cleanup.
func (p *VoicePool) MixSample() float32 {
	var total float32
	count := 0
	kept := p.voices[:0]
	for _, v := range p.voices {
		if !v.active {
			continue
		}
		total += v.osc.Sample()
		count++
		kept = append(kept, v)
	}
	for i := len(kept); i < len(p.voices); i++ {
		p.voices[i] = nil
	}
	p.voices = kept
	if count == 0 {
		return 0.0
	}
	return total / float32(count)
}

// SetTable swaps the wavetable handed to voices created from now on.
// Sounding voices keep their original table until they end; a playing note
// is never re-timbred in place.
func (p *VoicePool) SetTable(table Wavetable) {
	p.table = table
}

// Active returns the number of currently active voices.
func (p *VoicePool) Active() int {
	n := 0
	for _, v := range p.voices {
		if v.active {
			n++
		}
	}
	return n
}
