package synth

import "testing"

// constant returns a table that always reads back the same value, handy for
// checking mixing arithmetic.
func constant(value float32) Wavetable {
	return Wavetable{value, value}
}

func TestNoteOnDuplicateKey(t *testing.T) {
	p := NewVoicePool(SampleRate, Generate(Sine, TableSize))
	p.NoteOn(440, 'a')
	p.NoteOn(440, 'a')
	if len(p.voices) != 1 {
		t.Errorf("expected 1 voice, but got: %v", len(p.voices))
	}
	if p.Active() != 1 {
		t.Errorf("expected 1 active voice, but got: %v", p.Active())
	}
}

func TestMixIsAverageNotSum(t *testing.T) {
	p := NewVoicePool(SampleRate, constant(1.0))
	p.NoteOn(0, 'a')
	p.SetTable(constant(-1.0))
	p.NoteOn(0, 's')
	// 1.0 and -1.0 average to zero; a raw sum would too, so also check the
	// same-signed case below
	expectClose(t, p.MixSample(), 0.0)

	p = NewVoicePool(SampleRate, constant(1.0))
	p.NoteOn(0, 'a')
	p.NoteOn(0, 's')
	expectClose(t, p.MixSample(), 1.0)
}

func TestSetTableOnlyAffectsNewVoices(t *testing.T) {
	p := NewVoicePool(SampleRate, constant(1.0))
	p.NoteOn(0, 'a')
	p.SetTable(constant(-1.0))
	// the sounding voice keeps its original table
	expectClose(t, p.MixSample(), 1.0)
	p.NoteOn(0, 's')
	expectClose(t, p.MixSample(), 0.0)
}

func TestPruneOnMix(t *testing.T) {
	p := NewVoicePool(SampleRate, Generate(Sine, TableSize))
	p.NoteOn(440, 'a')
	p.NoteOn(523, 's')
	p.MixSample()
	if len(p.voices) != 2 {
		t.Fatalf("expected 2 voices, but got: %v", len(p.voices))
	}
	p.NoteOff('a')
	if len(p.voices) != 2 {
		t.Fatalf("note-off alone should not evict, but pool has: %v", len(p.voices))
	}
	p.MixSample()
	if len(p.voices) != 1 {
		t.Errorf("expected the inactive voice pruned, but pool has: %v", len(p.voices))
	}
	if p.voices[0].key != 's' {
		t.Errorf("wrong voice survived: %q", p.voices[0].key)
	}
}

func TestNoteOffUnknownKey(t *testing.T) {
	p := NewVoicePool(SampleRate, Generate(Sine, TableSize))
	p.NoteOn(440, 'a')
	p.NoteOff('z')
	if p.Active() != 1 {
		t.Errorf("expected 1 active voice, but got: %v", p.Active())
	}
}

func TestMixEmptyPool(t *testing.T) {
	p := NewVoicePool(SampleRate, Generate(Sine, TableSize))
	expectClose(t, p.MixSample(), 0.0)
}

func TestNoteOnAfterNoteOffSameKey(t *testing.T) {
	p := NewVoicePool(SampleRate, Generate(Sine, TableSize))
	p.NoteOn(440, 'a')
	p.NoteOff('a')
	p.MixSample()
	p.NoteOn(440, 'a')
	if p.Active() != 1 {
		t.Errorf("expected the key to sound again, active: %v", p.Active())
	}
}
