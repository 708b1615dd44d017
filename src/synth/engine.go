package synth

import (
	"context"
	"io"
	"log"
	"sync"

	"github.com/hajimehoshi/oto"
)

const (
	SampleRate = 44100
	TableSize  = 256

	channelNum      = 1
	bitDepthInBytes = 2
	samplesPerCycle = 2048
)
const bytesPerSample = bitDepthInBytes * channelNum
const bufferSizeInBytes = samplesPerCycle * bytesPerSample // should be >= 4096
const volumeStep = 0.05
const tapSize = 2048

// ----- Commands ----- //

// Command is a mutation sent from the input side. Commands are applied one
// at a time, in arrival order, each under the engine lock for only as long
// as the mutation itself takes.
type Command interface {
	isCommand()
}

// NoteOnCommand starts a voice for Key at Frequency (Hz).
type NoteOnCommand struct {
	Frequency float32
	Key       rune
}

// NoteOffCommand silences the voice bound to Key.
type NoteOffCommand struct {
	Key rune
}

// SetWaveformCommand regenerates the shared wavetable with a new shape.
// Only voices created afterwards pick it up.
type SetWaveformCommand struct {
	Shape Waveform
}

// VolumeUpCommand raises master volume one step, unless already at the top.
type VolumeUpCommand struct{}

// VolumeDownCommand lowers master volume one step, unless already at the
// bottom step.
type VolumeDownCommand struct{}

func (NoteOnCommand) isCommand()      {}
func (NoteOffCommand) isCommand()     {}
func (SetWaveformCommand) isCommand() {}
func (VolumeUpCommand) isCommand()    {}
func (VolumeDownCommand) isCommand()  {}

// ----- Engine ----- //

// Engine is the shared synthesis state: the voice pool, the current
// wavetable and the master volume, guarded by one mutex. The audio side
// pulls samples via Read; the input side mutates through CommandCh.
type Engine struct {
	ctx       context.Context
	CommandCh chan Command

	mu     sync.Mutex
	pool   *VoicePool
	table  Wavetable
	shape  Waveform
	volume float32

	tap *tap
}

var _ io.Reader = (*Engine)(nil)

func NewEngine() *Engine {
	table := Generate(Sine, TableSize)
	commandCh := make(chan Command, 256)
	e := &Engine{
		ctx:       context.Background(),
		CommandCh: commandCh,
		pool:      NewVoicePool(SampleRate, table),
		table:     table,
		shape:     Sine,
		volume:    1.0,
		tap:       newTap(tapSize),
	}
	go e.processCommands(commandCh)
	return e
}

func (e *Engine) processCommands(commandCh <-chan Command) {
	for command := range commandCh {
		e.update(command)
	}
	log.Println("processCommands() ended.")
}

func (e *Engine) update(command Command) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch c := command.(type) {
	case NoteOnCommand:
		e.pool.NoteOn(c.Frequency, c.Key)
	case NoteOffCommand:
		e.pool.NoteOff(c.Key)
	case SetWaveformCommand:
		table := Generate(c.Shape, TableSize)
		e.table = table
		e.shape = c.Shape
		e.pool.SetTable(table)
	case VolumeUpCommand:
		if e.volume < 1.0 {
			e.volume += volumeStep
		}
	case VolumeDownCommand:
		if e.volume > volumeStep {
			e.volume -= volumeStep
		}
	}
}

// NextSample mixes one sample and applies master volume. The lock covers
// exactly one mix, never more.
func (e *Engine) NextSample() float32 {
	e.mu.Lock()
	sample := e.pool.MixSample() * e.volume
	e.mu.Unlock()
	e.tap.push(sample)
	return sample
}

// Read fills buf with 16-bit little-endian mono PCM, one NextSample per
// frame. It satisfies io.Reader so the oto player can be fed with
// io.CopyBuffer.
func (e *Engine) Read(buf []byte) (int, error) {
	select {
	case <-e.ctx.Done():
		log.Println("Read() interrupted.")
		return 0, io.EOF
	default:
	}
	samples := len(buf) / bytesPerSample
	for i := 0; i < samples; i++ {
		writeSample(buf[i*bytesPerSample:], e.NextSample())
	}
	return samples * bytesPerSample, nil
}

func writeSample(buf []byte, value float32) {
	const max = 32767
	b := int16(value * max)
	buf[0] = byte(b)
	buf[1] = byte(b >> 8)
}

// Start opens the audio device and streams samples into it until ctx is
// done. The device being unavailable is the one fatal startup error this
// program has.
func (e *Engine) Start(ctx context.Context) error {
	otoContext, err := oto.NewContext(SampleRate, channelNum, bitDepthInBytes, bufferSizeInBytes)
	if err != nil {
		return err
	}
	defer func() {
		if err := otoContext.Close(); err != nil {
			log.Printf("error while closing oto context: %v", err)
		}
	}()
	p := otoContext.NewPlayer()
	defer func() {
		if err := p.Close(); err != nil {
			log.Printf("error while closing player: %v", err)
		}
	}()
	e.ctx = ctx

	// blocks until ctx is canceled
	if _, err := io.CopyBuffer(p, e, make([]byte, bufferSizeInBytes)); err != nil {
		return err
	}
	log.Println("Start() ended.")
	return nil
}

// Close stops the command consumer. Further sends on CommandCh panic, so
// the input side must be torn down first.
func (e *Engine) Close() error {
	log.Println("Closing Engine...")
	close(e.CommandCh)
	return nil
}

// ----- UI accessors ----- //

// Volume returns the current master volume in [0, 1].
func (e *Engine) Volume() float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.volume
}

// Shape returns the currently selected waveform.
func (e *Engine) Shape() Waveform {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shape
}

// ActiveVoices returns how many voices are sounding right now.
func (e *Engine) ActiveVoices() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pool.Active()
}

// TableSnapshot copies the current wavetable for rendering. The copy keeps
// the renderer off the shared backing array.
func (e *Engine) TableSnapshot() []float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]float32, len(e.table))
	copy(out, e.table)
	return out
}

// TapSamples returns the last n output samples in chronological order.
func (e *Engine) TapSamples(n int) []float32 {
	return e.tap.samples(n)
}
