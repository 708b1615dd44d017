package synth

import "sync"

// tap is a ring buffer of the most recent output samples, written by the
// audio path and read by the UI for its level meter. It has its own mutex
// so reading it never contends with the engine lock.
type tap struct {
	mu  sync.Mutex
	buf []float32
	pos int
}

func newTap(size int) *tap {
	return &tap{
		buf: make([]float32, size),
	}
}

func (t *tap) push(sample float32) {
	t.mu.Lock()
	t.buf[t.pos] = sample
	t.pos = (t.pos + 1) % len(t.buf)
	t.mu.Unlock()
}

// samples returns the last n samples in chronological order.
func (t *tap) samples(n int) []float32 {
	if n > len(t.buf) {
		n = len(t.buf)
	}
	out := make([]float32, n)
	t.mu.Lock()
	start := (t.pos - n + len(t.buf)) % len(t.buf)
	for i := 0; i < n; i++ {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	t.mu.Unlock()
	return out
}
