package sketch

import (
	"sync"

	"github.com/gogpu/sketch/gpu"
)

// encoderScope owns a frame's single command encoder and serializes all
// access to it for the frame's duration.
//
// The encoder is logically one append-only command stream, so a single
// exclusive lock is the whole concurrency story: commands land in the
// stream in lock-acquisition order, and no finer-grained locking exists.
// The order in which blocked callers acquire the lock is unspecified.
//
// Go has no lock poisoning, so the scope keeps an explicit taint flag
// instead: a panic raised while the lock is held marks the scope tainted,
// and every later acquisition or unwrap aborts. A command stream that was
// abandoned mid-record cannot be trusted, and there is no partial-frame
// recovery.
//
// Lifecycle: empty -> recording (any number of guarded accesses) ->
// finished. Finished is terminal.
type encoderScope struct {
	mu       sync.Mutex
	enc      gpu.CommandEncoder
	tainted  bool
	finished bool
}

// newEncoderScope wraps a freshly created, empty encoder.
func newEncoderScope(enc gpu.CommandEncoder) *encoderScope {
	return &encoderScope{enc: enc}
}

// record runs fn with exclusive access to the encoder, blocking until the
// lock is free. The lock is released on every exit path, including a panic
// inside fn; that panic additionally taints the scope before propagating.
//
// record panics if the scope is tainted or already finished.
func (s *encoderScope) record(fn func(gpu.CommandEncoder) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished {
		panic("sketch: command recording after the frame was consumed")
	}
	if s.tainted {
		panic("sketch: command encoder tainted by a previous panic while recording")
	}

	defer func() {
		if r := recover(); r != nil {
			s.tainted = true
			panic(r)
		}
	}()
	return fn(s.enc)
}

// unwrap consumes the scope and returns the encoder for finishing and
// submission. It must only be called once, after every recorder is done:
// a lock still held at this point means application code kept recording
// past the end of the frame, which is a fatal programming error.
//
// unwrap panics if the lock is held, if the scope is tainted, or if it
// was already unwrapped.
func (s *encoderScope) unwrap() gpu.CommandEncoder {
	if !s.mu.TryLock() {
		panic("sketch: command encoder still locked at end of frame")
	}
	defer s.mu.Unlock()

	if s.tainted {
		panic("sketch: command encoder tainted by a previous panic while recording")
	}
	if s.finished {
		panic("sketch: frame consumed twice")
	}

	s.finished = true
	enc := s.enc
	s.enc = nil
	return enc
}
