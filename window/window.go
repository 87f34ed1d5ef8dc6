// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"sync"

	"github.com/google/uuid"
)

// ID identifies a window for the lifetime of the application.
//
// IDs are opaque and comparable; they are usable as map keys. The zero
// value means "no window" and is never returned by NewID.
type ID struct {
	value uuid.UUID
}

// NewID returns a new unique window ID.
func NewID() ID {
	return ID{value: uuid.New()}
}

// IsZero reports whether the ID is the zero "no window" value.
func (id ID) IsZero() bool {
	return id.value == uuid.UUID{}
}

// String returns the ID in its canonical textual form.
func (id ID) String() string {
	return id.value.String()
}

// Sequence hands out frame numbers per window: zero-based, strictly
// increasing, never reused. One Sequence instance is shared by whatever
// drives frame construction for a set of windows.
//
// Sequence is safe for concurrent use. The zero value is ready to use.
type Sequence struct {
	mu   sync.Mutex
	next map[ID]uint64
}

// Next returns the frame number for w's next frame and advances the
// counter. The first call for a window returns 0.
func (s *Sequence) Next(w ID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next == nil {
		s.next = make(map[ID]uint64)
	}
	n := s.next[w]
	s.next[w] = n + 1
	return n
}

// Current returns the most recently issued frame number for w.
// The second return value is false if no frame was ever issued for w.
func (s *Sequence) Current(w ID) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.next[w]
	if !ok {
		return 0, false
	}
	return n - 1, true
}

// Forget drops the counter state for w, typically after the window is
// closed. A window reusing the same ID afterwards would restart at 0,
// so callers must only forget IDs that will never be seen again.
func (s *Sequence) Forget(w ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.next, w)
}
