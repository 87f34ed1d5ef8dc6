// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"sync"
	"time"
)

// defaultTimingWindow is how many recent frames Average covers unless
// WithTimingWindow overrides it. Two seconds' worth at 60 fps.
const defaultTimingWindow = 120

// Timing keeps rolling frame-duration statistics for a Dispatcher.
// Durations cover one Dispatch call: view function, finish, and submit.
//
// Timing is safe for concurrent use.
type Timing struct {
	mu     sync.Mutex
	ring   []time.Duration
	idx    int
	filled int
	count  uint64
	last   time.Duration
	max    time.Duration
}

func newTiming(window int) *Timing {
	return &Timing{ring: make([]time.Duration, window)}
}

// record adds one frame duration to the statistics.
func (t *Timing) record(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ring[t.idx] = d
	t.idx = (t.idx + 1) % len(t.ring)
	if t.filled < len(t.ring) {
		t.filled++
	}
	t.count++
	t.last = d
	if d > t.max {
		t.max = d
	}
}

// FrameCount returns how many frames have been recorded since creation.
func (t *Timing) FrameCount() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Last returns the duration of the most recent frame, or 0 if none.
func (t *Timing) Last() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Max returns the longest frame duration seen since creation, or 0 if none.
func (t *Timing) Max() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.max
}

// Average returns the mean duration over the rolling window, or 0 if no
// frame has been recorded yet.
func (t *Timing) Average() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.filled == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < t.filled; i++ {
		sum += t.ring[i]
	}
	return sum / time.Duration(t.filled)
}

// FPS returns the frame rate implied by the rolling average, or 0 if no
// frame has been recorded yet.
func (t *Timing) FPS() float64 {
	avg := t.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
