// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch/gpu"
)

// Common errors returned by headless handles.
var (
	// ErrEncoderFinished is returned when an encoder is used after Finish.
	ErrEncoderFinished = errors.New("headless: command encoder already finished")
)

// Device creates in-memory command encoders.
//
// Device is safe for concurrent use.
type Device struct {
	created atomic.Uint64
}

// NewDevice creates a headless device.
func NewDevice() *Device {
	return &Device{}
}

// CreateCommandEncoder creates a new, empty encoder.
func (d *Device) CreateCommandEncoder(label string) (gpu.CommandEncoder, error) {
	d.created.Add(1)
	return &Encoder{label: label}, nil
}

// EncodersCreated returns how many encoders the device has handed out.
func (d *Device) EncodersCreated() uint64 {
	return d.created.Load()
}

// Encoder is an in-memory command encoder. Instead of GPU commands it
// records named markers, in the order they were appended.
//
// Encoder is NOT safe for concurrent use; whoever owns it must serialize
// access, which is exactly what a frame's recording scope does.
type Encoder struct {
	label    string
	ops      []string
	finished bool
}

// Label returns the encoder's advisory label.
func (e *Encoder) Label() string {
	return e.label
}

// Mark appends a named marker to the command stream.
// Mark panics if the encoder was already finished.
func (e *Encoder) Mark(name string) {
	if e.finished {
		panic(ErrEncoderFinished)
	}
	e.ops = append(e.ops, name)
}

// Ops returns a copy of the markers recorded so far, in order.
func (e *Encoder) Ops() []string {
	ops := make([]string, len(e.ops))
	copy(ops, e.ops)
	return ops
}

// Finish ends recording and returns the finished command buffer holding
// the recorded markers. A second call returns ErrEncoderFinished.
func (e *Encoder) Finish() (gpu.CommandBuffer, error) {
	if e.finished {
		return nil, ErrEncoderFinished
	}
	e.finished = true
	return &CommandBuffer{label: e.label, ops: e.ops}, nil
}

// CommandBuffer is a finished, immutable batch of markers.
type CommandBuffer struct {
	label     string
	ops       []string
	destroyed bool
}

// Label returns the label of the encoder that produced the buffer.
func (b *CommandBuffer) Label() string {
	return b.label
}

// Ops returns a copy of the buffer's markers, in recording order.
func (b *CommandBuffer) Ops() []string {
	ops := make([]string, len(b.ops))
	copy(ops, b.ops)
	return ops
}

// Destroy marks the buffer destroyed. Idempotent.
func (b *CommandBuffer) Destroy() {
	b.destroyed = true
}

// Destroyed reports whether Destroy was called.
func (b *CommandBuffer) Destroyed() bool {
	return b.destroyed
}

// Queue retains submitted buffers in submission order.
//
// Queue is safe for concurrent use.
type Queue struct {
	mu        sync.Mutex
	submitted []gpu.CommandBuffer
}

// NewQueue creates a headless queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Submit appends the buffers to the queue's submission log.
func (q *Queue) Submit(buffers ...gpu.CommandBuffer) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.submitted = append(q.submitted, buffers...)
	return nil
}

// Submitted returns a copy of every buffer submitted so far, in order.
func (q *Queue) Submitted() []gpu.CommandBuffer {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]gpu.CommandBuffer, len(q.submitted))
	copy(out, q.submitted)
	return out
}

// TextureView is a stand-in for a window's presentable surface image.
type TextureView struct {
	width, height uint32
	format        gputypes.TextureFormat
	destroyed     bool
}

// NewTextureView creates a texture view of the given size and format.
func NewTextureView(width, height uint32, format gputypes.TextureFormat) *TextureView {
	return &TextureView{width: width, height: height, format: format}
}

// Width returns the view's width in pixels.
func (v *TextureView) Width() uint32 { return v.width }

// Height returns the view's height in pixels.
func (v *TextureView) Height() uint32 { return v.height }

// Format returns the view's pixel format.
func (v *TextureView) Format() gputypes.TextureFormat { return v.format }

// Destroy marks the view destroyed. Idempotent.
func (v *TextureView) Destroy() {
	v.destroyed = true
}

// Destroyed reports whether Destroy was called.
func (v *TextureView) Destroyed() bool {
	return v.destroyed
}

// Verify the headless types implement the gpu interfaces.
var (
	_ gpu.Device         = (*Device)(nil)
	_ gpu.CommandEncoder = (*Encoder)(nil)
	_ gpu.CommandBuffer  = (*CommandBuffer)(nil)
	_ gpu.Queue          = (*Queue)(nil)
	_ gpu.TextureView    = (*TextureView)(nil)
)
