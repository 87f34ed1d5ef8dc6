// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"
	"time"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sketch/gpu"
)

// Device wraps a hal.Device with the gpu.Device interface.
type Device struct {
	hal hal.Device
}

// NewDevice wraps an existing hal device. The caller keeps ownership of
// the device and is responsible for releasing it.
func NewDevice(device hal.Device) *Device {
	return &Device{hal: device}
}

// Hal returns the underlying hal device.
func (d *Device) Hal() hal.Device {
	return d.hal
}

// CreateCommandEncoder creates a hal command encoder and opens it for
// encoding.
func (d *Device) CreateCommandEncoder(label string) (gpu.CommandEncoder, error) {
	enc, err := d.hal.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: label,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to create command encoder: %w", err)
	}

	if err := enc.BeginEncoding(label); err != nil {
		return nil, fmt.Errorf("wgpu: failed to begin encoding: %w", err)
	}

	return &Encoder{label: label, hal: enc}, nil
}

// Encoder wraps an open hal.CommandEncoder.
//
// Encoder is NOT safe for concurrent use; the frame layer serializes
// access to it. Callers encoding passes or copies reach the hal encoder
// through Hal.
type Encoder struct {
	label    string
	hal      hal.CommandEncoder
	finished bool
}

// Label returns the encoder's advisory label.
func (e *Encoder) Label() string {
	return e.label
}

// Hal returns the underlying hal encoder for pass and copy encoding.
func (e *Encoder) Hal() hal.CommandEncoder {
	return e.hal
}

// Finish ends encoding and returns the finished command buffer.
func (e *Encoder) Finish() (gpu.CommandBuffer, error) {
	if e.finished {
		return nil, fmt.Errorf("wgpu: command encoder %q already finished", e.label)
	}
	e.finished = true

	buf, err := e.hal.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("wgpu: failed to end encoding: %w", err)
	}
	return &CommandBuffer{hal: buf}, nil
}

// CommandBuffer wraps a finished hal.CommandBuffer.
type CommandBuffer struct {
	hal hal.CommandBuffer
}

// Hal returns the underlying hal command buffer.
func (b *CommandBuffer) Hal() hal.CommandBuffer {
	return b.hal
}

// Destroy releases the hal command buffer.
func (b *CommandBuffer) Destroy() {
	b.hal.Destroy()
}

// Queue wraps a hal.Queue with the gpu.Queue interface.
type Queue struct {
	hal hal.Queue
}

// NewQueue wraps an existing hal queue.
func NewQueue(queue hal.Queue) *Queue {
	return &Queue{hal: queue}
}

// Hal returns the underlying hal queue.
func (q *Queue) Hal() hal.Queue {
	return q.hal
}

// Submit submits the buffers for execution without waiting for completion.
// Every buffer must have been produced by an Encoder from this package.
func (q *Queue) Submit(buffers ...gpu.CommandBuffer) error {
	halBuffers := make([]hal.CommandBuffer, 0, len(buffers))
	for _, b := range buffers {
		wb, ok := b.(*CommandBuffer)
		if !ok {
			return fmt.Errorf("wgpu: cannot submit foreign command buffer %T", b)
		}
		halBuffers = append(halBuffers, wb.hal)
	}

	if _, err := q.hal.Submit(halBuffers); err != nil {
		return fmt.Errorf("wgpu: failed to submit commands: %w", err)
	}
	return nil
}

// SubmitAndWait submits the buffers with a fence and blocks until the GPU
// signals completion or timeoutNs nanoseconds elapse. Useful when the
// caller must know the frame's commands have executed, e.g. before
// destroying resources the commands reference.
func SubmitAndWait(d *Device, q *Queue, timeoutNs uint64, buffers ...gpu.CommandBuffer) error {
	halBuffers := make([]hal.CommandBuffer, 0, len(buffers))
	for _, b := range buffers {
		wb, ok := b.(*CommandBuffer)
		if !ok {
			return fmt.Errorf("wgpu: cannot submit foreign command buffer %T", b)
		}
		halBuffers = append(halBuffers, wb.hal)
	}

	fence, err := d.hal.CreateFence()
	if err != nil {
		return fmt.Errorf("wgpu: failed to create fence: %w", err)
	}
	defer d.hal.DestroyFence(fence)

	if _, err := q.hal.Submit(halBuffers); err != nil {
		return fmt.Errorf("wgpu: failed to submit commands: %w", err)
	}

	if _, err := d.hal.Wait(fence, 1, time.Duration(timeoutNs)); err != nil {
		return fmt.Errorf("wgpu: failed to wait for fence: %w", err)
	}
	return nil
}

// TextureView wraps a hal texture view, typically the surface's current
// presentable texture.
type TextureView struct {
	hal hal.TextureView
}

// NewTextureView wraps an existing hal texture view. The surface that
// produced the view keeps ownership.
func NewTextureView(view hal.TextureView) *TextureView {
	return &TextureView{hal: view}
}

// Hal returns the underlying hal texture view.
func (v *TextureView) Hal() hal.TextureView {
	return v.hal
}

// Destroy is a no-op: the surface owns the underlying view and releases it
// when the frame's texture is presented or dropped.
func (v *TextureView) Destroy() {}

// Verify the wgpu types implement the gpu interfaces.
var (
	_ gpu.Device         = (*Device)(nil)
	_ gpu.CommandEncoder = (*Encoder)(nil)
	_ gpu.CommandBuffer  = (*CommandBuffer)(nil)
	_ gpu.Queue          = (*Queue)(nil)
	_ gpu.TextureView    = (*TextureView)(nil)
)
