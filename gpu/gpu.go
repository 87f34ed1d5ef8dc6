// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/gogpu/gpucontext"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (e.g. a gogpu.App) implements gpucontext.DeviceProvider and hands
// it to sketch, so the frame layer shares the application's GPU device
// instead of creating its own. DeviceHandle is an alias for that interface,
// providing a sketch-local name while staying compatible with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// Device creates command encoders. It is the only device capability the
// frame layer needs; everything else (buffers, textures, pipelines) belongs
// to the layers below.
type Device interface {
	// CreateCommandEncoder creates a new, empty command encoder.
	// The label is advisory and used for debugging/diagnostics.
	CreateCommandEncoder(label string) (CommandEncoder, error)
}

// CommandEncoder accumulates GPU commands to be executed later as a unit.
//
// An encoder is NOT safe for concurrent use. The frame layer serializes all
// access to the encoder it owns; code that obtains an encoder elsewhere must
// provide its own synchronization.
type CommandEncoder interface {
	// Label returns the advisory label the encoder was created with.
	Label() string

	// Finish ends recording and returns the finished command buffer.
	// Finish is terminal: the encoder must not be used afterwards, and a
	// second call returns an error.
	Finish() (CommandBuffer, error)
}

// CommandBuffer is a finished, immutable batch of recorded commands ready
// for submission to a Queue.
type CommandBuffer interface {
	// Destroy releases resources held by the buffer. Calling Destroy on a
	// buffer that was already submitted is backend-defined; most backends
	// require the submission to have completed first.
	Destroy()
}

// Queue is the execution channel a finished command buffer is submitted to.
// Buffers submitted in separate calls execute in submission order.
type Queue interface {
	// Submit enqueues the given command buffers for execution.
	Submit(buffers ...CommandBuffer) error
}

// TextureView is a non-owning reference to a texture, such as the
// presentable surface image acquired for the current frame. The view is
// valid only as long as its owner (the surface/swap chain) keeps it alive.
type TextureView interface {
	// Destroy releases resources associated with this view. Views borrowed
	// from a surface are owned by the surface; for those, Destroy is a no-op.
	Destroy()
}
