// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package wgpu adapts gogpu/wgpu HAL handles to the sketch gpu interfaces.
//
// It uses the gogpu/wgpu Pure Go WebGPU implementation, which supports
// Vulkan, Metal, and DX12 backends depending on the platform. The host
// application creates the hal device and queue during GPU initialization
// and wraps them once:
//
//	dev := wgpu.NewDevice(halDevice)
//	queue := wgpu.NewQueue(halQueue)
//
// Frames constructed with this device record into a real hal command
// encoder; render passes and copies are encoded through the Hal escape
// hatch on the encoder:
//
//	_ = frame.Record(func(enc gpu.CommandEncoder) error {
//	    hal := enc.(*wgpu.Encoder).Hal()
//	    // hal.BeginComputePass(...), hal.CopyBufferToBuffer(...), ...
//	    return nil
//	})
//
// Submission is fire-and-forget by default; SubmitAndWait fences the
// submission when the caller needs completion before touching resources
// the commands reference.
package wgpu
