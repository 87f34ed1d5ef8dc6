// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package display runs the per-frame protocol between a window/surface
// manager and application drawing code.
//
// For each frame the manager acquires the window's presentable texture and
// calls [Dispatcher.Dispatch] with it. The dispatcher assigns the window's
// next frame number, builds a sketch.RawFrame around the texture, invokes
// the application's view function, consumes the frame, and submits the
// finished commands to the frame's queue, exactly once and in dispatch
// order. Presenting the texture afterwards stays with the manager.
//
// The dispatcher also keeps rolling frame-duration statistics, measured
// with loov/hrtime, covering the view function through submission.
package display
