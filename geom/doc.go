// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom provides the small geometric value types used by the frame
// layer: points and axis-aligned rectangles.
//
// All types are plain values. Methods never mutate their receiver; the
// rectangle a frame reports stays the same for the frame's whole life.
package geom
