// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window provides window identity and per-window frame sequencing.
//
// Window creation, surface acquisition, and presentation live in the host
// application; this package only supplies the two values the frame layer
// needs from them: an opaque, comparable window ID and the strictly
// increasing frame counter that tags each frame constructed for a window.
package window
