// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless implements the gpu handle interfaces entirely in memory.
//
// It records command markers instead of GPU work, which makes it the
// backend of choice for tests, CI machines without a GPU, and for
// verifying submission ordering: every encoder keeps its ops in recording
// order, every queue keeps its submissions in submission order.
package headless
