// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu defines the backend-neutral GPU handle types the frame layer
// is built on: devices, queues, command encoders, command buffers, and
// texture views.
//
// The interfaces here are deliberately narrow. They cover exactly what the
// frame lifecycle needs: creating an empty encoder, finishing it into a
// submittable buffer, and submitting buffers to a queue. Backends expose
// their full encoding APIs (render passes, copies, debug markers) as extra
// methods on their concrete types; callers that need them reach through
// with a type assertion, the same way gg reaches gpucontext.TextureUpdater.
package gpu
