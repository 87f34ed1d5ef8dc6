// Package sketch provides the per-frame rendering primitives for windowed
// GoGPU applications.
//
// # Overview
//
// sketch sits between a window/surface manager and application drawing code.
// Once per displayed frame the manager acquires the window's presentable
// texture, wraps it in a [RawFrame], and hands that frame to the
// application's view function. The view function records GPU commands
// through the frame; when it returns, the runtime consumes the frame and
// submits the recorded commands to the queue the frame was bound to.
//
// # Quick Start
//
//	dev := headless.NewDevice()
//	queue := headless.NewQueue()
//
//	frame, _ := sketch.NewRawFrame(dev, queue, win, 0, texture,
//	    gputypes.TextureFormatBGRA8Unorm, geom.NewRect(0, 0, 800, 600))
//
//	_ = frame.Record(func(enc gpu.CommandEncoder) error {
//	    // encode render passes against frame.Texture()
//	    return nil
//	})
//
//	encoder := frame.Finish()
//	buffer, _ := encoder.Finish()
//	_ = queue.Submit(buffer)
//
// # Architecture
//
// The library is organized into:
//   - Root: RawFrame and its guarded command-recording scope
//   - geom: rectangle and point value types
//   - gpu: backend-neutral handle interfaces (device, queue, encoder, texture)
//   - window: window identity and per-window frame sequencing
//   - display: the per-frame dispatch protocol and frame timing
//   - backend/headless, backend/wgpu: gpu interface implementations
//
// # Concurrency
//
// A RawFrame may be shared by any number of goroutines during the view
// function; command recording is serialized by the frame. Everything else
// (frame construction, consumption, submission) is driven sequentially per
// window by the runtime.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
