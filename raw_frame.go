package sketch

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/gpu"
	"github.com/gogpu/sketch/window"
)

// Common errors returned by RawFrame construction.
var (
	// ErrNilDevice is returned when NewRawFrame is passed a nil device.
	ErrNilDevice = errors.New("sketch: nil device")

	// ErrNilQueue is returned when NewRawFrame is passed a nil queue.
	ErrNilQueue = errors.New("sketch: nil queue")

	// ErrNilTexture is returned when NewRawFrame is passed a nil texture view.
	ErrNilTexture = errors.New("sketch: nil surface texture")
)

// RawFrame gives application code drawing access to a window's surface for
// exactly one frame.
//
// The runtime's view function is called each time a window is ready to
// display a new image; the RawFrame it receives is the canvas for that
// image. RawFrame exposes the texture view of the surface's current target
// texture, the texture's pixel format, the window's drawable rectangle, and
// the queue the frame's commands will be submitted to.
//
// Commands are recorded through [RawFrame.Record], which serializes access
// to the frame's single command encoder: the view function may fan out
// across goroutines and each may record, but their command sequences never
// interleave. When the view function returns, the runtime consumes the
// frame with [RawFrame.Finish] and submits the finished commands to the
// frame's queue, the same queue [RawFrame.Queue] reports. Whatever was
// recorded during the frame ends up on the queue that matches the device
// the surface was created on.
//
// The texture view and queue are borrowed: they belong to the surface and
// device, stay valid only for the duration of the view call, and must not
// be retained after the view function returns. The same applies to the
// frame itself.
type RawFrame struct {
	scope    *encoderScope
	windowID window.ID
	nth      uint64
	texture  gpu.TextureView
	queue    gpu.Queue
	format   gputypes.TextureFormat
	rect     geom.Rect
}

// NewRawFrame initializes a new empty frame ready for drawing.
//
// The device is used once, to create the frame's command encoder; the
// frame does not hold on to it. The queue must be the queue of the device
// that owns texture. NewRawFrame does not verify that relationship; gpu
// handles are opaque here and carry no device identity. Passing a queue
// and texture from different devices is a caller error that surfaces
// later, at submission.
//
// nth is the zero-based frame number for windowID, supplied by whatever
// drives the window's frame sequence (see window.Sequence).
func NewRawFrame(
	device gpu.Device,
	queue gpu.Queue,
	windowID window.ID,
	nth uint64,
	texture gpu.TextureView,
	format gputypes.TextureFormat,
	rect geom.Rect,
) (*RawFrame, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}
	if texture == nil {
		return nil, ErrNilTexture
	}

	enc, err := device.CreateCommandEncoder(fmt.Sprintf("%s/frame-%d", windowID, nth))
	if err != nil {
		return nil, fmt.Errorf("sketch: create command encoder: %w", err)
	}

	return &RawFrame{
		scope:    newEncoderScope(enc),
		windowID: windowID,
		nth:      nth,
		texture:  texture,
		queue:    queue,
		format:   format,
		rect:     rect,
	}, nil
}

// Record runs fn with exclusive access to the frame's command encoder.
// Commands encoded through fn are submitted to the frame's queue after the
// view function returns.
//
// Record blocks while another caller is recording and releases the
// encoder on every exit path from fn, including early returns and panics.
// It may be called any number of times, from any number of goroutines;
// the order in which concurrent callers acquire the encoder is
// unspecified. fn's error is returned unchanged.
//
// If a previous caller panicked while recording, the command stream is
// corrupt and the whole frame is lost: Record panics rather than handing
// out an encoder it cannot vouch for.
func (f *RawFrame) Record(fn func(gpu.CommandEncoder) error) error {
	return f.scope.record(fn)
}

// Finish consumes the frame and returns its command encoder so the
// recorded commands can be finished and submitted.
//
// Finish is reserved for the frame-lifecycle runtime; view functions never
// call it. It must be called exactly once, after all drawing code for the
// frame has returned. Finish panics if called twice, if a recorder still
// holds the encoder, or if the frame was tainted by a panicking recorder.
func (f *RawFrame) Finish() gpu.CommandEncoder {
	return f.scope.unwrap()
}

// WindowID returns the ID of the window whose surface is associated with
// this frame.
func (f *RawFrame) WindowID() window.ID {
	return f.windowID
}

// Nth returns this frame's number for the associated window since the
// application started: the first frame yielded for a window is 0, the
// second 1, and so on.
func (f *RawFrame) Nth() uint64 {
	return f.nth
}

// Texture returns the surface texture view that is the target for drawing
// this frame. The view is borrowed from the surface and is valid only for
// the frame's lifetime.
func (f *RawFrame) Texture() gpu.TextureView {
	return f.texture
}

// TextureFormat returns the pixel format of the frame's surface texture.
// Drawing code uses it to choose compatible pipelines.
func (f *RawFrame) TextureFormat() gputypes.TextureFormat {
	return f.format
}

// Queue returns the queue the frame's encoded commands will be submitted
// to. It is the queue of the device the surface was created on.
func (f *RawFrame) Queue() gpu.Queue {
	return f.queue
}

// Rect returns the window's drawable rectangle at the time the frame was
// created, equivalent to asking the associated window for its rectangle.
func (f *RawFrame) Rect() geom.Rect {
	return f.rect
}
