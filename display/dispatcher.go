// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/loov/hrtime"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/gpu"
	"github.com/gogpu/sketch/window"
)

// Common errors returned by Dispatcher operations.
var (
	// ErrNilDevice is returned when New is passed a nil device.
	ErrNilDevice = errors.New("display: nil device")

	// ErrNilQueue is returned when New is passed a nil queue.
	ErrNilQueue = errors.New("display: nil queue")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("display: nil DeviceProvider")

	// ErrIncompatibleProvider is returned when a provider's device or queue
	// does not implement the sketch gpu interfaces.
	ErrIncompatibleProvider = errors.New("display: provider device/queue do not implement the gpu interfaces")

	// ErrNilView is returned when Dispatch is passed a nil view function.
	ErrNilView = errors.New("display: nil view function")
)

// ViewFunc is the application's drawing callback. It receives the frame by
// reference, may call its accessors and record commands from any number of
// goroutines, and must not retain the frame after returning.
//
// Returning an error abandons the frame: nothing is submitted, and the
// window's next frame starts fresh.
type ViewFunc func(*sketch.RawFrame) error

// Target is one window's acquired drawing destination for a single frame:
// the surface's current presentable texture, its pixel format, and the
// window's drawable rectangle. The manager that acquired the texture keeps
// ownership and presents it after Dispatch returns.
type Target struct {
	Texture gpu.TextureView
	Format  gputypes.TextureFormat
	Rect    geom.Rect
}

// Option configures a Dispatcher during creation.
type Option func(*options)

type options struct {
	timingWindow int
}

func defaultOptions() options {
	return options{timingWindow: defaultTimingWindow}
}

// WithTimingWindow sets how many recent frames the dispatcher's timing
// statistics average over. Values below 1 keep the default.
func WithTimingWindow(frames int) Option {
	return func(o *options) {
		if frames >= 1 {
			o.timingWindow = frames
		}
	}
}

// Dispatcher drives single frames for any number of windows against one
// device/queue pair.
//
// Dispatcher is safe for concurrent use, but frames for the SAME window
// must be dispatched sequentially: the surface protocol allows only one
// live presentable texture per window, and the dispatcher relies on the
// caller for that ordering.
type Dispatcher struct {
	device gpu.Device
	queue  gpu.Queue
	seq    window.Sequence
	timing *Timing
}

// New creates a Dispatcher bound to a device and the queue commands will
// be submitted to. The queue must belong to the device; like frame
// construction itself, this is not validated here.
func New(device gpu.Device, queue gpu.Queue, opts ...Option) (*Dispatcher, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Dispatcher{
		device: device,
		queue:  queue,
		timing: newTiming(o.timingWindow),
	}, nil
}

// NewFromProvider creates a Dispatcher from a host application's device
// provider (e.g. gogpu.App.GPUContextProvider()). The provider's device
// and queue must implement the sketch gpu interfaces.
func NewFromProvider(provider gpu.DeviceHandle, opts ...Option) (*Dispatcher, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	device, okDev := provider.Device().(gpu.Device)
	queue, okQueue := provider.Queue().(gpu.Queue)
	if !okDev || !okQueue {
		return nil, ErrIncompatibleProvider
	}

	return New(device, queue, opts...)
}

// Dispatch runs one frame for window w: it assigns the window's next frame
// number, constructs the frame around target, invokes view, consumes the
// frame, and submits the finished commands to the frame's queue.
//
// Exactly one submission happens per successful Dispatch, after view has
// returned and every recording guard has been released. If view returns an
// error the frame is lost: nothing is submitted and the error is returned
// wrapped. A panic inside view propagates to the caller; the frame it
// tainted is never submitted.
func (d *Dispatcher) Dispatch(w window.ID, target Target, view ViewFunc) error {
	if view == nil {
		return ErrNilView
	}

	start := hrtime.Now()
	nth := d.seq.Next(w)

	frame, err := sketch.NewRawFrame(d.device, d.queue, w, nth, target.Texture, target.Format, target.Rect)
	if err != nil {
		return fmt.Errorf("display: frame %d for window %s: %w", nth, w, err)
	}

	if err := view(frame); err != nil {
		sketch.Logger().Warn("view function failed, frame dropped",
			"window", w.String(), "frame", nth, "err", err)
		return fmt.Errorf("display: view for frame %d of window %s: %w", nth, w, err)
	}

	encoder := frame.Finish()
	buffer, err := encoder.Finish()
	if err != nil {
		return fmt.Errorf("display: finish frame %d of window %s: %w", nth, w, err)
	}

	if err := frame.Queue().Submit(buffer); err != nil {
		return fmt.Errorf("display: submit frame %d of window %s: %w", nth, w, err)
	}

	elapsed := hrtime.Since(start)
	d.timing.record(elapsed)
	sketch.Logger().Debug("frame dispatched",
		"window", w.String(), "frame", nth, "elapsed", elapsed)
	return nil
}

// Timing returns the dispatcher's rolling frame statistics.
func (d *Dispatcher) Timing() *Timing {
	return d.timing
}

// LastFrame returns the most recently dispatched frame number for w.
// The second return value is false if no frame was ever dispatched for w.
func (d *Dispatcher) LastFrame(w window.ID) (uint64, bool) {
	return d.seq.Current(w)
}

// Forget drops the frame-sequence state for a closed window. The ID must
// never be dispatched again afterwards.
func (d *Dispatcher) Forget(w window.ID) {
	d.seq.Forget(w)
}
