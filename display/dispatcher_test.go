// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend/headless"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/gpu"
	"github.com/gogpu/sketch/window"
)

const testFormat = gputypes.TextureFormatBGRA8Unorm

func newTestDispatcher(t *testing.T, opts ...Option) (*Dispatcher, *headless.Queue) {
	t.Helper()
	queue := headless.NewQueue()
	d, err := New(headless.NewDevice(), queue, opts...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return d, queue
}

func testTarget() Target {
	return Target{
		Texture: headless.NewTextureView(800, 600, testFormat),
		Format:  testFormat,
		Rect:    geom.RectFromSize(800, 600),
	}
}

// markView returns a ViewFunc that records a single named marker.
func markView(name string) ViewFunc {
	return func(f *sketch.RawFrame) error {
		return f.Record(func(enc gpu.CommandEncoder) error {
			enc.(*headless.Encoder).Mark(name)
			return nil
		})
	}
}

func TestNew_Validation(t *testing.T) {
	queue := headless.NewQueue()

	if _, err := New(nil, queue); !errors.Is(err, ErrNilDevice) {
		t.Errorf("New(nil, queue) = %v, want ErrNilDevice", err)
	}
	if _, err := New(headless.NewDevice(), nil); !errors.Is(err, ErrNilQueue) {
		t.Errorf("New(device, nil) = %v, want ErrNilQueue", err)
	}
}

func TestDispatch_NilView(t *testing.T) {
	d, _ := newTestDispatcher(t)
	if err := d.Dispatch(window.NewID(), testTarget(), nil); !errors.Is(err, ErrNilView) {
		t.Errorf("Dispatch(nil view) = %v, want ErrNilView", err)
	}
}

func TestDispatch_FrameNumbersPerWindow(t *testing.T) {
	d, _ := newTestDispatcher(t)
	w1, w2 := window.NewID(), window.NewID()

	var got []uint64
	capture := func(f *sketch.RawFrame) error {
		got = append(got, f.Nth())
		return nil
	}

	for i := 0; i < 3; i++ {
		if err := d.Dispatch(w1, testTarget(), capture); err != nil {
			t.Fatalf("Dispatch(w1) #%d = %v", i, err)
		}
	}
	if err := d.Dispatch(w2, testTarget(), capture); err != nil {
		t.Fatalf("Dispatch(w2) = %v", err)
	}

	want := []uint64{0, 1, 2, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame numbers = %v, want %v", got, want)
			break
		}
	}

	if n, ok := d.LastFrame(w1); !ok || n != 2 {
		t.Errorf("LastFrame(w1) = (%d, %v), want (2, true)", n, ok)
	}
	if n, ok := d.LastFrame(w2); !ok || n != 0 {
		t.Errorf("LastFrame(w2) = (%d, %v), want (0, true)", n, ok)
	}
}

func TestDispatch_SubmitsOncePerFrameInOrder(t *testing.T) {
	d, queue := newTestDispatcher(t)
	w := window.NewID()

	for i := 0; i < 3; i++ {
		if err := d.Dispatch(w, testTarget(), markView(fmt.Sprintf("op-%d", i))); err != nil {
			t.Fatalf("Dispatch() #%d = %v", i, err)
		}
	}

	submitted := queue.Submitted()
	if len(submitted) != 3 {
		t.Fatalf("submitted %d buffers, want 3", len(submitted))
	}
	for i, buf := range submitted {
		ops := buf.(*headless.CommandBuffer).Ops()
		if len(ops) != 1 || ops[0] != fmt.Sprintf("op-%d", i) {
			t.Errorf("submission %d ops = %v, want [op-%d]", i, ops, i)
		}
	}
}

func TestDispatch_ViewErrorDropsFrame(t *testing.T) {
	d, queue := newTestDispatcher(t)
	w := window.NewID()

	viewErr := errors.New("scene not ready")
	err := d.Dispatch(w, testTarget(), func(*sketch.RawFrame) error {
		return viewErr
	})
	if !errors.Is(err, viewErr) {
		t.Fatalf("Dispatch() = %v, want wrapped %v", err, viewErr)
	}
	if n := len(queue.Submitted()); n != 0 {
		t.Errorf("failed view produced %d submissions, want 0", n)
	}

	// The frame number was consumed anyway: the next frame is 1, not 0.
	if err := d.Dispatch(w, testTarget(), markView("recovered")); err != nil {
		t.Fatalf("Dispatch() after failure = %v", err)
	}
	if n, ok := d.LastFrame(w); !ok || n != 1 {
		t.Errorf("LastFrame() = (%d, %v), want (1, true)", n, ok)
	}
	if n := len(queue.Submitted()); n != 1 {
		t.Errorf("got %d submissions after recovery, want 1", n)
	}
}

func TestDispatch_RecordsTiming(t *testing.T) {
	d, _ := newTestDispatcher(t)
	w := window.NewID()

	for i := 0; i < 5; i++ {
		if err := d.Dispatch(w, testTarget(), markView("op")); err != nil {
			t.Fatalf("Dispatch() #%d = %v", i, err)
		}
	}

	timing := d.Timing()
	if got := timing.FrameCount(); got != 5 {
		t.Errorf("FrameCount() = %d, want 5", got)
	}
	if timing.Max() < timing.Last() {
		t.Errorf("Max() = %v is below Last() = %v", timing.Max(), timing.Last())
	}
}

func TestDispatch_ViewErrorNotTimed(t *testing.T) {
	d, _ := newTestDispatcher(t)
	w := window.NewID()

	_ = d.Dispatch(w, testTarget(), func(*sketch.RawFrame) error {
		return errors.New("boom")
	})

	if got := d.Timing().FrameCount(); got != 0 {
		t.Errorf("FrameCount() after failed dispatch = %d, want 0", got)
	}
}

func TestDispatcher_Forget(t *testing.T) {
	d, _ := newTestDispatcher(t)
	w := window.NewID()

	if err := d.Dispatch(w, testTarget(), markView("op")); err != nil {
		t.Fatalf("Dispatch() = %v", err)
	}
	d.Forget(w)

	if _, ok := d.LastFrame(w); ok {
		t.Error("LastFrame() after Forget() should report false")
	}
}

func TestWithTimingWindow(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		want   int
	}{
		{"positive", 30, 30},
		{"one", 1, 1},
		{"zero keeps default", 0, defaultTimingWindow},
		{"negative keeps default", -5, defaultTimingWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			WithTimingWindow(tt.frames)(&o)
			if o.timingWindow != tt.want {
				t.Errorf("timingWindow = %d, want %d", o.timingWindow, tt.want)
			}
		})
	}
}

// providerDevice adapts a headless device to the gpucontext.Device interface
// the way a host application's device would.
type providerDevice struct {
	*headless.Device
}

func (providerDevice) Poll(wait bool) {}
func (providerDevice) Destroy()       {}

// bareDevice implements gpucontext.Device but not the sketch gpu interfaces.
type bareDevice struct{}

func (bareDevice) Poll(wait bool) {}
func (bareDevice) Destroy()       {}

type fakeProvider struct {
	device gpucontext.Device
	queue  gpucontext.Queue
}

func (p *fakeProvider) Device() gpucontext.Device             { return p.device }
func (p *fakeProvider) Queue() gpucontext.Queue               { return p.queue }
func (p *fakeProvider) Adapter() gpucontext.Adapter           { return nil }
func (p *fakeProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }
func (p *fakeProvider) SurfaceFormat() gputypes.TextureFormat { return testFormat }

func TestNewFromProvider(t *testing.T) {
	t.Run("nil provider", func(t *testing.T) {
		if _, err := NewFromProvider(nil); !errors.Is(err, ErrNilProvider) {
			t.Errorf("NewFromProvider(nil) = %v, want ErrNilProvider", err)
		}
	})

	t.Run("incompatible device", func(t *testing.T) {
		p := &fakeProvider{device: bareDevice{}, queue: headless.NewQueue()}
		if _, err := NewFromProvider(p); !errors.Is(err, ErrIncompatibleProvider) {
			t.Errorf("NewFromProvider() = %v, want ErrIncompatibleProvider", err)
		}
	})

	t.Run("dispatches through provider handles", func(t *testing.T) {
		queue := headless.NewQueue()
		p := &fakeProvider{
			device: providerDevice{headless.NewDevice()},
			queue:  queue,
		}

		d, err := NewFromProvider(p)
		if err != nil {
			t.Fatalf("NewFromProvider() = %v", err)
		}
		if err := d.Dispatch(window.NewID(), testTarget(), markView("op")); err != nil {
			t.Fatalf("Dispatch() = %v", err)
		}
		if n := len(queue.Submitted()); n != 1 {
			t.Errorf("got %d submissions through provider queue, want 1", n)
		}
	})
}
