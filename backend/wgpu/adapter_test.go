// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"strings"
	"testing"

	"github.com/gogpu/wgpu/hal"
)

// mockHALTextureView is a test double for hal.TextureView.
type mockHALTextureView struct {
	label     string
	destroyed bool
}

// Destroy implements hal.Resource.
func (v *mockHALTextureView) Destroy() { v.destroyed = true }

// NativeHandle implements hal.NativeHandle.
func (v *mockHALTextureView) NativeHandle() uintptr { return 0 }

// foreignBuffer implements gpu.CommandBuffer without coming from this package.
type foreignBuffer struct{}

func (foreignBuffer) Destroy() {}

func TestNewTextureView_WrapsHalView(t *testing.T) {
	halView := &mockHALTextureView{label: "surface-0"}

	v := NewTextureView(halView)
	if got := v.Hal(); got != hal.TextureView(halView) {
		t.Errorf("Hal() = %v, want the wrapped view", got)
	}

	// The surface owns the hal view; the adapter's Destroy must not
	// release it.
	v.Destroy()
	if halView.destroyed {
		t.Error("Destroy() released the surface-owned hal view")
	}
}

func TestQueue_SubmitRejectsForeignBuffer(t *testing.T) {
	q := NewQueue(nil)

	err := q.Submit(foreignBuffer{})
	if err == nil {
		t.Fatal("Submit() accepted a buffer from another backend")
	}
	if !strings.Contains(err.Error(), "foreign") {
		t.Errorf("Submit() error = %v, want foreign-buffer rejection", err)
	}
}

func TestSubmitAndWait_RejectsForeignBuffer(t *testing.T) {
	d := &Device{}
	q := NewQueue(nil)

	err := SubmitAndWait(d, q, 0, foreignBuffer{})
	if err == nil {
		t.Fatal("SubmitAndWait() accepted a buffer from another backend")
	}
	if !strings.Contains(err.Error(), "foreign") {
		t.Errorf("SubmitAndWait() error = %v, want foreign-buffer rejection", err)
	}
}

func TestEncoder_FinishTwiceErrors(t *testing.T) {
	e := &Encoder{label: "frame-0", finished: true}

	if _, err := e.Finish(); err == nil {
		t.Error("Finish() on a finished encoder did not error")
	}
}
