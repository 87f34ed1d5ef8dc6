// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(10, 20, 300, 400)
	if r.X != 10 || r.Y != 20 || r.W != 300 || r.H != 400 {
		t.Errorf("NewRect(10, 20, 300, 400) = %+v", r)
	}

	if got := RectFromSize(800, 600); got != NewRect(0, 0, 800, 600) {
		t.Errorf("RectFromSize(800, 600) = %+v, want origin (0,0)", got)
	}
}

func TestRect_Accessors(t *testing.T) {
	r := NewRect(10, 20, 300, 400)

	if got := r.Origin(); got != Pt(10, 20) {
		t.Errorf("Origin() = %+v, want (10, 20)", got)
	}
	w, h := r.Size()
	if w != 300 || h != 400 {
		t.Errorf("Size() = (%v, %v), want (300, 400)", w, h)
	}
	if got := r.Center(); got != Pt(160, 220) {
		t.Errorf("Center() = %+v, want (160, 220)", got)
	}
}

func TestRect_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"zero value", Rect{}, true},
		{"normal", NewRect(0, 0, 800, 600), false},
		{"zero width", NewRect(0, 0, 0, 600), true},
		{"zero height", NewRect(0, 0, 800, 0), true},
		{"negative width", NewRect(0, 0, -1, 600), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 100, 50)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(60, 35), true},
		{"top-left corner inside", Pt(10, 10), true},
		{"right edge outside", Pt(110, 35), false},
		{"bottom edge outside", Pt(60, 60), false},
		{"left of rect", Pt(9, 35), false},
		{"above rect", Pt(60, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
