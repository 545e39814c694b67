// Package vec2d_test contains unit tests for the Coord and Size value types.
package vec2d_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/vec2d"
)

// TestNewCoord verifies plain construction.
func TestNewCoord(t *testing.T) {
	c := vec2d.NewCoord(1, 2)
	if c.X != 1 || c.Y != 2 {
		t.Errorf("NewCoord(1,2) = (%d,%d); want (1,2)", c.X, c.Y)
	}
}

// TestSizeArea checks Area across ordinary and degenerate sizes.
func TestSizeArea(t *testing.T) {
	cases := []struct {
		w, h, want int
	}{
		{3, 4, 12},
		{1, 1, 1},
		{0, 5, 0},
		{7, 0, 0},
	}
	for _, tc := range cases {
		if got := vec2d.NewSize(tc.w, tc.h).Area(); got != tc.want {
			t.Errorf("Size{%d,%d}.Area() = %d; want %d", tc.w, tc.h, got, tc.want)
		}
	}
}

// TestSizeContainsCoord checks the truth table 0 <= x < w && 0 <= y < h,
// including negative coordinates.
func TestSizeContainsCoord(t *testing.T) {
	s := vec2d.NewSize(3, 2)

	inside := []vec2d.Coord{
		vec2d.NewCoord(0, 0),
		vec2d.NewCoord(2, 1),
		vec2d.NewCoord(1, 1),
	}
	for _, c := range inside {
		if !s.ContainsCoord(c) {
			t.Errorf("ContainsCoord(%d,%d) = false; want true", c.X, c.Y)
		}
	}

	outside := []vec2d.Coord{
		vec2d.NewCoord(3, 0),
		vec2d.NewCoord(0, 2),
		vec2d.NewCoord(-1, 0),
		vec2d.NewCoord(0, -1),
		vec2d.NewCoord(3, 2),
	}
	for _, c := range outside {
		if s.ContainsCoord(c) {
			t.Errorf("ContainsCoord(%d,%d) = true; want false", c.X, c.Y)
		}
	}
}

// TestSizeRect verifies the spanning rect of a positive size and the
// ErrEmptySize rejections.
func TestSizeRect(t *testing.T) {
	r, err := vec2d.NewSize(4, 3).Rect()
	if err != nil {
		t.Fatalf("Size{4,3}.Rect() error: %v", err)
	}
	if r.Min() != vec2d.NewCoord(0, 0) || r.Max() != vec2d.NewCoord(3, 2) {
		t.Errorf("spanning rect = %v..%v; want (0,0)..(3,2)", r.Min(), r.Max())
	}

	empty := []vec2d.Size{
		vec2d.NewSize(0, 3),
		vec2d.NewSize(3, 0),
		vec2d.NewSize(0, 0),
		vec2d.NewSize(-1, 3),
	}
	for _, s := range empty {
		if _, err = s.Rect(); !errors.Is(err, vec2d.ErrEmptySize) {
			t.Errorf("Size{%d,%d}.Rect() error = %v; want ErrEmptySize", s.Width, s.Height, err)
		}
	}
}
