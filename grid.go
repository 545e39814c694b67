// SPDX-License-Identifier: MIT
// Package vec2d: Grid is the flat-buffer 2D container. It owns a contiguous
// []Elem in row-major order together with its Size, and carries the runtime
// borrow guard that lets the rectangle iterators skip per-step bounds checks.

package vec2d

import "fmt"

// gridErrorf wraps an underlying sentinel with Grid method context.
func gridErrorf(method string, c Coord, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, c.X, c.Y, err)
}

// Grid is a fixed-shape 2D container of Elem values. The element at (x, y)
// lives at flat index y*size.Width + x, and len(elems) == size.Area() holds
// for the grid's entire lifetime.
//
// readers and writer form the borrow guard: readers counts live shared
// iterators, writer marks a live exclusive iterator. The guard is checked
// once per operation; Grid is not safe for concurrent use.
type Grid[Elem any] struct {
	elems []Elem
	size  Size

	readers int
	writer  bool
}

// New creates a grid of the given size with all elements zero-valued.
// Zero-area sizes are legal and yield an empty grid; negative dimensions
// are rejected with ErrBadSize.
// Complexity: O(area) time and memory.
func New[Elem any](size Size) (*Grid[Elem], error) {
	if size.Width < 0 || size.Height < 0 {
		return nil, ErrBadSize
	}

	return &Grid[Elem]{elems: make([]Elem, size.Area()), size: size}, nil
}

// FromExample creates a grid of the given size with every element set to a
// copy of example.
// Complexity: O(area) time and memory.
func FromExample[Elem any](size Size, example Elem) (*Grid[Elem], error) {
	g, err := New[Elem](size)
	if err != nil {
		return nil, err
	}
	for i := range g.elems {
		g.elems[i] = example
	}

	return g, nil
}

// FromSlice creates a grid that takes ownership of elems, interpreted in
// row-major order. Returns ErrBadSize on negative dimensions and
// ErrShapeMismatch unless len(elems) == size.Area(); on error the caller's
// slice is left untouched. On success the caller must not retain elems.
// Complexity: O(1).
func FromSlice[Elem any](size Size, elems []Elem) (*Grid[Elem], error) {
	if size.Width < 0 || size.Height < 0 {
		return nil, ErrBadSize
	}
	if len(elems) != size.Area() {
		return nil, ErrShapeMismatch
	}

	return &Grid[Elem]{elems: elems, size: size}, nil
}

// Size returns the grid's extent.
// Complexity: O(1).
func (g *Grid[Elem]) Size() Size {
	return g.size
}

// Rect returns the rectangle spanning the whole grid, or ErrEmptySize for a
// zero-area grid.
// Complexity: O(1).
func (g *Grid[Elem]) Rect() (Rect, error) {
	return g.size.Rect()
}

// indexOf computes the flat index for c or returns ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid[Elem]) indexOf(c Coord) (int, error) {
	if !g.size.ContainsCoord(c) {
		return 0, ErrOutOfBounds
	}

	return c.Y*g.size.Width + c.X, nil
}

// Get returns the element at c. Fails with ErrOutOfBounds if c is off the
// grid, or ErrBorrowed while an exclusive iterator is alive.
// Complexity: O(1).
func (g *Grid[Elem]) Get(c Coord) (Elem, error) {
	var zero Elem
	if g.writer {
		return zero, gridErrorf("Get", c, ErrBorrowed)
	}
	idx, err := g.indexOf(c)
	if err != nil {
		return zero, gridErrorf("Get", c, err)
	}

	return g.elems[idx], nil
}

// GetPtr returns a pointer to the element at c. A pointer is a mutable
// borrow, so GetPtr additionally fails with ErrBorrowed while ANY iterator
// is alive. The pointer stays valid until the next Resize.
// Complexity: O(1).
func (g *Grid[Elem]) GetPtr(c Coord) (*Elem, error) {
	if g.writer || g.readers > 0 {
		return nil, gridErrorf("GetPtr", c, ErrBorrowed)
	}
	idx, err := g.indexOf(c)
	if err != nil {
		return nil, gridErrorf("GetPtr", c, err)
	}

	return &g.elems[idx], nil
}

// Set assigns v at c, under the same borrow rule as GetPtr.
// Complexity: O(1).
func (g *Grid[Elem]) Set(c Coord, v Elem) error {
	if g.writer || g.readers > 0 {
		return gridErrorf("Set", c, ErrBorrowed)
	}
	idx, err := g.indexOf(c)
	if err != nil {
		return gridErrorf("Set", c, err)
	}
	g.elems[idx] = v

	return nil
}

// Resize reshapes the grid to newSize. Elements keep their position by FLAT
// index, not by coordinate: shrinking truncates the tail of the buffer,
// growing appends copies of fill. Size and buffer change together — there is
// no observable state where they disagree. Refused with ErrBorrowed while
// any iterator is alive, since iterators precompute offsets against the
// current shape.
// Complexity: O(area).
func (g *Grid[Elem]) Resize(newSize Size, fill Elem) error {
	if g.writer || g.readers > 0 {
		return ErrBorrowed
	}
	if newSize.Width < 0 || newSize.Height < 0 {
		return ErrBadSize
	}

	area := newSize.Area()
	switch {
	case area < len(g.elems):
		g.elems = g.elems[:area:area]
	case area > len(g.elems):
		grown := make([]Elem, area)
		n := copy(grown, g.elems)
		for i := n; i < area; i++ {
			grown[i] = fill
		}
		g.elems = grown
	}
	g.size = newSize

	return nil
}

// Clone returns a deep copy of the grid. The clone starts with no active
// borrows regardless of the receiver's state.
// Complexity: O(area) time and memory.
func (g *Grid[Elem]) Clone() *Grid[Elem] {
	elems := make([]Elem, len(g.elems))
	copy(elems, g.elems)

	return &Grid[Elem]{elems: elems, size: g.size}
}

// Fill writes v to every cell of r through an exclusive iterator; factory
// errors (rect off the grid, active borrow) propagate unchanged.
// Complexity: O(r.area).
func (g *Grid[Elem]) Fill(r Rect, v Elem) error {
	it, err := g.RectIterMut(r)
	if err != nil {
		return err
	}
	defer it.Close()
	for _, p, ok := it.Next(); ok; _, p, ok = it.Next() {
		*p = v
	}

	return nil
}

// String implements fmt.Stringer for easy debugging: one bracketed line per
// row, elements formatted with %v.
// Complexity: O(area).
func (g *Grid[Elem]) String() string {
	var s string
	var x, y int
	for y = 0; y < g.size.Height; y++ {
		s += "["
		for x = 0; x < g.size.Width; x++ {
			s += fmt.Sprintf("%v", g.elems[y*g.size.Width+x])
			if x < g.size.Width-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
