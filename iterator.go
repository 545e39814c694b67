// SPDX-License-Identifier: MIT
// Package vec2d: stride-based rectangle iterators.
//
// Both iterator kinds walk a validated sub-rectangle of a Grid in row-major
// order (row y ascending, x ascending within a row) and emit one
// (Coord, element) pair per step. All validation happens once, in the
// factory; stepping is a two-state machine — advance within the row, or wrap
// to the next row by jumping a precomputed stride — with a single terminal
// condition (cursor row past rect.Max().Y). No step dereferences outside the
// buffer: the factory proved the rect fits the grid, and the borrow guard
// forbids any reshape while the iterator is alive.

package vec2d

import "iter"

// RectIter is a shared (read-only) iterator over a rectangular region of a
// Grid. Any number of shared iterators may be alive at once; they never
// conflict. Single-pass and not rewindable — request a fresh iterator to
// restart.
type RectIter[Elem any] struct {
	grid     *Grid[Elem]
	rect     Rect
	cur      Coord // current logical position
	offset   int   // flat index of cur, kept in lock-step
	stride   int   // extra elements to skip on row wrap
	released bool
}

// RectIterMut is the exclusive (mutating) counterpart of RectIter. While it
// is alive, every other access to the grid is refused with ErrBorrowed —
// that exclusivity is what makes the unchecked stepping sound.
type RectIterMut[Elem any] struct {
	grid     *Grid[Elem]
	rect     Rect
	cur      Coord
	offset   int
	stride   int
	released bool
}

// validateRegion performs the one-time factory checks shared by all
// iterator constructors: the rect's max must fit the grid (NewRect already
// guarantees min <= max with non-negative bounds, so min needs no check)
// and the start coordinate must lie inside the rect.
func (g *Grid[Elem]) validateRegion(r Rect, start Coord) error {
	if !g.size.ContainsCoord(r.max) {
		return ErrOutOfBounds
	}
	if !r.ContainsCoord(start) {
		return ErrOutOfBounds
	}

	return nil
}

// stride is the number of additional elements to skip, beyond one, when
// wrapping from the last column of the sub-rect to the first column of the
// next row: the columns of the full row that lie outside the sub-rect.
func (g *Grid[Elem]) stride(r Rect) int {
	return g.size.Width - r.Width() + 1
}

// Iter returns a shared iterator over the whole grid, starting at (0,0).
// Returns ErrEmptySize for a zero-area grid.
func (g *Grid[Elem]) Iter() (*RectIter[Elem], error) {
	r, err := g.size.Rect()
	if err != nil {
		return nil, err
	}

	return g.RectIterAt(r, r.min)
}

// RectIter returns a shared iterator over r, starting at r.Min().
func (g *Grid[Elem]) RectIter(r Rect) (*RectIter[Elem], error) {
	return g.RectIterAt(r, r.min)
}

// RectIterAt returns a shared iterator over r starting at an arbitrary
// coordinate inside r; cells before start in row-major order are skipped.
// Stage 1 (Guard): refuse with ErrBorrowed while an exclusive iterator is
// alive.
// Stage 2 (Validate): rect fits the grid, start lies in rect.
// Stage 3 (Finalize): register the shared borrow and precompute the stride.
// Complexity: O(1).
func (g *Grid[Elem]) RectIterAt(r Rect, start Coord) (*RectIter[Elem], error) {
	if g.writer {
		return nil, ErrBorrowed
	}
	if err := g.validateRegion(r, start); err != nil {
		return nil, err
	}
	g.readers++

	return &RectIter[Elem]{
		grid:   g,
		rect:   r,
		cur:    start,
		offset: start.Y*g.size.Width + start.X,
		stride: g.stride(r),
	}, nil
}

// IterMut returns an exclusive iterator over the whole grid, starting at
// (0,0). Returns ErrEmptySize for a zero-area grid.
func (g *Grid[Elem]) IterMut() (*RectIterMut[Elem], error) {
	r, err := g.size.Rect()
	if err != nil {
		return nil, err
	}

	return g.RectIterMutAt(r, r.min)
}

// RectIterMut returns an exclusive iterator over r, starting at r.Min().
func (g *Grid[Elem]) RectIterMut(r Rect) (*RectIterMut[Elem], error) {
	return g.RectIterMutAt(r, r.min)
}

// RectIterMutAt returns an exclusive iterator over r starting at an
// arbitrary coordinate inside r. Refused with ErrBorrowed while ANY other
// iterator is alive; otherwise validated exactly like RectIterAt.
// Complexity: O(1).
func (g *Grid[Elem]) RectIterMutAt(r Rect, start Coord) (*RectIterMut[Elem], error) {
	if g.writer || g.readers > 0 {
		return nil, ErrBorrowed
	}
	if err := g.validateRegion(r, start); err != nil {
		return nil, err
	}
	g.writer = true

	return &RectIterMut[Elem]{
		grid:   g,
		rect:   r,
		cur:    start,
		offset: start.Y*g.size.Width + start.X,
		stride: g.stride(r),
	}, nil
}

// Next produces the next (Coord, element) pair, or ok=false once the region
// is exhausted or the iterator closed. The first exhausted Next releases
// the shared borrow; a fully-driven iterator needs no Close.
// Complexity: O(1), no bounds check.
func (it *RectIter[Elem]) Next() (Coord, Elem, bool) {
	if it.released || it.cur.Y > it.rect.max.Y {
		it.Close()
		var zero Elem

		return Coord{}, zero, false
	}

	c, v := it.cur, it.grid.elems[it.offset]
	if it.cur.X < it.rect.max.X {
		it.cur.X++
		it.offset++
	} else {
		it.cur.X = it.rect.min.X
		it.cur.Y++
		it.offset += it.stride
	}

	return c, v, true
}

// Close releases the shared borrow. Idempotent; safe after exhaustion.
// After Close, Next reports exhaustion.
func (it *RectIter[Elem]) Close() {
	if !it.released {
		it.released = true
		it.grid.readers--
	}
}

// Next produces the next (Coord, pointer) pair, or ok=false once the region
// is exhausted or the iterator closed. The pointer is valid for writing: the
// exclusive borrow guarantees nothing else observes the grid until the
// iterator is released. The first exhausted Next releases the borrow.
// Complexity: O(1), no bounds check.
func (it *RectIterMut[Elem]) Next() (Coord, *Elem, bool) {
	if it.released || it.cur.Y > it.rect.max.Y {
		it.Close()

		return Coord{}, nil, false
	}

	c, p := it.cur, &it.grid.elems[it.offset]
	if it.cur.X < it.rect.max.X {
		it.cur.X++
		it.offset++
	} else {
		it.cur.X = it.rect.min.X
		it.cur.Y++
		it.offset += it.stride
	}

	return c, p, true
}

// Close releases the exclusive borrow. Idempotent; safe after exhaustion.
func (it *RectIterMut[Elem]) Close() {
	if !it.released {
		it.released = true
		it.grid.writer = false
	}
}

// All returns a read-only range-over-func view of the whole grid in
// row-major order, built on the same stride walk as Iter. The sequence is
// empty for a zero-area grid or while an exclusive iterator is alive.
func (g *Grid[Elem]) All() iter.Seq2[Coord, Elem] {
	return func(yield func(Coord, Elem) bool) {
		it, err := g.Iter()
		if err != nil {
			return
		}
		defer it.Close()
		for c, v, ok := it.Next(); ok; c, v, ok = it.Next() {
			if !yield(c, v) {
				return
			}
		}
	}
}
