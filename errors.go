// SPDX-License-Identifier: MIT
// Package vec2d: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user-triggered error conditions.

package vec2d

import "errors"

// Every message is prefixed with "vec2d: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap at the outer boundary — callers
// still match via errors.Is.

var (
	// ErrBadSize is returned when a Size with negative width or height
	// reaches a constructor or Resize.
	ErrBadSize = errors.New("vec2d: width and height must be non-negative")

	// ErrEmptySize is returned by Size.Rect (and the whole-grid iterator
	// shorthands built on it) for a zero-area size: the spanning rectangle
	// (0,0)..(w-1,h-1) does not exist when w or h is zero. Callers must
	// special-case empty grids instead.
	ErrEmptySize = errors.New("vec2d: zero-area size has no spanning rect")

	// ErrBadRect is returned by NewRect when min exceeds max on either axis
	// or any bound is negative. No partial Rect is produced.
	ErrBadRect = errors.New("vec2d: rect bounds must be non-negative with min <= max")

	// ErrShapeMismatch is returned by FromSlice when the supplied element
	// count does not equal size.Area().
	ErrShapeMismatch = errors.New("vec2d: element count does not match size area")

	// ErrOutOfBounds indicates a coordinate or rectangle outside the valid
	// range: Get/GetPtr/Set off the grid, a rect that does not fit the
	// grid, or an iterator start coordinate outside its rect.
	ErrOutOfBounds = errors.New("vec2d: coordinate out of bounds")

	// ErrBorrowed indicates the operation conflicts with an active
	// iterator: a second exclusive iterator, a shared iterator or read
	// while an exclusive one is alive, or Resize/GetPtr/Set while any
	// iterator is alive.
	ErrBorrowed = errors.New("vec2d: grid is borrowed by an active iterator")
)
