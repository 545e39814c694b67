// Package vec2d is a fixed-shape 2D container backed by a flat, row-major
// buffer, addressed by (x, y) coordinates, with stride-based iterators over
// arbitrary axis-aligned sub-rectangles.
//
// What:
//
//   - Coord, Size, Rect: small value types validated once, at construction.
//   - Grid[Elem]: owns a contiguous []Elem of length Size.Area(); the element
//     at (x, y) lives at flat index y*Width + x.
//   - RectIter / RectIterMut: lazy row-major walks over a validated
//     sub-rectangle. Bounds are checked once at iterator construction; each
//     step is a cursor increment or a precomputed stride jump, never a
//     bounds check.
//
// Why:
//
//   - Game boards, simulation grids, image tiles: anything rectangular that
//     wants cheap windowed traversal over a cache-friendly flat buffer.
//
// Complexity:
//
//   - Get/Set/GetPtr: O(1).
//   - Iterator construction: O(1); each Next: O(1).
//   - New/FromExample/Clone/Resize: O(area).
//
// Safety:
//
//	The iterators skip per-step bounds checks because the Grid cannot change
//	shape underneath them. A runtime borrow guard enforces this: any number
//	of shared (read-only) iterators may be alive at once, but an exclusive
//	(mutating) iterator excludes every other access, and Resize/GetPtr/Set
//	are refused while any iterator is alive. The guard is checked once, when
//	an iterator is created, and released when the iterator is exhausted or
//	closed.
//
// Errors:
//
//   - ErrBadSize: negative width or height.
//   - ErrEmptySize: a spanning rectangle was requested for a zero-area size.
//   - ErrBadRect: rect bounds are negative or min exceeds max.
//   - ErrShapeMismatch: supplied element count does not match Size.Area().
//   - ErrOutOfBounds: coordinate or rectangle outside the valid range.
//   - ErrBorrowed: the operation conflicts with an active iterator.
//
// All failures are reported as sentinel errors matched via errors.Is; the
// package never panics on user input.
package vec2d
