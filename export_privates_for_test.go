// SPDX-License-Identifier: MIT

package vec2d

// Test-Bridge (White-Box) for the Grid internals.
//
// Purpose:
//   - Expose the private backing buffer and borrow-guard state to
//     vec2d_test ONLY, so tests can assert flat-index layout and borrow
//     accounting without widening the prod API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds while
//     still letting the external test package reach the exported wrappers.

// ExportedElems exposes the backing buffer for white-box layout asserts.
// Read-only by convention; tests must not mutate through it.
func (g *Grid[Elem]) ExportedElems() []Elem {
	return g.elems
}

// ExportedBorrowState exposes the borrow guard counters.
func (g *Grid[Elem]) ExportedBorrowState() (readers int, writer bool) {
	return g.readers, g.writer
}
