// Package vec2d core value types: Coord and Size.
package vec2d

// Coord is a 2D position. Plain value type, no validation on construction;
// coordinates are checked where they are consumed.
type Coord struct {
	X, Y int
}

// NewCoord returns the coordinate (x, y).
// Complexity: O(1).
func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Size is a width/height pair describing a rectangular extent.
type Size struct {
	Width, Height int
}

// NewSize returns the size (width, height). Like NewCoord it performs no
// validation; consumers of a Size reject negative dimensions.
// Complexity: O(1).
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Area returns width * height.
// Complexity: O(1).
func (s Size) Area() int {
	return s.Width * s.Height
}

// ContainsCoord reports whether c fits within s, i.e. 0 <= c.X < Width and
// 0 <= c.Y < Height.
// Complexity: O(1).
func (s Size) ContainsCoord(c Coord) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// Rect returns the rectangle spanning the whole size: min (0,0), max
// (Width-1, Height-1). Returns ErrEmptySize if either dimension is not
// positive, since the inclusive max would underflow.
// Complexity: O(1).
func (s Size) Rect() (Rect, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return Rect{}, ErrEmptySize
	}

	return Rect{min: Coord{0, 0}, max: Coord{s.Width - 1, s.Height - 1}}, nil
}
