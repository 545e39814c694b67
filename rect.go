package vec2d

// Rect is an axis-aligned rectangle defined by inclusive minimum and maximum
// coordinates. The bounds are unexported and set only by NewRect (or
// Size.Rect), so a populated Rect always satisfies min <= max on both axes
// with non-negative bounds — consumers rely on that and never re-validate.
type Rect struct {
	min Coord // minimum coordinate (inclusive)
	max Coord // maximum coordinate (inclusive)
}

// NewRect builds a rectangle from inclusive min and max coordinates.
// Stage 1 (Validate): bounds non-negative, min <= max on both axes.
// Stage 2 (Finalize): return the populated Rect or ErrBadRect.
// Complexity: O(1).
func NewRect(min, max Coord) (Rect, error) {
	if min.X < 0 || min.Y < 0 || min.X > max.X || min.Y > max.Y {
		return Rect{}, ErrBadRect
	}

	return Rect{min: min, max: max}, nil
}

// Min returns the inclusive minimum coordinate.
func (r Rect) Min() Coord {
	return r.min
}

// Max returns the inclusive maximum coordinate.
func (r Rect) Max() Coord {
	return r.max
}

// Width returns max.X - min.X + 1.
// Complexity: O(1).
func (r Rect) Width() int {
	return r.max.X - r.min.X + 1
}

// Height returns max.Y - min.Y + 1.
// Complexity: O(1).
func (r Rect) Height() int {
	return r.max.Y - r.min.Y + 1
}

// Size returns the rectangle's extent as a Size.
// Complexity: O(1).
func (r Rect) Size() Size {
	return NewSize(r.Width(), r.Height())
}

// ContainsCoord reports whether c lies between min and max inclusive on
// both axes.
// Complexity: O(1).
func (r Rect) ContainsCoord(c Coord) bool {
	return c.X >= r.min.X && c.X <= r.max.X &&
		c.Y >= r.min.Y && c.Y <= r.max.Y
}

// ContainsRect reports whether other lies entirely within r.
// Complexity: O(1).
func (r Rect) ContainsRect(other Rect) bool {
	return r.ContainsCoord(other.min) && r.ContainsCoord(other.max)
}
