package math

// Bounds is an axis-aligned 2D bounding box.
type Bounds struct {
	Min, Max Vec2
}

// BoundsOf returns the bounding box of the given points. The zero Bounds
// is returned for an empty slice.
func BoundsOf(points []Vec2) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.Expand(p)
	}
	return b
}

// Expand returns the bounds grown to include p.
func (b Bounds) Expand(p Vec2) Bounds {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	return b
}

// Contains reports whether p lies inside the bounds (inclusive).
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Vec2 {
	return Vec2{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Size returns the width and height of the bounds.
func (b Bounds) Size() Vec2 {
	return b.Max.Sub(b.Min)
}
