package collision

import "math"

// Overlaps reports whether two shapes overlap. It is pure: no flags are
// touched, so it can be used for speculative queries (and tested in
// isolation from the flag protocol).
//
// Boundary semantics differ by pair and are load-bearing for gameplay:
// rectangle/rectangle and circle/circle are strict (touching edges do not
// overlap), while rectangle/circle is non-strict (a circle exactly
// touching a rectangle counts). Downstream content depends on the exact
// boundaries, so do not "fix" the asymmetry.
func Overlaps(a, b *Shape) bool {
	if a == nil || b == nil || a.Kind == KindNone || b.Kind == KindNone {
		return false
	}
	switch {
	case a.Kind == KindRectangle && b.Kind == KindRectangle:
		return rectsOverlap(a, b)
	case a.Kind == KindCircle && b.Kind == KindCircle:
		return circlesOverlap(a, b)
	case a.Kind == KindRectangle:
		return rectCircleOverlap(a, b)
	default:
		return rectCircleOverlap(b, a)
	}
}

func rectsOverlap(a, b *Shape) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func circlesOverlap(a, b *Shape) bool {
	return math.Hypot(b.X-a.X, b.Y-a.Y) < a.Radius+b.Radius
}

// rectCircleOverlap clamps the circle center to the rectangle bounds to
// find the nearest point on or in the rectangle, then compares that
// distance against the radius (non-strict).
func rectCircleOverlap(r, c *Shape) bool {
	nx := clamp(c.X, r.X, r.X+r.W)
	ny := clamp(c.Y, r.Y, r.Y+r.H)
	return math.Hypot(c.X-nx, c.Y-ny) <= c.Radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PointInside reports whether the point (px, py) is inside the shape.
// Rectangles use half-open bounds (a point on the right or bottom edge is
// outside); circles are non-strict. Pure, like Overlaps.
func PointInside(s *Shape, px, py float64) bool {
	if s == nil {
		return false
	}
	switch s.Kind {
	case KindRectangle:
		return px >= s.X && py >= s.Y && px < s.X+s.W && py < s.Y+s.H
	case KindCircle:
		return math.Hypot(px-s.X, py-s.Y) <= s.Radius
	default:
		return false
	}
}

// Intersects tests two shapes and, on overlap, marks both as colliding
// for the current frame. This flag write is its only side effect. Shapes
// of KindNone never match and are never mutated.
func Intersects(a, b *Shape) bool {
	if !Overlaps(a, b) {
		return false
	}
	a.Colliding = true
	b.Colliding = true
	return true
}

// ContainsPoint tests a point against a shape and stores the result in
// the shape's MouseOver flag. A KindNone shape returns false without
// mutating anything.
func ContainsPoint(s *Shape, px, py float64) bool {
	if s == nil || s.Kind == KindNone {
		return false
	}
	s.MouseOver = PointInside(s, px, py)
	return s.MouseOver
}
