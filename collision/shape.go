// Package collision implements the collision core: shapes, the
// intersection engine, tilemap mask compilation, and the per-frame query
// facade. It has no dependency on ebitengine or donburi, just geometry
// and grid data only, so it can be shared by the game client, tools, and
// tests.
package collision

// Kind tags the variant a Shape carries. A Shape of KindNone never
// collides with anything and is never mutated by a test.
type Kind uint8

const (
	KindNone Kind = iota
	KindRectangle
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	default:
		return "none"
	}
}

// Shape is a collider shape in a shared 2D coordinate space (pixels at
// runtime, grid cells during mask compilation). For rectangles X/Y is the
// top-left corner; for circles it is the center.
//
// Colliding and MouseOver are frame flags: cleared by ResetFrame at the
// start of every simulation tick and set as a side effect of Intersects
// and ContainsPoint. Game logic and the debug overlay read them, never
// write them.
type Shape struct {
	Kind Kind

	X, Y float64

	// W and H are only meaningful for KindRectangle.
	W, H float64

	// Radius is only meaningful for KindCircle.
	Radius float64

	Colliding bool
	MouseOver bool
}

// NewRectangle returns a rectangle shape with top-left corner (x, y).
func NewRectangle(x, y, w, h float64) *Shape {
	return &Shape{Kind: KindRectangle, X: x, Y: y, W: w, H: h}
}

// NewCircle returns a circle shape centered on (x, y).
func NewCircle(x, y, radius float64) *Shape {
	return &Shape{Kind: KindCircle, X: x, Y: y, Radius: radius}
}

// NewNone returns a shape that never collides. Entities that want to opt
// out of collision temporarily can swap this in without nil-checking at
// every call site.
func NewNone() *Shape {
	return &Shape{Kind: KindNone}
}

// Right returns the right edge for rectangles.
func (s *Shape) Right() float64 { return s.X + s.W }

// Bottom returns the bottom edge for rectangles.
func (s *Shape) Bottom() float64 { return s.Y + s.H }
