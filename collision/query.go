package collision

// Collider is the live collision state attached to a movable entity: one
// shape plus a fixed offset from the entity's logical origin to the
// shape's origin. The shape position is always re-derived through
// SetPosition. There is no other mutation path, so it can never drift
// out of sync with the entity.
type Collider struct {
	Shape *Shape

	OffsetX, OffsetY float64
}

// NewCollider wraps a shape with a fixed origin offset.
func NewCollider(shape *Shape, offsetX, offsetY float64) *Collider {
	return &Collider{Shape: shape, OffsetX: offsetX, OffsetY: offsetY}
}

// SetPosition re-derives the shape origin from the entity origin. The
// entity's movement code must call this on every position change, before
// any query in the frame.
func (c *Collider) SetPosition(x, y float64) {
	if c.Shape == nil {
		return
	}
	c.Shape.X = x + c.OffsetX
	c.Shape.Y = y + c.OffsetY
}

// Overlap describes one mask rectangle an entity overlapped, by its
// pixel edges. Movement code uses the edges to clamp or push back.
type Overlap struct {
	Left, Right, Top, Bottom float64
}

// ResetFrame clears the frame flags on every live collider and every
// compiled mask rectangle. It must run exactly once per simulation tick,
// before any query; running it again with no intervening queries is a
// no-op. A nil mask set (no active tilemap) is fine.
func ResetFrame(colliders []*Collider, masks *MaskSet) {
	for _, c := range colliders {
		if c == nil || c.Shape == nil {
			continue
		}
		c.Shape.Colliding = false
		c.Shape.MouseOver = false
	}
	for _, r := range masks.All() {
		r.Colliding = false
		r.MouseOver = false
	}
}

// TestEntities tests two entity colliders against each other, marking
// both shapes colliding on overlap.
func TestEntities(a, b *Collider) bool {
	if a == nil || b == nil {
		return false
	}
	return Intersects(a.Shape, b.Shape)
}

// TestAgainstBehavior tests an entity against every mask rectangle of
// one behavior code and returns the edges of each rectangle hit.
//
// The result is an empty slice both when nothing overlapped and when no
// tilemap is active (masks nil or code absent); callers that need to
// tell those apart must check the mask set themselves.
func TestAgainstBehavior(c *Collider, code int, masks *MaskSet) []Overlap {
	hits := []Overlap{}
	if c == nil {
		return hits
	}
	for _, r := range masks.Masks(code) {
		if Intersects(c.Shape, r) {
			hits = append(hits, Overlap{Left: r.X, Right: r.X + r.W, Top: r.Y, Bottom: r.Y + r.H})
		}
	}
	return hits
}

// TestPoint tests a point (typically the mouse cursor) against an entity
// collider, updating the shape's MouseOver flag.
func TestPoint(c *Collider, px, py float64) bool {
	if c == nil {
		return false
	}
	return ContainsPoint(c.Shape, px, py)
}
