package geom

// Small geometry helpers shared by the level builder and the physics
// calculator. Everything operates on normalized [0,1] coordinates.

// Rect is an axis-aligned rectangle in normalized image coordinates.
// X/Y is the top-left corner; screen-space, so smaller Y is higher.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Top returns the y of the rectangle's upper edge (its landing surface).
func (r Rect) Top() float64 { return r.Y }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// InUnitBounds reports whether the rectangle lies fully inside [0,1]x[0,1].
func (r Rect) InUnitBounds() bool {
	return r.X >= 0 && r.Y >= 0 && r.W >= 0 && r.H >= 0 &&
		r.X+r.W <= 1 && r.Y+r.H <= 1
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to the inclusive range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }
