package fp

// Vector2 is a 2D fixed-point vector. Zero value is the origin.
type Vector2 struct {
	X, Y Scalar
}

// Vec2 is a convenience constructor.
func Vec2(x, y Scalar) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns a + b.
func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{X: Add(a.X, b.X), Y: Add(a.Y, b.Y)}
}

// Sub returns a - b.
func (a Vector2) Sub(b Vector2) Vector2 {
	return Vector2{X: Sub(a.X, b.X), Y: Sub(a.Y, b.Y)}
}

// Scale returns v scaled by the fixed-point factor k.
func (v Vector2) Scale(k Scalar) Vector2 {
	return Vector2{X: Mul(v.X, k), Y: Mul(v.Y, k)}
}

// DistanceSq returns the squared distance between a and b. Reach
// checks use this directly to avoid a square root.
func DistanceSq(a, b Vector2) Scalar {
	d := a.Sub(b)
	return Add(Mul(d.X, d.X), Mul(d.Y, d.Y))
}

// MagnitudeSq returns the squared magnitude of v.
func (v Vector2) MagnitudeSq() Scalar {
	return Add(Mul(v.X, v.X), Mul(v.Y, v.Y))
}

// Magnitude returns the magnitude of v via the Sqrt float bridge.
func (v Vector2) Magnitude() Scalar {
	return Sqrt(v.MagnitudeSq())
}

// FromHeading returns a unit-magnitude vector for the given heading in
// fixed-point degrees, where 0 degrees is +X and 90 degrees is +Y.
func FromHeading(headingDeg Scalar) Vector2 {
	return Vector2{X: CosDeg(headingDeg), Y: SinDeg(headingDeg)}
}
