package geom

import "math"

// Epsilon guards divisions by near-zero lengths. Vectors shorter than
// this are treated as having no direction.
const Epsilon = 1e-10

// Point2D is a point on the floor plane (X-Z).
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Z float64 `json:"z" yaml:"z"`
}

// DistanceTo returns the Euclidean distance to other.
func (p Point2D) DistanceTo(other Point2D) float64 {
	dx := p.X - other.X
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Lerp linearly interpolates between p and other: p + (other-p)*t.
func (p Point2D) Lerp(other Point2D, t float64) Point2D {
	return Point2D{
		X: p.X + (other.X-p.X)*t,
		Z: p.Z + (other.Z-p.Z)*t,
	}
}

// Add returns p + other componentwise.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Z: p.Z + other.Z}
}

// Sub returns p - other componentwise.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Z: p.Z - other.Z}
}

// Scale returns p scaled by s.
func (p Point2D) Scale(s float64) Point2D {
	return Point2D{X: p.X * s, Z: p.Z * s}
}

// Point3D is a point in 3D space (Y up).
type Point3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// DistanceTo returns the Euclidean distance to other.
func (p Point3D) DistanceTo(other Point3D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Lerp linearly interpolates between p and other: p + (other-p)*t.
func (p Point3D) Lerp(other Point3D, t float64) Point3D {
	return Point3D{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
		Z: p.Z + (other.Z-p.Z)*t,
	}
}

// Vector2D is a direction on the floor plane.
type Vector2D struct {
	X float64 `json:"x" yaml:"x"`
	Z float64 `json:"z" yaml:"z"`
}

// Length returns the vector magnitude.
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

// Normalized returns the unit vector in the direction of v.
// Vectors shorter than Epsilon normalize to the zero vector.
func (v Vector2D) Normalized() Vector2D {
	ln := v.Length()
	if ln < Epsilon {
		return Vector2D{}
	}
	return Vector2D{X: v.X / ln, Z: v.Z / ln}
}

// Perpendicular returns v rotated 90 degrees counterclockwise.
func (v Vector2D) Perpendicular() Vector2D {
	return Vector2D{X: -v.Z, Z: v.X}
}

// Dot returns the dot product of v and other.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Z*other.Z
}

// AngleTo returns the angle between v and other in radians.
//
// The cosine is clamped to [-1, 1] before acos so accumulated rounding
// can never produce NaN, and Epsilon pads the length product so a
// degenerate vector yields an angle instead of a division by zero.
func (v Vector2D) AngleTo(other Vector2D) float64 {
	d := v.Dot(other) / (v.Length()*other.Length() + Epsilon)
	d = math.Max(-1.0, math.Min(1.0, d))
	return math.Acos(d)
}

// Scale returns v scaled by s.
func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{X: v.X * s, Z: v.Z * s}
}

// Direction returns the vector from start to end.
func Direction(start, end Point2D) Vector2D {
	return Vector2D{X: end.X - start.X, Z: end.Z - start.Z}
}
