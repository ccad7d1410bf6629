package resvg

import "math"

// Point represents a 2D point or vector in source space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// FromRect creates the matrix that maps the unit square onto r.
// This is the coordinate basis for objectBoundingBox units.
func FromRect(r Rect) Matrix {
	return Matrix{
		A: r.W, B: 0, C: r.X,
		D: 0, E: r.H, F: r.Y,
	}
}

// Multiply multiplies two matrices (m * other).
// The resulting matrix applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Compose is Multiply with the zero matrix standing in for the
// identity. Scene transforms use the zero value to mean "no transform".
func (m Matrix) Compose(other Matrix) Matrix {
	if other.IsZero() {
		return m
	}
	return m.Multiply(other)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsZero returns true for the zero value. Scene types leave transforms
// at their zero value to mean "no transform", so composition treats a
// zero matrix as the identity.
func (m Matrix) IsZero() bool {
	return m == Matrix{}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// ScaleX returns the effective scale factor along the transformed X axis.
func (m Matrix) ScaleX() float64 {
	return math.Hypot(m.A, m.D)
}

// ScaleY returns the effective scale factor along the transformed Y axis.
func (m Matrix) ScaleY() float64 {
	return math.Hypot(m.B, m.E)
}

// MaxScale returns the larger of the two axis scale factors.
// Used as the conservative stroke-width scale for non-uniform transforms.
func (m Matrix) MaxScale() float64 {
	return math.Max(m.ScaleX(), m.ScaleY())
}

// IsValid returns true if all components are finite.
func (m Matrix) IsValid() bool {
	return isFinite(m.A) && isFinite(m.B) && isFinite(m.C) &&
		isFinite(m.D) && isFinite(m.E) && isFinite(m.F)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
