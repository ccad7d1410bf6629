package render

import "github.com/nyurik/resvg"

// Rect is a device-space rectangle in single precision, matching the
// precision of the downstream pixel buffer.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// IsValid reports whether the rectangle has a positive area.
func (r Rect) IsValid() bool {
	return r.MaxX > r.MinX && r.MaxY > r.MinY
}

// RectFromBBox narrows a double-precision bounding box to a device
// rectangle. The narrowing here is the single deliberate precision
// loss of the pass; all bounding-box arithmetic stays in float64.
func RectFromBBox(b resvg.BBox) Rect {
	return Rect{
		MinX: float32(b.MinX),
		MinY: float32(b.MinY),
		MaxX: float32(b.MaxX),
		MaxY: float32(b.MaxY),
	}
}

// Transform is a device-space affine transform in single precision.
// Output geometry never carries one; it exists only for paints, whose
// gradient/pattern coordinate systems need a device mapping.
type Transform struct {
	A, B, C float32
	D, E, F float32
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return Transform{A: 1, E: 1}
}

// TransformFromMatrix narrows a source-space matrix to device precision.
func TransformFromMatrix(m resvg.Matrix) Transform {
	return Transform{
		A: float32(m.A), B: float32(m.B), C: float32(m.C),
		D: float32(m.D), E: float32(m.E), F: float32(m.F),
	}
}
