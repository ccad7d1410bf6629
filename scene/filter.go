package scene

import "github.com/nyurik/resvg"

// Filter describes one filter in a group's filter chain.
// The region rectangle has already been resolved from percentages by the
// upstream parser; Units tells how to interpret it here.
type Filter struct {
	// ID is the source document identifier, used in diagnostics.
	ID string

	// Units is the coordinate basis of Rect.
	Units Units

	// PrimitiveUnits is the coordinate basis of primitive parameters.
	PrimitiveUnits Units

	// Rect is the region the filter is allowed to paint into.
	Rect resvg.Rect

	// Primitives is the ordered effect list.
	Primitives []FilterPrimitive
}

// FilterPrimitive is a single filter effect.
// This is a sealed interface - only types in this package implement it.
type FilterPrimitive interface {
	primitiveMarker()
}

// GaussianBlur blurs the input.
type GaussianBlur struct {
	StdDevX, StdDevY float64
}

func (GaussianBlur) primitiveMarker() {}

// Offset shifts the input.
type Offset struct {
	DX, DY float64
}

func (Offset) primitiveMarker() {}

// Flood fills the filter region with a solid color.
// Floods can manufacture visible output even when the filtered subtree
// itself produced nothing.
type Flood struct {
	Color   resvg.RGBA
	Opacity float64
}

func (Flood) primitiveMarker() {}

// DropShadow draws a blurred, offset, tinted copy below the input.
type DropShadow struct {
	DX, DY           float64
	StdDevX, StdDevY float64
	Color            resvg.RGBA
	Opacity          float64
}

func (DropShadow) primitiveMarker() {}

// ColorMatrix multiplies pixel colors by a 5x4 matrix.
type ColorMatrix struct {
	// Values is the matrix in row-major order: 4 rows of
	// [r g b a offset].
	Values [20]float64
}

func (ColorMatrix) primitiveMarker() {}
