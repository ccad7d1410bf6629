package scene

import "github.com/nyurik/resvg"

// Units selects the coordinate basis for percentage-relative values.
type Units uint8

// Unit system constants.
const (
	// UserSpaceOnUse resolves coordinates in the user coordinate system.
	UserSpaceOnUse Units = iota
	// ObjectBoundingBox resolves coordinates against the bounding box of
	// the element the value applies to, with (0,0)-(1,1) spanning the box.
	ObjectBoundingBox
)

// String returns a human-readable name for the unit system.
func (u Units) String() string {
	switch u {
	case UserSpaceOnUse:
		return "UserSpaceOnUse"
	case ObjectBoundingBox:
		return "ObjectBoundingBox"
	default:
		return unknownStr
	}
}

// SpreadMethod defines how a gradient extends beyond its stops.
type SpreadMethod uint8

// Spread method constants.
const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

// FillRule determines how self-intersecting paths are filled.
type FillRule uint8

// Fill rule constants.
const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// LineCap defines the shape drawn at open path endpoints.
type LineCap uint8

// Line cap constants.
const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin defines the shape drawn at path corners.
type LineJoin uint8

// Line join constants.
const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Paint describes what a fill or stroke paints with.
// This is a sealed interface - only types in this package implement it.
type Paint interface {
	paintMarker()
}

// Color is a solid paint.
type Color struct {
	Value resvg.RGBA
}

func (Color) paintMarker() {}

// Stop is a single gradient color stop.
type Stop struct {
	// Offset is the stop position along the gradient vector, in [0, 1].
	Offset float64
	// Color is the stop color.
	Color resvg.RGBA
	// Opacity is multiplied into the stop color's alpha.
	Opacity float64
}

// LinearGradient is a linear gradient paint server reference.
type LinearGradient struct {
	X1, Y1 float64
	X2, Y2 float64

	// Transform is the gradient's own transform (gradientTransform).
	// The zero value means no transform.
	Transform resvg.Matrix
	// Units selects the coordinate basis for the gradient vector.
	Units  Units
	Spread SpreadMethod
	Stops  []Stop
}

func (*LinearGradient) paintMarker() {}

// RadialGradient is a radial gradient paint server reference.
type RadialGradient struct {
	CX, CY, R float64
	FX, FY    float64

	Transform resvg.Matrix
	Units     Units
	Spread    SpreadMethod
	Stops     []Stop
}

func (*RadialGradient) paintMarker() {}

// Pattern is a tiled paint server reference. Its content subtree is
// rendered on demand by the backend; this pass only resolves placement.
type Pattern struct {
	// Rect is the pattern tile in the units given by Units.
	Rect resvg.Rect

	Transform resvg.Matrix
	Units     Units
	// Root holds the pattern content.
	Root *Group
}

func (*Pattern) paintMarker() {}

// Fill describes how a shape's interior is painted.
type Fill struct {
	Paint   Paint
	Opacity float64
	Rule    FillRule
}

// Stroke describes how a shape's outline is painted.
type Stroke struct {
	Paint      Paint
	Opacity    float64
	Width      float64
	MiterLimit float64
	Cap        LineCap
	Join       LineJoin
	DashArray  []float64
	DashOffset float64
}
