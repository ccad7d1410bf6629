package scene

import "github.com/nyurik/resvg"

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return unknownStr
	}
}

// PointCount returns the number of coordinates this verb consumes.
func (v PathVerb) PointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 2 // x, y
	case VerbQuadTo:
		return 4 // cx, cy, x, y
	case VerbCubicTo:
		return 6 // c1x, c1y, c2x, c2y, x, y
	default:
		return 0
	}
}

// PathData holds source-space path geometry as a verb stream with a
// separate coordinate stream. Coordinates are float64; the render pass
// narrows them when baking transforms into device space.
type PathData struct {
	verbs  []PathVerb
	points []float64
}

// NewPathData creates a new empty path.
func NewPathData() *PathData {
	return &PathData{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float64, 0, 64),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *PathData) MoveTo(x, y float64) *PathData {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	return p
}

// LineTo draws a line to (x, y).
func (p *PathData) LineTo(x, y float64) *PathData {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	return p
}

// QuadTo draws a quadratic Bezier curve through the control point
// (cx, cy) to (x, y).
func (p *PathData) QuadTo(cx, cy, x, y float64) *PathData {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, cx, cy, x, y)
	return p
}

// CubicTo draws a cubic Bezier curve through two control points
// to (x, y).
func (p *PathData) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathData {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	return p
}

// Close closes the current subpath.
func (p *PathData) Close() *PathData {
	p.verbs = append(p.verbs, VerbClose)
	return p
}

// Rect appends an axis-aligned rectangle as a closed subpath.
func (p *PathData) Rect(x, y, w, h float64) *PathData {
	return p.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// Verbs returns the verb stream. The slice must not be modified.
func (p *PathData) Verbs() []PathVerb {
	return p.verbs
}

// Points returns the coordinate stream. The slice must not be modified.
func (p *PathData) Points() []float64 {
	return p.points
}

// IsEmpty returns true if the path contains no drawing commands.
func (p *PathData) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Bounds returns the control-point bounding box of the path.
// Curve control points are included, so the box is conservative: it
// always contains the rendered geometry, possibly with slack.
// Returns false for an empty path.
func (p *PathData) Bounds() (resvg.BBox, bool) {
	if len(p.points) < 2 {
		return resvg.BBox{}, false
	}
	b := resvg.NewBBox()
	for i := 0; i+1 < len(p.points); i += 2 {
		b = b.ExpandPoint(resvg.Pt(p.points[i], p.points[i+1]))
	}
	if !b.HasContent() {
		return resvg.BBox{}, false
	}
	return b, true
}
