package resvg

import "math"

// fuzzyEps is the tolerance used for floating-point rectangle comparison.
// Bounding-box accumulation crosses many multiplications; exact equality
// would misreport rectangles that drifted by a few ULPs.
const fuzzyEps = 1e-9

// fuzzyEq reports whether two float64 values are equal within fuzzyEps.
func fuzzyEq(a, b float64) bool {
	return math.Abs(a-b) <= fuzzyEps
}

// Size represents document dimensions. Both components are positive.
type Size struct {
	W, H float64
}

// NewSize creates a Size. Returns false if either dimension is not a
// positive finite number.
func NewSize(w, h float64) (Size, bool) {
	if !(w > 0 && h > 0) || !isFinite(w) || !isFinite(h) {
		return Size{}, false
	}
	return Size{W: w, H: h}, true
}

// Rect is a source-space rectangle with a strictly positive size.
// Use BBox for rectangles that may be degenerate.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a Rect. Returns false if either dimension is not a
// positive finite number.
func NewRect(x, y, w, h float64) (Rect, bool) {
	if !(w > 0 && h > 0) {
		return Rect{}, false
	}
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) {
		return Rect{}, false
	}
	return Rect{X: x, Y: y, W: w, H: h}, true
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Right returns the rectangle's right edge coordinate.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the rectangle's bottom edge coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// BBox returns the rectangle as a bounding box.
func (r Rect) BBox() BBox {
	return BBox{MinX: r.X, MinY: r.Y, MaxX: r.X + r.W, MaxY: r.Y + r.H}
}

// BBox is an axis-aligned bounding rectangle used during tree
// construction. Unlike Rect it may have a zero extent along one axis
// (a horizontal or vertical line still has a meaningful bounding box).
//
// The zero value produced by NewBBox is the distinguished "no content"
// state: an accumulator that never absorbed a contributing child stays
// there, and it is distinct from a legitimate zero-area box at the
// origin. Use HasContent, not field inspection, to tell them apart.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBBox returns the "no content" accumulator state.
// Expanding it with any finite box yields that box unchanged.
func NewBBox() BBox {
	return BBox{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
	}
}

// NewBBoxWH creates a bounding box from an origin and dimensions.
// Returns false if any component is not finite or a dimension is
// negative, or if both dimensions are zero (a single point carries no
// renderable extent).
func NewBBoxWH(x, y, w, h float64) (BBox, bool) {
	if w < 0 || h < 0 || (w == 0 && h == 0) {
		return BBox{}, false
	}
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) {
		return BBox{}, false
	}
	return BBox{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}, true
}

// X returns the left edge coordinate.
func (b BBox) X() float64 { return b.MinX }

// Y returns the top edge coordinate.
func (b BBox) Y() float64 { return b.MinY }

// Width returns the horizontal extent.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// HasContent reports whether the box ever absorbed content.
// The comparison against the NewBBox state is fuzzy so that
// floating-point drift cannot resurrect an empty accumulator.
func (b BBox) HasContent() bool {
	return !b.FuzzyEq(NewBBox())
}

// FuzzyEq reports whether two boxes are equal within tolerance.
func (b BBox) FuzzyEq(other BBox) bool {
	return fuzzyEq(b.MinX, other.MinX) && fuzzyEq(b.MinY, other.MinY) &&
		fuzzyEq(b.MaxX, other.MaxX) && fuzzyEq(b.MaxY, other.MaxY)
}

// Expand returns the union of two boxes.
// Union is commutative and associative, so accumulation order does not
// affect the result. Expanding with a "no content" box is a no-op.
func (b BBox) Expand(other BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// ExpandPoint returns the box grown to include the given point.
func (b BBox) ExpandPoint(p Point) BBox {
	return BBox{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// Outset returns the box grown by d on every side.
func (b BBox) Outset(d float64) BBox {
	return BBox{
		MinX: b.MinX - d,
		MinY: b.MinY - d,
		MaxX: b.MaxX + d,
		MaxY: b.MaxY + d,
	}
}

// Intersects reports whether two boxes overlap.
func (b BBox) Intersects(other BBox) bool {
	if !b.HasContent() || !other.HasContent() {
		return false
	}
	return b.MinX <= other.MaxX && other.MinX <= b.MaxX &&
		b.MinY <= other.MaxY && other.MinY <= b.MaxY
}

// Transform returns the bounding box of the four transformed corners.
func (b BBox) Transform(m Matrix) BBox {
	corners := [4]Point{
		{b.MinX, b.MinY},
		{b.MaxX, b.MinY},
		{b.MaxX, b.MaxY},
		{b.MinX, b.MaxY},
	}
	out := NewBBox()
	for _, c := range corners {
		out = out.ExpandPoint(m.TransformPoint(c))
	}
	return out
}

// ToRect converts the box to a strictly positive rectangle.
// Returns false for boxes that are degenerate along either axis;
// a zero-width or zero-height box has no usable coordinate basis.
func (b BBox) ToRect() (Rect, bool) {
	if !b.HasContent() {
		return Rect{}, false
	}
	return NewRect(b.MinX, b.MinY, b.Width(), b.Height())
}
