package render

import (
	"github.com/nyurik/resvg"
	"github.com/nyurik/resvg/scene"
)

// Paint is a concrete, device-space paint.
// This is a sealed interface - only types in this package implement it.
type Paint interface {
	paintMarker()
}

// SolidPaint is a single color. The paint opacity is folded into the
// color's alpha.
type SolidPaint struct {
	Color resvg.RGBA
}

func (SolidPaint) paintMarker() {}

// GradientStop is a resolved gradient color stop. Stop opacity and
// paint opacity are folded into the color's alpha.
type GradientStop struct {
	Offset float32
	Color  resvg.RGBA
}

// LinearGradientPaint is a resolved linear gradient. Transform maps
// gradient coordinates into device space; for objectBoundingBox
// gradients the bounding-rect basis is already baked into it.
type LinearGradientPaint struct {
	X1, Y1 float32
	X2, Y2 float32

	Transform Transform
	Spread    scene.SpreadMethod
	Stops     []GradientStop
}

func (*LinearGradientPaint) paintMarker() {}

// RadialGradientPaint is a resolved radial gradient.
type RadialGradientPaint struct {
	CX, CY, R float32
	FX, FY    float32

	Transform Transform
	Spread    scene.SpreadMethod
	Stops     []GradientStop
}

func (*RadialGradientPaint) paintMarker() {}

// PatternPaint is a resolved pattern placement. The content subtree is
// rendered on demand by the backend into the device-space tile.
type PatternPaint struct {
	// Rect is the device-space tile rectangle.
	Rect Rect

	// Transform is the pattern's own transform, device precision.
	Transform Transform

	// Opacity is applied when the tile is composited.
	Opacity float32

	// Root holds the pattern content.
	Root *scene.Group
}

func (*PatternPaint) paintMarker() {}

// PaintResolver resolves a scene paint descriptor into a concrete
// paint sized to a device-space rectangle. The rectangle is the
// coordinate basis for objectBoundingBox units; solid colors ignore it.
// A nil result means the descriptor is unrenderable (for example a
// gradient with no stops) and its paint pass is skipped.
type PaintResolver interface {
	Resolve(p scene.Paint, opacity float64, rect Rect) Paint
}

// defaultPaintResolver is the built-in paint-server conversion.
type defaultPaintResolver struct{}

func (defaultPaintResolver) Resolve(p scene.Paint, opacity float64, rect Rect) Paint {
	switch p := p.(type) {
	case scene.Color:
		return SolidPaint{Color: p.Value.MulAlpha(opacity)}
	case *scene.LinearGradient:
		return resolveLinearGradient(p, opacity, rect)
	case *scene.RadialGradient:
		return resolveRadialGradient(p, opacity, rect)
	case *scene.Pattern:
		return resolvePattern(p, opacity, rect)
	}
	return nil
}

// resolveStops folds the paint opacity into stop colors. Degenerate
// stop lists collapse: zero stops paint nothing, a single stop is a
// solid color.
func resolveStops(stops []scene.Stop, opacity float64) ([]GradientStop, Paint) {
	if len(stops) == 0 {
		return nil, nil
	}
	if len(stops) == 1 {
		return nil, SolidPaint{Color: stops[0].Color.MulAlpha(stops[0].Opacity * opacity)}
	}
	out := make([]GradientStop, 0, len(stops))
	for _, s := range stops {
		out = append(out, GradientStop{
			Offset: float32(s.Offset),
			Color:  s.Color.MulAlpha(s.Opacity * opacity),
		})
	}
	return out, nil
}

// unitsTransform combines the paint's own transform with the
// bounding-rect basis for objectBoundingBox units. Returns false when
// the basis is required but the rectangle is degenerate.
func unitsTransform(paintTs resvg.Matrix, units scene.Units, rect Rect) (Transform, bool) {
	if units != scene.ObjectBoundingBox {
		return TransformFromMatrix(resvg.Identity().Compose(paintTs)), true
	}
	if !rect.IsValid() {
		return Transform{}, false
	}
	basis := resvg.Rect{
		X: float64(rect.MinX),
		Y: float64(rect.MinY),
		W: float64(rect.Width()),
		H: float64(rect.Height()),
	}
	return TransformFromMatrix(resvg.FromRect(basis).Compose(paintTs)), true
}

func resolveLinearGradient(g *scene.LinearGradient, opacity float64, rect Rect) Paint {
	stops, solid := resolveStops(g.Stops, opacity)
	if solid != nil {
		return solid
	}
	if stops == nil {
		return nil
	}
	ts, ok := unitsTransform(g.Transform, g.Units, rect)
	if !ok {
		return nil
	}
	return &LinearGradientPaint{
		X1: float32(g.X1), Y1: float32(g.Y1),
		X2: float32(g.X2), Y2: float32(g.Y2),
		Transform: ts,
		Spread:    g.Spread,
		Stops:     stops,
	}
}

func resolveRadialGradient(g *scene.RadialGradient, opacity float64, rect Rect) Paint {
	if g.R <= 0 {
		return nil
	}
	stops, solid := resolveStops(g.Stops, opacity)
	if solid != nil {
		return solid
	}
	if stops == nil {
		return nil
	}
	ts, ok := unitsTransform(g.Transform, g.Units, rect)
	if !ok {
		return nil
	}
	return &RadialGradientPaint{
		CX: float32(g.CX), CY: float32(g.CY), R: float32(g.R),
		FX: float32(g.FX), FY: float32(g.FY),
		Transform: ts,
		Spread:    g.Spread,
		Stops:     stops,
	}
}

func resolvePattern(p *scene.Pattern, opacity float64, rect Rect) Paint {
	if p.Root == nil || len(p.Root.Children) == 0 {
		return nil
	}

	tile := p.Rect
	if p.Units == scene.ObjectBoundingBox {
		if !rect.IsValid() {
			return nil
		}
		var ok bool
		tile, ok = resvg.NewRect(
			float64(rect.MinX)+tile.X*float64(rect.Width()),
			float64(rect.MinY)+tile.Y*float64(rect.Height()),
			tile.W*float64(rect.Width()),
			tile.H*float64(rect.Height()),
		)
		if !ok {
			return nil
		}
	}

	return &PatternPaint{
		Rect:      RectFromBBox(tile.BBox()),
		Transform: TransformFromMatrix(resvg.Identity().Compose(p.Transform)),
		Opacity:   float32(opacity),
		Root:      p.Root,
	}
}
