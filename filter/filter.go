// Package filter resolves filter chains into device-space regions and
// descriptors the rasterization backend can execute.
//
// Only region math lives here. Pixel processing (the actual blurring,
// flooding, color mapping) is the backend's job; this package decides
// where each effect is allowed to paint and whether the chain is usable
// at all. A chain that cannot resolve a region invalidates the subtree
// it is attached to.
package filter

import (
	"github.com/nyurik/resvg"
	"github.com/nyurik/resvg/scene"
)

// Filter is one resolved entry of a filter chain.
// All coordinates and lengths are in device space.
type Filter struct {
	// Region is the device-space rectangle the filter may paint into.
	// Content outside it is clipped away by the backend.
	Region resvg.BBox

	// Primitives is the ordered, resolved effect list.
	Primitives []Primitive
}

// Primitive is a resolved filter effect with device-space parameters.
// This is a sealed interface - only types in this package implement it.
type Primitive interface {
	primitiveMarker()
}

// Blur is a resolved Gaussian blur.
type Blur struct {
	StdDevX, StdDevY float64
}

func (Blur) primitiveMarker() {}

// Offset is a resolved offset.
type Offset struct {
	DX, DY float64
}

func (Offset) primitiveMarker() {}

// Flood is a resolved flood fill. Opacity is already folded into the
// color's alpha.
type Flood struct {
	Color resvg.RGBA
}

func (Flood) primitiveMarker() {}

// DropShadow is a resolved drop shadow.
type DropShadow struct {
	DX, DY           float64
	StdDevX, StdDevY float64
	Color            resvg.RGBA
}

func (DropShadow) primitiveMarker() {}

// ColorMatrix is a resolved 5x4 color matrix.
type ColorMatrix struct {
	Values [20]float64
}

func (ColorMatrix) primitiveMarker() {}

// Resolve converts a filter chain into resolved filters plus the
// device-space region the chain paints into. Each filter's region is
// its declared rect; primitives scale their parameters into device
// units but never grow the region.
//
// layerBBox is accepted for custom resolvers that size regions from
// the layer extent; the default resolution does not consult it.
// layerBBox and objectBBox may be nil: a chain attached to a group with
// no renderable children is resolved against an undefined base region,
// which only succeeds for fully userSpaceOnUse chains.
//
// A nil region result with a non-empty chain is the invalidation
// signal: the caller must drop the attached subtree.
func Resolve(chain []scene.Filter, layerBBox, objectBBox *resvg.BBox, ts resvg.Matrix) ([]Filter, *resvg.BBox) {
	if len(chain) == 0 {
		return nil, nil
	}

	var objectRect *resvg.Rect
	if objectBBox != nil {
		if r, ok := objectBBox.ToRect(); ok {
			objectRect = &r
		}
	}

	resolved := make([]Filter, 0, len(chain))
	region := resvg.NewBBox()
	for i := range chain {
		f, ok := resolveFilter(&chain[i], objectRect, ts)
		if !ok {
			return nil, nil
		}
		resolved = append(resolved, f)
		region = region.Expand(f.Region)
	}

	if !region.HasContent() {
		return nil, nil
	}
	return resolved, &region
}

func resolveFilter(f *scene.Filter, objectRect *resvg.Rect, ts resvg.Matrix) (Filter, bool) {
	// A filter with no primitives renders its target as fully
	// transparent, which is indistinguishable from an invalid chain
	// for this pass.
	if len(f.Primitives) == 0 {
		return Filter{}, false
	}

	// The object bounding box is already in device space, so a region
	// resolved against it needs no further transform; a userSpaceOnUse
	// region is in source coordinates and must be mapped to the device.
	var region resvg.BBox
	if f.Units == scene.ObjectBoundingBox {
		if objectRect == nil {
			return Filter{}, false
		}
		rect, ok := relativeTo(f.Rect, *objectRect)
		if !ok {
			return Filter{}, false
		}
		region = rect.BBox()
	} else {
		region = f.Rect.BBox().Transform(ts)
	}
	if _, ok := region.ToRect(); !ok {
		return Filter{}, false
	}

	prims := make([]Primitive, 0, len(f.Primitives))
	for _, p := range f.Primitives {
		rp, ok := resolvePrimitive(p, f.PrimitiveUnits, objectRect, ts)
		if !ok {
			return Filter{}, false
		}
		prims = append(prims, rp)
	}

	return Filter{Region: region, Primitives: prims}, true
}

// relativeTo maps a unit-space rectangle onto base.
func relativeTo(r, base resvg.Rect) (resvg.Rect, bool) {
	return resvg.NewRect(
		base.X+r.X*base.W,
		base.Y+r.Y*base.H,
		r.W*base.W,
		r.H*base.H,
	)
}

func resolvePrimitive(p scene.FilterPrimitive, units scene.Units, objectRect *resvg.Rect, ts resvg.Matrix) (Primitive, bool) {
	// objectBoundingBox primitive lengths scale by the device-space
	// object box directly; userSpaceOnUse lengths scale with the
	// device transform.
	var sx, sy float64
	if units == scene.ObjectBoundingBox {
		if objectRect == nil {
			return nil, false
		}
		sx, sy = objectRect.W, objectRect.H
	} else {
		sx, sy = ts.ScaleX(), ts.ScaleY()
	}

	switch p := p.(type) {
	case scene.GaussianBlur:
		if p.StdDevX < 0 || p.StdDevY < 0 {
			return nil, false
		}
		return Blur{StdDevX: p.StdDevX * sx, StdDevY: p.StdDevY * sy}, true
	case scene.Offset:
		return Offset{DX: p.DX * sx, DY: p.DY * sy}, true
	case scene.Flood:
		return Flood{Color: p.Color.MulAlpha(p.Opacity)}, true
	case scene.DropShadow:
		if p.StdDevX < 0 || p.StdDevY < 0 {
			return nil, false
		}
		return DropShadow{
			DX:      p.DX * sx,
			DY:      p.DY * sy,
			StdDevX: p.StdDevX * sx,
			StdDevY: p.StdDevY * sy,
			Color:   p.Color.MulAlpha(p.Opacity),
		}, true
	case scene.ColorMatrix:
		return ColorMatrix{Values: p.Values}, true
	}
	return nil, false
}
