package render

import (
	"github.com/nyurik/resvg"
	"github.com/nyurik/resvg/scene"
)

// ClipPath is a resolved clip: device-space geometry whose union keeps
// pixels and whose outside is clipped away. Empty children clip
// everything.
type ClipPath struct {
	// Clip is an optional clip applied to this clip's own geometry.
	Clip *ClipPath

	// Children is the converted clip geometry.
	Children []Node
}

// Mask is a resolved mask: a device-space region, a coverage kind and
// converted mask content.
type Mask struct {
	// Region bounds the mask effect in device space.
	Region resvg.BBox

	// Kind selects luminance or alpha coverage.
	Kind scene.MaskKind

	// Mask is an optional mask applied to this mask's own content.
	Mask *Mask

	// Children is the converted mask content.
	Children []Node
}

// clipBasis computes the transform that maps clip or mask content into
// device space. objectBoundingBox content lives in the unit square and
// maps through the (already device-space) object box; userSpaceOnUse
// content shares the group's transform. Returns false when the
// required basis is degenerate.
func clipBasis(units scene.Units, objectBBox resvg.BBox, ts resvg.Matrix) (resvg.Matrix, bool) {
	if units != scene.ObjectBoundingBox {
		return ts, true
	}
	rect, ok := objectBBox.ToRect()
	if !ok {
		return resvg.Matrix{}, false
	}
	return resvg.FromRect(rect), true
}

// convertClip resolves a clip-path reference against the group's
// object bounding box and transform. An unresolvable basis drops the
// clip (with a diagnostic), not the group.
func (c *converter) convertClip(cp *scene.ClipPath, objectBBox resvg.BBox, ts resvg.Matrix) *ClipPath {
	if cp == nil || cp.Root == nil {
		return nil
	}

	basis, ok := clipBasis(cp.Units, objectBBox, ts)
	if !ok {
		c.log.Warn("clip path needs a valid object bounding box; ignoring", "id", cp.ID)
		return nil
	}
	clipTs := basis.Compose(cp.Transform).Compose(cp.Root.Transform)

	var children []Node
	for _, child := range cp.Root.Children {
		c.convertNode(child, clipTs, &children)
	}

	return &ClipPath{
		Clip:     c.convertClip(cp.Clip, objectBBox, ts),
		Children: children,
	}
}

// convertMask resolves a mask reference. An unresolvable region or
// basis drops the mask (with a diagnostic), not the group.
func (c *converter) convertMask(m *scene.Mask, objectBBox resvg.BBox, ts resvg.Matrix) *Mask {
	if m == nil || m.Root == nil {
		return nil
	}

	var region resvg.BBox
	if m.Units == scene.ObjectBoundingBox {
		rect, ok := objectBBox.ToRect()
		if !ok {
			c.log.Warn("mask needs a valid object bounding box; ignoring", "id", m.ID)
			return nil
		}
		r, ok := resvg.NewRect(
			rect.X+m.Rect.X*rect.W,
			rect.Y+m.Rect.Y*rect.H,
			m.Rect.W*rect.W,
			m.Rect.H*rect.H,
		)
		if !ok {
			return nil
		}
		region = r.BBox()
	} else {
		region = m.Rect.BBox().Transform(ts)
	}

	// A mask region that never touches the target cannot reveal any
	// pixel of it.
	if !region.Intersects(objectBBox) {
		c.log.Warn("mask region does not intersect the masked content; ignoring", "id", m.ID)
		return nil
	}

	basis, ok := clipBasis(m.ContentUnits, objectBBox, ts)
	if !ok {
		return nil
	}
	maskTs := basis.Compose(m.Root.Transform)

	var children []Node
	for _, child := range m.Root.Children {
		c.convertNode(child, maskTs, &children)
	}
	if len(children) == 0 {
		return nil
	}

	return &Mask{
		Region:   region,
		Kind:     m.Kind,
		Mask:     c.convertMask(m.Mask, objectBBox, ts),
		Children: children,
	}
}
