package render

import "github.com/nyurik/resvg"

// bboxPair carries the two device-space bounding boxes every conversion
// step reports upward: the layer box (stroke- and filter-expanded) and
// the object box (raw geometric extent, the percentage-unit basis).
type bboxPair struct {
	layer  resvg.BBox
	object resvg.BBox
}

// bboxAccumulator merges child bounding boxes in both coordinate
// systems. Both unions start at the "no content" state; the union
// operation is order-independent, so traversal order never affects the
// accumulated result.
type bboxAccumulator struct {
	layer  resvg.BBox
	object resvg.BBox
}

func newBBoxAccumulator() bboxAccumulator {
	return bboxAccumulator{
		layer:  resvg.NewBBox(),
		object: resvg.NewBBox(),
	}
}

// Add absorbs one child's bounding boxes.
func (a *bboxAccumulator) Add(p bboxPair) {
	a.layer = a.layer.Expand(p.layer)
	a.object = a.object.Expand(p.object)
}

// Result reports the accumulated pair, or nil when no child contributed
// content. Both spaces must carry content: a group whose children have
// a layer extent but no object extent (or vice versa) is not visible.
func (a *bboxAccumulator) Result() *bboxPair {
	if !a.layer.HasContent() || !a.object.HasContent() {
		return nil
	}
	return &bboxPair{layer: a.layer, object: a.object}
}
