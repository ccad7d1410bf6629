package scene

import "github.com/nyurik/resvg"

// CalculateBBox computes the approximate source-space bounding box of a
// node, including stroke extents, without building a render tree.
// Returns false when the node (and for groups, every descendant)
// carries no geometry. Text nodes carry none.
func CalculateBBox(n Node) (resvg.BBox, bool) {
	return nodeBBox(n, resvg.Identity())
}

func nodeBBox(n Node, ts resvg.Matrix) (resvg.BBox, bool) {
	switch n := n.(type) {
	case *Group:
		return groupBBox(n, ts)
	case *Path:
		return pathBBox(n, ts)
	case *Image:
		if !n.Visible {
			return resvg.BBox{}, false
		}
		return n.Rect.BBox().Transform(ts), true
	case *Text:
		return resvg.BBox{}, false
	}
	return resvg.BBox{}, false
}

func groupBBox(g *Group, ts resvg.Matrix) (resvg.BBox, bool) {
	ts = ts.Compose(g.Transform)
	bbox := resvg.NewBBox()
	for _, child := range g.Children {
		if b, ok := nodeBBox(child, ts); ok {
			bbox = bbox.Expand(b)
		}
	}
	if !bbox.HasContent() {
		return resvg.BBox{}, false
	}
	return bbox, true
}

func pathBBox(p *Path, ts resvg.Matrix) (resvg.BBox, bool) {
	if !p.Visible || p.Data == nil || p.Data.IsEmpty() {
		return resvg.BBox{}, false
	}
	bbox, ok := p.Data.Bounds()
	if !ok {
		return resvg.BBox{}, false
	}
	bbox = bbox.Transform(ts)
	if p.Stroke != nil {
		bbox = bbox.Outset(p.Stroke.Width / 2 * ts.MaxScale())
	}
	if bbox.Width() == 0 && bbox.Height() == 0 {
		return resvg.BBox{}, false
	}
	return bbox, true
}
