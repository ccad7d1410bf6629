package render

import (
	"github.com/nyurik/resvg"
	"github.com/nyurik/resvg/scene"
)

// convertNode dispatches on the node kind. It appends the node's output
// (possibly several nodes, possibly none) to out and reports the
// subtree's bounding boxes, or nil when nothing visible was produced.
// The scene.Node union is sealed, so the switch is exhaustive.
func (c *converter) convertNode(n scene.Node, ts resvg.Matrix, out *[]Node) *bboxPair {
	switch n := n.(type) {
	case *scene.Group:
		return c.convertGroup(n, ts, out)
	case *scene.Path:
		return c.convertPath(n, ts, out)
	case *scene.Image:
		return c.convertImage(n, ts, out)
	case *scene.Text:
		c.log.Warn("text node was not converted into paths; skipping", "id", n.ID)
		return nil
	}
	return nil
}

// convertGroup decides between flattening and isolation.
//
// Non-isolated groups contribute their children directly to the
// caller's list with the composed transform baked in; no Group node is
// emitted. Isolated groups render into their own layer: children are
// collected separately, bounding boxes accumulated, the filter chain
// and clip/mask/paint references resolved, and a single Group node
// appended.
func (c *converter) convertGroup(g *scene.Group, parentTs resvg.Matrix, out *[]Node) *bboxPair {
	ts := parentTs.Compose(g.Transform)

	if !g.ShouldIsolate() {
		return c.convertChildren(g, ts, out)
	}

	var groupChildren []Node
	pair := c.convertChildren(g, ts, &groupChildren)
	if pair == nil {
		return c.convertEmptyGroup(g, ts, out)
	}
	layer, object := pair.layer, pair.object

	filters, filterBBox := c.filters.Resolve(g.Filters, &layer, &object, ts)

	// Filters are atomic: a chain that cannot resolve a region makes
	// the whole subtree invisible, already-converted descendants
	// included.
	if len(g.Filters) > 0 && filterBBox == nil {
		return nil
	}
	if filterBBox != nil {
		layer = *filterBBox
	}

	group := &Group{
		Opacity:      float32(g.Opacity),
		BlendMode:    ConvertBlendMode(g.BlendMode),
		ClipPath:     c.convertClip(g.ClipPath, object, ts),
		Mask:         c.convertMask(g.Mask, object, ts),
		Filters:      filters,
		FilterFill:   c.resolveFilterPaint(g.FilterFill, layer),
		FilterStroke: c.resolveFilterPaint(g.FilterStroke, layer),
		BBox:         layer,
		Children:     groupChildren,
	}
	*out = append(*out, group)
	return &bboxPair{layer: layer, object: object}
}

// convertEmptyGroup handles isolated groups whose children produced no
// content. Without filters there is nothing to show and the group is
// dropped. With filters, a flood-type primitive can manufacture output
// from nothing, so the chain is resolved against an undefined base
// region; success emits a childless Group sized to the resolved region.
func (c *converter) convertEmptyGroup(g *scene.Group, ts resvg.Matrix, out *[]Node) *bboxPair {
	if len(g.Filters) == 0 {
		return nil
	}

	filters, layerBBox := c.filters.Resolve(g.Filters, nil, nil, ts)
	if layerBBox == nil {
		return nil
	}
	layer := *layerBBox

	group := &Group{
		Opacity:      float32(g.Opacity),
		BlendMode:    ConvertBlendMode(g.BlendMode),
		Filters:      filters,
		FilterFill:   c.resolveFilterPaint(g.FilterFill, layer),
		FilterStroke: c.resolveFilterPaint(g.FilterStroke, layer),
		BBox:         layer,
	}
	*out = append(*out, group)

	// The group has no geometry of its own, but percentage-relative
	// sub-paints still need a coordinate basis. The unit square is a
	// stand-in, not a principled result.
	object, _ := resvg.NewBBoxWH(0, 0, 1, 1)
	return &bboxPair{layer: layer, object: object}
}

// convertChildren converts every child with the given transform,
// appending output to out, and accumulates both bounding-box unions.
// Output order follows input order; the accumulated boxes do not depend
// on it.
func (c *converter) convertChildren(g *scene.Group, ts resvg.Matrix, out *[]Node) *bboxPair {
	acc := newBBoxAccumulator()
	for _, child := range g.Children {
		if pair := c.convertNode(child, ts, out); pair != nil {
			acc.Add(*pair)
		}
	}
	return acc.Result()
}

// resolveFilterPaint resolves a filter-referenced fill/stroke
// substitute against the final layer box. Compositing opacity is
// applied later by the filter stage, so the paint resolves at full
// opacity here - applying it twice would darken the result.
func (c *converter) resolveFilterPaint(p scene.Paint, layer resvg.BBox) Paint {
	if p == nil {
		return nil
	}
	return c.paints.Resolve(p, 1.0, RectFromBBox(layer))
}

// convertPath emits up to two nodes for a shape: a fill pass and a
// stroke pass, in that order (paint order was resolved upstream).
// Geometry is baked into device space here; the object box is the raw
// transformed extent and the layer box additionally covers the stroke.
func (c *converter) convertPath(p *scene.Path, ts resvg.Matrix, out *[]Node) *bboxPair {
	if !p.Visible {
		return nil
	}

	path, object, ok := newPath(p.Data, ts)
	if !ok {
		return nil
	}
	objectRect := RectFromBBox(object)
	antiAlias := p.Rendering.AntiAlias()
	layer := object

	emitted := false
	if p.Fill != nil {
		if paint := c.paints.Resolve(p.Fill.Paint, p.Fill.Opacity, objectRect); paint != nil {
			*out = append(*out, &FillPath{
				Paint:     paint,
				Rule:      p.Fill.Rule,
				AntiAlias: antiAlias,
				Path:      path,
			})
			emitted = true
		}
	}
	if p.Stroke != nil && p.Stroke.Width > 0 {
		if paint := c.paints.Resolve(p.Stroke.Paint, p.Stroke.Opacity, objectRect); paint != nil {
			// Half the stroke falls outside the geometry on each
			// side. MaxScale keeps the expansion conservative under
			// non-uniform transforms.
			scale := ts.MaxScale()
			layer = object.Outset(p.Stroke.Width / 2 * scale)
			*out = append(*out, &StrokePath{
				Paint:     paint,
				Stroke:    deviceStroke(p.Stroke, scale),
				AntiAlias: antiAlias,
				Path:      path,
			})
			emitted = true
		}
	}

	if !emitted {
		return nil
	}
	return &bboxPair{layer: layer, object: object}
}

// deviceStroke bakes the ancestor scale into the stroke parameters so
// they match the pre-transformed geometry.
func deviceStroke(s *scene.Stroke, scale float64) Stroke {
	out := Stroke{
		Width:      float32(s.Width * scale),
		MiterLimit: float32(s.MiterLimit),
		Cap:        s.Cap,
		Join:       s.Join,
		DashOffset: float32(s.DashOffset * scale),
	}
	if len(s.DashArray) > 0 {
		out.DashArray = make([]float32, len(s.DashArray))
		for i, d := range s.DashArray {
			out.DashArray[i] = float32(d * scale)
		}
	}
	return out
}

// convertImage places decoded content with its destination rectangle
// mapped to device space. Rotated placements keep their axis-aligned
// device bounds; the backend samples through the rectangle.
func (c *converter) convertImage(img *scene.Image, ts resvg.Matrix, out *[]Node) *bboxPair {
	if !img.Visible || img.Data == nil {
		return nil
	}

	bbox := img.Rect.BBox().Transform(ts)
	rect := RectFromBBox(bbox)
	if !rect.IsValid() {
		return nil
	}

	node := &Image{Rect: rect}
	switch d := img.Data.(type) {
	case scene.RasterData:
		if d.Pixmap == nil {
			return nil
		}
		node.Pixmap = d.Pixmap
	case scene.VectorData:
		if d.Tree == nil {
			return nil
		}
		node.Vector = d.Tree
	}

	*out = append(*out, node)
	return &bboxPair{layer: bbox, object: bbox}
}
