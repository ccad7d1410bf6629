package scene

import "github.com/nyurik/resvg"

// Node is a scene graph node.
// This is a sealed interface - only types in this package implement it.
// Consumers dispatch with a type switch over *Group, *Path, *Image and
// *Text; no other kinds exist.
type Node interface {
	nodeMarker()
}

// Group carries compositing state and an ordered list of children.
// Children are in paint order (back to front); paint-order properties
// were already resolved upstream.
type Group struct {
	// ID is the source document identifier, used in diagnostics.
	ID string

	// Transform is the group's local transform, composed into the
	// inherited transform during conversion. The zero value means no
	// transform.
	Transform resvg.Matrix

	// Opacity is the group opacity in [0, 1].
	Opacity float64

	// BlendMode specifies compositing with the content below.
	BlendMode BlendMode

	// Isolate forces the group to render as an isolated layer even when
	// no other property requires it.
	Isolate bool

	// ClipPath is an optional clip-path reference.
	ClipPath *ClipPath

	// Mask is an optional mask reference.
	Mask *Mask

	// Filters is the ordered filter chain.
	Filters []Filter

	// FilterFill and FilterStroke substitute the paints referenced by
	// FillPaint/StrokePaint filter inputs, when a filter uses them.
	FilterFill   Paint
	FilterStroke Paint

	// Children is the ordered child list. Subtrees may be shared
	// between groups; they are never mutated.
	Children []Node
}

func (*Group) nodeMarker() {}

// ShouldIsolate reports whether the group must render into its own
// compositing layer. Non-isolated groups are flattened into their
// parent during conversion.
func (g *Group) ShouldIsolate() bool {
	return g.Isolate ||
		g.Opacity != 1 ||
		g.BlendMode != BlendNormal ||
		g.ClipPath != nil ||
		g.Mask != nil ||
		len(g.Filters) > 0
}

// ShapeRendering is the rendering quality hint attached to a shape.
type ShapeRendering uint8

// Shape rendering constants.
const (
	RenderGeometricPrecision ShapeRendering = iota
	RenderOptimizeSpeed
	RenderCrispEdges
)

// AntiAlias reports whether shapes with this hint are anti-aliased.
func (s ShapeRendering) AntiAlias() bool {
	return s == RenderGeometricPrecision
}

// Path is a shape node: resolved geometry plus fill and stroke paint.
type Path struct {
	// ID is the source document identifier, used in diagnostics.
	ID string

	// Visible is false for hidden shapes; they contribute nothing.
	Visible bool

	// Data is the path geometry in source coordinates.
	Data *PathData

	// Fill paints the interior. Nil means no fill pass.
	Fill *Fill

	// Stroke paints the outline. Nil means no stroke pass.
	Stroke *Stroke

	// Rendering is the shape-rendering quality hint.
	Rendering ShapeRendering
}

func (*Path) nodeMarker() {}

// ImageData is the decoded payload of an image node.
// This is a sealed interface - only types in this package implement it.
type ImageData interface {
	imageDataMarker()
}

// RasterData holds an already-decoded bitmap.
type RasterData struct {
	Pixmap *resvg.Pixmap
}

func (RasterData) imageDataMarker() {}

// VectorData holds an embedded vector sub-document, re-rendered on
// demand at paint time.
type VectorData struct {
	Tree *Tree
}

func (VectorData) imageDataMarker() {}

// Image places decoded content into a destination rectangle.
type Image struct {
	// ID is the source document identifier, used in diagnostics.
	ID string

	// Visible is false for hidden images; they contribute nothing.
	Visible bool

	// Rect is the destination rectangle in source coordinates.
	Rect resvg.Rect

	// Data is the decoded payload.
	Data ImageData
}

func (*Image) nodeMarker() {}

// Text is a not-yet-converted text node. Text must be converted to
// path geometry upstream; the render pass skips any that remain.
type Text struct {
	// ID is the source document identifier, used in diagnostics.
	ID string
}

func (*Text) nodeMarker() {}

// Tree is a parsed scene document.
type Tree struct {
	// Size is the document size.
	Size resvg.Size

	// ViewBox selects the rendered part of the scene.
	ViewBox ViewBox

	// Root is the document root group. Its transform is identity for
	// well-formed documents.
	Root *Group
}

// HasTextNodes reports whether any text node remains in the tree.
func (t *Tree) HasTextNodes() bool {
	if t.Root == nil {
		return false
	}
	return hasTextNodes(t.Root)
}

func hasTextNodes(n Node) bool {
	switch n := n.(type) {
	case *Text:
		return true
	case *Group:
		for _, child := range n.Children {
			if hasTextNodes(child) {
				return true
			}
		}
	}
	return false
}
