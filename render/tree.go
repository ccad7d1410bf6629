package render

import (
	"github.com/nyurik/resvg"
	"github.com/nyurik/resvg/blend"
	"github.com/nyurik/resvg/filter"
	"github.com/nyurik/resvg/scene"
)

// Node is a paint tree node.
// This is a sealed interface - only types in this package implement it.
// Backends dispatch with a type switch over *Group, *FillPath,
// *StrokePath and *Image; no other kinds exist.
type Node interface {
	nodeMarker()
}

// Group is an isolated compositing layer. Its children render into an
// offscreen layer which is then clipped, masked, filtered and finally
// composited into the parent with the group opacity and blend mode.
type Group struct {
	// Opacity is applied once, when the finished layer is composited.
	Opacity float32

	// BlendMode is the compositing operator for the finished layer.
	BlendMode blend.Mode

	// ClipPath is the resolved clip, or nil.
	ClipPath *ClipPath

	// Mask is the resolved mask, or nil.
	Mask *Mask

	// Filters is the resolved filter chain, in application order.
	Filters []filter.Filter

	// FilterFill and FilterStroke are the resolved substitutes for
	// filter-referenced fill/stroke inputs, or nil.
	FilterFill   Paint
	FilterStroke Paint

	// BBox is the layer bounding box in device space: the extent the
	// backend must allocate for this layer. Kept in double precision
	// because layer allocation happens before any pixel work.
	BBox resvg.BBox

	// Children is the ordered content of the layer.
	Children []Node
}

func (*Group) nodeMarker() {}

// FillPath fills device-space geometry.
type FillPath struct {
	Paint     Paint
	Rule      scene.FillRule
	AntiAlias bool
	Path      *Path
}

func (*FillPath) nodeMarker() {}

// Stroke holds device-space stroke parameters. The width has the
// ancestor scale baked in, matching the pre-transformed geometry.
type Stroke struct {
	Width      float32
	MiterLimit float32
	Cap        scene.LineCap
	Join       scene.LineJoin
	DashArray  []float32
	DashOffset float32
}

// StrokePath strokes device-space geometry.
type StrokePath struct {
	Paint     Paint
	Stroke    Stroke
	AntiAlias bool
	Path      *Path
}

func (*StrokePath) nodeMarker() {}

// Image places decoded content into a device-space rectangle.
// Exactly one of Pixmap and Vector is set: bitmaps are already decoded,
// embedded vector documents are re-rendered on demand at paint time.
type Image struct {
	Rect   Rect
	Pixmap *resvg.Pixmap
	Vector *scene.Tree
}

func (*Image) nodeMarker() {}

// Tree is the finished paint tree.
//
// Invariants:
//   - No hidden nodes and no text.
//   - Geometry is in final device coordinates; no node carries a
//     transform.
//   - Children are in input paint order.
type Tree struct {
	// Size is the document size.
	Size resvg.Size

	// ViewBox selects the rendered part of the scene.
	ViewBox scene.ViewBox

	// ContentArea is the union bounding box of all rendered content,
	// including strokes and filter regions. Nil when the tree is empty.
	ContentArea *resvg.BBox

	// Children is the ordered top-level content.
	Children []Node
}

// NewTree builds the paint tree for a whole document.
// The scene root is converted with an identity transform; the document
// size and view box carry over unchanged.
func NewTree(t *scene.Tree, opts *Options) *Tree {
	c := newConverter(opts)
	if t.HasTextNodes() {
		c.log.Warn("text nodes should already be converted into paths")
	}

	var children []Node
	var contentArea *resvg.BBox
	if t.Root != nil {
		if pair := c.convertNode(t.Root, resvg.Identity(), &children); pair != nil {
			layer := pair.layer
			contentArea = &layer
		}
	}

	return &Tree{
		Size:        t.Size,
		ViewBox:     t.ViewBox,
		ContentArea: contentArea,
		Children:    children,
	}
}

// NewTreeFromNode builds a paint tree for a single subtree.
// The node's own bounding box becomes both the document size and the
// view box, with the default fit policy. Returns nil (and logs a
// warning) when the node has a zero-size bounding box; no partial tree
// is produced.
func NewTreeFromNode(n scene.Node, opts *Options) *Tree {
	c := newConverter(opts)

	bbox, ok := scene.CalculateBBox(n)
	var rect resvg.Rect
	if ok {
		rect, ok = bbox.ToRect()
	}
	if !ok {
		c.log.Warn("node has zero size", "id", nodeID(n))
		return nil
	}

	var children []Node
	var contentArea *resvg.BBox
	if pair := c.convertNode(n, resvg.Identity(), &children); pair != nil {
		layer := pair.layer
		contentArea = &layer
	}

	return &Tree{
		Size:        rect.Size(),
		ViewBox:     scene.ViewBox{Rect: rect, Aspect: scene.DefaultAspectRatio()},
		ContentArea: contentArea,
		Children:    children,
	}
}

// ConvertNode converts a single scene node with the given inherited
// transform. It returns the produced nodes and the subtree's layer
// bounding box, or nil when the node contributes no visible content.
func ConvertNode(n scene.Node, ts resvg.Matrix, opts *Options) ([]Node, *resvg.BBox) {
	c := newConverter(opts)
	var children []Node
	pair := c.convertNode(n, ts, &children)
	if pair == nil {
		return children, nil
	}
	layer := pair.layer
	return children, &layer
}

func nodeID(n scene.Node) string {
	switch n := n.(type) {
	case *scene.Group:
		return n.ID
	case *scene.Path:
		return n.ID
	case *scene.Image:
		return n.ID
	case *scene.Text:
		return n.ID
	}
	return ""
}
