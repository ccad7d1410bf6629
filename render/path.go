package render

import (
	"github.com/nyurik/resvg"
	"github.com/nyurik/resvg/scene"
)

// Path holds device-space path geometry as a verb stream with a
// separate single-precision coordinate stream. It is produced by baking
// the full ancestor transform into the source geometry; nothing further
// is applied at paint time.
type Path struct {
	verbs  []scene.PathVerb
	points []float32
}

// newPath bakes ts into src and returns the device path together with
// the transformed control-point bounding box. The bounding box is
// accumulated in float64 and only the stored coordinates are narrowed.
// Returns false for empty paths, invalid transforms, or geometry whose
// extent collapses to a single point.
func newPath(src *scene.PathData, ts resvg.Matrix) (*Path, resvg.BBox, bool) {
	if src == nil || src.IsEmpty() || !ts.IsValid() {
		return nil, resvg.BBox{}, false
	}

	srcPoints := src.Points()
	p := &Path{
		verbs:  src.Verbs(),
		points: make([]float32, 0, len(srcPoints)),
	}
	bbox := resvg.NewBBox()
	for i := 0; i+1 < len(srcPoints); i += 2 {
		pt := ts.TransformPoint(resvg.Pt(srcPoints[i], srcPoints[i+1]))
		bbox = bbox.ExpandPoint(pt)
		p.points = append(p.points, float32(pt.X), float32(pt.Y))
	}

	if !bbox.HasContent() {
		return nil, resvg.BBox{}, false
	}
	if bbox.Width() == 0 && bbox.Height() == 0 {
		return nil, resvg.BBox{}, false
	}
	return p, bbox, true
}

// Verbs returns the verb stream. The slice must not be modified.
func (p *Path) Verbs() []scene.PathVerb {
	return p.verbs
}

// Points returns the device coordinate stream. The slice must not be
// modified.
func (p *Path) Points() []float32 {
	return p.points
}

// IsEmpty returns true if the path contains no drawing commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}
