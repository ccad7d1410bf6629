package render

import (
	"github.com/nyurik/resvg"
	"github.com/nyurik/resvg/filter"
	"github.com/nyurik/resvg/scene"
)

// FilterResolver resolves a group's filter chain against its base
// bounding boxes and transform.
//
// Both boxes are present for groups with renderable children and absent
// for filter-only groups whose children produced nothing (a flood can
// still manufacture content from an undefined base). A nil region
// result for a non-empty chain is the authoritative signal that the
// whole filtered subtree is invisible.
type FilterResolver interface {
	Resolve(chain []scene.Filter, layerBBox, objectBBox *resvg.BBox, ts resvg.Matrix) ([]filter.Filter, *resvg.BBox)
}

// defaultFilterResolver binds the filter package's region resolution.
type defaultFilterResolver struct{}

func (defaultFilterResolver) Resolve(chain []scene.Filter, layerBBox, objectBBox *resvg.BBox, ts resvg.Matrix) ([]filter.Filter, *resvg.BBox) {
	return filter.Resolve(chain, layerBBox, objectBBox, ts)
}
