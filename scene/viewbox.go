package scene

import "github.com/nyurik/resvg"

// Align is the alignment half of an aspect-ratio fit policy.
type Align uint8

// Alignment constants.
const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

// AspectRatio is the fit policy applied when mapping a view box onto
// the document viewport.
type AspectRatio struct {
	// Defer gives an embedding document's policy precedence.
	Defer bool
	// Align positions the scaled view box within the viewport.
	Align Align
	// Slice scales to cover the viewport instead of fitting inside it.
	Slice bool
}

// DefaultAspectRatio returns the default fit policy: centered,
// uniformly scaled to fit.
func DefaultAspectRatio() AspectRatio {
	return AspectRatio{Align: AlignXMidYMid}
}

// ViewBox selects the part of the scene to render and how it maps onto
// the document viewport.
type ViewBox struct {
	Rect   resvg.Rect
	Aspect AspectRatio
}
