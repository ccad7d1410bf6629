// Package render builds the renderer-ready paint tree from a scene
// package input graph.
//
// The output Tree is a flattened display list: every leaf's geometry is
// pre-multiplied by the full chain of ancestor transforms, so the
// rasterization backend never composes matrices. Groups survive only
// when they must render as isolated compositing layers (opacity, blend
// mode, clip, mask or filters); all other groups are flattened into
// their parent during conversion.
//
// The pass is a pure, synchronous, depth-first tree transform. It never
// mutates its input, and the Tree it produces is immutable: once
// NewTree returns, any number of goroutines may read the result without
// synchronization.
//
// Unrenderable content is dropped rather than reported as an error:
// hidden shapes, contentless groups, subtrees whose filter chain cannot
// resolve a paint region. The only diagnostics are warnings sent to the
// injected logger (see Options).
package render
