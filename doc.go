// Package resvg provides the shared value types for the render-tree
// construction pass: source-space geometry (float64 affine matrices,
// rectangles, bounding boxes with a distinguished "no content" state),
// colors, and decoded pixel buffers.
//
// The pass itself lives in the render package: it flattens a scene
// package input graph into a renderer-ready paint tree whose geometry
// is already expressed in final device coordinates.
//
// Coordinate spaces:
//   - Source space uses float64 throughout (Matrix, Rect, BBox).
//   - Device space uses float32 (render.Rect, render.Path); the
//     narrowing happens once, at leaf conversion.
package resvg
