// Package scene defines the read-only input scene graph consumed by the
// render-tree construction pass.
//
// The graph is produced upstream (parsing, style resolution, unit
// resolution and text-to-path conversion all happen before this stage).
// Nodes are held by pointer and may be referenced from multiple parents;
// the graph is a DAG, never a cyclic structure, and consumers only ever
// walk it forward without mutating it.
//
// All geometry in this package is expressed in source coordinates using
// float64. Device-space narrowing is the render package's job.
package scene
