// Package graph represents a generated fortress's piece layout as the
// spawn tree the generator actually produced: every piece but the start
// piece has exactly one parent, recorded as Index/ParentIndex by
// pkg/generator. Queries here (ancestors, the path between two pieces,
// reachability) walk that parent chain directly rather than modeling the
// layout as a generic node/edge graph with no fortress-domain shape.
package graph
