// Package region computes k-wise intersections among axis-aligned
// hyperrectangles in d-dimensional space.
//
// Interval and Region (interval.go, region.go) provide the 1-D and d-D
// box algebra. RegionSet (regionset.go) holds an ordered collection under
// a shared dimension and optional bounds. RegionTimeline (timeline.go)
// lazily produces the sorted Begin/End event sequence a sweep consumes.
// RegionSweep (sweep.go) is the one-pass sweep-line algorithm that
// publishes pairwise candidates through the Publisher/Subscriber event
// bus (events.go). RegionCycleSweep (cyclesweep.go) iterates RegionSweep
// to fixpoint for k-wise intersections. RegionIntersectionGraph
// (graph.go) and the enumeration queries (enumerate.go) recover the same
// k-wise intersections via all-clique enumeration over a graph built from
// d per-dimension sweeps.
package region
