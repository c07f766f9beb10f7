package region

// SweepTaskRunner is a Subscriber that accumulates a typed result as it
// observes a sweep, and exposes it once the sweep signals Done. The task
// types below (RegionSweepOverlapsTask, EnumerateByRCSweepTask,
// NxGraphSweepTask, EnumerateByNxGraphTask) do not embed or subscribe a
// SweepTaskRunner; each wraps a package-level function with the
// prepare/evaluate two-step shape: Prepare wires the algorithm and any
// caller-supplied subscribers, and Evaluate runs it and returns the
// function's result directly.
type SweepTaskRunner[R any] struct {
	*Subscriber
	results R
}

// NewSweepTaskRunner constructs a runner whose OnDone handler populates
// results by calling collect.
func NewSweepTaskRunner[R any](collect func() R) *SweepTaskRunner[R] {
	tr := &SweepTaskRunner[R]{Subscriber: NewSubscriber()}
	tr.OnDoneFn(func() { tr.results = collect() })
	return tr
}

// Results returns the accumulated result; only meaningful after the
// wrapped sweep has run to completion.
func (tr *SweepTaskRunner[R]) Results() R { return tr.results }

// RegionSweepOverlapsTask is the prepare/evaluate factory form of
// RegionSweepOverlaps: Prepare wires a RegionSweep over set along
// dimension plus any extra subscribers, and Evaluate runs it and returns
// the detected pairs.
type RegionSweepOverlapsTask struct {
	sweep *RegionSweep
}

// Prepare constructs the task, subscribing every observer in subs to the
// underlying sweep; no runner of its own is subscribed.
func (RegionSweepOverlapsTask) Prepare(set *RegionSet, dimension int, touchingOverlaps bool, subs ...Observer) *RegionSweepOverlapsTask {
	sweep := NewRegionSweep(set, dimension, touchingOverlaps)
	for _, s := range subs {
		sweep.Subscribe(s)
	}
	return &RegionSweepOverlapsTask{sweep: sweep}
}

// Evaluate runs the prepared sweep and returns the detected pairs.
func (t *RegionSweepOverlapsTask) Evaluate() []RegionPair {
	return t.sweep.Run()
}

// EnumerateByRCSweepTask is the prepare/evaluate factory form of
// EnumerateByRCSweep.
type EnumerateByRCSweepTask struct {
	set              *RegionSet
	touchingOverlaps bool
	restrictTo       string
}

// Prepare constructs the task; subs is accepted for API symmetry with the
// other task runners but the cyclic sweep has no single Publisher to
// subscribe to (it runs one RegionSweep per pass internally).
func (EnumerateByRCSweepTask) Prepare(set *RegionSet, touchingOverlaps bool, _ ...Observer) *EnumerateByRCSweepTask {
	return &EnumerateByRCSweepTask{set: set, touchingOverlaps: touchingOverlaps}
}

// Restrict narrows Evaluate to intersections involving regionID.
func (t *EnumerateByRCSweepTask) Restrict(regionID string) *EnumerateByRCSweepTask {
	t.restrictTo = regionID
	return t
}

// Evaluate runs the prepared cyclic sweep and returns the k-wise
// intersections.
func (t *EnumerateByRCSweepTask) Evaluate() []KWiseIntersection {
	cs := NewRegionCycleSweep(0, t.touchingOverlaps)
	if t.restrictTo != "" {
		cs = cs.Restrict(t.restrictTo)
	}
	return cs.Run(t.set)
}

// NxGraphSweepTask is the prepare/evaluate factory form of
// BuildRegionIntersectionGraph.
type NxGraphSweepTask struct {
	set              *RegionSet
	touchingOverlaps bool
}

// Prepare constructs the task.
func (NxGraphSweepTask) Prepare(set *RegionSet, touchingOverlaps bool) *NxGraphSweepTask {
	return &NxGraphSweepTask{set: set, touchingOverlaps: touchingOverlaps}
}

// Evaluate builds and returns the finalized RegionIntersectionGraph.
func (t *NxGraphSweepTask) Evaluate() *RegionIntersectionGraph {
	return BuildRegionIntersectionGraph(t.set, t.touchingOverlaps)
}

// EnumerateByNxGraphTask is the prepare/evaluate factory form of
// EnumerateByNxGraph, taking a pre-built graph (the "context"). It takes
// no constructor argument and never builds a graph itself.
type EnumerateByNxGraphTask struct {
	graph *RegionIntersectionGraph
}

// Prepare constructs the task from an already-built graph.
func (EnumerateByNxGraphTask) Prepare(graph *RegionIntersectionGraph) *EnumerateByNxGraphTask {
	return &EnumerateByNxGraphTask{graph: graph}
}

// Evaluate enumerates every verified k-wise intersection in the graph.
func (t *EnumerateByNxGraphTask) Evaluate() []KWiseIntersection {
	return EnumerateByNxGraph(t.graph)
}
