package region

import (
	"sync"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

type edgeKey struct{ a, b int64 }

func newEdgeKey(a, b int64) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// RegionIntersectionGraph is the undirected graph of §4.H: one node per
// Region, one edge per pairwise intersection, the edge carrying the
// intersection Region once finalized. It is built by subscribing a graph
// builder to one RegionSweep per dimension and is read-only once Build
// returns.
type RegionIntersectionGraph struct {
	dimension int
	g         *simple.UndirectedGraph

	mu         sync.Mutex
	idToNode   map[string]int64
	nodeRegion map[int64]Region
	nextNodeID int64

	overlapCount map[edgeKey]int
	finalEdge    map[edgeKey]Region
}

// NewRegionIntersectionGraph constructs an empty graph for Regions of the
// given dimension.
func NewRegionIntersectionGraph(dimension int) *RegionIntersectionGraph {
	return &RegionIntersectionGraph{
		dimension:    dimension,
		g:            simple.NewUndirectedGraph(),
		idToNode:     map[string]int64{},
		nodeRegion:   map[int64]Region{},
		overlapCount: map[edgeKey]int{},
		finalEdge:    map[edgeKey]Region{},
	}
}

// Dimension returns the dimensionality the graph was built for.
func (rig *RegionIntersectionGraph) Dimension() int { return rig.dimension }

// NodeCount returns the number of Regions added as nodes.
func (rig *RegionIntersectionGraph) NodeCount() int { return rig.g.Nodes().Len() }

// EdgeCount returns the number of finalized edges.
func (rig *RegionIntersectionGraph) EdgeCount() int { return len(rig.finalEdge) }

func (rig *RegionIntersectionGraph) nodeFor(r Region) int64 {
	if id, ok := rig.idToNode[r.ID()]; ok {
		return id
	}
	n := rig.nextNodeID
	rig.nextNodeID++
	rig.idToNode[r.ID()] = n
	rig.nodeRegion[n] = r
	rig.g.AddNode(simple.Node(n))
	return n
}

// RegionAt returns the Region stored at the given gonum node id.
func (rig *RegionIntersectionGraph) RegionAt(id int64) (Region, bool) {
	r, ok := rig.nodeRegion[id]
	return r, ok
}

// NodeID returns the gonum node id assigned to a Region id, if present.
func (rig *RegionIntersectionGraph) NodeID(regionID string) (int64, bool) {
	id, ok := rig.idToNode[regionID]
	return id, ok
}

// Intersect returns the finalized intersection Region for an edge, if one
// exists.
func (rig *RegionIntersectionGraph) Intersect(a, b int64) (Region, bool) {
	r, ok := rig.finalEdge[newEdgeKey(a, b)]
	return r, ok
}

// Underlying exposes the gonum graph for callers (e.g. enumeration) that
// need to run generic graph algorithms over it.
func (rig *RegionIntersectionGraph) Underlying() graph.Undirected { return rig.g }

// dimensionObserver feeds RegionIntersectionGraph the "begin"/"intersect"
// events from a single dimension's RegionSweep, per §4.H: on_begin adds a
// node, on_intersect bumps the edge's overlap count (asserting it never
// exceeds the graph's dimensionality).
type dimensionObserver struct {
	rig   *RegionIntersectionGraph
	state ObserverState
}

func (o *dimensionObserver) OnInit() { o.state = ObserverReceiving }

func (o *dimensionObserver) OnEvent(ev Event) {
	o.rig.mu.Lock()
	defer o.rig.mu.Unlock()

	switch ev.Kind {
	case EventBegin:
		r := ev.Payload.(Region)
		o.rig.nodeFor(r)
	case EventIntersect:
		pair := ev.Payload.(RegionPair)
		a := o.rig.nodeFor(pair[0])
		b := o.rig.nodeFor(pair[1])
		key := newEdgeKey(a, b)
		o.rig.overlapCount[key]++
		if o.rig.overlapCount[key] > o.rig.dimension {
			panic(newInvariantError("edge (%d,%d) overlap count %d exceeds dimension %d", key.a, key.b, o.rig.overlapCount[key], o.rig.dimension))
		}
	}
}

func (o *dimensionObserver) OnDone() { o.state = ObserverDone }

// BuildRegionIntersectionGraph runs one RegionSweep per dimension of set,
// subscribing a shared builder to each, then finalizes every edge whose
// overlap count reached the full dimensionality: on_finalize sets
// `intersect` to the confirmed pairwise intersection and drops edges that
// fell short.
func BuildRegionIntersectionGraph(set *RegionSet, touchingOverlaps bool) *RegionIntersectionGraph {
	rig := NewRegionIntersectionGraph(set.Dimension())
	for k := 0; k < set.Dimension(); k++ {
		sweep := NewRegionSweep(set, k, touchingOverlaps)
		sweep.Subscribe(&dimensionObserver{rig: rig})
		sweep.Run()
	}

	for key, count := range rig.overlapCount {
		regionA := rig.nodeRegion[key.a]
		regionB := rig.nodeRegion[key.b]
		if count == rig.dimension {
			result, ok := regionA.Intersect(regionB, LinkageReference)
			if !ok {
				logGraphf("edge (%s,%s) reached full overlap count but intersect is empty", regionA.ID(), regionB.ID())
				continue
			}
			rig.finalEdge[key] = result
			rig.g.SetEdge(rig.g.NewEdge(simple.Node(key.a), simple.Node(key.b)))
		}
	}

	logGraphf("built graph: nodes=%d edges=%d", rig.NodeCount(), rig.EdgeCount())
	return rig
}
