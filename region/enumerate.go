package region

import (
	"sort"

	"gonum.org/v1/gonum/graph"
)

// EnumerateByNxGraph enumerates every clique of size >= 2 in the graph --
// not just the maximal ones -- mirroring the original source's
// nx.enumerate_all_cliques(graph.G) (bynxgraph.py), since a graph's
// maximal cliques alone omit every sub-clique of a larger one: a complete
// triangle A-B-C has exactly one maximal clique, {A,B,C}, but scenario 4
// (spec.md §8) requires the 3 pairs and the triple, 4 results in total.
// For each candidate clique, Region.FromIntersect is verified non-empty
// before it is emitted -- pairwise overlap does not imply a common
// intersection in d > 1 dimensions (the Helly-violator case of
// scenario 5), so each candidate must be checked rather than trusted.
// Results are ordered by increasing clique size, then lexicographically
// by sorted parent ids.
func EnumerateByNxGraph(rig *RegionIntersectionGraph) []KWiseIntersection {
	cliques := enumerateAllCliques(rig.Underlying())

	var out []KWiseIntersection
	for _, clique := range cliques {
		if len(clique) < 2 {
			continue
		}
		nodes := make([]graph.Node, len(clique))
		for i, id := range clique {
			nodes[i] = simpleNode(id)
		}
		kw, ok := verifyClique(rig, nodes)
		if !ok {
			logGraphf("clique of size %d skipped: empty intersection", len(clique))
			continue
		}
		out = append(out, kw)
	}

	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Parents) != len(out[j].Parents) {
			return len(out[i].Parents) < len(out[j].Parents)
		}
		return parentKey(out[i].Parents) < parentKey(out[j].Parents)
	})
	return out
}

// enumerateAllCliques lists every clique in g (including singletons),
// following the same incremental expansion networkx's
// enumerate_all_cliques uses: each node is assigned a fixed position in
// an arbitrary total order, every node's neighbor set is trimmed to
// neighbors that come later in that order, and cliques are grown
// breadth-first from each node by intersecting candidate-neighbor sets.
// The order invariant is what makes the walk duplicate-free without any
// extra bookkeeping.
func enumerateAllCliques(g graph.Undirected) [][]int64 {
	nodes := graph.NodesOf(g.Nodes())
	index := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		index[n.ID()] = i
	}

	laterNeighbors := func(id int64) []int64 {
		it := g.From(id)
		var out []int64
		for it.Next() {
			if nbr := it.Node().ID(); index[nbr] > index[id] {
				out = append(out, nbr)
			}
		}
		sort.Slice(out, func(i, j int) bool { return index[out[i]] < index[out[j]] })
		return out
	}

	type frontier struct {
		base  []int64
		cnbrs []int64
	}

	queue := make([]frontier, 0, len(nodes))
	for _, n := range nodes {
		queue = append(queue, frontier{base: []int64{n.ID()}, cnbrs: laterNeighbors(n.ID())})
	}

	var cliques [][]int64
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cliques = append(cliques, cur.base)

		for i, u := range cur.cnbrs {
			uNbrs := make(map[int64]bool, len(cur.cnbrs))
			for _, v := range laterNeighbors(u) {
				uNbrs[v] = true
			}
			var next []int64
			for _, v := range cur.cnbrs[i+1:] {
				if uNbrs[v] {
					next = append(next, v)
				}
			}
			base := make([]int64, len(cur.base)+1)
			copy(base, cur.base)
			base[len(cur.base)] = u
			queue = append(queue, frontier{base: base, cnbrs: next})
		}
	}
	return cliques
}

func verifyClique(rig *RegionIntersectionGraph, clique []graph.Node) (KWiseIntersection, bool) {
	regions := make([]Region, len(clique))
	for i, n := range clique {
		r, ok := rig.RegionAt(n.ID())
		if !ok {
			panic(newInvariantError("clique node %d has no region", n.ID()))
		}
		regions[i] = r
	}

	result, ok := FromIntersect(regions, true)
	if !ok {
		return KWiseIntersection{}, false
	}
	return KWiseIntersection{Region: result, Parents: result.Provenance().Parents}, true
}

// inducedSubgraph builds a new RegionIntersectionGraph restricted to the
// given region ids and the finalized edges between them, preserving the
// parent graph's dimensionality.
func inducedSubgraph(rig *RegionIntersectionGraph, ids []string) *RegionIntersectionGraph {
	sub := NewRegionIntersectionGraph(rig.dimension)
	keep := map[int64]bool{}
	for _, id := range ids {
		nodeID, ok := rig.NodeID(id)
		if !ok {
			continue
		}
		region, _ := rig.RegionAt(nodeID)
		keep[nodeID] = true
		sub.nodeFor(region)
	}

	for key, intersect := range rig.finalEdge {
		if !keep[key.a] || !keep[key.b] {
			continue
		}
		regionA, _ := rig.RegionAt(key.a)
		regionB, _ := rig.RegionAt(key.b)
		na := sub.nodeFor(regionA)
		nb := sub.nodeFor(regionB)
		subKey := newEdgeKey(na, nb)
		sub.finalEdge[subKey] = intersect
		sub.g.SetEdge(sub.g.NewEdge(nodeOf(na), nodeOf(nb)))
	}
	return sub
}

func nodeOf(id int64) graph.Node { return simpleNode(id) }

type simpleNode int64

func (n simpleNode) ID() int64 { return int64(n) }

// SRQEnumByNxGraph answers the single-region query: restrict the graph to
// r and its neighbors, enumerate cliques, and retain only those
// containing r.
func SRQEnumByNxGraph(rig *RegionIntersectionGraph, regionID string) ([]KWiseIntersection, error) {
	nodeID, ok := rig.NodeID(regionID)
	if !ok {
		return nil, newLookupError("region %q is not a node in the graph", regionID)
	}

	ids := []string{regionID}
	neighbors := rig.Underlying().From(nodeID)
	for neighbors.Next() {
		if region, ok := rig.RegionAt(neighbors.Node().ID()); ok {
			ids = append(ids, region.ID())
		}
	}

	sub := inducedSubgraph(rig, ids)
	all := EnumerateByNxGraph(sub)

	var out []KWiseIntersection
	for _, kw := range all {
		if containsID(kw.Parents, regionID) {
			out = append(out, kw)
		}
	}
	return out, nil
}

// MRQEnumByNxGraph answers the multi-region query: restrict the graph to
// the induced subgraph on the given ids and enumerate cliques directly,
// with no further filtering.
func MRQEnumByNxGraph(rig *RegionIntersectionGraph, ids []string) ([]KWiseIntersection, error) {
	for _, id := range ids {
		if _, ok := rig.NodeID(id); !ok {
			return nil, newLookupError("region %q is not a node in the graph", id)
		}
	}
	sub := inducedSubgraph(rig, ids)
	return EnumerateByNxGraph(sub), nil
}
