package region

import "sort"

// KWiseIntersection pairs a derived Region with the canonicalized, sorted
// list of original-input region ids whose mutual intersection it is.
type KWiseIntersection struct {
	Region  Region
	Parents []string
}

func parentKey(parents []string) string {
	sorted := append([]string(nil), parents...)
	sort.Strings(sorted)
	key := ""
	for _, p := range sorted {
		key += p + "\x00"
	}
	return key
}

// RegionCycleSweep produces all k-wise (k >= 2) intersections among a
// RegionSet's members by repeatedly sweeping: pass 0 finds pairwise
// intersections from the input set, and each subsequent pass feeds the
// previous pass's intersections back in as a new sweep input, keeping
// only candidates whose parent set strictly grew. It terminates at the
// first pass that produces nothing new.
type RegionCycleSweep struct {
	dimension        int
	touchingOverlaps bool
	restrictTo       string // region id, "" for unrestricted
}

// NewRegionCycleSweep constructs a cyclic sweep over the given dimension.
func NewRegionCycleSweep(dimension int, touchingOverlaps bool) *RegionCycleSweep {
	return &RegionCycleSweep{dimension: dimension, touchingOverlaps: touchingOverlaps}
}

// Restrict returns a copy of the sweep that, per pass, keeps only
// candidates whose parent set is {regionID} or already contains it --
// pruning the lattice to intersections involving regionID.
func (cs *RegionCycleSweep) Restrict(regionID string) *RegionCycleSweep {
	cp := *cs
	cp.restrictTo = regionID
	return &cp
}

// Run executes the cyclic sweep over every dimension of set (confirming
// full-dimensional intersection at each pass, not just the chosen
// dimension) and returns the accumulated k-wise intersections, deduped by
// parent set.
func (cs *RegionCycleSweep) Run(set *RegionSet) []KWiseIntersection {
	seen := map[string]KWiseIntersection{}
	current := set

	for pass := 0; ; pass++ {
		next := NewRegionSet("", set.dimension)
		produced := 0

		pairs := confirmedOverlaps(current, cs.dimension, cs.touchingOverlaps)
		for _, pair := range pairs {
			result, ok := pair[0].Intersect(pair[1], LinkageAggregate)
			if !ok {
				continue
			}
			parents := aggregateParents(pair[0], pair[1])
			if cs.restrictTo != "" && !containsID(parents, cs.restrictTo) {
				continue
			}

			key := parentKey(parents)
			if _, exists := seen[key]; exists {
				continue
			}

			minSize := 2
			if pass > 0 {
				minSize = pass + 2
			}
			if len(parents) < minSize {
				continue
			}

			result.provenance = Provenance{Mode: ProvenanceIntersect, Parents: parents}
			kw := KWiseIntersection{Region: result, Parents: parents}
			seen[key] = kw
			next.MustAdd(result)
			produced++
		}

		logCyclef("pass=%d produced=%d total=%d", pass, produced, len(seen))
		if produced == 0 {
			break
		}
		current = next
	}

	out := make([]KWiseIntersection, 0, len(seen))
	for _, kw := range seen {
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

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// confirmedOverlaps runs the one-pass sweep on the candidate-generating
// dimension and, per §4.E's cross-dimensional confirmation, tests every
// candidate pair against every dimension directly rather than running one
// sweep per dimension. Touching endpoints count as overlap on a dimension
// only when touchingOverlaps is true, as in the sweep itself.
func confirmedOverlaps(set *RegionSet, dimension int, touchingOverlaps bool) []RegionPair {
	if set.Len() == 0 {
		return nil
	}
	candidates := RegionSweepOverlaps(set, dimension, touchingOverlaps)
	var confirmed []RegionPair
	for _, pair := range candidates {
		overlaps := true
		for k := 0; k < set.Dimension(); k++ {
			a, b := pair[0].Interval(k), pair[1].Interval(k)
			if (touchingOverlaps && !a.Overlaps(b)) || (!touchingOverlaps && !a.OverlapsStrict(b)) {
				overlaps = false
				break
			}
		}
		if overlaps {
			confirmed = append(confirmed, pair)
		}
	}
	return confirmed
}

// EnumerateByRCSweep runs an unrestricted RegionCycleSweep over set and
// returns every k-wise intersection as an (intersect-region, parents)
// pair, the cyclic-sweep counterpart to EnumerateByNxGraph. Unlike the
// clique path, no verification step is needed: the sweep only ever
// materializes intersections it has already confirmed non-empty.
func EnumerateByRCSweep(set *RegionSet, touchingOverlaps bool) []KWiseIntersection {
	return NewRegionCycleSweep(0, touchingOverlaps).Run(set)
}

// SRQEnumByRCSweep is the cyclic-sweep counterpart to SRQEnumByNxGraph:
// it runs a RegionCycleSweep restricted to regionID.
func SRQEnumByRCSweep(set *RegionSet, regionID string, touchingOverlaps bool) ([]KWiseIntersection, error) {
	if !set.Contains(regionID) {
		return nil, newLookupError("region %q is not a member of region set %s", regionID, set.ID())
	}
	return NewRegionCycleSweep(0, touchingOverlaps).Restrict(regionID).Run(set), nil
}

// MRQEnumByRCSweep is the cyclic-sweep counterpart to MRQEnumByNxGraph: it
// runs an unrestricted RegionCycleSweep over the subset of set named by
// ids.
func MRQEnumByRCSweep(set *RegionSet, ids []string, touchingOverlaps bool) ([]KWiseIntersection, error) {
	sub, err := set.Subset(ids)
	if err != nil {
		return nil, err
	}
	return NewRegionCycleSweep(0, touchingOverlaps).Run(sub), nil
}
