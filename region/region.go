package region

import (
	"sort"

	"github.com/google/uuid"
)

// Linkage controls how provenance is recorded when two Regions are
// combined by Intersect.
type Linkage int

const (
	// LinkageNone records no provenance on the result.
	LinkageNone Linkage = iota
	// LinkageReference records the two operand Regions as parents.
	LinkageReference
	// LinkageAggregate flattens and deduplicates the operands' own parent
	// lists (when they are themselves derived Regions) instead of
	// recording the operands directly.
	LinkageAggregate
)

// ProvenanceMode names the operation that produced a derived Region.
type ProvenanceMode int

const (
	// ProvenanceNone marks an input Region with no recorded provenance.
	ProvenanceNone ProvenanceMode = iota
	// ProvenanceIntersect marks a Region produced by Region.Intersect or
	// Region.FromIntersect.
	ProvenanceIntersect
	// ProvenanceUnion marks a Region produced by Region.FromUnion.
	ProvenanceUnion
)

// Provenance records which Regions, and by which operation, produced a
// derived Region. Parents are stored as interned ids rather than owning
// references, so the provenance DAG can be serialized cheaply and never
// forms a reference cycle.
type Provenance struct {
	Mode    ProvenanceMode
	Parents []string
}

// Region is a fixed-dimension, axis-aligned hyperrectangle: one Interval
// per dimension, plus an id and optional provenance. Regions are immutable
// once constructed.
type Region struct {
	id         string
	intervals  []Interval
	provenance Provenance
}

// NewRegion constructs a Region from the given per-dimension intervals. If
// id is empty, a uuid v4 is generated. Returns a ShapeError if intervals
// is empty.
func NewRegion(id string, intervals []Interval) (Region, error) {
	if len(intervals) == 0 {
		return Region{}, newShapeError("region must have dimension >= 1")
	}
	if id == "" {
		id = uuid.NewString()
	}
	cp := make([]Interval, len(intervals))
	copy(cp, intervals)
	return Region{id: id, intervals: cp}, nil
}

// MustNewRegion is like NewRegion but panics on error; useful for tests
// and literal data.
func MustNewRegion(id string, intervals []Interval) Region {
	r, err := NewRegion(id, intervals)
	if err != nil {
		panic(err)
	}
	return r
}

// ID returns the Region's unique identifier.
func (r Region) ID() string { return r.id }

// Dimension returns the number of Intervals (dimensionality) of r.
func (r Region) Dimension() int { return len(r.intervals) }

// Interval returns the Interval occupying dimension k.
func (r Region) Interval(k int) Interval { return r.intervals[k] }

// Intervals returns a copy of the Region's per-dimension intervals.
func (r Region) Intervals() []Interval {
	cp := make([]Interval, len(r.intervals))
	copy(cp, r.intervals)
	return cp
}

// Lower returns the lower bound of dimension k.
func (r Region) Lower(k int) float64 { return r.intervals[k].Lower }

// Upper returns the upper bound of dimension k.
func (r Region) Upper(k int) float64 { return r.intervals[k].Upper }

// Provenance returns the Region's provenance; ProvenanceNone with an
// empty Parents list for input Regions that were not derived.
func (r Region) Provenance() Provenance { return r.provenance }

// WithID returns a copy of r with a different id and no provenance,
// mirroring how the teacher's RegionSet.merge prefixes member ids.
func (r Region) WithID(id string) Region {
	cp := r
	cp.id = id
	cp.provenance = Provenance{}
	return cp
}

func (r Region) assertSameDimension(other Region) {
	if r.Dimension() != other.Dimension() {
		panic(newShapeError("region dimension mismatch: %d != %d", r.Dimension(), other.Dimension()))
	}
}

// Contains reports whether point falls within r. incLower/incUpper are
// forwarded to each dimension's Interval.Contains.
func (r Region) Contains(point []float64, incLower, incUpper bool) bool {
	if len(point) != r.Dimension() {
		return false
	}
	for k, v := range point {
		if !r.intervals[k].Contains(v, incLower, incUpper) {
			return false
		}
	}
	return true
}

// Encloses reports whether r entirely covers other in every dimension.
func (r Region) Encloses(other Region) bool {
	r.assertSameDimension(other)
	for k := range r.intervals {
		if !r.intervals[k].Encloses(other.intervals[k]) {
			return false
		}
	}
	return true
}

// Overlaps reports whether r and other intersect: the conjunction, across
// every dimension, of the per-dimension Interval.Overlaps.
func (r Region) Overlaps(other Region) bool {
	r.assertSameDimension(other)
	for k := range r.intervals {
		if !r.intervals[k].Overlaps(other.intervals[k]) {
			return false
		}
	}
	return true
}

// OverlapsDimension reports whether r and other overlap along a single
// dimension k, the candidate relation the one-pass sweep detects.
func (r Region) OverlapsDimension(other Region, k int) bool {
	return r.intervals[k].Overlaps(other.intervals[k])
}

// Intersect returns the Region covering the overlap between r and other,
// with provenance recorded per linkage. ok is false when the two Regions
// do not overlap.
func (r Region) Intersect(other Region, linkage Linkage) (result Region, ok bool) {
	r.assertSameDimension(other)

	intervals := make([]Interval, r.Dimension())
	for k := range r.intervals {
		iv, ok := r.intervals[k].Intersect(other.intervals[k])
		if !ok {
			return Region{}, false
		}
		intervals[k] = iv
	}

	out := Region{id: uuid.NewString(), intervals: intervals}
	switch linkage {
	case LinkageReference:
		out.provenance = Provenance{Mode: ProvenanceIntersect, Parents: []string{r.id, other.id}}
	case LinkageAggregate:
		out.provenance = Provenance{Mode: ProvenanceIntersect, Parents: aggregateParents(r, other)}
	}
	return out, true
}

func aggregateParents(regions ...Region) []string {
	seen := map[string]bool{}
	var parents []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			parents = append(parents, id)
		}
	}
	for _, r := range regions {
		if r.provenance.Mode != ProvenanceNone && len(r.provenance.Parents) > 0 {
			for _, p := range r.provenance.Parents {
				add(p)
			}
		} else {
			add(r.id)
		}
	}
	sort.Strings(parents)
	return parents
}

// Union returns the smallest Region enclosing both r and other, with
// provenance recording both as parents.
func (r Region) Union(other Region) Region {
	r.assertSameDimension(other)

	intervals := make([]Interval, r.Dimension())
	for k := range r.intervals {
		intervals[k] = r.intervals[k].Union(other.intervals[k])
	}
	return Region{
		id:         uuid.NewString(),
		intervals:  intervals,
		provenance: Provenance{Mode: ProvenanceUnion, Parents: []string{r.id, other.id}},
	}
}

// FromIntersect folds Intersect across a list of two or more Regions. ok
// is false if any pair of Regions is disjoint (the n-ary intersection is
// empty). When linked is true, provenance Parents is the full, sorted set
// of input region ids rather than just the final fold step's operands.
func FromIntersect(regions []Region, linked bool) (result Region, ok bool) {
	if len(regions) < 2 {
		panic(newShapeError("from_intersect requires at least 2 regions, got %d", len(regions)))
	}

	acc := regions[0]
	for _, next := range regions[1:] {
		var ok2 bool
		acc, ok2 = acc.Intersect(next, LinkageNone)
		if !ok2 {
			return Region{}, false
		}
	}

	if linked {
		ids := make([]string, len(regions))
		for i, r := range regions {
			ids[i] = r.id
		}
		sort.Strings(ids)
		acc.provenance = Provenance{Mode: ProvenanceIntersect, Parents: ids}
	}
	return acc, true
}

// FromUnion folds Union across a list of one or more Regions, recording
// every input region id as a parent.
func FromUnion(regions []Region) Region {
	if len(regions) == 0 {
		panic(newShapeError("from_union requires at least 1 region"))
	}
	if len(regions) == 1 {
		r := regions[0]
		return Region{id: uuid.NewString(), intervals: r.Intervals(), provenance: Provenance{Mode: ProvenanceUnion, Parents: []string{r.id}}}
	}

	acc := regions[0]
	for _, next := range regions[1:] {
		acc = acc.Union(next)
	}

	ids := make([]string, len(regions))
	for i, r := range regions {
		ids[i] = r.id
	}
	sort.Strings(ids)
	acc.provenance = Provenance{Mode: ProvenanceUnion, Parents: ids}
	return acc
}

// Project returns the Region restricted to the given dimension indices,
// in the order given.
func (r Region) Project(dims []int) Region {
	intervals := make([]Interval, len(dims))
	for i, k := range dims {
		intervals[i] = r.intervals[k]
	}
	return Region{id: uuid.NewString(), intervals: intervals}
}

// RandomPoints draws n random points within r, each coordinate sampled
// by rng.
func (r Region) RandomPoints(n int, rng RandomFn) [][]float64 {
	perDim := make([][]float64, r.Dimension())
	for k, iv := range r.intervals {
		perDim[k] = iv.RandomValues(n, rng)
	}
	points := make([][]float64, n)
	for i := range points {
		point := make([]float64, r.Dimension())
		for k := range r.intervals {
			point[k] = perDim[k][i]
		}
		points[i] = point
	}
	return points
}

// RandomRegions generates n random sub-Regions of r, each dimension's
// Interval no longer than the corresponding entry in maxLengths (or the
// full dimension length, if maxLengths is nil), using rng.
func (r Region) RandomRegions(n int, maxLengths []float64, rng RandomFn) []Region {
	if maxLengths == nil {
		maxLengths = make([]float64, r.Dimension())
		for k, iv := range r.intervals {
			maxLengths[k] = iv.Length()
		}
	}

	perDim := make([][]Interval, r.Dimension())
	for k, iv := range r.intervals {
		perDim[k] = iv.RandomIntervals(n, maxLengths[k], rng)
	}

	regions := make([]Region, n)
	for i := range regions {
		intervals := make([]Interval, r.Dimension())
		for k := range r.intervals {
			intervals[k] = perDim[k][i]
		}
		regions[i] = Region{id: uuid.NewString(), intervals: intervals}
	}
	return regions
}
