package region

import (
	"math/rand/v2"
	"sync"

	"github.com/oklog/ulid/v2"
)

// RegionSet is an ordered, append-only-during-sweep collection of Regions
// sharing a dimensionality and, optionally, a bounding Region every member
// must be enclosed by.
type RegionSet struct {
	id        string
	dimension int
	bounds    *Region
	regions   []Region

	mu       sync.Mutex
	timeline *RegionTimeline
}

// NewRegionSet constructs an empty RegionSet with the given dimension and
// no bounds. If id is empty, a ulid is generated -- a distinct id space
// from the uuid v4 ids Regions use, so a caller storing many generated
// RegionSets side by side gets a naturally sortable, collision-free key.
func NewRegionSet(id string, dimension int) *RegionSet {
	if dimension <= 0 {
		panic(newShapeError("region set dimension must be >= 1, got %d", dimension))
	}
	if id == "" {
		id = ulid.Make().String()
	}
	return &RegionSet{id: id, dimension: dimension}
}

// NewBoundedRegionSet constructs an empty RegionSet whose dimension is
// taken from bounds, and which every added Region must be enclosed by.
func NewBoundedRegionSet(id string, bounds Region) *RegionSet {
	rs := NewRegionSet(id, bounds.Dimension())
	rs.bounds = &bounds
	return rs
}

// ID returns the RegionSet's identifier.
func (rs *RegionSet) ID() string { return rs.id }

// Dimension returns the dimensionality shared by every member Region.
func (rs *RegionSet) Dimension() int { return rs.dimension }

// Bounds returns the declared bounding Region, or nil if none was set.
func (rs *RegionSet) Bounds() *Region { return rs.bounds }

// Len returns the number of Regions in the set.
func (rs *RegionSet) Len() int { return len(rs.regions) }

// Regions returns the member Regions in insertion order. The returned
// slice must not be mutated.
func (rs *RegionSet) Regions() []Region { return rs.regions }

// Get returns the Region with the given id, and whether it was found.
func (rs *RegionSet) Get(id string) (Region, bool) {
	for _, r := range rs.regions {
		if r.id == id {
			return r, true
		}
	}
	return Region{}, false
}

// Contains reports whether a Region with the given id is a member.
func (rs *RegionSet) Contains(id string) bool {
	_, ok := rs.Get(id)
	return ok
}

// Add appends region to the set. Returns a ShapeError if region's
// dimension does not match the set's, or if bounds is set and does not
// enclose region.
func (rs *RegionSet) Add(r Region) error {
	if r.Dimension() != rs.dimension {
		return newShapeError("region dimension %d != region set dimension %d", r.Dimension(), rs.dimension)
	}
	if rs.bounds != nil && !rs.bounds.Encloses(r) {
		return newShapeError("region %s is not enclosed by region set bounds", r.id)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.regions = append(rs.regions, r)
	rs.timeline = nil
	return nil
}

// MustAdd is like Add but panics on error.
func (rs *RegionSet) MustAdd(r Region) {
	if err := rs.Add(r); err != nil {
		panic(err)
	}
}

// StreamAdd adds every Region from regions, in order, stopping at the
// first error.
func (rs *RegionSet) StreamAdd(regions []Region) error {
	for _, r := range regions {
		if err := rs.Add(r); err != nil {
			return err
		}
	}
	return nil
}

// Timeline returns the RegionTimeline bound to this RegionSet, creating it
// on first use and caching it until the set is next mutated.
func (rs *RegionSet) Timeline() *RegionTimeline {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.timeline == nil {
		rs.timeline = newRegionTimeline(rs)
	}
	return rs.timeline
}

// MinBounds computes the smallest Region enclosing every member, via
// FromUnion. Returns the zero Region and false if the set is empty.
func (rs *RegionSet) MinBounds() (Region, bool) {
	if len(rs.regions) == 0 {
		return Region{}, false
	}
	if len(rs.regions) == 1 {
		return rs.regions[0], true
	}
	return FromUnion(rs.regions), true
}

// BBox returns the declared bounds if set, else MinBounds.
func (rs *RegionSet) BBox() (Region, bool) {
	if rs.bounds != nil {
		return *rs.bounds, true
	}
	return rs.MinBounds()
}

// Copy returns a shallow clone of rs: same bounds, same member Regions,
// distinct identity and backing slice.
func (rs *RegionSet) Copy() *RegionSet {
	cp := NewRegionSet(rs.id, rs.dimension)
	if rs.bounds != nil {
		b := *rs.bounds
		cp.bounds = &b
	}
	cp.regions = append([]Region(nil), rs.regions...)
	return cp
}

// Shuffle returns a copy of rs with its members randomly reordered.
func (rs *RegionSet) Shuffle() *RegionSet {
	cp := rs.Copy()
	rand.Shuffle(len(cp.regions), func(i, j int) {
		cp.regions[i], cp.regions[j] = cp.regions[j], cp.regions[i]
	})
	return cp
}

// Filter returns a new RegionSet, bounded by bounds, containing only the
// members of rs enclosed by bounds. bounds must itself be enclosed by
// rs.Bounds(), if set.
func (rs *RegionSet) Filter(bounds Region) (*RegionSet, error) {
	if bounds.Dimension() != rs.dimension {
		return nil, newShapeError("filter bounds dimension %d != region set dimension %d", bounds.Dimension(), rs.dimension)
	}
	if rs.bounds != nil && !rs.bounds.Encloses(bounds) {
		return nil, newShapeError("filter bounds is not enclosed by region set bounds")
	}

	out := NewBoundedRegionSet("", bounds)
	for _, r := range rs.regions {
		if bounds.Encloses(r) {
			out.MustAdd(r)
		}
	}
	return out, nil
}

// Subset returns a new RegionSet containing only the members whose ids
// appear in ids, in the order given. Returns a LookupError if any id is
// not a member.
func (rs *RegionSet) Subset(ids []string) (*RegionSet, error) {
	out := NewRegionSet("", rs.dimension)
	if rs.bounds != nil {
		b := *rs.bounds
		out.bounds = &b
	}
	for _, id := range ids {
		r, ok := rs.Get(id)
		if !ok {
			return nil, newLookupError("region %q is not a member of region set %s", id, rs.id)
		}
		out.MustAdd(r)
	}
	return out, nil
}

// Merge constructs a new RegionSet containing rs's members followed by
// every member of each RegionSet in others, with each incoming member's id
// prefixed by its source set's id ("<set-id>_<id>") to avoid collisions.
// The result's bounds, if rs has bounds, widen to enclose every source
// set's bbox.
func (rs *RegionSet) Merge(others []*RegionSet) (*RegionSet, error) {
	for _, o := range others {
		if o.dimension != rs.dimension {
			return nil, newShapeError("merge dimension mismatch: %d != %d", o.dimension, rs.dimension)
		}
	}

	merged := rs.Copy()

	if merged.bounds != nil {
		for _, o := range others {
			if o.Len() == 0 {
				continue
			}
			bbox, _ := o.BBox()
			if !merged.bounds.Encloses(bbox) {
				widened := merged.bounds.Union(bbox)
				merged.bounds = &widened
			}
		}
	}

	for _, o := range others {
		for _, r := range o.regions {
			merged.MustAdd(r.WithID(o.id + "_" + r.id))
		}
	}
	return merged, nil
}

// FromRandom constructs a new RegionSet with n randomly generated Regions,
// each enclosed by bounds, using rng.
func FromRandom(id string, n int, bounds Region, rng RandomFn) *RegionSet {
	rs := NewBoundedRegionSet(id, bounds)
	for _, r := range bounds.RandomRegions(n, nil, rng) {
		rs.MustAdd(r)
	}
	return rs
}

// FromMerge constructs a new RegionSet by merging the given sets, per
// RegionSet.Merge. Requires at least two sets.
func FromMerge(id string, sets []*RegionSet) (*RegionSet, error) {
	if len(sets) < 2 {
		panic(newShapeError("from_merge requires at least 2 region sets, got %d", len(sets)))
	}
	merged, err := sets[0].Merge(sets[1:])
	if err != nil {
		return nil, err
	}
	if id != "" {
		merged.id = id
	}
	return merged, nil
}

// RegionPair is an unordered pair of overlapping Regions, conventionally
// ordered (latest-begin, earlier-begin) when produced by a sweep.
type RegionPair [2]Region

// Overlaps lists every pairwise overlap between members, ordered by the
// lower bound of the given dimension. This is a direct, O(N^2) reference
// implementation that tests every dimension with Interval.Overlaps, so
// touching endpoints count as overlap. RegionSweep in sweep.go only
// yields candidates along one dimension; confirmedOverlaps in
// cyclesweep.go checks those against every dimension.
func (rs *RegionSet) Overlaps(dimension int) []RegionPair {
	var ordered []Region
	for _, ev := range rs.Timeline().Events(dimension) {
		if ev.Kind == EventBegin {
			ordered = append(ordered, ev.Context)
		}
	}

	var overlaps []RegionPair
	for _, first := range ordered {
		for _, second := range ordered {
			if first.id == second.id {
				continue
			}
			if first.Lower(dimension) > second.Lower(dimension) {
				continue
			}
			if containsPair(overlaps, second, first) {
				continue
			}
			if first.Overlaps(second) {
				overlaps = append(overlaps, RegionPair{first, second})
			}
		}
	}
	return overlaps
}

func containsPair(pairs []RegionPair, a, b Region) bool {
	for _, p := range pairs {
		if p[0].id == a.id && p[1].id == b.id {
			return true
		}
	}
	return false
}

// Intersect lists the pairwise intersection Regions between overlapping
// members, per Overlaps.
func (rs *RegionSet) Intersect(dimension int) []Region {
	pairs := rs.Overlaps(dimension)
	out := make([]Region, len(pairs))
	for i, p := range pairs {
		out[i], _ = p[0].Intersect(p[1], LinkageReference)
	}
	return out
}
