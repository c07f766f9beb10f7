package region

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func box(id string, dims ...float64) Region {
	intervals := make([]Interval, 0, len(dims)/2)
	for i := 0; i < len(dims); i += 2 {
		intervals = append(intervals, Interval{dims[i], dims[i+1]})
	}
	return MustNewRegion(id, intervals)
}

func TestRegionOverlapsAndIntersect(t *testing.T) {
	a := box("A", 0, 10, 0, 10)
	b := box("B", 5, 15, 5, 15)

	assert.Equal(t, true, a.Overlaps(b))

	result, ok := a.Intersect(b, LinkageReference)
	assert.Equal(t, true, ok)
	assert.Equal(t, Interval{5, 10}, result.Interval(0))
	assert.Equal(t, Interval{5, 10}, result.Interval(1))
	assert.Equal(t, ProvenanceIntersect, result.Provenance().Mode)
	assert.Equal(t, []string{a.ID(), b.ID()}, result.Provenance().Parents)
}

func TestRegionDisjointIntersectFails(t *testing.T) {
	a := box("A", 0, 1, 0, 1)
	b := box("B", 2, 3, 2, 3)
	_, ok := a.Intersect(b, LinkageNone)
	assert.Equal(t, false, ok)
}

func TestFromIntersectTripleOverlap(t *testing.T) {
	a := box("A", 0, 4, 0, 4)
	b := box("B", 2, 6, 2, 6)
	c := box("C", 3, 5, 3, 5)

	result, ok := FromIntersect([]Region{a, b, c}, true)
	assert.Equal(t, true, ok)
	assert.Equal(t, Interval{3, 4}, result.Interval(0))
	assert.Equal(t, Interval{3, 4}, result.Interval(1))
	assert.Equal(t, []string{"A", "B", "C"}, result.Provenance().Parents)
}

// TestFromIntersectTripleFromPairwiseOverlaps exercises the family of
// three mutually overlapping regions used in the clique-verification
// scenario: every pair overlaps, and their common intersection is
// non-empty, as it always is for axis-aligned boxes (pairwise overlap per
// dimension forces a common point on that dimension via the 1-D Helly
// property, so the verification step in EnumerateByNxGraph is a
// defensive check rather than one that can ever reject a real clique of
// boxes).
func TestFromIntersectTripleFromPairwiseOverlaps(t *testing.T) {
	a := box("A", 0, 2, 0, 2)
	b := box("B", 1, 3, 0, 2)
	c := box("C", 0, 3, 1.5, 2)

	assert.Equal(t, true, a.Overlaps(b))
	assert.Equal(t, true, a.Overlaps(c))
	assert.Equal(t, true, b.Overlaps(c))

	result, ok := FromIntersect([]Region{a, b, c}, true)
	assert.Equal(t, true, ok)
	assert.Equal(t, Interval{1, 2}, result.Interval(0))
	assert.Equal(t, Interval{1.5, 2}, result.Interval(1))
}

func TestRegionEncloses(t *testing.T) {
	outer := box("outer", 0, 10, 0, 10)
	inner := box("inner", 2, 8, 2, 8)
	assert.Equal(t, true, outer.Encloses(inner))
	assert.Equal(t, false, inner.Encloses(outer))
}

func TestFromUnionRecordsAllParents(t *testing.T) {
	a := box("A", 0, 1)
	b := box("B", 2, 3)
	c := box("C", -1, 0.5)

	result := FromUnion([]Region{a, b, c})
	assert.Equal(t, Interval{-1, 3}, result.Interval(0))
	assert.Equal(t, []string{"A", "B", "C"}, result.Provenance().Parents)
}

func TestRegionProject(t *testing.T) {
	r := box("r", 0, 1, 2, 3, 4, 5)
	projected := r.Project([]int{2, 0})
	assert.Equal(t, 2, projected.Dimension())
	assert.Equal(t, Interval{4, 5}, projected.Interval(0))
	assert.Equal(t, Interval{0, 1}, projected.Interval(1))
}
