package region

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestRegionSetAddRejectsDimensionMismatch(t *testing.T) {
	rs := NewRegionSet("s", 2)
	err := rs.Add(box("a", 0, 1))
	assert.NotEqual(t, nil, err)
}

func TestRegionSetAddRejectsOutOfBounds(t *testing.T) {
	bounds := box("bounds", 0, 10, 0, 10)
	rs := NewBoundedRegionSet("s", bounds)
	err := rs.Add(box("out", 5, 20, 5, 20))
	assert.NotEqual(t, nil, err)

	err = rs.Add(box("in", 1, 2, 1, 2))
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, rs.Len())
}

func TestRegionSetSubsetPreservesOrder(t *testing.T) {
	rs := NewRegionSet("s", 1)
	rs.MustAdd(box("A", 0, 1))
	rs.MustAdd(box("B", 1, 2))
	rs.MustAdd(box("C", 2, 3))

	sub, err := rs.Subset([]string{"C", "A"})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, "C", sub.Regions()[0].ID())
	assert.Equal(t, "A", sub.Regions()[1].ID())
}

func TestRegionSetSubsetUnknownID(t *testing.T) {
	rs := NewRegionSet("s", 1)
	rs.MustAdd(box("A", 0, 1))
	_, err := rs.Subset([]string{"missing"})
	assert.NotEqual(t, nil, err)
}

func TestRegionSetMergePrefixesIDs(t *testing.T) {
	left := NewRegionSet("left", 1)
	left.MustAdd(box("x", 0, 1))
	right := NewRegionSet("right", 1)
	right.MustAdd(box("x", 2, 3))

	merged, err := left.Merge([]*RegionSet{right})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, merged.Len())
	assert.Equal(t, true, merged.Contains("x"))
	assert.Equal(t, true, merged.Contains("right_x"))
}

func TestRegionSetOverlapsMatchesPairwiseOverlap(t *testing.T) {
	rs := NewRegionSet("s", 2)
	a := box("A", 0, 10, 0, 10)
	b := box("B", 5, 15, 5, 15)
	c := box("C", 20, 30, 20, 30)
	rs.MustAdd(a)
	rs.MustAdd(b)
	rs.MustAdd(c)

	pairs := rs.Overlaps(0)
	assert.Equal(t, 1, len(pairs))
}

func TestRegionSetFilter(t *testing.T) {
	rs := NewRegionSet("s", 1)
	rs.MustAdd(box("A", 0, 1))
	rs.MustAdd(box("B", 5, 6))
	rs.MustAdd(box("C", 9, 10))

	filtered, err := rs.Filter(box("window", 0, 6))
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, filtered.Len())
}

func TestRegionSetMinBounds(t *testing.T) {
	rs := NewRegionSet("s", 1)
	rs.MustAdd(box("A", 0, 1))
	rs.MustAdd(box("B", 5, 10))

	bounds, ok := rs.MinBounds()
	assert.Equal(t, true, ok)
	assert.Equal(t, Interval{0, 10}, bounds.Interval(0))
}
