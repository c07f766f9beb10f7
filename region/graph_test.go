package region

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestBuildRegionIntersectionGraphScenario1(t *testing.T) {
	rs := NewRegionSet("s", 2)
	a := box("A", 0, 10, 0, 10)
	b := box("B", 5, 15, 5, 15)
	rs.MustAdd(a)
	rs.MustAdd(b)

	rig := BuildRegionIntersectionGraph(rs, false)
	assert.Equal(t, 2, rig.NodeCount())
	assert.Equal(t, 1, rig.EdgeCount())

	nodeA, ok := rig.NodeID("A")
	assert.Equal(t, true, ok)
	nodeB, ok := rig.NodeID("B")
	assert.Equal(t, true, ok)

	intersect, ok := rig.Intersect(nodeA, nodeB)
	assert.Equal(t, true, ok)
	assert.Equal(t, Interval{5, 10}, intersect.Interval(0))
}

func TestBuildRegionIntersectionGraphDropsPartialOverlap(t *testing.T) {
	rs := NewRegionSet("s", 2)
	// overlap only on dimension 0, not dimension 1: not a true region overlap.
	rs.MustAdd(box("A", 0, 10, 0, 1))
	rs.MustAdd(box("B", 5, 15, 5, 6))

	rig := BuildRegionIntersectionGraph(rs, false)
	assert.Equal(t, 0, rig.EdgeCount())
}

func TestBuildRegionIntersectionGraphMatchesSweep(t *testing.T) {
	rs := NewRegionSet("s", 2)
	a := box("A", 0, 4, 0, 4)
	b := box("B", 2, 6, 2, 6)
	c := box("C", 3, 5, 3, 5)
	rs.MustAdd(a)
	rs.MustAdd(b)
	rs.MustAdd(c)

	rig := BuildRegionIntersectionGraph(rs, false)
	assert.Equal(t, 3, rig.EdgeCount())
}
