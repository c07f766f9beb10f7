package region

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestEnumerateByNxGraphScenario4(t *testing.T) {
	rs := NewRegionSet("s", 2)
	a := box("A", 0, 4, 0, 4)
	b := box("B", 2, 6, 2, 6)
	c := box("C", 3, 5, 3, 5)
	rs.MustAdd(a)
	rs.MustAdd(b)
	rs.MustAdd(c)

	rig := BuildRegionIntersectionGraph(rs, false)
	results := EnumerateByNxGraph(rig)
	assert.Equal(t, 4, len(results))
}

func TestEnumerateByNxGraphMatchesRCSweep(t *testing.T) {
	rs := NewRegionSet("s", 2)
	a := box("A", 0, 4, 0, 4)
	b := box("B", 2, 6, 2, 6)
	c := box("C", 3, 5, 3, 5)
	rs.MustAdd(a)
	rs.MustAdd(b)
	rs.MustAdd(c)

	rig := BuildRegionIntersectionGraph(rs, false)
	byGraph := EnumerateByNxGraph(rig)
	byCycle := EnumerateByRCSweep(rs, false)

	asKeySet := func(results []KWiseIntersection) map[string]bool {
		out := make(map[string]bool, len(results))
		for _, kw := range results {
			out[parentKey(kw.Parents)] = true
		}
		return out
	}

	graphKeys := asKeySet(byGraph)
	cycleKeys := asKeySet(byCycle)
	assert.Equal(t, len(graphKeys), len(cycleKeys))
	for key := range graphKeys {
		assert.Equal(t, true, cycleKeys[key])
	}
}

func TestSRQEnumByNxGraphScenario6(t *testing.T) {
	rs := NewRegionSet("s", 1)
	rs.MustAdd(box("X", 0, 10))
	rs.MustAdd(box("Y", 2, 4))
	rs.MustAdd(box("Z", 8, 12))
	rs.MustAdd(box("W", 20, 25))

	rig := BuildRegionIntersectionGraph(rs, false)
	results, err := SRQEnumByNxGraph(rig, "X")
	assert.Equal(t, nil, err)

	for _, kw := range results {
		assert.Equal(t, true, containsID(kw.Parents, "X"))
		assert.Equal(t, false, containsID(kw.Parents, "W"))
	}
}

func TestSRQEnumByNxGraphUnknownRegion(t *testing.T) {
	rs := NewRegionSet("s", 1)
	rs.MustAdd(box("X", 0, 10))
	rig := BuildRegionIntersectionGraph(rs, false)

	_, err := SRQEnumByNxGraph(rig, "missing")
	assert.NotEqual(t, nil, err)
}

func TestMRQEnumByNxGraph(t *testing.T) {
	rs := NewRegionSet("s", 1)
	rs.MustAdd(box("X", 0, 10))
	rs.MustAdd(box("Y", 2, 4))
	rs.MustAdd(box("W", 20, 25))

	rig := BuildRegionIntersectionGraph(rs, false)
	results, err := MRQEnumByNxGraph(rig, []string{"X", "Y"})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(results))
}
