package region

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestRegionCycleSweepTripleScenario4(t *testing.T) {
	rs := NewRegionSet("s", 2)
	a := box("A", 0, 4, 0, 4)
	b := box("B", 2, 6, 2, 6)
	c := box("C", 3, 5, 3, 5)
	rs.MustAdd(a)
	rs.MustAdd(b)
	rs.MustAdd(c)

	results := EnumerateByRCSweep(rs, false)

	pairwise, triple := 0, 0
	for _, kw := range results {
		switch len(kw.Parents) {
		case 2:
			pairwise++
		case 3:
			triple++
		}
	}
	assert.Equal(t, 3, pairwise)
	assert.Equal(t, 1, triple)
	assert.Equal(t, 4, len(results))
}

func TestRegionCycleSweepRestrictedScenario6(t *testing.T) {
	rs := NewRegionSet("s", 1)
	x := box("X", 0, 10)
	y := box("Y", 2, 4)
	z := box("Z", 8, 12)
	w := box("W", 20, 25)
	rs.MustAdd(x)
	rs.MustAdd(y)
	rs.MustAdd(z)
	rs.MustAdd(w)

	results, err := SRQEnumByRCSweep(rs, "X", false)
	assert.Equal(t, nil, err)

	for _, kw := range results {
		assert.Equal(t, true, containsID(kw.Parents, "X"))
		assert.Equal(t, false, containsID(kw.Parents, "W"))
	}
}

func TestRegionCycleSweepDisjointProducesNothing(t *testing.T) {
	rs := NewRegionSet("s", 1)
	rs.MustAdd(box("A", 0, 1))
	rs.MustAdd(box("B", 2, 3))

	results := EnumerateByRCSweep(rs, false)
	assert.Equal(t, 0, len(results))
}
