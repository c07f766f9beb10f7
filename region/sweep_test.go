package region

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestRegionSweepOverlapsScenario1(t *testing.T) {
	rs := NewRegionSet("s", 2)
	a := box("A", 0, 10, 0, 10)
	b := box("B", 5, 15, 5, 15)
	rs.MustAdd(a)
	rs.MustAdd(b)

	pairs := RegionSweepOverlaps(rs, 0, false)
	assert.Equal(t, 1, len(pairs))
	assert.Equal(t, true, pairs[0][0].Overlaps(pairs[0][1]))
}

func TestRegionSweepDisjointScenario2(t *testing.T) {
	rs := NewRegionSet("s", 2)
	rs.MustAdd(box("A", 0, 1, 0, 1))
	rs.MustAdd(box("B", 2, 3, 2, 3))

	pairs := RegionSweepOverlaps(rs, 0, false)
	assert.Equal(t, 0, len(pairs))
}

func TestRegionSweepTouchingScenario3(t *testing.T) {
	rs := NewRegionSet("s", 2)
	rs.MustAdd(box("A", 0, 5, 0, 5))
	rs.MustAdd(box("B", 5, 10, 0, 5))

	pairs := RegionSweepOverlaps(rs, 0, false)
	assert.Equal(t, 0, len(pairs))

	pairs = RegionSweepOverlaps(rs, 0, true)
	assert.Equal(t, 1, len(pairs))
}

func TestRegionSweepThreeMutualScenario4(t *testing.T) {
	rs := NewRegionSet("s", 2)
	a := box("A", 0, 4, 0, 4)
	b := box("B", 2, 6, 2, 6)
	c := box("C", 3, 5, 3, 5)
	rs.MustAdd(a)
	rs.MustAdd(b)
	rs.MustAdd(c)

	pairs := RegionSweepOverlaps(rs, 0, false)
	assert.Equal(t, 3, len(pairs))
}

func TestRegionSweepPublishesEventsInOrder(t *testing.T) {
	rs := NewRegionSet("s", 1)
	rs.MustAdd(box("A", 0, 5))
	rs.MustAdd(box("B", 1, 6))

	sweep := NewRegionSweep(rs, 0, false)
	var kinds []EventKind
	sub := NewSubscriber().OnDefault(func(ev Event) { kinds = append(kinds, ev.Kind) })
	sweep.Subscribe(sub)
	sweep.Run()

	assert.Equal(t, []EventKind{EventBegin, EventBegin, EventIntersect, EventEnd, EventEnd}, kinds)
}
