package region

import "sort"

// EventKind is the closed set of event kinds this package ever produces:
// an MdTEvent on a RegionTimeline is always Begin or End, and a bus Event
// published by RegionSweep is Begin, Intersect, or End. Sharing one
// enum across both and dispatching on it with an exhaustive switch (see
// dimensionObserver.OnEvent and Subscriber.OnEvent) keeps handler
// selection a compile-time-checked match rather than a runtime lookup by
// name.
type EventKind int

const (
	// EventBegin marks a Region's lower bound along a dimension.
	EventBegin EventKind = iota
	// EventIntersect marks a candidate overlap between the Region
	// entering the active set and one already in it.
	EventIntersect
	// EventEnd marks a Region's upper bound along a dimension.
	EventEnd
)

func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "Begin"
	case EventIntersect:
		return "Intersect"
	case EventEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// MdTEvent is a point along a multi-dimensional timeline: a Region
// entering or leaving the sweep along one dimension.
type MdTEvent struct {
	When      float64
	Kind      EventKind
	Context   Region
	Dimension int
	order     int // insertion order, for deterministic tie-breaking
}

// RegionTimeline lazily and restartably produces, for a bound RegionSet,
// the sorted sequence of Begin/End events along any one of its
// dimensions. Events are ordered by When ascending, then by kind (End
// before Begin by default, touching endpoints not counting as an overlap
// on that dimension alone), then by insertion order.
//
// A RegionTimeline caches one sorted event slice per dimension on first
// request for the default tie-break; the touching tie-break slice is
// rebuilt on every call. RegionSet drops the timeline, and with it the
// cache, whenever a Region is added.
type RegionTimeline struct {
	regions *RegionSet

	cache map[int][]MdTEvent
}

func newRegionTimeline(rs *RegionSet) *RegionTimeline {
	return &RegionTimeline{regions: rs, cache: map[int][]MdTEvent{}}
}

// Events returns the sorted, restartable sequence of Begin/End events for
// the bound RegionSet along the given dimension, with the default
// End-before-Begin tie-break at equal When.
func (t *RegionTimeline) Events(dimension int) []MdTEvent {
	return t.EventsTieBreak(dimension, false)
}

// EventsTieBreak is like Events but lets the caller choose the tie-break
// at equal When: when touchingOverlaps is true, Begin is ordered before
// End, so two Regions that only touch at a shared endpoint register as
// overlapping on this dimension.
func (t *RegionTimeline) EventsTieBreak(dimension int, touchingOverlaps bool) []MdTEvent {
	if dimension < 0 || dimension >= t.regions.dimension {
		panic(newShapeError("dimension %d out of range [0, %d)", dimension, t.regions.dimension))
	}

	if !touchingOverlaps {
		if cached, ok := t.cache[dimension]; ok {
			return cached
		}
	}

	events := make([]MdTEvent, 0, 2*t.regions.Len())
	order := 0
	for _, r := range t.regions.regions {
		iv := r.Interval(dimension)
		events = append(events, MdTEvent{When: iv.Lower, Kind: EventBegin, Context: r, Dimension: dimension, order: order})
		order++
		events = append(events, MdTEvent{When: iv.Upper, Kind: EventEnd, Context: r, Dimension: dimension, order: order})
		order++
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.When != b.When {
			return a.When < b.When
		}
		if a.Kind != b.Kind {
			if touchingOverlaps {
				return a.Kind == EventBegin
			}
			return a.Kind == EventEnd
		}
		return a.order < b.order
	})

	if !touchingOverlaps {
		t.cache[dimension] = events
	}
	return events
}

// Dimension0 returns a DimensionTimeline bound to dimension 0, the
// default view used when no dimension is specified.
func (t *RegionTimeline) Dimension0() DimensionTimeline {
	return t.Bind(0)
}

// Bind returns a thin, single-dimension view over t.
func (t *RegionTimeline) Bind(dimension int) DimensionTimeline {
	return DimensionTimeline{timeline: t, dimension: dimension}
}

// DimensionTimeline is a single-dimension adapter over a RegionTimeline,
// binding the dimension index so callers that only care about one
// dimension don't have to pass it at every call site.
type DimensionTimeline struct {
	timeline  *RegionTimeline
	dimension int
}

// Events returns the sorted Begin/End events for the bound dimension.
func (d DimensionTimeline) Events() []MdTEvent {
	return d.timeline.Events(d.dimension)
}
