package region

// RegionSweep performs the one-pass sweep-line algorithm of a RegionSet's
// timeline along one dimension: it maintains an active set of Regions
// whose Begin has been seen but not yet their End, and for every Begin it
// publishes an "intersect" event pairing the entering Region with each
// Region already active. Whether two Regions that only touch at a shared
// endpoint on this dimension count as overlapping is entirely a function
// of event order -- see RegionTimeline.EventsTieBreak -- not of any
// separate check here, which is what lets the same active-set loop serve
// both semantics.
type RegionSweep struct {
	set              *RegionSet
	dimension        int
	touchingOverlaps bool
	pub              *Publisher
}

// NewRegionSweep constructs a RegionSweep over set along dimension. When
// touchingOverlaps is true, two Regions that only share a boundary point
// along this dimension are published as overlapping; otherwise they are
// not -- resolving the open question of where the strict/touching
// distinction is decided, here per sweep rather than baked into the
// timeline.
func NewRegionSweep(set *RegionSet, dimension int, touchingOverlaps bool) *RegionSweep {
	return &RegionSweep{set: set, dimension: dimension, touchingOverlaps: touchingOverlaps, pub: NewPublisher()}
}

// Subscribe registers obs to receive "begin", "intersect", and "end"
// events once Run executes.
func (sw *RegionSweep) Subscribe(obs Observer) {
	sw.pub.Subscribe(obs)
}

// Run executes the sweep and returns the full list of detected candidate
// pairs, in publish order, each ordered (latest-begin, earlier-begin).
func (sw *RegionSweep) Run() []RegionPair {
	events := sw.set.Timeline().EventsTieBreak(sw.dimension, sw.touchingOverlaps)
	logSweepf("dimension=%d events=%d touching=%t", sw.dimension, len(events), sw.touchingOverlaps)

	var active []Region
	var pairs []RegionPair
	for _, ev := range events {
		switch ev.Kind {
		case EventBegin:
			sw.pub.Publish(Event{Kind: EventBegin, Payload: ev.Context})
			for _, other := range active {
				pair := RegionPair{ev.Context, other}
				pairs = append(pairs, pair)
				sw.pub.Publish(Event{Kind: EventIntersect, Payload: pair})
				logSweepTracef("candidate %s x %s on dimension %d", ev.Context.ID(), other.ID(), sw.dimension)
			}
			active = append(active, ev.Context)
		case EventEnd:
			active = removeRegion(active, ev.Context.ID())
			sw.pub.Publish(Event{Kind: EventEnd, Payload: ev.Context})
		}
	}

	sw.pub.Done()
	return pairs
}

func removeRegion(active []Region, id string) []Region {
	for i, r := range active {
		if r.ID() == id {
			return append(active[:i], active[i+1:]...)
		}
	}
	return active
}

// RegionSweepOverlaps runs a RegionSweep over set along dimension and
// returns the detected pairwise overlaps directly, with no subscribers
// attached -- the convenience form a caller reaches for when it just
// wants the pairs.
func RegionSweepOverlaps(set *RegionSet, dimension int, touchingOverlaps bool) []RegionPair {
	return NewRegionSweep(set, dimension, touchingOverlaps).Run()
}
