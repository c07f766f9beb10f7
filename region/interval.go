package region

// Interval is a closed real interval [Lower, Upper]. An Interval with
// Lower == Upper is degenerate but valid; Lower must never exceed Upper.
type Interval struct {
	Lower float64
	Upper float64
}

// NewInterval constructs an Interval, returning a ShapeError if lower is
// greater than upper.
func NewInterval(lower, upper float64) (Interval, error) {
	if lower > upper {
		return Interval{}, newShapeError("interval lower %v > upper %v", lower, upper)
	}
	return Interval{Lower: lower, Upper: upper}, nil
}

// Length returns Upper - Lower.
func (iv Interval) Length() float64 {
	return iv.Upper - iv.Lower
}

// Midpoint returns the midpoint of the interval.
func (iv Interval) Midpoint() float64 {
	return (iv.Lower + iv.Upper) / 2
}

// Contains reports whether v falls within the interval. incLower and
// incUpper control whether the respective bound is treated as closed.
func (iv Interval) Contains(v float64, incLower, incUpper bool) bool {
	lowerOk := v > iv.Lower || (incLower && v == iv.Lower)
	upperOk := v < iv.Upper || (incUpper && v == iv.Upper)
	return lowerOk && upperOk
}

// Encloses reports whether iv entirely covers other.
func (iv Interval) Encloses(other Interval) bool {
	return iv.Lower <= other.Lower && other.Upper <= iv.Upper
}

// Overlaps reports whether iv and other share at least one point.
// Touching endpoints (e.g. [0,5] and [5,10]) count as overlapping; use
// OverlapsStrict to exclude that case.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Lower <= other.Upper && other.Lower <= iv.Upper
}

// OverlapsStrict reports whether iv and other share more than a single
// touching endpoint.
func (iv Interval) OverlapsStrict(other Interval) bool {
	return iv.Lower < other.Upper && other.Lower < iv.Upper
}

// Intersect returns the interval covered by both iv and other. ok is false
// when the two intervals do not overlap, in which case the returned
// Interval is the zero value.
func (iv Interval) Intersect(other Interval) (result Interval, ok bool) {
	if !iv.Overlaps(other) {
		return Interval{}, false
	}
	lower := iv.Lower
	if other.Lower > lower {
		lower = other.Lower
	}
	upper := iv.Upper
	if other.Upper < upper {
		upper = other.Upper
	}
	return Interval{Lower: lower, Upper: upper}, true
}

// Union returns the smallest interval enclosing both iv and other,
// regardless of whether they overlap.
func (iv Interval) Union(other Interval) Interval {
	lower := iv.Lower
	if other.Lower < lower {
		lower = other.Lower
	}
	upper := iv.Upper
	if other.Upper > upper {
		upper = other.Upper
	}
	return Interval{Lower: lower, Upper: upper}
}

// Difference returns iv with the portion covered by other removed, when
// the remainder is expressible as a single interval. When other does not
// overlap iv, iv is returned unchanged with ok true. ok is false when
// other fully covers iv, or when other sits strictly inside iv and would
// split it into two intervals.
func (iv Interval) Difference(other Interval) (result Interval, ok bool) {
	if !iv.Overlaps(other) {
		return iv, true
	}
	if other.Lower <= iv.Lower && iv.Upper <= other.Upper {
		return Interval{}, false
	}
	if other.Lower <= iv.Lower {
		return Interval{Lower: other.Upper, Upper: iv.Upper}, true
	}
	if other.Upper >= iv.Upper {
		return Interval{Lower: iv.Lower, Upper: other.Lower}, true
	}
	// other sits strictly inside iv: removing it would split iv in two.
	return Interval{}, false
}

// RandomValues draws n values within the interval from the given random
// number generator, with whatever distribution rng samples.
func (iv Interval) RandomValues(n int, rng RandomFn) []float64 {
	return rng(n, iv.Lower, iv.Upper)
}

// RandomIntervals generates n random subintervals of iv, each no longer
// than maxLength, using the given random number generator.
func (iv Interval) RandomIntervals(n int, maxLength float64, rng RandomFn) []Interval {
	lowers := rng(n, iv.Lower, iv.Upper)
	result := make([]Interval, n)
	for i, lower := range lowers {
		length := maxLength
		if remaining := iv.Upper - lower; remaining < length {
			length = remaining
		}
		upperBound := lower + length
		if upperBound < lower {
			upperBound = lower
		}
		upper := rng(1, lower, upperBound)[0]
		result[i] = Interval{Lower: lower, Upper: upper}
	}
	return result
}
