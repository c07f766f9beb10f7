package region

import (
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		overlaps bool
		strict   bool
	}{
		{"disjoint", Interval{0, 1}, Interval{2, 3}, false, false},
		{"touching", Interval{0, 5}, Interval{5, 10}, true, false},
		{"overlapping", Interval{0, 10}, Interval{5, 15}, true, true},
		{"enclosed", Interval{0, 10}, Interval{2, 8}, true, true},
		{"identical", Interval{0, 10}, Interval{0, 10}, true, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.strict, tt.a.OverlapsStrict(tt.b))
		})
	}
}

func TestIntervalIntersect(t *testing.T) {
	result, ok := Interval{0, 10}.Intersect(Interval{5, 15})
	assert.Equal(t, true, ok)
	assert.Equal(t, Interval{5, 10}, result)

	_, ok = Interval{0, 1}.Intersect(Interval{2, 3})
	assert.Equal(t, false, ok)
}

func TestIntervalUnion(t *testing.T) {
	result := Interval{0, 1}.Union(Interval{5, 10})
	assert.Equal(t, Interval{0, 10}, result)
}

func TestIntervalDifference(t *testing.T) {
	result, ok := Interval{0, 10}.Difference(Interval{8, 20})
	assert.Equal(t, true, ok)
	assert.Equal(t, Interval{0, 8}, result)

	result, ok = Interval{0, 10}.Difference(Interval{-5, 2})
	assert.Equal(t, true, ok)
	assert.Equal(t, Interval{2, 10}, result)

	_, ok = Interval{0, 10}.Difference(Interval{-1, 11})
	assert.Equal(t, false, ok)

	_, ok = Interval{0, 10}.Difference(Interval{3, 6})
	assert.Equal(t, false, ok)

	result, ok = Interval{0, 10}.Difference(Interval{20, 30})
	assert.Equal(t, true, ok)
	assert.Equal(t, Interval{0, 10}, result)
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{0, 10}
	assert.Equal(t, true, iv.Contains(5, true, true))
	assert.Equal(t, true, iv.Contains(0, true, true))
	assert.Equal(t, false, iv.Contains(0, false, true))
	assert.Equal(t, true, iv.Contains(10, true, true))
	assert.Equal(t, false, iv.Contains(10, true, false))
	assert.Equal(t, false, iv.Contains(11, true, true))
}

func TestNewIntervalRejectsInverted(t *testing.T) {
	_, err := NewInterval(10, 0)
	assert.NotEqual(t, nil, err)
	var shapeErr *ShapeError
	assert.Equal(t, true, errors.As(err, &shapeErr))
}
