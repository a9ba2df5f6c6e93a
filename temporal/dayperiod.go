package temporal

import (
	"fmt"
	"sort"

	"github.com/arloliu/tempo/errs"
)

// DayPeriodBoundary marks the start of one labeled period within a day.
type DayPeriodBoundary struct {
	Start TimeOfDay
	Label string
}

// DayPeriod partitions the day into labeled periods (e.g. "am"/"pm", or
// "morning"/"afternoon"/"evening"/"night"). Boundaries are kept sorted by
// start time; the period containing a time runs from its boundary up to the
// next one, wrapping past midnight.
type DayPeriod struct {
	boundaries []DayPeriodBoundary
}

// TwelveHourDayPeriod is the fixed am/pm split.
var TwelveHourDayPeriod = DayPeriod{
	boundaries: []DayPeriodBoundary{
		{Start: Midnight, Label: "am"},
		{Start: TimeOfDay{Hour: 12}, Label: "pm"},
	},
}

// NewDayPeriod builds a day period from boundaries. Boundaries must be
// non-empty, must not use the end-of-day marker as a start, and must not
// repeat a start time.
func NewDayPeriod(boundaries []DayPeriodBoundary) (DayPeriod, error) {
	if len(boundaries) == 0 {
		return DayPeriod{}, fmt.Errorf("%w: day period needs at least one boundary", errs.ErrRangeViolation)
	}

	sorted := make([]DayPeriodBoundary, len(boundaries))
	copy(sorted, boundaries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Compare(sorted[j].Start) < 0
	})

	for i, b := range sorted {
		if b.Start.IsEndOfDay() {
			return DayPeriod{}, fmt.Errorf("%w: day period boundary at end-of-day marker", errs.ErrRangeViolation)
		}
		if i > 0 && sorted[i-1].Start.Compare(b.Start) == 0 {
			return DayPeriod{}, fmt.Errorf("%w: duplicate day period boundary %s", errs.ErrRangeViolation, b.Start)
		}
	}

	return DayPeriod{boundaries: sorted}, nil
}

// Boundaries returns the sorted boundaries. The returned slice is a copy.
func (p DayPeriod) Boundaries() []DayPeriodBoundary {
	out := make([]DayPeriodBoundary, len(p.boundaries))
	copy(out, p.boundaries)

	return out
}

// Label returns the label of the period containing the given time. Times
// before the first boundary belong to the last period of the (previous) day.
func (p DayPeriod) Label(t TimeOfDay) string {
	if len(p.boundaries) == 0 {
		return ""
	}
	if t.IsEndOfDay() {
		t = Midnight
	}

	label := p.boundaries[len(p.boundaries)-1].Label
	for _, b := range p.boundaries {
		if t.Compare(b.Start) >= 0 {
			label = b.Label
		}
	}

	return label
}

// Equal reports whether two day periods carry identical boundaries.
func (p DayPeriod) Equal(other DayPeriod) bool {
	if len(p.boundaries) != len(other.boundaries) {
		return false
	}
	for i := range p.boundaries {
		if p.boundaries[i] != other.boundaries[i] {
			return false
		}
	}

	return true
}
