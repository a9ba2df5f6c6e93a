package temporal

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
)

// WeekModel describes how a calendar groups days into weeks: which day starts
// the week, how many days of the first calendar week must fall into the new
// year, and which days form the weekend.
type WeekModel struct {
	FirstDay     Weekday
	MinimalDays  int // 1..7
	WeekendStart Weekday
	WeekendEnd   Weekday
}

// ISOWeekModel is the ISO-8601 week definition: weeks start on Monday, the
// first week of the year contains at least 4 January days, weekend is
// Saturday/Sunday.
var ISOWeekModel = WeekModel{
	FirstDay:     Monday,
	MinimalDays:  4,
	WeekendStart: Saturday,
	WeekendEnd:   Sunday,
}

// NewWeekModel validates the components and returns the model.
func NewWeekModel(firstDay Weekday, minimalDays int, weekendStart, weekendEnd Weekday) (WeekModel, error) {
	if firstDay < Monday || firstDay > Sunday || weekendStart < Monday || weekendStart > Sunday ||
		weekendEnd < Monday || weekendEnd > Sunday {
		return WeekModel{}, fmt.Errorf("%w: invalid weekday in week model", errs.ErrRangeViolation)
	}
	if minimalDays < 1 || minimalDays > 7 {
		return WeekModel{}, fmt.Errorf("%w: minimal days %d", errs.ErrRangeViolation, minimalDays)
	}

	return WeekModel{
		FirstDay:     firstDay,
		MinimalDays:  minimalDays,
		WeekendStart: weekendStart,
		WeekendEnd:   weekendEnd,
	}, nil
}

// IsISO reports whether the model equals the ISO-8601 definition.
func (m WeekModel) IsISO() bool {
	return m == ISOWeekModel
}

// IsWeekend reports whether the weekday falls on the model's weekend. The
// weekend may wrap around the week boundary (e.g. Friday..Saturday).
func (m WeekModel) IsWeekend(day Weekday) bool {
	if m.WeekendStart <= m.WeekendEnd {
		return day >= m.WeekendStart && day <= m.WeekendEnd
	}

	return day >= m.WeekendStart || day <= m.WeekendEnd
}
