package temporal

import (
	"fmt"

	"github.com/arloliu/tempo/errs"
)

// Date is an immutable proleptic Gregorian calendar date. Year may be zero or
// negative; Month is 1..12 and Day is 1..LengthOfMonth(Year, Month).
type Date struct {
	Year  int
	Month Month
	Day   int
}

// NewDate validates the components and returns the date.
func NewDate(year int, month Month, day int) (Date, error) {
	if month < January || month > December {
		return Date{}, fmt.Errorf("%w: month %d", errs.ErrRangeViolation, month)
	}
	if day < 1 || day > LengthOfMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d of %d-%02d", errs.ErrRangeViolation, day, year, month)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is like NewDate but panics on invalid components. Intended for
// constants and tests.
func MustDate(year int, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}

	return d
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsLeapYear reports whether the proleptic Gregorian year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// LengthOfMonth returns the number of days in the given month of the given year.
func LengthOfMonth(year int, month Month) int {
	switch month {
	case February:
		if IsLeapYear(year) {
			return 29
		}

		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// LengthOfYear returns 366 for leap years and 365 otherwise.
func LengthOfYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}

	return 365
}

// cumulative days before the first of each month in a non-leap year
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// DayOfYear returns the ordinal day within the year, 1..LengthOfYear.
func (d Date) DayOfYear() int {
	doy := daysBeforeMonth[d.Month-1] + d.Day
	if d.Month > February && IsLeapYear(d.Year) {
		doy++
	}

	return doy
}

// EpochDays returns the number of days between this date and 1970-01-01,
// negative for earlier dates. The conversion is exact over the full proleptic
// Gregorian range.
func (d Date) EpochDays() int64 {
	y := int64(d.Year)
	if d.Month <= February {
		y--
	}

	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]

	m := int64(d.Month)
	var mp int64
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + int64(d.Day) - 1        // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy        // [0, 146096]

	return era*146097 + doe - 719468
}

// DateFromEpochDays is the inverse of EpochDays.
func DateFromEpochDays(days int64) Date {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097                                       // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365      // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)                    // [0, 365]
	mp := (5*doy + 2) / 153                                     // [0, 11]
	day := int(doy - (153*mp+2)/5 + 1)

	var month Month
	if mp < 10 {
		month = Month(mp + 3)
	} else {
		month = Month(mp - 9)
	}
	if month <= February {
		y++
	}

	return Date{Year: int(y), Month: month, Day: day}
}

// DayOfWeek returns the ISO weekday of the date.
func (d Date) DayOfWeek() Weekday {
	// 1970-01-01 was a Thursday.
	return Weekday(floorMod(d.EpochDays()+3, 7) + 1)
}

// AddDays returns the date shifted by the given number of calendar days.
func (d Date) AddDays(days int64) Date {
	return DateFromEpochDays(d.EpochDays() + days)
}

// AddMonths returns the date shifted by the given number of calendar months,
// clamping the day to the last valid day of the resulting month.
func (d Date) AddMonths(months int64) Date {
	total := int64(d.Year)*12 + int64(d.Month) - 1 + months
	year := int(floorDiv(total, 12))
	month := Month(floorMod(total, 12) + 1)

	day := d.Day
	if limit := LengthOfMonth(year, month); day > limit {
		day = limit
	}

	return Date{Year: year, Month: month, Day: day}
}

// Compare orders dates chronologically: -1, 0 or +1.
func (d Date) Compare(other Date) int {
	a, b := d.EpochDays(), other.EpochDays()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
