package temporal

// Month is a calendar month, January=1 through December=12.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// MonthCycle is the cycle length of the month enumeration.
const MonthCycle = 12

func (m Month) String() string {
	if m < January || m > December {
		return "Unknown"
	}

	return monthNames[m-1]
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Quarter returns the calendar quarter containing the month.
func (m Month) Quarter() Quarter {
	return Quarter((int(m)-1)/3 + 1)
}

// Weekday is an ISO-8601 day of week, Monday=1 through Sunday=7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayCycle is the cycle length of the weekday enumeration.
const WeekdayCycle = 7

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Unknown"
	}

	return weekdayNames[w-1]
}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Quarter is a calendar quarter, Q1=1 through Q4=4.
type Quarter int

const (
	Q1 Quarter = iota + 1
	Q2
	Q3
	Q4
)

// QuarterCycle is the cycle length of the quarter enumeration.
const QuarterCycle = 4

func (q Quarter) String() string {
	switch q {
	case Q1:
		return "Q1"
	case Q2:
		return "Q2"
	case Q3:
		return "Q3"
	case Q4:
		return "Q4"
	default:
		return "Unknown"
	}
}

// FirstMonth returns the first calendar month of the quarter.
func (q Quarter) FirstMonth() Month {
	return Month((int(q)-1)*3 + 1)
}

// LastMonth returns the last calendar month of the quarter.
func (q Quarter) LastMonth() Month {
	return Month(int(q) * 3)
}

// Unit is a calendar or clock unit, ordered coarse to fine. The zero value
// means "no unit" and marks fields without a defined base unit.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitYears
	UnitQuarters
	UnitMonths
	UnitWeeks
	UnitDays
	UnitHours
	UnitMinutes
	UnitSeconds
	UnitMillis
	UnitMicros
	UnitNanos
)

func (u Unit) String() string {
	if int(u) >= len(unitNames) {
		return "Unknown"
	}

	return unitNames[u]
}

var unitNames = []string{
	"None", "Years", "Quarters", "Months", "Weeks", "Days",
	"Hours", "Minutes", "Seconds", "Millis", "Micros", "Nanos",
}

// IsCalendrical reports whether the unit measures whole calendar days or
// coarser spans.
func (u Unit) IsCalendrical() bool {
	return u >= UnitYears && u <= UnitDays
}

// IsClock reports whether the unit is a sub-day clock unit.
func (u Unit) IsClock() bool {
	return u >= UnitHours && u <= UnitNanos
}

// Nanos returns the length of one clock unit in nanoseconds, or 0 for
// calendrical units which have no fixed nanosecond length.
func (u Unit) Nanos() int64 {
	switch u {
	case UnitHours:
		return 3_600_000_000_000
	case UnitMinutes:
		return 60_000_000_000
	case UnitSeconds:
		return 1_000_000_000
	case UnitMillis:
		return 1_000_000
	case UnitMicros:
		return 1_000
	case UnitNanos:
		return 1
	default:
		return 0
	}
}
