package chrono

import (
	"fmt"

	"github.com/ngrash/go-chrono/internal/datemath"
)

const (
	// MinYear is the smallest supported year.
	MinYear = -999_999_999
	// MaxYear is the largest supported year.
	MaxYear = 999_999_999
)

// minEpochDay and maxEpochDay bound the epoch days of MinYear-01-01
// and MaxYear-12-31.
var (
	minEpochDay = datemath.ToEpochDay(MinYear, 1, 1)
	maxEpochDay = datemath.ToEpochDay(MaxYear, 12, 31)
)

// Date is a calendar date in the proleptic Gregorian calendar, such as
// 2024-04-21. It has no time of day and no time zone. The zero value
// is 1970-01-01.
type Date struct {
	// days is the epoch day: days since 1970-01-01, possibly negative.
	days int64
}

// NewDate returns the Date for the given proleptic year, month (1-12)
// and day of month. It returns a *FieldError naming the offending
// field if any value is out of range, including impossible dates like
// February 30. It never clamps.
func NewDate(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fieldError("year", int64(year), MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return Date{}, fieldError("month", int64(month), 1, 12)
	}
	if max := datemath.MonthLength(year, month); day < 1 || day > max {
		return Date{}, fieldError("day", int64(day), 1, int64(max))
	}
	return Date{days: datemath.ToEpochDay(year, month, day)}, nil
}

// MustDate is like NewDate but panics on invalid input. It is intended
// for constants and tests.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic("chrono: " + err.Error())
	}
	return d
}

// DateFromEpochDay returns the Date for the given number of days since
// 1970-01-01.
func DateFromEpochDay(epochDay int64) (Date, error) {
	if epochDay < minEpochDay || epochDay > maxEpochDay {
		return Date{}, fieldError("epoch day", epochDay, minEpochDay, maxEpochDay)
	}
	return Date{days: epochDay}, nil
}

// IsLeapYear reports whether the year is a leap year in the proleptic
// Gregorian calendar.
func IsLeapYear(year int) bool {
	return datemath.IsLeapYear(year)
}

// MonthLength returns the number of days in the given month (1-12) of
// the given year: 28, 29, 30 or 31.
func MonthLength(year, month int) int {
	return datemath.MonthLength(year, month)
}

// EpochDay returns the number of days since 1970-01-01.
func (d Date) EpochDay() int64 { return d.days }

// Date returns the year, month and day fields.
func (d Date) Date() (year, month, day int) {
	return datemath.FromEpochDay(d.days)
}

// Year returns the proleptic year.
func (d Date) Year() int { y, _, _ := d.Date(); return y }

// Month returns the month of year, 1-12.
func (d Date) Month() int { _, m, _ := d.Date(); return m }

// Day returns the day of month, 1-31.
func (d Date) Day() int { _, _, dom := d.Date(); return dom }

// Weekday returns the day of the week.
func (d Date) Weekday() Weekday {
	return Weekday(((d.days % 7) + 7 + 3) % 7)
}

// DayOfYear returns the one-based ordinal day of the year.
func (d Date) DayOfYear() int {
	y, m, dom := d.Date()
	return datemath.DayOfYear(y, m, dom)
}

// AddDays returns the date n days after d, or before for negative n.
func (d Date) AddDays(n int64) (Date, error) {
	ed := d.days + n
	// Overflow of the int64 addition itself also lands outside the
	// epoch day bounds, except when it wraps all the way around, which
	// the sign check catches.
	if (n > 0 && ed < d.days) || (n < 0 && ed > d.days) || ed < minEpochDay || ed > maxEpochDay {
		return Date{}, rangeError("AddDays")
	}
	return Date{days: ed}, nil
}

// AddMonths returns the date n months after d. If the day of month
// would be invalid in the resulting month, it is clamped to the last
// valid day: 2024-01-31 plus one month is 2024-02-29. This clamping is
// deliberate and applies only to month and year arithmetic.
func (d Date) AddMonths(n int64) (Date, error) {
	y, m, dom := d.Date()
	months := int64(y)*12 + int64(m-1) + n
	if (n > 0 && months < int64(y)*12) || (n < 0 && months > int64(y)*12+int64(m-1)) {
		return Date{}, rangeError("AddMonths")
	}
	ny := floorDiv(months, 12)
	nm := int(floorMod(months, 12)) + 1
	if ny < MinYear || ny > MaxYear {
		return Date{}, rangeError("AddMonths")
	}
	if max := datemath.MonthLength(int(ny), nm); dom > max {
		dom = max
	}
	return Date{days: datemath.ToEpochDay(int(ny), nm, dom)}, nil
}

// AddYears returns the date n years after d, clamping February 29 to
// February 28 when the resulting year is not a leap year.
func (d Date) AddYears(n int64) (Date, error) {
	if n > maxInt64/12 || n < minInt64/12 {
		return Date{}, rangeError("AddYears")
	}
	return d.AddMonths(n * 12)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.days < other.days:
		return -1
	case d.days > other.days:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool { return d.days < other.days }

// After reports whether d is after other.
func (d Date) After(other Date) bool { return d.days > other.days }

// String returns the ISO-8601 representation, e.g. "2024-04-21".
// Years outside [0, 9999] carry a sign and use as many digits as
// needed.
func (d Date) String() string {
	y, m, dom := d.Date()
	return fmt.Sprintf("%s-%02d-%02d", formatYear(y), m, dom)
}

func formatYear(y int) string {
	if y >= 0 && y <= 9999 {
		return fmt.Sprintf("%04d", y)
	}
	if y < 0 && y >= -9999 {
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%+d", y)
}

// Weekday is a day of the week, where Monday is 0.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "<UNDEFINED>"
	}
	return weekdayNames[w]
}

// floorDiv divides and rounds toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv, always in [0, b).
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
