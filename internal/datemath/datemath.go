// Package datemath implements proleptic Gregorian calendar arithmetic.
// It converts between (year, month, day) triples and a linear epoch day
// count where day 0 is 1970-01-01. It does not depend on time.Location
// or any wall-clock notion; it is pure integer math.
//
// The cycle-based conversion follows the approach of time.go in the Go
// standard library's time package, adjusted to count days instead of
// seconds.
package datemath

const (
	// absoluteZeroYear is the unsigned zero year for internal
	// calculations. Must be 1 mod 400. Dates before it do not compute
	// correctly, which is fine because it predates the supported year
	// range by a wide margin.
	absoluteZeroYear = -292277022399

	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1
)

// unixEpochDays is the number of days from absoluteZeroYear to 1970-01-01.
var unixEpochDays = int64(daysToYear(1970))

// daysBefore[m] counts the days in a non-leap year before month m+1
// begins. The entry for m=12 is the length of a non-leap year.
var daysBefore = [13]int{
	0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365,
}

// IsLeapYear reports whether the year is a leap year in the proleptic
// Gregorian calendar: divisible by 4, but centuries only when divisible
// by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MonthLength returns the number of days in the given month (1-12) of
// the given year.
func MonthLength(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// daysToYear returns the number of days from absoluteZeroYear to the
// start of the given year. This is basically (year - zeroYear) * 365
// plus leap days.
func daysToYear(year int) uint64 {
	y := uint64(int64(year) - absoluteZeroYear)

	// 400-year cycles.
	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	// 100-year cycles.
	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	// 4-year cycles.
	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	// Non-leap years.
	d += 365 * y

	return d
}

// ToEpochDay converts a calendar date to its epoch day, the signed
// number of days since 1970-01-01. The caller must pass a valid date;
// month must be in [1,12] and day in [1, MonthLength(year, month)].
func ToEpochDay(year, month, day int) int64 {
	d := daysToYear(year) + uint64(daysBefore[month-1]) + uint64(day-1)
	if month > 2 && IsLeapYear(year) {
		d++ // leap day
	}
	return int64(d) - unixEpochDays
}

// FromEpochDay converts an epoch day back to its calendar date. It is
// the exact inverse of ToEpochDay for every day within the supported
// year range.
func FromEpochDay(epochDay int64) (year, month, day int) {
	d := uint64(epochDay + unixEpochDays)

	// Strip off 400-year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Strip off 100-year cycles. The last cycle has an extra leap day,
	// so decrement n after four cycles to keep that day in this era.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Strip off 4-year cycles.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Strip off non-leap years, capping at 3 so the leap day of the
	// 4-year cycle stays in the last year.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	dayOfYear := int(d) // zero-based

	if IsLeapYear(year) {
		switch {
		case dayOfYear > 31+29-1:
			// After the leap day; index as if the year were regular.
			dayOfYear--
		case dayOfYear == 31+29-1:
			return year, 2, 29
		}
	}

	// Estimate the month from the day of year, then correct. Every
	// month spans at least 31 indices in the estimate, so the guess is
	// off by at most one.
	month = dayOfYear/31 + 1
	if dayOfYear >= daysBefore[month] {
		month++
	}
	day = dayOfYear - daysBefore[month-1] + 1
	return year, month, day
}

// Weekday returns the day of the week for a calendar date, where
// 0=Monday, 1=Tuesday, ..., 6=Sunday. It derives the weekday from the
// epoch day; 1970-01-01 was a Thursday.
func Weekday(year, month, day int) int {
	ed := ToEpochDay(year, month, day)
	// Thursday = 3 with Monday = 0.
	return int(((ed%7)+7+3) % 7)
}

// DayOfYear returns the one-based ordinal day of the year for a valid
// calendar date.
func DayOfYear(year, month, day int) int {
	d := daysBefore[month-1] + day
	if month > 2 && IsLeapYear(year) {
		d++
	}
	return d
}
