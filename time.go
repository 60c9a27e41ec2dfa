package chrono

import "fmt"

// Time is a wall-clock time of day with nanosecond precision, such as
// 15:30:45.5. It has no date and no time zone. The zero value is
// midnight.
type Time struct {
	// nano is the nanosecond of day, 0 <= nano < nanosPerDay.
	nano int64
}

// NewTime returns the Time for the given hour (0-23), minute (0-59),
// second (0-59) and nanosecond (0-999999999). It returns a *FieldError
// naming the offending field if any value is out of range.
func NewTime(hour, minute, second, nano int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, fieldError("hour", int64(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return Time{}, fieldError("minute", int64(minute), 0, 59)
	}
	if second < 0 || second > 59 {
		return Time{}, fieldError("second", int64(second), 0, 59)
	}
	if nano < 0 || nano > 999_999_999 {
		return Time{}, fieldError("nano", int64(nano), 0, 999_999_999)
	}
	n := int64(hour)*nanosPerHour + int64(minute)*nanosPerMinute + int64(second)*nanosPerSecond + int64(nano)
	return Time{nano: n}, nil
}

// MustTime is like NewTime but panics on invalid input. It is intended
// for constants and tests.
func MustTime(hour, minute, second, nano int) Time {
	t, err := NewTime(hour, minute, second, nano)
	if err != nil {
		panic("chrono: " + err.Error())
	}
	return t
}

// TimeFromNano returns the Time for the given nanosecond of day.
func TimeFromNano(nanoOfDay int64) (Time, error) {
	if nanoOfDay < 0 || nanoOfDay >= nanosPerDay {
		return Time{}, fieldError("nano of day", nanoOfDay, 0, nanosPerDay-1)
	}
	return Time{nano: nanoOfDay}, nil
}

// NanoOfDay returns the nanosecond of day, 0 <= n < 86_400_000_000_000.
func (t Time) NanoOfDay() int64 { return t.nano }

// Hour returns the hour of day, 0-23.
func (t Time) Hour() int { return int(t.nano / nanosPerHour) }

// Minute returns the minute of hour, 0-59.
func (t Time) Minute() int { return int(t.nano/nanosPerMinute) % 60 }

// Second returns the second of minute, 0-59.
func (t Time) Second() int { return int(t.nano/nanosPerSecond) % 60 }

// Nano returns the nanosecond of second, 0-999999999.
func (t Time) Nano() int { return int(t.nano % nanosPerSecond) }

// AddNanos returns the time n nanoseconds after t wrapped around
// midnight, together with the signed number of whole days the addition
// crossed. DateTime folds the day carry into its date part, so every
// time unit can reduce to AddNanos without duplicating carry logic.
func (t Time) AddNanos(n int64) (Time, int64) {
	// Split n first so the sum below stays far from the int64 bounds.
	days := floorDiv(n, nanosPerDay)
	sum := t.nano + floorMod(n, nanosPerDay)
	if sum >= nanosPerDay {
		days++
		sum -= nanosPerDay
	}
	return Time{nano: sum}, days
}

// AddSeconds returns the time n seconds after t and the day carry,
// like AddNanos.
func (t Time) AddSeconds(n int64) (Time, int64) {
	days := floorDiv(n, secondsPerDay)
	nt, carry := t.AddNanos(floorMod(n, secondsPerDay) * nanosPerSecond)
	return nt, days + carry
}

// AddMinutes returns the time n minutes after t and the day carry.
func (t Time) AddMinutes(n int64) (Time, int64) {
	days := floorDiv(n, 24*60)
	nt, carry := t.AddNanos(floorMod(n, 24*60) * nanosPerMinute)
	return nt, days + carry
}

// AddHours returns the time n hours after t and the day carry.
func (t Time) AddHours(n int64) (Time, int64) {
	days := floorDiv(n, 24)
	nt, carry := t.AddNanos(floorMod(n, 24) * nanosPerHour)
	return nt, days + carry
}

// Truncate returns a copy of t with all fields finer than the unit set
// to zero, e.g. Truncate(Minutes) zeroes seconds and nanoseconds.
// Truncation is idempotent. The unit must be a time-scale unit no
// larger than Days; Truncate(Days) is midnight.
func (t Time) Truncate(u Unit) (Time, error) {
	if !u.timeScale() {
		return Time{}, fieldError("truncation unit", int64(u), int64(Nanos), int64(Days))
	}
	un := u.nanos()
	return Time{nano: t.nano - t.nano%un}, nil
}

// Compare returns -1, 0 or +1 as t is before, equal to or after other.
func (t Time) Compare(other Time) int {
	switch {
	case t.nano < other.nano:
		return -1
	case t.nano > other.nano:
		return 1
	default:
		return 0
	}
}

// String returns the ISO-8601 representation, e.g. "15:30:45" or
// "15:30:45.123456789". Seconds are always printed; the fraction is
// printed with 3, 6 or 9 digits, whichever is the shortest that loses
// nothing.
func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	return s + fracSuffix(t.Nano())
}

// fracSuffix renders a nanosecond fraction as ".###", ".######" or
// ".#########", or an empty string for zero.
func fracSuffix(nano int) string {
	switch {
	case nano == 0:
		return ""
	case nano%nanosPerMilli == 0:
		return fmt.Sprintf(".%03d", nano/nanosPerMilli)
	case nano%nanosPerMicro == 0:
		return fmt.Sprintf(".%06d", nano/nanosPerMicro)
	default:
		return fmt.Sprintf(".%09d", nano)
	}
}
