package chrono

import (
	"fmt"
	"strings"
)

// Duration is an exact, signed amount of elapsed machine time with
// nanosecond precision. It is stored as whole seconds plus a
// nanosecond adjustment that is always in [0, 999999999], so -1.5
// seconds is (secs -2, nanos 500000000). Duration measures physical
// time and commutes with Instant arithmetic; it is deliberately not
// convertible to or from Period, which measures calendar time.
type Duration struct {
	secs  int64
	nanos int32
}

// NewDuration returns the Duration for the given seconds and
// nanosecond adjustment, normalized with floor semantics.
func NewDuration(seconds, nanoAdjustment int64) (Duration, error) {
	carry := floorDiv(nanoAdjustment, nanosPerSecond)
	sum, ok := addInt64(seconds, carry)
	if !ok {
		return Duration{}, rangeError("NewDuration")
	}
	return Duration{secs: sum, nanos: int32(floorMod(nanoAdjustment, nanosPerSecond))}, nil
}

// DurationOfSeconds returns the Duration for a whole number of
// seconds.
func DurationOfSeconds(seconds int64) Duration {
	return Duration{secs: seconds}
}

// DurationBetween returns the exact elapsed time from start to end,
// negative if end is before start.
func DurationBetween(start, end Instant) (Duration, error) {
	secs, ok := subInt64(end.sec, start.sec)
	if !ok {
		return Duration{}, rangeError("DurationBetween")
	}
	return NewDuration(secs, int64(end.nano)-int64(start.nano))
}

// Seconds returns the whole seconds component.
func (d Duration) Seconds() int64 { return d.secs }

// Nano returns the nanosecond adjustment, 0-999999999.
func (d Duration) Nano() int { return int(d.nanos) }

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool { return d.secs == 0 && d.nanos == 0 }

// IsNegative reports whether the duration is less than zero.
func (d Duration) IsNegative() bool { return d.secs < 0 }

// Add returns the sum of two durations.
func (d Duration) Add(other Duration) (Duration, error) {
	secs, ok := addInt64(d.secs, other.secs)
	if !ok {
		return Duration{}, rangeError("Add")
	}
	return NewDuration(secs, int64(d.nanos)+int64(other.nanos))
}

// Negated returns the duration with the opposite sign. Negating the
// minimum representable duration overflows.
func (d Duration) Negated() (Duration, error) {
	if d.secs == minInt64 && d.nanos == 0 {
		return Duration{}, rangeError("Negated")
	}
	return NewDuration(-d.secs, -int64(d.nanos))
}

// Compare returns -1, 0 or +1 as d is shorter than, equal to or
// longer than other. The normalized representation makes this a plain
// field comparison, giving durations a total order.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.secs < other.secs:
		return -1
	case d.secs > other.secs:
		return 1
	case d.nanos < other.nanos:
		return -1
	case d.nanos > other.nanos:
		return 1
	default:
		return 0
	}
}

// String returns an ISO-8601 seconds-based representation such as
// "PT1H30M5.5S", "PT-0.5S" or "PT0S".
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}
	secs, nanos := d.secs, int64(d.nanos)
	neg := secs < 0
	if neg {
		// Render magnitude; (secs, nanos) is floor-normalized so the
		// magnitude needs a carry when nanos is non-zero.
		if nanos > 0 {
			secs++
			nanos = nanosPerSecond - nanos
		}
		secs = -secs
	}
	var b strings.Builder
	b.WriteString("PT")
	if neg {
		// A single leading sign covers the whole amount.
		b.WriteString("-")
	}
	h := secs / secondsPerHour
	m := secs / secondsPerMinute % 60
	s := secs % 60
	if h != 0 {
		fmt.Fprintf(&b, "%dH", h)
	}
	if m != 0 {
		fmt.Fprintf(&b, "%dM", m)
	}
	if s != 0 || nanos != 0 || (h == 0 && m == 0) {
		fmt.Fprintf(&b, "%d%s", s, fracSuffix(int(nanos)))
		b.WriteString("S")
	}
	return b.String()
}

func subInt64(a, b int64) (int64, bool) {
	r := a - b
	if (b < 0 && r < a) || (b > 0 && r > a) {
		return 0, false
	}
	return r, true
}
