package chrono

import "fmt"

// maxOffsetSeconds bounds offsets to +/-18 hours, which covers every
// offset ever used by a real time zone with room to spare.
const maxOffsetSeconds = 18 * secondsPerHour

// Offset is a fixed amount of time by which a local wall-clock reading
// differs from UTC, such as +02:00. It is rule-free: it never changes
// with the calendar. The zero value is UTC.
type Offset struct {
	seconds int32
}

// UTC is the zero offset.
var UTC = Offset{}

// OffsetOfSeconds returns the Offset for a total number of seconds
// east of UTC, negative west. The total must be within +/-18 hours.
func OffsetOfSeconds(totalSeconds int) (Offset, error) {
	if totalSeconds < -maxOffsetSeconds || totalSeconds > maxOffsetSeconds {
		return Offset{}, fieldError("offset seconds", int64(totalSeconds), -maxOffsetSeconds, maxOffsetSeconds)
	}
	return Offset{seconds: int32(totalSeconds)}, nil
}

// OffsetOf returns the Offset for an hours, minutes and seconds
// breakdown. The components must carry the same sign.
func OffsetOf(hours, minutes, seconds int) (Offset, error) {
	if (hours > 0 && (minutes < 0 || seconds < 0)) ||
		(hours < 0 && (minutes > 0 || seconds > 0)) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		return Offset{}, fmt.Errorf("offset components must share one sign: %d:%d:%d", hours, minutes, seconds)
	}
	if minutes < -59 || minutes > 59 {
		return Offset{}, fieldError("offset minutes", int64(minutes), -59, 59)
	}
	if seconds < -59 || seconds > 59 {
		return Offset{}, fieldError("offset seconds", int64(seconds), -59, 59)
	}
	return OffsetOfSeconds(hours*secondsPerHour + minutes*secondsPerMinute + seconds)
}

// MustOffset is like OffsetOf but panics on invalid input. It is
// intended for constants and tests.
func MustOffset(hours, minutes, seconds int) Offset {
	o, err := OffsetOf(hours, minutes, seconds)
	if err != nil {
		panic("chrono: " + err.Error())
	}
	return o
}

// TotalSeconds returns the offset in seconds east of UTC.
func (o Offset) TotalSeconds() int { return int(o.seconds) }

// IsUTC reports whether the offset is zero.
func (o Offset) IsUTC() bool { return o.seconds == 0 }

// String returns "Z" for UTC, otherwise the ISO-8601 form
// "+hh:mm" or "+hh:mm:ss" when the offset has a seconds component.
func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	total := int(o.seconds)
	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}
	h, m, s := total/secondsPerHour, total/secondsPerMinute%60, total%60
	if s != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}
