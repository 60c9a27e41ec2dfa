package chrono

// Unit identifies a unit of date-time measurement, from nanoseconds up
// to years. Units up to Days are time-scale: they have an exact length
// in nanoseconds. Months and Years are calendar-scale: their length
// depends on the calendar and they cannot be expressed in nanoseconds.
type Unit int

const (
	Nanos Unit = iota
	Micros
	Millis
	Seconds
	Minutes
	Hours
	Days
	Months
	Years
)

func (u Unit) String() string {
	switch u {
	case Nanos:
		return "Nanos"
	case Micros:
		return "Micros"
	case Millis:
		return "Millis"
	case Seconds:
		return "Seconds"
	case Minutes:
		return "Minutes"
	case Hours:
		return "Hours"
	case Days:
		return "Days"
	case Months:
		return "Months"
	case Years:
		return "Years"
	default:
		return "<UNDEFINED>"
	}
}

// timeScale reports whether the unit has a fixed nanosecond length.
func (u Unit) timeScale() bool {
	return u >= Nanos && u <= Days
}

// nanos returns the length of a time-scale unit in nanoseconds. It
// must not be called for calendar-scale units.
func (u Unit) nanos() int64 {
	switch u {
	case Nanos:
		return 1
	case Micros:
		return nanosPerMicro
	case Millis:
		return nanosPerMilli
	case Seconds:
		return nanosPerSecond
	case Minutes:
		return nanosPerMinute
	case Hours:
		return nanosPerHour
	case Days:
		return nanosPerDay
	}
	panic("chrono: no nanosecond length for unit " + u.String())
}

const (
	nanosPerMicro  = 1_000
	nanosPerMilli  = 1_000_000
	nanosPerSecond = 1_000_000_000
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)
