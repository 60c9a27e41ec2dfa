package chrono

// DateTime is a date with a time of day and no time zone, such as
// 2024-04-21T15:30:45. The zero value is 1970-01-01T00:00:00.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime combines a Date and a Time. Both are already valid on
// their own and there is no further invariant, so no error is
// possible.
func NewDateTime(d Date, t Time) DateTime {
	return DateTime{date: d, time: t}
}

// Date returns the date part.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time-of-day part.
func (dt DateTime) Time() Time { return dt.time }

// Year returns the proleptic year.
func (dt DateTime) Year() int { return dt.date.Year() }

// Month returns the month of year, 1-12.
func (dt DateTime) Month() int { return dt.date.Month() }

// Day returns the day of month.
func (dt DateTime) Day() int { return dt.date.Day() }

// Hour returns the hour of day.
func (dt DateTime) Hour() int { return dt.time.Hour() }

// Minute returns the minute of hour.
func (dt DateTime) Minute() int { return dt.time.Minute() }

// Second returns the second of minute.
func (dt DateTime) Second() int { return dt.time.Second() }

// Nano returns the nanosecond of second.
func (dt DateTime) Nano() int { return dt.time.Nano() }

// Add returns dt plus n of the given unit. Calendar-scale units
// (Days, Months, Years) operate on the date part only; time-scale
// units operate on the time part and fold the day carry into the date.
func (dt DateTime) Add(n int64, u Unit) (DateTime, error) {
	switch u {
	case Days:
		d, err := dt.date.AddDays(n)
		if err != nil {
			return DateTime{}, err
		}
		return DateTime{date: d, time: dt.time}, nil
	case Months:
		d, err := dt.date.AddMonths(n)
		if err != nil {
			return DateTime{}, err
		}
		return DateTime{date: d, time: dt.time}, nil
	case Years:
		d, err := dt.date.AddYears(n)
		if err != nil {
			return DateTime{}, err
		}
		return DateTime{date: d, time: dt.time}, nil
	}
	var (
		nt    Time
		carry int64
	)
	switch u {
	case Hours:
		nt, carry = dt.time.AddHours(n)
	case Minutes:
		nt, carry = dt.time.AddMinutes(n)
	case Seconds:
		nt, carry = dt.time.AddSeconds(n)
	case Millis:
		days := floorDiv(n, nanosPerDay/nanosPerMilli)
		nt, carry = dt.time.AddNanos(floorMod(n, nanosPerDay/nanosPerMilli) * nanosPerMilli)
		carry += days
	case Micros:
		days := floorDiv(n, nanosPerDay/nanosPerMicro)
		nt, carry = dt.time.AddNanos(floorMod(n, nanosPerDay/nanosPerMicro) * nanosPerMicro)
		carry += days
	case Nanos:
		nt, carry = dt.time.AddNanos(n)
	default:
		return DateTime{}, fieldError("unit", int64(u), int64(Nanos), int64(Years))
	}
	d, err := dt.date.AddDays(carry)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: nt}, nil
}

// AddDays returns dt with n days added.
func (dt DateTime) AddDays(n int64) (DateTime, error) { return dt.Add(n, Days) }

// AddMonths returns dt with n months added, with the end-of-month
// clamping documented on Date.AddMonths.
func (dt DateTime) AddMonths(n int64) (DateTime, error) { return dt.Add(n, Months) }

// AddYears returns dt with n years added.
func (dt DateTime) AddYears(n int64) (DateTime, error) { return dt.Add(n, Years) }

// AddHours returns dt with n hours added.
func (dt DateTime) AddHours(n int64) (DateTime, error) { return dt.Add(n, Hours) }

// AddMinutes returns dt with n minutes added.
func (dt DateTime) AddMinutes(n int64) (DateTime, error) { return dt.Add(n, Minutes) }

// AddSeconds returns dt with n seconds added.
func (dt DateTime) AddSeconds(n int64) (DateTime, error) { return dt.Add(n, Seconds) }

// AddNanos returns dt with n nanoseconds added.
func (dt DateTime) AddNanos(n int64) (DateTime, error) { return dt.Add(n, Nanos) }

// Truncate returns dt with all time fields finer than the unit zeroed.
func (dt DateTime) Truncate(u Unit) (DateTime, error) {
	t, err := dt.time.Truncate(u)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: dt.date, time: t}, nil
}

// Until returns the amount of time from dt until end, measured in the
// given unit and truncated toward zero. It is anti-symmetric:
// a.Until(b, u) == -b.Until(a, u).
func (dt DateTime) Until(end DateTime, u Unit) (int64, error) {
	if u.timeScale() {
		dayDiff := end.date.EpochDay() - dt.date.EpochDay()
		nanoDiff := end.time.NanoOfDay() - dt.time.NanoOfDay()
		// Total nanoseconds can overflow for spans beyond roughly 292
		// years, so measure coarse units in seconds instead.
		if u >= Seconds {
			secs := dayDiff*secondsPerDay + nanoDiff/nanosPerSecond
			rem := nanoDiff % nanosPerSecond
			// Truncate toward zero across the two components.
			if secs > 0 && rem < 0 {
				secs--
			} else if secs < 0 && rem > 0 {
				secs++
			}
			return secs / (u.nanos() / nanosPerSecond), nil
		}
		total, ok := mulInt64(dayDiff, nanosPerDay)
		if !ok {
			return 0, rangeError("Until")
		}
		total, ok = addInt64(total, nanoDiff)
		if !ok {
			return 0, rangeError("Until")
		}
		return total / u.nanos(), nil
	}

	// Calendar-scale. Normalize direction first so truncation cannot
	// disagree between the two orderings of the same pair.
	if dt.Compare(end) > 0 {
		n, err := end.Until(dt, u)
		if err != nil {
			return 0, err
		}
		return -n, nil
	}
	// A month is complete once the day of month and time of day have
	// caught up with dt's, so borrow a day from the end date while its
	// time of day lags behind. Packing months and days into one number
	// turns "whole months between" into a single division; day of
	// month never reaches the base 32.
	endDate := end.date
	if end.time.Compare(dt.time) < 0 {
		var err error
		endDate, err = endDate.AddDays(-1)
		if err != nil {
			return 0, err
		}
	}
	ey, em, ed := endDate.Date()
	sy, sm, sd := dt.date.Date()
	packedEnd := (int64(ey)*12+int64(em)-1)*32 + int64(ed)
	packedStart := (int64(sy)*12+int64(sm)-1)*32 + int64(sd)
	months := (packedEnd - packedStart) / 32
	switch u {
	case Months:
		return months, nil
	case Years:
		return months / 12, nil
	default:
		return 0, fieldError("unit", int64(u), int64(Nanos), int64(Years))
	}
}

// Compare returns -1, 0 or +1 as dt is before, equal to or after
// other.
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// Before reports whether dt is before other.
func (dt DateTime) Before(other DateTime) bool { return dt.Compare(other) < 0 }

// After reports whether dt is after other.
func (dt DateTime) After(other DateTime) bool { return dt.Compare(other) > 0 }

// String returns the ISO-8601 representation with a 'T' separator,
// e.g. "2024-04-21T15:30:45.123456789".
func (dt DateTime) String() string {
	return dt.date.String() + "T" + dt.time.String()
}

// InstantAt returns the Instant this local date-time describes under
// the given fixed offset.
func (dt DateTime) InstantAt(o Offset) Instant {
	secs := dt.date.EpochDay()*secondsPerDay + dt.time.NanoOfDay()/nanosPerSecond - int64(o.TotalSeconds())
	return Instant{sec: secs, nano: int32(dt.time.NanoOfDay() % nanosPerSecond)}
}

// DateTimeOfInstant returns the local date-time that the given instant
// reads as under the given fixed offset.
func DateTimeOfInstant(i Instant, o Offset) (DateTime, error) {
	local := i.sec + int64(o.TotalSeconds())
	ed := floorDiv(local, secondsPerDay)
	d, err := DateFromEpochDay(ed)
	if err != nil {
		return DateTime{}, err
	}
	t := Time{nano: floorMod(local, secondsPerDay)*nanosPerSecond + int64(i.nano)}
	return DateTime{date: d, time: t}, nil
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

func addInt64(a, b int64) (int64, bool) {
	r := a + b
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, false
	}
	return r, true
}
