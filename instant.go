package chrono

// Instant is a point on the physical timeline, represented as a count
// of seconds since the epoch 1970-01-01T00:00:00Z plus a nanosecond
// adjustment. It is always zone-free and exposes no calendar fields;
// attach a zone with the tz package to read it as a wall-clock value.
// The zero value is the epoch itself.
type Instant struct {
	// sec is the epoch second, negative before 1970.
	sec int64
	// nano is the nanosecond of second, always in [0, 999999999]
	// even for instants before the epoch.
	nano int32
}

// NewInstant returns the Instant for the given epoch second and
// nanosecond adjustment. The adjustment may be any int64 and is
// normalized into the epoch second with floor semantics, so
// NewInstant(0, -1) is one nanosecond before the epoch:
// second -1, nano 999999999.
func NewInstant(epochSecond, nanoAdjustment int64) (Instant, error) {
	secs := floorDiv(nanoAdjustment, nanosPerSecond)
	sum, ok := addInt64(epochSecond, secs)
	if !ok {
		return Instant{}, rangeError("NewInstant")
	}
	return Instant{sec: sum, nano: int32(floorMod(nanoAdjustment, nanosPerSecond))}, nil
}

// InstantOfEpochSecond returns the Instant for a whole epoch second.
func InstantOfEpochSecond(epochSecond int64) Instant {
	return Instant{sec: epochSecond}
}

// InstantOfEpochMilli returns the Instant for an epoch millisecond.
func InstantOfEpochMilli(epochMilli int64) Instant {
	return Instant{
		sec:  floorDiv(epochMilli, 1000),
		nano: int32(floorMod(epochMilli, 1000) * nanosPerMilli),
	}
}

// EpochSecond returns the second since the epoch.
func (i Instant) EpochSecond() int64 { return i.sec }

// Nano returns the nanosecond of second, 0-999999999.
func (i Instant) Nano() int { return int(i.nano) }

// EpochMilli returns the instant as milliseconds since the epoch.
// The conversion is lossy: sub-millisecond precision is truncated. It
// returns a *RangeError if the instant does not fit in an int64 of
// milliseconds.
func (i Instant) EpochMilli() (int64, error) {
	ms, ok := mulInt64(i.sec, 1000)
	if !ok {
		return 0, rangeError("EpochMilli")
	}
	ms, ok = addInt64(ms, int64(i.nano)/nanosPerMilli)
	if !ok {
		return 0, rangeError("EpochMilli")
	}
	return ms, nil
}

// AddSeconds returns the instant n seconds after i.
func (i Instant) AddSeconds(n int64) (Instant, error) {
	sum, ok := addInt64(i.sec, n)
	if !ok {
		return Instant{}, rangeError("AddSeconds")
	}
	return Instant{sec: sum, nano: i.nano}, nil
}

// AddNanos returns the instant n nanoseconds after i, normalizing the
// nanosecond of second back into [0, 999999999] with floor semantics.
func (i Instant) AddNanos(n int64) (Instant, error) {
	secs := floorDiv(n, nanosPerSecond)
	nanos := int64(i.nano) + floorMod(n, nanosPerSecond)
	if nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		secs++
	}
	sum, ok := addInt64(i.sec, secs)
	if !ok {
		return Instant{}, rangeError("AddNanos")
	}
	return Instant{sec: sum, nano: int32(nanos)}, nil
}

// Add returns the instant moved forward by the exact duration d.
func (i Instant) Add(d Duration) (Instant, error) {
	sum, ok := addInt64(i.sec, d.secs)
	if !ok {
		return Instant{}, rangeError("Add")
	}
	res := Instant{sec: sum, nano: i.nano}
	return res.AddNanos(int64(d.nanos))
}

// Compare returns -1, 0 or +1 as i is before, equal to or after
// other.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.sec < other.sec:
		return -1
	case i.sec > other.sec:
		return 1
	case i.nano < other.nano:
		return -1
	case i.nano > other.nano:
		return 1
	default:
		return 0
	}
}

// Before reports whether i is before other.
func (i Instant) Before(other Instant) bool { return i.Compare(other) < 0 }

// After reports whether i is after other.
func (i Instant) After(other Instant) bool { return i.Compare(other) > 0 }

// String returns the ISO-8601 UTC representation, e.g.
// "2024-04-21T13:30:45Z". Instants outside the supported calendar
// year range render as "<out of range instant>".
func (i Instant) String() string {
	dt, err := DateTimeOfInstant(i, UTC)
	if err != nil {
		return "<out of range instant>"
	}
	return dt.String() + "Z"
}
