package tz

import (
	"strings"

	chrono "github.com/ngrash/go-chrono"
)

// ZonedDateTime is a local date-time anchored in a time zone together
// with the resolved UTC offset, such as
// 2024-04-21T15:30:45+02:00[Europe/Paris]. The offset is always one
// valid offset for the local date-time under the zone's rules.
type ZonedDateTime struct {
	local  chrono.DateTime
	zone   *Zone
	offset chrono.Offset
}

// Of anchors a local date-time in a zone using the default resolution
// policy: a gap pushes the local time forward past the skipped window
// and adopts the later offset; an overlap keeps the earlier,
// pre-transition offset. Use WithLaterOffset afterwards, or inspect
// Zone.Resolve directly, when a different overlap choice is needed.
func Of(local chrono.DateTime, zone *Zone) ZonedDateTime {
	r := zone.Resolve(local)
	return ZonedDateTime{local: r.LocalDateTime(), zone: zone, offset: r.Offset()}
}

// OfInstant reads an instant as a wall-clock value in the given zone.
func OfInstant(i chrono.Instant, zone *Zone) (ZonedDateTime, error) {
	off := zone.OffsetAt(i)
	local, err := chrono.DateTimeOfInstant(i, off)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return ZonedDateTime{local: local, zone: zone, offset: off}, nil
}

// Local returns the wall-clock fields.
func (z ZonedDateTime) Local() chrono.DateTime { return z.local }

// Zone returns the anchoring zone.
func (z ZonedDateTime) Zone() *Zone { return z.zone }

// Offset returns the resolved UTC offset.
func (z ZonedDateTime) Offset() chrono.Offset { return z.offset }

// Instant returns the point on the physical timeline this value
// denotes.
func (z ZonedDateTime) Instant() chrono.Instant {
	return z.local.InstantAt(z.offset)
}

// WithEarlierOffset returns the value anchored at the earlier valid
// offset if its local date-time falls in an overlap; otherwise it
// returns the value unchanged.
func (z ZonedDateTime) WithEarlierOffset() ZonedDateTime {
	r := z.zone.Resolve(z.local)
	if r.Kind() == ResolutionOverlap {
		z.offset = r.EarlierOffset()
	}
	return z
}

// WithLaterOffset returns the value anchored at the later valid
// offset if its local date-time falls in an overlap; otherwise it
// returns the value unchanged.
func (z ZonedDateTime) WithLaterOffset() ZonedDateTime {
	r := z.zone.Resolve(z.local)
	if r.Kind() == ResolutionOverlap {
		z.offset = r.LaterOffset()
	}
	return z
}

// WithZoneSameInstant re-anchors the value in a new zone, preserving
// the instant and recomputing the wall-clock fields: "what time is it
// there at this same moment".
func (z ZonedDateTime) WithZoneSameInstant(zone *Zone) (ZonedDateTime, error) {
	return OfInstant(z.Instant(), zone)
}

// WithZoneSameLocal re-anchors the value in a new zone, preserving
// the wall-clock fields and re-resolving the offset under the new
// zone's rules: "read this same clock value in that zone". The
// instant generally changes.
func (z ZonedDateTime) WithZoneSameLocal(zone *Zone) ZonedDateTime {
	return Of(z.local, zone)
}

// Add moves the wall-clock fields by n of the given unit and then
// re-resolves the offset, applying the same gap and overlap policy as
// Of. Adding a day across a daylight-saving transition keeps the
// wall-clock time and may change the elapsed physical time.
func (z ZonedDateTime) Add(n int64, u chrono.Unit) (ZonedDateTime, error) {
	local, err := z.local.Add(n, u)
	if err != nil {
		return ZonedDateTime{}, err
	}
	r := z.zone.Resolve(local)
	off := r.Offset()
	if r.Kind() == ResolutionOverlap && z.offset == r.LaterOffset() {
		// Keep the side of the transition we were on.
		off = r.LaterOffset()
	}
	return ZonedDateTime{local: r.LocalDateTime(), zone: z.zone, offset: off}, nil
}

// AddDays moves the wall-clock date by n days, re-resolving the
// offset.
func (z ZonedDateTime) AddDays(n int64) (ZonedDateTime, error) {
	return z.Add(n, chrono.Days)
}

// AddMonths moves the wall-clock date by n months with end-of-month
// clamping, re-resolving the offset.
func (z ZonedDateTime) AddMonths(n int64) (ZonedDateTime, error) {
	return z.Add(n, chrono.Months)
}

// AddYears moves the wall-clock date by n years, re-resolving the
// offset.
func (z ZonedDateTime) AddYears(n int64) (ZonedDateTime, error) {
	return z.Add(n, chrono.Years)
}

// AddDuration moves the value by an exact physical duration: the
// instant moves by d and the wall-clock fields follow from the zone
// rules at the new instant.
func (z ZonedDateTime) AddDuration(d chrono.Duration) (ZonedDateTime, error) {
	i, err := z.Instant().Add(d)
	if err != nil {
		return ZonedDateTime{}, err
	}
	return OfInstant(i, z.zone)
}

// String returns the ISO-8601 representation with the zone identifier
// in brackets, e.g. "2024-04-21T15:30:45+02:00[Europe/Paris]". Fixed
// zones whose name is just their offset omit the brackets.
func (z ZonedDateTime) String() string {
	s := z.local.String() + z.offset.String()
	if z.zone.IsFixed() && (z.zone.Name() == "" || z.zone.Name() == z.offset.String()) {
		return s
	}
	return s + "[" + z.zone.Name() + "]"
}

// Parse parses an ISO-8601 zoned date-time such as
// "2024-04-21T15:30:45+02:00[Europe/Paris]". The zone identifier in
// brackets is looked up in db; without brackets the offset itself
// becomes a fixed zone. If both are present, the offset selects the
// side of an overlap, matching what String printed.
func Parse(s string, db *DB) (ZonedDateTime, error) {
	bracket := strings.IndexByte(s, '[')
	head := s
	zoneName := ""
	if bracket >= 0 {
		if !strings.HasSuffix(s, "]") {
			return ZonedDateTime{}, &chrono.ParseError{Input: s, Offset: len(s), Msg: "unterminated zone identifier"}
		}
		head = s[:bracket]
		zoneName = s[bracket+1 : len(s)-1]
		if zoneName == "" {
			return ZonedDateTime{}, &chrono.ParseError{Input: s, Offset: bracket + 1, Msg: "empty zone identifier"}
		}
	}

	dt, err := chrono.ParseDateTime(head[:dateTimeEnd(head)])
	if err != nil {
		return ZonedDateTime{}, err
	}
	off, err := chrono.ParseOffset(head[dateTimeEnd(head):])
	if err != nil {
		return ZonedDateTime{}, err
	}

	if zoneName == "" {
		return ZonedDateTime{local: dt, zone: FixedZone(off.String(), off), offset: off}, nil
	}
	zone, err := db.Zone(zoneName)
	if err != nil {
		return ZonedDateTime{}, err
	}
	r := zone.Resolve(dt)
	resolved := r.Offset()
	if r.Kind() == ResolutionOverlap && off == r.LaterOffset() {
		resolved = r.LaterOffset()
	}
	return ZonedDateTime{local: r.LocalDateTime(), zone: zone, offset: resolved}, nil
}

// dateTimeEnd returns the index where the date-time part of an ISO
// string ends and the offset begins: the first 'Z', '+' or '-' after
// the 'T' separator.
func dateTimeEnd(s string) int {
	t := strings.IndexAny(s, "Tt")
	if t < 0 {
		return len(s)
	}
	for i := t + 1; i < len(s); i++ {
		switch s[i] {
		case 'Z', 'z', '+', '-':
			return i
		}
	}
	return len(s)
}
