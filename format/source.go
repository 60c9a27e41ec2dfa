package format

import (
	chrono "github.com/ngrash/go-chrono"
	"github.com/ngrash/go-chrono/tz"
)

// Source is the field-accessor capability the formatter reads values
// through. It is a plain struct of closures so the engine stays
// agnostic to which value type it is formatting: any type that can
// answer these primitive field reads can be formatted, without
// depending on this package.
//
// A nil closure means the source does not carry that field; a pattern
// that needs it fails with an error naming the field.
type Source struct {
	Year   func() int
	Month  func() int // 1-12
	Day    func() int
	Hour   func() int // 0-23
	Minute func() int
	Second func() int
	Nano   func() int // 0-999999999

	Weekday func() chrono.Weekday

	// OffsetSeconds is the resolved UTC offset for zone-anchored
	// values.
	OffsetSeconds func() int

	// ZoneName is the zone identifier for zone-anchored values.
	ZoneName func() string
}

// OfDate adapts a Date for formatting; only date fields are present.
func OfDate(d chrono.Date) Source {
	return Source{
		Year:    d.Year,
		Month:   d.Month,
		Day:     d.Day,
		Weekday: d.Weekday,
	}
}

// OfTime adapts a Time for formatting; only time fields are present.
func OfTime(t chrono.Time) Source {
	return Source{
		Hour:   t.Hour,
		Minute: t.Minute,
		Second: t.Second,
		Nano:   t.Nano,
	}
}

// OfDateTime adapts a DateTime for formatting.
func OfDateTime(dt chrono.DateTime) Source {
	return Source{
		Year:    dt.Year,
		Month:   dt.Month,
		Day:     dt.Day,
		Hour:    dt.Hour,
		Minute:  dt.Minute,
		Second:  dt.Second,
		Nano:    dt.Nano,
		Weekday: func() chrono.Weekday { return dt.Date().Weekday() },
	}
}

// OfZoned adapts a ZonedDateTime for formatting; all fields are
// present, including offset and zone identifier.
func OfZoned(z tz.ZonedDateTime) Source {
	dt := z.Local()
	s := OfDateTime(dt)
	s.OffsetSeconds = func() int { return z.Offset().TotalSeconds() }
	s.ZoneName = func() string { return z.Zone().Name() }
	return s
}
