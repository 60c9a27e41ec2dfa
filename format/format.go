package format

import (
	"fmt"
	"strings"
)

// Format renders the source's fields according to the compiled
// pattern. It fails if the pattern references a field the source does
// not carry.
func (f *Formatter) Format(src Source) (string, error) {
	var b strings.Builder
	for _, tok := range f.tokens {
		if tok.sym == 0 {
			b.WriteString(tok.literal)
			continue
		}
		if err := f.formatField(&b, tok, src); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func (f *Formatter) formatField(b *strings.Builder, tok token, src Source) error {
	switch tok.sym {
	case 'y':
		if src.Year == nil {
			return missingField(f.pattern, "year")
		}
		y := src.Year()
		if tok.count == 2 {
			yy := y % 100
			if yy < 0 {
				yy += 100
			}
			fmt.Fprintf(b, "%02d", yy)
			return nil
		}
		if y < 0 {
			fmt.Fprintf(b, "-%0*d", tok.count, -y)
		} else {
			fmt.Fprintf(b, "%0*d", tok.count, y)
		}
	case 'M':
		if src.Month == nil {
			return missingField(f.pattern, "month")
		}
		m := src.Month()
		switch tok.count {
		case 3:
			b.WriteString(f.locale.MonthsAbbrev[m-1])
		case 4:
			b.WriteString(f.locale.MonthsWide[m-1])
		default:
			fmt.Fprintf(b, "%0*d", tok.count, m)
		}
	case 'd':
		if src.Day == nil {
			return missingField(f.pattern, "day of month")
		}
		fmt.Fprintf(b, "%0*d", tok.count, src.Day())
	case 'H':
		if src.Hour == nil {
			return missingField(f.pattern, "hour")
		}
		fmt.Fprintf(b, "%0*d", tok.count, src.Hour())
	case 'h':
		if src.Hour == nil {
			return missingField(f.pattern, "hour")
		}
		h := src.Hour() % 12
		if h == 0 {
			h = 12
		}
		fmt.Fprintf(b, "%0*d", tok.count, h)
	case 'm':
		if src.Minute == nil {
			return missingField(f.pattern, "minute")
		}
		fmt.Fprintf(b, "%0*d", tok.count, src.Minute())
	case 's':
		if src.Second == nil {
			return missingField(f.pattern, "second")
		}
		fmt.Fprintf(b, "%0*d", tok.count, src.Second())
	case 'S':
		if src.Nano == nil {
			return missingField(f.pattern, "fraction of second")
		}
		// The first tok.count digits of the nanosecond fraction.
		frac := fmt.Sprintf("%09d", src.Nano())
		b.WriteString(frac[:tok.count])
	case 'E':
		if src.Weekday == nil {
			return missingField(f.pattern, "weekday")
		}
		wd := src.Weekday()
		if tok.count == 4 {
			b.WriteString(f.locale.WeekdaysWide[wd])
		} else {
			b.WriteString(f.locale.WeekdaysAbbrev[wd])
		}
	case 'a':
		if src.Hour == nil {
			return missingField(f.pattern, "day period")
		}
		if src.Hour() < 12 {
			b.WriteString(f.locale.AM)
		} else {
			b.WriteString(f.locale.PM)
		}
	case 'X', 'x':
		if src.OffsetSeconds == nil {
			return missingField(f.pattern, "offset")
		}
		secs := src.OffsetSeconds()
		if secs == 0 && tok.sym == 'X' {
			b.WriteString("Z")
			return nil
		}
		b.WriteString(formatOffset(secs, tok.count))
	case 'V':
		if src.ZoneName == nil {
			return missingField(f.pattern, "zone identifier")
		}
		b.WriteString(src.ZoneName())
	}
	return nil
}

// formatOffset renders an offset by symbol count: 1 is "+hh" (with
// minutes appended when non-zero), 2 is "+hhmm", 3 is "+hh:mm", 4 is
// "+hhmmss" and 5 is "+hh:mm:ss"; the seconds of styles 4 and 5 are
// omitted when zero.
func formatOffset(totalSeconds, count int) string {
	sign := "+"
	if totalSeconds < 0 {
		sign = "-"
		totalSeconds = -totalSeconds
	}
	h := totalSeconds / 3600
	m := totalSeconds / 60 % 60
	s := totalSeconds % 60
	switch count {
	case 1:
		if m == 0 && s == 0 {
			return fmt.Sprintf("%s%02d", sign, h)
		}
		return fmt.Sprintf("%s%02d%02d", sign, h, m)
	case 2:
		return fmt.Sprintf("%s%02d%02d", sign, h, m)
	case 3:
		return fmt.Sprintf("%s%02d:%02d", sign, h, m)
	case 4:
		if s == 0 {
			return fmt.Sprintf("%s%02d%02d", sign, h, m)
		}
		return fmt.Sprintf("%s%02d%02d%02d", sign, h, m, s)
	default:
		if s == 0 {
			return fmt.Sprintf("%s%02d:%02d", sign, h, m)
		}
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	}
}

func missingField(pattern, field string) error {
	return fmt.Errorf("pattern %q requires %s but the source does not carry it", pattern, field)
}
