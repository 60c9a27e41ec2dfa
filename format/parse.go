package format

import (
	"fmt"
	"strings"

	chrono "github.com/ngrash/go-chrono"
	"github.com/ngrash/go-chrono/tz"
)

// ParseError reports input text that does not match the compiled
// pattern, with the byte offset of the first mismatch.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %s at offset %d", e.Input, e.Msg, e.Offset)
}

func parseErrf(input string, offset int, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// field identifies a parsed field slot in the builder.
type field int

const (
	fieldYear field = iota
	fieldMonth
	fieldDay
	fieldHour      // 0-23
	fieldClockHour // 1-12
	fieldDayPeriod // 0 = AM, 1 = PM
	fieldMinute
	fieldSecond
	fieldNano
	fieldOffset // total seconds
)

var fieldNames = map[field]string{
	fieldYear:      "year",
	fieldMonth:     "month",
	fieldDay:       "day",
	fieldHour:      "hour",
	fieldClockHour: "clock hour",
	fieldDayPeriod: "day period",
	fieldMinute:    "minute",
	fieldSecond:    "second",
	fieldNano:      "nano",
	fieldOffset:    "offset",
}

// Parsed accumulates the fields resolved from input text. It is the
// builder between the token walk and the constructed value: query it
// directly, or use the Date, Time, DateTime and Zoned constructors,
// which surface the same field-range errors as the chrono
// constructors for impossible combinations such as February 30.
type Parsed struct {
	fields map[field]int
	zone   string
}

// Has reports whether the field was present in the input.
func (p *Parsed) Has(f field) bool {
	_, ok := p.fields[f]
	return ok
}

// Get returns the field value, or false if it was not present.
func (p *Parsed) Get(f field) (int, bool) {
	v, ok := p.fields[f]
	return v, ok
}

// ZoneName returns the parsed zone identifier, if any.
func (p *Parsed) ZoneName() (string, bool) {
	return p.zone, p.zone != ""
}

func (p *Parsed) set(f field, v int) {
	p.fields[f] = v
}

// Date builds a calendar date from the parsed year, month and day.
func (p *Parsed) Date() (chrono.Date, error) {
	y, ok := p.fields[fieldYear]
	if !ok {
		return chrono.Date{}, fmt.Errorf("parsed input has no year")
	}
	m, ok := p.fields[fieldMonth]
	if !ok {
		return chrono.Date{}, fmt.Errorf("parsed input has no month")
	}
	d, ok := p.fields[fieldDay]
	if !ok {
		return chrono.Date{}, fmt.Errorf("parsed input has no day")
	}
	return chrono.NewDate(y, m, d)
}

// Time builds a time of day from the parsed time fields. The hour
// comes from the 24-hour field if present, otherwise from the clock
// hour and day period; seconds and the fraction default to zero.
func (p *Parsed) Time() (chrono.Time, error) {
	hour, err := p.hour24()
	if err != nil {
		return chrono.Time{}, err
	}
	minute, ok := p.fields[fieldMinute]
	if !ok {
		return chrono.Time{}, fmt.Errorf("parsed input has no minute")
	}
	return chrono.NewTime(hour, minute, p.fields[fieldSecond], p.fields[fieldNano])
}

func (p *Parsed) hour24() (int, error) {
	if h, ok := p.fields[fieldHour]; ok {
		return h, nil
	}
	h, ok := p.fields[fieldClockHour]
	if !ok {
		return 0, fmt.Errorf("parsed input has no hour")
	}
	if h < 1 || h > 12 {
		return 0, &chrono.FieldError{Field: "clock hour", Value: int64(h), Min: 1, Max: 12}
	}
	h %= 12 // 12 AM is midnight, 12 PM is noon
	if p.fields[fieldDayPeriod] == 1 {
		h += 12
	}
	return h, nil
}

// DateTime builds a date-time from the parsed fields.
func (p *Parsed) DateTime() (chrono.DateTime, error) {
	d, err := p.Date()
	if err != nil {
		return chrono.DateTime{}, err
	}
	t, err := p.Time()
	if err != nil {
		return chrono.DateTime{}, err
	}
	return chrono.NewDateTime(d, t), nil
}

// Offset returns the parsed UTC offset, if any.
func (p *Parsed) Offset() (chrono.Offset, bool, error) {
	secs, ok := p.fields[fieldOffset]
	if !ok {
		return chrono.Offset{}, false, nil
	}
	o, err := chrono.OffsetOfSeconds(secs)
	return o, true, err
}

// Zoned builds a zone-anchored date-time. A parsed zone identifier is
// looked up in db; without one, the parsed offset becomes a fixed
// zone. When both are present the offset selects the side of an
// overlap, matching what formatting with both fields printed.
func (p *Parsed) Zoned(db *tz.DB) (tz.ZonedDateTime, error) {
	dt, err := p.DateTime()
	if err != nil {
		return tz.ZonedDateTime{}, err
	}
	off, hasOff, err := p.Offset()
	if err != nil {
		return tz.ZonedDateTime{}, err
	}
	if p.zone == "" {
		if !hasOff {
			return tz.ZonedDateTime{}, fmt.Errorf("parsed input has neither zone identifier nor offset")
		}
		return tz.Of(dt, tz.FixedZone(off.String(), off)), nil
	}
	zone, err := db.Zone(p.zone)
	if err != nil {
		return tz.ZonedDateTime{}, err
	}
	z := tz.Of(dt, zone)
	if hasOff && off == z.WithLaterOffset().Offset() {
		z = z.WithLaterOffset()
	}
	return z, nil
}

// Parse matches input against the pattern in strict mode: numeric
// widths and text case must match the pattern exactly, and the whole
// input must be consumed.
func (f *Formatter) Parse(input string) (*Parsed, error) {
	return f.parse(input, false)
}

// ParseLenient matches input in lenient mode: numeric fields accept
// any natural width and text matches are case-insensitive.
func (f *Formatter) ParseLenient(input string) (*Parsed, error) {
	return f.parse(input, true)
}

func (f *Formatter) parse(input string, lenient bool) (*Parsed, error) {
	p := &Parsed{fields: make(map[field]int)}
	pos := 0
	for i, tok := range f.tokens {
		var err error
		if tok.sym == 0 {
			pos, err = matchLiteral(input, pos, tok.literal, lenient)
		} else {
			pos, err = f.parseField(p, input, pos, tok, reservedDigits(f.tokens[i+1:]), lenient)
		}
		if err != nil {
			return nil, err
		}
	}
	if pos != len(input) {
		return nil, parseErrf(input, pos, "unexpected trailing input")
	}
	return p, nil
}

func matchLiteral(input string, pos int, lit string, lenient bool) (int, error) {
	end := pos + len(lit)
	if end > len(input) {
		return pos, parseErrf(input, pos, "expected literal %q", lit)
	}
	got := input[pos:end]
	if got != lit && !(lenient && strings.EqualFold(got, lit)) {
		return pos, parseErrf(input, pos, "expected literal %q, found %q", lit, got)
	}
	return end, nil
}

func (f *Formatter) parseField(p *Parsed, input string, pos int, tok token, reserve int, lenient bool) (int, error) {
	switch tok.sym {
	case 'y':
		if tok.count == 2 && !lenient {
			v, next, err := parseDigits(input, pos, 2, 2, "year")
			if err != nil {
				return pos, err
			}
			// Two-digit years map into 2000-2099.
			p.set(fieldYear, 2000+v)
			return next, nil
		}
		return parseSignedField(p, input, pos, tok.count, reserve, lenient, fieldYear)
	case 'M':
		if tok.count >= 3 {
			return f.parseMonthName(p, input, pos, tok.count, lenient)
		}
		return parseNumericField(p, input, pos, tok.count, reserve, lenient, fieldMonth)
	case 'd':
		return parseNumericField(p, input, pos, tok.count, reserve, lenient, fieldDay)
	case 'H':
		return parseNumericField(p, input, pos, tok.count, reserve, lenient, fieldHour)
	case 'h':
		return parseNumericField(p, input, pos, tok.count, reserve, lenient, fieldClockHour)
	case 'm':
		return parseNumericField(p, input, pos, tok.count, reserve, lenient, fieldMinute)
	case 's':
		return parseNumericField(p, input, pos, tok.count, reserve, lenient, fieldSecond)
	case 'S':
		return parseFraction(p, input, pos, tok.count, lenient)
	case 'E':
		return f.parseWeekdayName(input, pos, tok.count, lenient)
	case 'a':
		return f.parseDayPeriod(p, input, pos, lenient)
	case 'X', 'x':
		return parseOffsetField(p, input, pos, tok, lenient)
	case 'V':
		return parseZoneID(p, input, pos)
	}
	return pos, parseErrf(input, pos, "unhandled field symbol %q", string(tok.sym))
}

// parseNumericField parses an unsigned numeric field. In strict mode
// a count of one accepts one or two digits and a larger count demands
// exactly that many; lenient mode accepts one to nine digits.
func parseNumericField(p *Parsed, input string, pos, count, reserve int, lenient bool, fld field) (int, error) {
	min, max := count, count
	if count == 1 {
		max = 2
	}
	if lenient {
		min, max = 1, 9
	}
	v, next, err := parseDigits(input, pos, min, capToReserve(input, pos, min, max, reserve), fieldNames[fld])
	if err != nil {
		return pos, err
	}
	p.set(fld, v)
	return next, nil
}

// parseSignedField is parseNumericField with an optional leading sign
// and room for up to nine digits, as years need.
func parseSignedField(p *Parsed, input string, pos, count, reserve int, lenient bool, fld field) (int, error) {
	sign := 1
	start := pos
	if pos < len(input) && (input[pos] == '+' || input[pos] == '-') {
		if input[pos] == '-' {
			sign = -1
		}
		pos++
	}
	min := count
	if lenient {
		min = 1
	}
	v, next, err := parseDigits(input, pos, min, capToReserve(input, pos, min, 9, reserve), fieldNames[fld])
	if err != nil {
		return start, err
	}
	p.set(fld, sign*v)
	return next, nil
}

// reservedDigits sums the widths of the fixed-width numeric fields at
// the head of the remaining token stream. A variable-width field that
// scans an unbroken digit run must leave that many digits for its
// neighbors; the run ends at the first token without a fixed width.
func reservedDigits(tokens []token) int {
	n := 0
	for _, t := range tokens {
		w, ok := fixedDigitWidth(t)
		if !ok {
			break
		}
		n += w
	}
	return n
}

func fixedDigitWidth(t token) (int, bool) {
	switch t.sym {
	case 'y', 'M', 'd', 'H', 'h', 'm', 's':
		if t.count == 2 {
			return 2, true
		}
	case 'S':
		return t.count, true
	}
	return 0, false
}

// capToReserve shrinks max so that adjacent fixed-width fields keep
// their share of the digit run starting at pos.
func capToReserve(input string, pos, min, max, reserve int) int {
	if reserve == 0 {
		return max
	}
	run := 0
	for pos+run < len(input) && input[pos+run] >= '0' && input[pos+run] <= '9' {
		run++
	}
	if avail := run - reserve; avail < max {
		max = avail
	}
	if max < min {
		max = min
	}
	return max
}

func parseDigits(input string, pos, min, max int, what string) (int, int, error) {
	v, n := 0, 0
	for pos+n < len(input) && n < max {
		c := input[pos+n]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		n++
	}
	if n < min {
		return 0, pos, parseErrf(input, pos+n, "expected %d digits for %s", min, what)
	}
	return v, pos + n, nil
}

// parseFraction parses fractional seconds and scales them to
// nanoseconds. Strict mode demands exactly count digits.
func parseFraction(p *Parsed, input string, pos, count int, lenient bool) (int, error) {
	min, max := count, count
	if lenient {
		min, max = 1, 9
	}
	start := pos
	nano, scale, n := 0, 1_000_000_000, 0
	for pos+n < len(input) && n < max {
		c := input[pos+n]
		if c < '0' || c > '9' {
			break
		}
		scale /= 10
		nano += int(c-'0') * scale
		n++
	}
	if n < min {
		return start, parseErrf(input, pos+n, "expected %d fraction digits", min)
	}
	p.set(fieldNano, nano)
	return pos + n, nil
}

func (f *Formatter) parseMonthName(p *Parsed, input string, pos, count int, lenient bool) (int, error) {
	table := f.locale.MonthsAbbrev
	if count == 4 {
		table = f.locale.MonthsWide
	}
	for i, name := range table {
		if matchesAt(input, pos, name, lenient) {
			p.set(fieldMonth, i+1)
			return pos + len(name), nil
		}
	}
	return pos, parseErrf(input, pos, "expected month name")
}

func (f *Formatter) parseWeekdayName(input string, pos, count int, lenient bool) (int, error) {
	table := f.locale.WeekdaysAbbrev
	if count == 4 {
		table = f.locale.WeekdaysWide
	}
	// The weekday is redundant with the date fields and carries no
	// value of its own; it only has to match one of the names.
	for _, name := range table {
		if matchesAt(input, pos, name, lenient) {
			return pos + len(name), nil
		}
	}
	return pos, parseErrf(input, pos, "expected weekday name")
}

func (f *Formatter) parseDayPeriod(p *Parsed, input string, pos int, lenient bool) (int, error) {
	if matchesAt(input, pos, f.locale.AM, lenient) {
		p.set(fieldDayPeriod, 0)
		return pos + len(f.locale.AM), nil
	}
	if matchesAt(input, pos, f.locale.PM, lenient) {
		p.set(fieldDayPeriod, 1)
		return pos + len(f.locale.PM), nil
	}
	return pos, parseErrf(input, pos, "expected %q or %q", f.locale.AM, f.locale.PM)
}

func parseOffsetField(p *Parsed, input string, pos int, tok token, lenient bool) (int, error) {
	if pos >= len(input) {
		return pos, parseErrf(input, pos, "expected offset")
	}
	if c := input[pos]; c == 'Z' || (lenient && c == 'z') {
		if tok.sym == 'x' && !lenient {
			return pos, parseErrf(input, pos, "offset symbol 'x' does not accept 'Z'")
		}
		p.set(fieldOffset, 0)
		return pos + 1, nil
	}
	sign := 0
	switch input[pos] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return pos, parseErrf(input, pos, "expected offset sign")
	}
	pos++
	h, pos, err := parseDigits(input, pos, 2, 2, "offset hours")
	if err != nil {
		return pos, err
	}
	colons := tok.count == 3 || tok.count == 5
	var m, s int
	if next, ok := offsetPart(input, pos, colons, lenient); ok {
		m, pos = next.value, next.pos
		if next, ok := offsetPart(input, pos, colons, lenient); ok {
			s, pos = next.value, next.pos
		}
	} else if tok.count >= 2 && !lenient {
		return pos, parseErrf(input, pos, "expected offset minutes")
	}
	p.set(fieldOffset, sign*(h*3600+m*60+s))
	return pos, nil
}

type offsetDigits struct {
	value int
	pos   int
}

// offsetPart consumes an optional ":mm" or "mm" group of an offset.
// In lenient mode the colon is optional either way.
func offsetPart(input string, pos int, colon, lenient bool) (offsetDigits, bool) {
	p := pos
	if p < len(input) && input[p] == ':' {
		if !colon && !lenient {
			return offsetDigits{}, false
		}
		p++
	} else if colon && !lenient {
		return offsetDigits{}, false
	}
	v, next, err := parseDigits(input, p, 2, 2, "offset part")
	if err != nil {
		return offsetDigits{}, false
	}
	return offsetDigits{value: v, pos: next}, true
}

// parseZoneID consumes a zone identifier: the longest run of letters,
// digits and the punctuation that occurs in zoneinfo names.
func parseZoneID(p *Parsed, input string, pos int) (int, error) {
	end := pos
	for end < len(input) {
		c := input[end]
		if isSymbolLetter(c) || (c >= '0' && c <= '9') || c == '/' || c == '_' || c == '+' || c == '-' {
			end++
			continue
		}
		break
	}
	if end == pos {
		return pos, parseErrf(input, pos, "expected zone identifier")
	}
	p.zone = input[pos:end]
	return end, nil
}

func matchesAt(input string, pos int, name string, lenient bool) bool {
	end := pos + len(name)
	if end > len(input) {
		return false
	}
	got := input[pos:end]
	if lenient {
		return strings.EqualFold(got, name)
	}
	return got == name
}
