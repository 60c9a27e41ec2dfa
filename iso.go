package chrono

// ISO-8601 parsing for the core value types. These cover the common
// textual exchange forms without going through the pattern engine in
// the format subpackage:
//
//	2024-04-21
//	15:30:45.123456789
//	2024-04-21T15:30:45
//	2024-04-21T15:30:45+02:00
//	2024-04-21T13:30:45Z
//
// Each parser consumes the entire input and reports the byte offset
// of the first problem on failure.

// ParseDate parses an ISO-8601 calendar date such as "2024-04-21".
// Years may carry a sign and use more than four digits.
func ParseDate(s string) (Date, error) {
	d, pos, err := scanDate(s, 0)
	if err != nil {
		return Date{}, err
	}
	if pos != len(s) {
		return Date{}, parseErrf(s, pos, "unexpected trailing input")
	}
	return d, nil
}

// ParseTime parses an ISO-8601 time of day such as "15:30:45" or
// "15:30:45.5". Seconds are optional and default to zero.
func ParseTime(s string) (Time, error) {
	t, pos, err := scanTime(s, 0)
	if err != nil {
		return Time{}, err
	}
	if pos != len(s) {
		return Time{}, parseErrf(s, pos, "unexpected trailing input")
	}
	return t, nil
}

// ParseDateTime parses an ISO-8601 date-time with a 'T' separator,
// such as "2024-04-21T15:30:45.123456789".
func ParseDateTime(s string) (DateTime, error) {
	dt, pos, err := scanDateTime(s, 0)
	if err != nil {
		return DateTime{}, err
	}
	if pos != len(s) {
		return DateTime{}, parseErrf(s, pos, "unexpected trailing input")
	}
	return dt, nil
}

// ParseOffset parses a UTC offset such as "Z", "+02:00", "-05:30:30"
// or "+02".
func ParseOffset(s string) (Offset, error) {
	o, pos, err := scanOffset(s, 0)
	if err != nil {
		return Offset{}, err
	}
	if pos != len(s) {
		return Offset{}, parseErrf(s, pos, "unexpected trailing input")
	}
	return o, nil
}

// ParseInstant parses an ISO-8601 date-time with a mandatory zone
// designator, such as "2024-04-21T13:30:45Z" or
// "2024-04-21T15:30:45+02:00", and returns the instant it denotes.
func ParseInstant(s string) (Instant, error) {
	dt, pos, err := scanDateTime(s, 0)
	if err != nil {
		return Instant{}, err
	}
	if pos >= len(s) {
		return Instant{}, parseErrf(s, pos, "missing zone designator")
	}
	o, pos, err := scanOffset(s, pos)
	if err != nil {
		return Instant{}, err
	}
	if pos != len(s) {
		return Instant{}, parseErrf(s, pos, "unexpected trailing input")
	}
	return dt.InstantAt(o), nil
}

// scanDate parses a date starting at pos and returns the position
// after it.
func scanDate(s string, pos int) (Date, int, error) {
	year, pos, err := scanYear(s, pos)
	if err != nil {
		return Date{}, pos, err
	}
	pos, err = expect(s, pos, '-')
	if err != nil {
		return Date{}, pos, err
	}
	month, pos, err := scanFixedDigits(s, pos, 2, "month")
	if err != nil {
		return Date{}, pos, err
	}
	pos, err = expect(s, pos, '-')
	if err != nil {
		return Date{}, pos, err
	}
	day, pos, err := scanFixedDigits(s, pos, 2, "day")
	if err != nil {
		return Date{}, pos, err
	}
	d, err := NewDate(year, month, day)
	if err != nil {
		return Date{}, pos, err
	}
	return d, pos, nil
}

func scanYear(s string, pos int) (int, int, error) {
	start := pos
	neg := false
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		neg = s[pos] == '-'
		pos++
	}
	digits := 0
	var y int64
	for pos < len(s) && isDigit(s[pos]) {
		y = y*10 + int64(s[pos]-'0')
		if y > MaxYear {
			return 0, start, parseErrf(s, start, "year out of range")
		}
		digits++
		pos++
	}
	if digits < 4 {
		return 0, pos, parseErrf(s, pos, "expected at least 4 year digits")
	}
	if neg {
		y = -y
	}
	return int(y), pos, nil
}

func scanTime(s string, pos int) (Time, int, error) {
	hour, pos, err := scanFixedDigits(s, pos, 2, "hour")
	if err != nil {
		return Time{}, pos, err
	}
	pos, err = expect(s, pos, ':')
	if err != nil {
		return Time{}, pos, err
	}
	minute, pos, err := scanFixedDigits(s, pos, 2, "minute")
	if err != nil {
		return Time{}, pos, err
	}
	var second, nano int
	if pos < len(s) && s[pos] == ':' {
		pos++
		second, pos, err = scanFixedDigits(s, pos, 2, "second")
		if err != nil {
			return Time{}, pos, err
		}
		if pos < len(s) && s[pos] == '.' {
			pos++
			nano, pos, err = scanFraction(s, pos)
			if err != nil {
				return Time{}, pos, err
			}
		}
	}
	t, err := NewTime(hour, minute, second, nano)
	if err != nil {
		return Time{}, pos, err
	}
	return t, pos, nil
}

// scanFraction parses 1 to 9 fractional digits and scales them to
// nanoseconds.
func scanFraction(s string, pos int) (int, int, error) {
	start := pos
	nano, scale := 0, nanosPerSecond
	for pos < len(s) && isDigit(s[pos]) && pos-start < 9 {
		scale /= 10
		nano += int(s[pos]-'0') * scale
		pos++
	}
	if pos == start {
		return 0, pos, parseErrf(s, pos, "expected fraction digit")
	}
	if pos < len(s) && isDigit(s[pos]) {
		return 0, pos, parseErrf(s, pos, "fraction exceeds nanosecond precision")
	}
	return nano, pos, nil
}

func scanDateTime(s string, pos int) (DateTime, int, error) {
	d, pos, err := scanDate(s, pos)
	if err != nil {
		return DateTime{}, pos, err
	}
	if pos >= len(s) || (s[pos] != 'T' && s[pos] != 't') {
		return DateTime{}, pos, parseErrf(s, pos, "expected 'T' separator")
	}
	t, pos, err := scanTime(s, pos+1)
	if err != nil {
		return DateTime{}, pos, err
	}
	return NewDateTime(d, t), pos, nil
}

func scanOffset(s string, pos int) (Offset, int, error) {
	if pos >= len(s) {
		return Offset{}, pos, parseErrf(s, pos, "expected offset")
	}
	if s[pos] == 'Z' || s[pos] == 'z' {
		return UTC, pos + 1, nil
	}
	sign := 0
	switch s[pos] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return Offset{}, pos, parseErrf(s, pos, "expected 'Z', '+' or '-'")
	}
	pos++
	hours, pos, err := scanFixedDigits(s, pos, 2, "offset hours")
	if err != nil {
		return Offset{}, pos, err
	}
	var minutes, seconds int
	if pos < len(s) && s[pos] == ':' {
		minutes, pos, err = scanFixedDigits(s, pos+1, 2, "offset minutes")
		if err != nil {
			return Offset{}, pos, err
		}
		if pos < len(s) && s[pos] == ':' {
			seconds, pos, err = scanFixedDigits(s, pos+1, 2, "offset seconds")
			if err != nil {
				return Offset{}, pos, err
			}
		}
	}
	o, err := OffsetOf(sign*hours, sign*minutes, sign*seconds)
	if err != nil {
		return Offset{}, pos, err
	}
	return o, pos, nil
}

// scanFixedDigits parses exactly n digits.
func scanFixedDigits(s string, pos, n int, what string) (int, int, error) {
	v := 0
	for i := 0; i < n; i++ {
		if pos >= len(s) || !isDigit(s[pos]) {
			return 0, pos, parseErrf(s, pos, "expected %d-digit %s", n, what)
		}
		v = v*10 + int(s[pos]-'0')
		pos++
	}
	return v, pos, nil
}

func expect(s string, pos int, c byte) (int, error) {
	if pos >= len(s) || s[pos] != c {
		return pos, parseErrf(s, pos, "expected %q", string(c))
	}
	return pos + 1, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
