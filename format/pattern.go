// Package format renders temporal values to text and parses text back
// into field values, driven by a pattern string that compiles once
// into a token program.
//
// The engine is decoupled from the value types in package chrono and
// tz: formatting reads fields through a Source, a small capability
// struct of accessor closures, and parsing accumulates fields into a
// Parsed builder that constructs values on demand. The pattern
// language is the usual symbol alphabet:
//
//	y   year                    M  month          d  day of month
//	H   hour of day (0-23)      h  clock hour (1-12)
//	m   minute                  s  second         S  fraction of second
//	E   weekday name            a  AM/PM
//	X   offset, 'Z' for UTC     x  offset without 'Z'
//	VV  zone identifier
//	'   literal text quoting, '' is a literal quote
//
// Symbol repetition controls width and style: "MM" is a zero-padded
// number, "MMM" the abbreviated name, "MMMM" the full name.
package format

import "fmt"

// PatternError reports a malformed pattern string, with the byte
// offset of the offending character.
type PatternError struct {
	Pattern string
	Offset  int
	Msg     string
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern %q: %s at offset %d", e.Pattern, e.Msg, e.Offset)
}

func patternErrf(pattern string, offset int, format string, args ...any) *PatternError {
	return &PatternError{Pattern: pattern, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// token is one step of a compiled pattern: either a literal text span
// or a field symbol with its repetition count.
type token struct {
	// literal holds literal text; empty for field tokens.
	literal string
	// sym is the field symbol; zero for literal tokens.
	sym byte
	// count is the symbol repetition count.
	count int
}

// maxCount bounds the repetition count per symbol; zero means the
// symbol is unknown.
var maxCount = map[byte]int{
	'y': 9,
	'M': 4,
	'd': 2,
	'H': 2,
	'h': 2,
	'm': 2,
	's': 2,
	'S': 9,
	'E': 4,
	'a': 1,
	'X': 5,
	'x': 5,
	'V': 2,
}

// Formatter is a compiled pattern, ready to format and parse. It is
// immutable and safe for concurrent use.
type Formatter struct {
	pattern string
	tokens  []token
	locale  *Locale
}

// Compile compiles a pattern string. Unknown symbols, repetition
// counts beyond a symbol's range and unterminated quotes are
// *PatternError with the character offset. The formatter uses
// EnglishLocale for named fields; use WithLocale to inject another.
func Compile(pattern string) (*Formatter, error) {
	var tokens []token
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		switch {
		case c == '\'':
			lit, next, err := scanQuoted(pattern, i)
			if err != nil {
				return nil, err
			}
			tokens = appendLiteral(tokens, lit)
			i = next
		case isSymbolLetter(c):
			count := 1
			for i+count < len(pattern) && pattern[i+count] == c {
				count++
			}
			max := maxCount[c]
			if max == 0 {
				return nil, patternErrf(pattern, i, "unknown field symbol %q", string(c))
			}
			if count > max {
				return nil, patternErrf(pattern, i, "symbol %q repeated %d times, at most %d", string(c), count, max)
			}
			if c == 'V' && count != 2 {
				return nil, patternErrf(pattern, i, "zone identifier symbol must be written VV")
			}
			tokens = append(tokens, token{sym: c, count: count})
			i += count
		default:
			tokens = appendLiteral(tokens, string(c))
			i++
		}
	}
	return &Formatter{pattern: pattern, tokens: tokens, locale: EnglishLocale}, nil
}

// MustCompile is Compile for patterns known good at build time; it
// panics on error.
func MustCompile(pattern string) *Formatter {
	f, err := Compile(pattern)
	if err != nil {
		panic("format: " + err.Error())
	}
	return f
}

// WithLocale returns a copy of the formatter using the given locale
// tables for named fields. The locale must not be nil.
func (f *Formatter) WithLocale(l *Locale) *Formatter {
	if l == nil {
		panic("format: WithLocale called with nil locale")
	}
	clone := *f
	clone.locale = l
	return &clone
}

// Pattern returns the pattern the formatter was compiled from.
func (f *Formatter) Pattern() string { return f.pattern }

// scanQuoted consumes a quoted literal starting at the opening quote
// and returns the unescaped text and the position after the closing
// quote. The two-quote sequence '' denotes a single literal quote,
// inside or outside quoted text.
func scanQuoted(pattern string, start int) (string, int, error) {
	if start+1 < len(pattern) && pattern[start+1] == '\'' {
		return "'", start + 2, nil
	}
	var lit []byte
	i := start + 1
	for i < len(pattern) {
		if pattern[i] == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit = append(lit, '\'')
				i += 2
				continue
			}
			return string(lit), i + 1, nil
		}
		lit = append(lit, pattern[i])
		i++
	}
	return "", start, patternErrf(pattern, start, "unterminated quote")
}

// appendLiteral merges adjacent literal spans into one token.
func appendLiteral(tokens []token, lit string) []token {
	if n := len(tokens); n > 0 && tokens[n-1].sym == 0 {
		tokens[n-1].literal += lit
		return tokens
	}
	return append(tokens, token{literal: lit})
}

func isSymbolLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
