package chrono

import (
	"fmt"
	"math"
)

const (
	maxInt64 = math.MaxInt64
	minInt64 = math.MinInt64
)

// FieldError reports a temporal field whose value is outside its valid
// range, such as month 13 or February 30. Constructors return it
// instead of clamping; only the explicitly documented month arithmetic
// ever clamps.
type FieldError struct {
	// Field is the name of the offending field, e.g. "month".
	Field string
	// Value is the rejected value.
	Value int64
	// Min and Max bound the valid range, inclusive.
	Min, Max int64
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %d: must be in range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// RangeError reports that the result of an arithmetic operation
// exceeds the representable range of its type, e.g. a year overflow on
// AddYears or an Instant pushed past the ends of the timeline.
type RangeError struct {
	// Op names the operation that overflowed.
	Op string
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: result exceeds the supported range", e.Op)
}

// ParseError reports that an input string does not match the expected
// ISO-8601 shape. Offset is the byte offset at which parsing failed.
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

func fieldError(field string, value, min, max int64) *FieldError {
	return &FieldError{Field: field, Value: value, Min: min, Max: max}
}

func rangeError(op string) *RangeError {
	return &RangeError{Op: op}
}
