// Package chrono provides immutable date and time value types on the
// proleptic Gregorian calendar: Date, Time, DateTime, Instant, Offset,
// Duration and Period.
//
// Every type is a small immutable value. Construction validates field
// ranges once and every transformation returns a new value, so values
// can be shared freely between goroutines without coordination.
//
// The types split the problem the same way they split the data:
//
//   - Date is a calendar date with no time of day and no zone.
//   - Time is a wall-clock time of day with no date and no zone.
//   - DateTime combines the two and still has no zone.
//   - Instant is a point on the physical timeline, always zone-free,
//     and never exposes calendar fields.
//   - Duration is an exact span of machine time (seconds and nanos).
//   - Period is an amount of calendar time (years, months, days) that
//     has no fixed length in seconds.
//
// Time-zone aware values live in the tz subpackage, and the pattern
// based formatter lives in the format subpackage. Package chrono
// itself formats and parses the ISO-8601 shapes, e.g. "2024-04-21",
// "2024-04-21T15:30:45.123456789" and "2024-04-21T15:30:45+02:00".
//
// Failures are reported as errors, never panics: *FieldError for an
// out-of-range field, *RangeError for arithmetic overflow and
// *ParseError for malformed input.
package chrono
