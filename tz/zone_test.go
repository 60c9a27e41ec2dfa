package tz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chrono "github.com/ngrash/go-chrono"
	"github.com/ngrash/go-chrono/tz"
)

func mustInstant(t *testing.T, s string) chrono.Instant {
	t.Helper()
	i, err := chrono.ParseInstant(s)
	require.NoError(t, err)
	return i
}

func mustLocal(t *testing.T, s string) chrono.DateTime {
	t.Helper()
	dt, err := chrono.ParseDateTime(s)
	require.NoError(t, err)
	return dt
}

// london2023 carries the two 2023 DST transitions of Europe/London:
// clocks jump from 01:00 to 02:00 local on March 26 and fall back from
// 02:00 to 01:00 local on October 29.
func london2023(t *testing.T) *tz.Zone {
	t.Helper()
	z, err := tz.NewZone("Europe/London", []tz.Transition{
		{
			At:     mustInstant(t, "2023-03-26T01:00:00Z"),
			Before: chrono.UTC,
			After:  chrono.MustOffset(1, 0, 0),
		},
		{
			At:     mustInstant(t, "2023-10-29T01:00:00Z"),
			Before: chrono.MustOffset(1, 0, 0),
			After:  chrono.UTC,
		},
	})
	require.NoError(t, err)
	return z
}

func newYork2023(t *testing.T) *tz.Zone {
	t.Helper()
	z, err := tz.NewZone("America/New_York", []tz.Transition{
		{
			At:     mustInstant(t, "2023-03-12T07:00:00Z"),
			Before: chrono.MustOffset(-5, 0, 0),
			After:  chrono.MustOffset(-4, 0, 0),
		},
		{
			At:     mustInstant(t, "2023-11-05T06:00:00Z"),
			Before: chrono.MustOffset(-4, 0, 0),
			After:  chrono.MustOffset(-5, 0, 0),
		},
	})
	require.NoError(t, err)
	return z
}

func TestNewZone_Validation(t *testing.T) {
	_, err := tz.NewZone("Empty", nil)
	assert.ErrorContains(t, err, "no transitions")

	at := mustInstant(t, "2023-03-26T01:00:00Z")
	_, err = tz.NewZone("Unordered", []tz.Transition{
		{At: at, Before: chrono.UTC, After: chrono.MustOffset(1, 0, 0)},
		{At: at, Before: chrono.MustOffset(1, 0, 0), After: chrono.UTC},
	})
	assert.ErrorContains(t, err, "not after")

	_, err = tz.NewZone("Discontinuous", []tz.Transition{
		{At: at, Before: chrono.UTC, After: chrono.MustOffset(1, 0, 0)},
		{At: mustInstant(t, "2023-10-29T01:00:00Z"), Before: chrono.MustOffset(2, 0, 0), After: chrono.UTC},
	})
	assert.ErrorContains(t, err, "does not continue")

	// A fall-back only 30 minutes after a spring-forward repeats local
	// times the gap already skipped.
	_, err = tz.NewZone("Crowded", []tz.Transition{
		{At: at, Before: chrono.UTC, After: chrono.MustOffset(1, 0, 0)},
		{At: mustInstant(t, "2023-03-26T01:30:00Z"), Before: chrono.MustOffset(1, 0, 0), After: chrono.UTC},
	})
	assert.ErrorContains(t, err, "local windows overlap")
}

func TestZone_OffsetAt(t *testing.T) {
	z := london2023(t)
	utc := chrono.UTC
	bst := chrono.MustOffset(1, 0, 0)

	for _, tc := range []struct {
		name string
		at   string
		want chrono.Offset
	}{
		{"before first transition", "2023-01-01T00:00:00Z", utc},
		{"instant of spring transition", "2023-03-26T01:00:00Z", bst},
		{"one second earlier", "2023-03-26T00:59:59Z", utc},
		{"summer", "2023-07-01T12:00:00Z", bst},
		{"instant of autumn transition", "2023-10-29T01:00:00Z", utc},
		{"after last transition", "2023-12-25T00:00:00Z", utc},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, z.OffsetAt(mustInstant(t, tc.at)))
		})
	}
}

func TestZone_Resolve_Normal(t *testing.T) {
	z := london2023(t)

	r := z.Resolve(mustLocal(t, "2023-07-01T12:00:00"))
	assert.Equal(t, tz.ResolutionNormal, r.Kind())
	assert.Equal(t, chrono.MustOffset(1, 0, 0), r.Offset())
	assert.Equal(t, r.Offset(), r.EarlierOffset())
	assert.Equal(t, r.Offset(), r.LaterOffset())
	assert.Equal(t, mustLocal(t, "2023-07-01T12:00:00"), r.LocalDateTime())
	assert.Equal(t, mustInstant(t, "2023-07-01T11:00:00Z"), r.Instant())

	// Before the first transition the pre-rule offset applies.
	r = z.Resolve(mustLocal(t, "2023-01-15T09:00:00"))
	assert.Equal(t, tz.ResolutionNormal, r.Kind())
	assert.Equal(t, chrono.UTC, r.Offset())
}

func TestZone_Resolve_Gap(t *testing.T) {
	z := london2023(t)

	// 01:30 local on March 26 was skipped: clocks went 01:00 -> 02:00.
	r := z.Resolve(mustLocal(t, "2023-03-26T01:30:00"))
	require.Equal(t, tz.ResolutionGap, r.Kind())
	assert.Equal(t, chrono.UTC, r.EarlierOffset())
	assert.Equal(t, chrono.MustOffset(1, 0, 0), r.LaterOffset())
	assert.Equal(t, chrono.DurationOfSeconds(3600), r.GapLength())

	// Default policy pushes the local time past the gap and adopts the
	// post-transition offset, landing on the transition instant plus
	// the elapsed part of the gap.
	assert.Equal(t, chrono.MustOffset(1, 0, 0), r.Offset())
	assert.Equal(t, mustLocal(t, "2023-03-26T02:30:00"), r.LocalDateTime())
	assert.Equal(t, mustInstant(t, "2023-03-26T01:30:00Z"), r.Instant())
}

func TestZone_Resolve_GapBoundaries(t *testing.T) {
	z := london2023(t)

	// The window start itself was skipped.
	r := z.Resolve(mustLocal(t, "2023-03-26T01:00:00"))
	assert.Equal(t, tz.ResolutionGap, r.Kind())

	// The window end is the first valid local time again.
	r = z.Resolve(mustLocal(t, "2023-03-26T02:00:00"))
	assert.Equal(t, tz.ResolutionNormal, r.Kind())
	assert.Equal(t, chrono.MustOffset(1, 0, 0), r.Offset())

	r = z.Resolve(mustLocal(t, "2023-03-26T00:59:59"))
	assert.Equal(t, tz.ResolutionNormal, r.Kind())
	assert.Equal(t, chrono.UTC, r.Offset())
}

func TestZone_Resolve_Overlap(t *testing.T) {
	z := london2023(t)

	// 01:30 local on October 29 happened twice: first at +01:00, then
	// again at +00:00 after clocks fell back.
	r := z.Resolve(mustLocal(t, "2023-10-29T01:30:00"))
	require.Equal(t, tz.ResolutionOverlap, r.Kind())
	assert.Equal(t, chrono.MustOffset(1, 0, 0), r.EarlierOffset())
	assert.Equal(t, chrono.UTC, r.LaterOffset())
	assert.True(t, r.GapLength().IsZero())

	// Default policy keeps the first occurrence.
	assert.Equal(t, chrono.MustOffset(1, 0, 0), r.Offset())
	assert.Equal(t, mustLocal(t, "2023-10-29T01:30:00"), r.LocalDateTime())
	assert.Equal(t, mustInstant(t, "2023-10-29T00:30:00Z"), r.Instant())
}

func TestZone_Resolve_OverlapBoundaries(t *testing.T) {
	z := london2023(t)

	r := z.Resolve(mustLocal(t, "2023-10-29T01:00:00"))
	assert.Equal(t, tz.ResolutionOverlap, r.Kind())

	// 02:00 local only happens once, after the fall-back.
	r = z.Resolve(mustLocal(t, "2023-10-29T02:00:00"))
	assert.Equal(t, tz.ResolutionNormal, r.Kind())
	assert.Equal(t, chrono.UTC, r.Offset())
}

func TestFixedZone_Resolve(t *testing.T) {
	z := tz.FixedZone("+04:00", chrono.MustOffset(4, 0, 0))
	assert.True(t, z.IsFixed())
	assert.Empty(t, z.Transitions())

	r := z.Resolve(mustLocal(t, "2023-03-26T01:30:00"))
	assert.Equal(t, tz.ResolutionNormal, r.Kind())
	assert.Equal(t, chrono.MustOffset(4, 0, 0), r.Offset())
	assert.Equal(t, chrono.MustOffset(4, 0, 0), z.OffsetAt(mustInstant(t, "2023-03-26T01:30:00Z")))
}

func TestResolutionKind_String(t *testing.T) {
	assert.Equal(t, "Normal", tz.ResolutionNormal.String())
	assert.Equal(t, "Gap", tz.ResolutionGap.String())
	assert.Equal(t, "Overlap", tz.ResolutionOverlap.String())
	assert.Equal(t, "<UNDEFINED>", tz.ResolutionKind(42).String())
}
