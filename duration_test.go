package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDuration_Normalizes(t *testing.T) {
	for _, tc := range []struct {
		name     string
		sec, adj int64
		wantSec  int64
		wantNano int
	}{
		{"zero", 0, 0, 0, 0},
		{"carry", 1, 1_500_000_000, 2, 500_000_000},
		{"borrow", 0, -1, -1, 999_999_999},
		{"negative second positive nano", -1, 0, -1, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDuration(tc.sec, tc.adj)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSec, d.Seconds())
			assert.Equal(t, tc.wantNano, d.Nano())
		})
	}
}

func TestDurationBetween(t *testing.T) {
	a, err := NewInstant(10, 500_000_000)
	require.NoError(t, err)
	b, err := NewInstant(12, 250_000_000)
	require.NoError(t, err)

	d, err := DurationBetween(a, b)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.Seconds())
	assert.Equal(t, 750_000_000, d.Nano())

	// Reversed endpoints give the negated duration.
	rev, err := DurationBetween(b, a)
	require.NoError(t, err)
	neg, err := d.Negated()
	require.NoError(t, err)
	assert.Equal(t, neg, rev)
	assert.True(t, rev.IsNegative())
}

func TestDuration_Add(t *testing.T) {
	a, err := NewDuration(1, 800_000_000)
	require.NoError(t, err)
	b, err := NewDuration(2, 700_000_000)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(4), sum.Seconds())
	assert.Equal(t, 500_000_000, sum.Nano())

	_, err = DurationOfSeconds(maxInt64).Add(DurationOfSeconds(1))
	var rerr *RangeError
	require.ErrorAs(t, err, &rerr)
}

func TestDuration_Negated(t *testing.T) {
	d, err := NewDuration(1, 500_000_000)
	require.NoError(t, err)
	neg, err := d.Negated()
	require.NoError(t, err)
	assert.Equal(t, int64(-2), neg.Seconds())
	assert.Equal(t, 500_000_000, neg.Nano())

	back, err := neg.Negated()
	require.NoError(t, err)
	assert.Equal(t, d, back)

	_, err = DurationOfSeconds(minInt64).Negated()
	var rerr *RangeError
	require.ErrorAs(t, err, &rerr)
}

func TestDuration_Compare(t *testing.T) {
	a, err := NewDuration(1, 0)
	require.NoError(t, err)
	b, err := NewDuration(1, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, DurationOfSeconds(-1).Compare(DurationOfSeconds(0)))
}

func TestDuration_String(t *testing.T) {
	for _, tc := range []struct {
		sec  int64
		adj  int64
		want string
	}{
		{0, 0, "PT0S"},
		{5, 0, "PT5S"},
		{65, 0, "PT1M5S"},
		{3600, 0, "PT1H"},
		{5415, 0, "PT1H30M15S"},
		{5, 500_000_000, "PT5.5S"},
		{0, 1, "PT0.000000001S"},
		{-5, 0, "PT-5S"},
		{-1, 500_000_000, "PT-0.5S"},
		{90000, 0, "PT25H"},
	} {
		d, err := NewDuration(tc.sec, tc.adj)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.String(), "NewDuration(%d, %d)", tc.sec, tc.adj)
	}
}

func TestDuration_IsZero(t *testing.T) {
	assert.True(t, Duration{}.IsZero())
	assert.False(t, DurationOfSeconds(1).IsZero())
}
