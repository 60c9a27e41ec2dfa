package chrono

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_Validation(t *testing.T) {
	cases := []struct {
		name             string
		year, month, day int
		wantField        string
	}{
		{"month zero", 2024, 0, 1, "month"},
		{"month thirteen", 2024, 13, 1, "month"},
		{"day zero", 2024, 1, 0, "day"},
		{"february 30", 2024, 2, 30, "day"},
		{"february 29 in non-leap year", 2023, 2, 29, "day"},
		{"april 31", 2024, 4, 31, "day"},
		{"year too large", MaxYear + 1, 1, 1, "year"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewDate(c.year, c.month, c.day)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, c.wantField, fe.Field)
		})
	}
}

func TestNewDate_NeverClamps(t *testing.T) {
	// Construction rejects out-of-range days rather than clamping;
	// clamping is documented behavior of AddMonths only.
	_, err := NewDate(2023, 2, 29)
	require.Error(t, err)
}

func TestDate_Fields(t *testing.T) {
	d := MustDate(2024, 4, 21)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 4, d.Month())
	assert.Equal(t, 21, d.Day())
	assert.Equal(t, Sunday, d.Weekday())
	assert.Equal(t, 112, d.DayOfYear())
}

func TestDate_AddDays_Rollover(t *testing.T) {
	got, err := MustDate(2023, 2, 28).AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, MustDate(2023, 3, 1), got)

	got, err = MustDate(2024, 2, 28).AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, MustDate(2024, 2, 29), got)

	got, err = MustDate(2024, 1, 1).AddDays(-1)
	require.NoError(t, err)
	assert.Equal(t, MustDate(2023, 12, 31), got)
}

func TestDate_AddMonths_Clamps(t *testing.T) {
	cases := []struct {
		start Date
		n     int64
		want  Date
	}{
		{MustDate(2024, 1, 31), 1, MustDate(2024, 2, 29)},
		{MustDate(2023, 1, 31), 1, MustDate(2023, 2, 28)},
		{MustDate(2024, 3, 31), 1, MustDate(2024, 4, 30)},
		{MustDate(2024, 1, 31), 2, MustDate(2024, 3, 31)},
		{MustDate(2024, 1, 15), 13, MustDate(2025, 2, 15)},
		{MustDate(2024, 3, 31), -1, MustDate(2024, 2, 29)},
		{MustDate(2024, 1, 15), -1, MustDate(2023, 12, 15)},
	}
	for _, c := range cases {
		got, err := c.start.AddMonths(c.n)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%v.AddMonths(%d)", c.start, c.n)
	}
}

func TestDate_AddYears_ClampsLeapDay(t *testing.T) {
	got, err := MustDate(2024, 2, 29).AddYears(1)
	require.NoError(t, err)
	assert.Equal(t, MustDate(2025, 2, 28), got)

	got, err = MustDate(2024, 2, 29).AddYears(4)
	require.NoError(t, err)
	assert.Equal(t, MustDate(2028, 2, 29), got)
}

func TestDate_AddOverflow(t *testing.T) {
	last := MustDate(MaxYear, 12, 31)
	_, err := last.AddDays(1)
	var re *RangeError
	require.ErrorAs(t, err, &re)

	_, err = last.AddMonths(1)
	require.ErrorAs(t, err, &re)

	_, err = last.AddYears(1)
	require.ErrorAs(t, err, &re)
}

func TestDate_EpochDayRoundTrip(t *testing.T) {
	for _, d := range []Date{
		MustDate(1970, 1, 1),
		MustDate(2024, 2, 29),
		MustDate(1, 1, 1),
		MustDate(-1, 12, 31),
		MustDate(9999, 12, 31),
	} {
		got, err := DateFromEpochDay(d.EpochDay())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

func TestDate_Compare(t *testing.T) {
	a, b := MustDate(2024, 4, 21), MustDate(2024, 4, 22)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "2024-04-21", MustDate(2024, 4, 21).String())
	assert.Equal(t, "0001-01-01", MustDate(1, 1, 1).String())
	assert.Equal(t, "-0012-12-31", MustDate(-12, 12, 31).String())
	assert.Equal(t, "+10000-01-01", MustDate(10000, 1, 1).String())
}

func TestFieldError_Message(t *testing.T) {
	_, err := NewDate(2024, 2, 30)
	require.EqualError(t, err, "invalid day 30: must be in range [1, 29]")
	assert.False(t, errors.As(err, new(*RangeError)))
}
