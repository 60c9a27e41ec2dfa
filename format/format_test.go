package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chrono "github.com/ngrash/go-chrono"
	"github.com/ngrash/go-chrono/tz"
)

func TestFormat_DateTime(t *testing.T) {
	dt, err := chrono.ParseDateTime("2024-04-21T15:30:45.123456789")
	require.NoError(t, err)
	src := OfDateTime(dt)

	for _, tc := range []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd'T'HH:mm:ss", "2024-04-21T15:30:45"},
		{"yyyy-MM-dd", "2024-04-21"},
		{"d.M.y", "21.4.2024"},
		{"yy", "24"},
		{"MMM d, yyyy", "Apr 21, 2024"},
		{"MMMM", "April"},
		{"E", "Sun"},
		{"EEEE, d MMMM yyyy", "Sunday, 21 April 2024"},
		{"h:mm a", "3:30 PM"},
		{"hh:mm a", "03:30 PM"},
		{"HH:mm:ss.SSS", "15:30:45.123"},
		{"ss.SSSSSSSSS", "45.123456789"},
		{"'week day' E", "week day Sun"},
	} {
		f := MustCompile(tc.pattern)
		got, err := f.Format(src)
		require.NoError(t, err, tc.pattern)
		assert.Equal(t, tc.want, got, tc.pattern)
	}
}

func TestFormat_ClockHourAndDayPeriod(t *testing.T) {
	f := MustCompile("h a")
	for _, tc := range []struct {
		hour int
		want string
	}{
		{0, "12 AM"},
		{1, "1 AM"},
		{11, "11 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{23, "11 PM"},
	} {
		tod, err := chrono.NewTime(tc.hour, 0, 0, 0)
		require.NoError(t, err)
		got, err := f.Format(OfTime(tod))
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "hour %d", tc.hour)
	}
}

func TestFormat_TwoDigitYearWrapsNegative(t *testing.T) {
	d, err := chrono.NewDate(-3, 1, 1)
	require.NoError(t, err)
	got, err := MustCompile("yy").Format(OfDate(d))
	require.NoError(t, err)
	assert.Equal(t, "97", got)
}

func TestFormat_PaddedYear(t *testing.T) {
	d := chrono.MustDate(85, 6, 1)
	got, err := MustCompile("yyyy").Format(OfDate(d))
	require.NoError(t, err)
	assert.Equal(t, "0085", got)

	neg := chrono.MustDate(-85, 6, 1)
	got, err = MustCompile("yyyy").Format(OfDate(neg))
	require.NoError(t, err)
	assert.Equal(t, "-0085", got)
}

func TestFormat_Offsets(t *testing.T) {
	zone := tz.FixedZone("+05:30", chrono.MustOffset(5, 30, 0))
	dt, err := chrono.ParseDateTime("2024-04-21T15:30:45")
	require.NoError(t, err)
	src := OfZoned(tz.Of(dt, zone))

	utcSrc := OfZoned(tz.Of(dt, tz.FixedZone("UTC", chrono.UTC)))

	for _, tc := range []struct {
		pattern  string
		src      Source
		want     string
	}{
		{"X", src, "+0530"},
		{"XX", src, "+0530"},
		{"XXX", src, "+05:30"},
		{"XXXX", src, "+0530"},
		{"XXXXX", src, "+05:30"},
		{"X", utcSrc, "Z"},
		{"XXX", utcSrc, "Z"},
		{"x", utcSrc, "+00"},
		{"xxx", utcSrc, "+00:00"},
	} {
		got, err := MustCompile(tc.pattern).Format(tc.src)
		require.NoError(t, err, tc.pattern)
		assert.Equal(t, tc.want, got, tc.pattern)
	}
}

func TestFormat_OffsetSecondsStyles(t *testing.T) {
	zone := tz.FixedZone("odd", chrono.MustOffset(1, 2, 3))
	dt, err := chrono.ParseDateTime("2024-04-21T15:30:45")
	require.NoError(t, err)
	src := OfZoned(tz.Of(dt, zone))

	got, err := MustCompile("XXXX").Format(src)
	require.NoError(t, err)
	assert.Equal(t, "+010203", got)

	got, err = MustCompile("XXXXX").Format(src)
	require.NoError(t, err)
	assert.Equal(t, "+01:02:03", got)
}

func TestFormat_ZoneIdentifier(t *testing.T) {
	zone := tz.FixedZone("Asia/Kolkata", chrono.MustOffset(5, 30, 0))
	dt, err := chrono.ParseDateTime("2024-04-21T15:30:45")
	require.NoError(t, err)

	got, err := MustCompile("yyyy-MM-dd'T'HH:mm:ssXXX'['VV']'").Format(OfZoned(tz.Of(dt, zone)))
	require.NoError(t, err)
	assert.Equal(t, "2024-04-21T15:30:45+05:30[Asia/Kolkata]", got)
}

func TestFormat_MissingField(t *testing.T) {
	d := chrono.MustDate(2024, 4, 21)

	_, err := MustCompile("HH:mm").Format(OfDate(d))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hour")

	tod, err := chrono.NewTime(15, 30, 0, 0)
	require.NoError(t, err)
	_, err = MustCompile("yyyy").Format(OfTime(tod))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")

	dt, err := chrono.ParseDateTime("2024-04-21T15:30:45")
	require.NoError(t, err)
	_, err = MustCompile("VV").Format(OfDateTime(dt))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zone identifier")
}

func TestFormat_Locale(t *testing.T) {
	french := &Locale{
		MonthsWide: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		MonthsAbbrev: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc."},
		WeekdaysWide: [7]string{"lundi", "mardi", "mercredi", "jeudi", "vendredi",
			"samedi", "dimanche"},
		WeekdaysAbbrev: [7]string{"lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."},
		AM:             "AM",
		PM:             "PM",
	}

	d := chrono.MustDate(2024, 4, 21)
	got, err := MustCompile("EEEE d MMMM yyyy").WithLocale(french).Format(OfDate(d))
	require.NoError(t, err)
	assert.Equal(t, "dimanche 21 avril 2024", got)
}
