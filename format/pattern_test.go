package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Tokens(t *testing.T) {
	f, err := Compile("yyyy-MM-dd'T'HH:mm:ss")
	require.NoError(t, err)
	assert.Equal(t, []token{
		{sym: 'y', count: 4},
		{literal: "-"},
		{sym: 'M', count: 2},
		{literal: "-"},
		{sym: 'd', count: 2},
		{literal: "T"},
		{sym: 'H', count: 2},
		{literal: ":"},
		{sym: 'm', count: 2},
		{literal: ":"},
		{sym: 's', count: 2},
	}, f.tokens)
	assert.Equal(t, "yyyy-MM-dd'T'HH:mm:ss", f.Pattern())
}

func TestCompile_QuotedLiterals(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		want    []token
	}{
		{"'at' HH", []token{{literal: "at "}, {sym: 'H', count: 2}}},
		{"''", []token{{literal: "'"}}},
		{"'o''clock'", []token{{literal: "o'clock"}}},
		{"HH'h'", []token{{sym: 'H', count: 2}, {literal: "h"}}},
		{"'y'''", []token{{literal: "y'"}}},
	} {
		f, err := Compile(tc.pattern)
		require.NoError(t, err, tc.pattern)
		assert.Equal(t, tc.want, f.tokens, tc.pattern)
	}
}

func TestCompile_MergesAdjacentLiterals(t *testing.T) {
	f, err := Compile("-- 'x'!")
	require.NoError(t, err)
	assert.Equal(t, []token{{literal: "-- x!"}}, f.tokens)
}

func TestCompile_Errors(t *testing.T) {
	for _, tc := range []struct {
		pattern    string
		wantOffset int
		wantMsg    string
	}{
		{"yyyy-QQ-dd", 5, "unknown field symbol"},
		{"yyyyyyyyyy", 0, "repeated 10 times"},
		{"MMMMM", 0, "repeated 5 times"},
		{"V", 0, "must be written VV"},
		{"HH 'oops", 3, "unterminated quote"},
	} {
		_, err := Compile(tc.pattern)
		var perr *PatternError
		require.ErrorAs(t, err, &perr, tc.pattern)
		assert.Equal(t, tc.pattern, perr.Pattern)
		assert.Equal(t, tc.wantOffset, perr.Offset, tc.pattern)
		assert.Contains(t, perr.Msg, tc.wantMsg, tc.pattern)
	}
}

func TestMustCompile(t *testing.T) {
	assert.NotPanics(t, func() { MustCompile("yyyy-MM-dd") })
	assert.Panics(t, func() { MustCompile("Q") })
}

func TestWithLocale(t *testing.T) {
	base := MustCompile("MMMM")
	german := &Locale{
		MonthsWide: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
	}

	localized := base.WithLocale(german)
	assert.NotSame(t, base, localized)
	assert.Same(t, EnglishLocale, base.locale)
	assert.Same(t, german, localized.locale)

	assert.Panics(t, func() { base.WithLocale(nil) })
}
