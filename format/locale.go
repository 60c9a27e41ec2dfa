package format

// Locale carries the textual tables the engine needs for named
// fields: month names, weekday names and day-period markers. The
// tables are injected data; the engine never computes or translates
// text itself. A Locale is immutable by convention: build it once and
// share it.
type Locale struct {
	// MonthsWide and MonthsAbbrev are indexed by month-1.
	MonthsWide   [12]string
	MonthsAbbrev [12]string

	// WeekdaysWide and WeekdaysAbbrev are indexed by chrono.Weekday,
	// i.e. Monday first.
	WeekdaysWide   [7]string
	WeekdaysAbbrev [7]string

	// AM and PM are the day-period markers.
	AM, PM string
}

// EnglishLocale is the built-in English table set. It is plain data;
// other locales are injected the same way.
var EnglishLocale = &Locale{
	MonthsWide: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	MonthsAbbrev: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	WeekdaysWide: [7]string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	},
	WeekdaysAbbrev: [7]string{
		"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
	},
	AM: "AM",
	PM: "PM",
}
