package chrono

import (
	"fmt"
	"strings"
)

// Period is an amount of calendar time: a number of years, months and
// days, each an independent signed component. A Period has no fixed
// length in seconds because months vary in length, so there is
// deliberately no conversion between Period and Duration.
type Period struct {
	Years  int
	Months int
	Days   int
}

// PeriodBetween returns the period from start until end as whole
// years, then whole months, then days. The decomposition is not
// unique in general; this function deterministically maximizes years
// first, then months, then days, so that
// start.AddYears(p.Years).AddMonths(p.Months).AddDays(p.Days) == end.
func PeriodBetween(start, end Date) Period {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()

	totalMonths := int64(ey)*12 + int64(em) - (int64(sy)*12 + int64(sm))
	days := ed - sd
	if totalMonths > 0 && days < 0 {
		totalMonths--
		moved, _ := start.AddMonths(totalMonths)
		days = int(end.EpochDay() - moved.EpochDay())
	} else if totalMonths < 0 && days > 0 {
		totalMonths++
		moved, _ := start.AddMonths(totalMonths)
		days = int(end.EpochDay() - moved.EpochDay())
	}
	return Period{
		Years:  int(totalMonths / 12),
		Months: int(totalMonths % 12),
		Days:   days,
	}
}

// AddTo applies the period to a date: years first, then months, then
// days, with the end-of-month clamping documented on Date.AddMonths.
// The order matters and is part of the contract; it is the order
// under which PeriodBetween round-trips.
func (p Period) AddTo(d Date) (Date, error) {
	d, err := d.AddYears(int64(p.Years))
	if err != nil {
		return Date{}, err
	}
	d, err = d.AddMonths(int64(p.Months))
	if err != nil {
		return Date{}, err
	}
	return d.AddDays(int64(p.Days))
}

// Negated returns the period with every component negated.
func (p Period) Negated() Period {
	return Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
}

// IsZero reports whether all components are zero.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// Normalized returns an equal period with the months component folded
// into years so that it is in (-12, 12). Days are untouched: a month
// has no fixed number of days to fold into.
func (p Period) Normalized() Period {
	total := int64(p.Years)*12 + int64(p.Months)
	return Period{Years: int(total / 12), Months: int(total % 12), Days: p.Days}
}

// String returns an ISO-8601 representation such as "P4Y3M6D", "P-1D"
// or "P0D".
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteString("P")
	if p.Years != 0 {
		fmt.Fprintf(&b, "%dY", p.Years)
	}
	if p.Months != 0 {
		fmt.Fprintf(&b, "%dM", p.Months)
	}
	if p.Days != 0 {
		fmt.Fprintf(&b, "%dD", p.Days)
	}
	return b.String()
}
