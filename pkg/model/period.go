package model

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/goerr/v2"
)

// Period is an inclusive date range over the entry store.
type Period struct {
	Start civil.Date
	End   civil.Date
}

// Contains reports whether d falls within the period.
func (p Period) Contains(d civil.Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// MonthlyPeriod resolves a month selection into a calendar-month period.
// month == 0 selects the previous full calendar month relative to ref,
// rolling into the previous year when ref is in January. Values 1 through 12
// select that month of ref's year. Anything else is ErrInvalidMonth.
func MonthlyPeriod(ref civil.Date, month int) (Period, error) {
	year := ref.Year
	target := ref.Month

	switch {
	case month == 0:
		firstOfMonth := civil.Date{Year: ref.Year, Month: ref.Month, Day: 1}
		lastOfPrev := firstOfMonth.AddDays(-1)
		year = lastOfPrev.Year
		target = lastOfPrev.Month
	case month < 1 || month > 12:
		return Period{}, goerr.Wrap(ErrInvalidMonth, "month must be between 1 and 12", goerr.V("month", month))
	default:
		target = time.Month(month)
	}

	return Period{
		Start: civil.Date{Year: year, Month: target, Day: 1},
		End:   civil.Date{Year: year, Month: target, Day: daysIn(year, target)},
	}, nil
}

func daysIn(year int, month time.Month) int {
	// day 0 of the following month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CaptureDate returns the entry date for a capture command: the override
// when given, otherwise the date of now.
func CaptureDate(override string, now time.Time) (civil.Date, error) {
	if override == "" {
		return civil.DateOf(now), nil
	}

	d, err := civil.ParseDate(override)
	if err != nil {
		return civil.Date{}, goerr.Wrap(err, "invalid date, expected YYYY-MM-DD", goerr.V("date", override))
	}
	return d, nil
}

// WeekOf returns the Monday-to-Sunday week containing d along with its ISO
// week number.
func WeekOf(d civil.Date) (start, end civil.Date, isoYear, isoWeek int) {
	t := d.In(time.UTC)
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	start = d.AddDays(-offset)
	end = start.AddDays(6)
	isoYear, isoWeek = t.ISOWeek()
	return start, end, isoYear, isoWeek
}
