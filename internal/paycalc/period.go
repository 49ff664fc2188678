package paycalc

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidPeriod = errors.New("start date must be before or equal end date")

// Period is an inclusive [Start, End] calendar interval with a YYYY-MM label.
// The label is derived from Start and is not validated against the interval.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// NewPeriod parses the inclusive bounds from ISO 8601 date strings.
func NewPeriod(startDate, endDate string) (Period, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return Period{}, errors.New("invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return Period{}, errors.New("invalid end date, expected YYYY-MM-DD")
	}
	if start.After(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{
		Start: start,
		End:   end,
		Label: start.Format("2006-01"),
	}, nil
}

// Contains reports whether the record's date falls inside the period.
// Both bounds are inclusive. A date that does not parse is out of period.
func (p Period) Contains(date string) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return !d.Before(p.Start) && !d.After(p.End)
}

// InPeriod filters records to those dated inside the period. The base-salary
// and overtime calculators both go through here so a day is either fully in
// or fully out of a payroll run.
func InPeriod(records []AttendanceRecord, p Period) []AttendanceRecord {
	out := make([]AttendanceRecord, 0, len(records))
	for _, r := range records {
		if p.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}
