package booking

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates. All dates are plain
// calendar days with no time-of-day or timezone semantics.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrMalformedDate    = errors.New("malformed date")
)

// DateRange is an inclusive range of calendar days. Both endpoints are
// normalized to midnight UTC so that equality and ordering are exact.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s := truncateToDay(start)
	e := truncateToDay(end)
	if e.Before(s) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.ParseInLocation(DateLayout, start, time.UTC)
	if err != nil {
		return DateRange{}, ErrMalformedDate
	}
	e, err := time.ParseInLocation(DateLayout, end, time.UTC)
	if err != nil {
		return DateRange{}, ErrMalformedDate
	}
	return NewDateRange(s, e)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// NumDays counts calendar days in the range, both endpoints included.
func (r DateRange) NumDays() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

// Days returns every day in the range in ascending order.
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0, r.NumDays())
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Overlaps uses the inclusive interval test: ranges sharing a single
// boundary day conflict.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

func (r DateRange) Contains(day time.Time) bool {
	d := truncateToDay(day)
	return !d.Before(r.start) && !d.After(r.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s]", r.start.Format(DateLayout), r.end.Format(DateLayout))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}
