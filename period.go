// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"iter"
	"time"
)

// A Period is a calendar span between two datetimes. Unlike a Duration,
// its day, month and year counts follow the calendar: months have 28 to 31
// days and leap years have 366.
//
// A Period is built either from two naive datetimes or from two DateTimes.
// NewPeriod and NewDateTimePeriod keep start and end as given; the counting
// methods work on the earlier and later endpoint and never return negative
// values. Periods of DateTimes count on their UTC instants, while the
// enumeration and Contains methods use the dates as read locally.
type Period struct {
	start, end       NaiveDateTime
	startOff, endOff Offset
	qualified        bool
}

// NewPeriod returns the period from start to end.
func NewPeriod(start, end NaiveDateTime) Period {
	return Period{start: start, end: end}
}

// NewDateTimePeriod returns the period from start to end.
func NewDateTimePeriod(start, end DateTime) Period {
	return Period{
		start:     start.naive,
		end:       end.naive,
		startOff:  start.offset,
		endOff:    end.offset,
		qualified: true,
	}
}

// AsPeriod returns the period covering all of d and o, from the start of the
// earlier to the end (24:00) of the later date.
func (d Date) AsPeriod(o Date) Period {
	if o.Before(d) {
		d, o = o, d
	}
	return NewPeriod(NaiveDateTime{d, Midnight}, NaiveDateTime{o, EndOfDay})
}

// AsPeriod returns the period between n and o, the earlier one first.
func (n NaiveDateTime) AsPeriod(o NaiveDateTime) Period {
	if o.Before(n) {
		n, o = o, n
	}
	return NewPeriod(n, o)
}

// AsPeriod returns the period between dt and o, the earlier instant first.
func (dt DateTime) AsPeriod(o DateTime) Period {
	if o.Before(dt) {
		dt, o = o, dt
	}
	return NewDateTimePeriod(dt, o)
}

// Start returns the start of p as read locally.
func (p Period) Start() NaiveDateTime { return p.start }

// End returns the end of p as read locally.
func (p Period) End() NaiveDateTime { return p.end }

// StartDateTime returns the start of p and whether p was built from
// DateTimes.
func (p Period) StartDateTime() (DateTime, bool) {
	return DateTime{p.start, p.startOff}, p.qualified
}

// EndDateTime returns the end of p and whether p was built from DateTimes.
func (p Period) EndDateTime() (DateTime, bool) {
	return DateTime{p.end, p.endOff}, p.qualified
}

// instants returns the endpoints the counting methods use, earlier first.
func (p Period) instants() (a, b NaiveDateTime) {
	a, b = p.start, p.end
	if p.qualified {
		a = a.WithOffset(p.startOff).ToUTC().naive
		b = b.WithOffset(p.endOff).ToUTC().naive
	}
	if b.Before(a) {
		a, b = b, a
	}
	return a, b
}

// local returns the endpoints as read locally, earlier first.
func (p Period) local() (a, b NaiveDateTime) {
	a, b = p.start, p.end
	if p.qualified {
		if (DateTime{b, p.endOff}).Before(DateTime{a, p.startOff}) {
			a, b = b, a
		}
	} else if b.Before(a) {
		a, b = b, a
	}
	return a, b
}

// Duration returns the elapsed time of p.
func (p Period) Duration() Duration {
	a, b := p.instants()
	return b.Sub(a)
}

// In returns the elapsed time of p in whole units of u. For calendar days,
// use Days.
func (p Period) In(u Unit) int64 {
	return p.Duration().As(u)
}

// InFractional returns the elapsed time of p in units of u.
func (p Period) InFractional(u Unit) float64 {
	return p.Duration().AsFractional(u)
}

// wholeDay reports the special case of a period starting at 00:00:00 and
// ending at 24:00:00, which counts the end date as a full extra day.
func wholeDay(a, b NaiveDateTime) bool {
	return a.time.Nanoseconds() == 0 && b.time.hour == 24
}

// Days returns the number of calendar days in p. A day only counts once the
// time of day of the start is reached again, and a period from 00:00:00 to
// 24:00:00 counts its last date as a whole day.
func (p Period) Days() int {
	a, b := p.instants()
	n := daysBetween(a.date, b.date)
	switch {
	case a.time.After(b.time):
		n--
	case wholeDay(a, b):
		n++
	}
	return n
}

// daysBetween counts the days from s to e, s <= e, from the month and year
// tables.
func daysBetween(s, e Date) int {
	if s.year == e.year && s.month == e.month {
		return e.day - s.day
	}
	// The rest of the start month and the elapsed part of the end month.
	n := DaysInMonth(s.month, s.year) - s.day + e.day
	if s.year == e.year {
		for m := s.month + 1; m < e.month; m++ {
			n += DaysInMonth(m, s.year)
		}
		return n
	}
	for y := s.year + 1; y < e.year; y++ {
		n += DaysInYear(y)
	}
	for m := s.month + 1; m <= time.December; m++ {
		n += DaysInMonth(m, s.year)
	}
	for m := time.January; m < e.month; m++ {
		n += DaysInMonth(m, e.year)
	}
	return n
}

// DaysFractional is Days plus the fraction of the last, incomplete day.
func (p Period) DaysFractional() float64 {
	a, b := p.instants()
	n := float64(p.Days())
	if wholeDay(a, b) {
		return n
	}
	const day = float64(nsPerDay)
	if a.time.After(b.time) {
		return n + float64(a.time.LeftInDay().Nanoseconds())/day + float64(b.time.Nanoseconds())/day
	}
	return n + float64(b.time.Nanoseconds()-a.time.Nanoseconds())/day
}

// beforeAnniversary reports whether b's day and time of month come before a's,
// meaning the last month of the period is not complete.
func beforeAnniversary(a, b NaiveDateTime) bool {
	return b.date.day < a.date.day || (b.date.day == a.date.day && b.time.Before(a.time))
}

// FullMonths returns the number of complete calendar months in p.
func (p Period) FullMonths() int {
	a, b := p.instants()
	n := calendarMonths(b.date, a.date)
	if beforeAnniversary(a, b) {
		n--
	}
	return n
}

// FullYears returns the number of complete calendar years in p.
func (p Period) FullYears() int {
	a, b := p.instants()
	n := b.date.year - a.date.year
	if b.date.month < a.date.month || (b.date.month == a.date.month && beforeAnniversary(a, b)) {
		n--
	}
	return n
}

// ComprisingDates returns every date from the start date through the end
// date of p, as read locally. The sequence is finite and can be iterated
// more than once.
func (p Period) ComprisingDates() iter.Seq[Date] {
	a, b := p.local()
	first, last := a.date, b.date
	return func(yield func(Date) bool) {
		for d := first; !d.After(last); d = d.AddDays(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// ComprisingMonths returns every calendar month from the month of the start
// through the month of the end of p, as read locally.
func (p Period) ComprisingMonths() iter.Seq[MonthYear] {
	a, b := p.local()
	first, last := a.date.MonthYear(), b.date.MonthYear()
	return func(yield func(MonthYear) bool) {
		for m := first; m.Compare(last) <= 0; m = m.Next() {
			if !yield(m) {
				return
			}
		}
	}
}

// ContainsDate reports whether d lies between the start and end dates of p,
// inclusive.
func (p Period) ContainsDate(d Date) bool {
	a, b := p.local()
	return a.date.BeforeOrEqual(d) && d.BeforeOrEqual(b.date)
}

// ContainsNaive reports whether n lies between the start and end of p as
// read locally, inclusive.
func (p Period) ContainsNaive(n NaiveDateTime) bool {
	a, b := p.local()
	return a.BeforeOrEqual(n) && n.BeforeOrEqual(b)
}

// ContainsDateTime reports whether dt lies within p, inclusive. For periods
// of naive datetimes, the local reading of dt is compared.
func (p Period) ContainsDateTime(dt DateTime) bool {
	if !p.qualified {
		return p.ContainsNaive(dt.naive)
	}
	a, b := p.instants()
	u := dt.ToUTC().naive
	return a.BeforeOrEqual(u) && u.BeforeOrEqual(b)
}

// String returns p as an ISO 8601 interval, start/end.
func (p Period) String() string {
	if p.qualified {
		return DateTime{p.start, p.startOff}.String() + "/" + DateTime{p.end, p.endOff}.String()
	}
	return p.start.String() + "/" + p.end.String()
}
