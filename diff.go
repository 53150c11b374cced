// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

// The calendar counters below are not odd functions of their arguments in
// general: the day-of-month adjustment depends on which date is later. Each
// is computed on the ordered pair and only the result is negated.

// FullYearsApart returns the number of whole years from from to d, negative
// if from is later than d. 2024-03-01 is one full year after 2023-03-01 but
// not after 2023-03-02.
func FullYearsApart(d, from Date) int {
	if d.AfterOrEqual(from) {
		return fullYears(d, from)
	}
	return -fullYears(from, d)
}

func fullYears(later, earlier Date) int {
	n := later.year - earlier.year
	if later.month < earlier.month || (later.month == earlier.month && later.day < earlier.day) {
		n--
	}
	return n
}

// FullMonthsApart returns the number of whole months from from to d,
// negative if from is later than d. A month is whole once the day of the
// month is reached again: 2024-02-29 is zero full months after 2024-01-31.
func FullMonthsApart(d, from Date) int {
	if d.AfterOrEqual(from) {
		return fullMonths(d, from)
	}
	return -fullMonths(from, d)
}

func fullMonths(later, earlier Date) int {
	n := calendarMonths(later, earlier)
	if later.day < earlier.day {
		n--
	}
	return n
}

// CalendarMonthsApart returns the number of month boundaries crossed from
// from to d, negative if from is later. 2024-02-01 is one calendar month
// after 2024-01-31.
func CalendarMonthsApart(d, from Date) int {
	if d.AfterOrEqual(from) {
		return calendarMonths(d, from)
	}
	return -calendarMonths(from, d)
}

func calendarMonths(later, earlier Date) int {
	return (later.year-earlier.year)*12 + int(later.month) - int(earlier.month)
}

// CalendarYearsApart returns the number of year boundaries crossed from from
// to d, negative if from is later.
func CalendarYearsApart(d, from Date) int {
	return d.year - from.year
}
