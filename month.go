// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"fmt"
	"strings"
	"time"
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

var longDayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var shortDayNames = []string{
	"Sun",
	"Mon",
	"Tue",
	"Wed",
	"Thu",
	"Fri",
	"Sat",
}

var minDayNames = []string{
	"Su",
	"Mo",
	"Tu",
	"We",
	"Th",
	"Fr",
	"Sa",
}

var shortMonthNames = []string{
	"Jan",
	"Feb",
	"Mar",
	"Apr",
	"May",
	"Jun",
	"Jul",
	"Aug",
	"Sep",
	"Oct",
	"Nov",
	"Dec",
}

var longMonthNames = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// IsLeapYear reports whether year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days of m in the given year. It returns 0
// if m is not a valid month.
func DaysInMonth(m time.Month, year int) int {
	if m < time.January || m > time.December {
		return 0
	}
	if m == time.February && IsLeapYear(year) {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// MonthFromName returns the month with the given English name, either in
// full ("June") or abbreviated ("Jun"). Matching ignores case.
func MonthFromName(name string) (time.Month, error) {
	for i := range longMonthNames {
		if strings.EqualFold(name, longMonthNames[i]) || strings.EqualFold(name, shortMonthNames[i]) {
			return time.Month(i + 1), nil
		}
	}
	return 0, parseErr(ErrInvalidFormat, "month", name, "unknown month name")
}

// MonthYear identifies a calendar month. MonthYears can be compared with ==.
type MonthYear struct {
	Month time.Month
	Year  int
}

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or
// after o.
func (m MonthYear) Compare(o MonthYear) int {
	switch {
	case m.Year < o.Year:
		return -1
	case m.Year > o.Year:
		return 1
	case m.Month < o.Month:
		return -1
	case m.Month > o.Month:
		return 1
	}
	return 0
}

// Next returns the month after m.
func (m MonthYear) Next() MonthYear {
	if m.Month == time.December {
		return MonthYear{time.January, m.Year + 1}
	}
	return MonthYear{m.Month + 1, m.Year}
}

// Prev returns the month before m.
func (m MonthYear) Prev() MonthYear {
	if m.Month == time.January {
		return MonthYear{time.December, m.Year - 1}
	}
	return MonthYear{m.Month - 1, m.Year}
}

// Days returns the length of m in days.
func (m MonthYear) Days() int {
	return DaysInMonth(m.Month, m.Year)
}

// FirstDate returns the first day of m.
func (m MonthYear) FirstDate() Date {
	return Date{m.Year, m.Month, 1}
}

// LastDate returns the last day of m.
func (m MonthYear) LastDate() Date {
	return Date{m.Year, m.Month, m.Days()}
}

// String formats m as YYYY-MM.
func (m MonthYear) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
