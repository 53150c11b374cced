// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"time"
)

var tcs = []struct {
	year  int
	month time.Month
	day   int
	want  int64 // days since 1970-01-01
}{
	{1970, 1, 1, 0},
	{1970, 1, 2, 1},
	{1969, 12, 31, -1},
	{1972, 2, 29, 789},
	{1972, 3, 1, 790},
	{2000, 1, 1, 10957},
	{2000, 2, 29, 11016},
	{2000, 3, 1, 11017},
	{1900, 2, 28, -25509},
	{1900, 3, 1, -25508},
	{2023, 7, 14, 19552},
	{2024, 6, 21, 19895},
	{1000, 1, 1, -354285},
	{9999, 12, 31, 2932896},
}

func TestNewDate(t *testing.T) {
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			d, err := NewDate(tc.year, tc.month, tc.day)
			if err != nil {
				t.Fatalf("NewDate(%d, %d, %d) = _, %v, want <nil>", tc.year, tc.month, tc.day, err)
			}
			if got := d.UnixDays(); got != tc.want {
				t.Errorf("NewDate(%d, %d, %d).UnixDays() = %d, want %d", tc.year, tc.month, tc.day, got, tc.want)
			}
			if got := DateFromUnixDays(tc.want); got != d {
				t.Errorf("DateFromUnixDays(%d) = %v, want %v", tc.want, got, d)
			}
			check(t, tc.year, int(tc.month), tc.day)
		})
	}
}

func TestNewDateBounds(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month time.Month
		day   int
	}{
		{999, 12, 31},
		{10000, 1, 1},
		{2024, 0, 1},
		{2024, 13, 1},
		{2024, 1, 0},
		{2024, 1, 32},
		{2023, 2, 29},
		{1900, 2, 29},
		{2024, 4, 31},
	} {
		_, err := NewDate(tc.year, tc.month, tc.day)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("NewDate(%d, %d, %d) = _, %v, want %v", tc.year, tc.month, tc.day, err, ErrOutOfBounds)
		}
	}
}

func TestUnixDaysInverse(t *testing.T) {
	for n := int64(-1_000_000); n <= 1_000_000; n++ {
		d := DateFromUnixDays(n)
		if got := d.UnixDays(); got != n {
			t.Fatalf("DateFromUnixDays(%d).UnixDays() = %d (%v)", n, got, d)
		}
	}
}

func TestAddSubtractDays(t *testing.T) {
	d := MustDate(2024, time.February, 28)
	for _, tc := range []struct {
		n    int
		want Date
	}{
		{0, MustDate(2024, time.February, 28)},
		{1, MustDate(2024, time.February, 29)},
		{2, MustDate(2024, time.March, 1)},
		{-28, MustDate(2024, time.January, 31)},
		{-59, MustDate(2023, time.December, 31)},
		{307, MustDate(2024, time.December, 31)},
		{308, MustDate(2025, time.January, 1)},
		{366, MustDate(2025, time.February, 28)},
		{1_000_000, DateFromUnixDays(d.UnixDays() + 1_000_000)},
	} {
		if got := d.AddDays(tc.n); got != tc.want {
			t.Errorf("%v.AddDays(%d) = %v, want %v", d, tc.n, got, tc.want)
		}
		if got := tc.want.SubtractDays(tc.n); got != d {
			t.Errorf("%v.SubtractDays(%d) = %v, want %v", tc.want, tc.n, got, d)
		}
		if got := tc.want.DaysSince(d); got != tc.n {
			t.Errorf("%v.DaysSince(%v) = %d, want %d", tc.want, d, got, tc.n)
		}
	}
}

func FuzzAddDays(f *testing.F) {
	f.Add(2024, 6, 21, 0)
	f.Add(2024, 2, 29, 365)
	f.Add(1999, 12, 31, 1)
	f.Add(1000, 1, 1, 3_000_000)
	f.Fuzz(func(t *testing.T, year, month, day, n int) {
		d, err := NewDate(year, time.Month(month), day)
		if err != nil || n < 0 || n > 3_000_000 {
			return
		}
		got := d.AddDays(n)
		if want := DateFromUnixDays(d.UnixDays() + int64(n)); got != want {
			t.Fatalf("%v.AddDays(%d) = %v, want %v", d, n, got, want)
		}
		if back := got.SubtractDays(n); back != d {
			t.Fatalf("%v.AddDays(%d).SubtractDays(%d) = %v", d, n, n, back)
		}
	})
}

func TestWeekday(t *testing.T) {
	if got := MustDate(2024, time.June, 21).Weekday(); got != time.Friday {
		t.Errorf("2024-06-21 is a %v, want Friday", got)
	}
	// Every run of 7 days has every weekday once, and the formula agrees with
	// package time in the range it is meant for.
	start := MustDate(1753, time.January, 1)
	end := MustDate(2299, time.December, 31)
	var seen [7]int
	for d := start; !d.After(end); d = d.AddDays(1) {
		got := d.Weekday()
		seen[got]++
		if want := d.Time(12, 0, 0, 0, time.UTC).Weekday(); got != want {
			t.Fatalf("%v.Weekday() = %v, want %v", d, got, want)
		}
		if next := d.AddDays(1).Weekday(); next != (got+1)%7 {
			t.Fatalf("%v.Weekday() = %v, but the next day is %v", d, got, next)
		}
	}
	for wd, n := range seen {
		if n < 28_000 {
			t.Errorf("%v only seen %d times", time.Weekday(wd), n)
		}
	}
}

func TestLeapYear(t *testing.T) {
	for year, want := range map[int]bool{2024: true, 1900: false, 2000: true, 2025: false, 2100: false, 2400: true} {
		if got := IsLeapYear(year); got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", year, got, want)
		}
		days := 365
		if want {
			days = 366
		}
		if got := DaysInYear(year); got != days {
			t.Errorf("DaysInYear(%d) = %d, want %d", year, got, days)
		}
	}
}

func TestYearDay(t *testing.T) {
	for _, tc := range []struct {
		d    Date
		want int
	}{
		{MustDate(2023, time.January, 1), 1},
		{MustDate(2023, time.March, 1), 60},
		{MustDate(2024, time.March, 1), 61},
		{MustDate(2023, time.December, 31), 365},
		{MustDate(2024, time.December, 31), 366},
	} {
		if got := tc.d.YearDay(); got != tc.want {
			t.Errorf("%v.YearDay() = %d, want %d", tc.d, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := MustDate(2024, time.June, 21)
	for _, tc := range []struct {
		b    Date
		want int
	}{
		{MustDate(2024, time.June, 21), 0},
		{MustDate(2024, time.June, 22), -1},
		{MustDate(2024, time.July, 1), -1},
		{MustDate(2025, time.January, 1), -1},
		{MustDate(2024, time.June, 20), 1},
		{MustDate(2024, time.May, 31), 1},
		{MustDate(2023, time.December, 31), 1},
	} {
		if got := a.Compare(tc.b); got != tc.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", a, tc.b, got, tc.want)
		}
		if got := tc.b.Compare(a); got != -tc.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tc.b, a, got, -tc.want)
		}
		if a.Before(tc.b) != (tc.want < 0) || a.After(tc.b) != (tc.want > 0) || a.Equal(tc.b) != (tc.want == 0) {
			t.Errorf("%v and %v: Before/After/Equal disagree with Compare", a, tc.b)
		}
		if a.BeforeOrEqual(tc.b) != (tc.want <= 0) || a.AfterOrEqual(tc.b) != (tc.want >= 0) {
			t.Errorf("%v and %v: BeforeOrEqual/AfterOrEqual disagree with Compare", a, tc.b)
		}
	}
}

func TestParseDate(t *testing.T) {
	want := MustDate(2024, time.June, 21)
	for _, s := range []string{
		"2024-06-21",
		"2024/06/21",
		"2024.06.21",
		"2024_06_21",
		"2024 06 21",
		"20240621",
		"2024-6-21",
		"2024:06:21",
	} {
		got, err := ParseDate(s)
		if err != nil || got != want {
			t.Errorf("ParseDate(%q) = %v, %v, want %v, <nil>", s, got, err, want)
		}
	}
}

func TestParseDateErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		kind error
	}{
		{"", ErrInvalidFormat},
		{"2024-06", ErrInvalidFormat},
		{"24-06-21", ErrInvalidFormat},
		{"2024-06-2x", ErrInvalidFormat},
		{"2024-006-21", ErrInvalidFormat},
		// The first delimiter splitting into three fields decides, even if a
		// later one would yield a valid date.
		{"2024-06/21-01", ErrInvalidFormat},
		{"2024-13-01", ErrOutOfBounds},
		{"2023-02-29", ErrOutOfBounds},
		{"20240230", ErrOutOfBounds},
		{"0999-12-31", ErrOutOfBounds},
	} {
		_, err := ParseDate(tc.in)
		if !errors.Is(err, tc.kind) {
			t.Errorf("ParseDate(%q) = _, %v, want %v", tc.in, err, tc.kind)
		}
		var e *Error
		if errors.As(err, &e) && e.Value != tc.in {
			t.Errorf("ParseDate(%q): error value is %q", tc.in, e.Value)
		}
	}
}

func TestMustDatePanics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("MustDate(2023, 2, 29) panicked with %v, want %v", err, ErrOutOfBounds)
		}
	}()
	MustDate(2023, time.February, 29)
}

func TestMonthYear(t *testing.T) {
	m := MonthYear{time.December, 2023}
	if got, want := m.Next(), (MonthYear{time.January, 2024}); got != want {
		t.Errorf("%v.Next() = %v, want %v", m, got, want)
	}
	if got := m.Next().Prev(); got != m {
		t.Errorf("%v.Next().Prev() = %v", m, got)
	}
	feb := MonthYear{time.February, 2024}
	if feb.Days() != 29 || feb.LastDate() != MustDate(2024, time.February, 29) || feb.FirstDate() != MustDate(2024, time.February, 1) {
		t.Errorf("%v: Days = %d, FirstDate = %v, LastDate = %v", feb, feb.Days(), feb.FirstDate(), feb.LastDate())
	}
	if m.Compare(feb) != -1 || feb.Compare(m) != 1 || m.Compare(m) != 0 {
		t.Errorf("%v.Compare(%v) = %d", m, feb, m.Compare(feb))
	}
	if got := feb.String(); got != "2024-02" {
		t.Errorf("%v.String() = %q", feb, got)
	}
	if got := MustDate(2024, time.June, 21).MonthYear(); got != (MonthYear{time.June, 2024}) {
		t.Errorf("MonthYear() = %v", got)
	}
}

func TestMonthFromName(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want time.Month
	}{
		{"June", time.June},
		{"jun", time.June},
		{"SEPTEMBER", time.September},
		{"Sep", time.September},
	} {
		got, err := MonthFromName(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("MonthFromName(%q) = %v, %v, want %v, <nil>", tc.in, got, err, tc.want)
		}
	}
	if _, err := MonthFromName("Juneteenth"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("MonthFromName(%q) = _, %v, want %v", "Juneteenth", err, ErrInvalidFormat)
	}
}

func addAll(f *testing.F) {
	for _, tc := range tcs {
		f.Add(tc.year, int(tc.month), tc.day)
	}
}

func FuzzNewDate(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		if _, err := NewDate(year, time.Month(month), day); err != nil {
			return
		}
		check(t, year, month, day)
	})
}

func FuzzMarshalText(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		want, err := NewDate(year, time.Month(month), day)
		if err != nil {
			return
		}
		b, _ := want.MarshalText()
		var got Date
		if err := got.UnmarshalText(b); err != nil {
			t.Errorf("UnmarshalText(%q) = _, %v, want <nil>", string(b), err)
		}
		if got != want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", string(b), got, want)
		}
	})
}

func FuzzUnmarshalText(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		b, err := DateFromUnixDays(int64(rnd.Intn(1e6))).MarshalText()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalText does not panic and that
		// successfully parsed dates are valid.
		if d.UnmarshalText(b) == nil {
			if _, err := NewDate(d.Date()); err != nil {
				t.Errorf("UnmarshalText(%q) = %#v, which is invalid: %v", b, d, err)
			}
		}
	})
}

func FuzzMarshalBinary(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		want, err := NewDate(year, time.Month(month), day)
		if err != nil {
			return
		}
		b, _ := want.MarshalBinary()
		var got Date
		if err := got.UnmarshalBinary(b); err != nil {
			t.Errorf("UnmarshalBinary(%q) = _, %v, want <nil>", string(b), err)
		}
		if got != want {
			t.Errorf("UnmarshalBinary(%q) = %v, want %v", string(b), got, want)
		}
	})
}

func FuzzUnmarshalBinary(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		b, err := DateFromUnixDays(int64(rnd.Intn(1e6))).MarshalBinary()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalBinary does not panic.
		d.UnmarshalBinary(b)
	})
}

// check that the given year, month and day values produce the same date calculations as time.Time.
func check(t *testing.T, year, month, day int) {
	t.Helper()
	d := MustDate(year, time.Month(month), day)
	want := time.Date(year, time.Month(month), day, 6, 0, 0, 0, time.UTC)
	got := time.Date(1970, 1, 1, 6, 0, 0, 0, time.UTC).AddDate(0, 0, int(d.UnixDays()))
	if got != want {
		t.Errorf("MustDate(%d, %d, %d): %v != %v", year, month, day, got.Format(time.DateOnly), want.Format(time.DateOnly))
	}
	if got := d.YearDay(); got != want.YearDay() {
		t.Errorf("MustDate(%d, %d, %d).YearDay() = %d, want %d", year, month, day, got, want.YearDay())
	}
	if got := d.Weekday(); year >= 1753 && year <= 2299 && got != want.Weekday() {
		t.Errorf("MustDate(%d, %d, %d).Weekday() = %v, want %v", year, month, day, got, want.Weekday())
	}
	if got := DateFromTime(want); got != d {
		t.Errorf("DateFromTime(%v) = %v, want %v", want, got, d)
	}
	if got := d.AddDays(1); got != DateFromTime(want.AddDate(0, 0, 1)) {
		t.Errorf("MustDate(%d, %d, %d).AddDays(1) = %v, want %v", year, month, day, got, want.AddDate(0, 0, 1).Format(time.DateOnly))
	}
}
