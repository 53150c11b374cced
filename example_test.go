// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil_test

import (
	"errors"
	"fmt"
	"time"

	"gonih.org/civil"
)

// ExampleNewDate demonstrates some useful patterns when creating dates.
func ExampleNewDate() {
	// Create a fixed date:
	d := civil.MustDate(2023, time.December, 31)
	fmt.Println(d)

	// Dates are not normalized:
	_, err := civil.NewDate(2023, time.December, 40)
	fmt.Println(errors.Is(err, civil.ErrOutOfBounds))

	// Get the Date of a time.Time:
	t := time.Date(2024, 1, 10, 13, 24, 42, 0, time.UTC)
	fmt.Println(civil.DateFromTime(t))

	// Do arithmetic in days:
	fmt.Println(d.AddDays(60), d.AddDays(60).Weekday())

	// Parse one of the common forms:
	d, err = civil.ParseDate("2024.06.21")
	fmt.Println(d, err)
	// Output:
	// 2023-12-31
	// true
	// 2024-01-10
	// 2024-02-29 Thursday
	// 2024-06-21 <nil>
}

// ExampleFullYearsApart shows how to compute the age of something.
func ExampleFullYearsApart() {
	birthday := civil.MustDate(1990, time.July, 15)
	for _, d := range []civil.Date{
		civil.MustDate(2024, time.July, 14),
		civil.MustDate(2024, time.July, 15),
	} {
		fmt.Println(d, civil.FullYearsApart(d, birthday))
	}
	// Output:
	// 2024-07-14 33
	// 2024-07-15 34
}

func ExampleDateTime_Format() {
	dt := civil.MustParseDateTime("2024-06-21T13:42:11.314-04:00")
	fmt.Println(dt.Format("dddd, D MMMM YYYY [at] h:mm A"))
	fmt.Println(dt.Format(civil.RFC1123))
	fmt.Println(dt.ToUTC().Format(civil.ISODateTime))
	fmt.Println(dt.Time().Format("HH:mm:ss.SSS YYYY"))
	// Output:
	// Friday, 21 June 2024 at 1:42 PM
	// Fri, 21 Jun 2024 13:42:11 -0400
	// 2024-06-21T17:42:11-00:00
	// 13:42:11.314 YYYY
}

func ExampleParseDateTimeLayout() {
	dt, err := civil.ParseDateTimeLayout("DD.MM.YYYY HH:mm Z", "21.06.2024 13:42 +02:00")
	fmt.Println(dt, err)

	_, err = civil.ParseDateTimeLayout("YYYY-MM-DDTHH:mm", "2024-06-21T13:42")
	fmt.Println(errors.Is(err, civil.ErrUnknownDirective))
	// Output:
	// 2024-06-21T13:42:00+02:00 <nil>
	// true
}

func ExamplePeriod_Days() {
	p := civil.NewPeriod(
		civil.MustParseNaive("2024-06-13T15:47:00"),
		civil.MustParseNaive("2024-06-21T07:16:12"),
	)
	fmt.Println(p.Days())
	fmt.Println(p.Duration().Format())
	fmt.Printf("%.2f\n", p.DaysFractional())
	// Output:
	// 7
	// 1 week, 0 days, 15 hours, and 29 minutes
	// 7.65
}

func ExampleDuration_Format() {
	fmt.Println(civil.Seconds(20).Format())
	fmt.Println((civil.Hours(1) + civil.Minutes(1) + civil.Milliseconds(1005)).Format())
	fmt.Println(civil.Seconds(5430).FormatIn(civil.Minute, 1))
	// Output:
	// 20.000 seconds
	// 1 hour, 1 minute, and 1.00 seconds
	// 90.5 minutes
}
