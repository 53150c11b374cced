// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Strftime formats dt according to a C strftime(3) format, such as
// "%Y-%m-%dT%H:%M:%S%z". It is meant for interoperating with systems that
// speak strftime; the directive layouts of Format are native to this
// package. 24:00:00 and leap seconds are normalized as in StdTime.
func (dt DateTime) Strftime(format string) string {
	return strftime.Format(format, dt.StdTime())
}

// Strftime formats n according to a C strftime(3) format. Offset
// conversions render as UTC.
func (n NaiveDateTime) Strftime(format string) string {
	return n.WithOffset(UTC).Strftime(format)
}

// Strftime formats d according to a C strftime(3) format, at midnight UTC.
func (d Date) Strftime(format string) string {
	return strftime.Format(format, d.Time(0, 0, 0, 0, time.UTC))
}

// ParseStrftime parses value according to a C strftime(3) format. Values
// without an offset are taken to be in UTC. The result has nanosecond
// precision.
func ParseStrftime(format, value string) (DateTime, error) {
	t, err := strftime.Parse(format, value)
	if err != nil {
		e := parseErr(ErrInvalidFormat, "datetime", value, err.Error())
		e.Layout = strings.Clone(format)
		return DateTime{}, e
	}
	dt, err := DateTimeFromTime(t)
	if err != nil {
		return DateTime{}, withValue(err, "datetime", value)
	}
	return dt, nil
}
