// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"strconv"
	"time"
)

// compactNaiveLen is the length of YYYYMMDDTHHMMSS.NNNNNNNNN.
const compactNaiveLen = 8 + 1 + 6 + 1 + 9

// Serialize returns n in the compact form YYYYMMDDTHHMMSS.NNNNNNNNN, which
// always carries nanoseconds and sorts lexically for four digit years.
func (n NaiveDateTime) Serialize() string {
	return string(n.appendCompact(make([]byte, 0, compactNaiveLen)))
}

func (n NaiveDateTime) appendCompact(b []byte) []byte {
	d, t := n.date, n.time
	b = appendInt(b, d.year, 4)
	b = appendInt(b, int(d.month), 2)
	b = appendInt(b, d.day, 2)
	b = append(b, 'T')
	b = appendInt(b, t.hour, 2)
	b = appendInt(b, t.minute, 2)
	b = appendInt(b, t.second, 2)
	b = append(b, '.')
	return appendInt(b, t.nano, 9)
}

// Serialize returns dt in the compact form YYYYMMDDTHHMMSS.NNNNNNNNN followed
// by "Z" for UTC, ±HH for whole hour offsets and ±HH:MM otherwise.
func (dt DateTime) Serialize() string {
	b := dt.naive.appendCompact(make([]byte, 0, compactNaiveLen+6))
	if dt.offset == UTC {
		return string(append(b, 'Z'))
	}
	return string(dt.offset.appendShort(b))
}

// DeserializeNaive parses the output of NaiveDateTime.Serialize. The result
// has nanosecond precision.
func DeserializeNaive(s string) (NaiveDateTime, error) {
	if len(s) != compactNaiveLen {
		return NaiveDateTime{}, parseErr(ErrInvalidFormat, "datetime", s, "expected YYYYMMDDTHHMMSS.NNNNNNNNN")
	}
	return deserializeNaive(s)
}

// Deserialize parses the output of DateTime.Serialize. The result has
// nanosecond precision.
func Deserialize(s string) (DateTime, error) {
	if len(s) <= compactNaiveLen {
		return DateTime{}, parseErr(ErrMissingComponent, "datetime", s, "no offset")
	}
	n, err := deserializeNaive(s[:compactNaiveLen])
	if err != nil {
		return DateTime{}, withValue(err, "datetime", s)
	}
	o, m, err := scanOffset(s[compactNaiveLen:])
	if err != nil {
		return DateTime{}, withValue(err, "datetime", s)
	}
	if compactNaiveLen+m != len(s) {
		return DateTime{}, parseErr(ErrInvalidFormat, "datetime", s, "extra text after offset")
	}
	return DateTime{n, o}, nil
}

func deserializeNaive(s string) (NaiveDateTime, error) {
	if s[8] != 'T' || s[15] != '.' || !isDigits(s[:8]) || !isDigits(s[9:15]) || !isDigits(s[16:]) {
		return NaiveDateTime{}, parseErr(ErrInvalidFormat, "datetime", s, "expected YYYYMMDDTHHMMSS.NNNNNNNNN")
	}
	num := func(v string) int {
		n, _ := strconv.Atoi(v)
		return n
	}
	d, err := NewDate(num(s[:4]), time.Month(num(s[4:6])), num(s[6:8]))
	if err != nil {
		return NaiveDateTime{}, withValue(err, "datetime", s)
	}
	t, err := NewTimeNano(num(s[9:11]), num(s[11:13]), num(s[13:15]), num(s[16:]))
	if err != nil {
		return NaiveDateTime{}, withValue(err, "datetime", s)
	}
	return NaiveDateTime{d, t}, nil
}
