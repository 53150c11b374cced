// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"errors"
	"testing"
	"time"
)

func TestStrftime(t *testing.T) {
	dt := MustParseDateTime("2024-06-21T13:42:11-04:00")
	for _, tc := range []struct {
		got, want string
	}{
		{dt.Strftime("%Y-%m-%d %H:%M"), "2024-06-21 13:42"},
		{dt.Strftime("%Y-%m-%dT%H:%M:%S%z"), "2024-06-21T13:42:11-0400"},
		{dt.Naive().Strftime("%H:%M:%S %z"), "13:42:11 +0000"},
		{MustDate(2024, time.June, 21).Strftime("%d/%m/%Y %H:%M"), "21/06/2024 00:00"},
	} {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestParseStrftime(t *testing.T) {
	got, err := ParseStrftime("%d/%m/%Y", "21/06/2024")
	if err != nil {
		t.Fatalf("ParseStrftime = _, %v", err)
	}
	if want := NewDateTime(MustDate(2024, time.June, 21), Midnight.WithPrecision(NanoPrecision), UTC); got != want {
		t.Errorf("ParseStrftime = %#v, want %#v", got, want)
	}

	// Years outside the supported range are rejected.
	for _, v := range []string{"0001-01-01", "0999-12-31"} {
		if dt, err := ParseStrftime("%Y-%m-%d", v); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ParseStrftime(%q) = %v, %v, want %v", v, dt, err, ErrOutOfBounds)
		}
	}

	_, err = ParseStrftime("%Y-%m-%d", "21/06/2024")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("ParseStrftime(mismatch) = _, %v, want %v", err, ErrInvalidFormat)
	}
	var e *Error
	if !errors.As(err, &e) || e.Layout != "%Y-%m-%d" || e.Value != "21/06/2024" {
		t.Errorf("ParseStrftime(mismatch) = %#v", err)
	}
}
