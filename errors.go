// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Error kinds. Every error returned by this package wraps exactly one of them,
// so they can be tested with errors.Is.
const (
	// ErrInvalidFormat is a structural failure: wrong delimiters, a
	// non-numeric field, trailing text.
	ErrInvalidFormat errorkit.Error = "invalid format"
	// ErrOutOfBounds is a structurally valid value with a field outside its
	// range, like day 32, hour 25 or offset +15:00.
	ErrOutOfBounds errorkit.Error = "out of bounds"
	// ErrUnknownDirective reports a layout containing text that is neither a
	// directive nor an escaped literal.
	ErrUnknownDirective errorkit.Error = "unknown directive"
	// ErrMissingComponent means a composite value was parsed without one of
	// its parts, like a datetime without a time or without an offset.
	ErrMissingComponent errorkit.Error = "missing component"
)

// Error describes a failure to parse or construct a value.
type Error struct {
	// Kind is one of the Err* constants.
	Kind errorkit.Error
	// Type is the name of the value being built, e.g. "date".
	Type string
	// Value is the input, if the failure happened while parsing.
	Value string
	// Layout and LayoutElem are set when parsing with a directive layout.
	Layout     string
	LayoutElem string
	// Message is a human readable explanation.
	Message string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Value != "" || e.Layout != "" {
		fmt.Fprintf(&b, "parsing %s %q", e.Type, e.Value)
		if e.Layout != "" {
			fmt.Fprintf(&b, " as %q", e.Layout)
		}
	} else {
		fmt.Fprintf(&b, "invalid %s", e.Type)
	}
	b.WriteString(": ")
	b.WriteString(string(e.Kind))
	if e.LayoutElem != "" {
		fmt.Fprintf(&b, " at %q", e.LayoutElem)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Unwrap returns e.Kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func boundsErr(typ, format string, args ...any) *Error {
	return &Error{Kind: ErrOutOfBounds, Type: typ, Message: fmt.Sprintf(format, args...)}
}

func parseErr(kind errorkit.Error, typ, value, msg string) *Error {
	// Clone so the input itself does not escape on the happy path.
	return &Error{Kind: kind, Type: typ, Value: strings.Clone(value), Message: msg}
}

// withValue re-labels a construction error as a failure to parse value.
func withValue(err error, typ, value string) error {
	if e, ok := err.(*Error); ok {
		c := *e
		c.Type = typ
		c.Value = strings.Clone(value)
		return &c
	}
	return err
}

// must panics if err is not nil. The literal constructors are for values known
// to be valid at the call site.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
