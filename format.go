// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civil

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/testcase/clock"

	"gonih.org/civil/internal/cache"
)

// These are predefined layouts for use with the Format methods and the
// Parse*Layout functions.
//
// A layout is a sequence of directives and literal text. The directives are
//
//	Year:            "YYYY" (2024) "YY" (24)
//	Month:           "M" (6) "MM" (06) "MMM" (Jun) "MMMM" (June)
//	Day of month:    "D" (1) "DD" (01)
//	Day of week:     "d" (0-6, Sunday is 0) "dd" (Fr) "ddd" (Fri) "dddd" (Friday)
//	Hour:            "H" (0-23) "HH" (00-23) "h" (1-12) "hh" (01-12)
//	Minute:          "m" "mm"
//	Second:          "s" "ss"
//	Fraction:        "SSS" (milliseconds) "SSSS" (microseconds) "SSSSS" (nanoseconds)
//	Offset:          "Z" (-04:00) "ZZ" (-0400) "z" (-04, or -04:30)
//	Meridiem:        "A" (AM PM) "a" (am pm)
//
// Text in square brackets is copied literally, so "[T]" stands for a
// literal T. Any other letter is an unknown directive: parsing rejects the
// layout with ErrUnknownDirective, while formatting copies it as is.
// Characters other than letters are literals. In literals, runs of spaces
// match runs of spaces of any length.
//
// When formatting a value that lacks a component, such as a time with "YYYY"
// or a naive datetime with "Z", the directive is copied literally.
const (
	ISODate     = "YYYY-MM-DD"
	ISOTime     = "HH:mm:ss"
	ISODateTime = "YYYY-MM-DD[T]HH:mm:ssZ"
	RFC1123     = "ddd, DD MMM YYYY HH:mm:ss ZZ"
	Kitchen     = "h:mm A"
	Stamp       = "MMM D HH:mm:ss"
)

// inst is a single component of a layout string, either a literal string, or a
// formatting operator.
type inst struct {
	op  fmtOp
	lit string
}

// String implements fmt.Stringer, for debugging
func (i inst) String() string {
	if i.op == opLiteral || i.op == opUnknown {
		return i.lit
	}
	return i.op.String()
}

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota
	opUnknown

	// Sorted by parsing preference, do not re-order! Every directive must come
	// before the directives that are a prefix of it.
	opLongYear
	opYear
	opLongMonth
	opMonth
	opZeroMonth
	opNumMonth
	opZeroDay
	opDay
	opLongWeekDay
	opWeekDay
	opMinWeekDay
	opNumWeekDay
	opZeroHour
	opHour
	opZeroHour12
	opHour12
	opZeroMinute
	opMinute
	opZeroSecond
	opSecond
	opNano
	opMicro
	opMilli
	opCompactOffset
	opOffset
	opShortOffset
	opUpperMeridiem
	opLowerMeridiem

	opInvalid
)

var opNames = [...]string{
	opLiteral:       "<literal>",
	opUnknown:       "<unknown>",
	opLongYear:      "YYYY",
	opYear:          "YY",
	opLongMonth:     "MMMM",
	opMonth:         "MMM",
	opZeroMonth:     "MM",
	opNumMonth:      "M",
	opZeroDay:       "DD",
	opDay:           "D",
	opLongWeekDay:   "dddd",
	opWeekDay:       "ddd",
	opMinWeekDay:    "dd",
	opNumWeekDay:    "d",
	opZeroHour:      "HH",
	opHour:          "H",
	opZeroHour12:    "hh",
	opHour12:        "h",
	opZeroMinute:    "mm",
	opMinute:        "m",
	opZeroSecond:    "ss",
	opSecond:        "s",
	opNano:          "SSSSS",
	opMicro:         "SSSS",
	opMilli:         "SSS",
	opCompactOffset: "ZZ",
	opOffset:        "Z",
	opShortOffset:   "z",
	opUpperMeridiem: "A",
	opLowerMeridiem: "a",
}

// String implements fmt.Stringer. Except for opLiteral and opUnknown, it
// returns the layout directive of the operator.
func (op fmtOp) String() string {
	if op < 0 || op >= opInvalid {
		panic("invalid fmtOp")
	}
	return opNames[op]
}

// component is the part of a value an operator renders.
type component uint8

const (
	compNone component = iota
	compDate
	compTime
	compOffset
)

func (op fmtOp) component() component {
	switch {
	case op >= opLongYear && op <= opNumWeekDay:
		return compDate
	case op >= opZeroHour && op <= opMilli, op == opUpperMeridiem, op == opLowerMeridiem:
		return compTime
	case op >= opCompactOffset && op <= opShortOffset:
		return compOffset
	}
	return compNone
}

// program is a compiled layout.
type program []inst

// Size implements cache.Sizer.
func (p program) Size() int64 { return int64(len(p)) }

// memoize compiled layout strings.
var memo cache.Cache[string, program]

// LayoutCacheStats reports the activity of the cache of compiled layouts.
func LayoutCacheStats() cache.Stats {
	return memo.Stats()
}

// compile parses layout into a set of instructions to parse or format
// according to it. Adjacent literals are merged.
func compile(layout string) program {
	var prog program
	lit := func(s string) {
		if s == "" {
			return
		}
		if n := len(prog); n > 0 && prog[n-1].op == opLiteral {
			prog[n-1].lit += s
			return
		}
		prog = append(prog, inst{lit: s})
	}
	for len(layout) > 0 {
		prefix, i, suffix := nextOp(layout)
		lit(prefix)
		if i.op == opLiteral {
			lit(i.lit)
		} else {
			prog = append(prog, i)
		}
		layout = suffix
	}
	return prog
}

// nextOp decomposes layout into the next operator, a literal prefix and the
// rest of the layout. A bracket escape is returned as a literal operator.
func nextOp(layout string) (prefix string, i inst, suffix string) {
	for j := 0; j < len(layout); j++ {
		c := layout[j]
		if c == '[' {
			if k := strings.IndexByte(layout[j+1:], ']'); k >= 0 {
				return layout[:j], inst{lit: layout[j+1 : j+1+k]}, layout[j+2+k:]
			}
			continue
		}
		if !isLetter(c) {
			continue
		}
		for op := opLongYear; op < opInvalid; op++ {
			if s, ok := strings.CutPrefix(layout[j:], op.String()); ok {
				return layout[:j], inst{op: op}, s
			}
		}
		return layout[:j], inst{op: opUnknown, lit: layout[j : j+1]}, layout[j+1:]
	}
	return layout, inst{}, ""
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// fields is the value being formatted. Components of the value that are not
// set are rendered as their directive.
type fields struct {
	date   Date
	time   Time
	offset Offset
	has    [compOffset + 1]bool
}

// Format returns d formatted according to layout. See ISODate for the layout
// directives.
func (d Date) Format(layout string) string {
	return string(d.AppendFormat(fmtBuf(layout), layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (d Date) AppendFormat(b []byte, layout string) []byte {
	f := fields{date: d}
	f.has[compDate] = true
	return f.append(b, layout)
}

// Format returns t formatted according to layout. See ISODate for the layout
// directives.
func (t Time) Format(layout string) string {
	return string(t.AppendFormat(fmtBuf(layout), layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (t Time) AppendFormat(b []byte, layout string) []byte {
	f := fields{time: t}
	f.has[compTime] = true
	return f.append(b, layout)
}

// Format returns n formatted according to layout. See ISODate for the layout
// directives.
func (n NaiveDateTime) Format(layout string) string {
	return string(n.AppendFormat(fmtBuf(layout), layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (n NaiveDateTime) AppendFormat(b []byte, layout string) []byte {
	f := fields{date: n.date, time: n.time}
	f.has[compDate], f.has[compTime] = true, true
	return f.append(b, layout)
}

// Format returns dt formatted according to layout. See ISODate for the layout
// directives.
func (dt DateTime) Format(layout string) string {
	return string(dt.AppendFormat(fmtBuf(layout), layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (dt DateTime) AppendFormat(b []byte, layout string) []byte {
	f := fields{date: dt.naive.date, time: dt.naive.time, offset: dt.offset}
	f.has[compDate], f.has[compTime], f.has[compOffset] = true, true, true
	return f.append(b, layout)
}

func fmtBuf(layout string) []byte {
	return make([]byte, 0, len(layout)+16)
}

func (f *fields) append(b []byte, layout string) []byte {
	prog := memo.Get(layout, compile)

	d, t, o := f.date, f.time, f.offset
	for _, i := range prog {
		if c := i.op.component(); c != compNone && !f.has[c] {
			b = append(b, i.op.String()...)
			continue
		}
		switch i.op {
		case opLiteral, opUnknown:
			b = append(b, i.lit...)
		case opLongYear:
			b = appendInt(b, d.year, 4)
		case opYear:
			b = appendInt(b, d.year%100, 2)
		case opLongMonth:
			b = append(b, longMonthNames[d.month-1]...)
		case opMonth:
			b = append(b, shortMonthNames[d.month-1]...)
		case opZeroMonth:
			b = appendInt(b, int(d.month), 2)
		case opNumMonth:
			b = strconv.AppendInt(b, int64(d.month), 10)
		case opZeroDay:
			b = appendInt(b, d.day, 2)
		case opDay:
			b = strconv.AppendInt(b, int64(d.day), 10)
		case opLongWeekDay:
			b = append(b, longDayNames[d.Weekday()]...)
		case opWeekDay:
			b = append(b, shortDayNames[d.Weekday()]...)
		case opMinWeekDay:
			b = append(b, minDayNames[d.Weekday()]...)
		case opNumWeekDay:
			b = strconv.AppendInt(b, int64(d.Weekday()), 10)
		case opZeroHour:
			b = appendInt(b, t.hour, 2)
		case opHour:
			b = strconv.AppendInt(b, int64(t.hour), 10)
		case opZeroHour12:
			b = appendInt(b, hour12(t.hour), 2)
		case opHour12:
			b = strconv.AppendInt(b, int64(hour12(t.hour)), 10)
		case opZeroMinute:
			b = appendInt(b, t.minute, 2)
		case opMinute:
			b = strconv.AppendInt(b, int64(t.minute), 10)
		case opZeroSecond:
			b = appendInt(b, t.second, 2)
		case opSecond:
			b = strconv.AppendInt(b, int64(t.second), 10)
		case opNano:
			b = appendInt(b, t.nano, 9)
		case opMicro:
			b = appendInt(b, t.nano/1e3, 6)
		case opMilli:
			b = appendInt(b, t.nano/1e6, 3)
		case opCompactOffset:
			b = o.appendISO(b, false)
		case opOffset:
			b = o.appendISO(b, true)
		case opShortOffset:
			b = o.appendShort(b)
		case opUpperMeridiem:
			b = append(b, meridiem(t.hour)...)
		case opLowerMeridiem:
			b = append(b, strings.ToLower(meridiem(t.hour))...)
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
	}
	return b
}

// hour12 maps 0-24 to 1-12.
func hour12(h int) int {
	if h %= 12; h == 0 {
		return 12
	}
	return h
}

var meridiems = []string{"AM", "PM"}

func meridiem(h int) string {
	if h%24 < 12 {
		return meridiems[0]
	}
	return meridiems[1]
}

// PartKind is the kind of a DatePart.
type PartKind uint8

const (
	PartLiteral PartKind = iota
	PartYear
	PartMonth
	PartDay
	PartWeekday
	PartHour
	PartTwelveHour
	PartMinute
	PartSecond
	PartMillisecond
	PartMicrosecond
	PartNanosecond
	PartOffset
	PartAM
	PartPM
)

var partNames = [...]string{
	PartLiteral:     "literal",
	PartYear:        "year",
	PartMonth:       "month",
	PartDay:         "day",
	PartWeekday:     "weekday",
	PartHour:        "hour",
	PartTwelveHour:  "twelve-hour",
	PartMinute:      "minute",
	PartSecond:      "second",
	PartMillisecond: "millisecond",
	PartMicrosecond: "microsecond",
	PartNanosecond:  "nanosecond",
	PartOffset:      "offset",
	PartAM:          "AM",
	PartPM:          "PM",
}

func (k PartKind) String() string {
	if int(k) >= len(partNames) {
		return "PartKind(" + strconv.Itoa(int(k)) + ")"
	}
	return partNames[k]
}

// A DatePart is a single field read from a value by ParseParts.
type DatePart struct {
	Kind PartKind
	// Value is the numeric value of the field. Years are expanded to four
	// digits and months and weekdays read by name are converted to numbers.
	Value int
	// Offset is set for PartOffset.
	Offset Offset
	// Text is the input the part was read from.
	Text string
}

// ParseParts reads value according to layout and returns its fields in the
// order of the layout. The fields are not validated against each other; use
// the Parse*Layout functions to build values.
//
// For the two-digit year directive "YY", a value greater than the last two
// digits of the current year is taken to be in the previous century. The
// result thus depends on the time of the call.
func ParseParts(layout, value string) ([]DatePart, error) {
	return parseParts("value", layout, value)
}

func parseParts(typ, layout, value string) ([]DatePart, error) {
	p := newParser(typ, layout, value)
	prog := memo.Get(layout, compile)
	parts := make([]DatePart, 0, len(prog))

	// Execute the parsing instructions
	for _, i := range prog {
		p.setInst(i)
		part := DatePart{}
		switch i.op {
		case opLiteral:
			p.accept(i.lit)
			part.Kind = PartLiteral
		case opUnknown:
			return nil, p.err(ErrUnknownDirective, "not a directive, use [] for literal text")
		case opLongYear:
			part.Kind, part.Value = PartYear, p.getnumN(4, true)
		case opYear:
			part.Kind, part.Value = PartYear, expandYear(p.getnumN(2, true))
		case opLongMonth:
			part.Kind, part.Value = PartMonth, p.lookup(longMonthNames)+1
		case opMonth:
			part.Kind, part.Value = PartMonth, p.lookup(shortMonthNames)+1
		case opZeroMonth, opNumMonth:
			part.Kind, part.Value = PartMonth, p.num(i.op == opZeroMonth)
		case opZeroDay, opDay:
			part.Kind, part.Value = PartDay, p.num(i.op == opZeroDay)
		case opLongWeekDay:
			part.Kind, part.Value = PartWeekday, p.lookup(longDayNames)
		case opWeekDay:
			part.Kind, part.Value = PartWeekday, p.lookup(shortDayNames)
		case opMinWeekDay:
			part.Kind, part.Value = PartWeekday, p.lookup(minDayNames)
		case opNumWeekDay:
			part.Kind, part.Value = PartWeekday, p.getnumN(1, true)
		case opZeroHour, opHour:
			part.Kind, part.Value = PartHour, p.num(i.op == opZeroHour)
		case opZeroHour12, opHour12:
			part.Kind, part.Value = PartTwelveHour, p.num(i.op == opZeroHour12)
		case opZeroMinute, opMinute:
			part.Kind, part.Value = PartMinute, p.num(i.op == opZeroMinute)
		case opZeroSecond, opSecond:
			part.Kind, part.Value = PartSecond, p.num(i.op == opZeroSecond)
		case opMilli:
			part.Kind, part.Value = PartMillisecond, p.getnumN(3, true)
		case opMicro:
			part.Kind, part.Value = PartMicrosecond, p.getnumN(6, true)
		case opNano:
			part.Kind, part.Value = PartNanosecond, p.getnumN(9, true)
		case opCompactOffset, opOffset, opShortOffset:
			// All offset directives accept every offset form.
			o, n, err := scanOffset(p.value)
			if err != nil {
				if errors.Is(err, ErrOutOfBounds) {
					return nil, p.err(ErrOutOfBounds, err.(*Error).Message)
				}
				p.parseFailed()
				break
			}
			p.value = p.value[n:]
			part.Kind, part.Offset, part.Value = PartOffset, o, o.minutes
		case opUpperMeridiem, opLowerMeridiem:
			part.Kind = PartAM + PartKind(p.lookup(meridiems))
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
		if p.hasErr {
			return nil, p.err(ErrInvalidFormat, "cannot parse "+strconv.Quote(p.valEl))
		}
		part.Text = p.valEl[:len(p.valEl)-len(p.value)]
		parts = append(parts, part)
	}
	if len(p.value) > 0 {
		p.finish()
		return nil, p.err(ErrInvalidFormat, "extra text: "+strconv.Quote(p.value))
	}
	return parts, nil
}

// expandYear returns the four digit year for yy, assuming the century of
// the current year unless yy is in its future.
func expandYear(yy int) int {
	now := clock.Now().Year()
	century := now - now%100
	if yy > now%100 {
		century -= 100
	}
	return century + yy
}

// layoutValues are the fields of a parsed layout, assembled from the parts.
type layoutValues struct {
	year, month, day           int
	hour, minute, second, nano int
	prec                       Precision
	offset                     Offset

	hasDate, hasTime, hasOffset bool
	hasYear, twelve             bool
	pm, meridiem                bool
}

func assemble(parts []DatePart) layoutValues {
	v := layoutValues{month: 1, day: 1}
	for _, p := range parts {
		switch p.Kind {
		case PartYear:
			v.year, v.hasYear, v.hasDate = p.Value, true, true
		case PartMonth:
			v.month, v.hasDate = p.Value, true
		case PartDay:
			v.day, v.hasDate = p.Value, true
		case PartHour:
			v.hour, v.twelve, v.hasTime = p.Value, false, true
		case PartTwelveHour:
			v.hour, v.twelve, v.hasTime = p.Value, true, true
		case PartMinute:
			v.minute, v.hasTime = p.Value, true
		case PartSecond:
			v.second, v.hasTime = p.Value, true
		case PartMillisecond:
			v.nano, v.prec, v.hasTime = p.Value*1e6, max(v.prec, MilliPrecision), true
		case PartMicrosecond:
			v.nano, v.prec, v.hasTime = p.Value*1e3, max(v.prec, MicroPrecision), true
		case PartNanosecond:
			v.nano, v.prec, v.hasTime = p.Value, NanoPrecision, true
		case PartOffset:
			v.offset, v.hasOffset = p.Offset, true
		case PartAM, PartPM:
			v.pm, v.meridiem = p.Kind == PartPM, true
		}
	}
	// A twelve hour value without AM or PM is taken as is.
	if v.twelve && v.meridiem {
		switch {
		case v.pm && v.hour < 12:
			v.hour += 12
		case !v.pm && v.hour == 12:
			v.hour = 0
		}
	}
	return v
}

func (v layoutValues) date() (Date, error) {
	return NewDate(v.year, time.Month(v.month), v.day)
}

func (v layoutValues) time() (Time, error) {
	return newTime(v.hour, v.minute, v.second, v.nano, v.prec)
}

// ParseDateLayout parses a date formatted according to layout. Months and
// days missing from the layout default to 1; the year is required.
func ParseDateLayout(layout, value string) (Date, error) {
	parts, err := parseParts("date", layout, value)
	if err != nil {
		return Date{}, err
	}
	v := assemble(parts)
	if !v.hasYear {
		return Date{}, layoutErr(ErrMissingComponent, "date", layout, value, "no year")
	}
	d, err := v.date()
	if err != nil {
		return Date{}, withLayout(err, "date", layout, value)
	}
	return d, nil
}

// ParseTimeLayout parses a time of day formatted according to layout. The
// precision of the result is that of the finest fraction directive. Fields
// missing from the layout default to 0, but at least one is required.
func ParseTimeLayout(layout, value string) (Time, error) {
	parts, err := parseParts("time", layout, value)
	if err != nil {
		return Time{}, err
	}
	v := assemble(parts)
	if !v.hasTime {
		return Time{}, layoutErr(ErrMissingComponent, "time", layout, value, "no time")
	}
	t, err := v.time()
	if err != nil {
		return Time{}, withLayout(err, "time", layout, value)
	}
	return t, nil
}

// ParseNaiveLayout parses a naive datetime formatted according to layout.
// Offsets in the value are ignored.
func ParseNaiveLayout(layout, value string) (NaiveDateTime, error) {
	return parseNaiveLayout("datetime", layout, value)
}

func parseNaiveLayout(typ, layout, value string) (NaiveDateTime, error) {
	parts, err := parseParts(typ, layout, value)
	if err != nil {
		return NaiveDateTime{}, err
	}
	v := assemble(parts)
	return v.naive(typ, layout, value)
}

func (v layoutValues) naive(typ, layout, value string) (NaiveDateTime, error) {
	switch {
	case !v.hasYear:
		return NaiveDateTime{}, layoutErr(ErrMissingComponent, typ, layout, value, "no year")
	case !v.hasTime:
		return NaiveDateTime{}, layoutErr(ErrMissingComponent, typ, layout, value, "no time")
	}
	d, err := v.date()
	if err != nil {
		return NaiveDateTime{}, withLayout(err, typ, layout, value)
	}
	t, err := v.time()
	if err != nil {
		return NaiveDateTime{}, withLayout(err, typ, layout, value)
	}
	return NaiveDateTime{d, t}, nil
}

// ParseDateTimeLayout parses a datetime with offset formatted according to
// layout.
func ParseDateTimeLayout(layout, value string) (DateTime, error) {
	const typ = "datetime"
	parts, err := parseParts(typ, layout, value)
	if err != nil {
		return DateTime{}, err
	}
	v := assemble(parts)
	n, err := v.naive(typ, layout, value)
	if err != nil {
		return DateTime{}, err
	}
	if !v.hasOffset {
		return DateTime{}, layoutErr(ErrMissingComponent, typ, layout, value, "no offset")
	}
	return DateTime{n, v.offset}, nil
}

func layoutErr(kind errorkit.Error, typ, layout, value, msg string) error {
	e := parseErr(kind, typ, value, msg)
	e.Layout = strings.Clone(layout)
	return e
}

// withLayout re-labels a construction error as a failure to parse value
// according to layout.
func withLayout(err error, typ, layout, value string) error {
	err = withValue(err, typ, value)
	if e, ok := err.(*Error); ok {
		e.Layout = strings.Clone(layout)
	}
	return err
}

// match reports whether s1 and s2 match ignoring case.
// It is assumed s1 and s2 are the same length.
func match(s1, s2 string) bool {
	for i := 0; i < len(s1); i++ {
		c1 := s1[i]
		c2 := s2[i]
		if c1 != c2 {
			// Switch to lower-case; 'a'-'A' is known to be a single bit.
			c1 |= 'a' - 'A'
			c2 |= 'a' - 'A'
			if c1 != c2 || c1 < 'a' || c1 > 'z' {
				return false
			}
		}
	}
	return true
}

func isDigit(s string, i int) bool {
	if len(s) <= i {
		return false
	}
	return '0' <= s[i] && s[i] <= '9'
}

type parser struct {
	typ    string
	layout string
	input  string

	inst   inst
	hasErr bool
	value  string
	valEl  string
}

func newParser(typ, layout, value string) *parser {
	return &parser{
		typ:    typ,
		layout: layout,
		input:  value,
		value:  value,
	}
}

// setInst sets the current instruction and input offset for error reporting.
func (p *parser) setInst(i inst) {
	p.inst = i
	p.valEl = p.value
}

// finish signals that parsing is finished and the parser is only being kept
// around for error reporting.
func (p *parser) finish() {
	p.inst = inst{op: opInvalid}
	p.valEl = ""
}

// parseFailed signals that the parse has failed at the current instruction.
func (p *parser) parseFailed() {
	p.hasErr = true
}

func (p *parser) err(kind errorkit.Error, msg string) error {
	// Clone all parts of the input that end up in the error, so that the
	// input itself does not escape on the happy path.
	e := parseErr(kind, p.typ, p.input, msg)
	e.Layout = strings.Clone(p.layout)
	if p.inst.op != opInvalid {
		e.LayoutElem = strings.Clone(p.inst.String())
	}
	return e
}

// trimByte skips a run of the given byte.
func (p *parser) trimByte(b byte) {
	for len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// accept a literal string, treating runs of space characters as equivalent.
func (p *parser) accept(lit string) {
	for len(lit) > 0 {
		if lit[0] == ' ' {
			if p.value != "" && p.value[0] != ' ' {
				p.parseFailed()
				return
			}
			p.trimByte(' ')
			lit = strings.TrimLeft(lit, " ")
			continue
		}
		if p.value == "" || p.value[0] != lit[0] {
			p.parseFailed()
			return
		}
		lit, p.value = lit[1:], p.value[1:]
	}
}

// getnumN parses s[0:1], …, or s[0:N] (fixed forces s[0:N])
// as a decimal integer.
func (p *parser) getnumN(N int, fixed bool) int {
	var n, i int
	for i = 0; i < N && isDigit(p.value, i); i++ {
		n = n*10 + int(p.value[i]-'0')
	}
	if i == 0 || (fixed && i != N) {
		p.parseFailed()
		return 0
	}
	p.value = p.value[i:]
	return n
}

// num parses s[:1] or s[:2] (fixed forces s[:2]) as a decimal integer.
func (p *parser) num(fixed bool) int {
	return p.getnumN(2, fixed)
}

// lookup a value from a table and accept a case-insensitive match.
func (p *parser) lookup(table []string) int {
	for i, v := range table {
		if len(p.value) >= len(v) && match(p.value[0:len(v)], v) {
			p.value = p.value[len(v):]
			return i
		}
	}
	p.parseFailed()
	return 0
}
