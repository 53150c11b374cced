// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arith contains integer helpers with floor semantics. Go's / and %
// truncate toward zero, which is wrong for calendar math on negative values.
package arith

import "golang.org/x/exp/constraints"

// FloorDiv returns a/b rounded toward negative infinity. b must be positive.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// FloorMod returns a mod b in the range [0, b). b must be positive.
func FloorMod[T constraints.Signed](a, b T) T {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func Norm[T constraints.Signed](hi, lo, base T) (nhi, nlo T) {
	return hi + FloorDiv(lo, base), FloorMod(lo, base)
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
