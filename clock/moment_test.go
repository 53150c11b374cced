// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clock

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonih.org/civil"
)

func TestMomentOrder(t *testing.T) {
	v, _ := newVirtual()
	v.Freeze(ref)

	// All moments share a monotonic reading; the sequence orders them.
	ms := make([]Moment, 100)
	for i := range ms {
		ms[i] = Take(v)
	}
	require.True(t, slices.IsSortedFunc(ms, Moment.Compare))
	for i := 1; i < len(ms); i++ {
		assert.NotZero(t, ms[i].Compare(ms[i-1]))
	}
	assert.Zero(t, ms[0].Compare(ms[0]))
}

func TestMomentElapsed(t *testing.T) {
	v, r := newVirtual()
	a := Take(v)
	r.Advance(90 * time.Second)
	b := Take(v)

	assert.Equal(t, civil.Minutes(1)+civil.Seconds(30), b.Sub(a))
	assert.Equal(t, b.Sub(a), a.Since(v))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, +1, b.Compare(a))
}

func TestMomentDateTime(t *testing.T) {
	v, _ := newVirtual()
	v.Freeze(ref)
	m := Take(v)
	assert.Equal(t, ref, m.Wall())
	assert.Equal(t, "2024-06-21T13:42:11.000000000Z", m.DateTime().String())
}
