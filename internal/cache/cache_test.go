// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sized string

func (s sized) Size() int64 { return int64(len(s)) }

func TestGet(t *testing.T) {
	var (
		c     Cache[int, string]
		calls int
	)
	fill := func(k int) string {
		calls++
		return strconv.Itoa(k)
	}
	require.Equal(t, "1", c.Get(1, fill))
	require.Equal(t, "1", c.Get(1, fill))
	require.Equal(t, "2", c.Get(2, fill))
	assert.Equal(t, 2, calls)

	s := c.Stats()
	assert.Equal(t, int64(1), s.Hits)
	assert.Equal(t, int64(2), s.Misses)
	assert.Equal(t, 2, s.Len)
	assert.Equal(t, int64(2), s.Size)

	c.Evict(1)
	c.Evict(42)
	assert.Equal(t, 1, c.Stats().Len)

	c.Flush()
	s = c.Stats()
	assert.Zero(t, s.Len)
	assert.Zero(t, s.Size)
	assert.Equal(t, int64(2), s.Misses, "Flush keeps counters")
}

func TestMaxSize(t *testing.T) {
	c := Cache[int, sized]{MaxSize: 10}
	for i := range 20 {
		c.Get(i, func(int) sized { return "abcd" })
		s := c.Stats()
		require.LessOrEqual(t, s.Size, int64(10))
		require.Equal(t, int64(s.Len*4), s.Size)
	}
	s := c.Stats()
	assert.Equal(t, 2, s.Len)
	assert.Equal(t, int64(18), s.Evictions)

	// An element larger than the cache is returned but not kept.
	v := c.Get(100, func(int) sized { return "this is too long" })
	assert.Equal(t, sized("this is too long"), v)
	assert.LessOrEqual(t, c.Stats().Size, int64(10))
}

func TestConcurrent(t *testing.T) {
	c := Cache[int, int]{MaxSize: 8}
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				k := (g + i) % 16
				if got := c.Get(k, func(k int) int { return k * k }); got != k*k {
					t.Errorf("Get(%d) = %d, want %d", k, got, k*k)
				}
			}
		}()
	}
	wg.Wait()
	s := c.Stats()
	assert.Equal(t, int64(800), s.Hits+s.Misses)
	assert.LessOrEqual(t, s.Len, 8)
}
