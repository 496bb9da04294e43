package numerics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	cases := []struct {
		a, b int64
		sum  int64
		ok   bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{-5, 3, -2, true},
		{math.MaxInt64, 0, math.MaxInt64, true},
		{math.MaxInt64, 1, 0, false},
		{math.MinInt64, -1, 0, false},
		{math.MaxInt64, math.MaxInt64, 0, false},
		{math.MinInt64, math.MaxInt64, -1, true},
	}
	for _, c := range cases {
		sum, ok := Add(c.a, c.b)
		assert.Equal(t, c.ok, ok, "Add(%d, %d) ok", c.a, c.b)
		if c.ok {
			assert.Equal(t, c.sum, sum, "Add(%d, %d)", c.a, c.b)
		}
	}
}

func TestMul(t *testing.T) {
	cases := []struct {
		a, b int64
		prod int64
		ok   bool
	}{
		{0, math.MaxInt64, 0, true},
		{3, 7, 21, true},
		{-4, 5, -20, true},
		{math.MaxInt64, 1, math.MaxInt64, true},
		{math.MaxInt64, 2, 0, false},
		{1 << 40, 1 << 40, 0, false},
		{math.MinInt64, -1, 0, false},
		{-1, math.MinInt64, 0, false},
	}
	for _, c := range cases {
		prod, ok := Mul(c.a, c.b)
		assert.Equal(t, c.ok, ok, "Mul(%d, %d) ok", c.a, c.b)
		if c.ok {
			assert.Equal(t, c.prod, prod, "Mul(%d, %d)", c.a, c.b)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, int64(1), CeilDiv(1, 2))
	assert.Equal(t, int64(3), CeilDiv(6, 2))
	assert.Equal(t, int64(4), CeilDiv(7, 2))
	assert.Equal(t, int64(1), CeilDiv(1, 100))
	assert.Equal(t, int64(2), CeilDiv(4, 3))
}

func TestCeilDivNearMax(t *testing.T) {
	// The numerator plus divisor would wrap int64; the result must not.
	assert.Equal(t, int64(1)<<30, CeilDiv(math.MaxInt64, 1<<33))
	assert.Equal(t, int64(math.MaxInt64), CeilDiv(math.MaxInt64, 1))
	assert.Equal(t, int64(1), CeilDiv(math.MaxInt64, math.MaxInt64))
	assert.Equal(t, int64(2), CeilDiv(math.MaxInt64, math.MaxInt64-1))
}

func TestFitsInt32(t *testing.T) {
	assert.True(t, FitsInt32(0))
	assert.True(t, FitsInt32(math.MaxInt32))
	assert.True(t, FitsInt32(math.MinInt32))
	assert.False(t, FitsInt32(math.MaxInt32+1))
	assert.False(t, FitsInt32(1<<40))
}
