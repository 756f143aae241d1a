package lift

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/denis-mludek/spacelift/option"
)

type point struct{ X, Y int }

type boxed struct{ V any }

func TestIsFalsy(t *testing.T) {
	var p *int
	for _, v := range []any{nil, p, false, "", 0, 0.0, uint16(0), math.NaN()} {
		assert.True(t, IsFalsy(v), "%#v", v)
	}
	for _, v := range []any{true, "0", 1, -0.5, []any{}, map[string]any{}, option.None, time.Time{}} {
		assert.False(t, IsFalsy(v), "%#v", v)
	}
}

func TestIsTailKey(t *testing.T) {
	assert.True(t, isTailKey(nil))
	assert.True(t, isTailKey(""))
	assert.True(t, isTailKey(false))
	assert.True(t, isTailKey(math.NaN()))
	assert.False(t, isTailKey(0))
	assert.False(t, isTailKey(0.0))
	assert.False(t, isTailKey("a"))
}

func TestKeyString(t *testing.T) {
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	cases := map[string]any{
		"null":                 nil,
		"abc":                  "abc",
		"true":                 true,
		"-7":                   int8(-7),
		"7":                    uint(7),
		"44":                   44.0,
		"0.1":                  0.1,
		"2020-01-02T03:04:05Z": ts,
	}
	for want, in := range cases {
		assert.Equal(t, want, KeyString(in))
	}
	assert.Equal(t, "array", KeyString(KindArray))
	assert.Equal(t, "{1 2}", KeyString(point{1, 2}))
}

func TestNumberCompare(t *testing.T) {
	n := func(v any) number {
		x, ok := asNumber(v)
		assert.True(t, ok)
		return x
	}
	assert.Equal(t, -1, n(-1).compare(n(uint64(math.MaxUint64))))
	assert.Equal(t, 1, n(uint64(math.MaxUint64)).compare(n(int64(math.MaxInt64))))
	assert.Equal(t, 0, n(int32(2)).compare(n(2.0)))
	assert.Equal(t, -1, n(1.5).compare(n(2)))

	_, ok := asNumber("1")
	assert.False(t, ok)
}

func TestDistinctKey(t *testing.T) {
	assert.Equal(t, 7, distinctKey(7))
	assert.Equal(t, point{1, 2}, distinctKey(point{1, 2}))
	assert.NotEqual(t, distinctKey("7"), distinctKey(7))

	a, b := distinctKey([]any{1, 2}), distinctKey([]any{1, 2})
	assert.IsType(t, fingerprint{}, a)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, distinctKey([]int{1, 2}))

	assert.IsType(t, fingerprint{}, distinctKey(boxed{V: []any{1}}))
	assert.Equal(t, boxed{V: 1}, distinctKey(boxed{V: 1}))
}

func TestDistinctKeyNaN(t *testing.T) {
	assert.Equal(t, distinctKey(math.NaN()), distinctKey(math.NaN()))
	assert.NotEqual(t, distinctKey(math.NaN()), distinctKey(float32(math.NaN())))
	assert.NotEqual(t, distinctKey(math.NaN()), distinctKey(1.0))
}
