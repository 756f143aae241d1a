package option_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denis-mludek/spacelift/option"
)

func TestOfPresentValues(t *testing.T) {
	for _, v := range []any{0, false, "", 3.5, []any{}, map[string]any{}} {
		opt := option.Of(v)
		assert.True(t, opt.IsDefined(), "Of(%#v) should be Some", v)
		assert.Equal(t, v, opt.Get())
	}
}

func TestOfAbsentValues(t *testing.T) {
	var p *int
	var e error
	var fn func()
	for _, v := range []any{nil, p, e, fn} {
		opt := option.Of(v)
		assert.False(t, opt.IsDefined(), "Of(%#v) should be None", v)
		assert.True(t, opt.IsEmpty())
		assert.Nil(t, opt.Get())
	}
}

func TestNoneIsShared(t *testing.T) {
	assert.True(t, option.Of(nil) == option.None)
	assert.True(t, option.FromOk(1, false) == option.None)
	assert.True(t, option.Of(1).Filter(func(any) bool { return false }) == option.None)
	assert.True(t, option.None.Map(func(v any) any { return v }) == option.None)
}

func TestFromOk(t *testing.T) {
	m := map[string]any{"a": 1}
	v, ok := m["a"]
	assert.Equal(t, 1, option.FromOk(v, ok).Get())
	v, ok = m["b"]
	assert.False(t, option.FromOk(v, ok).IsDefined())
}

func TestGetOrElse(t *testing.T) {
	assert.Equal(t, 1, option.Of(1).GetOrElse(2))
	assert.Equal(t, 2, option.None.GetOrElse(2))
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 1, option.Of(1).OrElse(option.Of(2)).Get())
	assert.Equal(t, 2, option.None.OrElse(option.Of(2)).Get())
	assert.True(t, option.None.OrElse(nil) == option.None)
}

func TestMap(t *testing.T) {
	doubled := option.Of(21).Map(func(v any) any { return v.(int) * 2 })
	assert.Equal(t, 42, doubled.Get())

	absent := option.Of(21).Map(func(any) any { return nil })
	assert.False(t, absent.IsDefined())
}

func TestFlatMap(t *testing.T) {
	half := func(v any) option.Option {
		n := v.(int)
		if n%2 != 0 {
			return option.None
		}
		return option.Of(n / 2)
	}
	assert.Equal(t, 5, option.Of(10).FlatMap(half).Get())
	assert.False(t, option.Of(3).FlatMap(half).IsDefined())
	assert.False(t, option.None.FlatMap(half).IsDefined())
	assert.False(t, option.Of(3).FlatMap(func(any) option.Option { return nil }).IsDefined())
}

func TestToSlice(t *testing.T) {
	assert.Equal(t, []any{"x"}, option.Of("x").ToSlice())
	assert.Empty(t, option.None.ToSlice())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Some(3)", option.Of(3).String())
	assert.Equal(t, "None", option.None.String())
}

func TestMarshalJSON(t *testing.T) {
	b, err := json.Marshal([]option.Option{option.Of(1), option.None, option.Of("a")})
	require.NoError(t, err)
	assert.JSONEq(t, `[1,null,"a"]`, string(b))
}
