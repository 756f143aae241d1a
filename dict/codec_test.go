package dict_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/denis-mludek/spacelift/dict"
)

func TestMarshalJSONKeepsOrder(t *testing.T) {
	b, err := json.Marshal(makeNested())
	require.NoError(t, err)
	assert.Equal(t,
		`{"user":{"name":"Alice","address":{"city":"London","country":"UK"}},"score":42}`,
		string(b))
}

func TestDecodeJSON(t *testing.T) {
	v, err := dict.DecodeJSON([]byte(`[{"b":1,"a":2.5},"x",true,null]`))
	require.NoError(t, err)
	items, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, items, 4)

	obj, ok := items[0].(*dict.Dict)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, obj.Keys())
	assert.Equal(t, []any{1, 2.5}, obj.Values())
	assert.Equal(t, "x", items[1])
	assert.Equal(t, true, items[2])
	assert.Nil(t, items[3])
}

func TestDecodeJSONTrailingData(t *testing.T) {
	_, err := dict.DecodeJSON([]byte(`{} {}`))
	assert.Error(t, err)
}

func TestUnmarshalJSON(t *testing.T) {
	var d dict.Dict
	require.NoError(t, json.Unmarshal([]byte(`{"z":1,"y":{"x":2}}`), &d))
	assert.Equal(t, []string{"z", "y"}, d.Keys())
	v, ok := d.GetPath("y.x")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	err := json.Unmarshal([]byte(`[1]`), &d)
	assert.True(t, errors.Is(err, dict.ErrNotAnObject))
}

func TestYAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(makeNested())
	require.NoError(t, err)
	assert.Equal(t, "user:\n    name: Alice\n    address:\n        city: London\n        country: UK\nscore: 42\n", string(out))

	var d dict.Dict
	require.NoError(t, yaml.Unmarshal(out, &d))
	assert.Equal(t, []string{"user", "score"}, d.Keys())
	v, _ := d.GetPath("user.address.country")
	assert.Equal(t, "UK", v)
}

func TestDecodeYAML(t *testing.T) {
	v, err := dict.DecodeYAML([]byte("- name: b\n  age: 3\n- name: a\n  age: 1.5\n"))
	require.NoError(t, err)
	items := v.([]any)
	require.Len(t, items, 2)
	first := items[0].(*dict.Dict)
	assert.Equal(t, []string{"name", "age"}, first.Keys())
	age, _ := first.Get("age")
	assert.Equal(t, 3, age)

	empty, err := dict.DecodeYAML(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestDecodeYAMLAliases(t *testing.T) {
	v, err := dict.DecodeYAML([]byte("base: &b {x: 1}\nfirst: *b\nsecond: *b\n"))
	require.NoError(t, err)
	d := v.(*dict.Dict)
	x, ok := d.GetPath("second.x")
	require.True(t, ok)
	assert.Equal(t, 1, x)
}

func TestDecodeYAMLRecursiveAlias(t *testing.T) {
	_, err := dict.DecodeYAML([]byte("a: &x [1, *x]\n"))
	assert.ErrorIs(t, err, dict.ErrAliasExpansion)

	var d dict.Dict
	err = yaml.Unmarshal([]byte("a: &x {b: *x}\n"), &d)
	assert.True(t, errors.Is(err, dict.ErrAliasExpansion), "got %v", err)
}

func TestDecodeYAMLAliasBomb(t *testing.T) {
	doc := `a: &a ["x","x","x","x","x","x","x","x","x","x"]
b: &b [*a,*a,*a,*a,*a,*a,*a,*a,*a,*a]
c: &c [*b,*b,*b,*b,*b,*b,*b,*b,*b,*b]
d: &d [*c,*c,*c,*c,*c,*c,*c,*c,*c,*c]
e: &e [*d,*d,*d,*d,*d,*d,*d,*d,*d,*d]
f: &f [*e,*e,*e,*e,*e,*e,*e,*e,*e,*e]
g: &g [*f,*f,*f,*f,*f,*f,*f,*f,*f,*f]
`
	_, err := dict.DecodeYAML([]byte(doc))
	assert.ErrorIs(t, err, dict.ErrAliasExpansion)
}
