package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/denis-mludek/spacelift/dict"
	"github.com/denis-mludek/spacelift/lift"
)

const people = `[
  {"name": "Walt", "role": "cook", "age": 50},
  {"name": "Jesse", "role": "cook", "age": 25},
  {"name": "Skyler", "role": "accountant", "age": 40},
  {"name": "Jesse", "role": "driver", "age": 25}
]`

func decodePeople(t *testing.T) any {
	t.Helper()
	doc, err := decodeDocument("people.json", []byte(people))
	require.NoError(t, err)
	return doc
}

func names(t *testing.T, w lift.Wrapper) []any {
	t.Helper()
	return lift.Array(w).Map(func(p any, _ int) any {
		v, _ := p.(*dict.Dict).Get("name")
		return v
	}).Items()
}

func TestDecodeDocument(t *testing.T) {
	doc, err := decodeDocument("", []byte(" [1, 2.5, \"x\"] "))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2.5, "x"}, doc)

	doc, err = decodeDocument("-", []byte("- b\n- a\n"))
	require.NoError(t, err)
	assert.Equal(t, []any{"b", "a"}, doc)

	doc, err = decodeDocument("tags.yml", []byte("[z, y]"))
	require.NoError(t, err)
	assert.Equal(t, []any{"z", "y"}, doc)

	_, err = decodeDocument("bad.json", []byte("[1,"))
	assert.Error(t, err)
}

func TestReadDocument(t *testing.T) {
	doc, err := readDocument("-", strings.NewReader(`{"a": 1}`))
	require.NoError(t, err)
	assert.IsType(t, &dict.Dict{}, doc)

	path := filepath.Join(t.TempDir(), "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- 3\n- 1\n"), 0o600))
	doc, err = readDocument(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{3, 1}, doc)

	_, err = readDocument(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

func TestSortPipeline(t *testing.T) {
	res, err := pipeline{command: "sort", by: "age"}.apply(decodePeople(t))
	require.NoError(t, err)
	assert.Equal(t, []any{"Jesse", "Jesse", "Skyler", "Walt"}, names(t, res))

	res, err = pipeline{command: "sort", by: "name", reverse: true}.apply(decodePeople(t))
	require.NoError(t, err)
	assert.Equal(t, []any{"Walt", "Skyler", "Jesse", "Jesse"}, names(t, res))
}

func TestSortPipelineLocale(t *testing.T) {
	doc := []any{"b", "ä", "a", "z"}
	res, err := pipeline{command: "sort", locale: language.Swedish}.apply(doc)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b", "z", "ä"}, res.Value())

	res, err = pipeline{command: "sort", ignoreCase: true}.apply([]any{"b", "A", "c"})
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "b", "c"}, res.Value())
}

func TestSortPipelineIncomparable(t *testing.T) {
	_, err := pipeline{command: "sort"}.apply([]any{1, "a"})
	assert.ErrorIs(t, err, lift.ErrIncomparable)
}

func TestDistinctPipeline(t *testing.T) {
	res, err := pipeline{command: "distinct", by: "name"}.apply(decodePeople(t))
	require.NoError(t, err)
	assert.Equal(t, []any{"Walt", "Jesse", "Skyler"}, names(t, res))

	res, err = pipeline{command: "distinct"}.apply([]any{1, 1, "1"})
	require.NoError(t, err)
	assert.Equal(t, []any{1, "1"}, res.Value())
}

func TestGroupPipeline(t *testing.T) {
	res, err := pipeline{command: "group", by: "role"}.apply(decodePeople(t))
	require.NoError(t, err)
	require.IsType(t, &lift.ObjectOps{}, res)
	assert.Equal(t, []string{"cook", "accountant", "driver"}, res.(*lift.ObjectOps).Dict().Keys())

	_, err = pipeline{command: "group"}.apply(decodePeople(t))
	assert.ErrorIs(t, err, errMissingBy)
}

func TestFlattenCompactSet(t *testing.T) {
	res, err := pipeline{command: "flatten"}.apply([]any{[]any{1, 2}, 3})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, res.Value())

	res, err = pipeline{command: "compact"}.apply([]any{nil, 0, "", "a", false})
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, res.Value())

	res, err = pipeline{command: "set"}.apply([]any{"a", "b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.(*lift.ObjectOps).Dict().Keys())
}

func TestApplyErrors(t *testing.T) {
	_, err := pipeline{command: "sort"}.apply(dict.New())
	assert.ErrorIs(t, err, errNotAnArray)

	_, err = pipeline{command: "explode"}.apply([]any{})
	assert.ErrorIs(t, err, errUnknownCommand)
}

// ─── Output ───────────────────────────────────────────────────────────────────

func TestResolveFormat(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	format, err := resolveFormat("auto", f.Fd())
	require.NoError(t, err)
	assert.Equal(t, "json", format)

	format, err = resolveFormat("yaml", f.Fd())
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)

	_, err = resolveFormat("xml", f.Fd())
	assert.ErrorIs(t, err, errUnknownFormat)
}

func TestRenderJSONKeepsKeyOrder(t *testing.T) {
	d := dict.New(dict.Entry{Key: "z", Value: 1}, dict.Entry{Key: "a", Value: []any{true}})
	var buf bytes.Buffer
	require.NoError(t, render(&buf, lift.Object(d), "json"))
	assert.Equal(t, "{\n  \"z\": 1,\n  \"a\": [\n    true\n  ]\n}\n", buf.String())
}

func TestRenderYAML(t *testing.T) {
	d := dict.New(dict.Entry{Key: "z", Value: 1}, dict.Entry{Key: "a", Value: "x"})
	var buf bytes.Buffer
	require.NoError(t, render(&buf, lift.Of(d), "yaml"))
	assert.Equal(t, "- z: 1\n  a: x\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	res, err := pipeline{command: "sort", by: "age"}.apply(decodePeople(t))
	require.NoError(t, err)
	require.NoError(t, render(&buf, res, "table"))
	out := buf.String()
	for _, s := range []string{"name", "role", "age", "Skyler", "accountant", "40"} {
		assert.Contains(t, out, s)
	}
}

func TestTableData(t *testing.T) {
	data := tableData(lift.Of("a", 2))
	assert.Equal(t, [][]string{{"#", "value"}, {"0", "a"}, {"1", "2"}}, data)

	mixed := lift.Of(dict.New(dict.Entry{Key: "a", Value: 1}), dict.New(dict.Entry{Key: "b", Value: []any{1}}))
	assert.Equal(t, [][]string{{"a", "b"}, {"1", ""}, {"", "[1]"}}, tableData(mixed))

	obj := lift.Object(dict.New(dict.Entry{Key: "k", Value: true}))
	assert.Equal(t, [][]string{{"key", "value"}, {"k", "true"}}, tableData(obj))

	assert.Equal(t, [][]string{{"value"}, {"hi"}}, tableData(lift.Text("hi")))
}
