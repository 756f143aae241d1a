package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/denis-mludek/spacelift/dict"
	"github.com/denis-mludek/spacelift/lift"
)

var errUnknownFormat = errors.New("unknown output format")

// resolveFormat maps "auto" to table output on a terminal and to JSON
// everywhere else.
func resolveFormat(format string, fd uintptr) (string, error) {
	switch format {
	case "json", "yaml", "table":
		return format, nil
	case "", "auto":
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return "table", nil
		}
		return "json", nil
	}
	return "", fmt.Errorf("%w: %q (expected json|yaml|table|auto)", errUnknownFormat, format)
}

func render(w io.Writer, result lift.Wrapper, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(result.Value(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result.Value()); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		s, err := pterm.DefaultTable.WithHasHeader().WithData(tableData(result)).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}
	return fmt.Errorf("%w: %q", errUnknownFormat, format)
}

// tableData lays out a result as rows of cells, header first. Arrays of
// objects get one column per key, in first-seen order.
func tableData(result lift.Wrapper) [][]string {
	switch r := result.(type) {
	case *lift.ObjectOps:
		data := [][]string{{"key", "value"}}
		for k, v := range r.Entries() {
			data = append(data, []string{k, cell(v)})
		}
		return data
	case *lift.ArrayOps:
		if columns := objectColumns(r); len(columns) > 0 {
			data := [][]string{columns}
			for item := range r.All() {
				d := item.(*dict.Dict)
				row := make([]string, len(columns))
				for i, c := range columns {
					v, _ := d.Get(c)
					row[i] = cell(v)
				}
				data = append(data, row)
			}
			return data
		}
		data := [][]string{{"#", "value"}}
		for i, item := range r.Indexed() {
			data = append(data, []string{strconv.Itoa(i), cell(item)})
		}
		return data
	}
	return [][]string{{"value"}, {cell(result.Value())}}
}

// objectColumns returns the union of keys when every element is an object,
// and nil otherwise.
func objectColumns(a *lift.ArrayOps) []string {
	if a.IsEmpty() {
		return nil
	}
	seen := dict.New()
	for item := range a.All() {
		d, ok := item.(*dict.Dict)
		if !ok {
			return nil
		}
		for _, k := range d.Keys() {
			seen.Set(k, true)
		}
	}
	return seen.Keys()
}

func cell(v any) string {
	switch v.(type) {
	case nil:
		return ""
	case *dict.Dict, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
	return lift.KeyString(v)
}
