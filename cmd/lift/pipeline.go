package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/thatisuday/commando"
	"golang.org/x/text/language"

	"github.com/denis-mludek/spacelift/dict"
	"github.com/denis-mludek/spacelift/lift"
)

var (
	errNotAnArray     = errors.New("input document is not an array")
	errMissingBy      = errors.New("--by is required")
	errUnknownCommand = errors.New("unknown command")
)

// pipeline is one CLI command with its options resolved.
type pipeline struct {
	command    string
	by         string
	reverse    bool
	ignoreCase bool
	locale     language.Tag
}

func newPipeline(command string, flags map[string]commando.FlagValue) (pipeline, error) {
	p := pipeline{command: command, by: flagString(flags, "by")}
	if f, ok := flags["reverse"]; ok {
		p.reverse = mustFlagBool(f, "reverse")
	}
	if f, ok := flags["ignore-case"]; ok {
		p.ignoreCase = mustFlagBool(f, "ignore-case")
	}
	if s := flagString(flags, "locale"); s != "" {
		tag, err := language.Parse(s)
		if err != nil {
			return p, fmt.Errorf("invalid locale %q: %w", s, err)
		}
		p.locale = tag
	}
	return p, nil
}

// key returns the projection selected by --by, or nil for the element
// itself.
func (p pipeline) key() func(any) any {
	if p.by == "" {
		return nil
	}
	return func(item any) any {
		if d, ok := item.(*dict.Dict); ok {
			v, _ := d.GetPath(p.by)
			return v
		}
		return nil
	}
}

// apply runs the command on a decoded document. Programmer-error panics of
// the lift package (incomparable sort keys) are reported as errors.
func (p pipeline) apply(doc any) (result lift.Wrapper, err error) {
	if lift.Classify(doc) != lift.KindArray {
		return nil, fmt.Errorf("%w: got %s", errNotAnArray, lift.Classify(doc))
	}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	arr := lift.Array(doc)
	switch p.command {
	case "sort":
		return arr.Sort(lift.SortOptions{
			By:         p.key(),
			Reverse:    p.reverse,
			IgnoreCase: p.ignoreCase,
			Locale:     p.locale,
		}), nil
	case "distinct":
		return arr.Distinct(p.key()), nil
	case "group":
		if p.by == "" {
			return nil, fmt.Errorf("group: %w", errMissingBy)
		}
		return arr.GroupBy(p.key()), nil
	case "flatten":
		return arr.Flatten(), nil
	case "compact":
		return arr.Compact(), nil
	case "set":
		return arr.ToSet(), nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownCommand, p.command)
}

// readDocument reads and decodes the named file, or stdin for "" and "-".
func readDocument(name string, stdin io.Reader) (any, error) {
	var data []byte
	var err error
	if name == "" || name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	return decodeDocument(name, data)
}

// decodeDocument decodes by file extension; without one, JSON is tried
// first when the document starts like a JSON array or object.
func decodeDocument(name string, data []byte) (any, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return dict.DecodeJSON(data)
	case ".yaml", ".yml":
		return dict.DecodeYAML(data)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		if v, err := dict.DecodeJSON(trimmed); err == nil {
			return v, nil
		}
	}
	return dict.DecodeYAML(data)
}
