package dict

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes d as a JSON object with keys in insertion order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range d.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("dict: key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into d, replacing its content. Nested
// objects become *Dict values and arrays become []any.
func (d *Dict) UnmarshalJSON(data []byte) error {
	v, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Dict)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrNotAnObject, v)
	}
	*d = *decoded
	return nil
}

// DecodeJSON decodes a JSON document into []any, *Dict, string, bool, nil
// and numeric values. Integral numbers that fit an int become int, all other
// numbers become float64.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("dict: trailing data after JSON document")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			out := New()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("dict: unexpected object key %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				out.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return out, nil
		case '[':
			out := make([]any, 0)
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				out = append(out, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return out, nil
		}
		return nil, fmt.Errorf("dict: unexpected delimiter %v", t)
	case json.Number:
		return decodeNumber(t)
	default:
		// string, bool or nil
		return t, nil
	}
}

func decodeNumber(n json.Number) (any, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil && int64(int(i)) == i {
			return int(i), nil
		}
	}
	return n.Float64()
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

// MarshalYAML encodes d as a YAML mapping node with keys in insertion order.
func (d *Dict) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range d.All() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		valNode := &yaml.Node{}
		if err := valNode.Encode(v); err != nil {
			return nil, fmt.Errorf("dict: key %q: %w", k, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping node into d, replacing its content.
func (d *Dict) UnmarshalYAML(node *yaml.Node) error {
	v, err := newYAMLDecoder().decode(node)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Dict)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrNotAnObject, v)
	}
	*d = *decoded
	return nil
}

// DecodeYAML decodes a YAML document like [DecodeJSON] does for JSON.
// An empty document decodes to nil. Recursive aliases and documents whose
// aliases expand excessively yield [ErrAliasExpansion].
func DecodeYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return newYAMLDecoder().decode(&doc)
}

// yamlDecoder walks a node tree, expanding aliases. It bounds expansion
// with the same alias ratio yaml.v3 applies when decoding into Go values.
type yamlDecoder struct {
	expanding   map[*yaml.Node]bool
	decodeCount int
	aliasCount  int
	aliasDepth  int
}

func newYAMLDecoder() *yamlDecoder {
	return &yamlDecoder{expanding: make(map[*yaml.Node]bool)}
}

// allowedAliasRatio returns the share of alias-expanded nodes tolerated for
// a document of decodeCount nodes: 99% up to 400k nodes, 10% from 4M on,
// linear in between.
func allowedAliasRatio(decodeCount int) float64 {
	switch {
	case decodeCount <= 400_000:
		return 0.99
	case decodeCount >= 4_000_000:
		return 0.10
	}
	return 0.99 - 0.89*(float64(decodeCount-400_000)/3_600_000)
}

func (y *yamlDecoder) decode(node *yaml.Node) (any, error) {
	y.decodeCount++
	if y.aliasDepth > 0 {
		y.aliasCount++
	}
	if y.aliasCount > 100 && y.decodeCount > 1000 &&
		float64(y.aliasCount)/float64(y.decodeCount) > allowedAliasRatio(y.decodeCount) {
		tracer().Errorf("yaml alias expansion aborted after %d nodes", y.decodeCount)
		return nil, fmt.Errorf("%w: document is too large after alias expansion", ErrAliasExpansion)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return y.decode(node.Content[0])
	case yaml.AliasNode:
		if y.expanding[node.Alias] {
			return nil, fmt.Errorf("%w: anchor %q refers to itself", ErrAliasExpansion, node.Value)
		}
		y.expanding[node.Alias] = true
		y.aliasDepth++
		v, err := y.decode(node.Alias)
		y.aliasDepth--
		delete(y.expanding, node.Alias)
		return v, err
	case yaml.MappingNode:
		out := New()
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			val, err := y.decode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out.Set(key, val)
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			val, err := y.decode(child)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
