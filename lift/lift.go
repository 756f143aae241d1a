package lift

import (
	"fmt"
	"reflect"
	"time"

	"github.com/denis-mludek/spacelift/dict"
	"github.com/denis-mludek/spacelift/option"
)

// Wrapper is the capability set shared by every operations object.
type Wrapper interface {
	// Kind returns the shape of the wrapped value.
	Kind() Kind

	// Value unwraps the raw value.
	Value() any

	// Transform applies fn to the raw value and lifts the result, whatever
	// its shape.
	Transform(fn func(any) any) Wrapper

	// Call invokes an operation registered for this shape with [RegisterOp].
	Call(name string, args ...any) (Wrapper, error)

	String() string
}

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────────────────────────────────────

// TryLift wraps x in the operations object matching its shape. A Wrapper is
// returned unchanged. Unsupported shapes, including nil and Option values,
// yield [ErrUnsupportedShape].
func TryLift(x any) (Wrapper, error) {
	switch Classify(x) {
	case KindWrapped:
		return x.(Wrapper), nil
	case KindArray:
		return &ArrayOps{items: toItems(x)}, nil
	case KindDate:
		return &DateOps{t: x.(time.Time)}, nil
	case KindString:
		return &StringOps{s: toString(x)}, nil
	case KindObject:
		return &ObjectOps{d: toDict(x)}, nil
	case KindNumber:
		return &NumberOps{n: x}, nil
	case KindBool:
		return &BoolOps{b: reflect.ValueOf(x).Bool()}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, x)
}

// Lift is like [TryLift] but panics on unsupported shapes.
//
//	lift.Lift([]any{1, 2}).(*lift.ArrayOps)
//	lift.Lift("text").(*lift.StringOps)
func Lift(x any) Wrapper {
	w, err := TryLift(x)
	if err != nil {
		tracer().Errorf("cannot lift value: %v", err)
		panic(err)
	}
	return w
}

// Array lifts a sequence-shaped value (any slice or array, or an *ArrayOps).
// It panics with [ErrUnsupportedShape] for any other shape.
func Array(x any) *ArrayOps {
	a, ok := Lift(x).(*ArrayOps)
	if !ok {
		panic(shapeError(x, KindArray))
	}
	return a
}

// Of wraps items as an array. The variadic slice is held, not copied.
func Of(items ...any) *ArrayOps {
	if items == nil {
		items = []any{}
	}
	return &ArrayOps{items: items}
}

// Object lifts a mapping-shaped value (*dict.Dict, string-keyed map or an
// *ObjectOps). It panics with [ErrUnsupportedShape] for any other shape.
func Object(x any) *ObjectOps {
	o, ok := Lift(x).(*ObjectOps)
	if !ok {
		panic(shapeError(x, KindObject))
	}
	return o
}

// Text wraps s.
func Text(s string) *StringOps { return &StringOps{s: s} }

// Date wraps t.
func Date(t time.Time) *DateOps { return &DateOps{t: t} }

// Number lifts a numeric value. It panics with [ErrUnsupportedShape] for
// any other shape.
func Number(n any) *NumberOps {
	o, ok := Lift(n).(*NumberOps)
	if !ok {
		panic(shapeError(n, KindNumber))
	}
	return o
}

func shapeError(x any, want Kind) error {
	err := fmt.Errorf("%w: %T is not %s-shaped", ErrUnsupportedShape, x, want)
	tracer().Errorf("%v", err)
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// Re-lifting of callback results
// ─────────────────────────────────────────────────────────────────────────────

type resultKind int

const (
	resultRaw resultKind = iota
	resultMaybe
	resultWrapped
)

// callbackResult is what a user callback handed back, classified once.
type callbackResult struct {
	kind resultKind
	raw  any
	opt  option.Option
}

func normalize(v any) callbackResult {
	switch r := v.(type) {
	case Wrapper:
		return callbackResult{kind: resultWrapped, raw: r.Value()}
	case option.Option:
		return callbackResult{kind: resultMaybe, opt: r}
	}
	return callbackResult{kind: resultRaw, raw: v}
}

// element is the value stored when the result occupies a single slot.
func (r callbackResult) element() any {
	if r.kind == resultMaybe {
		return r.opt
	}
	return r.raw
}

// spread is the run of values the result contributes to a flattened
// sequence: Some → one, None → zero, sequences → their elements.
func (r callbackResult) spread() []any {
	if r.kind == resultMaybe {
		return r.opt.ToSlice()
	}
	if Classify(r.raw) == KindArray {
		return toItems(r.raw)
	}
	return []any{r.raw}
}

// ─────────────────────────────────────────────────────────────────────────────
// Raw shape conversion
// ─────────────────────────────────────────────────────────────────────────────

// mustItems returns the elements of a sequence-shaped value or wrapper.
func mustItems(x any) []any {
	raw := normalize(x).raw
	if Classify(raw) != KindArray {
		panic(shapeError(x, KindArray))
	}
	return toItems(raw)
}

func toItems(x any) []any {
	if items, ok := x.([]any); ok {
		return items
	}
	rv := reflect.ValueOf(x)
	tracer().Debugf("converting %T to []any", x)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func toString(x any) string {
	if s, ok := x.(string); ok {
		return s
	}
	return reflect.ValueOf(x).String()
}

func toDict(x any) *dict.Dict {
	switch m := x.(type) {
	case *dict.Dict:
		if m == nil {
			return dict.New()
		}
		return m
	case map[string]any:
		return dict.FromMap(m)
	}
	rv := reflect.ValueOf(x)
	tracer().Debugf("converting %T to *dict.Dict", x)
	plain := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		plain[iter.Key().String()] = iter.Value().Interface()
	}
	return dict.FromMap(plain)
}
