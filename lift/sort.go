package lift

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale used by LocaleCompare sorts when
// SortOptions.Locale is left empty.
var DefaultLocale = language.English

// SortOptions configures [ArrayOps.Sort]. The zero value sorts elements
// ascending by themselves with ordinal string comparison.
type SortOptions struct {
	// By projects each element to the key it is sorted by. Called once per
	// element.
	By func(any) any

	// Reverse sorts descending. Elements with equal keys keep their
	// original relative order.
	Reverse bool

	// IgnoreCase case-folds string keys before comparing.
	IgnoreCase bool

	// LocaleCompare compares string keys with locale-aware collation
	// instead of byte order.
	LocaleCompare bool

	// Locale selects the collation. A non-empty Locale implies
	// LocaleCompare; empty means DefaultLocale.
	Locale language.Tag
}

type sortEntry struct {
	key  any
	item any
}

// Sort returns a stably sorted copy of the elements, configured by opts[0].
//
// Numbers compare numerically across Go numeric kinds, strings by byte order
// unless IgnoreCase or LocaleCompare is set, times chronologically. Elements
// whose key is absent, false, "" or NaN are placed after all others in
// their original order and are never compared; numeric zero sorts normally.
// Keys of kinds that cannot be ordered against each other make Sort panic
// with [ErrIncomparable].
func (a *ArrayOps) Sort(opts ...SortOptions) *ArrayOps {
	var o SortOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return &ArrayOps{items: sortItems(a.items, o)}
}

func sortItems(items []any, o SortOptions) []any {
	by := o.By
	if by == nil {
		by = func(item any) any { return item }
	}
	prepare, compareText := o.textOrder()

	ranked := make([]sortEntry, 0, len(items))
	tail := make([]any, 0)
	for _, item := range items {
		k := sortKey(normalize(by(item)).element())
		if isTailKey(k) {
			tail = append(tail, item)
			continue
		}
		if s, ok := k.(string); ok {
			k = prepare(s)
		}
		ranked = append(ranked, sortEntry{key: k, item: item})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		c := compareKeys(ranked[i].key, ranked[j].key, compareText)
		if o.Reverse {
			return c > 0
		}
		return c < 0
	})

	out := make([]any, 0, len(items))
	for _, e := range ranked {
		out = append(out, e.item)
	}
	return append(out, tail...)
}

// textOrder returns the per-key string preparation and the string
// comparison selected by o.
func (o SortOptions) textOrder() (func(string) string, func(a, b string) int) {
	keep := func(s string) string { return s }
	if o.LocaleCompare || o.Locale != language.Und {
		tag := o.Locale
		if tag == language.Und {
			tag = DefaultLocale
		}
		var copts []collate.Option
		if o.IgnoreCase {
			copts = append(copts, collate.IgnoreCase)
		}
		tracer().Debugf("sorting with %s collation (ignore case: %v)", tag, o.IgnoreCase)
		return keep, collate.New(tag, copts...).CompareString
	}
	if o.IgnoreCase {
		fold := cases.Fold()
		return func(s string) string { return fold.String(s) }, strings.Compare
	}
	return keep, strings.Compare
}

// sortKey converts named string types to string so they share string
// ordering.
func sortKey(k any) any {
	if _, ok := k.(string); ok {
		return k
	}
	if rv := reflect.ValueOf(k); rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String()
	}
	return k
}

func compareKeys(a, b any, compareText func(a, b string) int) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return compareText(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return compareBools(x, y)
		}
	}
	if x, ok := asNumber(a); ok {
		if y, ok := asNumber(b); ok {
			return x.compare(y)
		}
	}
	err := fmt.Errorf("%w: %T and %T", ErrIncomparable, a, b)
	tracer().Errorf("%v", err)
	panic(err)
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}
