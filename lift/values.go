package lift

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/denis-mludek/spacelift/option"
)

// ─────────────────────────────────────────────────────────────────────────────
// Truthiness
// ─────────────────────────────────────────────────────────────────────────────

// IsFalsy reports whether v is removed by Compact: an absent value (see
// [option.IsAbsent]), false, "", a numeric zero or NaN.
func IsFalsy(v any) bool {
	if option.IsAbsent(v) {
		return true
	}
	switch t := v.(type) {
	case bool:
		return !t
	case string:
		return t == ""
	}
	if n, ok := asNumber(v); ok {
		return n.isZero() || n.isNaN()
	}
	return false
}

// isTailKey reports whether a sort key belongs after every comparable key:
// falsy values except numeric zero.
func isTailKey(v any) bool {
	if !IsFalsy(v) {
		return false
	}
	if n, ok := asNumber(v); ok {
		return n.isNaN()
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Numbers
// ─────────────────────────────────────────────────────────────────────────────

type numClass int

const (
	numSigned numClass = iota
	numUnsigned
	numFloat
)

// number is a numeric value of any Go kind, kept without loss.
type number struct {
	class numClass
	i     int64
	u     uint64
	f     float64
}

func asNumber(v any) (number, bool) {
	switch t := v.(type) {
	case int:
		return number{class: numSigned, i: int64(t)}, true
	case float64:
		return number{class: numFloat, f: t}, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{class: numSigned, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{class: numUnsigned, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{class: numFloat, f: rv.Float()}, true
	}
	return number{}, false
}

func (n number) float() float64 {
	switch n.class {
	case numSigned:
		return float64(n.i)
	case numUnsigned:
		return float64(n.u)
	}
	return n.f
}

func (n number) isZero() bool { return n.float() == 0 }
func (n number) isNaN() bool  { return n.class == numFloat && math.IsNaN(n.f) }

func (n number) compare(m number) int {
	switch {
	case n.class == numSigned && m.class == numSigned:
		return cmp.Compare(n.i, m.i)
	case n.class == numUnsigned && m.class == numUnsigned:
		return cmp.Compare(n.u, m.u)
	case n.class == numSigned && m.class == numUnsigned:
		if n.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(n.i), m.u)
	case n.class == numUnsigned && m.class == numSigned:
		return -m.compare(n)
	}
	return cmp.Compare(n.float(), m.float())
}

func (n number) String() string {
	switch n.class {
	case numSigned:
		return strconv.FormatInt(n.i, 10)
	case numUnsigned:
		return strconv.FormatUint(n.u, 10)
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

// ─────────────────────────────────────────────────────────────────────────────
// Keys
// ─────────────────────────────────────────────────────────────────────────────

// KeyString is the stringification used for object keys by GroupBy and
// ToSet: strings as is, numbers in shortest decimal form, times as RFC 3339,
// nil as "null", fmt.Stringer values through String.
func KeyString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	}
	if n, ok := asNumber(v); ok {
		return n.String()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}

// fingerprint stands in for a Distinct key whose dynamic type cannot be used
// as a map key. It is a distinct type, so it never equals a user key.
type fingerprint [blake2b.Size256]byte

// nanKey stands in for a NaN Distinct key, which would never equal itself
// as a map key. NaNs of different float types stay apart.
type nanKey struct{ t reflect.Type }

// distinctKey maps k to a value usable as a map key. Keys of different
// dynamic types stay different ("7" vs 7).
func distinctKey(k any) any {
	if n, ok := asNumber(k); ok && n.isNaN() {
		return nanKey{t: reflect.TypeOf(k)}
	}
	if hashable(k) {
		return k
	}
	return fingerprint(blake2b.Sum256(fmt.Appendf(nil, "%T|%#v", k, k)))
}

func hashable(k any) (ok bool) {
	switch k.(type) {
	case nil, string, bool, int, int64, float64:
		return true
	}
	t := reflect.TypeOf(k)
	if !t.Comparable() {
		return false
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Array, reflect.Interface:
		// may hold an uncomparable value in an interface field
	default:
		return true
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[any]struct{}{k: {}}
	return true
}
