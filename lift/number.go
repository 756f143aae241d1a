package lift

import "fmt"

// NumberOps wraps a value of any Go numeric kind, unchanged.
type NumberOps struct {
	n any
}

// Kind returns [KindNumber].
func (n *NumberOps) Kind() Kind { return KindNumber }

// Value returns the wrapped number with its original Go type.
func (n *NumberOps) Value() any { return n.n }

// Transform applies fn to the raw number and lifts the result.
func (n *NumberOps) Transform(fn func(any) any) Wrapper { return Lift(fn(n.n)) }

// String formats the number in shortest decimal form.
func (n *NumberOps) String() string { return KeyString(n.n) }

// Call invokes a registered number operation.
func (n *NumberOps) Call(name string, args ...any) (Wrapper, error) {
	return Call(n, name, args...)
}

// Float returns the value as float64.
func (n *NumberOps) Float() float64 {
	v, _ := asNumber(n.n)
	return v.float()
}

// Int returns the value as int, truncating fractions.
func (n *NumberOps) Int() int {
	v, _ := asNumber(n.n)
	switch v.class {
	case numSigned:
		return int(v.i)
	case numUnsigned:
		return int(v.u)
	}
	return int(v.f)
}

// IsZero reports whether the value is zero.
func (n *NumberOps) IsZero() bool {
	v, _ := asNumber(n.n)
	return v.isZero()
}

// BoolOps wraps a bool.
type BoolOps struct {
	b bool
}

// Kind returns [KindBool].
func (b *BoolOps) Kind() Kind { return KindBool }

// Value returns the wrapped bool.
func (b *BoolOps) Value() any { return b.b }

// Bool returns the wrapped bool, typed.
func (b *BoolOps) Bool() bool { return b.b }

// Not returns the negation.
func (b *BoolOps) Not() *BoolOps { return &BoolOps{b: !b.b} }

// Transform applies fn to the raw bool and lifts the result.
func (b *BoolOps) Transform(fn func(any) any) Wrapper { return Lift(fn(b.b)) }

// String returns "true" or "false".
func (b *BoolOps) String() string { return fmt.Sprint(b.b) }

// Call invokes a registered bool operation.
func (b *BoolOps) Call(name string, args ...any) (Wrapper, error) {
	return Call(b, name, args...)
}
