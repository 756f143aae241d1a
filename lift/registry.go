package lift

import (
	"fmt"
	"sync"
)

// OpFunc is the signature of an operation registered with [RegisterOp].
//
// The receiver is passed as a Wrapper; type-assert it to the concrete
// operations type of the shape the op was registered for. The result is
// lifted, so an OpFunc may return a raw value or another Wrapper.
type OpFunc func(w Wrapper, args ...any) any

type opKey struct {
	kind Kind
	name string
}

// opRegistry is the package-level, goroutine-safe operation store.
var opRegistry struct {
	mu  sync.RWMutex
	ops map[opKey]OpFunc
}

func init() {
	opRegistry.ops = make(map[opKey]OpFunc)
}

// RegisterOp attaches a named operation to every wrapper of the given
// shape. An operation already registered under that name is replaced.
//
//	lift.RegisterOp(lift.KindArray, "sum", func(w lift.Wrapper, _ ...any) any {
//	    return w.(*lift.ArrayOps).Fold(0, func(acc, n any) any {
//	        return acc.(int) + n.(int)
//	    })
//	})
//
//	res, _ := lift.Of(1, 2, 3).Call("sum") // *NumberOps(6)
func RegisterOp(kind Kind, name string, fn OpFunc) {
	opRegistry.mu.Lock()
	defer opRegistry.mu.Unlock()
	tracer().Debugf("registering %s operation %q", kind, name)
	opRegistry.ops[opKey{kind, name}] = fn
}

// HasOp reports whether an operation is registered for the shape.
func HasOp(kind Kind, name string) bool {
	opRegistry.mu.RLock()
	defer opRegistry.mu.RUnlock()
	_, ok := opRegistry.ops[opKey{kind, name}]
	return ok
}

// FlushOps removes all registered operations.
// Intended for use in tests.
func FlushOps() {
	opRegistry.mu.Lock()
	defer opRegistry.mu.Unlock()
	opRegistry.ops = make(map[opKey]OpFunc)
}

// Call invokes the operation registered under name for the shape of w and
// lifts its result. It returns [ErrOpNotFound] for unknown names and
// [ErrUnsupportedShape] when the result cannot be lifted.
func Call(w Wrapper, name string, args ...any) (Wrapper, error) {
	opRegistry.mu.RLock()
	fn, ok := opRegistry.ops[opKey{w.Kind(), name}]
	opRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s.%q", ErrOpNotFound, w.Kind(), name)
	}
	return TryLift(normalize(fn(w, args...)).raw)
}
