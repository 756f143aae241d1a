package lift

import (
	"fmt"
	"reflect"
	"time"

	"github.com/denis-mludek/spacelift/dict"
)

// Kind is the shape a raw value is classified as.
type Kind int

const (
	KindInvalid Kind = iota
	KindArray
	KindObject
	KindString
	KindDate
	KindNumber
	KindBool
	KindWrapped
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindArray:   "array",
	KindObject:  "object",
	KindString:  "string",
	KindDate:    "date",
	KindNumber:  "number",
	KindBool:    "bool",
	KindWrapped: "wrapped",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Classify returns the shape of x. The first matching rule wins: wrapper,
// sequence, date, text, mapping, number, bool.
func Classify(x any) Kind {
	switch x.(type) {
	case nil:
		return KindInvalid
	case Wrapper:
		return KindWrapped
	case []any:
		return KindArray
	case time.Time:
		return KindDate
	case string:
		return KindString
	case *dict.Dict, map[string]any:
		return KindObject
	case bool:
		return KindBool
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.String:
		return KindString
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Bool:
		return KindBool
	}
	return KindInvalid
}
