package document

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"
)

// Equal reports whether a and b are structurally equal. Object key order is
// ignored; array order is not. Numbers compare by numeric value.
func Equal(a, b Value) bool {
	if KindOf(a) != KindOf(b) {
		return false
	}
	switch av := a.(type) {
	case *Object:
		bv := b.(*Object)
		if av.Len() != bv.Len() {
			return false
		}
		equal := true
		av.Range(func(k string, v Value) bool {
			other, ok := bv.Get(k)
			equal = ok && Equal(v, other)
			return equal
		})
		return equal
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Number:
		return numbersEqual(av, b.(Number))
	case nil, Null:
		return true
	default:
		return a == b
	}
}

func numbersEqual(a, b Number) bool {
	if a == b {
		return true
	}
	af, _, errA := big.ParseFloat(string(a), 10, 256, big.ToNearestEven)
	bf, _, errB := big.ParseFloat(string(b), 10, 256, big.ToNearestEven)
	if errA != nil || errB != nil {
		return false
	}
	return af.Cmp(bf) == 0
}

// FromGo converts a value produced by encoding/json (or a literal built from
// maps, slices and scalars) into a Value. Map keys are added in sorted order.
func FromGo(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case json.Number:
		return Number(val.String()), nil
	case int:
		return Number(strconv.Itoa(val)), nil
	case int64:
		return Number(strconv.FormatInt(val, 10)), nil
	case float64:
		return Number(strconv.FormatFloat(val, 'g', -1, 64)), nil
	case []any:
		arr := make(Array, len(val))
		for i, item := range val {
			converted, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			arr[i] = converted
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			converted, err := FromGo(val[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, converted)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
}

// MustFromGo is like FromGo but panics on unsupported types
func MustFromGo(v any) Value {
	converted, err := FromGo(v)
	if err != nil {
		panic(err)
	}
	return converted
}

// ToGo converts a Value into plain Go values: map[string]any, []any,
// string, json.Number, bool and nil.
func ToGo(v Value) any {
	switch val := v.(type) {
	case *Object:
		m := make(map[string]any, val.Len())
		val.Range(func(k string, item Value) bool {
			m[k] = ToGo(item)
			return true
		})
		return m
	case Array:
		arr := make([]any, len(val))
		for i, item := range val {
			arr[i] = ToGo(item)
		}
		return arr
	case String:
		return string(val)
	case Number:
		return json.Number(val)
	case Bool:
		return bool(val)
	default:
		return nil
	}
}
