// Package document models a JSON document as a closed set of value types.
// Objects keep the order in which their keys were added so that a document
// can be written back out in a stable order.
package document

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is any JSON value. The set of implementations is closed: *Object,
// Array, String, Number, Bool and Null.
type Value interface {
	Kind() Kind
	value()
}

// Array is a JSON array. Arrays are leaves for merge purposes.
type Array []Value

// String is a JSON string.
type String string

// Number is a JSON number kept as the decimal text it was written with.
type Number string

// Bool is a JSON boolean.
type Bool bool

// Null is the JSON null value.
type Null struct{}

func (Array) Kind() Kind  { return KindArray }
func (String) Kind() Kind { return KindString }
func (Number) Kind() Kind { return KindNumber }
func (Bool) Kind() Kind   { return KindBool }
func (Null) Kind() Kind   { return KindNull }

func (Array) value()  {}
func (String) value() {}
func (Number) value() {}
func (Bool) value()   {}
func (Null) value()   {}

// KindOf returns the kind of v, treating a nil Value as null
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// AsObject returns v as an object if it is one
func AsObject(v Value) (*Object, bool) {
	obj, ok := v.(*Object)
	return obj, ok && obj != nil
}

// IsObject reports whether v is a JSON object
func IsObject(v Value) bool {
	_, ok := AsObject(v)
	return ok
}
