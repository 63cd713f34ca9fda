package document

import "slices"

// Object is a JSON object whose keys keep their insertion order.
// The zero value is an empty object ready to use.
type Object struct {
	keys   []string
	fields map[string]Value
}

// NewObject creates an empty object
func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) value()     {}

// Len returns the number of keys in the object
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the object's keys in order. The slice is a copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the value stored under key
func (o *Object) Get(key string) (Value, bool) {
	if o == nil || o.fields == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Has reports whether key is present
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position and has its value replaced.
func (o *Object) Set(key string, value Value) {
	if value == nil {
		value = Null{}
	}
	if o.fields == nil {
		o.fields = make(map[string]Value)
	}
	if _, exists := o.fields[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = value
}

// Delete removes key from the object if present
func (o *Object) Delete(key string) {
	if _, ok := o.Get(key); !ok {
		return
	}
	delete(o.fields, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = slices.Delete(o.keys, i, i+1)
			break
		}
	}
}

// Range calls fn for each entry in order until fn returns false
func (o *Object) Range(fn func(key string, value Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.fields[k]) {
			return
		}
	}
}

// Clone returns a shallow copy: a new object holding the same values.
func (o *Object) Clone() *Object {
	clone := &Object{
		keys:   make([]string, 0, o.Len()),
		fields: make(map[string]Value, o.Len()),
	}
	o.Range(func(k string, v Value) bool {
		clone.keys = append(clone.keys, k)
		clone.fields[k] = v
		return true
	})
	return clone
}

// DeepCopy returns a copy that shares no objects or arrays with o
func (o *Object) DeepCopy() *Object {
	clone := NewObject()
	o.Range(func(k string, v Value) bool {
		clone.Set(k, DeepCopy(v))
		return true
	})
	return clone
}

// DeepCopy copies any value, recursing into objects and arrays
func DeepCopy(v Value) Value {
	switch val := v.(type) {
	case *Object:
		return val.DeepCopy()
	case Array:
		arr := make(Array, len(val))
		for i, item := range val {
			arr[i] = DeepCopy(item)
		}
		return arr
	default:
		return v
	}
}
