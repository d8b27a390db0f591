package mint

// Object is an ordered key/value mapping. Unlike a Go map it preserves
// insertion order, which MINT encoding respects unless SortKeys is set.
// Unmarshaling into *any produces Object values for every MINT object,
// so a decode/encode round trip keeps keys in their original order.
type Object []Member

// Member is a single key/value entry in an Object.
type Member struct {
	Key   string
	Value any
}

// Array is an ordered sequence of values. Unmarshaling into *any
// produces Array values for every MINT array.
type Array []any

// Get returns the value for key and whether the key is present.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether the key is present.
func (o Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set replaces the value of an existing key in place, or appends a new
// member, and returns the updated Object.
func (o Object) Set(key string, value any) Object {
	for i, m := range o {
		if m.Key == key {
			o[i].Value = value
			return o
		}
	}
	return append(o, Member{Key: key, Value: value})
}

// Keys returns the object's keys in insertion order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}
