package ast

// Shape is the encoder-side classification of an array. It decides
// whether the array renders as an empty marker, an inline
// comma-separated list, a pipe-delimited table, or a dash list.
type Shape int

const (
	// ShapeEmpty is an array with no elements.
	ShapeEmpty Shape = iota
	// ShapeInline is an array containing only primitive values.
	ShapeInline
	// ShapeTable is a non-empty array of objects sharing an identical
	// key set with exclusively primitive values.
	ShapeTable
	// ShapeMixed is every other array.
	ShapeMixed
)

// IsPrimitive reports whether n is a null, boolean, number or string.
func IsPrimitive(n Node) bool {
	switch n.(type) {
	case *Null, *Boolean, *Number, *String:
		return true
	}
	return false
}

// Classify inspects an array's elements and returns its Shape. It is a
// pure function of the value tree; the same classification is applied
// at every array site, not just the root.
func Classify(a *Array) Shape {
	if len(a.Elements) == 0 {
		return ShapeEmpty
	}
	inline := true
	for _, e := range a.Elements {
		if !IsPrimitive(e) {
			inline = false
			break
		}
	}
	if inline {
		return ShapeInline
	}
	if tableEligible(a) {
		return ShapeTable
	}
	return ShapeMixed
}

// tableEligible reports whether every element is an object, every
// object has the same key set (order-independent), and every value in
// every object is primitive.
func tableEligible(a *Array) bool {
	first, ok := a.Elements[0].(*Object)
	if !ok {
		return false
	}
	keys := make(map[string]struct{}, len(first.Pairs))
	for _, p := range first.Pairs {
		keys[p.Key] = struct{}{}
	}
	for _, e := range a.Elements {
		obj, ok := e.(*Object)
		if !ok {
			return false
		}
		if len(obj.Pairs) != len(keys) {
			return false
		}
		for _, p := range obj.Pairs {
			if _, ok := keys[p.Key]; !ok {
				return false
			}
			if !IsPrimitive(p.Value) {
				return false
			}
		}
	}
	return true
}

// TableColumns returns the header for a table-eligible array: the keys
// of the first element, in that element's order.
func TableColumns(a *Array) []string {
	first, ok := a.Elements[0].(*Object)
	if !ok {
		return nil
	}
	return first.Keys()
}
