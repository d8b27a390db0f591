// Package ast defines the node tree shared by the MINT parser and
// formatter. A document always resolves to exactly one root node.
package ast

// Node is the base interface for all MINT value nodes.
type Node interface {
	// Pos returns the 1-based source line the node started on,
	// or 0 for nodes synthesized by the encoder.
	Pos() int
	node()
}

// Null represents the null value.
type Null struct {
	Line int
}

// Boolean represents a true or false value.
type Boolean struct {
	Line  int
	Value bool
}

// Number represents a numeric value. MINT numbers are float64,
// matching the JSON data model.
type Number struct {
	Line  int
	Value float64
}

// String represents a text value. Value holds the unescaped text.
type String struct {
	Line  int
	Value string
}

// Array represents an ordered sequence of values.
type Array struct {
	Line     int
	Elements []Node
}

// Object represents an ordered key/value mapping. Pair order is
// insertion order and is preserved through encode and decode.
type Object struct {
	Line  int
	Pairs []*Pair
}

// Pair is a single key/value entry in an Object. MINT keys are plain
// unquoted strings.
type Pair struct {
	Line  int
	Key   string
	Value Node
}

func (n *Null) Pos() int    { return n.Line }
func (n *Boolean) Pos() int { return n.Line }
func (n *Number) Pos() int  { return n.Line }
func (n *String) Pos() int  { return n.Line }
func (n *Array) Pos() int   { return n.Line }
func (n *Object) Pos() int  { return n.Line }

func (n *Null) node()    {}
func (n *Boolean) node() {}
func (n *Number) node()  {}
func (n *String) node()  {}
func (n *Array) node()   {}
func (n *Object) node()  {}

// Get returns the value for key, or nil if the key is absent.
func (o *Object) Get(key string) (Node, bool) {
	for _, p := range o.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of an existing key in place, or appends a new
// pair if the key is absent.
func (o *Object) Set(key string, value Node) {
	for _, p := range o.Pairs {
		if p.Key == key {
			p.Value = value
			return
		}
	}
	o.Pairs = append(o.Pairs, &Pair{Key: key, Value: value})
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Pairs))
	for i, p := range o.Pairs {
		keys[i] = p.Key
	}
	return keys
}
