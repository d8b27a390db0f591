package mint

import (
	"encoding"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/mint-format/go-mint/internal/ast"
	"github.com/mint-format/go-mint/internal/lexer"
	"github.com/mint-format/go-mint/internal/parser"
)

// Encoder writes MINT values to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the MINT encoding of v to the stream.
//
// The value tree must be acyclic; nesting beyond the configured
// MaxDepth is reported as an error.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	es := &encodeState{opts: &o}
	node, err := es.marshalValue(reflect.ValueOf(v), o.maxDepth)
	if err != nil {
		return err
	}

	f := newFormatter(e.w, &o)
	return f.format(node)
}

type encodeState struct {
	opts *options
}

// marshalCustom re-parses the output of a MarshalMINT method so it can
// be grafted into the value tree being built.
func (e *encodeState) marshalCustom(v reflect.Value, m Marshaler) (ast.Node, error) {
	b, err := m.MarshalMINT()
	if err != nil {
		return nil, &MarshalerError{Type: v.Type(), Err: err}
	}

	p := parser.New(lexer.Scan(b), parser.Config{Strict: true, IndentUnit: e.opts.indent})
	node := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, &MarshalerError{
			Type: v.Type(),
			Err:  fmt.Errorf("invalid MINT output: %s", errs[0].Message),
		}
	}
	if node == nil {
		// An empty document from a custom marshaler is treated as null.
		return &ast.Null{}, nil
	}
	return node, nil
}

// parseTag splits a mint struct tag into its name and options.
func parseTag(tag string) (string, map[string]bool) {
	parts := strings.Split(tag, ",")
	name := parts[0]
	options := make(map[string]bool)
	for _, part := range parts[1:] {
		options[strings.TrimSpace(part)] = true
	}
	return name, options
}

// isEmptyValue reports whether the value v is empty.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

func (e *encodeState) marshalValue(v reflect.Value, depth int) (ast.Node, error) { //nolint:gocyclo
	if depth <= 0 {
		return nil, fmt.Errorf("mint: exceeded max depth of %d while encoding", e.opts.maxDepth)
	}

	// Handle nil interfaces explicitly to avoid panics.
	if !v.IsValid() || (v.Kind() == reflect.Interface && v.IsNil()) {
		return &ast.Null{}, nil
	}

	// Follow pointers and interfaces to find the concrete value.
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return &ast.Null{}, nil
		}
		v = v.Elem()
	}

	// Check for custom Marshaler and encoding.TextMarshaler
	// implementations. We must check the value itself and a pointer to
	// the value, to handle both value and pointer receivers.
	if v.Type().NumMethod() > 0 && v.CanInterface() {
		if node, ok, err := e.tryCustomMarshal(v); ok {
			return node, err
		}
	}
	{
		var pv reflect.Value
		if v.CanAddr() {
			pv = v.Addr()
		} else {
			// For non-addressable values (like struct literals),
			// create a pointer to a copy to check for the interface.
			pv = reflect.New(v.Type())
			pv.Elem().Set(v)
		}
		if pv.Type().NumMethod() > 0 && pv.CanInterface() {
			if node, ok, err := e.tryCustomMarshal(pv); ok {
				return node, err
			}
		}
	}

	// Ordered mappings keep their insertion order.
	if v.Type() == reflect.TypeOf(Object(nil)) {
		return e.marshalOrdered(v.Interface().(Object), depth)
	}

	switch v.Kind() {
	case reflect.String:
		return &ast.String{Value: v.String()}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &ast.Number{Value: float64(v.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return &ast.Number{Value: float64(v.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return &ast.Number{Value: v.Float()}, nil
	case reflect.Bool:
		return &ast.Boolean{Value: v.Bool()}, nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return &ast.Null{}, nil
		}
		elements := make([]ast.Node, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := e.marshalValue(v.Index(i), depth-1)
			if err != nil {
				return nil, err
			}
			elements[i] = elem
		}
		return &ast.Array{Elements: elements}, nil
	case reflect.Map:
		return e.marshalMap(v, depth)
	case reflect.Struct:
		return e.marshalStruct(v, depth)
	default:
		return nil, fmt.Errorf("mint: unsupported type for marshaling: %s", v.Type())
	}
}

// tryCustomMarshal checks v for a Marshaler or TextMarshaler
// implementation. The second return value reports whether one was
// found and used.
func (e *encodeState) tryCustomMarshal(v reflect.Value) (ast.Node, bool, error) {
	if !v.CanInterface() {
		return nil, false, nil
	}
	switch m := v.Interface().(type) {
	case Marshaler:
		node, err := e.marshalCustom(v, m)
		return node, true, err
	case encoding.TextMarshaler:
		text, err := m.MarshalText()
		if err != nil {
			return nil, true, &MarshalerError{Type: v.Type(), Err: err}
		}
		return &ast.String{Value: string(text)}, true, nil
	}
	return nil, false, nil
}

// marshalOrdered encodes a mint.Object, preserving member order.
func (e *encodeState) marshalOrdered(o Object, depth int) (ast.Node, error) {
	if o == nil {
		return &ast.Null{}, nil
	}
	obj := &ast.Object{Pairs: make([]*ast.Pair, 0, len(o))}
	for _, m := range o {
		node, err := e.marshalValue(reflect.ValueOf(m.Value), depth-1)
		if err != nil {
			return nil, err
		}
		obj.Set(m.Key, node)
	}
	return obj, nil
}

// marshalMap encodes a Go map with its keys sorted, so output is
// deterministic.
func (e *encodeState) marshalMap(v reflect.Value, depth int) (ast.Node, error) {
	if v.IsNil() {
		return &ast.Null{}, nil
	}
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("mint: map key type must be a string, got %s", v.Type().Key())
	}

	keys := make([]string, 0, v.Len())
	for _, key := range v.MapKeys() {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)

	obj := &ast.Object{Pairs: make([]*ast.Pair, 0, len(keys))}
	for _, key := range keys {
		node, err := e.marshalValue(v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key())), depth-1)
		if err != nil {
			return nil, err
		}
		obj.Pairs = append(obj.Pairs, &ast.Pair{Key: key, Value: node})
	}
	return obj, nil
}

func (e *encodeState) marshalStruct(v reflect.Value, depth int) (ast.Node, error) {
	t := v.Type()
	obj := &ast.Object{Pairs: make([]*ast.Pair, 0, v.NumField())}

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tagName, opts := parseTag(field.Tag.Get("mint"))
		if tagName == "-" {
			continue
		}
		if opts["omitempty"] && isEmptyValue(fieldValue) {
			continue
		}

		key := field.Name
		if tagName != "" {
			key = tagName
		}

		node, err := e.marshalValue(fieldValue, depth-1)
		if err != nil {
			return nil, err
		}
		obj.Pairs = append(obj.Pairs, &ast.Pair{Key: key, Value: node})
	}
	return obj, nil
}
