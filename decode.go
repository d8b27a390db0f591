package mint

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/mint-format/go-mint/internal/ast"
	"github.com/mint-format/go-mint/internal/lexer"
	"github.com/mint-format/go-mint/internal/parser"
)

// Decoder reads and decodes MINT values from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder may buffer data from r as necessary. It is the caller's
// responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the MINT-encoded value from its input and stores it in
// the value pointed to by v. If v is nil or not a pointer, Decode
// returns an error.
//
// With the Strict option, syntax errors are returned as a ParseErrors
// value.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return fmt.Errorf("mint: Decode(nil reader)")
	}
	o, err := newOptions(d.opts)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}

	p := parser.New(lexer.Scan(data), parser.Config{
		Strict:     o.strict,
		IndentUnit: o.indent,
	})
	root := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		pe := make(ParseErrors, len(errs))
		for i, e := range errs {
			pe[i] = ParseError{Line: e.Line, Column: e.Column, Message: e.Message}
		}
		return pe
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("mint: Unmarshal(non-pointer %T or nil)", v)
	}
	if root == nil {
		// Empty document: leave the target untouched.
		return nil
	}

	ds := &decodeState{depth: o.maxDepth, opts: &o}
	return ds.mapValue(root, rv.Elem())
}

type decodeState struct {
	depth int
	opts  *options
}

func (ds *decodeState) mapValue(node ast.Node, rv reflect.Value) error { //nolint:gocyclo
	ds.depth--
	if ds.depth <= 0 {
		return fmt.Errorf("mint: reached max recursion depth")
	}
	defer func() { ds.depth++ }()

	if _, isNull := node.(*ast.Null); isNull {
		switch rv.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice:
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
	}

	// Attempt a custom unmarshaler at every level of pointer
	// indirection, so both T and *T receivers are honored.
	for {
		handled, err := ds.tryCustomUnmarshal(node, rv)
		if handled || err != nil {
			return err
		}
		if rv.Kind() != reflect.Pointer {
			break
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	if rv.Kind() == reflect.Interface {
		return ds.mapInterface(node, rv)
	}
	if !rv.CanSet() {
		return fmt.Errorf("mint: cannot set value of type %s", rv.Type())
	}

	switch n := node.(type) {
	case *ast.Null:
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	case *ast.String:
		return ds.mapString(n, rv)
	case *ast.Number:
		return ds.mapNumber(n, rv)
	case *ast.Boolean:
		return ds.mapBool(n, rv)
	case *ast.Array:
		switch rv.Kind() {
		case reflect.Slice:
			return ds.mapSlice(n, rv)
		case reflect.Array:
			return ds.mapArray(n, rv)
		default:
			return fmt.Errorf("mint: cannot unmarshal array into Go value of type %s", rv.Type())
		}
	case *ast.Object:
		switch rv.Kind() {
		case reflect.Struct:
			return ds.mapStruct(n, rv)
		case reflect.Map:
			return ds.mapMap(n, rv)
		default:
			return fmt.Errorf("mint: cannot unmarshal object into Go value of type %s", rv.Type())
		}
	default:
		return fmt.Errorf("mint: mapping for node type %T not implemented", n)
	}
}

// tryCustomUnmarshal attempts to use a custom unmarshaler
// (mint.Unmarshaler or encoding.TextUnmarshaler) on the given
// reflect.Value. It returns true if a custom unmarshaler was found and
// used, in which case the caller should not proceed with default
// unmarshaling.
func (ds *decodeState) tryCustomUnmarshal(node ast.Node, rv reflect.Value) (bool, error) {
	if !rv.CanAddr() {
		return false, nil
	}
	pv := rv.Addr()
	if !pv.CanInterface() {
		return false, nil
	}

	if u, ok := pv.Interface().(Unmarshaler); ok {
		// Re-encode the subtree so the unmarshaler sees MINT text.
		var buf bytes.Buffer
		f := newFormatter(&buf, &options{indent: defaultIndent, compact: ds.opts.compact})
		if err := f.format(node); err != nil {
			return true, fmt.Errorf("mint: failed to re-marshal node for custom unmarshaler: %w", err)
		}
		if err := u.UnmarshalMINT(buf.Bytes()); err != nil {
			return true, &UnmarshalerError{Type: pv.Type(), Err: err}
		}
		return true, nil
	}

	if u, ok := pv.Interface().(encoding.TextUnmarshaler); ok {
		s, isString := node.(*ast.String)
		if !isString {
			// TextUnmarshaler can only be used on string values.
			return false, nil
		}
		if err := u.UnmarshalText([]byte(s.Value)); err != nil {
			return true, &UnmarshalerError{Type: pv.Type(), Err: err}
		}
		return true, nil
	}

	return false, nil
}

func (ds *decodeState) mapString(s *ast.String, rv reflect.Value) error {
	if rv.Kind() != reflect.String {
		return fmt.Errorf("mint: cannot unmarshal string into Go value of type %s", rv.Type())
	}
	rv.SetString(s.Value)
	return nil
}

func (ds *decodeState) mapNumber(n *ast.Number, rv reflect.Value) error {
	f := n.Value
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return fmt.Errorf("mint: cannot unmarshal number %v into Go value of type %s", f, rv.Type())
		}
		i := int64(f)
		if rv.OverflowInt(i) {
			return fmt.Errorf("mint: number %v overflows Go value of type %s", f, rv.Type())
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
			return fmt.Errorf("mint: cannot unmarshal number %v into Go value of type %s", f, rv.Type())
		}
		u := uint64(f)
		if rv.OverflowUint(u) {
			return fmt.Errorf("mint: number %v overflows Go value of type %s", f, rv.Type())
		}
		rv.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		if rv.OverflowFloat(f) {
			return fmt.Errorf("mint: number %v overflows Go value of type %s", f, rv.Type())
		}
		rv.SetFloat(f)
		return nil
	default:
		return fmt.Errorf("mint: cannot unmarshal number into Go value of type %s", rv.Type())
	}
}

func (ds *decodeState) mapBool(b *ast.Boolean, rv reflect.Value) error {
	if rv.Kind() != reflect.Bool {
		return fmt.Errorf("mint: cannot unmarshal boolean into Go value of type %s", rv.Type())
	}
	rv.SetBool(b.Value)
	return nil
}

func (ds *decodeState) mapSlice(a *ast.Array, rv reflect.Value) error {
	newSlice := reflect.MakeSlice(rv.Type(), len(a.Elements), len(a.Elements))
	for i, elem := range a.Elements {
		if err := ds.mapValue(elem, newSlice.Index(i)); err != nil {
			return err
		}
	}
	rv.Set(newSlice)
	return nil
}

func (ds *decodeState) mapArray(a *ast.Array, rv reflect.Value) error {
	if rv.Len() != len(a.Elements) {
		return fmt.Errorf("mint: cannot unmarshal array of length %d into Go array of length %d", len(a.Elements), rv.Len())
	}
	for i, elem := range a.Elements {
		if err := ds.mapValue(elem, rv.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

// findField finds the target field in a struct's cached fields.
// It first attempts a case-sensitive match, then falls back to a
// case-insensitive match.
func findField(fields map[string]field, key string) *field {
	if f, ok := fields[key]; ok {
		return &f
	}
	if f, ok := fields[strings.ToLower(key)]; ok {
		return &f
	}
	return nil
}

func (ds *decodeState) mapMap(obj *ast.Object, rv reflect.Value) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("mint: cannot unmarshal object into map with non-string key type %s", mapType.Key())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(mapType))
	} else {
		for _, k := range rv.MapKeys() {
			rv.SetMapIndex(k, reflect.Value{}) // The zero Value deletes the key
		}
	}
	elemType := mapType.Elem()
	for _, pair := range obj.Pairs {
		newVal := reflect.New(elemType).Elem()
		if err := ds.mapValue(pair.Value, newVal); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(pair.Key).Convert(mapType.Key()), newVal)
	}
	return nil
}

func (ds *decodeState) mapStruct(obj *ast.Object, rv reflect.Value) error {
	fields := cachedFields(rv.Type())
	for _, pair := range obj.Pairs {
		if targetField := findField(fields, pair.Key); targetField != nil {
			fieldVal := rv.FieldByIndex(targetField.idx)
			if fieldVal.IsValid() && fieldVal.CanSet() {
				if err := ds.mapValue(pair.Value, fieldVal); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// mapInterface fills an empty interface target. Objects decode to the
// ordered mint.Object type and arrays to mint.Array, so key order
// survives a decode/encode round trip.
func (ds *decodeState) mapInterface(node ast.Node, rv reflect.Value) error {
	if rv.NumMethod() != 0 {
		return fmt.Errorf("mint: cannot unmarshal into non-empty interface %s", rv.Type())
	}
	switch n := node.(type) {
	case *ast.Null:
		return nil
	case *ast.String:
		rv.Set(reflect.ValueOf(n.Value))
	case *ast.Number:
		rv.Set(reflect.ValueOf(n.Value))
	case *ast.Boolean:
		rv.Set(reflect.ValueOf(n.Value))
	case *ast.Array:
		arr := make(Array, len(n.Elements))
		for i, elem := range n.Elements {
			var v any
			if err := ds.mapValue(elem, reflect.ValueOf(&v).Elem()); err != nil {
				return err
			}
			arr[i] = v
		}
		rv.Set(reflect.ValueOf(arr))
	case *ast.Object:
		obj := make(Object, 0, len(n.Pairs))
		for _, pair := range n.Pairs {
			var v any
			if err := ds.mapValue(pair.Value, reflect.ValueOf(&v).Elem()); err != nil {
				return err
			}
			obj = append(obj, Member{Key: pair.Key, Value: v})
		}
		rv.Set(reflect.ValueOf(obj))
	default:
		return fmt.Errorf("mint: cannot determine concrete type for interface{} for node %T", node)
	}
	return nil
}

// A field represents a single field in a struct.
type field struct {
	idx []int
}

// fieldCache caches a map of struct field names to their properties.
var fieldCache sync.Map // map[reflect.Type]map[string]field

// cachedFields returns a map of field names to field properties for the
// given type. The result is cached to avoid repeated reflection work.
func cachedFields(t reflect.Type) map[string]field {
	if f, ok := fieldCache.Load(t); ok {
		if fields, ok := f.(map[string]field); ok {
			return fields
		}
	}

	fields := make(map[string]field)
	var walk func(t reflect.Type, idx []int)
	walk = func(t reflect.Type, idx []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if sf.Anonymous {
				// Recurse into embedded structs.
				walk(sf.Type, append(idx, i))
				continue
			}
			if !sf.IsExported() {
				continue
			}

			tag := sf.Tag.Get("mint")
			if tag == "-" {
				continue
			}

			f := field{idx: append(idx, i)}
			tagName := strings.Split(tag, ",")[0]

			// Store entries for the original tag name and field name.
			if tagName != "" {
				fields[tagName] = f
			}
			fields[sf.Name] = f

			// Store lower-cased versions for case-insensitive fallback,
			// but do not overwrite an existing case-sensitive match.
			if tagName != "" {
				if lower := strings.ToLower(tagName); fields[lower].idx == nil {
					fields[lower] = f
				}
			}
			if lower := strings.ToLower(sf.Name); fields[lower].idx == nil {
				fields[lower] = f
			}
		}
	}
	walk(t, nil)

	fieldCache.Store(t, fields)
	return fields
}
