package mint

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements json.Marshaler, emitting the object's members
// in insertion order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, preserving the key order
// of the source document. Nested objects decode as Object and nested
// arrays as Array.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("mint: cannot unmarshal JSON %v into Object", tok)
	}
	obj, err := readJSONObject(dec)
	if err != nil {
		return err
	}
	*o = obj
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for arrays, preserving key
// order in any nested objects.
func (a *Array) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('[') {
		return fmt.Errorf("mint: cannot unmarshal JSON %v into Array", tok)
	}
	arr, err := readJSONArray(dec)
	if err != nil {
		return err
	}
	*a = arr
	return nil
}

// readJSONObject consumes members up to and including the closing
// brace. The opening brace has already been read.
func readJSONObject(dec *json.Decoder) (Object, error) {
	obj := Object{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("mint: unexpected JSON object key %v", keyTok)
		}
		val, err := readJSONValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return obj, nil
}

func readJSONArray(dec *json.Decoder) (Array, error) {
	arr := Array{}
	for dec.More() {
		val, err := readJSONValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return arr, nil
}

func readJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readJSONObject(dec)
		case '[':
			return readJSONArray(dec)
		default:
			return nil, fmt.Errorf("mint: unexpected JSON delimiter %v", t)
		}
	default:
		// string, float64, bool, or nil
		return tok, nil
	}
}
