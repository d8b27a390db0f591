package mint

import (
	"bytes"
)

// Marshaler is the interface implemented by types that
// can marshal themselves into valid MINT.
type Marshaler interface {
	MarshalMINT() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that
// can unmarshal a MINT description of themselves.
type Unmarshaler interface {
	UnmarshalMINT([]byte) error
}

// Marshal returns the MINT encoding of v.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the MINT-encoded data and stores the result
// in the value pointed to by v.
//
// Decoding is lenient by default: structurally irregular lines are
// recovered from silently. With the Strict option, Unmarshal returns a
// ParseErrors value listing every syntax error found.
func Unmarshal(data []byte, v any, opts ...Option) error {
	d := NewDecoder(bytes.NewReader(data), opts...)
	return d.Decode(v)
}
