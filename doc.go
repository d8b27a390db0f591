/*
Package mint implements MINT (Minimal Indented Notation for Tokens), a
textual serialization format for JSON-compatible data optimized for
token efficiency when embedding structured data in text prompts. The
API closely mirrors the standard encoding/json package.

MINT represents objects as indented key-value blocks and uniform arrays
of objects as pipe-delimited tables:

	name: orderd
	port: 8080
	tags: api, billing
	users:
	  | id | name  | active |
	  | 1  | Alice | true   |
	  | 2  | Bob   | false  |

Marshal and Unmarshal convert between Go values and MINT text:

	type Config struct {
		Name string `mint:"name"`
		Port int    `mint:"port"`
	}

	var cfg Config
	if err := mint.Unmarshal(data, &cfg); err != nil {
		// handle error
	}

Arrays are classified per site: an empty array encodes as [], an array
of primitives as an inline comma-separated list, an array of objects
sharing one key set with primitive values as a table, and anything else
as a dash list. Strings are quoted only when their content would
otherwise be misread (commas, pipes, colons, numeric shape, or the
words true, false and null).

Unmarshal into *any (or into the ordered mint.Object and mint.Array
types) reconstructs the value tree with object key order preserved.
Decoding is lenient by default; the Strict option turns structural
irregularities into ParseErrors instead of silent recovery.

Validate checks line structure (indentation and table column counts)
without building a value tree, and EstimateTokens reports the
approximate token cost of a value serialized as JSON versus MINT.

Customization is available via struct field tags (e.g.
`mint:"key,omitempty"`) and by implementing the mint.Marshaler and
mint.Unmarshaler interfaces; types implementing encoding.TextMarshaler
or encoding.TextUnmarshaler round-trip as strings.
*/
package mint
