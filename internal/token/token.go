// Package token defines the lexical vocabulary shared by the MINT
// encoder and decoder: primitive parsing and formatting, the quoting
// trigger, escape sequences, the number shape, and the compact-mode
// status symbols.
package token

import (
	"math"
	"strconv"
	"strings"
)

// Reserved lexical markers.
const (
	Null       = "null"
	NullCell   = "-"
	EmptyArray = "[]"
	RootKey    = "_"

	TableMarker = '|'
	CommentChar = '#'
)

// symbols maps lowercase status words to their compact-mode symbol.
// Several synonyms share one symbol, so the mapping is lossy.
var symbols = map[string]string{
	"completed":   "✓",
	"complete":    "✓",
	"success":     "✓",
	"done":        "✓",
	"passed":      "✓",
	"true":        "✓",
	"yes":         "✓",
	"failed":      "✗",
	"failure":     "✗",
	"error":       "✗",
	"rejected":    "✗",
	"false":       "✗",
	"no":          "✗",
	"pending":     "⏳",
	"waiting":     "⏳",
	"in_progress": "⏳",
	"running":     "⏳",
	"warning":     "⚠",
	"warn":        "⚠",
	"review":      "❓",
	"unknown":     "❓",
}

// words is the reverse mapping used during decode. Each symbol maps to
// one canonical word only.
var words = map[string]string{
	"✓": "true",
	"✗": "false",
	"⏳": "pending",
	"⚠": "warning",
	"❓": "unknown",
}

// Symbol returns the compact-mode symbol for a status word.
// The lookup is case-insensitive.
func Symbol(word string) (string, bool) {
	s, ok := symbols[strings.ToLower(word)]
	return s, ok
}

// Word returns the canonical word for a compact-mode symbol.
func Word(symbol string) (string, bool) {
	w, ok := words[symbol]
	return w, ok
}

// IsNumber reports whether s has the shape of a signed decimal number
// with an optional fractional part and exponent. It is used both by the
// primitive parser and by the quoting trigger, so a string that parses
// as a number is always quoted on encode.
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[i] == '-' || s[i] == '+' {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// FormatNumber renders a float64 the way encoding/json does: integral
// values without a fractional part, 'f' notation for magnitudes in
// [1e-6, 1e21), 'e' notation outside that range. Non-finite values
// have no MINT representation and render as null.
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if format == 'e' {
		// Clean up e-09 to e-9, matching encoding/json.
		if n := len(s); n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}
	return s
}

// NeedsQuoting reports whether a string value must be wrapped in double
// quotes to survive a round trip. Unquoted, such a string would either
// break the line structure (pipes, newlines), be split as an inline
// list (commas), or be re-parsed as a different primitive.
func NeedsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if s != strings.TrimSpace(s) {
		return true
	}
	if s == NullCell {
		return true
	}
	if strings.ContainsAny(s, "|\n\r,\"") {
		return true
	}
	switch strings.ToLower(s) {
	case "true", "false", Null:
		return true
	}
	if IsNumber(s) {
		return true
	}
	for i := 0; i < len(s); i++ {
		if s[i] == ':' && !strings.HasPrefix(s[i:], "://") {
			return true
		}
	}
	return false
}

// Quote wraps s in double quotes, escaping as needed.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}

// Escape replaces backslash, double quote, newline, carriage return and
// tab with their two-character escape sequences.
func Escape(s string) string {
	if !strings.ContainsAny(s, "\\\"\n\r\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Unescape reverses Escape. Unknown escape sequences pass through
// unchanged, keeping the decoder lenient.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// ParsePrimitive interprets a single cell or value fragment and returns
// nil, a bool, a float64, or a string. The input is trimmed first; a
// bare dash, empty text and the word null all mean null. Compact-mode
// symbols decode to their canonical word regardless of options.
func ParsePrimitive(s string) any {
	s = strings.TrimSpace(s)
	switch s {
	case "", NullCell, Null:
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if w, ok := Word(s); ok {
		return w
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return Unescape(s[1 : len(s)-1])
	}
	if IsNumber(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return s
}
