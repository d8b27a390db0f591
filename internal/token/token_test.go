package token

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"0", true},
		{"42", true},
		{"-7", true},
		{"+7", true},
		{"3.14", true},
		{"-0.5", true},
		{"1e3", true},
		{"1E3", true},
		{"6.02e+23", true},
		{"1e-7", true},
		{"007", true},
		{"", false},
		{"-", false},
		{".", false},
		{"1e", false},
		{"e3", false},
		{"1.2.3", false},
		{"1x", false},
		{"0x10", false},
		{"two", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, IsNumber(tt.input))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "0"},
		{"integer", 42, "42"},
		{"fraction", 3.14, "3.14"},
		{"negative", -0.5, "-0.5"},
		{"large integral", 1e15, "1000000000000000"},
		{"exponent high", 1e21, "1e+21"},
		{"exponent low", 1e-7, "1e-7"},
		{"last f notation", 1e-6, "0.000001"},
		{"nan", math.NaN(), "null"},
		{"inf", math.Inf(1), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatNumber(tt.input))
		})
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"hello", false},
		{"hello world", false},
		{"https://example.com/x", false},
		{"", true},
		{" x", true},
		{"x ", true},
		{"-", true},
		{"a|b", true},
		{"a, b", true},
		{"a,b", true},
		{`a"b`, true},
		{"a\nb", true},
		{"a\rb", true},
		{"true", true},
		{"FALSE", true},
		{"null", true},
		{"42", true},
		{"1e3", true},
		{"key: value", true},
		{"a:b", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, NeedsQuoting(tt.input))
		})
	}
}

func TestEscapeUnescape(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		escaped  string
	}{
		{"plain", "hello", "hello"},
		{"newline", "a\nb", `a\nb`},
		{"tab", "a\tb", `a\tb`},
		{"carriage return", "a\rb", `a\rb`},
		{"quote", `say "hi"`, `say \"hi\"`},
		{"backslash", `a\b`, `a\\b`},
		{"backslash then n", `a\nb`, `a\\nb`},
		{"mixed", "\\\n", `\\\n`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.escaped, Escape(tt.raw))
			require.Equal(t, tt.raw, Unescape(tt.escaped))
		})
	}

	t.Run("unknown escape passes through", func(t *testing.T) {
		require.Equal(t, `a\qb`, Unescape(`a\qb`))
	})

	t.Run("trailing backslash survives", func(t *testing.T) {
		require.Equal(t, `a\`, Unescape(`a\`))
	})
}

func TestParsePrimitive(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"", nil},
		{"  ", nil},
		{"-", nil},
		{"null", nil},
		{"true", true},
		{"false", false},
		{"42", 42.0},
		{"-2.5", -2.5},
		{"1e3", 1000.0},
		{"hello", "hello"},
		{" padded ", "padded"},
		{`"quoted"`, "quoted"},
		{`" keep "`, " keep "},
		{`"a\nb"`, "a\nb"},
		{`""`, ""},
		{"✓", "true"},
		{"✗", "false"},
		{"⏳", "pending"},
		{"⚠", "warning"},
		{"❓", "unknown"},
		{"007", 7.0},
		{"2024-01", "2024-01"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, ParsePrimitive(tt.input))
		})
	}
}

func TestSymbolWord(t *testing.T) {
	tests := []struct {
		word   string
		symbol string
	}{
		{"completed", "✓"},
		{"success", "✓"},
		{"DONE", "✓"},
		{"failed", "✗"},
		{"pending", "⏳"},
		{"in_progress", "⏳"},
		{"warning", "⚠"},
		{"unknown", "❓"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			s, ok := Symbol(tt.word)
			require.True(t, ok)
			require.Equal(t, tt.symbol, s)
		})
	}

	t.Run("no symbol for plain words", func(t *testing.T) {
		_, ok := Symbol("hello")
		require.False(t, ok)
	})

	t.Run("each symbol maps to one canonical word", func(t *testing.T) {
		w, ok := Word("✓")
		require.True(t, ok)
		require.Equal(t, "true", w)
	})
}
