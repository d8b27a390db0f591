package mint_test

import (
	"math"
	"strings"
	"testing"

	mint "github.com/mint-format/go-mint"
	"github.com/stretchr/testify/require"
)

func TestMarshal_NumberFormatting(t *testing.T) {
	testCases := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"integer", 42, "42"},
		{"negative", -7, "-7"},
		{"fraction", 1.5, "1.5"},
		{"negative fraction", -2.75, "-2.75"},
		{"large integral", 1e15, "1000000000000000"},
		{"exponent threshold", 1e21, "1e+21"},
		{"avogadro", 6.02e23, "6.02e+23"},
		{"small fraction", 1e-7, "1e-7"},
		{"smallest f notation", 1e-6, "0.000001"},
		{"nan", math.NaN(), "null"},
		{"positive infinity", math.Inf(1), "null"},
		{"negative infinity", math.Inf(-1), "null"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := mint.Marshal(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, string(out))
		})
	}
}

func TestMarshal_Quoting(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", `v: ""`},
		{"leading space", " x", `v: " x"`},
		{"trailing space", "x ", `v: "x "`},
		{"embedded pipe", "a|b", `v: "a|b"`},
		{"embedded comma", "a, b", `v: "a, b"`},
		{"embedded quote", `say "hi"`, `v: "say \"hi\""`},
		{"newline", "a\nb", `v: "a\nb"`},
		{"tab", "a\tb", `v: "a\tb"`},
		{"backslash n literal", `a\nb`, `v: "a\\nb"`},
		{"looks like true", "true", `v: "true"`},
		{"looks like null", "null", `v: "null"`},
		{"looks like number", "007", `v: "007"`},
		{"exponent shape", "1e3", `v: "1e3"`},
		{"bare dash", "-", `v: "-"`},
		{"plain colon", "key: value", `v: "key: value"`},
		{"url is not quoted", "https://example.com/a", "v: https://example.com/a"},
		{"plain word", "hello", "v: hello"},
		{"internal spaces ok", "hello world", "v: hello world"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := mint.Marshal(mint.Object{{Key: "v", Value: tc.in}})
			require.NoError(t, err)
			require.Equal(t, tc.want, string(out))
		})
	}
}

func TestMarshal_Shapes(t *testing.T) {
	t.Run("uniform structs become a table", func(t *testing.T) {
		type row struct {
			ID   int    `mint:"id"`
			Name string `mint:"name"`
		}
		out, err := mint.Marshal(mint.Object{{Key: "rows", Value: []row{{1, "a"}, {2, "b"}}}})
		require.NoError(t, err)
		want := strings.Join([]string{
			"rows:",
			"  | id | name |",
			"  | 1  | a    |",
			"  | 2  | b    |",
		}, "\n")
		require.Equal(t, want, string(out))
	})

	t.Run("non-primitive column forces a dash list", func(t *testing.T) {
		type row struct {
			ID   int      `mint:"id"`
			Tags []string `mint:"tags"`
		}
		out, err := mint.Marshal(mint.Object{{Key: "rows", Value: []row{{1, []string{"x"}}}}})
		require.NoError(t, err)
		want := strings.Join([]string{
			"rows:",
			"  -",
			"    id: 1",
			"    tags: x",
		}, "\n")
		require.Equal(t, want, string(out))
	})

	t.Run("differing keys force a dash list", func(t *testing.T) {
		rows := mint.Array{
			mint.Object{{Key: "a", Value: 1.0}},
			mint.Object{{Key: "b", Value: 2.0}},
		}
		out, err := mint.Marshal(mint.Object{{Key: "rows", Value: rows}})
		require.NoError(t, err)
		want := strings.Join([]string{
			"rows:",
			"  -",
			"    a: 1",
			"  -",
			"    b: 2",
		}, "\n")
		require.Equal(t, want, string(out))
	})

	t.Run("null cell renders as dash", func(t *testing.T) {
		rows := mint.Array{
			mint.Object{{Key: "id", Value: 1.0}, {Key: "note", Value: nil}},
			mint.Object{{Key: "id", Value: 2.0}, {Key: "note", Value: "ok"}},
		}
		out, err := mint.Marshal(mint.Object{{Key: "rows", Value: rows}})
		require.NoError(t, err)
		want := strings.Join([]string{
			"rows:",
			"  | id | note |",
			"  | 1  | -    |",
			"  | 2  | ok   |",
		}, "\n")
		require.Equal(t, want, string(out))
	})

	t.Run("nested array in mixed list", func(t *testing.T) {
		out, err := mint.Marshal(mint.Object{{Key: "grid", Value: mint.Array{
			mint.Array{1.0, 2.0},
			"tail",
		}}})
		require.NoError(t, err)
		want := strings.Join([]string{
			"grid:",
			"  - 1, 2",
			"  - tail",
		}, "\n")
		require.Equal(t, want, string(out))
	})
}

func TestMarshal_NilValues(t *testing.T) {
	t.Run("nil root", func(t *testing.T) {
		out, err := mint.Marshal(nil)
		require.NoError(t, err)
		require.Equal(t, "null", string(out))
	})

	t.Run("nil slice", func(t *testing.T) {
		out, err := mint.Marshal(mint.Object{{Key: "tags", Value: []string(nil)}})
		require.NoError(t, err)
		require.Equal(t, "tags: null", string(out))
	})

	t.Run("empty slice", func(t *testing.T) {
		out, err := mint.Marshal(mint.Object{{Key: "tags", Value: []string{}}})
		require.NoError(t, err)
		require.Equal(t, "tags: []", string(out))
	})

	t.Run("nil map", func(t *testing.T) {
		out, err := mint.Marshal(mint.Object{{Key: "m", Value: map[string]int(nil)}})
		require.NoError(t, err)
		require.Equal(t, "m: null", string(out))
	})

	t.Run("nil pointer", func(t *testing.T) {
		out, err := mint.Marshal(mint.Object{{Key: "p", Value: (*int)(nil)}})
		require.NoError(t, err)
		require.Equal(t, "p: null", string(out))
	})
}

func TestMarshal_Errors(t *testing.T) {
	t.Run("unsupported type", func(t *testing.T) {
		_, err := mint.Marshal(mint.Object{{Key: "c", Value: make(chan int)}})
		require.Error(t, err)
		require.Contains(t, err.Error(), "unsupported type")
	})

	t.Run("non-string map key", func(t *testing.T) {
		_, err := mint.Marshal(map[int]string{1: "a"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "map key type must be a string")
	})

	t.Run("cyclic value exceeds max depth", func(t *testing.T) {
		type node struct {
			Next *node `mint:"next"`
		}
		n := &node{}
		n.Next = n
		_, err := mint.Marshal(n)
		require.Error(t, err)
		require.Contains(t, err.Error(), "max depth")
	})
}

func TestEncoder_Writer(t *testing.T) {
	var sb strings.Builder
	enc := mint.NewEncoder(&sb, mint.SortKeys())
	require.NoError(t, enc.Encode(map[string]int{"b": 2, "a": 1}))
	require.Equal(t, "a: 1\nb: 2", sb.String())
}
