package mint_test

import (
	"strings"
	"testing"

	mint "github.com/mint-format/go-mint"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty document", ""},
		{"simple object", "a: 1\nb: two"},
		{"nested blocks", "a:\n  b:\n    c: 1"},
		{"table", "users:\n  | id | name  |\n  | 1  | Alice |"},
		{"comments and blanks", "# top\n\na: 1\n  # note"},
		{"root table", "| id |\n| 1  |"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := mint.Validate([]byte(tc.input))
			require.True(t, result.Valid)
			require.Empty(t, result.Errors)
		})
	}
}

func TestValidate_Indentation(t *testing.T) {
	result := mint.Validate([]byte("a:\n   b: 1"))
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	e := result.Errors[0]
	require.Equal(t, 2, e.Line)
	require.Equal(t, 4, e.Column)
	require.Contains(t, e.Message, "not a multiple of 2")
	require.Equal(t, "   b: 1", e.Context)

	t.Run("unit four", func(t *testing.T) {
		result := mint.Validate([]byte("a:\n    b: 1"), mint.Indent(4))
		require.True(t, result.Valid)
	})
}

func TestValidate_Tables(t *testing.T) {
	t.Run("row pipe count mismatch", func(t *testing.T) {
		input := strings.Join([]string{
			"rows:",
			"  | a | b |",
			"  | 1 | 2 |",
			"  | 3 |",
		}, "\n")
		result := mint.Validate([]byte(input))
		require.False(t, result.Valid)
		require.Len(t, result.Errors, 1)
		e := result.Errors[0]
		require.Equal(t, 4, e.Line)
		require.Contains(t, e.Message, "table row has 2 pipes, header has 3")
	})

	t.Run("missing terminating pipe", func(t *testing.T) {
		input := "rows:\n  | a | b |\n  | 1 | 2"
		result := mint.Validate([]byte(input))
		require.False(t, result.Valid)
		require.NotEmpty(t, result.Errors)
		var found bool
		for _, e := range result.Errors {
			if strings.Contains(e.Message, "terminating pipe") {
				found = true
				require.Equal(t, 3, e.Line)
			}
		}
		require.True(t, found)
	})

	t.Run("separate tables do not share a header", func(t *testing.T) {
		input := strings.Join([]string{
			"a:",
			"  | x | y |",
			"  | 1 | 2 |",
			"b:",
			"  | z |",
			"  | 9 |",
		}, "\n")
		result := mint.Validate([]byte(input))
		require.True(t, result.Valid)
	})
}

func TestValidate_InvalidOptions(t *testing.T) {
	result := mint.Validate([]byte("a: 1"), mint.Indent(0))
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Equal(t, 0, result.Errors[0].Line)
	require.Contains(t, result.Errors[0].Message, "indent must be a positive integer")
}
