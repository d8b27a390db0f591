package mint_test

import (
	"testing"

	mint "github.com/mint-format/go-mint"
	"github.com/stretchr/testify/require"
)

func TestEstimateTokens(t *testing.T) {
	t.Run("tabular data saves tokens", func(t *testing.T) {
		users := mint.Array{}
		for _, name := range []string{"Alice", "Bob", "Carol", "Dave"} {
			users = append(users, mint.Object{
				{Key: "name", Value: name},
				{Key: "active", Value: true},
				{Key: "role", Value: "admin"},
			})
		}
		v := mint.Object{{Key: "users", Value: users}}

		est, err := mint.EstimateTokens(v)
		require.NoError(t, err)
		require.Positive(t, est.JSON)
		require.Positive(t, est.MINT)
		require.Less(t, est.MINT, est.JSON)
		require.Equal(t, est.JSON-est.MINT, est.Savings)
		require.Positive(t, est.SavingsPercent)
	})

	t.Run("small scalar", func(t *testing.T) {
		// JSON: `true` (4 chars), MINT: `true` (4 chars).
		est, err := mint.EstimateTokens(true)
		require.NoError(t, err)
		require.Equal(t, est.JSON, est.MINT)
		require.Zero(t, est.Savings)
		require.Zero(t, est.SavingsPercent)
	})

	t.Run("compact option shrinks the estimate", func(t *testing.T) {
		rows := mint.Array{}
		for i := 0; i < 5; i++ {
			rows = append(rows, mint.Object{
				{Key: "id", Value: float64(i)},
				{Key: "status", Value: "completed"},
			})
		}
		v := mint.Object{{Key: "rows", Value: rows}}

		normal, err := mint.EstimateTokens(v)
		require.NoError(t, err)
		compact, err := mint.EstimateTokens(v, mint.Compact())
		require.NoError(t, err)
		require.LessOrEqual(t, compact.MINT, normal.MINT)
	})

	t.Run("invalid option", func(t *testing.T) {
		_, err := mint.EstimateTokens(true, mint.Indent(-1))
		require.Error(t, err)
	})

	t.Run("unsupported value", func(t *testing.T) {
		_, err := mint.EstimateTokens(make(chan int))
		require.Error(t, err)
	})
}
