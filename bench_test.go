package mint_test

import (
	"fmt"
	"testing"

	mint "github.com/mint-format/go-mint"
)

func benchValue(rows int) mint.Object {
	users := make(mint.Array, rows)
	for i := range users {
		users[i] = mint.Object{
			{Key: "id", Value: float64(i)},
			{Key: "name", Value: fmt.Sprintf("user-%d", i)},
			{Key: "email", Value: fmt.Sprintf("user-%d@example.com", i)},
			{Key: "active", Value: i%2 == 0},
		}
	}
	return mint.Object{
		{Key: "users", Value: users},
		{Key: "total", Value: float64(rows)},
	}
}

func BenchmarkMarshal(b *testing.B) {
	for _, rows := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("rows=%d", rows), func(b *testing.B) {
			v := benchValue(rows)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := mint.Marshal(v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUnmarshal(b *testing.B) {
	for _, rows := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("rows=%d", rows), func(b *testing.B) {
			data, err := mint.Marshal(benchValue(rows))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var v any
				if err := mint.Unmarshal(data, &v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkValidate(b *testing.B) {
	data, err := mint.Marshal(benchValue(100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if result := mint.Validate(data); !result.Valid {
			b.Fatal("unexpected validation failure")
		}
	}
}
