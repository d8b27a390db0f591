package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func obj(pairs ...*Pair) *Object { return &Object{Pairs: pairs} }
func kv(k string, v Node) *Pair  { return &Pair{Key: k, Value: v} }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		arr      *Array
		expected Shape
	}{
		{
			name:     "empty",
			arr:      &Array{},
			expected: ShapeEmpty,
		},
		{
			name: "inline primitives",
			arr: &Array{Elements: []Node{
				&Number{Value: 1}, &String{Value: "x"}, &Null{}, &Boolean{Value: true},
			}},
			expected: ShapeInline,
		},
		{
			name: "uniform objects",
			arr: &Array{Elements: []Node{
				obj(kv("id", &Number{Value: 1}), kv("name", &String{Value: "a"})),
				obj(kv("id", &Number{Value: 2}), kv("name", &String{Value: "b"})),
			}},
			expected: ShapeTable,
		},
		{
			name: "key order may differ between rows",
			arr: &Array{Elements: []Node{
				obj(kv("id", &Number{Value: 1}), kv("name", &String{Value: "a"})),
				obj(kv("name", &String{Value: "b"}), kv("id", &Number{Value: 2})),
			}},
			expected: ShapeTable,
		},
		{
			name: "null cells stay tabular",
			arr: &Array{Elements: []Node{
				obj(kv("id", &Number{Value: 1}), kv("note", &Null{})),
			}},
			expected: ShapeTable,
		},
		{
			name: "differing key sets",
			arr: &Array{Elements: []Node{
				obj(kv("a", &Number{Value: 1})),
				obj(kv("b", &Number{Value: 2})),
			}},
			expected: ShapeMixed,
		},
		{
			name: "differing key counts",
			arr: &Array{Elements: []Node{
				obj(kv("a", &Number{Value: 1})),
				obj(kv("a", &Number{Value: 1}), kv("b", &Number{Value: 2})),
			}},
			expected: ShapeMixed,
		},
		{
			name: "non-primitive column value",
			arr: &Array{Elements: []Node{
				obj(kv("a", &Array{Elements: []Node{&Number{Value: 1}}})),
			}},
			expected: ShapeMixed,
		},
		{
			name: "objects mixed with primitives",
			arr: &Array{Elements: []Node{
				obj(kv("a", &Number{Value: 1})),
				&String{Value: "tail"},
			}},
			expected: ShapeMixed,
		},
		{
			name: "nested arrays",
			arr: &Array{Elements: []Node{
				&Array{Elements: []Node{&Number{Value: 1}}},
			}},
			expected: ShapeMixed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Classify(tt.arr))
		})
	}
}

func TestTableColumns(t *testing.T) {
	arr := &Array{Elements: []Node{
		obj(kv("id", &Number{Value: 1}), kv("name", &String{Value: "a"})),
		obj(kv("name", &String{Value: "b"}), kv("id", &Number{Value: 2})),
	}}
	// The first element's key order defines the header.
	require.Equal(t, []string{"id", "name"}, TableColumns(arr))
}

func TestObject_SetGet(t *testing.T) {
	o := obj()
	o.Set("a", &Number{Value: 1})
	o.Set("b", &Number{Value: 2})
	o.Set("a", &Number{Value: 3})

	require.Equal(t, []string{"a", "b"}, o.Keys())

	v, ok := o.Get("a")
	require.True(t, ok)
	require.Equal(t, 3.0, v.(*Number).Value)

	_, ok = o.Get("missing")
	require.False(t, ok)
}
