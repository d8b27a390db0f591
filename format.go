package mint

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mint-format/go-mint/internal/ast"
	"github.com/mint-format/go-mint/internal/token"
)

// formatter writes a MINT value tree to an output stream.
//
// Output is built line by line: objects become key-value lines with
// nested blocks indented one level deeper, and each array is rendered
// according to its classification (empty marker, inline list, table, or
// dash list).
type formatter struct {
	w    io.Writer
	opts *options
}

func newFormatter(w io.Writer, opts *options) *formatter {
	return &formatter{w: w, opts: opts}
}

// format writes the MINT text for the root node. The output carries no
// trailing newline.
func (f *formatter) format(node ast.Node) error {
	var lines []string
	switch n := node.(type) {
	case *ast.Object:
		lines = f.objectLines(n, 0)
	case *ast.Array:
		rootKey := token.RootKey + ":"
		switch ast.Classify(n) {
		case ast.ShapeEmpty:
			lines = []string{rootKey + " " + token.EmptyArray}
		case ast.ShapeInline:
			lines = []string{rootKey + " " + f.inline(n)}
		case ast.ShapeTable:
			lines = append([]string{rootKey}, f.tableLines(n, 1)...)
		default:
			lines = append([]string{rootKey}, f.dashLines(n, 1)...)
		}
	default:
		lines = []string{f.primitive(node, false)}
	}
	_, err := io.WriteString(f.w, strings.Join(lines, "\n"))
	return err
}

func (f *formatter) indent(level int) string {
	return strings.Repeat(" ", level*f.opts.indent)
}

// objectLines renders an object's pairs at the given indent level.
func (f *formatter) objectLines(obj *ast.Object, level int) []string {
	pairs := obj.Pairs
	if f.opts.sortKeys {
		pairs = make([]*ast.Pair, len(obj.Pairs))
		copy(pairs, obj.Pairs)
		sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	}

	var lines []string
	for _, p := range pairs {
		prefix := f.indent(level) + p.Key + ":"
		switch v := p.Value.(type) {
		case *ast.Object:
			// An empty object is a bare key; anything else gets a
			// nested block. Objects never collapse onto the key line.
			lines = append(lines, prefix)
			lines = append(lines, f.objectLines(v, level+1)...)
		case *ast.Array:
			switch ast.Classify(v) {
			case ast.ShapeEmpty:
				lines = append(lines, prefix+" "+token.EmptyArray)
			case ast.ShapeInline:
				lines = append(lines, prefix+" "+f.inline(v))
			case ast.ShapeTable:
				lines = append(lines, prefix)
				lines = append(lines, f.tableLines(v, level+1)...)
			default:
				lines = append(lines, prefix)
				lines = append(lines, f.dashLines(v, level+1)...)
			}
		default:
			lines = append(lines, prefix+" "+f.primitive(p.Value, false))
		}
	}
	return lines
}

// inline renders a primitive-only array as a comma-separated list.
func (f *formatter) inline(arr *ast.Array) string {
	parts := make([]string, len(arr.Elements))
	for i, e := range arr.Elements {
		parts[i] = f.primitive(e, false)
	}
	return strings.Join(parts, ", ")
}

// tableLines renders a table-eligible array as a header row plus one
// row per element. Each column is padded to the width of its longest
// cell, header label included.
func (f *formatter) tableLines(arr *ast.Array, level int) []string {
	cols := ast.TableColumns(arr)

	cells := make([][]string, len(arr.Elements))
	widths := make([]int, len(cols))
	for ci, col := range cols {
		widths[ci] = utf8.RuneCountInString(col)
	}
	for ri, e := range arr.Elements {
		row, _ := e.(*ast.Object)
		cells[ri] = make([]string, len(cols))
		for ci, col := range cols {
			val, _ := row.Get(col)
			text := f.primitive(val, true)
			cells[ri][ci] = text
			if w := utf8.RuneCountInString(text); w > widths[ci] {
				widths[ci] = w
			}
		}
	}

	lines := make([]string, 0, len(arr.Elements)+1)
	lines = append(lines, f.rowLine(cols, widths, level))
	for _, row := range cells {
		lines = append(lines, f.rowLine(row, widths, level))
	}
	return lines
}

func (f *formatter) rowLine(cells []string, widths []int, level int) string {
	var b strings.Builder
	b.WriteString(f.indent(level))
	b.WriteByte('|')
	for i, c := range cells {
		b.WriteByte(' ')
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c)))
		b.WriteString(" |")
	}
	return b.String()
}

// dashLines renders a mixed array as dash-prefixed items. Primitive
// items share the dash's line; block items put the dash alone and nest
// one level deeper.
func (f *formatter) dashLines(arr *ast.Array, level int) []string {
	var lines []string
	dash := f.indent(level) + "-"
	for _, e := range arr.Elements {
		switch el := e.(type) {
		case *ast.Object:
			lines = append(lines, dash)
			lines = append(lines, f.objectLines(el, level+1)...)
		case *ast.Array:
			switch ast.Classify(el) {
			case ast.ShapeEmpty:
				lines = append(lines, dash+" "+token.EmptyArray)
			case ast.ShapeInline:
				lines = append(lines, dash+" "+f.inline(el))
			case ast.ShapeTable:
				lines = append(lines, dash)
				lines = append(lines, f.tableLines(el, level+1)...)
			default:
				lines = append(lines, dash)
				lines = append(lines, f.dashLines(el, level+1)...)
			}
		default:
			lines = append(lines, dash+" "+f.primitive(e, false))
		}
	}
	return lines
}

// primitive formats a single value. Inside a table cell, null and the
// empty string both render as a dash.
func (f *formatter) primitive(n ast.Node, inTable bool) string {
	switch v := n.(type) {
	case *ast.Null, nil:
		if inTable {
			return token.NullCell
		}
		return token.Null
	case *ast.Boolean:
		return strconv.FormatBool(v.Value)
	case *ast.Number:
		s := token.FormatNumber(v.Value)
		if s == token.Null && inTable {
			return token.NullCell
		}
		return s
	case *ast.String:
		s := v.Value
		if f.opts.compact {
			if sym, ok := token.Symbol(s); ok {
				return sym
			}
		}
		if s == "" && inTable {
			return token.NullCell
		}
		if token.NeedsQuoting(s) {
			return token.Quote(s)
		}
		return s
	}
	return token.Null
}
