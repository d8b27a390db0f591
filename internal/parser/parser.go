// Package parser turns classified MINT lines into an ast value tree.
//
// The parser is a recursive descent over a line cursor. Indentation is
// the only nesting signal: a block owns every line indented deeper than
// its base level, and a shallower line returns control to the caller.
// Lookahead past blank and comment lines decides whether an empty value
// is followed by a nested block.
//
// By default the parser is lenient: table rows whose width does not
// match the header are dropped, stray over-indented lines are skipped,
// and lines without a colon inside an object block are ignored. In
// strict mode each of these records an Error instead.
package parser

import (
	"fmt"
	"strings"

	"github.com/mint-format/go-mint/internal/ast"
	"github.com/mint-format/go-mint/internal/lexer"
	"github.com/mint-format/go-mint/internal/token"
)

// Error is a positioned syntax error collected during a strict parse.
type Error struct {
	Line    int
	Column  int
	Message string
}

// Config controls parser strictness.
type Config struct {
	// Strict enables syntax error collection instead of silent recovery.
	Strict bool
	// IndentUnit is the expected indentation step, used by the
	// strict-mode indentation check.
	IndentUnit int
}

// Parser holds the line cursor state for one document.
type Parser struct {
	lines []lexer.Line
	cfg   Config
	errs  []Error
}

// New creates a parser over the given lines.
func New(lines []lexer.Line, cfg Config) *Parser {
	if cfg.IndentUnit <= 0 {
		cfg.IndentUnit = 2
	}
	return &Parser{lines: lines, cfg: cfg}
}

// Errors returns the syntax errors collected during parsing. The slice
// is empty unless strict mode is enabled.
func (p *Parser) Errors() []Error {
	return p.errs
}

// Parse consumes the document and returns its root node, or nil for an
// empty document.
func (p *Parser) Parse() ast.Node {
	if p.cfg.Strict {
		p.checkIndentation()
	}

	i := p.skip(0)
	if i >= len(p.lines) {
		return nil
	}

	line := p.lines[i]
	var node ast.Node
	var next int
	switch {
	case line.Kind == lexer.Row:
		node, next = p.parseTable(i)
	case line.Kind == lexer.Dash:
		node, next = p.parseDashList(i)
	case line.Kind == lexer.KeyValue && isRootArrayMarker(line):
		node, next = p.parseRootArray(i)
	case line.Kind == lexer.KeyValue:
		node, next = p.parseObject(i, line.Indent)
	default:
		node = p.primitive(line.Text, line.Num)
		next = i + 1
	}

	if j := p.skip(next); j < len(p.lines) {
		p.errorf(p.lines[j], "unexpected content after document root")
	}
	return node
}

func isRootArrayMarker(line lexer.Line) bool {
	key, _ := line.SplitKeyValue()
	return key == token.RootKey
}

// checkIndentation verifies every significant line is indented by a
// multiple of the configured unit.
func (p *Parser) checkIndentation() {
	for _, ln := range p.lines {
		if ln.Significant() && ln.Indent%p.cfg.IndentUnit != 0 {
			p.errorf(ln, "indentation of %d spaces is not a multiple of %d", ln.Indent, p.cfg.IndentUnit)
		}
	}
}

// skip advances past blank and comment lines starting at i.
func (p *Parser) skip(i int) int {
	for i < len(p.lines) && !p.lines[i].Significant() {
		i++
	}
	return i
}

// parseObject reads key-value lines at exactly the base indent,
// returning the object and the index of the first line it did not
// consume. Deeper lines with no owning key are skipped; shallower lines
// end the block.
func (p *Parser) parseObject(start, base int) (ast.Node, int) {
	obj := &ast.Object{Line: p.lines[start].Num}
	i := start
	for i < len(p.lines) {
		ln := p.lines[i]
		if !ln.Significant() {
			i++
			continue
		}
		if ln.Indent < base {
			break
		}
		if ln.Indent > base {
			p.errorf(ln, "line indented under no key")
			i++
			continue
		}
		if ln.Kind != lexer.KeyValue {
			p.errorf(ln, "expected key: value")
			i++
			continue
		}

		key, val := ln.SplitKeyValue()
		var value ast.Node
		value, i = p.parseValue(ln, val, i)

		if _, exists := obj.Get(key); exists {
			p.errorf(ln, "duplicate key %q", key)
		}
		obj.Set(key, value)
	}
	return obj, i
}

// parseValue interprets the value text of one key-value line. An empty
// or [] value triggers lookahead for a nested block. The cursor index i
// points at the key-value line itself; the returned index is the first
// unconsumed line.
func (p *Parser) parseValue(ln lexer.Line, val string, i int) (ast.Node, int) {
	if val == "" || val == token.EmptyArray {
		j := p.skip(i + 1)
		if j < len(p.lines) && p.lines[j].Indent > ln.Indent {
			switch p.lines[j].Kind {
			case lexer.Row:
				return p.parseTable(j)
			case lexer.Dash:
				return p.parseDashList(j)
			default:
				return p.parseObject(j, p.lines[j].Indent)
			}
		}
		if val == token.EmptyArray {
			return &ast.Array{Line: ln.Num}, i + 1
		}
		return &ast.Object{Line: ln.Num}, i + 1
	}

	switch {
	case isQuoted(val):
		return p.primitive(val, ln.Num), i + 1
	case strings.Contains(val, " | "):
		return p.inlineList(val, " | ", ln.Num), i + 1
	case strings.Contains(val, ", "):
		return p.inlineList(val, ", ", ln.Num), i + 1
	default:
		return p.primitive(val, ln.Num), i + 1
	}
}

// parseTable reads a header row and every following row that starts
// with a pipe and is not less indented than the header. Rows whose cell
// count differs from the header are excluded from the result.
func (p *Parser) parseTable(start int) (ast.Node, int) {
	header := p.lines[start]
	cols := header.Cells()
	arr := &ast.Array{Line: header.Num}

	i := start + 1
	for i < len(p.lines) {
		ln := p.lines[i]
		if ln.Kind == lexer.Blank {
			i++
			continue
		}
		if ln.Kind != lexer.Row || ln.Indent < header.Indent {
			break
		}
		cells := ln.Cells()
		if len(cells) != len(cols) {
			p.errorf(ln, "table row has %d cells, header has %d columns", len(cells), len(cols))
			i++
			continue
		}
		row := &ast.Object{Line: ln.Num}
		for ci, cell := range cells {
			row.Set(cols[ci], p.primitive(cell, ln.Num))
		}
		arr.Elements = append(arr.Elements, row)
		i++
	}
	return arr, i
}

// parseDashList reads dash-prefixed items at the indent of the first
// item. A bare dash followed by a deeper block nests; a bare dash with
// no block is a null element.
func (p *Parser) parseDashList(start int) (ast.Node, int) {
	base := p.lines[start].Indent
	arr := &ast.Array{Line: p.lines[start].Num}

	i := start
	for i < len(p.lines) {
		ln := p.lines[i]
		if !ln.Significant() {
			i++
			continue
		}
		if ln.Indent < base {
			break
		}
		if ln.Indent > base {
			p.errorf(ln, "line indented under no list item")
			i++
			continue
		}
		if ln.Kind != lexer.Dash {
			break
		}

		var elem ast.Node
		if ln.Text == "-" {
			j := p.skip(i + 1)
			if j < len(p.lines) && p.lines[j].Indent > base {
				switch p.lines[j].Kind {
				case lexer.Row:
					elem, i = p.parseTable(j)
				case lexer.Dash:
					elem, i = p.parseDashList(j)
				default:
					elem, i = p.parseObject(j, p.lines[j].Indent)
				}
			} else {
				elem = &ast.Null{Line: ln.Num}
				i++
			}
		} else {
			rest := strings.TrimSpace(ln.Text[1:])
			switch {
			case rest == token.EmptyArray:
				elem = &ast.Array{Line: ln.Num}
			case isQuoted(rest):
				elem = p.primitive(rest, ln.Num)
			case strings.Contains(rest, ", "):
				elem = p.inlineList(rest, ", ", ln.Num)
			default:
				elem = p.primitive(rest, ln.Num)
			}
			i++
		}
		arr.Elements = append(arr.Elements, elem)
	}
	return arr, i
}

// parseRootArray handles the reserved "_:" form marking a top-level
// array document.
func (p *Parser) parseRootArray(i int) (ast.Node, int) {
	ln := p.lines[i]
	_, val := ln.SplitKeyValue()

	if val == "" || val == token.EmptyArray {
		j := p.skip(i + 1)
		if j < len(p.lines) && p.lines[j].Indent > ln.Indent {
			switch p.lines[j].Kind {
			case lexer.Row:
				return p.parseTable(j)
			case lexer.Dash:
				return p.parseDashList(j)
			}
		}
		return &ast.Array{Line: ln.Num}, i + 1
	}

	switch {
	case isQuoted(val):
		return &ast.Array{Line: ln.Num, Elements: []ast.Node{p.primitive(val, ln.Num)}}, i + 1
	case strings.Contains(val, " | "):
		return p.inlineList(val, " | ", ln.Num), i + 1
	case strings.Contains(val, ", "):
		return p.inlineList(val, ", ", ln.Num), i + 1
	default:
		return &ast.Array{Line: ln.Num, Elements: []ast.Node{p.primitive(val, ln.Num)}}, i + 1
	}
}

func (p *Parser) inlineList(val, sep string, line int) ast.Node {
	parts := strings.Split(val, sep)
	arr := &ast.Array{Line: line, Elements: make([]ast.Node, len(parts))}
	for i, part := range parts {
		arr.Elements[i] = p.primitive(part, line)
	}
	return arr
}

// primitive parses a single value fragment into its ast node.
func (p *Parser) primitive(s string, line int) ast.Node {
	switch v := token.ParsePrimitive(s).(type) {
	case nil:
		return &ast.Null{Line: line}
	case bool:
		return &ast.Boolean{Line: line, Value: v}
	case float64:
		return &ast.Number{Line: line, Value: v}
	case string:
		return &ast.String{Line: line, Value: v}
	default:
		return &ast.Null{Line: line}
	}
}

func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// errorf records a syntax error when strict mode is enabled.
func (p *Parser) errorf(ln lexer.Line, format string, args ...any) {
	if !p.cfg.Strict {
		return
	}
	p.errs = append(p.errs, Error{
		Line:    ln.Num,
		Column:  ln.Indent + 1,
		Message: fmt.Sprintf(format, args...),
	})
}
