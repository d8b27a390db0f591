// Package lexer splits MINT source into classified lines. MINT is
// line-oriented: nesting is expressed by indentation, so the lexer's
// unit of work is a whole line, not a rune.
package lexer

import (
	"strings"

	"github.com/mint-format/go-mint/internal/token"
)

// Kind classifies a line by its leading characters.
type Kind int

const (
	// Blank is a line containing only whitespace.
	Blank Kind = iota
	// Comment is a line whose first significant character is '#'.
	Comment
	// Row is a table line, starting with a pipe.
	Row
	// Dash is a list-item line: a bare dash, or a dash and a space.
	Dash
	// KeyValue is a line containing a colon.
	KeyValue
	// Scalar is any other line; it holds a single primitive.
	Scalar
)

// Line is one source line with its indentation stripped.
type Line struct {
	Num    int    // 1-based line number
	Indent int    // count of leading space characters
	Text   string // line content with surrounding whitespace trimmed
	Raw    string // original line, for error context
	Kind   Kind
}

// Scan normalizes line endings and splits data into classified lines.
// Both CRLF and bare CR are treated as line breaks.
func Scan(data []byte) []Line {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]Line, len(raw))
	for i, r := range raw {
		indent := 0
		for indent < len(r) && r[indent] == ' ' {
			indent++
		}
		trimmed := strings.TrimSpace(r)
		lines[i] = Line{
			Num:    i + 1,
			Indent: indent,
			Text:   trimmed,
			Raw:    r,
			Kind:   classify(trimmed),
		}
	}
	return lines
}

func classify(text string) Kind {
	switch {
	case text == "":
		return Blank
	case text[0] == token.CommentChar:
		return Comment
	case text[0] == token.TableMarker:
		return Row
	case text == "-" || strings.HasPrefix(text, "- "):
		return Dash
	case strings.ContainsRune(text, ':'):
		return KeyValue
	default:
		return Scalar
	}
}

// Significant reports whether a line carries content: neither blank
// nor a comment.
func (l Line) Significant() bool {
	return l.Kind != Blank && l.Kind != Comment
}

// SplitKeyValue splits a KeyValue line's text on its first colon,
// returning the key and the trimmed value text.
func (l Line) SplitKeyValue() (key, value string) {
	i := strings.IndexByte(l.Text, ':')
	if i < 0 {
		return l.Text, ""
	}
	return strings.TrimSpace(l.Text[:i]), strings.TrimSpace(l.Text[i+1:])
}

// Cells splits a Row line into its cell fragments: the text is split on
// every pipe and the leading and trailing empty fragments are dropped.
func (l Line) Cells() []string {
	parts := strings.Split(l.Text, string(token.TableMarker))
	if len(parts) < 2 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
