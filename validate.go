package mint

import (
	"fmt"
	"strings"

	"github.com/mint-format/go-mint/internal/lexer"
	"github.com/mint-format/go-mint/internal/token"
)

// ValidationError describes one structural problem found by Validate.
// Line and Column are 1-based; Context holds the offending raw line.
type ValidationError struct {
	Line    int
	Column  int
	Message string
	Context string
}

// ValidationResult is the outcome of a Validate call. Valid is true
// when no errors were recorded.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Validate checks the line structure of MINT text in a single forward
// pass, without building a value tree: indentation must be a multiple
// of the configured unit, every row of a table must carry the header's
// pipe count, and every table line must end with a pipe.
//
// Validate never returns a Go error. All problems, including invalid
// options, are reported in the result.
func Validate(data []byte, opts ...Option) *ValidationResult {
	var errs []ValidationError

	o, err := newOptions(opts)
	if err != nil {
		errs = append(errs, ValidationError{Line: 0, Column: 0, Message: err.Error()})
		return &ValidationResult{Valid: false, Errors: errs}
	}

	inTable := false
	headerPipes := 0
	for _, ln := range lexer.Scan(data) {
		if !ln.Significant() {
			continue
		}

		if ln.Indent%o.indent != 0 {
			errs = append(errs, ValidationError{
				Line:    ln.Num,
				Column:  ln.Indent + 1,
				Message: fmt.Sprintf("indentation of %d spaces is not a multiple of %d", ln.Indent, o.indent),
				Context: ln.Raw,
			})
		}

		if ln.Kind != lexer.Row {
			inTable = false
			continue
		}

		pipes := strings.Count(ln.Text, string(token.TableMarker))
		if !inTable {
			inTable = true
			headerPipes = pipes
		} else if pipes != headerPipes {
			errs = append(errs, ValidationError{
				Line:    ln.Num,
				Column:  ln.Indent + 1,
				Message: fmt.Sprintf("table row has %d pipes, header has %d", pipes, headerPipes),
				Context: ln.Raw,
			})
		}
		if !strings.HasSuffix(ln.Text, string(token.TableMarker)) {
			errs = append(errs, ValidationError{
				Line:    ln.Num,
				Column:  ln.Indent + len(ln.Text),
				Message: "table row is missing its terminating pipe",
				Context: ln.Raw,
			})
		}
	}

	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
