// mint converts between JSON and MINT text.
//
// The direction defaults by file extension: .json input encodes to
// MINT, .mint input decodes to JSON. For stdin or other extensions the
// -encode/-decode flags pick the direction (encode is the default).
//
//	mint config.json            # JSON -> MINT on stdout
//	mint -o config.json in.mint # MINT -> JSON into a file
//	mint -validate in.mint      # check structure, exit 1 when invalid
//	mint -stats config.json     # report token savings on stderr
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	mint "github.com/mint-format/go-mint"
)

func main() {
	out := flag.String("o", "-", "output file (or - for stdout)")
	encode := flag.Bool("encode", false, "force JSON -> MINT")
	decode := flag.Bool("decode", false, "force MINT -> JSON")
	validate := flag.Bool("validate", false, "validate MINT input only; exit 1 when invalid")
	stats := flag.Bool("stats", false, "print a token estimate to stderr")
	compact := flag.Bool("compact", false, "encode status words as compact symbols")
	indent := flag.Int("indent", 2, "indentation unit in spaces")
	strict := flag.Bool("strict", false, "reject malformed MINT input instead of recovering")
	flag.Parse()

	if *encode && *decode {
		fatalf("cannot use -encode and -decode together")
	}

	in := "-"
	if flag.NArg() > 0 {
		in = flag.Arg(0)
	}

	var data []byte
	var err error
	if in == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("read stdin: %v", err)
		}
	} else {
		data, err = os.ReadFile(in)
		if err != nil {
			fatalf("read input: %v", err)
		}
	}

	if *validate {
		result := mint.Validate(data, mint.Indent(*indent))
		if !result.Valid {
			for _, e := range result.Errors {
				fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", in, e.Line, e.Column, e.Message)
			}
			os.Exit(1)
		}
		return
	}

	toMINT := !*decode
	if !*encode && !*decode {
		toMINT = !strings.HasSuffix(in, ".mint")
	}

	opts := []mint.Option{mint.Indent(*indent)}
	if *compact {
		opts = append(opts, mint.Compact())
	}

	var output []byte
	if toMINT {
		v, err := decodeJSON(data)
		if err != nil {
			fatalf("invalid JSON input: %v", err)
		}
		output, err = mint.Marshal(v, opts...)
		if err != nil {
			fatalf("encode: %v", err)
		}
		if *stats {
			printStats(v, opts)
		}
	} else {
		if *strict {
			opts = append(opts, mint.Strict())
		}
		var v any
		if err := mint.Unmarshal(data, &v, opts...); err != nil {
			fatalf("invalid MINT input: %v", err)
		}
		output, err = json.Marshal(v)
		if err != nil {
			fatalf("encode JSON: %v", err)
		}
		if *stats {
			printStats(v, opts)
		}
	}

	w := os.Stdout
	if *out != "-" {
		w, err = os.Create(*out)
		if err != nil {
			fatalf("create output: %v", err)
		}
		defer w.Close()
	}
	if _, err := w.Write(output); err != nil {
		fatalf("write: %v", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		fatalf("write: %v", err)
	}
}

// decodeJSON unmarshals JSON into the ordered value model, so object
// key order survives the conversion.
func decodeJSON(data []byte) (any, error) {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case strings.HasPrefix(trimmed, "{"):
		var o mint.Object
		err := json.Unmarshal(data, &o)
		return o, err
	case strings.HasPrefix(trimmed, "["):
		var a mint.Array
		err := json.Unmarshal(data, &a)
		return a, err
	default:
		var v any
		err := json.Unmarshal(data, &v)
		return v, err
	}
}

func printStats(v any, opts []mint.Option) {
	est, err := mint.EstimateTokens(v, opts...)
	if err != nil {
		fatalf("estimate: %v", err)
	}
	fmt.Fprintf(os.Stderr, "json: ~%d tokens, mint: ~%d tokens, savings: %d (%d%%)\n",
		est.JSON, est.MINT, est.Savings, est.SavingsPercent)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
