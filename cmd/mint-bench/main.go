// mint-bench measures MINT's size and token savings over a JSON corpus.
//
// For every case listed in the corpus manifest it reports the byte size
// of minified JSON, MINT, YAML and msgpack encodings, the
// zstd-compressed sizes of the two text forms, and the estimated token
// counts. Results go to stdout as an aligned table, and optionally to
// CSV or Markdown files.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	mint "github.com/mint-format/go-mint"
)

type manifest struct {
	Version     string `json:"version"`
	Description string `json:"description"`
	Cases       []struct {
		Name string `json:"name"`
		File string `json:"file"`
	} `json:"cases"`
}

type caseResult struct {
	Name       string
	JSONBytes  int
	MINTBytes  int
	YAMLBytes  int
	MsgpBytes  int
	JSONZstd   int
	MINTZstd   int
	JSONTokens int
	MINTTokens int
	TokensPct  float64
}

func main() {
	corpus := flag.String("corpus", "testdata/bench", "corpus directory containing manifest.json")
	csvOut := flag.String("csv", "", "write per-case results as CSV to this file")
	mdOut := flag.String("md", "", "write a Markdown summary to this file")
	compact := flag.Bool("compact", false, "encode with compact status symbols")
	flag.Parse()

	manifestData, err := os.ReadFile(filepath.Join(*corpus, "manifest.json"))
	if err != nil {
		fatalf("read manifest: %v", err)
	}
	var m manifest
	if err := json.Unmarshal(manifestData, &m); err != nil {
		fatalf("parse manifest: %v", err)
	}

	var opts []mint.Option
	if *compact {
		opts = append(opts, mint.Compact())
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		fatalf("zstd: %v", err)
	}
	defer enc.Close()

	var results []caseResult
	for _, c := range m.Cases {
		jsonData, err := os.ReadFile(filepath.Join(*corpus, c.File))
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", c.Name, err)
			continue
		}
		r, err := runCase(c.Name, jsonData, enc, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", c.Name, err)
			continue
		}
		results = append(results, r)
	}

	printTable(results)

	if *csvOut != "" {
		if err := writeCSV(*csvOut, results); err != nil {
			fatalf("write csv: %v", err)
		}
	}
	if *mdOut != "" {
		if err := writeMarkdown(*mdOut, m.Version, results); err != nil {
			fatalf("write markdown: %v", err)
		}
	}
}

func runCase(name string, jsonData []byte, enc *zstd.Encoder, opts []mint.Option) (caseResult, error) {
	var v mint.Object
	if err := json.Unmarshal(jsonData, &v); err != nil {
		return caseResult{}, fmt.Errorf("parse: %w", err)
	}

	jsonMin, err := json.Marshal(v)
	if err != nil {
		return caseResult{}, err
	}
	mintText, err := mint.Marshal(v, opts...)
	if err != nil {
		return caseResult{}, err
	}
	yamlText, err := yaml.Marshal(v)
	if err != nil {
		return caseResult{}, err
	}
	msgp, err := msgpack.Marshal(plain(v))
	if err != nil {
		return caseResult{}, err
	}
	est, err := mint.EstimateTokens(v, opts...)
	if err != nil {
		return caseResult{}, err
	}

	r := caseResult{
		Name:       name,
		JSONBytes:  len(jsonMin),
		MINTBytes:  len(mintText),
		YAMLBytes:  len(yamlText),
		MsgpBytes:  len(msgp),
		JSONZstd:   len(enc.EncodeAll(jsonMin, nil)),
		MINTZstd:   len(enc.EncodeAll(mintText, nil)),
		JSONTokens: est.JSON,
		MINTTokens: est.MINT,
	}
	if est.JSON > 0 {
		r.TokensPct = float64(est.Savings) / float64(est.JSON) * 100
	}
	return r, nil
}

// plain strips the ordered wrapper types so msgpack sees maps and
// slices it knows how to encode.
func plain(v any) any {
	switch t := v.(type) {
	case mint.Object:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case mint.Array:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = plain(e)
		}
		return s
	default:
		return v
	}
}

func printTable(results []caseResult) {
	fmt.Printf("%-20s %10s %10s %10s %10s %10s %10s %8s %8s %7s\n",
		"case", "json", "mint", "yaml", "msgpack", "json+zstd", "mint+zstd", "tok/json", "tok/mint", "save%")
	var totJSON, totMINT, totJSONTok, totMINTTok int
	for _, r := range results {
		fmt.Printf("%-20s %10d %10d %10d %10d %10d %10d %8d %8d %6.1f%%\n",
			r.Name, r.JSONBytes, r.MINTBytes, r.YAMLBytes, r.MsgpBytes,
			r.JSONZstd, r.MINTZstd, r.JSONTokens, r.MINTTokens, r.TokensPct)
		totJSON += r.JSONBytes
		totMINT += r.MINTBytes
		totJSONTok += r.JSONTokens
		totMINTTok += r.MINTTokens
	}
	if len(results) > 1 && totJSONTok > 0 {
		pct := float64(totJSONTok-totMINTTok) / float64(totJSONTok) * 100
		fmt.Printf("%-20s %10d %10d %32s %8d %8d %6.1f%%\n",
			"total", totJSON, totMINT, "", totJSONTok, totMINTTok, pct)
	}
}

func writeCSV(path string, results []caseResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"case", "json_bytes", "mint_bytes", "yaml_bytes", "msgpack_bytes",
		"json_zstd", "mint_zstd", "json_tokens", "mint_tokens", "token_savings_pct",
	}); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.Name,
			strconv.Itoa(r.JSONBytes), strconv.Itoa(r.MINTBytes),
			strconv.Itoa(r.YAMLBytes), strconv.Itoa(r.MsgpBytes),
			strconv.Itoa(r.JSONZstd), strconv.Itoa(r.MINTZstd),
			strconv.Itoa(r.JSONTokens), strconv.Itoa(r.MINTTokens),
			strconv.FormatFloat(r.TokensPct, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeMarkdown(path, version string, results []caseResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# MINT benchmark (corpus %s)\n\n", version)
	b.WriteString("| case | json | mint | yaml | msgpack | json+zstd | mint+zstd | tok/json | tok/mint | save% |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|---|\n")
	for _, r := range results {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %d | %d | %d | %d | %.1f%% |\n",
			r.Name, r.JSONBytes, r.MINTBytes, r.YAMLBytes, r.MsgpBytes,
			r.JSONZstd, r.MINTZstd, r.JSONTokens, r.MINTTokens, r.TokensPct)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
