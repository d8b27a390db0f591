package mint

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/mint-format/go-mint/internal/ast"
)

// TokenEstimate compares the approximate token cost of a value
// serialized as minified JSON versus MINT.
type TokenEstimate struct {
	JSON           int
	MINT           int
	Savings        int
	SavingsPercent int
}

// tokensPerChar is the character-count heuristic divisor. This is not a
// real tokenizer; 3.5 characters per token approximates how LLM
// tokenizers treat structured English text.
const tokensPerChar = 3.5

// EstimateTokens serializes v both as JSON and as MINT (with the given
// encode options) and reports the estimated token counts and savings.
func EstimateTokens(v any, opts ...Option) (TokenEstimate, error) {
	o, err := newOptions(opts)
	if err != nil {
		return TokenEstimate{}, err
	}

	es := &encodeState{opts: &o}
	node, err := es.marshalValue(reflect.ValueOf(v), o.maxDepth)
	if err != nil {
		return TokenEstimate{}, err
	}

	mintText, err := Marshal(v, opts...)
	if err != nil {
		return TokenEstimate{}, err
	}
	jsonText, err := json.Marshal(nodeValue(node))
	if err != nil {
		return TokenEstimate{}, err
	}

	est := TokenEstimate{
		JSON: estimate(len(jsonText)),
		MINT: estimate(len(mintText)),
	}
	est.Savings = est.JSON - est.MINT
	if est.JSON > 0 {
		est.SavingsPercent = int(math.Round(float64(est.Savings) / float64(est.JSON) * 100))
	}
	return est, nil
}

func estimate(chars int) int {
	return int(math.Ceil(float64(chars) / tokensPerChar))
}

// nodeValue converts an ast node to the ordered value model, so the
// JSON equivalent preserves the same key order as the MINT output.
func nodeValue(n ast.Node) any {
	switch v := n.(type) {
	case *ast.Boolean:
		return v.Value
	case *ast.Number:
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			// Non-finite numbers encode as null on the MINT side.
			return nil
		}
		return v.Value
	case *ast.String:
		return v.Value
	case *ast.Array:
		arr := make(Array, len(v.Elements))
		for i, e := range v.Elements {
			arr[i] = nodeValue(e)
		}
		return arr
	case *ast.Object:
		obj := make(Object, 0, len(v.Pairs))
		for _, p := range v.Pairs {
			obj = append(obj, Member{Key: p.Key, Value: nodeValue(p.Value)})
		}
		return obj
	default:
		return nil
	}
}
