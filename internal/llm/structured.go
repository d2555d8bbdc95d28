package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
)

var errNoSpan = errors.New("no JSON span found")

// ExtractObject recovers the JSON object embedded in raw model output.
// It returns the decoded value and the exact span that was parsed.
func ExtractObject(raw string) (entity.Value, []byte, error) {
	return extract(raw, '{', '}', entity.KindMap, "object")
}

// ExtractArray recovers the JSON array embedded in raw model output.
func ExtractArray(raw string) (entity.Value, []byte, error) {
	return extract(raw, '[', ']', entity.KindList, "array")
}

// FindSpan returns raw[first open : last close+1]. The match is greedy and
// does not balance nesting: prose with stray delimiters before or after the
// JSON, or several JSON fragments, will produce a span that fails to parse.
func FindSpan(raw string, open, close byte) (string, bool) {
	start := strings.IndexByte(raw, open)
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(raw, close)
	if end < start {
		return "", false
	}
	return raw[start : end+1], true
}

func extract(raw string, open, close byte, want entity.Kind, kind string) (entity.Value, []byte, error) {
	span, ok := FindSpan(raw, open, close)
	if !ok {
		return entity.Value{}, nil, &common.StructuredExtractionError{Kind: kind, Raw: raw, Cause: errNoSpan}
	}
	v, err := entity.ParseJSON([]byte(span))
	if err != nil {
		return entity.Value{}, []byte(span), &common.StructuredExtractionError{Kind: kind, Raw: raw, Cause: err}
	}
	if v.Kind() != want {
		return entity.Value{}, []byte(span), &common.StructuredExtractionError{
			Kind: kind, Raw: raw,
			Cause: fmt.Errorf("decoded %s, want %s", v.Kind(), want),
		}
	}
	return v, []byte(span), nil
}
