package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
)

func TestExtractObjectFromProse(t *testing.T) {
	raw := "Sure! Here it is:\n```json\n{\"name\":\"Jo\",\"skills\":[\"Go\"]}\n```\nLet me know."
	v, span, err := ExtractObject(raw)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Jo","skills":["Go"]}`, string(span))
	name, _ := v.Get("name")
	assert.Equal(t, "Jo", name.Str())
}

func TestExtractArrayFromProse(t *testing.T) {
	raw := `Plan: [{"task_name":"Setup","due_in_days":0}] done`
	v, _, err := ExtractArray(raw)
	require.NoError(t, err)
	assert.Equal(t, entity.KindList, v.Kind())
	assert.Len(t, v.Items(), 1)
}

func TestExtractNoSpan(t *testing.T) {
	_, _, err := ExtractObject("I cannot help with that.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStructuredExtraction))

	var se *common.StructuredExtractionError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "I cannot help with that.", se.Raw)
	assert.Equal(t, "object", se.Kind)
}

func TestExtractCloseBeforeOpen(t *testing.T) {
	_, _, err := ExtractArray("] nothing [")
	assert.ErrorIs(t, err, common.ErrStructuredExtraction)
}

func TestExtractGreedySpanFailsOnTwoFragments(t *testing.T) {
	raw := `{"a":"1"} and also {"b":"2"}`
	_, span, err := ExtractObject(raw)
	require.Error(t, err)
	assert.Equal(t, raw, string(span))

	var se *common.StructuredExtractionError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, raw, se.Raw)
}

func TestExtractArrayNestedInObject(t *testing.T) {
	// an array nested in an object still yields a list span
	v, _, err := ExtractArray(`{"tasks":[{"task_name":"A"}]}`)
	require.NoError(t, err)
	assert.Equal(t, entity.KindList, v.Kind())
}

func TestFindSpan(t *testing.T) {
	s, ok := FindSpan("xx{a}yy}zz", '{', '}')
	assert.True(t, ok)
	assert.Equal(t, "{a}yy}", s)

	_, ok = FindSpan("no braces", '{', '}')
	assert.False(t, ok)
}
