package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
)

func parse(t *testing.T, s string) entity.Value {
	t.Helper()
	v, err := entity.ParseJSON([]byte(s))
	require.NoError(t, err)
	return v
}

func TestSectionValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty list", `[]`, ""},
		{"single map", `[{"a":"1","b":"2"}]`, "a: 1, b: 2"},
		{"strings", `["x","y"]`, "x | y"},
		{"mixed", `["BSc",{"school":"MIT","year":2020}]`, "BSc | school: MIT, year: 2020"},
		{"nested list in map", `[{"tech":["Go","SQL"]}]`, "tech: Go, SQL"},
		{"null entry", `[null,"x"]`, " | x"},
		{"not a list", `{"a":"1"}`, ""},
		{"string", `"BSc"`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SectionValue(parse(t, tt.in)))
		})
	}
}

func TestSkills(t *testing.T) {
	assert.Equal(t, "Go, SQL", Skills([]string{"Go", "SQL"}))
	assert.Equal(t, "", Skills(nil))
}

func TestRecord(t *testing.T) {
	doc := parse(t, `{
		"name": "Jo",
		"email": "jo@x.com",
		"skills": ["Go"],
		"education": [],
		"work_experience": [{"position": "Software Engineer", "company": "Acme"}]
	}`)
	got := Record(entity.CandidateFromValue(doc))
	assert.Equal(t, entity.FlatRecord{
		Name:           "Jo",
		Email:          "jo@x.com",
		Skills:         "Go",
		WorkExperience: "position: Software Engineer, company: Acme",
	}, got)
}
