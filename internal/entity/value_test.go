package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONKeepsKeyOrder(t *testing.T) {
	v, err := ParseJSON([]byte(`{"z":"1","a":{"y":2,"b":true},"m":null}`))
	require.NoError(t, err)
	require.Equal(t, KindMap, v.Kind())

	var keys []string
	for _, f := range v.Fields() {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)

	a, ok := v.Get("a")
	require.True(t, ok)
	assert.Equal(t, "y: 2, b: true", a.String())

	m, ok := v.Get("m")
	require.True(t, ok)
	assert.True(t, m.IsNull())
	assert.Equal(t, "", m.String())
}

func TestParseJSONNumbersKeepText(t *testing.T) {
	v, err := ParseJSON([]byte(`[5, 5.0, 1e2, -3]`))
	require.NoError(t, err)
	var got []string
	for _, it := range v.Items() {
		got = append(got, it.Str())
	}
	assert.Equal(t, []string{"5", "5.0", "1e2", "-3"}, got)
}

func TestParseJSONDuplicateKeyLastWins(t *testing.T) {
	v, err := ParseJSON([]byte(`{"a":"1","b":"2","a":"3"}`))
	require.NoError(t, err)
	require.Len(t, v.Fields(), 2)
	assert.Equal(t, "a", v.Fields()[0].Key)
	assert.Equal(t, "3", v.Fields()[0].Value.Str())
}

func TestParseJSONRejectsInvalid(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a":1}{"b":2}`, `{'a':1}`, `[1,]`} {
		_, err := ParseJSON([]byte(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestValueUnmarshalJSON(t *testing.T) {
	var v Value
	require.NoError(t, v.UnmarshalJSON([]byte(`{"skills":["Go","SQL"]}`)))
	s, ok := v.Get("skills")
	require.True(t, ok)
	assert.Equal(t, "Go, SQL", s.String())

	_, ok = v.Get("missing")
	assert.False(t, ok)
}

func TestCandidateFromValue(t *testing.T) {
	v, err := ParseJSON([]byte(`{
		"name": "Jo",
		"email": "jo@x.com",
		"phone": 5551234,
		"skills": "Go",
		"education": {"degree": "BSc"},
		"work_experience": [{"position": "Engineer"}]
	}`))
	require.NoError(t, err)

	c := CandidateFromValue(v)
	assert.Equal(t, "Jo", c.Name)
	assert.Equal(t, "5551234", c.Phone)
	assert.Equal(t, []string{"Go"}, c.Skills)
	assert.Nil(t, c.Education, "non-list section is treated as missing")
	require.Len(t, c.WorkExperience, 1)
}

func TestCandidateFromValueEmpty(t *testing.T) {
	c := CandidateFromValue(Map())
	assert.Equal(t, CandidateRecord{}, c)
}

func TestFlatRecordRoundTripByHeader(t *testing.T) {
	r := FlatRecord{Name: "Jo", Email: "jo@x.com", Skills: "Go, SQL", WorkExperience: "position: Engineer"}
	assert.Equal(t, []string{"name", "email", "phone", "skills", "education", "work_experience"}, r.Header())
	assert.Equal(t, r, FlatRecordFromRow(r.Header(), r.Row()))

	// columns matched by name, extras ignored
	got := FlatRecordFromRow([]string{"extra", "skills", "name"}, []string{"x", "Go", "Jo"})
	assert.Equal(t, FlatRecord{Name: "Jo", Skills: "Go"}, got)
}

func TestTaskRows(t *testing.T) {
	plan := TaskPlan{{TaskName: "Setup", Description: "Laptop", DueInDays: 2, DueDate: "2024-01-03", AssignedTo: "IT", Category: "Admin"}}
	assert.Equal(t, []string{"task_name", "description", "due_in_days", "due_date", "assigned_to", "category"}, TaskHeader())
	assert.Equal(t, [][]string{{"Setup", "Laptop", "2", "2024-01-03", "IT", "Admin"}}, plan.Rows())
}
