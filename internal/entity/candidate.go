package entity

import (
	"strings"

	"github.com/joseph-ayodele/onboarding-agent/constants"
)

// CandidateRecord is the structured shape we want from the resume prompt.
// Every field is optional in the model output.
type CandidateRecord struct {
	Name           string
	Email          string
	Phone          string
	Skills         []string
	Education      []Value // each entry a string or a map
	WorkExperience []Value
}

// CandidateFromValue reads a decoded model object. Missing or oddly shaped
// fields fall back to empty values; a list-valued section that is not a list
// is treated as missing.
func CandidateFromValue(v Value) CandidateRecord {
	return CandidateRecord{
		Name:           scalar(v, "name"),
		Email:          scalar(v, "email"),
		Phone:          scalar(v, "phone"),
		Skills:         stringList(v, "skills"),
		Education:      section(v, "education"),
		WorkExperience: section(v, "work_experience"),
	}
}

func scalar(v Value, key string) string {
	f, _ := v.Get(key)
	return f.String()
}

func stringList(v Value, key string) []string {
	f, _ := v.Get(key)
	switch f.Kind() {
	case KindList:
		out := make([]string, 0, len(f.Items()))
		for _, it := range f.Items() {
			out = append(out, it.String())
		}
		return out
	case KindString:
		if s := strings.TrimSpace(f.Str()); s != "" {
			return []string{s}
		}
	}
	return nil
}

func section(v Value, key string) []Value {
	f, _ := v.Get(key)
	if f.Kind() != KindList {
		return nil
	}
	return f.Items()
}

// FlatRecord is the single tabular row written for a candidate.
type FlatRecord struct {
	Name           string
	Email          string
	Phone          string
	Skills         string
	Education      string
	WorkExperience string
}

// Header returns the column names in file order.
func (FlatRecord) Header() []string {
	return append([]string(nil), constants.CandidateFields...)
}

// Row returns the values in Header order.
func (r FlatRecord) Row() []string {
	return []string{r.Name, r.Email, r.Phone, r.Skills, r.Education, r.WorkExperience}
}

// FlatRecordFromRow maps a row back by header name; unknown columns are ignored
// and missing ones are left empty.
func FlatRecordFromRow(header, row []string) FlatRecord {
	get := func(name string) string {
		for i, h := range header {
			if strings.TrimSpace(h) == name && i < len(row) {
				return row[i]
			}
		}
		return ""
	}
	return FlatRecord{
		Name:           get("name"),
		Email:          get("email"),
		Phone:          get("phone"),
		Skills:         get("skills"),
		Education:      get("education"),
		WorkExperience: get("work_experience"),
	}
}

// ResumeSummary is what the task planner knows about a new hire: the flat
// record read back from disk plus the derived job title.
type ResumeSummary struct {
	Name           string
	Email          string
	Phone          string
	Skills         []string
	Education      string
	WorkExperience string
	JobTitle       string
}
