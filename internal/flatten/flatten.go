// Package flatten turns nested candidate data into the delimiter-joined
// strings stored in a flat tabular row. The mapping is lossy and one-way.
package flatten

import (
	"strings"

	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
)

const (
	EntrySep = " | "
	PairSep  = ", "
	SkillSep = ", "
)

// Entry renders one section entry. Maps become "key: value" pairs in their
// decoded order; anything else uses its display string.
func Entry(v entity.Value) string {
	switch v.Kind() {
	case entity.KindMap:
		pairs := make([]string, 0, len(v.Fields()))
		for _, f := range v.Fields() {
			pairs = append(pairs, f.Key+": "+f.Value.String())
		}
		return strings.Join(pairs, PairSep)
	case entity.KindString:
		return v.Str()
	case entity.KindList:
		return v.String()
	case entity.KindNull:
		return ""
	}
	return ""
}

// Section joins entries with " | ". An empty or missing section is "".
func Section(entries []entity.Value) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, Entry(e))
	}
	return strings.Join(parts, EntrySep)
}

// SectionValue flattens a raw field value; anything but a list yields "".
func SectionValue(v entity.Value) string {
	if v.Kind() != entity.KindList {
		return ""
	}
	return Section(v.Items())
}

// Skills joins a simple string list with ", ".
func Skills(skills []string) string {
	return strings.Join(skills, SkillSep)
}

// Record derives the fixed six-field row for a candidate.
func Record(c entity.CandidateRecord) entity.FlatRecord {
	return entity.FlatRecord{
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Skills:         Skills(c.Skills),
		Education:      Section(c.Education),
		WorkExperience: Section(c.WorkExperience),
	}
}
