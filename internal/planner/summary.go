package planner

import (
	"strings"

	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
)

// Summarize rebuilds the planner's view of a hire from a parsed resume row.
func Summarize(r entity.FlatRecord) entity.ResumeSummary {
	var skills []string
	for _, s := range strings.Split(r.Skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return entity.ResumeSummary{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Skills:         skills,
		Education:      r.Education,
		WorkExperience: r.WorkExperience,
		JobTitle:       ExtractJobTitle(r.WorkExperience),
	}
}
