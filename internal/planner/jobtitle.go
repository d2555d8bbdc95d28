package planner

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/onboarding-agent/constants"
)

var rePosition = regexp.MustCompile(`(?i)position"\s*:\s*"([^"]+)"`)

// roleKeywords are checked in order; the first substring hit wins.
var roleKeywords = []string{"Engineer", "Intern", "Manager"}

// ExtractJobTitle guesses a role from flattened work-experience text. The
// result is advisory prompt input only.
func ExtractJobTitle(experience string) string {
	if m := rePosition.FindStringSubmatch(experience); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			return title
		}
	}
	for _, kw := range roleKeywords {
		if strings.Contains(experience, kw) {
			return kw
		}
	}
	return constants.FallbackJobTitle
}
