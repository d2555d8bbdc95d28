package export

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joseph-ayodele/onboarding-agent/constants"
)

// ResumeFileName is parsed_resume_<YYYYMMDDHHMMSS>.csv.
func ResumeFileName(now time.Time) string {
	return constants.ResumeFilePrefix + now.Format(constants.TimestampLayout) + constants.ResumeFileExt
}

// TaskPlanFileName is task_plan_<YYYYMMDDHHMMSS>.txt.
func TaskPlanFileName(now time.Time) string {
	return constants.TaskPlanFilePrefix + now.Format(constants.TimestampLayout) + constants.TaskPlanFileExt
}

// UniquePath joins dir and name(now), stepping the timestamp forward a second
// at a time while the path is taken so the naming pattern is preserved. Each
// sibling extension (".xlsx") names a companion file that must be free too.
func UniquePath(dir string, now time.Time, name func(time.Time) string, siblings ...string) string {
	for i := 0; i < 60; i++ {
		p := filepath.Join(dir, name(now))
		if free(p) && siblingsFree(p, siblings) {
			return p
		}
		now = now.Add(time.Second)
	}
	return filepath.Join(dir, name(now))
}

// SiblingPath swaps the extension of path for ext.
func SiblingPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func siblingsFree(path string, exts []string) bool {
	for _, ext := range exts {
		if !free(SiblingPath(path, ext)) {
			return false
		}
	}
	return true
}

func free(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}
