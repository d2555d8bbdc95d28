package constants

// Layouts used for dates in plans and for output file stamps.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "20060102150405"
)

// Output file naming. Downstream tooling globs these patterns, keep them stable.
const (
	ResumeFilePrefix   = "parsed_resume_"
	ResumeFileExt      = ".csv"
	TaskPlanFilePrefix = "task_plan_"
	TaskPlanFileExt    = ".txt" // comma-delimited despite the extension
)

// CandidateFields is the header of a parsed resume file, in order.
var CandidateFields = []string{"name", "email", "phone", "skills", "education", "work_experience"}

// TaskFields is the header of a task plan file, in order.
var TaskFields = []string{"task_name", "description", "due_in_days", "due_date", "assigned_to", "category"}

// FallbackJobTitle is used when no role can be recovered from work experience.
const FallbackJobTitle = "New Hire"
