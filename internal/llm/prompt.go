package llm

import (
	"strings"

	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
)

const (
	ResumeSystemPrompt   = "You are a helpful assistant that extracts resume information."
	TaskPlanSystemPrompt = "You are a helpful assistant that creates onboarding plans."
)

// BuildResumePrompt wraps extracted resume text in the candidate-parsing
// instructions. The model is told to answer with a bare JSON object.
func BuildResumePrompt(resumeText string) string {
	var b strings.Builder
	b.WriteString("You are an intelligent HR assistant. Parse the following resume and extract structured information.\n")
	b.WriteString("Return ONLY valid JSON with no markdown, commentary, or explanations. The format must be:\n\n")
	b.WriteString("{\n")
	b.WriteString("  \"name\": \"\",\n")
	b.WriteString("  \"email\": \"\",\n")
	b.WriteString("  \"phone\": \"\",\n")
	b.WriteString("  \"skills\": [],\n")
	b.WriteString("  \"education\": [],\n")
	b.WriteString("  \"work_experience\": []\n")
	b.WriteString("}\n\n")
	b.WriteString("Resume Text:\n\"\"\"\n")
	b.WriteString(resumeText)
	b.WriteString("\n\"\"\"")
	return b.String()
}

// BuildTaskPlanPrompt asks for a 30-day onboarding plan as a JSON list,
// personalized with the job title, start date and resume summary.
func BuildTaskPlanPrompt(s entity.ResumeSummary, startDate string) string {
	var b strings.Builder
	b.WriteString("You are an intelligent HR assistant. Based on the following new hire's resume and their most recent job title, ")
	b.WriteString("generate a personalized 30-day onboarding task plan.\n\n")
	b.WriteString("Return a JSON list. Each task must include:\n")
	b.WriteString("- \"task_name\"\n")
	b.WriteString("- \"description\"\n")
	b.WriteString("- \"due_in_days\" (a whole number of days after the start date, 0 or more)\n")
	b.WriteString("- \"assigned_to\"\n")
	b.WriteString("- \"category\"\n\n")
	b.WriteString("Only return valid JSON.\n\n")
	b.WriteString("Job Title: " + s.JobTitle + "\n")
	b.WriteString("Start Date: " + startDate + "\n\n")
	b.WriteString("Resume Summary:\n\"\"\"\n")
	b.WriteString("Name: " + s.Name + "\n")
	b.WriteString("Email: " + s.Email + "\n")
	b.WriteString("Phone: " + s.Phone + "\n")
	b.WriteString("Skills: " + strings.Join(s.Skills, ", ") + "\n")
	b.WriteString("Education: " + s.Education + "\n")
	b.WriteString("Experience: " + s.WorkExperience + "\n")
	b.WriteString("\"\"\"\n")
	return b.String()
}

// ResumeRequest is the full chat request for resume parsing.
func ResumeRequest(resumeText string, temperature float32) ChatRequest {
	return ChatRequest{
		System:      ResumeSystemPrompt,
		User:        BuildResumePrompt(resumeText),
		Temperature: temperature,
	}
}

// TaskPlanRequest is the full chat request for task planning.
func TaskPlanRequest(s entity.ResumeSummary, startDate string, temperature float32) ChatRequest {
	return ChatRequest{
		System:      TaskPlanSystemPrompt,
		User:        BuildTaskPlanPrompt(s, startDate),
		Temperature: temperature,
	}
}
