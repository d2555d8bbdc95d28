package entity

import (
	"strconv"

	"github.com/joseph-ayodele/onboarding-agent/constants"
)

// TaskItem is one onboarding task. DueDate is derived from the plan start
// date and DueInDays, never taken from the model.
type TaskItem struct {
	TaskName    string
	Description string
	DueInDays   int
	DueDate     string // YYYY-MM-DD
	AssignedTo  string
	Category    string
}

// TaskPlan is an ordered list of tasks; position is the only identity.
type TaskPlan []TaskItem

// TaskHeader returns the task plan columns in file order.
func TaskHeader() []string {
	return append([]string(nil), constants.TaskFields...)
}

// Row returns the values in TaskHeader order.
func (t TaskItem) Row() []string {
	return []string{t.TaskName, t.Description, strconv.Itoa(t.DueInDays), t.DueDate, t.AssignedTo, t.Category}
}

// Rows flattens the plan for a tabular writer.
func (p TaskPlan) Rows() [][]string {
	rows := make([][]string, 0, len(p))
	for _, t := range p {
		rows = append(rows, t.Row())
	}
	return rows
}
