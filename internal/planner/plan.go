package planner

import (
	"fmt"

	"github.com/joseph-ayodele/onboarding-agent/internal/common"
	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
)

// BuildPlan turns a decoded task list into a TaskPlan with due dates resolved
// against startDate. Any bad entry fails the whole plan.
func BuildPlan(doc entity.Value, startDate string) (entity.TaskPlan, error) {
	if _, err := ParseStartDate(startDate); err != nil {
		return nil, err
	}
	if doc.Kind() != entity.KindList {
		return nil, &common.StructuredExtractionError{Kind: "array", Cause: fmt.Errorf("task plan is %s, want list", doc.Kind())}
	}

	plan := make(entity.TaskPlan, 0, len(doc.Items()))
	for i, item := range doc.Items() {
		if item.Kind() != entity.KindMap {
			return nil, &common.StructuredExtractionError{Kind: "array", Cause: fmt.Errorf("task %d is %s, want object", i+1, item.Kind())}
		}
		task := entity.TaskItem{
			TaskName:    field(item, "task_name"),
			Description: field(item, "description"),
			AssignedTo:  field(item, "assigned_to"),
			Category:    field(item, "category"),
		}
		raw, _ := item.Get("due_in_days")
		days, err := ParseOffset(raw)
		if err != nil {
			return nil, fmt.Errorf("task %d (%s): %w", i+1, task.TaskName, err)
		}
		due, err := ResolveDueDate(startDate, days)
		if err != nil {
			return nil, fmt.Errorf("task %d (%s): %w", i+1, task.TaskName, err)
		}
		task.DueInDays = days
		task.DueDate = due
		plan = append(plan, task)
	}
	return plan, nil
}

func field(v entity.Value, key string) string {
	f, _ := v.Get(key)
	return f.String()
}
