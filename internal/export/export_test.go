package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/onboarding-agent/internal/entity"
)

func TestWriteCandidateExactBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.csv")
	require.NoError(t, WriteCandidate(path, entity.FlatRecord{Name: "Jo", Email: "jo@x.com", Skills: "Go"}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,email,phone,skills,education,work_experience\nJo,jo@x.com,,Go,,\n", string(b))
}

func TestCandidateRoundTripWithDelimiters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.csv")
	rec := entity.FlatRecord{
		Name:           `Jo "JJ" Doe`,
		Skills:         "Go, SQL",
		Education:      "BSc | school: MIT, year: 2020",
		WorkExperience: "line one\nline two",
	}
	require.NoError(t, WriteCandidate(path, rec))

	got, err := ReadCandidate(path)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestReadCandidateBOMAndNoRows(t *testing.T) {
	dir := t.TempDir()
	bom := filepath.Join(dir, "bom.csv")
	require.NoError(t, os.WriteFile(bom, []byte("\ufeffname,skills\nJo,Go\n"), 0o644))
	got, err := ReadCandidate(bom)
	require.NoError(t, err)
	assert.Equal(t, entity.FlatRecord{Name: "Jo", Skills: "Go"}, got)

	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("name,skills\n"), 0o644))
	_, err = ReadCandidate(empty)
	assert.ErrorContains(t, err, "no data rows")

	_, err = ReadCandidate(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteTaskPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.txt")
	plan := entity.TaskPlan{
		{TaskName: "Setup", Description: "Laptop, badge", DueInDays: 0, DueDate: "2024-01-01", AssignedTo: "IT", Category: "Admin"},
	}
	require.NoError(t, WriteTaskPlan(path, plan))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"task_name,description,due_in_days,due_date,assigned_to,category\nSetup,\"Laptop, badge\",0,2024-01-01,IT,Admin\n",
		string(b))
}

func TestWriteTableRejectsRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.csv")
	err := WriteTable(path, []string{"a", "b"}, [][]string{{"1"}})
	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileNames(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, "parsed_resume_20240309140507.csv", ResumeFileName(now))
	assert.Equal(t, "task_plan_20240309140507.txt", TaskPlanFileName(now))
}

func TestUniquePathSkipsTaken(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	first := UniquePath(dir, now, ResumeFileName)
	assert.Equal(t, filepath.Join(dir, "parsed_resume_20240309140507.csv"), first)
	require.NoError(t, os.WriteFile(first, nil, 0o644))

	second := UniquePath(dir, now, ResumeFileName)
	assert.Equal(t, filepath.Join(dir, "parsed_resume_20240309140508.csv"), second)
}

func TestUniquePathChecksSiblings(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "task_plan_20240309140507.xlsx"), nil, 0o644))

	assert.Equal(t, filepath.Join(dir, "task_plan_20240309140507.txt"), UniquePath(dir, now, TaskPlanFileName))
	assert.Equal(t, filepath.Join(dir, "task_plan_20240309140508.txt"), UniquePath(dir, now, TaskPlanFileName, ".xlsx"))
	assert.Equal(t, filepath.Join(dir, "a.xlsx"), SiblingPath(filepath.Join(dir, "a.txt"), ".xlsx"))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xlsx")
	header := []string{"task_name", "due_date"}
	long := strings.Repeat("x", excelCellLimit+10)
	require.NoError(t, WriteXLSX(path, "Tasks", header, [][]string{{"Setup", "2024-01-01"}, {long, ""}}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Tasks"}, f.GetSheetList())
	rows, err := f.GetRows("Tasks")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, []string{"Setup", "2024-01-01"}, rows[1])
	assert.Len(t, []rune(rows[2][0]), excelCellLimit)
}
