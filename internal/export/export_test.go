package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/task"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTasks() []task.TaskWithOwner {
	due := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.Local)
	return []task.TaskWithOwner{
		{
			Task: task.Task{
				ID:          uuid.New(),
				Title:       "Fix checkout bug",
				Description: "customers cannot pay",
				Status:      task.StatusInProgress,
				Priority:    task.PriorityUrgent,
				DueDate:     &due,
				CreatedAt:   time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local),
			},
			OwnerName:       "Alice",
			OwnerDepartment: "Engineering",
		},
		{
			Task: task.Task{
				ID:        uuid.New(),
				Title:     "Draft launch post",
				Status:    task.StatusToDo,
				Priority:  task.PriorityMedium,
				CreatedAt: time.Date(2024, time.May, 2, 9, 0, 0, 0, time.Local),
			},
			OwnerName:       "Carol",
			OwnerDepartment: "Marketing",
		},
	}
}

func TestFilename(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		format     Format
		department string
		start      *time.Time
		want       string
	}{
		{"all departments no date", FormatSpreadsheet, "", nil, "tasks-all-departments.xlsx"},
		{"department slug", FormatSpreadsheet, "Human Resources", nil, "tasks-human-resources.xlsx"},
		{"with start date", FormatSpreadsheet, "Engineering", &start, "tasks-engineering-20240501.xlsx"},
		{"pdf extension", FormatDocument, "", &start, "tasks-all-departments-20240501.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.format, tt.department, tt.start))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatSpreadsheet, f)

	f, err = ParseFormat("Document")
	require.NoError(t, err)
	assert.Equal(t, FormatDocument, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestSpreadsheetRows(t *testing.T) {
	tasks := sampleTasks()
	artifact, err := Render(tasks, FormatSpreadsheet, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", artifact.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(artifact.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per task")

	assert.Equal(t, columns, rows[0])

	first := rows[1]
	assert.Equal(t, tasks[0].ID.String(), first[0])
	assert.Equal(t, "Fix checkout bug", first[1])
	assert.Equal(t, "In Progress", first[3])
	assert.Equal(t, "Urgent", first[4])
	assert.Equal(t, "2024-05-20", first[5])
	assert.Equal(t, "Alice", first[6])
	assert.Equal(t, "Engineering", first[7])
	assert.Equal(t, "2024-05-01", first[8])

	second := rows[2]
	assert.Equal(t, "No date set", second[5], "missing due date renders the sentinel")
}

func TestSpreadsheetEmptySet(t *testing.T) {
	artifact, err := Render(nil, FormatSpreadsheet, "Engineering", nil)
	require.NoError(t, err)
	require.NotEmpty(t, artifact.Data)

	f, err := excelize.OpenReader(bytes.NewReader(artifact.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1, "headers only")
	assert.Equal(t, columns, rows[0])
}

func TestDocumentRender(t *testing.T) {
	artifact, err := Render(sampleTasks(), FormatDocument, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF-")), "output must be a PDF document")
}

func TestDocumentEmptySet(t *testing.T) {
	artifact, err := Render(nil, FormatDocument, "", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF-")))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "human-resources", slugify("Human Resources"))
	assert.Equal(t, "rd", slugify("R&D"))
	assert.Equal(t, "sales", slugify("  Sales  "))
}
