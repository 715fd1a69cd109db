// Package export renders a filtered task collection into a downloadable
// spreadsheet or document artifact.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
	"github.com/Ritik8097/EmployeeTask/internal/task"
)

type Format string

const (
	FormatSpreadsheet Format = "spreadsheet"
	FormatDocument    Format = "document"
)

func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatSpreadsheet:
		return FormatSpreadsheet, nil
	case FormatDocument:
		return FormatDocument, nil
	}
	return "", apperr.Validation("unknown export format: " + value)
}

const noDueDate = "No date set"

var columns = []string{"ID", "Title", "Description", "Status", "Priority", "Due Date", "Owner", "Department", "Created"}

// Artifact is a rendered export ready to be written to the response.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Render produces one row per task in the requested format. An empty task
// slice yields a valid headers-only artifact.
func Render(tasks []task.TaskWithOwner, format Format, department string, startDate *time.Time) (Artifact, error) {
	filename := Filename(format, department, startDate)
	switch format {
	case FormatSpreadsheet:
		data, err := renderSpreadsheet(tasks)
		if err != nil {
			return Artifact{}, apperr.Internal(err)
		}
		return Artifact{
			Filename:    filename,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case FormatDocument:
		data, err := renderDocument(tasks)
		if err != nil {
			return Artifact{}, apperr.Internal(err)
		}
		return Artifact{
			Filename:    filename,
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	}
	return Artifact{}, apperr.Validation("unknown export format")
}

// Filename builds tasks-<department|all-departments>[-YYYYMMDD].<ext>.
func Filename(format Format, department string, startDate *time.Time) string {
	scope := "all-departments"
	if department != "" {
		scope = slugify(department)
	}
	name := "tasks-" + scope
	if startDate != nil {
		name += "-" + startDate.Format("20060102")
	}
	ext := "xlsx"
	if format == FormatDocument {
		ext = "pdf"
	}
	return fmt.Sprintf("%s.%s", name, ext)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return b.String()
}

func rowValues(t task.TaskWithOwner) []string {
	return []string{
		t.ID.String(),
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		formatDueDate(t.DueDate),
		t.OwnerName,
		t.OwnerDepartment,
		t.CreatedAt.Format("2006-01-02"),
	}
}

func formatDueDate(due *time.Time) string {
	if due == nil {
		return noDueDate
	}
	return due.Format("2006-01-02")
}
