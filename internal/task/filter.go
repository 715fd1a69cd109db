package task

import (
	"strings"
	"time"

	"github.com/Ritik8097/EmployeeTask/internal/apperr"
)

// QuickFilter is a single-selection status/priority/overdue predicate.
type QuickFilter string

const (
	QuickAll        QuickFilter = "all"
	QuickToDo       QuickFilter = "todo"
	QuickInProgress QuickFilter = "inprogress"
	QuickReview     QuickFilter = "review"
	QuickDone       QuickFilter = "done"
	QuickUrgent     QuickFilter = "urgent"
	QuickHigh       QuickFilter = "high"
	QuickOverdue    QuickFilter = "overdue"
)

// ParseQuickFilter normalizes a query value; empty means "all".
func ParseQuickFilter(value string) (QuickFilter, error) {
	q := QuickFilter(strings.ToLower(strings.TrimSpace(value)))
	switch q {
	case "":
		return QuickAll, nil
	case QuickAll, QuickToDo, QuickInProgress, QuickReview, QuickDone, QuickUrgent, QuickHigh, QuickOverdue:
		return q, nil
	}
	return "", apperr.Validation("unknown quick filter: " + value)
}

// Filter composes the listing filters by intersection. Zero values mean
// "keep everything" for their stage.
type Filter struct {
	Department string
	Quick      QuickFilter
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
}

func (f Filter) IsZero() bool {
	return f.Department == "" &&
		(f.Quick == "" || f.Quick == QuickAll) &&
		f.StartDate == nil && f.EndDate == nil &&
		f.Search == ""
}

// ApplyFilter runs the four filter stages in order: department, quick
// filter, date range, free-text search. Each stage is a pure filter over the
// previous stage's output, so input order is preserved. The caller supplies
// now so "overdue" is deterministic under test.
func ApplyFilter(tasks []TaskWithOwner, f Filter, now time.Time) []TaskWithOwner {
	out := make([]TaskWithOwner, 0, len(tasks))
	out = append(out, tasks...)

	if f.Department != "" {
		out = keep(out, func(t TaskWithOwner) bool {
			return t.OwnerDepartment == f.Department
		})
	}

	if f.Quick != "" && f.Quick != QuickAll {
		out = keep(out, quickPredicate(f.Quick, now))
	}

	if f.StartDate != nil || f.EndDate != nil {
		out = keep(out, func(t TaskWithOwner) bool {
			// Tasks with no due date never match a date-range filter.
			if t.DueDate == nil {
				return false
			}
			due := dateOnly(*t.DueDate)
			if f.StartDate != nil && due.Before(dateOnly(*f.StartDate)) {
				return false
			}
			if f.EndDate != nil && due.After(dateOnly(*f.EndDate)) {
				return false
			}
			return true
		})
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		out = keep(out, func(t TaskWithOwner) bool {
			return strings.Contains(strings.ToLower(t.Title), needle) ||
				strings.Contains(strings.ToLower(t.Description), needle) ||
				strings.Contains(strings.ToLower(t.OwnerName), needle)
		})
	}

	return out
}

func quickPredicate(q QuickFilter, now time.Time) func(TaskWithOwner) bool {
	switch q {
	case QuickToDo:
		return statusIs(StatusToDo)
	case QuickInProgress:
		return statusIs(StatusInProgress)
	case QuickReview:
		return statusIs(StatusReview)
	case QuickDone:
		return statusIs(StatusDone)
	case QuickUrgent:
		return priorityIs(PriorityUrgent)
	case QuickHigh:
		return priorityIs(PriorityHigh)
	case QuickOverdue:
		today := dateOnly(now)
		return func(t TaskWithOwner) bool {
			if t.DueDate == nil || t.Status == StatusDone {
				return false
			}
			return dateOnly(*t.DueDate).Before(today)
		}
	}
	return func(TaskWithOwner) bool { return true }
}

func statusIs(s Status) func(TaskWithOwner) bool {
	return func(t TaskWithOwner) bool { return t.Status == s }
}

func priorityIs(p Priority) func(TaskWithOwner) bool {
	return func(t TaskWithOwner) bool { return t.Priority == p }
}

func keep(tasks []TaskWithOwner, pred func(TaskWithOwner) bool) []TaskWithOwner {
	out := tasks[:0]
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// dateOnly truncates to local midnight; due dates compare by calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
