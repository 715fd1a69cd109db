package task

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.Local)

func datePtr(t time.Time) *time.Time { return &t }

func makeTask(title, desc string, status Status, priority Priority, due *time.Time, owner, dept string) TaskWithOwner {
	return TaskWithOwner{
		Task: Task{
			ID:          uuid.New(),
			Title:       title,
			Description: desc,
			Status:      status,
			Priority:    priority,
			DueDate:     due,
		},
		OwnerName:       owner,
		OwnerDepartment: dept,
	}
}

func titles(tasks []TaskWithOwner) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestParseQuickFilter(t *testing.T) {
	q, err := ParseQuickFilter("")
	require.NoError(t, err)
	assert.Equal(t, QuickAll, q)

	q, err = ParseQuickFilter("  Overdue ")
	require.NoError(t, err)
	assert.Equal(t, QuickOverdue, q)

	_, err = ParseQuickFilter("blocked")
	assert.Error(t, err)
}

func TestOverdueFilter(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	today := testNow

	tasks := []TaskWithOwner{
		makeTask("due yesterday open", "", StatusInProgress, PriorityMedium, datePtr(yesterday), "A", "Engineering"),
		makeTask("due today", "", StatusToDo, PriorityMedium, datePtr(today), "A", "Engineering"),
		makeTask("due yesterday done", "", StatusDone, PriorityMedium, datePtr(yesterday), "A", "Engineering"),
		makeTask("no due date", "", StatusToDo, PriorityMedium, nil, "A", "Engineering"),
	}

	got := ApplyFilter(tasks, Filter{Quick: QuickOverdue}, testNow)
	assert.Equal(t, []string{"due yesterday open"}, titles(got))
}

func TestDateRangeFilter(t *testing.T) {
	d := func(day int) *time.Time {
		return datePtr(time.Date(2024, time.March, day, 0, 0, 0, 0, time.Local))
	}
	tasks := []TaskWithOwner{
		makeTask("before", "", StatusToDo, PriorityLow, d(1), "A", "Engineering"),
		makeTask("on start", "", StatusToDo, PriorityLow, d(10), "A", "Engineering"),
		makeTask("inside", "", StatusToDo, PriorityLow, d(15), "A", "Engineering"),
		makeTask("on end", "", StatusToDo, PriorityLow, d(20), "A", "Engineering"),
		makeTask("after", "", StatusToDo, PriorityLow, d(25), "A", "Engineering"),
		makeTask("undated", "", StatusToDo, PriorityLow, nil, "A", "Engineering"),
	}

	t.Run("both bounds inclusive", func(t *testing.T) {
		got := ApplyFilter(tasks, Filter{StartDate: d(10), EndDate: d(20)}, testNow)
		assert.Equal(t, []string{"on start", "inside", "on end"}, titles(got))
	})

	t.Run("open end bound excludes undated tasks", func(t *testing.T) {
		got := ApplyFilter(tasks, Filter{StartDate: d(10)}, testNow)
		assert.Equal(t, []string{"on start", "inside", "on end", "after"}, titles(got))
	})

	t.Run("open start bound", func(t *testing.T) {
		got := ApplyFilter(tasks, Filter{EndDate: d(10)}, testNow)
		assert.Equal(t, []string{"before", "on start"}, titles(got))
	})
}

func TestStatusAndPriorityQuickFilters(t *testing.T) {
	tasks := []TaskWithOwner{
		makeTask("t1", "", StatusToDo, PriorityLow, nil, "A", "Engineering"),
		makeTask("t2", "", StatusInProgress, PriorityUrgent, nil, "A", "Engineering"),
		makeTask("t3", "", StatusReview, PriorityHigh, nil, "A", "Engineering"),
		makeTask("t4", "", StatusDone, PriorityHigh, nil, "A", "Engineering"),
	}

	tests := []struct {
		quick QuickFilter
		want  []string
	}{
		{QuickAll, []string{"t1", "t2", "t3", "t4"}},
		{QuickToDo, []string{"t1"}},
		{QuickInProgress, []string{"t2"}},
		{QuickReview, []string{"t3"}},
		{QuickDone, []string{"t4"}},
		{QuickUrgent, []string{"t2"}},
		{QuickHigh, []string{"t3", "t4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.quick), func(t *testing.T) {
			got := ApplyFilter(tasks, Filter{Quick: tt.quick}, testNow)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestSearchMatchesTitleDescriptionAndOwner(t *testing.T) {
	tasks := []TaskWithOwner{
		makeTask("Fix login BUG", "", StatusToDo, PriorityLow, nil, "Alice", "Engineering"),
		makeTask("Write docs", "covers the bug tracker", StatusToDo, PriorityLow, nil, "Bob", "Engineering"),
		makeTask("Ship release", "", StatusToDo, PriorityLow, nil, "Bugra", "Engineering"),
		makeTask("Plan offsite", "", StatusToDo, PriorityLow, nil, "Carol", "Marketing"),
	}

	got := ApplyFilter(tasks, Filter{Search: "bug"}, testNow)
	assert.Equal(t, []string{"Fix login BUG", "Write docs", "Ship release"}, titles(got))
}

func TestFiltersComposeByIntersection(t *testing.T) {
	tasks := []TaskWithOwner{
		makeTask("bug in checkout", "", StatusToDo, PriorityHigh, nil, "Alice", "Engineering"),
		makeTask("bug in billing", "", StatusToDo, PriorityHigh, nil, "Dan", "Sales"),
		makeTask("refactor parser", "", StatusToDo, PriorityHigh, nil, "Alice", "Engineering"),
	}

	got := ApplyFilter(tasks, Filter{Department: "Engineering", Search: "bug"}, testNow)
	assert.Equal(t, []string{"bug in checkout"}, titles(got))
}

func TestFilterIsIdempotent(t *testing.T) {
	tasks := []TaskWithOwner{
		makeTask("bug in checkout", "", StatusToDo, PriorityHigh, nil, "Alice", "Engineering"),
		makeTask("bug in billing", "", StatusInProgress, PriorityLow, nil, "Dan", "Sales"),
		makeTask("refactor parser", "", StatusToDo, PriorityHigh, nil, "Alice", "Engineering"),
	}
	f := Filter{Department: "Engineering", Search: "bug"}

	once := ApplyFilter(tasks, f, testNow)
	twice := ApplyFilter(once, f, testNow)
	assert.Equal(t, once, twice)
}

func TestFilterPreservesInputOrder(t *testing.T) {
	tasks := []TaskWithOwner{
		makeTask("newest", "", StatusToDo, PriorityLow, nil, "A", "Engineering"),
		makeTask("middle", "", StatusToDo, PriorityLow, nil, "A", "Engineering"),
		makeTask("oldest", "", StatusToDo, PriorityLow, nil, "A", "Engineering"),
	}

	got := ApplyFilter(tasks, Filter{Department: "Engineering"}, testNow)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, titles(got))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	tasks := []TaskWithOwner{
		makeTask("keep", "", StatusToDo, PriorityLow, nil, "A", "Engineering"),
		makeTask("drop", "", StatusToDo, PriorityLow, nil, "B", "Sales"),
		makeTask("keep too", "", StatusToDo, PriorityLow, nil, "C", "Engineering"),
	}

	_ = ApplyFilter(tasks, Filter{Department: "Engineering"}, testNow)
	assert.Equal(t, []string{"keep", "drop", "keep too"}, titles(tasks))
}
