package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskboard/taskboard-api/internal/model"
)

func task(title, desc, due string, completed bool) model.Task {
	return model.Task{
		ID:          title,
		Title:       title,
		Description: desc,
		Priority:    model.PriorityMedium,
		Completed:   completed,
		DueDate:     due,
	}
}

func titles(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestFilter_Status(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		task("a", "", "2025-06-20", false),
		task("b", "", "2025-06-20", true),
		task("c", "", "2025-06-20", false),
		task("d", "", "2025-06-20", true),
		task("e", "", "2025-06-20", false),
	}

	active := Filter{Status: StatusActive}.Apply(tasks, now)
	assert.Equal(t, []string{"a", "c", "e"}, titles(active))

	completed := Filter{Status: StatusCompleted}.Apply(tasks, now)
	assert.Equal(t, []string{"b", "d"}, titles(completed))

	all := Filter{Status: StatusAll}.Apply(tasks, now)
	assert.Len(t, all, 5)
}

func TestFilter_Overdue(t *testing.T) {
	// start of today is the boundary: a task due today is not overdue
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		task("yesterday", "", "2025-06-14", false),
		task("today", "", "2025-06-15", false),
		task("tomorrow", "", "2025-06-16", false),
	}

	got := Filter{Due: DueOverdue}.Apply(tasks, now)
	assert.Equal(t, []string{"yesterday"}, titles(got))
}

func TestFilter_Today(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		task("yesterday", "", "2025-06-14", false),
		task("today-date", "", "2025-06-15", false),
		task("today-evening", "", "2025-06-15T22:30:00Z", false),
		task("tomorrow", "", "2025-06-16", false),
	}

	got := Filter{Due: DueToday}.Apply(tasks, now)
	assert.Equal(t, []string{"today-date", "today-evening"}, titles(got))
}

func TestFilter_ThisWeek(t *testing.T) {
	// Wednesday 2025-06-18; the week is Sunday-anchored, so it runs
	// through Sunday 2025-06-22 inclusive.
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		task("yesterday", "", "2025-06-17", false),
		task("today", "", "2025-06-18", false),
		task("saturday", "", "2025-06-21", false),
		task("sunday", "", "2025-06-22", false),
		task("next-monday", "", "2025-06-23", false),
	}

	got := Filter{Due: DueThisWeek}.Apply(tasks, now)
	assert.Equal(t, []string{"today", "saturday", "sunday"}, titles(got))
}

func TestFilter_Search(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		task("Buy milk", "", "2025-06-20", false),
		task("Groceries", "get milk on the way home", "2025-06-20", false),
		task("Walk dog", "", "2025-06-20", false),
	}

	got := Filter{Search: "milk"}.Apply(tasks, now)
	assert.Equal(t, []string{"Buy milk", "Groceries"}, titles(got))

	got = Filter{Search: "MILK"}.Apply(tasks, now)
	assert.Len(t, got, 2, "search is case-insensitive")

	got = Filter{Search: ""}.Apply(tasks, now)
	assert.Len(t, got, 3, "empty query matches all")
}

func TestFilter_Conjunction(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		task("milk run", "", "2025-06-14", false),
		task("milk run done", "", "2025-06-14", true),
		task("milk later", "", "2025-06-20", false),
		task("dog walk", "", "2025-06-14", false),
	}

	got := Filter{
		Search: "milk",
		Status: StatusActive,
		Due:    DueOverdue,
	}.Apply(tasks, now)
	assert.Equal(t, []string{"milk run"}, titles(got))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		task("a", "", "2025-06-14", false),
		task("b", "", "2025-06-20", false),
	}

	Filter{Due: DueOverdue}.Apply(tasks, now)
	assert.Equal(t, []string{"a", "b"}, titles(tasks))
}
