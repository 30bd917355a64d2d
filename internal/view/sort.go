package view

import (
	"sort"
	"time"

	"github.com/taskboard/taskboard-api/internal/model"
)

type SortOrder string

const (
	SortByDueDate  SortOrder = "date"
	SortByPriority SortOrder = "priority"
)

// Sort returns a sorted copy of tasks. Ties keep their relative order.
func Sort(tasks []model.Task, order SortOrder) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	switch order {
	case SortByDueDate:
		sort.SliceStable(out, func(i, j int) bool {
			return dueTime(out[i]).Before(dueTime(out[j]))
		})
	case SortByPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		})
	}
	return out
}

func dueTime(t model.Task) time.Time {
	due, err := model.ParseDueDate(t.DueDate)
	if err != nil {
		return time.Time{}
	}
	return due
}
