// Package view computes derived projections of a task collection:
// conjunctive search/status/due-date filters and sort orders. Functions
// never mutate their input.
package view

import (
	"strings"
	"time"

	"github.com/taskboard/taskboard-api/internal/model"
)

type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

type DueFilter string

const (
	DueAll      DueFilter = "all"
	DueOverdue  DueFilter = "overdue"
	DueToday    DueFilter = "today"
	DueThisWeek DueFilter = "this_week"
)

type Filter struct {
	Search string
	Status StatusFilter
	Due    DueFilter
}

// Apply returns the tasks passing every active filter, preserving order.
// Day boundaries are taken in now's location. The week is Sunday-anchored:
// this_week spans from the start of today through the upcoming Sunday,
// end inclusive.
func (f Filter) Apply(tasks []model.Task, now time.Time) []model.Task {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)
	endOfWeek := startOfToday.AddDate(0, 0, 7-int(now.Weekday()))

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !f.matchesSearch(t) {
			continue
		}
		if !f.matchesStatus(t) {
			continue
		}
		if !f.matchesDue(t, startOfToday, startOfTomorrow, endOfWeek) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (f Filter) matchesSearch(t model.Task) bool {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

func (f Filter) matchesStatus(t model.Task) bool {
	switch f.Status {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	}
	return true
}

func (f Filter) matchesDue(t model.Task, startOfToday, startOfTomorrow, endOfWeek time.Time) bool {
	if f.Due == "" || f.Due == DueAll {
		return true
	}

	due, err := model.ParseDueDate(t.DueDate)
	if err != nil {
		// Stored tasks are validated at creation; anything unparseable
		// cannot be placed on the timeline and fails date filters.
		return false
	}

	switch f.Due {
	case DueOverdue:
		return due.Before(startOfToday)
	case DueToday:
		return !due.Before(startOfToday) && due.Before(startOfTomorrow)
	case DueThisWeek:
		return !due.Before(startOfToday) && !due.After(endOfWeek)
	}
	return true
}
