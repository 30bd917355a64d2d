package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-api/internal/model"
)

var ErrNotFound = errors.New("task not found")

// TaskStore holds the authoritative task collection in memory.
// State lives for the lifetime of the process only.
type TaskStore struct {
	mu    sync.Mutex
	tasks []model.Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make([]model.Task, 0),
	}
}

// List returns a copy of the collection in insertion order.
func (s *TaskStore) List(ctx context.Context) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *TaskStore) Get(ctx context.Context, id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, ErrNotFound
}

func (s *TaskStore) Create(ctx context.Context, in model.CreateTaskInput) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Completed:   false,
		DueDate:     in.DueDate,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Update merges the patch into the stored task field by field.
// ID and CreatedAt are not merge targets and always survive.
func (s *TaskStore) Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		t := s.tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		s.tasks[i] = t
		return t, nil
	}
	return model.Task{}, ErrNotFound
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *TaskStore) Stats(ctx context.Context) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		Total:      len(s.tasks),
		ByPriority: make(map[model.Priority]int),
	}
	for _, t := range s.tasks {
		if t.Completed {
			stats.Completed++
		} else {
			stats.Active++
		}
		stats.ByPriority[t.Priority]++
	}
	return stats
}
