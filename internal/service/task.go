package service

import (
	"context"
	"strings"
	"time"

	"github.com/taskboard/taskboard-api/internal/model"
	"github.com/taskboard/taskboard-api/internal/store"
)

type TaskService struct {
	store store.Store
}

func NewTaskService(store store.Store) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) Create(ctx context.Context, in model.CreateTaskInput) (model.Task, error) {
	start := time.Now()
	defer func() {
		createDuration.Observe(time.Since(start).Seconds())
	}()

	if err := validateCreate(in); err != nil {
		createdCount.WithLabelValues("invalid").Inc()
		return model.Task{}, err
	}

	t := s.store.Create(ctx, in)
	createdCount.WithLabelValues("success").Inc()
	return t, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (model.Task, error) {
	return s.store.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context) []model.Task {
	return s.store.List(ctx)
}

func (s *TaskService) Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	if err := validatePatch(patch); err != nil {
		updatedCount.WithLabelValues("invalid").Inc()
		return model.Task{}, err
	}

	t, err := s.store.Update(ctx, id, patch)
	if err != nil {
		updatedCount.WithLabelValues("error").Inc()
		return model.Task{}, err
	}
	updatedCount.WithLabelValues("success").Inc()
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	deletedCount.Inc()
	return nil
}

func (s *TaskService) Stats(ctx context.Context) store.Stats {
	return s.store.Stats(ctx)
}

// validateCreate aggregates every violated field so the caller
// sees all problems in one response.
func validateCreate(in model.CreateTaskInput) error {
	v := &ValidationError{Fields: map[string]string{}}

	if strings.TrimSpace(in.Title) == "" {
		v.Fields["title"] = "Title is required"
	}
	if in.Priority == "" {
		v.Fields["priority"] = "Priority is required"
	} else if !in.Priority.Valid() {
		v.Fields["priority"] = "Priority must be low, medium, or high"
	}
	if in.DueDate == "" {
		v.Fields["dueDate"] = "Due date is required"
	} else if _, err := model.ParseDueDate(in.DueDate); err != nil {
		v.Fields["dueDate"] = "Due date must be a valid date in ISO 8601 format"
	}

	if len(v.Fields) > 0 {
		return v
	}
	return nil
}

// validatePatch applies the create constraints to whichever fields are present.
func validatePatch(patch model.TaskPatch) error {
	v := &ValidationError{Fields: map[string]string{}}

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		v.Fields["title"] = "Title must not be empty"
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		v.Fields["priority"] = "Priority must be low, medium, or high"
	}
	if patch.DueDate != nil {
		if _, err := model.ParseDueDate(*patch.DueDate); err != nil {
			v.Fields["dueDate"] = "Due date must be a valid date in ISO 8601 format"
		}
	}

	if len(v.Fields) > 0 {
		return v
	}
	return nil
}
