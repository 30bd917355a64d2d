package store

import (
	"context"

	"github.com/taskboard/taskboard-api/internal/model"
)

// Store is the access contract for the task collection.
type Store interface {
	List(ctx context.Context) []model.Task
	Get(ctx context.Context, id string) (model.Task, error)
	Create(ctx context.Context, in model.CreateTaskInput) model.Task
	Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) Stats
}

type Stats struct {
	Total      int                    `json:"total"`
	Completed  int                    `json:"completed"`
	Active     int                    `json:"active"`
	ByPriority map[model.Priority]int `json:"byPriority"`
}
