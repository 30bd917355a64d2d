package client

import (
	"context"
	"sync"
	"time"

	"github.com/taskboard/taskboard-api/internal/model"
	"github.com/taskboard/taskboard-api/internal/view"
)

// Cache holds a local copy of the fetched collection. Each mutation calls
// the API first and, only on success, patches the single affected record.
// On failure the cache is left untouched and the error is recorded for the
// caller to surface. No optimistic updates, no retries.
type Cache struct {
	client *Client

	mu      sync.Mutex
	tasks   []model.Task
	lastErr error
}

func NewCache(c *Client) *Cache {
	return &Cache{client: c}
}

// Refresh replaces the cached collection with the server's.
func (c *Cache) Refresh(ctx context.Context) error {
	tasks, err := c.client.FetchAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		return err
	}
	c.tasks = tasks
	c.lastErr = nil
	return nil
}

func (c *Cache) Add(ctx context.Context, in model.CreateTaskInput) (model.Task, error) {
	task, err := c.client.Create(ctx, in)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		return model.Task{}, err
	}
	c.tasks = append(c.tasks, task)
	c.lastErr = nil
	return task, nil
}

func (c *Cache) Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	task, err := c.client.Update(ctx, id, patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		return model.Task{}, err
	}
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i] = task
			break
		}
	}
	c.lastErr = nil
	return task, nil
}

func (c *Cache) Delete(ctx context.Context, id string) error {
	err := c.client.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		return err
	}
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			break
		}
	}
	c.lastErr = nil
	return nil
}

// Tasks returns a copy of the cached collection.
func (c *Cache) Tasks() []model.Task {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Err reports the error from the most recent operation, nil after success.
func (c *Cache) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// View projects the cached collection through a filter and sort order.
func (c *Cache) View(f view.Filter, order view.SortOrder, now time.Time) []model.Task {
	return view.Sort(f.Apply(c.Tasks(), now), order)
}
