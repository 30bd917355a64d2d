package tests

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/taskboard/taskboard-api/internal/handler"
	"github.com/taskboard/taskboard-api/internal/service"
	"github.com/taskboard/taskboard-api/internal/store"
)

// SetupServer wires the full stack onto an httptest server, the same way
// cmd/app does minus CORS and metrics.
func SetupServer(t *testing.T) *httptest.Server {
	t.Helper()

	taskStore := store.NewTaskStore()
	taskService := service.NewTaskService(taskStore)
	taskHandler := handler.NewTaskHandler(taskService, zap.NewNop())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	taskHandler.Register(r)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}
