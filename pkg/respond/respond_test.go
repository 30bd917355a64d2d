package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	return got
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		data     interface{}
		wantCode int
		wantBody map[string]interface{}
	}{
		{
			name:     "ok response",
			code:     http.StatusOK,
			data:     map[string]string{"message": "hello"},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{"message": "hello"},
		},
		{
			name:     "created response",
			code:     http.StatusCreated,
			data:     map[string]int{"count": 3},
			wantCode: http.StatusCreated,
			wantBody: map[string]interface{}{"count": float64(3)}, // JSON unmarshals numbers as float64
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			JSON(w, r, tt.code, tt.data)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, decode(t, w))
		})
	}
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	Success(w, r, http.StatusOK, map[string]string{"id": "abc"})

	got := decode(t, w)
	assert.Equal(t, "success", got["status"])
	assert.Equal(t, map[string]interface{}{"id": "abc"}, got["data"])
}

func TestSuccessList(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	SuccessList(w, r, 2, map[string]interface{}{"tasks": []string{"a", "b"}})

	got := decode(t, w)
	assert.Equal(t, "success", got["status"])
	assert.Equal(t, float64(2), got["results"])
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(w, r, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	got := decode(t, w)
	assert.Equal(t, "fail", got["status"])
	assert.Equal(t, "Task not found", got["message"])
}

func TestFailFields(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	FailFields(w, r, http.StatusBadRequest, map[string]string{"title": "Title is required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	got := decode(t, w)
	assert.Equal(t, "fail", got["status"])
	assert.Equal(t, map[string]interface{}{"title": "Title is required"}, got["errors"])
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	Error(w, r, http.StatusInternalServerError, "internal error")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	got := decode(t, w)
	assert.Equal(t, "error", got["status"])
}
