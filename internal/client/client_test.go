package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-calendar/backend/internal/client"
	"task-calendar/backend/internal/config"
	"task-calendar/backend/internal/handlers"
	"task-calendar/backend/internal/models"
	"task-calendar/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *client.Client {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewTaskHandler(store.NewMemoryStore())
	server := httptest.NewServer(handlers.NewRouter(handler, &config.Config{}))
	t.Cleanup(server.Close)
	return client.New(server.URL + "/api")
}

func TestClientRoundTrip(t *testing.T) {
	api := setupServer(t)
	ctx := context.Background()

	created, err := api.CreateTask(ctx, client.NewTask{Text: "from the client", Date: "2025-11-06"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Completed)

	tasks, err := api.GetAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID, tasks[0].ID)

	byDate, err := api.GetTasksByDate(ctx, "2025-11-06")
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	toggled, err := api.ToggleTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	text := "rewritten"
	updated, err := api.UpdateTask(ctx, created.ID, models.TaskUpdate{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "rewritten", updated.Text)
	assert.True(t, updated.Completed)

	result, err := api.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, created.ID, result.ID)

	tasks, err = api.GetAllTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestClientHealthCheck(t *testing.T) {
	api := setupServer(t)

	status, err := api.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", status.Status)
	assert.NotEmpty(t, status.Message)
}

func TestClientSurfacesServerErrorMessage(t *testing.T) {
	api := setupServer(t)
	ctx := context.Background()

	_, err := api.CreateTask(ctx, client.NewTask{Text: "   ", Date: "2025-11-06"})
	require.Error(t, err)
	assert.EqualError(t, err, "Text and date are required")

	_, err = api.UpdateTask(ctx, "999", models.TaskUpdate{})
	require.Error(t, err)
	assert.EqualError(t, err, "Task not found")
}

func TestClientFallsBackToStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream gone"))
	}))
	t.Cleanup(server.Close)

	api := client.New(server.URL + "/api")
	_, err := api.GetAllTasks(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "HTTP error: 503")
}

func TestClientEmptyErrorBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	api := client.New(server.URL + "/api")
	_, err := api.GetAllTasks(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "HTTP error: 500")
}
