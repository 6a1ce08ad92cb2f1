package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"task-calendar/backend/internal/models"
	"task-calendar/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type TaskHandler struct {
	store store.TaskStore
}

func NewTaskHandler(s store.TaskStore) *TaskHandler {
	return &TaskHandler{store: s}
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	tasks, err := h.store.ListAll()
	if err != nil {
		log.Printf("Error fetching tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetTasksByDate(c *gin.Context) {
	// The date is an opaque string; a malformed value matches nothing.
	date := c.Param("date")
	tasks, err := h.store.ListByDate(date)
	if err != nil {
		log.Printf("Error fetching tasks by date: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks for date"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input struct {
		Text      string `json:"text"`
		Completed bool   `json:"completed"`
		Date      string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text and date are required"})
		return
	}

	text := strings.TrimSpace(input.Text)
	if text == "" || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text and date are required"})
		return
	}

	// The handler mints the id: a v7 UUID, whose leading bits are the
	// Unix-millisecond clock, so ids sort by creation time yet stay
	// unique under concurrent creates.
	taskID, err := uuid.NewV7()
	if err != nil {
		log.Printf("Error generating task id: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	task := models.Task{
		ID:        taskID.String(),
		Text:      text,
		Completed: input.Completed,
		Date:      input.Date,
	}
	created, err := h.store.Create(task)
	if err != nil {
		log.Printf("Error creating task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id := c.Param("id")

	var updates models.TaskUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.store.Update(id, updates)
	if err != nil {
		handleTaskError(c, err, "Failed to update task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// ToggleTask reads the current task via ListAll and finds it in memory,
// then writes the negated completed flag. The read-then-write is not
// guarded: two simultaneous toggles can both observe the same state and
// the last update wins.
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	id := c.Param("id")

	tasks, err := h.store.ListAll()
	if err != nil {
		log.Printf("Error toggling task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle task"})
		return
	}

	var current *models.Task
	for i := range tasks {
		if tasks[i].ID == id {
			current = &tasks[i]
			break
		}
	}
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	flipped := !current.Completed
	task, err := h.store.Update(id, models.TaskUpdate{Completed: &flipped})
	if err != nil {
		handleTaskError(c, err, "Failed to toggle task")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(id); err != nil {
		handleTaskError(c, err, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}

func (h *TaskHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Task Calendar API is running",
	})
}

// handleTaskError maps store.ErrTaskNotFound to 404; every other store
// failure collapses to the endpoint's generic 500 with the real cause
// logged, never exposed.
func handleTaskError(c *gin.Context, err error, message string) {
	if errors.Is(err, store.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	log.Printf("%s: %v", message, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
