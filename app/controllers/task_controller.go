package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shborse/Task-Manager/app/export"
	"github.com/shborse/Task-Manager/app/models"
	"github.com/shborse/Task-Manager/app/services"
)

// TaskController handles HTTP requests for tasks and their history.
type TaskController struct {
	Service *services.TaskService
}

// NewTaskController creates a new TaskController.
func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{Service: service}
}

type createTaskRequest struct {
	Username string `json:"username"`
	Title    string `json:"title"`
	Due      string `json:"due"`
	Priority *int   `json:"priority"`
	Status   string `json:"status"`
}

type editTaskRequest struct {
	Username string  `json:"username"`
	ID       int     `json:"id"`
	Title    *string `json:"title"`
	Due      *string `json:"due"`
	Priority *int    `json:"priority"`
	Status   *string `json:"status"`
}

type taskRefRequest struct {
	Username string `json:"username"`
	ID       int    `json:"id"`
}

type userRequest struct {
	Username string `json:"username"`
}

// GetTasks handles GET /api/tasks?username=U.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks := c.Service.ListTasks(r.URL.Query().Get("username"))
	writeJSON(w, http.StatusOK, views(tasks))
}

// CreateTask handles POST /api/tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	task, err := c.Service.AddTask(r.Context(), req.Username, models.Draft{
		Title:    req.Title,
		Due:      req.Due,
		Priority: req.Priority,
		Status:   req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Task added", "id": task.ID})
}

// EditTask handles POST /api/tasks/edit.
func (c *TaskController) EditTask(w http.ResponseWriter, r *http.Request) {
	var req editTaskRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	task, err := c.Service.EditTask(r.Context(), req.Username, req.ID, models.Patch{
		Title:    req.Title,
		Due:      req.Due,
		Priority: req.Priority,
		Status:   req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task.View())
}

// DeleteTask handles POST /api/tasks/delete.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	var req taskRefRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if _, err := c.Service.DeleteTask(r.Context(), req.Username, req.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Undo handles POST /api/undo.
func (c *TaskController) Undo(w http.ResponseWriter, r *http.Request) {
	c.historyStep(w, r, c.Service.Undo)
}

// Redo handles POST /api/redo.
func (c *TaskController) Redo(w http.ResponseWriter, r *http.Request) {
	c.historyStep(w, r, c.Service.Redo)
}

func (c *TaskController) historyStep(w http.ResponseWriter, r *http.Request, step func(ctx context.Context, username string) (services.Outcome, error)) {
	var req userRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	out, err := step(r.Context(), req.Username)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]any{"success": false, "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"kind":    out.Kind,
		"id":      out.TaskID,
		"message": out.Message,
	})
}

// SearchTasks handles GET /api/tasks/search?username=U&q=Q.
func (c *TaskController) SearchTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, views(c.Service.SearchTasks(q.Get("username"), q.Get("q"))))
}

// FilterTasks handles GET /api/tasks/filter?username=U&status=S&priority=P.
func (c *TaskController) FilterTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	priority := 0
	if p := q.Get("priority"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "priority must be an integer"})
			return
		}
		priority = n
	}
	writeJSON(w, http.StatusOK, views(c.Service.FilterTasks(q.Get("username"), q.Get("status"), priority)))
}

// ExportTasks handles GET /api/tasks/export?username=U&format=F.
func (c *TaskController) ExportTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	username, format := q.Get("username"), q.Get("format")

	b, err := export.Export(username, c.Service.ListTasks(username), format)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", export.ContentType(format))
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// GetUsers handles GET /api/users.
func (c *TaskController) GetUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Service.Users())
}

// GetAllTasks handles GET /api/manager/tasks.
func (c *TaskController) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Service.AllTasks())
}

// GetAnalytics handles GET /api/analytics.
func (c *TaskController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Service.Stats())
}
