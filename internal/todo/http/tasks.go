package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/aussiebroadwan/taskboard/internal/todo/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/todosdk"
)

type TaskHandler struct {
	TaskService *service.TaskService
}

// HandleCreate adds a task to the todo.
//
//	@Summary		Add task
//	@Description	Priority defaults to 0 and must be a non-negative finite number.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			todoId	path		int							true	"Todo ID"
//	@Param			request	body		todosdk.CreateTaskRequest	true	"Description and optional priority"
//	@Success		201		{object}	todosdk.Task
//	@Failure		400		{object}	todosdk.MessageResponse	"Invalid description or priority"
//	@Failure		401		{object}	todosdk.MessageResponse	"Unauthorized"
//	@Failure		404		{object}	todosdk.MessageResponse	"Todo is not exist!"
//	@Failure		409		{object}	todosdk.MessageResponse	"Task already exists"
//	@Router			/todos/{todoId}/tasks [post].
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	todo := todoFrom(ctx)

	var req todosdk.CreateTaskRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	var priority float64
	if req.Priority != nil {
		priority = *req.Priority
	}

	id, err := h.TaskService.AddTask(ctx, todo.UserID, todo.ID, req.Description, priority)
	if err != nil {
		writeError(w, r, err)
		return
	}
	task, err := h.TaskService.GetTaskByID(ctx, todo.UserID, todo.ID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTaskResponse(task))
}

// HandleToggle flips the task's done flag.
//
//	@Summary		Toggle task
//	@Tags			Tasks
//	@Produce		json
//	@Param			todoId	path		int	true	"Todo ID"
//	@Param			taskId	path		int	true	"Task ID"
//	@Success		200		{object}	todosdk.Task
//	@Failure		401		{object}	todosdk.MessageResponse	"Unauthorized"
//	@Failure		404		{object}	todosdk.MessageResponse	"Todo or task does not exist"
//	@Router			/todos/{todoId}/tasks/{taskId} [patch].
func (h *TaskHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	task := taskFrom(ctx)

	if _, err := h.TaskService.ToggleTaskDone(ctx, task.UserID, task.TodoID, task.ID); err != nil {
		writeError(w, r, err)
		return
	}
	task, err := h.TaskService.GetTaskByID(ctx, task.UserID, task.TodoID, task.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTaskResponse(task))
}

// HandleDelete removes the task.
//
//	@Summary		Delete task
//	@Tags			Tasks
//	@Produce		json
//	@Param			todoId	path		int		true	"Todo ID"
//	@Param			taskId	path		int		true	"Task ID"
//	@Success		200		{boolean}	bool	"Whether a task was removed"
//	@Failure		401		{object}	todosdk.MessageResponse	"Unauthorized"
//	@Failure		404		{object}	todosdk.MessageResponse	"Todo or task does not exist"
//	@Router			/todos/{todoId}/tasks/{taskId} [delete].
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	task := taskFrom(ctx)

	removed, err := h.TaskService.RemoveTask(ctx, task.UserID, task.TodoID, task.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, removed)
}

func toTaskResponse(t domain.Task) todosdk.Task {
	return todosdk.Task{
		TaskID:      t.ID,
		TodoID:      t.TodoID,
		UserID:      t.UserID,
		Description: t.Description,
		Done:        t.Done,
		Priority:    t.Priority,
	}
}
