package http

import (
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/aussiebroadwan/taskboard/internal/todo/service"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/todosdk"
)

type TodoHandler struct {
	TodoService *service.TodoService
	TaskService *service.TaskService
}

// HandleList lists the user's todos with their tasks.
//
//	@Summary		List todos
//	@Description	Returns every todo of the session's user with its tasks. The sort parameter orders tasks inside each todo,
//	@Description	e.g. "status:asc,priority:desc". Keys: priority, task_id, description, status, task_insertion_time.
//	@Tags			Todos
//	@Produce		json
//	@Param			sort	query		string					false	"Task ordering"
//	@Success		200		{array}		todosdk.Todo
//	@Failure		400		{object}	todosdk.MessageResponse	"Unknown sort key"
//	@Failure		401		{object}	todosdk.MessageResponse	"Unauthorized"
//	@Router			/todos [get].
func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := userIDFrom(ctx)

	keys, err := service.ParseSortKeys(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	todos, err := h.TodoService.GetAllTodos(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	tasks, err := h.TaskService.GetAllTasks(ctx, userID, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	byTodo := make(map[uint64][]domain.Task, len(todos))
	for _, t := range tasks {
		byTodo[t.TodoID] = append(byTodo[t.TodoID], t)
	}

	resp := make([]todosdk.Todo, 0, len(todos))
	for _, todo := range todos {
		own := byTodo[todo.ID]
		service.SortTasks(own, keys...)
		resp = append(resp, toTodoResponse(todo, own))
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCreate creates a todo.
//
//	@Summary		Create todo
//	@Tags			Todos
//	@Accept			json
//	@Produce		json
//	@Param			request	body		todosdk.CreateTodoRequest	true	"Title"
//	@Success		201		{object}	todosdk.Todo
//	@Failure		400		{object}	todosdk.MessageResponse	"Title is required"
//	@Failure		401		{object}	todosdk.MessageResponse	"Unauthorized"
//	@Failure		409		{object}	todosdk.MessageResponse	"Todo already exists"
//	@Router			/todos [post].
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := userIDFrom(ctx)

	var req todosdk.CreateTodoRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	id, err := h.TodoService.AddTodo(ctx, userID, req.Title)
	if err != nil {
		writeError(w, r, err)
		return
	}
	todo, err := h.TodoService.GetTodoByID(ctx, userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toTodoResponse(todo, nil))
}

// HandleGet returns one todo with its tasks.
//
//	@Summary		Get todo
//	@Tags			Todos
//	@Produce		json
//	@Param			todoId	path		int		true	"Todo ID"
//	@Param			sort	query		string	false	"Task ordering"
//	@Success		200		{object}	todosdk.Todo
//	@Failure		400		{object}	todosdk.MessageResponse	"Unknown sort key"
//	@Failure		401		{object}	todosdk.MessageResponse	"Unauthorized"
//	@Failure		404		{object}	todosdk.MessageResponse	"Todo is not exist!"
//	@Router			/todos/{todoId} [get].
func (h *TodoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	todo := todoFrom(ctx)

	keys, err := service.ParseSortKeys(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	tasks, err := h.TaskService.GetAllTasks(ctx, todo.UserID, &todo.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	service.SortTasks(tasks, keys...)

	httpx.WriteJSON(w, http.StatusOK, toTodoResponse(todo, tasks))
}

// HandleDelete removes a todo and every task in it.
//
//	@Summary		Delete todo
//	@Tags			Todos
//	@Produce		json
//	@Param			todoId	path		int		true	"Todo ID"
//	@Success		200		{boolean}	bool	"Whether a todo was removed"
//	@Failure		401		{object}	todosdk.MessageResponse	"Unauthorized"
//	@Failure		404		{object}	todosdk.MessageResponse	"Todo is not exist!"
//	@Router			/todos/{todoId} [delete].
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	todo := todoFrom(ctx)

	removed, err := h.TodoService.RemoveTodo(ctx, todo.UserID, todo.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, removed)
}

func toTodoResponse(todo domain.Todo, tasks []domain.Task) todosdk.Todo {
	resp := todosdk.Todo{
		TodoID: todo.ID,
		UserID: todo.UserID,
		Title:  todo.Title,
		Tasks:  make([]todosdk.Task, 0, len(tasks)),
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t))
	}
	return resp
}
