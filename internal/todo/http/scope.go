package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
)

// requireTodo loads {todoId} for the acting user. Malformed ids and todos of
// other users both read as missing.
func (r *Router) requireTodo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		todoID, err := strconv.ParseUint(chi.URLParam(req, "todoId"), 10, 64)
		if err != nil {
			writeError(w, req, domain.ErrTodoNotFound)
			return
		}

		todo, err := r.TodoService.GetTodoByID(ctx, userIDFrom(ctx), todoID)
		if err != nil {
			writeError(w, req, err)
			return
		}

		ctx = context.WithValue(ctx, ctxKeyTodo, todo)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// requireTask loads {taskId} under the todo resolved by requireTodo.
func (r *Router) requireTask(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		taskID, err := strconv.ParseUint(chi.URLParam(req, "taskId"), 10, 64)
		if err != nil {
			writeError(w, req, domain.ErrTaskNotFound)
			return
		}

		todo := todoFrom(ctx)
		task, err := r.TaskService.GetTaskByID(ctx, todo.UserID, todo.ID, taskID)
		if err != nil {
			writeError(w, req, err)
			return
		}

		ctx = context.WithValue(ctx, ctxKeyTask, task)
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}
