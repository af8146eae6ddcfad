package http

import (
	"context"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
)

type ctxKey string

const (
	ctxKeyUserID    ctxKey = "user_id"
	ctxKeySessionID ctxKey = "session_id"
	ctxKeyTodo      ctxKey = "todo"
	ctxKeyTask      ctxKey = "task"
)

// Each value is set by the middleware guarding the route, so handlers can
// rely on it being present.

func userIDFrom(ctx context.Context) uint64 {
	id, _ := ctx.Value(ctxKeyUserID).(uint64)
	return id
}

func sessionIDFrom(ctx context.Context) uint64 {
	id, _ := ctx.Value(ctxKeySessionID).(uint64)
	return id
}

func todoFrom(ctx context.Context) domain.Todo {
	t, _ := ctx.Value(ctxKeyTodo).(domain.Todo)
	return t
}

func taskFrom(ctx context.Context) domain.Task {
	t, _ := ctx.Value(ctxKeyTask).(domain.Task)
	return t
}
