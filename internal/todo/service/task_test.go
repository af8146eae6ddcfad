package service

import (
	"context"
	"math"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/stretchr/testify/require"
)

func TestValidatePriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		p       float64
		wantErr error
	}{
		{"zero", 0, nil},
		{"positive", 5, nil},
		{"fraction", 0.25, nil},
		{"max", math.MaxFloat64, nil},
		{"negative", -1, domain.ErrNegativePriority},
		{"negative zero", math.Copysign(0, -1), domain.ErrNegativePriority},
		{"negative infinity", math.Inf(-1), domain.ErrNegativePriority},
		{"positive infinity", math.Inf(1), domain.ErrInvalidPriority},
		{"nan", math.NaN(), domain.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePriority(tt.p)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddTaskValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices(t).tasks

	_, err := svc.AddTask(ctx, 1, 0, " ", 1)
	require.ErrorIs(t, err, domain.ErrEmptyDescription)

	// Description is checked before priority.
	_, err = svc.AddTask(ctx, 1, 0, "", -1)
	require.ErrorIs(t, err, domain.ErrEmptyDescription)

	_, err = svc.AddTask(ctx, 1, 0, "wash", -1)
	require.ErrorIs(t, err, domain.ErrNegativePriority)

	_, err = svc.AddTask(ctx, 1, 0, "wash", math.NaN())
	require.ErrorIs(t, err, domain.ErrInvalidPriority)

	tasks, err := svc.GetAllTasks(ctx, 1, nil)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestAddTaskUniquePerTodo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices(t).tasks

	id, err := svc.AddTask(ctx, 1, 0, " wash car ", 5)
	require.NoError(t, err)

	task, err := svc.GetTaskByID(ctx, 1, 0, id)
	require.NoError(t, err)
	require.Equal(t, "wash car", task.Description)
	require.Equal(t, 5.0, task.Priority)
	require.False(t, task.Done)

	_, err = svc.AddTask(ctx, 1, 0, "wash car", 1)
	require.ErrorIs(t, err, domain.ErrDescriptionTaken)
	require.ErrorIs(t, err, domain.ErrConflict)

	// Another todo or another user may reuse the description.
	_, err = svc.AddTask(ctx, 1, 1, "wash car", 1)
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, 2, 0, "wash car", 1)
	require.NoError(t, err)

	ok, err := svc.HasTaskDescription(ctx, 1, 0, "wash car")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = svc.HasTaskDescription(ctx, 1, 0, "dry car")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestToggleTaskDone(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices(t).tasks

	id, err := svc.AddTask(ctx, 1, 0, "wash", 0)
	require.NoError(t, err)

	modified, err := svc.ToggleTaskDone(ctx, 1, 0, id)
	require.NoError(t, err)
	require.True(t, modified)

	task, err := svc.GetTaskByID(ctx, 1, 0, id)
	require.NoError(t, err)
	require.True(t, task.Done)

	modified, err = svc.ToggleTaskDone(ctx, 1, 0, id)
	require.NoError(t, err)
	require.True(t, modified)

	task, err = svc.GetTaskByID(ctx, 1, 0, id)
	require.NoError(t, err)
	require.False(t, task.Done)

	_, err = svc.ToggleTaskDone(ctx, 1, 0, id+1)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	// Wrong todo or wrong owner.
	_, err = svc.ToggleTaskDone(ctx, 1, 1, id)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = svc.ToggleTaskDone(ctx, 2, 0, id)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestRemoveTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices(t).tasks

	id, err := svc.AddTask(ctx, 1, 0, "wash", 0)
	require.NoError(t, err)

	removed, err := svc.RemoveTask(ctx, 1, 0, id)
	require.NoError(t, err)
	require.True(t, removed)

	ok, err := svc.HasTaskID(ctx, 1, 0, id)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = svc.RemoveTask(ctx, 1, 0, id)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = svc.ToggleTaskDone(ctx, 1, 0, id)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)

	// The description can be reused after removal.
	_, err = svc.AddTask(ctx, 1, 0, "wash", 0)
	require.NoError(t, err)
}

func TestGetAllTasksScope(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newServices(t).tasks

	_, err := svc.AddTask(ctx, 1, 0, "a", 0)
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, 1, 1, "b", 0)
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, 2, 0, "c", 0)
	require.NoError(t, err)

	all, err := svc.GetAllTasks(ctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	todoID := uint64(1)
	scoped, err := svc.GetAllTasks(ctx, 1, &todoID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	require.Equal(t, "b", scoped[0].Description)
}

// Two users each signing up, creating a todo and a task, see only their own
// data even though every generator hands out the same ids.
func TestTenantScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newServices(t)

	alice, err := s.users.CreateUser(ctx, "alice", "pw123")
	require.NoError(t, err)
	require.Equal(t, uint64(0), alice)

	sid, err := s.sessions.CreateSession(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(0), sid)

	todoID, err := s.todos.AddTodo(ctx, alice, "groceries")
	require.NoError(t, err)
	require.Equal(t, uint64(0), todoID)

	taskID, err := s.tasks.AddTask(ctx, alice, todoID, "milk", 2)
	require.NoError(t, err)
	require.Equal(t, uint64(0), taskID)

	bob, err := s.users.CreateUser(ctx, "bob", "pw456")
	require.NoError(t, err)
	require.Equal(t, uint64(1), bob)

	ok, err := s.todos.HasTodoID(ctx, bob, todoID)
	require.NoError(t, err)
	require.False(t, ok)

	bobTasks, err := s.tasks.GetAllTasks(ctx, bob, nil)
	require.NoError(t, err)
	require.Empty(t, bobTasks)

	bobTodo, err := s.todos.AddTodo(ctx, bob, "groceries")
	require.NoError(t, err)
	require.Equal(t, uint64(1), bobTodo)

	aliceTodos, err := s.todos.GetAllTodos(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceTodos, 1)
	require.Equal(t, todoID, aliceTodos[0].ID)
}
