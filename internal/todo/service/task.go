package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/aussiebroadwan/taskboard/internal/todo/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

// TaskService manages tasks under a todo. It trusts its caller to have
// checked that the todo belongs to the user.
type TaskService struct {
	Store store.Store
	IDs   idx.Generator
}

// ValidatePriority rejects negative values (including -0 and -Inf) before
// non-finite ones.
func ValidatePriority(p float64) error {
	if p < 0 || (p == 0 && math.Signbit(p)) {
		return domain.ErrNegativePriority
	}
	if math.IsNaN(p) || math.IsInf(p, 1) {
		return domain.ErrInvalidPriority
	}
	return nil
}

// AddTask creates a task under todoID. Callers without a priority pass 0.
func (s *TaskService) AddTask(ctx context.Context, userID, todoID uint64, description string, priority float64) (uint64, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, domain.ErrEmptyDescription
	}
	if err := ValidatePriority(priority); err != nil {
		return 0, err
	}

	t := domain.Task{
		ID:          s.IDs.Next(),
		UserID:      userID,
		TodoID:      todoID,
		Description: description,
		Priority:    priority,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Store.Tasks().CreateTask(ctx, t); err != nil {
		if !errors.Is(err, store.ErrAlreadyExists) {
			return 0, fmt.Errorf("create task: %w", err)
		}
		if ok, herr := s.HasTaskDescription(ctx, userID, todoID, description); herr != nil {
			return 0, herr
		} else if ok {
			return 0, domain.ErrDescriptionTaken
		}
		return 0, fmt.Errorf("create task: id %d already in use: %w", t.ID, err)
	}

	return t.ID, nil
}

// GetAllTasks lists the user's tasks, across all todos when todoID is nil.
func (s *TaskService) GetAllTasks(ctx context.Context, userID uint64, todoID *uint64) ([]domain.Task, error) {
	tasks, err := s.Store.Tasks().ListTasks(ctx, userID, todoID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetTaskByID fetches one of the user's tasks under todoID.
func (s *TaskService) GetTaskByID(ctx context.Context, userID, todoID, taskID uint64) (domain.Task, error) {
	t, err := s.Store.Tasks().GetTaskByID(ctx, userID, todoID, taskID)
	if err != nil {
		return domain.Task{}, mapTaskErr(err)
	}
	return t, nil
}

// HasTaskID reports whether the task exists under the user's todo.
func (s *TaskService) HasTaskID(ctx context.Context, userID, todoID, taskID uint64) (bool, error) {
	return exists(s.GetTaskByID(ctx, userID, todoID, taskID))
}

// HasTaskDescription reports whether the todo already has a task with this description.
func (s *TaskService) HasTaskDescription(ctx context.Context, userID, todoID uint64, description string) (bool, error) {
	t, err := s.Store.Tasks().GetTaskByDescription(ctx, userID, todoID, strings.TrimSpace(description))
	if err != nil {
		return exists(t, mapTaskErr(err))
	}
	return true, nil
}

// ToggleTaskDone flips the task's done flag in one store write and reports
// whether a record was modified.
func (s *TaskService) ToggleTaskDone(ctx context.Context, userID, todoID, taskID uint64) (bool, error) {
	if err := s.mustExist(ctx, userID, todoID, taskID); err != nil {
		return false, err
	}

	modified, err := s.Store.Tasks().ToggleDone(ctx, userID, todoID, taskID)
	if err != nil {
		return false, fmt.Errorf("toggle task: %w", err)
	}
	return modified, nil
}

// RemoveTask deletes the task and reports whether a record was removed.
func (s *TaskService) RemoveTask(ctx context.Context, userID, todoID, taskID uint64) (bool, error) {
	if err := s.mustExist(ctx, userID, todoID, taskID); err != nil {
		return false, err
	}

	removed, err := s.Store.Tasks().DeleteTask(ctx, userID, todoID, taskID)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return removed, nil
}

func (s *TaskService) mustExist(ctx context.Context, userID, todoID, taskID uint64) error {
	ok, err := s.HasTaskID(ctx, userID, todoID, taskID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.ErrTaskNotFound
	}
	return fmt.Errorf("load task: %w", err)
}
