package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/aussiebroadwan/taskboard/internal/todo/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

// TodoService manages a user's todo lists. Titles are unique per user.
type TodoService struct {
	Store store.Store
	IDs   idx.Generator
}

// AddTodo creates a todo titled title (trimmed) for userID.
func (s *TodoService) AddTodo(ctx context.Context, userID uint64, title string) (uint64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, domain.ErrEmptyTitle
	}

	t := domain.Todo{ID: s.IDs.Next(), UserID: userID, Title: title, CreatedAt: time.Now().UTC()}
	if err := s.Store.Todos().CreateTodo(ctx, t); err != nil {
		if !errors.Is(err, store.ErrAlreadyExists) {
			return 0, fmt.Errorf("create todo: %w", err)
		}
		if ok, herr := s.HasTodoTitle(ctx, userID, title); herr != nil {
			return 0, herr
		} else if ok {
			return 0, domain.ErrTitleTaken
		}
		return 0, fmt.Errorf("create todo: id %d already in use: %w", t.ID, err)
	}

	return t.ID, nil
}

// GetAllTodos lists the user's todos in ascending id order.
func (s *TodoService) GetAllTodos(ctx context.Context, userID uint64) ([]domain.Todo, error) {
	todos, err := s.Store.Todos().ListTodos(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// GetTodoByID fetches one of the user's todos. Todos owned by anyone else
// are reported as missing.
func (s *TodoService) GetTodoByID(ctx context.Context, userID, todoID uint64) (domain.Todo, error) {
	t, err := s.Store.Todos().GetTodoByID(ctx, userID, todoID)
	if err != nil {
		return domain.Todo{}, mapTodoErr(err)
	}
	return t, nil
}

// HasTodoID reports whether the user owns a todo with this id.
func (s *TodoService) HasTodoID(ctx context.Context, userID, todoID uint64) (bool, error) {
	return exists(s.GetTodoByID(ctx, userID, todoID))
}

// HasTodoTitle reports whether the user already has a todo titled title.
func (s *TodoService) HasTodoTitle(ctx context.Context, userID uint64, title string) (bool, error) {
	t, err := s.Store.Todos().GetTodoByTitle(ctx, userID, strings.TrimSpace(title))
	if err != nil {
		return exists(t, mapTodoErr(err))
	}
	return true, nil
}

// RemoveTodo deletes every task under the todo and then the todo itself.
// A failure part way leaves the todo in place so the call can be retried.
func (s *TodoService) RemoveTodo(ctx context.Context, userID, todoID uint64) (bool, error) {
	ok, err := s.HasTodoID(ctx, userID, todoID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, domain.ErrTodoNotFound
	}

	if _, err := s.Store.Tasks().DeleteByTodo(ctx, userID, todoID); err != nil {
		return false, fmt.Errorf("delete tasks of todo %d: %w", todoID, err)
	}

	removed, err := s.Store.Todos().DeleteTodo(ctx, userID, todoID)
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	return removed, nil
}

func mapTodoErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.ErrTodoNotFound
	}
	return fmt.Errorf("load todo: %w", err)
}
