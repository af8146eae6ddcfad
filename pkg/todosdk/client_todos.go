package todosdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListTodos returns the user's todos with their tasks. sort is passed as the
// sort query parameter when non-empty.
func (c *SDKClient) ListTodos(ctx context.Context, sort string) ([]Todo, error) {
	path := "/todos"
	if sort != "" {
		path += "?" + url.Values{"sort": {sort}}.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var todos []Todo
	if err := decodeJSON(resp, &todos, http.StatusOK); err != nil {
		return nil, err
	}
	return todos, nil
}

func (c *SDKClient) CreateTodo(ctx context.Context, title string) (*Todo, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/todos", CreateTodoRequest{Title: title})
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := decodeJSON(resp, &todo, http.StatusCreated); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *SDKClient) GetTodo(ctx context.Context, todoID uint64) (*Todo, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, todoPath(todoID), nil)
	if err != nil {
		return nil, err
	}

	var todo Todo
	if err := decodeJSON(resp, &todo, http.StatusOK); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteTodo removes a todo and its tasks and reports the server's verdict.
func (c *SDKClient) DeleteTodo(ctx context.Context, todoID uint64) (bool, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, todoPath(todoID), nil)
	if err != nil {
		return false, err
	}

	var removed bool
	if err := decodeJSON(resp, &removed, http.StatusOK); err != nil {
		return false, err
	}
	return removed, nil
}

// AddTask creates a task. A nil priority lets the server use 0.
func (c *SDKClient) AddTask(ctx context.Context, todoID uint64, description string, priority *float64) (*Task, error) {
	body := CreateTaskRequest{Description: description, Priority: priority}
	resp, err := c.doRequest(ctx, http.MethodPost, todoPath(todoID)+"/tasks", body)
	if err != nil {
		return nil, err
	}

	var task Task
	if err := decodeJSON(resp, &task, http.StatusCreated); err != nil {
		return nil, err
	}
	return &task, nil
}

// ToggleTask flips a task's done flag and returns the updated task.
func (c *SDKClient) ToggleTask(ctx context.Context, todoID, taskID uint64) (*Task, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, taskPath(todoID, taskID), nil)
	if err != nil {
		return nil, err
	}

	var task Task
	if err := decodeJSON(resp, &task, http.StatusOK); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *SDKClient) DeleteTask(ctx context.Context, todoID, taskID uint64) (bool, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, taskPath(todoID, taskID), nil)
	if err != nil {
		return false, err
	}

	var removed bool
	if err := decodeJSON(resp, &removed, http.StatusOK); err != nil {
		return false, err
	}
	return removed, nil
}

func todoPath(todoID uint64) string {
	return fmt.Sprintf("/todos/%d", todoID)
}

func taskPath(todoID, taskID uint64) string {
	return fmt.Sprintf("/todos/%d/tasks/%d", todoID, taskID)
}
