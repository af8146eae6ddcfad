package todosdk

// SessionCookie is the cookie that carries the signed session token.
const SessionCookie = "sessionId"

// Credentials is the body of /signup and /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// CreateTaskRequest is the body of POST /todos/{todoId}/tasks. A nil
// Priority means 0.
type CreateTaskRequest struct {
	Description string   `json:"description"`
	Priority    *float64 `json:"priority,omitempty"`
}

// Task is a unit of work inside a todo.
type Task struct {
	TaskID      uint64  `json:"task_id"`
	TodoID      uint64  `json:"todo_id"`
	UserID      uint64  `json:"user_id"`
	Description string  `json:"description"`
	Done        bool    `json:"done"`
	Priority    float64 `json:"priority"`
}

// Todo is a named list of tasks.
type Todo struct {
	TodoID uint64 `json:"todo_id"`
	UserID uint64 `json:"user_id"`
	Title  string `json:"title"`
	Tasks  []Task `json:"tasks"`
}

// MessageResponse is returned by endpoints that have no entity to show,
// and by every error.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Store  string `json:"store"`
	Signer string `json:"signer"`
}
