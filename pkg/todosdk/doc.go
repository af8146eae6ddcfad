/*
Package todosdk provides wire types and a client for the taskboard HTTP API.

# Overview

The server speaks JSON and authenticates with a session cookie. SDKClient
keeps the cookie in a jar, so one client is one logged-in user:

	client, err := todosdk.NewSDKClient("http://localhost:8080")

	err = client.Signup(ctx, "alice", "pw123")
	err = client.Login(ctx, "alice", "pw123")

	todo, err := client.CreateTodo(ctx, "Groceries")
	task, err := client.AddTask(ctx, todo.TodoID, "Buy milk", nil)
	task, err = client.ToggleTask(ctx, todo.TodoID, task.TaskID)

	todos, err := client.ListTodos(ctx, "priority:desc,description")

	err = client.Logout(ctx)

# Errors

Any non-success status comes back as *APIError carrying the status code and
the server's message:

	var apiErr *todosdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		// title already used
	}

The same types are used by the server, so request and response shapes
cannot drift between the two.
*/
package todosdk
