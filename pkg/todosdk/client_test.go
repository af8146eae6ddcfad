package todosdk

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeJSONErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"message body", http.StatusConflict, `{"message":"Todo already exists"}`, "Todo already exists"},
		{"plain body", http.StatusBadGateway, `upstream down`, "Bad Gateway"},
		{"empty message", http.StatusNotFound, `{"message":""}`, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			client, err := NewSDKClient(srv.URL + "/")
			require.NoError(t, err)

			_, err = client.CreateTodo(t.Context(), "x")
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestClientKeepsSessionCookie(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "token", Path: "/"})
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})
	mux.HandleFunc("GET /todos", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(SessionCookie)
		if err != nil || c.Value != "token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Unauthorized"}`))
			return
		}
		if r.URL.Query().Get("sort") != "priority:desc" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`[{"todo_id":3,"user_id":1,"title":"t","tasks":[]}]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := NewSDKClient(srv.URL)
	require.NoError(t, err)

	_, err = client.ListTodos(t.Context(), "priority:desc")
	require.Error(t, err)

	require.NoError(t, client.Login(t.Context(), "alice", "pw"))

	todos, err := client.ListTodos(t.Context(), "priority:desc")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, uint64(3), todos[0].TodoID)
}
