package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/todolist/internal/client/storage"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *storage.Memory) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := storage.NewMemory()
	return NewClient(srv.URL, srv.Client(), store), store
}

func TestLogin_Success_CoercesNumericUserID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["username"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Login successful","token":"t1","userId":2}`))
	})

	res, err := client.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "t1", res.Token)
	require.Equal(t, "2", res.UserID)
	require.Equal(t, "Login successful", res.Message)
}

func TestLogin_StringUserID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"t1","userId":"u-7"}`))
	})

	res, err := client.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "u-7", res.UserID)
}

func TestLogin_MissingToken_IsFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "alice", "wrong")
	require.True(t, IsFailure(err))
	require.Equal(t, "invalid credentials", FailureMessage(err, "Login failed."))
}

func TestLogin_Non2xx_IsTransportWithParsedMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	require.False(t, IsFailure(err))
	// the notification text stays clean while the error string keeps the code
	require.Equal(t, "invalid credentials", FailureMessage(err, "Login failed."))
	require.EqualError(t, err, "invalid credentials (status 401)")
}

func TestLogin_Non2xx_UnparsableBody_GenericMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := client.Login(context.Background(), "alice", "pw")
	require.Equal(t, "API Error", FailureMessage(err, "Login failed."))
	require.EqualError(t, err, "API Error (status 502)")
}

func TestSignup_SendsEmail(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/signup", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.c", body["email"])
		w.Write([]byte(`{"token":"t","userId":1}`))
	})

	_, err := client.Signup(context.Background(), "alice", "a@b.c", "pw")
	require.NoError(t, err)
}

func TestListTasks_SendsBearerToken(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[{"id":"1","title":"a","completed":false},{"id":"2","title":"b","completed":true}]`))
	})
	require.NoError(t, store.Set(storage.KeyToken, "t1"))

	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer t1", gotAuth)
	require.Equal(t, []Task{
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b", Completed: true},
	}, tasks)
}

func TestListTasks_ErrorObjectBody_IsFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"token expired"}`))
	})

	_, err := client.ListTasks(context.Background())
	require.True(t, IsFailure(err))
	require.EqualError(t, err, "token expired")
}

func TestCreateTask_MissingID_IsFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"quota exceeded"}`))
	})

	_, err := client.CreateTask(context.Background(), "buy milk")
	require.True(t, IsFailure(err))
	require.EqualError(t, err, "quota exceeded")
}

func TestUpdateTask_SendsFullReplaceBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/todos/42", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "buy milk", body["title"])
		require.Equal(t, true, body["completed"])

		w.Write([]byte(`{"id":"42","title":"buy milk","completed":true}`))
	})

	task, err := client.UpdateTask(context.Background(), "42", "buy milk", true)
	require.NoError(t, err)
	require.Equal(t, Task{ID: "42", Title: "buy milk", Completed: true}, task)
}

func TestDeleteTask_SuccessFalse_IsFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"success":false}`))
	})

	err := client.DeleteTask(context.Background(), "x")
	require.True(t, IsFailure(err))
	require.Equal(t, "Failed to delete todo.", FailureMessage(err, "Failed to delete todo."))
}

func TestDeleteTask_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})

	require.NoError(t, client.DeleteTask(context.Background(), "x"))
}

func TestNetworkError_IsTransport(t *testing.T) {
	store := storage.NewMemory()
	client := NewClient("http://127.0.0.1:1", nil, store)

	_, err := client.ListTasks(context.Background())
	require.Error(t, err)
	require.False(t, IsFailure(err))
}
