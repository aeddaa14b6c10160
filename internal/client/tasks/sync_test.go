package tasks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/todolist/internal/client/api"
	"github.com/dmitrijs2005/todolist/internal/client/notify"
	"github.com/dmitrijs2005/todolist/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeAPI struct {
	ListRet   []api.Task
	ListErr   error
	CreateRet api.Task
	CreateErr error
	UpdateRet api.Task
	UpdateErr error
	DeleteErr error

	ListCalls   int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	LastCreateTitle     string
	LastUpdateID        string
	LastUpdateTitle     string
	LastUpdateCompleted bool
	LastDeleteID        string
}

func (f *fakeAPI) ListTasks(ctx context.Context) ([]api.Task, error) {
	f.ListCalls++
	return append([]api.Task(nil), f.ListRet...), f.ListErr
}

func (f *fakeAPI) CreateTask(ctx context.Context, title string) (api.Task, error) {
	f.CreateCalls++
	f.LastCreateTitle = title
	return f.CreateRet, f.CreateErr
}

func (f *fakeAPI) UpdateTask(ctx context.Context, id, title string, completed bool) (api.Task, error) {
	f.UpdateCalls++
	f.LastUpdateID = id
	f.LastUpdateTitle = title
	f.LastUpdateCompleted = completed
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id string) error {
	f.DeleteCalls++
	f.LastDeleteID = id
	return f.DeleteErr
}

type notification struct {
	Kind    notify.Kind
	Message string
}

type recorderNotifier struct {
	Notifications []notification
}

func (r *recorderNotifier) Notify(kind notify.Kind, message string) {
	r.Notifications = append(r.Notifications, notification{Kind: kind, Message: message})
}

func newSync(a API) (*Synchronizer, *recorderNotifier) {
	rec := &recorderNotifier{}
	return NewSynchronizer(a, rec, logging.NewJSON(io.Discard)), rec
}

func seed(s *Synchronizer, items ...api.Task) {
	s.tasks = append([]api.Task(nil), items...)
}

// ---- tests ----

func TestRefresh_ReplacesListWholesale(t *testing.T) {
	fa := &fakeAPI{ListRet: []api.Task{
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b", Completed: true},
	}}
	s, _ := newSync(fa)
	seed(s, api.Task{ID: "stale", Title: "old"})

	changed := 0
	s.Subscribe(func() { changed++ })

	s.Refresh(context.Background())

	require.Equal(t, fa.ListRet, s.Tasks())
	require.Equal(t, 1, changed)
}

func TestRefresh_Failure_KeepsLocalList(t *testing.T) {
	fa := &fakeAPI{ListErr: &api.Failure{Message: "token expired"}}
	s, rec := newSync(fa)
	seed(s, api.Task{ID: "1", Title: "a"})

	s.Refresh(context.Background())

	require.Equal(t, []api.Task{{ID: "1", Title: "a"}}, s.Tasks())
	require.Equal(t, []notification{{notify.Error, "token expired"}}, rec.Notifications)
}

func TestAdd_AppendsServerTask(t *testing.T) {
	fa := &fakeAPI{CreateRet: api.Task{ID: "9", Title: "buy milk"}}
	s, rec := newSync(fa)
	seed(s, api.Task{ID: "1", Title: "a"})

	s.Add(context.Background(), "buy milk")

	require.Equal(t, []api.Task{
		{ID: "1", Title: "a"},
		{ID: "9", Title: "buy milk"},
	}, s.Tasks())
	require.Equal(t, "buy milk", fa.LastCreateTitle)
	require.Equal(t, []notification{{notify.Success, "Todo added successfully!"}}, rec.Notifications)
}

func TestAdd_WhitespaceTitle_NoNetworkCall(t *testing.T) {
	fa := &fakeAPI{}
	s, rec := newSync(fa)
	seed(s, api.Task{ID: "1", Title: "a"})

	s.Add(context.Background(), "   ")

	require.Zero(t, fa.CreateCalls)
	require.Equal(t, []api.Task{{ID: "1", Title: "a"}}, s.Tasks())
	require.Equal(t, []notification{{notify.Error, "Todo title cannot be empty."}}, rec.Notifications)
}

func TestAdd_Failure_NoLocalMutation(t *testing.T) {
	fa := &fakeAPI{CreateErr: &api.Failure{}}
	s, rec := newSync(fa)

	s.Add(context.Background(), "buy milk")

	require.Empty(t, s.Tasks())
	require.Equal(t, []notification{{notify.Error, "Failed to add todo."}}, rec.Notifications)
}

func TestToggle_FlipsOnlyMatchingItem(t *testing.T) {
	fa := &fakeAPI{UpdateRet: api.Task{ID: "2", Title: "b", Completed: true}}
	s, _ := newSync(fa)
	seed(s,
		api.Task{ID: "1", Title: "a"},
		api.Task{ID: "2", Title: "b"},
		api.Task{ID: "3", Title: "c", Completed: true},
	)

	s.Toggle(context.Background(), "2", false, "b")

	require.Equal(t, []api.Task{
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b", Completed: true},
		{ID: "3", Title: "c", Completed: true},
	}, s.Tasks())
	require.Equal(t, "2", fa.LastUpdateID)
	require.Equal(t, "b", fa.LastUpdateTitle)
	require.True(t, fa.LastUpdateCompleted)
}

func TestToggle_DoubleToggle_ReturnsToOriginal(t *testing.T) {
	fa := &fakeAPI{UpdateRet: api.Task{ID: "1", Title: "a"}}
	s, _ := newSync(fa)
	seed(s, api.Task{ID: "1", Title: "a"})
	original := s.Tasks()

	s.Toggle(context.Background(), "1", false, "a")
	s.Toggle(context.Background(), "1", true, "a")

	require.Equal(t, original, s.Tasks())
	require.False(t, fa.LastUpdateCompleted)
}

func TestToggle_Failure_NoLocalMutation(t *testing.T) {
	fa := &fakeAPI{UpdateErr: &api.Failure{Message: "conflict"}}
	s, rec := newSync(fa)
	seed(s, api.Task{ID: "1", Title: "a"})

	s.Toggle(context.Background(), "1", false, "a")

	require.Equal(t, []api.Task{{ID: "1", Title: "a"}}, s.Tasks())
	require.Equal(t, []notification{{notify.Error, "conflict"}}, rec.Notifications)
}

func TestDelete_RemovesExactlyOne_PreservesOrder(t *testing.T) {
	fa := &fakeAPI{}
	s, rec := newSync(fa)
	seed(s,
		api.Task{ID: "1", Title: "a"},
		api.Task{ID: "2", Title: "b"},
		api.Task{ID: "3", Title: "c"},
	)

	s.Delete(context.Background(), "2")

	require.Equal(t, []api.Task{
		{ID: "1", Title: "a"},
		{ID: "3", Title: "c"},
	}, s.Tasks())
	require.Equal(t, "2", fa.LastDeleteID)
	require.Equal(t, []notification{{notify.Success, "Todo deleted!"}}, rec.Notifications)
}

func TestDelete_Failure_NoLocalMutation(t *testing.T) {
	fa := &fakeAPI{DeleteErr: &api.Failure{}}
	s, rec := newSync(fa)
	seed(s, api.Task{ID: "x", Title: "a"})

	s.Delete(context.Background(), "x")

	require.Equal(t, []api.Task{{ID: "x", Title: "a"}}, s.Tasks())
	require.Equal(t, []notification{{notify.Error, "Failed to delete todo."}}, rec.Notifications)
}

func TestTransportFailure_RecordedToDiagnosticLog(t *testing.T) {
	fa := &fakeAPI{ListErr: errors.New("connection reset")}
	rec := &recorderNotifier{}
	var logBuf bytes.Buffer
	s := NewSynchronizer(fa, rec, logging.NewJSON(&logBuf))

	s.Refresh(context.Background())

	require.Equal(t, []notification{{notify.Error, "connection reset"}}, rec.Notifications)
	require.Contains(t, logBuf.String(), "task request failed")
}

func TestApplicationFailure_NotLoggedToDiagnostics(t *testing.T) {
	fa := &fakeAPI{ListErr: &api.Failure{Message: "nope"}}
	rec := &recorderNotifier{}
	var logBuf bytes.Buffer
	s := NewSynchronizer(fa, rec, logging.NewJSON(&logBuf))

	s.Refresh(context.Background())

	require.Empty(t, logBuf.String())
	require.Equal(t, []notification{{notify.Error, "nope"}}, rec.Notifications)
}

func TestTasks_ReturnsCopy(t *testing.T) {
	s, _ := newSync(&fakeAPI{})
	seed(s, api.Task{ID: "1", Title: "a"})

	got := s.Tasks()
	got[0].Title = "mutated"

	require.Equal(t, "a", s.tasks[0].Title)
}
