// Package tasks keeps the in-memory task list consistent with the remote
// store. The local slice is a best-effort mirror, never the source of truth:
// every mutation waits for server confirmation before touching local state,
// and every operation either fully succeeds or leaves the list untouched.
package tasks

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/todolist/internal/client/api"
	"github.com/dmitrijs2005/todolist/internal/client/notify"
	"github.com/dmitrijs2005/todolist/internal/logging"
)

// API is the subset of the remote store contract the synchronizer needs.
type API interface {
	ListTasks(ctx context.Context) ([]api.Task, error)
	CreateTask(ctx context.Context, title string) (api.Task, error)
	UpdateTask(ctx context.Context, id, title string, completed bool) (api.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Synchronizer owns the ordered task list for the current session. Like the
// session manager it is single-threaded by design: operations are issued
// independently and each mutates only its own item on completion.
type Synchronizer struct {
	api      API
	notifier notify.Notifier
	logger   logging.Logger

	tasks    []api.Task
	onChange []func()
}

func NewSynchronizer(a API, n notify.Notifier, log logging.Logger) *Synchronizer {
	return &Synchronizer{
		api:      a,
		notifier: n,
		logger:   log.With("module", "tasks"),
	}
}

// Subscribe registers a callback invoked after every local list change.
func (s *Synchronizer) Subscribe(fn func()) {
	s.onChange = append(s.onChange, fn)
}

// Tasks returns a copy of the local list in server order.
func (s *Synchronizer) Tasks() []api.Task {
	out := make([]api.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Refresh replaces the local list wholesale with the server's. On failure
// the previous list is kept as-is.
func (s *Synchronizer) Refresh(ctx context.Context) {
	list, err := s.api.ListTasks(ctx)
	if err != nil {
		s.reportError(ctx, err, "Failed to fetch todos")
		return
	}
	s.tasks = list
	s.publish()
}

// Add creates a task and appends the server's item to the end of the list.
// Empty or whitespace-only titles are rejected locally, with no network call.
func (s *Synchronizer) Add(ctx context.Context, title string) {
	if strings.TrimSpace(title) == "" {
		s.notifier.Notify(notify.Error, "Todo title cannot be empty.")
		return
	}

	created, err := s.api.CreateTask(ctx, title)
	if err != nil {
		s.reportError(ctx, err, "Failed to add todo.")
		return
	}

	s.tasks = append(s.tasks, created)
	s.publish()
	s.notifier.Notify(notify.Success, "Todo added successfully!")
}

// Toggle inverts the completed flag of a task. The store has full-replace
// semantics, so the unchanged title travels with the flipped flag. Only the
// matching local item is touched, and only after the server confirms.
func (s *Synchronizer) Toggle(ctx context.Context, id string, currentCompleted bool, title string) {
	if _, err := s.api.UpdateTask(ctx, id, title, !currentCompleted); err != nil {
		s.reportError(ctx, err, "Failed to update todo.")
		return
	}

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !currentCompleted
			break
		}
	}
	s.publish()
	s.notifier.Notify(notify.Success, "Todo updated!")
}

// Delete removes a task, preserving the relative order of the rest.
func (s *Synchronizer) Delete(ctx context.Context, id string) {
	if err := s.api.DeleteTask(ctx, id); err != nil {
		s.reportError(ctx, err, "Failed to delete todo.")
		return
	}

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.publish()
	s.notifier.Notify(notify.Success, "Todo deleted!")
}

func (s *Synchronizer) reportError(ctx context.Context, err error, defaultMsg string) {
	s.notifier.Notify(notify.Error, api.FailureMessage(err, defaultMsg))
	if !api.IsFailure(err) {
		s.logger.Error(ctx, "task request failed", "error", err)
	}
}

func (s *Synchronizer) publish() {
	for _, fn := range s.onChange {
		fn()
	}
}
