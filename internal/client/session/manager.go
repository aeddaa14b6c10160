// Package session owns client authentication state: the two-state machine
// between unauthenticated and authenticated, the persisted token, and the
// transitions driven by login, signup, and logout.
//
// Every outcome is reported through the injected Notifier; nothing here
// returns an error to the caller. Transport failures are additionally
// recorded to the diagnostic log.
package session

import (
	"context"

	"github.com/dmitrijs2005/todolist/internal/client/api"
	"github.com/dmitrijs2005/todolist/internal/client/notify"
	"github.com/dmitrijs2005/todolist/internal/client/storage"
	"github.com/dmitrijs2005/todolist/internal/logging"
)

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// API is the subset of the remote store contract the session layer needs.
type API interface {
	Login(ctx context.Context, username, password string) (api.AuthResult, error)
	Signup(ctx context.Context, username, email, password string) (api.AuthResult, error)
}

// Manager is the session state machine. It is meant for single-threaded use
// from the UI loop; mutations happen only between suspension points.
type Manager struct {
	api      API
	store    storage.Storage
	notifier notify.Notifier
	logger   logging.Logger

	state    State
	userID   string
	onChange []func(State)
}

func NewManager(a API, store storage.Storage, n notify.Notifier, log logging.Logger) *Manager {
	return &Manager{
		api:      a,
		store:    store,
		notifier: n,
		logger:   log.With("module", "session"),
	}
}

// Subscribe registers a callback invoked after every state transition.
// The presentation layer uses this to switch between auth and task views.
func (m *Manager) Subscribe(fn func(State)) {
	m.onChange = append(m.onChange, fn)
}

func (m *Manager) State() State { return m.state }

func (m *Manager) UserID() string { return m.userID }

// Restore runs once at startup. A persisted token is trusted without a
// server round-trip; a stale one surfaces later as a failed refresh.
func (m *Manager) Restore() {
	token, ok := m.store.Get(storage.KeyToken)
	if !ok || token == "" {
		return
	}
	m.userID, _ = m.store.Get(storage.KeyUserID)
	m.transition(Authenticated)
}

// Login authenticates with the remote store. Empty inputs are rejected
// locally without a network call.
func (m *Manager) Login(ctx context.Context, username, password string) {
	if username == "" || password == "" {
		m.notifier.Notify(notify.Error, "Username and password are required.")
		return
	}

	res, err := m.api.Login(ctx, username, password)
	if err != nil {
		m.reportAuthError(ctx, err, "Login failed.")
		return
	}

	m.establish(res, "Logged in successfully!")
}

// Signup creates an account and, like the original flow, establishes the
// session directly from the signup response.
func (m *Manager) Signup(ctx context.Context, username, email, password string) {
	if username == "" || email == "" || password == "" {
		m.notifier.Notify(notify.Error, "Username, email and password are required.")
		return
	}

	res, err := m.api.Signup(ctx, username, email, password)
	if err != nil {
		m.reportAuthError(ctx, err, "Signup failed.")
		return
	}

	m.establish(res, "Signed up successfully!")
}

// Logout tears the session down. It always succeeds locally; no server
// round-trip is involved.
func (m *Manager) Logout() {
	if err := m.store.Remove(storage.KeyToken); err != nil {
		m.logger.Warn(context.Background(), "removing token from storage", "error", err)
	}
	if err := m.store.Remove(storage.KeyUserID); err != nil {
		m.logger.Warn(context.Background(), "removing user id from storage", "error", err)
	}
	m.userID = ""
	m.transition(Unauthenticated)
	m.notifier.Notify(notify.Success, "Logged out successfully!")
}

// establish persists the credentials and flips the machine to Authenticated.
// The token and user id are stored immediately so the task layer can attach
// them to its first request.
func (m *Manager) establish(res api.AuthResult, defaultMsg string) {
	if err := m.store.Set(storage.KeyToken, res.Token); err != nil {
		m.logger.Warn(context.Background(), "persisting token", "error", err)
	}
	if err := m.store.Set(storage.KeyUserID, res.UserID); err != nil {
		m.logger.Warn(context.Background(), "persisting user id", "error", err)
	}

	m.userID = res.UserID
	m.transition(Authenticated)

	message := res.Message
	if message == "" {
		message = defaultMsg
	}
	m.notifier.Notify(notify.Success, message)
}

func (m *Manager) reportAuthError(ctx context.Context, err error, defaultMsg string) {
	m.notifier.Notify(notify.Error, api.FailureMessage(err, defaultMsg))
	if !api.IsFailure(err) {
		m.logger.Error(ctx, "auth request failed", "error", err)
	}
}

func (m *Manager) transition(next State) {
	if m.state == next {
		return
	}
	m.state = next
	for _, fn := range m.onChange {
		fn(next)
	}
}
