// Package cli is the terminal presentation layer. All session and task logic
// lives in the injected components; this package only reads input, dispatches
// commands, and redraws on published state changes.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/todolist/internal/client/api"
	"github.com/dmitrijs2005/todolist/internal/client/config"
	"github.com/dmitrijs2005/todolist/internal/client/notify"
	"github.com/dmitrijs2005/todolist/internal/client/session"
	"github.com/dmitrijs2005/todolist/internal/client/storage"
	"github.com/dmitrijs2005/todolist/internal/client/tasks"
	"github.com/dmitrijs2005/todolist/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Manager
	tasks   *tasks.Synchronizer
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp is the default assembly: real storage, HTTP client, and terminal IO.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stderr)
	notifier := notify.NewConsole(os.Stdout)

	store, err := storage.NewFile(c.StateFile)
	if err != nil {
		return nil, fmt.Errorf("opening session storage: %w", err)
	}

	apiClient := api.NewClient(c.ServerBaseURL, http.DefaultClient, store)

	sess := session.NewManager(apiClient, store, notifier, logger)
	syncer := tasks.NewSynchronizer(apiClient, notifier, logger)

	return newApp(c, sess, syncer, os.Stdin, os.Stdout), nil
}

// newApp wires already-built components together. Kept separate from NewApp
// so tests can inject fakes and buffers.
func newApp(c *config.Config, sess *session.Manager, syncer *tasks.Synchronizer, in io.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		session: sess,
		tasks:   syncer,
		reader:  bufio.NewReader(in),
		out:     out,
	}

	// The session manager hands control to the synchronizer: entering the
	// authenticated state triggers the initial fetch.
	sess.Subscribe(func(st session.State) {
		if st == session.Authenticated {
			syncer.Refresh(context.Background())
		}
	})

	// Redraw the list whenever the local sequence changes.
	syncer.Subscribe(a.printTasks)

	return a
}

func (a *App) Run(ctx context.Context) {
	a.session.Restore()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.Authenticated
}
