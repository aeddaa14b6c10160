package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/todolist/internal/client/api"
)

func (a *App) printTasks() {
	list := a.tasks.Tasks()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No todos yet!")
		return
	}
	for i, t := range list {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.out, "%3d. [%s] %s\n", i+1, mark, t.Title)
	}
}

func (a *App) addTask(ctx context.Context, title string) {
	a.tasks.Add(ctx, title)
}

func (a *App) toggleTask(ctx context.Context, args []string) {
	task, ok := a.resolveTask(args, "toggle")
	if !ok {
		return
	}
	a.tasks.Toggle(ctx, task.ID, task.Completed, task.Title)
}

func (a *App) deleteTask(ctx context.Context, args []string) {
	task, ok := a.resolveTask(args, "delete")
	if !ok {
		return
	}
	a.tasks.Delete(ctx, task.ID)
}

// resolveTask maps a command argument to a task: a 1-based list position as
// printed by printTasks, or a raw server id.
func (a *App) resolveTask(args []string, cmd string) (api.Task, bool) {
	if len(args) != 1 {
		fmt.Fprintf(a.out, "Usage: %s <number|id>\n", cmd)
		return api.Task{}, false
	}

	list := a.tasks.Tasks()

	if n, err := strconv.Atoi(args[0]); err == nil {
		if n < 1 || n > len(list) {
			fmt.Fprintf(a.out, "No todo at position %d\n", n)
			return api.Task{}, false
		}
		return list[n-1], true
	}

	for _, t := range list {
		if t.ID == args[0] {
			return t, true
		}
	}
	fmt.Fprintf(a.out, "No todo with id %q\n", args[0])
	return api.Task{}, false
}
