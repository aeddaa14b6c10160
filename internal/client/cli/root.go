package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(user %s)", a.session.UserID())
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the todolist CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "todo %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: (l)ist, add <title>, toggle <n>, delete <n>, refresh, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}

		case "register":
			a.register(ctx)

		case "login":
			a.login(ctx)

		case "l", "list":
			a.requireLogin(func() { a.printTasks() })

		case "add":
			a.requireLogin(func() { a.addTask(ctx, strings.Join(args, " ")) })

		case "toggle":
			a.requireLogin(func() { a.toggleTask(ctx, args) })

		case "delete":
			a.requireLogin(func() { a.deleteTask(ctx, args) })

		case "refresh":
			a.requireLogin(func() { a.tasks.Refresh(ctx) })

		case "logout":
			a.requireLogin(func() { a.session.Logout() })

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// requireLogin gates task commands: without a session no remote call may be
// issued at all.
func (a *App) requireLogin(fn func()) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first (type 'login' or 'register')")
		return
	}
	fn()
}
