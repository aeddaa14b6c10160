package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// login prompts for credentials and asks the session manager to
// authenticate. Outcome reporting happens via the notifier; nothing is
// returned here.
func (a *App) login(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "input error: %v\n", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "input error: %v\n", err)
		return
	}

	a.session.Login(ctx, username, password)
}

// register prompts for username, email and password and creates an account.
func (a *App) register(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "input error: %v\n", err)
		return
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "input error: %v\n", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "input error: %v\n", err)
		return
	}

	a.session.Signup(ctx, username, email, password)
}
