package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the remote API.
// Failures are reported through the notifier; a connection failure surfaces
// as the gateway's "cannot connect to the server" message.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	s, err := a.session.Login(ctx, email, password)
	if err != nil {
		a.notifyErr(err)
		return err
	}

	a.notify(NotifySuccess, fmt.Sprintf("Logged in as %s", s.Name))
	a.enterWorkspace(ctx, s)
	return nil
}

// Register prompts for the signup form, creates the account and logs the
// new user in. Validation errors (short password, mismatched confirmation,
// invalid email) are reported verbatim; they are worded for end users.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	s, err := a.session.Signup(ctx, name, email, password, confirm)
	if err != nil {
		a.notifyErr(err)
		return err
	}

	a.notify(NotifySuccess, fmt.Sprintf("Welcome, %s", s.Name))
	a.enterWorkspace(ctx, s)
	return nil
}

// Logout clears the session and drops the per-user workspace.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.notifyErr(err)
		return err
	}
	a.leaveWorkspace()
	a.notify(NotifyInfo, "Logged out")
	return nil
}
