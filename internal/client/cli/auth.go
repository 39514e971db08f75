package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/earnhub/adminctl/internal/client/session"
)

// getSimpleText, getSecret and getYesNo are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret
var getYesNo = GetYesNo

// Login prompts for the admin secret and whether to stay signed in, then
// runs the login exchange through the session manager.
//
// An empty secret fails locally without a network call. On success the
// admin's name from the freshly fetched profile is shown. Backend failures
// are reported with the backend's message when there is one.
func (a *App) Login(ctx context.Context) error {
	secret, err := getSecret(a.out)
	if err != nil {
		return err
	}

	remember, err := getYesNo(a.reader, "Stay signed in on this machine?", a.out)
	if err != nil {
		return err
	}

	if err := a.sess.Login(ctx, secret, remember); err != nil {
		if errors.Is(err, session.ErrEmptySecret) {
			fmt.Fprintln(a.out, "The admin secret cannot be empty.")
		} else {
			fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.sess.Profile().Name)
	return nil
}

// Logout revokes the session server-side as a courtesy and clears all local
// session state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sess.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
