package cli

import (
	"context"
	"fmt"
)

// Users fetches and prints the user list.
func (a *App) Users(ctx context.Context) error {
	list, err := a.gw.RefreshUsers(ctx)
	if err != nil {
		a.printStatus()
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return nil
	}

	fmt.Fprintf(a.out, "%-12s %-20s %12s  %s\n", "ID", "NAME", "BALANCE", "STATUS")
	for _, u := range list {
		status := "active"
		if u.Banned {
			status = "banned"
		}
		fmt.Fprintf(a.out, "%-12s %-20s %12.2f  %s\n", u.ID, u.Name, u.Balance, status)
	}
	return nil
}

// Ban arms a confirmation for banning the given user.
func (a *App) Ban(ctx context.Context, args []string) error {
	if err := a.gw.BanUser(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	a.printPending()
	return nil
}

// Unban arms a confirmation for unbanning the given user.
func (a *App) Unban(ctx context.Context, args []string) error {
	if err := a.gw.UnbanUser(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	a.printPending()
	return nil
}
