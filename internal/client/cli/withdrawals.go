package cli

import (
	"context"
	"fmt"
	"strings"
)

// Withdrawals fetches and prints the withdrawal request list.
func (a *App) Withdrawals(ctx context.Context) error {
	list, err := a.gw.RefreshWithdrawals(ctx)
	if err != nil {
		a.printStatus()
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No withdrawals found.")
		return nil
	}

	fmt.Fprintf(a.out, "%-12s %-12s %12s  %s\n", "ID", "USER", "AMOUNT", "STATUS")
	for _, w := range list {
		fmt.Fprintf(a.out, "%-12s %-12s %12.2f  %s\n", w.ID, w.UserID, w.Amount, w.Status)
	}
	return nil
}

// Approve arms a confirmation for approving the given withdrawal.
func (a *App) Approve(ctx context.Context, args []string) error {
	if err := a.gw.ApproveWithdrawal(ctx, args[0]); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	a.printPending()
	return nil
}

// Reject arms a confirmation for rejecting the given withdrawal. Everything
// after the id is taken as the optional reason.
func (a *App) Reject(ctx context.Context, args []string) error {
	reason := strings.Join(args[1:], " ")
	if err := a.gw.RejectWithdrawal(ctx, args[0], reason); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	a.printPending()
	return nil
}
